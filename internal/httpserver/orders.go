package httpserver

import (
	"net/http"

	"storefront-api/internal/domain"
	"github.com/gin-gonic/gin"
)

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *handlers) createOrder(c *gin.Context) {
	ord, err := h.deps.OrderSvc.Create(c.Request.Context(), identityFrom(c).UserID)
	if err != nil {
		respondServiceError(c, err, h.deps.Dev)
		return
	}
	respondData(c, http.StatusCreated, ord)
}

func (h *handlers) myOrders(c *gin.Context) {
	orders, err := h.deps.OrderSvc.ListForUser(c.Request.Context(), identityFrom(c).UserID)
	if err != nil {
		respondServiceError(c, err, h.deps.Dev)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	respondData(c, http.StatusOK, orders)
}

func (h *handlers) getOrder(c *gin.Context) {
	ord, err := h.deps.OrderSvc.GetForUser(c.Request.Context(), c.Param("id"), identityFrom(c).UserID)
	if err != nil {
		respondServiceError(c, err, h.deps.Dev)
		return
	}
	respondData(c, http.StatusOK, ord)
}

func (h *handlers) cancelOrder(c *gin.Context) {
	ord, err := h.deps.OrderSvc.Cancel(c.Request.Context(), c.Param("id"), identityFrom(c).UserID)
	if err != nil {
		respondServiceError(c, err, h.deps.Dev)
		return
	}
	respondData(c, http.StatusOK, ord)
}

func (h *handlers) updateOrderStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "status is required")
		return
	}
	ord, err := h.deps.OrderSvc.UpdateStatus(c.Request.Context(), c.Param("id"), domain.OrderStatus(req.Status))
	if err != nil {
		respondServiceError(c, err, h.deps.Dev)
		return
	}
	respondData(c, http.StatusOK, ord)
}

func (h *handlers) listAllOrders(c *gin.Context) {
	orders, err := h.deps.OrderSvc.ListAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, h.deps.Dev)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	respondData(c, http.StatusOK, orders)
}

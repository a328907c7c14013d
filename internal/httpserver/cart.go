package httpserver

import (
	"net/http"

	"storefront-api/internal/domain"
	"github.com/gin-gonic/gin"
)

type addCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

func (h *handlers) addCartItem(c *gin.Context) {
	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "productId and quantity are required")
		return
	}
	item, err := h.deps.CartSvc.AddItem(c.Request.Context(), identityFrom(c).UserID, req.ProductID, req.Quantity)
	if err != nil {
		respondServiceError(c, err, h.deps.Dev)
		return
	}
	respondData(c, http.StatusCreated, item)
}

func (h *handlers) getCart(c *gin.Context) {
	items, err := h.deps.CartSvc.Get(c.Request.Context(), identityFrom(c).UserID)
	if err != nil {
		respondServiceError(c, err, h.deps.Dev)
		return
	}
	if items == nil {
		items = []domain.CartItem{}
	}
	respondData(c, http.StatusOK, gin.H{
		"items":      items,
		"totalCents": domain.TotalCents(items),
	})
}

func (h *handlers) updateCartItem(c *gin.Context) {
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "quantity is required")
		return
	}
	item, err := h.deps.CartSvc.UpdateQuantity(c.Request.Context(), identityFrom(c).UserID, c.Param("id"), req.Quantity)
	if err != nil {
		respondServiceError(c, err, h.deps.Dev)
		return
	}
	respondData(c, http.StatusOK, item)
}

func (h *handlers) removeCartItem(c *gin.Context) {
	if err := h.deps.CartSvc.RemoveItem(c.Request.Context(), identityFrom(c).UserID, c.Param("id")); err != nil {
		respondServiceError(c, err, h.deps.Dev)
		return
	}
	respondData(c, http.StatusOK, gin.H{"removed": true})
}

func (h *handlers) clearCart(c *gin.Context) {
	if err := h.deps.CartSvc.Clear(c.Request.Context(), identityFrom(c).UserID); err != nil {
		respondServiceError(c, err, h.deps.Dev)
		return
	}
	respondData(c, http.StatusOK, gin.H{"cleared": true})
}

package httpserver

import (
	"net/http"

	productsvc "storefront-api/internal/service/product"
	"github.com/gin-gonic/gin"
)

func (h *handlers) listProducts(c *gin.Context) {
	products, err := h.deps.ProductSvc.List(c.Request.Context(), c.Query("categoryId"))
	if err != nil {
		respondServiceError(c, err, h.deps.Dev)
		return
	}
	respondData(c, http.StatusOK, products)
}

func (h *handlers) getProduct(c *gin.Context) {
	product, err := h.deps.ProductSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, h.deps.Dev)
		return
	}
	respondData(c, http.StatusOK, product)
}

func (h *handlers) createProduct(c *gin.Context) {
	var in productsvc.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	product, err := h.deps.ProductSvc.Create(c.Request.Context(), in)
	if err != nil {
		respondServiceError(c, err, h.deps.Dev)
		return
	}
	respondData(c, http.StatusCreated, product)
}

func (h *handlers) updateProduct(c *gin.Context) {
	var in productsvc.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	product, err := h.deps.ProductSvc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondServiceError(c, err, h.deps.Dev)
		return
	}
	respondData(c, http.StatusOK, product)
}

func (h *handlers) deleteProduct(c *gin.Context) {
	if err := h.deps.ProductSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, h.deps.Dev)
		return
	}
	respondData(c, http.StatusOK, gin.H{"deleted": true})
}

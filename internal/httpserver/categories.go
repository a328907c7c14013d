package httpserver

import (
	"net/http"

	categorysvc "storefront-api/internal/service/category"
	"github.com/gin-gonic/gin"
)

func (h *handlers) listCategories(c *gin.Context) {
	categories, err := h.deps.CategorySvc.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, h.deps.Dev)
		return
	}
	respondData(c, http.StatusOK, categories)
}

func (h *handlers) getCategory(c *gin.Context) {
	category, err := h.deps.CategorySvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, h.deps.Dev)
		return
	}
	respondData(c, http.StatusOK, category)
}

func (h *handlers) createCategory(c *gin.Context) {
	var in categorysvc.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	category, err := h.deps.CategorySvc.Create(c.Request.Context(), in)
	if err != nil {
		respondServiceError(c, err, h.deps.Dev)
		return
	}
	respondData(c, http.StatusCreated, category)
}

func (h *handlers) updateCategory(c *gin.Context) {
	var in categorysvc.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	category, err := h.deps.CategorySvc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondServiceError(c, err, h.deps.Dev)
		return
	}
	respondData(c, http.StatusOK, category)
}

func (h *handlers) deleteCategory(c *gin.Context) {
	if err := h.deps.CategorySvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, h.deps.Dev)
		return
	}
	respondData(c, http.StatusOK, gin.H{"deleted": true})
}

package httpserver

import (
	"net/http"

	authsvc "storefront-api/internal/service/auth"
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *handlers) register(c *gin.Context) {
	var in authsvc.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	user, err := h.deps.AuthSvc.Register(c.Request.Context(), in)
	if err != nil {
		respondServiceError(c, err, h.deps.Dev)
		return
	}
	token, err := h.deps.AuthSvc.IssueToken(user)
	if err != nil {
		respondServiceError(c, err, h.deps.Dev)
		return
	}
	respondData(c, http.StatusCreated, gin.H{"token": token, "user": user})
}

func (h *handlers) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "email and password are required")
		return
	}
	user, token, err := h.deps.AuthSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err, h.deps.Dev)
		return
	}
	respondData(c, http.StatusOK, gin.H{"token": token, "user": user})
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

func (h *handlers) updatePassword(c *gin.Context) {
	var req updatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "currentPassword and newPassword are required")
		return
	}
	ident := identityFrom(c)
	if err := h.deps.AuthSvc.UpdatePassword(c.Request.Context(), ident.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		respondServiceError(c, err, h.deps.Dev)
		return
	}
	respondData(c, http.StatusOK, gin.H{"updated": true})
}

// deactivateMe disables the caller's own account. Tokens already issued
// keep verifying, but login is refused from the next attempt on.
func (h *handlers) deactivateMe(c *gin.Context) {
	if err := h.deps.AuthSvc.Deactivate(c.Request.Context(), identityFrom(c).UserID); err != nil {
		respondServiceError(c, err, h.deps.Dev)
		return
	}
	respondData(c, http.StatusOK, gin.H{"deactivated": true})
}

func (h *handlers) me(c *gin.Context) {
	ident := identityFrom(c)
	user, err := h.deps.AuthSvc.GetUser(c.Request.Context(), ident.UserID)
	if err != nil {
		respondServiceError(c, err, h.deps.Dev)
		return
	}
	respondData(c, http.StatusOK, user)
}

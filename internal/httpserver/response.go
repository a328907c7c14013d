package httpserver

import (
	"errors"
	"net/http"

	"storefront-api/internal/domain"
	authsvc "storefront-api/internal/service/auth"
	"github.com/gin-gonic/gin"
)

// All responses share one envelope:
// {"status":"success","data":…} or {"status":"error","message":…}.

func respondData(c *gin.Context, code int, data any) {
	c.JSON(code, gin.H{"status": "success", "data": data})
}

func respondError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"status": "error", "message": message})
}

// respondServiceError maps the typed error taxonomy onto transport
// status codes. Unexpected errors are suppressed in production.
func respondServiceError(c *gin.Context, err error, dev bool) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		respondError(c, http.StatusBadRequest, ve.Msg)
	case errors.Is(err, domain.ErrEmptyCart):
		respondError(c, http.StatusBadRequest, "cart is empty")
	case errors.Is(err, authsvc.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, "invalid email or password")
	case errors.Is(err, authsvc.ErrAccountDeactivated):
		respondError(c, http.StatusForbidden, "account is deactivated")
	case errors.Is(err, authsvc.ErrInvalidToken):
		respondError(c, http.StatusUnauthorized, "invalid token")
	case errors.Is(err, domain.ErrNotFound):
		respondError(c, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		respondError(c, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrCheckoutConflict):
		respondError(c, http.StatusConflict, "cart was modified concurrently, retry checkout")
	case errors.Is(err, domain.ErrCategoryInUse):
		respondError(c, http.StatusConflict, "category has associated products")
	case errors.Is(err, domain.ErrProductInUse):
		respondError(c, http.StatusConflict, "product is referenced by existing orders")
	default:
		msg := "internal server error"
		if dev {
			msg = err.Error()
		}
		respondError(c, http.StatusInternalServerError, msg)
	}
}

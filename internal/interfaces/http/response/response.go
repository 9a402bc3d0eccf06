package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "offer-bazar.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response, mapping domain errors to HTTP statuses
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		})
		return
	}

	status := statusOf(err)
	c.JSON(status, gin.H{
		"code":    status,
		"message": messageOf(status, err),
	})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainerrors.ErrAlreadyExists),
		errors.Is(err, domainerrors.ErrConflict),
		errors.Is(err, domainerrors.ErrAlreadyApproved):
		return http.StatusConflict
	case errors.Is(err, domainerrors.ErrInvalidInput),
		errors.Is(err, domainerrors.ErrBadRequest),
		errors.Is(err, domainerrors.ErrGatewayValidation):
		return http.StatusBadRequest
	case errors.Is(err, domainerrors.ErrUnauthorized),
		errors.Is(err, domainerrors.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domainerrors.ErrForbidden),
		errors.Is(err, domainerrors.ErrMerchantNotActive):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func messageOf(status int, err error) string {
	// Internal details stay out of the response body.
	if status == http.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}

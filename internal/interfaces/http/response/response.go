package response

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "stone-shop.backend/internal/domain/errors"
	"stone-shop.backend/pkg/logger"
)

// Envelope is the uniform response body. status is one of
// "success", "error" or "fail".
type Envelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

// Success sends a success envelope
func Success(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Envelope{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// Error maps an error to the envelope. Handled errors render as "error"
// with their own HTTP status; anything unrecognized is a "fail" at 500
// with the detail tucked under errors.detail.
func Error(c *gin.Context, err error) {
	appErr := toAppError(err)

	if appErr.Status >= http.StatusInternalServerError {
		var ctx context.Context
		if c.Request != nil {
			ctx = c.Request.Context()
		}
		logger.WithContext(ctx).Error("unhandled fault: " + appErr.Error())
		c.JSON(appErr.Status, Envelope{
			Status:  "fail",
			Message: appErr.Message,
			Errors:  gin.H{"detail": appErr.Error()},
		})
		return
	}

	body := Envelope{
		Status:  "error",
		Message: appErr.Message,
	}
	if len(appErr.Errors) > 0 {
		body.Errors = appErr.Errors
	}
	c.JSON(appErr.Status, body)
}

func toAppError(err error) *domainerrors.AppError {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NotFound("Not found.")
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		return domainerrors.Conflict("Resource already exists.")
	case errors.Is(err, domainerrors.ErrInvalidCredentials), errors.Is(err, domainerrors.ErrUnauthorized):
		return domainerrors.Authentication("Authentication credentials were not provided or are invalid.", err)
	case errors.Is(err, domainerrors.ErrAccountInactive):
		return domainerrors.Authentication("Account is inactive.", err)
	case errors.Is(err, domainerrors.ErrForbidden):
		return domainerrors.Forbidden("You do not have permission to perform this action.")
	case errors.Is(err, domainerrors.ErrInvalidInput):
		return domainerrors.Validation("Invalid input.", nil)
	case errors.Is(err, domainerrors.ErrOrderNotPending):
		return domainerrors.NewAppError(http.StatusConflict, domainerrors.CodeConflict, "Order is not pending.", err)
	default:
		return domainerrors.InternalError(err)
	}
}

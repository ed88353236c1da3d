package apperrors

import (
	"net/http"
	"strings"
	"sync/atomic"

	"contacts_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// validationMarker flags plain errors that must be reported as client errors.
const validationMarker = "Validation error"

var debug atomic.Bool

func init() {
	debug.Store(true)
}

// SetDebug controls whether raw error text of unexpected errors reaches the client.
func SetDebug(enabled bool) {
	debug.Store(enabled)
}

// GinErrorHandler renders errors for gin.
type GinErrorHandler struct {
	Debug bool
}

// HandleGinError renders err as JSON. Every body carries "message".
func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = h.fromPlainError(err)
	} else if h.Debug && appErr.Code == CodeInternalError && appErr.Err != nil {
		// debug mode shows the wrapped error text
		cp := *appErr
		cp.Message = appErr.Err.Error()
		appErr = &cp
	}

	if appErr.HTTPCode >= http.StatusInternalServerError {
		logger.CtxWithError(c.Request.Context(), "Server error", err, "path", c.Request.URL.Path)
	}

	c.JSON(appErr.HTTPCode, appErr)
}

func (h *GinErrorHandler) fromPlainError(err error) *AppError {
	msg := err.Error()
	if strings.Contains(msg, validationMarker) {
		return NewValidationError(msg, nil)
	}

	appErr := InternalError(err)
	if h.Debug {
		appErr.Message = msg
	}
	return appErr
}

// HandleError renders err with the process-wide debug setting.
func HandleError(c *gin.Context, err error) {
	handler := &GinErrorHandler{Debug: debug.Load()}
	handler.HandleGinError(c, err)
}

// AsAppError tries to convert err into *AppError.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

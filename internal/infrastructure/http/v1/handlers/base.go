package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"simorgh/internal/core/apperror"
	"simorgh/internal/infrastructure/http/v1/dto"
	"simorgh/pkg/logger"
)

// BaseHandler provides common handler utilities.
type BaseHandler struct{}

// NewBaseHandler creates a new base handler.
func NewBaseHandler() *BaseHandler {
	return &BaseHandler{}
}

// BindJSON binds and validates JSON request body.
func (h *BaseHandler) BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		h.Error(c, apperror.NewValidation("invalid request body").WithDetail("error", err.Error()))
		return false
	}
	return true
}

// Error registers error on Gin context and aborts request.
// Actual JSON response is produced by middleware.ErrorHandler (single source of truth).
func (h *BaseHandler) Error(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// OK sends 200 response with data.
func (h *BaseHandler) OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Saved reports the outcome of an edit with status on success. A NOT_DURABLE error
// still counts as success: the change is live, so the response is 202 with durable
// set to false. Any other error goes to the error handler.
func (h *BaseHandler) Saved(c *gin.Context, status int, message string, data any, err error) {
	if err != nil && !apperror.IsNotDurable(err) {
		h.Error(c, err)
		return
	}

	resp := dto.SaveResponse{Success: true, Durable: err == nil, Message: message, Data: data}
	if err != nil {
		appErr, _ := apperror.AsAppError(err)
		logger.Warn(c.Request.Context(), "edit not persisted", "cause", appErr.Err)
		resp.Message = appErr.Message
		status = http.StatusAccepted
	}
	c.JSON(status, resp)
}

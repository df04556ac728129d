package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"simorgh/internal/core/apperror"
	"simorgh/internal/domain/auth"
	"simorgh/internal/infrastructure/http/v1/dto"
)

// AuthHandler handles the admin login check.
type AuthHandler struct {
	*BaseHandler
	service *auth.Service
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(base *BaseHandler, service *auth.Service) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Login handles POST /api/login. The admin front-end expects {success, message} for
// both outcomes, so a rejection is written here instead of by the error handler.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	err := h.service.Login(c.Request.Context(), req.ToCredentials())
	if appErr, ok := apperror.AsAppError(err); ok && appErr.Code == apperror.CodeUnauthorized {
		c.JSON(http.StatusUnauthorized, dto.SuccessResponse{Success: false, Message: "Invalid credentials"})
		return
	}
	if err != nil {
		h.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: "Login successful"})
}

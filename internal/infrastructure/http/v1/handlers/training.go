package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"simorgh/internal/domain/training"
	"simorgh/internal/infrastructure/http/v1/dto"
)

// TrainingHandler handles training module endpoints.
type TrainingHandler struct {
	*BaseHandler
	service *training.Service
}

// NewTrainingHandler creates a new training handler.
func NewTrainingHandler(base *BaseHandler, service *training.Service) *TrainingHandler {
	return &TrainingHandler{BaseHandler: base, service: service}
}

// Public handles GET /training
func (h *TrainingHandler) Public(c *gin.Context) {
	modules, err := h.service.Public()
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewListResponse(modules))
}

// List handles GET /admin/training
func (h *TrainingHandler) List(c *gin.Context) {
	modules, err := h.service.List()
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewListResponse(modules))
}

// Get handles GET /admin/training/:id
func (h *TrainingHandler) Get(c *gin.Context) {
	module, err := h.service.Get(c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, module)
}

// Create handles POST /admin/training
func (h *TrainingHandler) Create(c *gin.Context) {
	var req dto.TrainingModuleRequest
	if !h.BindJSON(c, &req) {
		return
	}

	created, err := h.service.Create(c.Request.Context(), req.ToModule())
	h.Saved(c, http.StatusCreated, "Training module created", created, err)
}

// Update handles PUT /admin/training/:id
func (h *TrainingHandler) Update(c *gin.Context) {
	var req dto.TrainingModuleRequest
	if !h.BindJSON(c, &req) {
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), req.ToModule())
	h.Saved(c, http.StatusOK, "Training module updated", updated, err)
}

// Delete handles DELETE /admin/training/:id
func (h *TrainingHandler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.Param("id"))
	h.Saved(c, http.StatusOK, "Training module deleted", nil, err)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"simorgh/internal/domain/holding"
	"simorgh/internal/infrastructure/http/v1/dto"
)

// HoldingHandler edits the holding's top-level settings.
type HoldingHandler struct {
	*BaseHandler
	store *holding.Store
}

// NewHoldingHandler creates a new holding settings handler.
func NewHoldingHandler(base *BaseHandler, store *holding.Store) *HoldingHandler {
	return &HoldingHandler{BaseHandler: base, store: store}
}

// Get handles GET /api/admin/holding
func (h *HoldingHandler) Get(c *gin.Context) {
	doc, err := h.store.Read()
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromSettings(doc.Settings()))
}

// Update handles PUT /api/admin/holding. Subsidiaries, the chart and training modules
// are left as they are.
func (h *HoldingHandler) Update(c *gin.Context) {
	var req dto.SettingsDTO
	if !h.BindJSON(c, &req) {
		return
	}

	settings := req.ToSettings()
	err := h.store.Update(c.Request.Context(), func(doc *holding.HoldingData) error {
		doc.ApplySettings(settings)
		return nil
	})
	h.Saved(c, http.StatusOK, "Settings saved", dto.FromSettings(settings), err)
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"simorgh/internal/domain/holding"
	"simorgh/internal/domain/icon"
	"simorgh/internal/infrastructure/http/v1/dto"
)

// DataHandler serves and replaces the whole document in its persisted shape.
type DataHandler struct {
	*BaseHandler
	store *holding.Store
}

// NewDataHandler creates a new data handler.
func NewDataHandler(base *BaseHandler, store *holding.Store) *DataHandler {
	return &DataHandler{BaseHandler: base, store: store}
}

// Get handles GET /api/data
func (h *DataHandler) Get(c *gin.Context) {
	snap, err := h.store.Snapshot()
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, snap)
}

// Replace handles POST and PUT /api/data. Unknown icon names are canonicalized.
func (h *DataHandler) Replace(c *gin.Context) {
	var snap holding.Snapshot
	if !h.BindJSON(c, &snap) {
		return
	}

	err := h.store.ReplaceSnapshot(c.Request.Context(), snap)
	h.Saved(c, http.StatusOK, "Data saved successfully", nil, err)
}

// Icons handles GET /api/icons
func (h *DataHandler) Icons(c *gin.Context) {
	h.OK(c, dto.IconResponse{Names: icon.Names()})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"simorgh/internal/domain/department"
	"simorgh/internal/domain/orgchart"
	"simorgh/internal/infrastructure/http/v1/dto"
)

// OrgChartHandler handles chart endpoints. Routes under /companies/:slug address a
// subsidiary's chart, all others the holding chart.
type OrgChartHandler struct {
	*BaseHandler
	service *orgchart.Service
}

// NewOrgChartHandler creates a new chart handler.
func NewOrgChartHandler(base *BaseHandler, service *orgchart.Service) *OrgChartHandler {
	return &OrgChartHandler{BaseHandler: base, service: service}
}

// chart selects the chart from the path; a missing :slug means the holding chart.
func chart(c *gin.Context) string {
	return c.Param("slug")
}

// Get handles GET .../orgchart
func (h *OrgChartHandler) Get(c *gin.Context) {
	depts, err := h.service.Chart(chart(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	if depts == nil {
		depts = []department.Department{}
	}
	h.OK(c, dto.ChartResponse{
		Departments: depts,
		Tree:        dto.FromForest(department.Build(depts)),
	})
}

// Create handles POST .../orgchart
func (h *OrgChartHandler) Create(c *gin.Context) {
	var req dto.DepartmentRequest
	if !h.BindJSON(c, &req) {
		return
	}

	created, err := h.service.Add(c.Request.Context(), chart(c), req.ToDraft())
	h.Saved(c, http.StatusCreated, "Department created", created, err)
}

// Update handles PUT .../orgchart/:id
func (h *OrgChartHandler) Update(c *gin.Context) {
	var req dto.DepartmentRequest
	if !h.BindJSON(c, &req) {
		return
	}

	updated, err := h.service.Update(c.Request.Context(), chart(c), req.ToDepartment(c.Param("id")))
	h.Saved(c, http.StatusOK, "Department updated", updated, err)
}

// Delete handles DELETE .../orgchart/:id
func (h *OrgChartHandler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), chart(c), c.Param("id"))
	h.Saved(c, http.StatusOK, "Department deleted", nil, err)
}

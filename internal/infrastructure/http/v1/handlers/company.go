package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"simorgh/internal/domain/company"
	"simorgh/internal/infrastructure/http/v1/dto"
)

// CompanyHandler handles subsidiary endpoints.
type CompanyHandler struct {
	*BaseHandler
	service *company.Service
}

// NewCompanyHandler creates a new company handler.
func NewCompanyHandler(base *BaseHandler, service *company.Service) *CompanyHandler {
	return &CompanyHandler{BaseHandler: base, service: service}
}

// List handles GET /companies
func (h *CompanyHandler) List(c *gin.Context) {
	companies, err := h.service.List()
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewListResponse(dto.FromCompanies(companies)))
}

// Get handles GET /companies/:slug
func (h *CompanyHandler) Get(c *gin.Context) {
	found, err := h.service.Get(c.Param("slug"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromCompany(found))
}

// Create handles POST /admin/companies
func (h *CompanyHandler) Create(c *gin.Context) {
	var req dto.CompanyRequest
	if !h.BindJSON(c, &req) {
		return
	}

	created, err := h.service.Create(c.Request.Context(), req.ToCompany())
	h.Saved(c, http.StatusCreated, "Company created", dto.FromCompany(created), err)
}

// Update handles PUT /admin/companies/:slug
func (h *CompanyHandler) Update(c *gin.Context) {
	var req dto.CompanyRequest
	if !h.BindJSON(c, &req) {
		return
	}

	updated, err := h.service.Update(c.Request.Context(), c.Param("slug"), req.ToCompany())
	h.Saved(c, http.StatusOK, "Company updated", dto.FromCompany(updated), err)
}

// Delete handles DELETE /admin/companies/:slug
func (h *CompanyHandler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.Param("slug"))
	h.Saved(c, http.StatusOK, "Company deleted", nil, err)
}

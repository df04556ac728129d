// Package company manages the holding's subsidiaries inside the document.
package company

import (
	"context"
	"strings"

	"simorgh/internal/core/apperror"
	"simorgh/internal/domain/holding"
	"simorgh/pkg/logger"
)

// Service lists and edits subsidiaries. Edits replace the whole document; a
// NOT_DURABLE error is returned together with the saved company.
type Service struct {
	store *holding.Store
}

// NewService creates a company service.
func NewService(store *holding.Store) *Service {
	return &Service{store: store}
}

// List returns every subsidiary in document order.
func (s *Service) List() ([]holding.Company, error) {
	doc, err := s.store.Read()
	if err != nil {
		return nil, err
	}
	return doc.Subsidiaries, nil
}

// Get returns the subsidiary with slug.
func (s *Service) Get(slug string) (holding.Company, error) {
	doc, err := s.store.Read()
	if err != nil {
		return holding.Company{}, err
	}
	pos := doc.CompanyBySlug(slug)
	if pos < 0 {
		return holding.Company{}, apperror.NewNotFound("company", slug)
	}
	return doc.Subsidiaries[pos], nil
}

// Create appends a subsidiary. An empty slug is derived from the name, a given one
// is normalized. The slug must not be taken.
func (s *Service) Create(ctx context.Context, c holding.Company) (holding.Company, error) {
	if c.Slug == "" {
		c.Slug = SlugFromName(c.Name)
	} else {
		c.Slug = NormalizeSlug(c.Slug)
	}
	if err := validateCompany(c); err != nil {
		return holding.Company{}, err
	}

	err := s.store.Update(ctx, func(doc *holding.HoldingData) error {
		if doc.CompanyBySlug(c.Slug) >= 0 {
			return apperror.NewDuplicate("company", "slug", c.Slug)
		}
		doc.Subsidiaries = append(doc.Subsidiaries, c.Clone())
		return nil
	})
	if err != nil && !apperror.IsNotDurable(err) {
		return holding.Company{}, err
	}
	logger.Info(ctx, "company created", "slug", c.Slug)
	return c, err
}

// Update replaces the subsidiary with slug. The slug itself cannot change; a nil
// chart keeps the current one.
func (s *Service) Update(ctx context.Context, slug string, c holding.Company) (holding.Company, error) {
	c.Slug = slug
	if err := validateCompany(c); err != nil {
		return holding.Company{}, err
	}

	var saved holding.Company
	err := s.store.Update(ctx, func(doc *holding.HoldingData) error {
		pos := doc.CompanyBySlug(slug)
		if pos < 0 {
			return apperror.NewNotFound("company", slug)
		}
		next := c.Clone()
		if next.OrganizationalChart == nil {
			next.OrganizationalChart = doc.Subsidiaries[pos].OrganizationalChart
		}
		doc.Subsidiaries[pos] = next
		saved = next.Clone()
		return nil
	})
	if err != nil && !apperror.IsNotDurable(err) {
		return holding.Company{}, err
	}
	return saved, err
}

// Delete removes the subsidiary with slug together with its chart.
func (s *Service) Delete(ctx context.Context, slug string) error {
	err := s.store.Update(ctx, func(doc *holding.HoldingData) error {
		pos := doc.CompanyBySlug(slug)
		if pos < 0 {
			return apperror.NewNotFound("company", slug)
		}
		doc.Subsidiaries = append(doc.Subsidiaries[:pos], doc.Subsidiaries[pos+1:]...)
		return nil
	})
	if err == nil || apperror.IsNotDurable(err) {
		logger.Info(ctx, "company deleted", "slug", slug)
	}
	return err
}

func validateCompany(c holding.Company) error {
	if strings.TrimSpace(c.Name) == "" {
		return apperror.NewValidation("company name is required").WithDetail("field", "name")
	}
	if c.Slug == "" || strings.Trim(c.Slug, "-") == "" {
		return apperror.NewValidation("company slug is required").WithDetail("field", "slug")
	}
	return nil
}

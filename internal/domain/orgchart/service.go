// Package orgchart edits and renders the organizational charts held in the document:
// the holding chart and one chart per subsidiary.
package orgchart

import (
	"context"

	"simorgh/internal/core/apperror"
	"simorgh/internal/domain/department"
	"simorgh/internal/domain/holding"
	"simorgh/pkg/logger"
)

// HoldingChart selects the holding-level chart instead of a subsidiary's.
const HoldingChart = ""

// Service reads and edits charts through the document store. Every edit replaces the
// whole document, so a NOT_DURABLE error from the store is passed through unchanged
// alongside the result.
type Service struct {
	store *holding.Store
}

// NewService creates a chart service.
func NewService(store *holding.Store) *Service {
	return &Service{store: store}
}

// Chart returns the flat department list of the chart selected by slug.
func (s *Service) Chart(slug string) ([]department.Department, error) {
	doc, err := s.store.Read()
	if err != nil {
		return nil, err
	}
	chart, err := chartOf(doc, slug)
	if err != nil {
		return nil, err
	}
	return *chart, nil
}

// Forest builds the tree of the chart selected by slug.
func (s *Service) Forest(slug string) (department.Forest, error) {
	chart, err := s.Chart(slug)
	if err != nil {
		return nil, err
	}
	return department.Build(chart), nil
}

// Add creates a department in the selected chart.
func (s *Service) Add(ctx context.Context, slug string, draft department.Draft) (department.Department, error) {
	var created department.Department
	err := s.store.Update(ctx, func(doc *holding.HoldingData) error {
		chart, err := chartOf(doc, slug)
		if err != nil {
			return err
		}
		next, d, err := department.Add(*chart, draft)
		if err != nil {
			return err
		}
		*chart = next
		created = d
		return nil
	})
	if err != nil && !apperror.IsNotDurable(err) {
		return department.Department{}, err
	}
	logger.Info(ctx, "department added", "chart", chartName(slug), "department_id", created.ID)
	return created, err
}

// Update changes an existing department of the selected chart.
func (s *Service) Update(ctx context.Context, slug string, updated department.Department) (department.Department, error) {
	err := s.store.Update(ctx, func(doc *holding.HoldingData) error {
		chart, err := chartOf(doc, slug)
		if err != nil {
			return err
		}
		next, err := department.Update(*chart, updated)
		if err != nil {
			return err
		}
		*chart = next
		return nil
	})
	if err != nil && !apperror.IsNotDurable(err) {
		return department.Department{}, err
	}
	return updated.Clone(), err
}

// Delete removes a department that no other department of the chart reports to.
func (s *Service) Delete(ctx context.Context, slug, departmentID string) error {
	err := s.store.Update(ctx, func(doc *holding.HoldingData) error {
		chart, err := chartOf(doc, slug)
		if err != nil {
			return err
		}
		next, err := department.Delete(*chart, departmentID)
		if err != nil {
			return err
		}
		*chart = next
		return nil
	})
	if err == nil || apperror.IsNotDurable(err) {
		logger.Info(ctx, "department deleted", "chart", chartName(slug), "department_id", departmentID)
	}
	return err
}

func chartOf(doc *holding.HoldingData, slug string) (*[]department.Department, error) {
	if slug == HoldingChart {
		return &doc.OrganizationalChart, nil
	}
	pos := doc.CompanyBySlug(slug)
	if pos < 0 {
		return nil, apperror.NewNotFound("company", slug)
	}
	return &doc.Subsidiaries[pos].OrganizationalChart, nil
}

func chartName(slug string) string {
	if slug == HoldingChart {
		return "holding"
	}
	return slug
}

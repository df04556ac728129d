// Package training manages the training kits shown on the public training page.
package training

import (
	"context"
	"strings"

	"simorgh/internal/core/apperror"
	"simorgh/internal/core/id"
	"simorgh/internal/domain/holding"
	"simorgh/pkg/logger"
)

const idPrefix = "module"

// Service lists and edits training modules.
type Service struct {
	store *holding.Store
}

// NewService creates a training service.
func NewService(store *holding.Store) *Service {
	return &Service{store: store}
}

// Public returns the active modules as readers see them. A solution and its files
// are withheld unless the module marks them visible.
func (s *Service) Public() ([]holding.TrainingModule, error) {
	doc, err := s.store.Read()
	if err != nil {
		return nil, err
	}
	out := make([]holding.TrainingModule, 0, len(doc.TrainingModules))
	for _, m := range doc.TrainingModules {
		if !m.IsActive {
			continue
		}
		if !m.Assignment.IsSolutionVisible {
			m.Assignment.Solution = ""
			m.Assignment.SolutionFiles = []holding.File{}
		}
		out = append(out, m)
	}
	return out, nil
}

// List returns every module, active or not.
func (s *Service) List() ([]holding.TrainingModule, error) {
	doc, err := s.store.Read()
	if err != nil {
		return nil, err
	}
	return doc.TrainingModules, nil
}

// Get returns the module with moduleID.
func (s *Service) Get(moduleID string) (holding.TrainingModule, error) {
	doc, err := s.store.Read()
	if err != nil {
		return holding.TrainingModule{}, err
	}
	pos := doc.TrainingModuleByID(moduleID)
	if pos < 0 {
		return holding.TrainingModule{}, apperror.NewNotFound("training module", moduleID)
	}
	return doc.TrainingModules[pos], nil
}

// Create appends m under a freshly generated id.
func (s *Service) Create(ctx context.Context, m holding.TrainingModule) (holding.TrainingModule, error) {
	if err := validateModule(m); err != nil {
		return holding.TrainingModule{}, err
	}
	m = normalize(m)
	m.ID = id.WithPrefix(idPrefix)

	err := s.store.Update(ctx, func(doc *holding.HoldingData) error {
		doc.TrainingModules = append(doc.TrainingModules, m.Clone())
		return nil
	})
	if err != nil && !apperror.IsNotDurable(err) {
		return holding.TrainingModule{}, err
	}
	logger.Info(ctx, "training module created", "module_id", m.ID)
	return m, err
}

// Update replaces the module with moduleID.
func (s *Service) Update(ctx context.Context, moduleID string, m holding.TrainingModule) (holding.TrainingModule, error) {
	if err := validateModule(m); err != nil {
		return holding.TrainingModule{}, err
	}
	m = normalize(m)
	m.ID = moduleID

	err := s.store.Update(ctx, func(doc *holding.HoldingData) error {
		pos := doc.TrainingModuleByID(moduleID)
		if pos < 0 {
			return apperror.NewNotFound("training module", moduleID)
		}
		doc.TrainingModules[pos] = m.Clone()
		return nil
	})
	if err != nil && !apperror.IsNotDurable(err) {
		return holding.TrainingModule{}, err
	}
	return m, err
}

// Delete removes the module with moduleID.
func (s *Service) Delete(ctx context.Context, moduleID string) error {
	err := s.store.Update(ctx, func(doc *holding.HoldingData) error {
		pos := doc.TrainingModuleByID(moduleID)
		if pos < 0 {
			return apperror.NewNotFound("training module", moduleID)
		}
		doc.TrainingModules = append(doc.TrainingModules[:pos], doc.TrainingModules[pos+1:]...)
		return nil
	})
	if err == nil || apperror.IsNotDurable(err) {
		logger.Info(ctx, "training module deleted", "module_id", moduleID)
	}
	return err
}

func validateModule(m holding.TrainingModule) error {
	if strings.TrimSpace(m.Title) == "" {
		return apperror.NewValidation("training module title is required").WithDetail("field", "title")
	}
	return nil
}

// normalize gives both file lists a value so readers never see null.
func normalize(m holding.TrainingModule) holding.TrainingModule {
	m = m.Clone()
	if m.Assignment.QuestionFiles == nil {
		m.Assignment.QuestionFiles = []holding.File{}
	}
	if m.Assignment.SolutionFiles == nil {
		m.Assignment.SolutionFiles = []holding.File{}
	}
	return m
}

package dto

import "simorgh/internal/domain/holding"

// TrainingModuleRequest creates or updates a training kit. The id comes from the path
// or is generated.
type TrainingModuleRequest struct {
	Title       string             `json:"title" binding:"required"`
	Description string             `json:"description"`
	TextContent string             `json:"textContent"`
	FileURL     string             `json:"fileUrl"`
	IsActive    bool               `json:"isActive"`
	Assignment  holding.Assignment `json:"assignment"`
}

// ToModule converts to the domain model.
func (r *TrainingModuleRequest) ToModule() holding.TrainingModule {
	return holding.TrainingModule{
		Title:       r.Title,
		Description: r.Description,
		TextContent: r.TextContent,
		FileURL:     r.FileURL,
		IsActive:    r.IsActive,
		Assignment:  r.Assignment,
	}
}

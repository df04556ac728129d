// Package holding owns the single document that describes the holding company,
// its subsidiaries, its organizational chart and its training content.
//
// Two shapes of the document exist. HoldingData is the in-memory shape whose icon
// fields are icon.Icon tags. Snapshot is the persisted shape, plain JSON with icons
// written by name. Hydrate and Dehydrate convert between them.
package holding

import (
	"simorgh/internal/domain/department"
	"simorgh/internal/domain/icon"
)

// TitledText is a heading with a paragraph (vision, mission).
type TitledText struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Contact holds the holding's contact details.
type Contact struct {
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// SocialLinks holds the holding's social profiles.
type SocialLinks struct {
	LinkedIn  string `json:"linkedin"`
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
}

// BrandIdentity describes a subsidiary's brand.
type BrandIdentity struct {
	Colors      []string `json:"colors"`
	Personality string   `json:"personality"`
	Tone        string   `json:"tone"`
}

// CEO is the subsidiary's chief executive and a quote shown on its page.
type CEO struct {
	Name  string `json:"name"`
	Quote string `json:"quote"`
}

// File is an attachment of a training assignment.
type File struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Assignment is the exercise attached to a training module. The solution and its
// files are shown to readers only when IsSolutionVisible is set.
type Assignment struct {
	Question          string `json:"question"`
	Solution          string `json:"solution"`
	IsSolutionVisible bool   `json:"isSolutionVisible"`
	QuestionFiles     []File `json:"questionFiles"`
	SolutionFiles     []File `json:"solutionFiles"`
}

// TrainingModule is one training kit.
type TrainingModule struct {
	ID          string     `json:"id" validate:"required"`
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description"`
	TextContent string     `json:"textContent"`
	FileURL     string     `json:"fileUrl,omitempty"`
	IsActive    bool       `json:"isActive"`
	Assignment  Assignment `json:"assignment"`
}

// --- Icon-bearing records (in-memory shape) ---

// Feature is a service, competitive advantage or asset of a subsidiary.
type Feature struct {
	Icon        icon.Icon
	Title       string
	Description string
}

// Value is one of the holding's core values.
type Value struct {
	Icon        icon.Icon
	Name        string
	Description string
}

// Values is the titled list of core values.
type Values struct {
	Title string
	Items []Value
}

// Company is a subsidiary. Slug is its identity and is unique across subsidiaries.
type Company struct {
	Slug                  string
	Name                  string
	LogoURL               string
	Slogan                string
	SloganImageURL        string
	ManagementIntro       string
	ShortDescription      string
	Services              []Feature
	TargetCustomers       []string
	CompetitiveAdvantages []Feature
	Assets                []Feature
	BrandIdentity         BrandIdentity
	CEO                   CEO
	OrganizationalChart   []department.Department
}

// HoldingData is the root document.
type HoldingData struct {
	Name                string
	Slogan              string
	Intro               string
	HeroImageURL        string
	Vision              TitledText
	Mission             TitledText
	Values              Values
	Subsidiaries        []Company
	Contact             Contact
	SocialLinks         SocialLinks
	OrganizationalChart []department.Department
	TrainingModules     []TrainingModule
}

// CompanyBySlug returns the position of the subsidiary with slug, or -1.
func (d *HoldingData) CompanyBySlug(slug string) int {
	for i := range d.Subsidiaries {
		if d.Subsidiaries[i].Slug == slug {
			return i
		}
	}
	return -1
}

// TrainingModuleByID returns the position of the module with moduleID, or -1.
func (d *HoldingData) TrainingModuleByID(moduleID string) int {
	for i := range d.TrainingModules {
		if d.TrainingModules[i].ID == moduleID {
			return i
		}
	}
	return -1
}

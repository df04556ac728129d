package holding

import (
	"simorgh/internal/domain/department"
)

// Snapshot is the persisted and wire form of HoldingData: every field is plain data
// and every icon is stored by name.
type Snapshot struct {
	Name                string                  `json:"name" validate:"required"`
	Slogan              string                  `json:"slogan"`
	Intro               string                  `json:"intro"`
	HeroImageURL        string                  `json:"heroImageUrl"`
	Vision              TitledText              `json:"vision"`
	Mission             TitledText              `json:"mission"`
	Values              ValuesSnapshot          `json:"values"`
	Subsidiaries        []CompanySnapshot       `json:"subsidiaries" validate:"dive"`
	Contact             Contact                 `json:"contact"`
	SocialLinks         SocialLinks             `json:"socialLinks"`
	OrganizationalChart []department.Department `json:"organizationalChart" validate:"dive"`
	TrainingModules     []TrainingModule        `json:"trainingModules" validate:"dive"`
}

// ValuesSnapshot is the persisted form of Values.
type ValuesSnapshot struct {
	Title string          `json:"title"`
	Items []ValueSnapshot `json:"items"`
}

// ValueSnapshot is the persisted form of Value.
type ValueSnapshot struct {
	Icon        string `json:"icon"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// FeatureSnapshot is the persisted form of Feature.
type FeatureSnapshot struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CompanySnapshot is the persisted form of Company.
type CompanySnapshot struct {
	Slug                  string                  `json:"slug" validate:"required"`
	Name                  string                  `json:"name" validate:"required"`
	LogoURL               string                  `json:"logoUrl"`
	Slogan                string                  `json:"slogan"`
	SloganImageURL        string                  `json:"sloganImageUrl"`
	ManagementIntro       string                  `json:"managementIntro"`
	ShortDescription      string                  `json:"shortDescription"`
	Services              []FeatureSnapshot       `json:"services"`
	TargetCustomers       []string                `json:"targetCustomers"`
	CompetitiveAdvantages []FeatureSnapshot       `json:"competitiveAdvantages"`
	Assets                []FeatureSnapshot       `json:"assets"`
	BrandIdentity         BrandIdentity           `json:"brandIdentity"`
	CEO                   CEO                     `json:"ceo"`
	OrganizationalChart   []department.Department `json:"organizationalChart" validate:"dive"`
}

package dto

import (
	"simorgh/internal/domain/department"
	"simorgh/internal/domain/holding"
	"simorgh/internal/domain/icon"
)

// FeatureDTO is a service, competitive advantage or asset card.
type FeatureDTO struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func toFeature(f FeatureDTO) holding.Feature {
	return holding.Feature{Icon: icon.Parse(f.Icon), Title: f.Title, Description: f.Description}
}

func fromFeature(f holding.Feature) FeatureDTO {
	return FeatureDTO{Icon: f.Icon.String(), Title: f.Title, Description: f.Description}
}

// CompanyRequest creates or updates a subsidiary. An omitted organizationalChart keeps
// the current chart on update.
type CompanyRequest struct {
	Slug                  string                  `json:"slug"`
	Name                  string                  `json:"name" binding:"required"`
	LogoURL               string                  `json:"logoUrl"`
	Slogan                string                  `json:"slogan"`
	SloganImageURL        string                  `json:"sloganImageUrl"`
	ManagementIntro       string                  `json:"managementIntro"`
	ShortDescription      string                  `json:"shortDescription"`
	Services              []FeatureDTO            `json:"services"`
	TargetCustomers       []string                `json:"targetCustomers"`
	CompetitiveAdvantages []FeatureDTO            `json:"competitiveAdvantages"`
	Assets                []FeatureDTO            `json:"assets"`
	BrandIdentity         holding.BrandIdentity   `json:"brandIdentity"`
	CEO                   holding.CEO             `json:"ceo"`
	OrganizationalChart   []department.Department `json:"organizationalChart"`
}

// ToCompany converts to the domain model; icon names are canonicalized.
func (r *CompanyRequest) ToCompany() holding.Company {
	return holding.Company{
		Slug:                  r.Slug,
		Name:                  r.Name,
		LogoURL:               r.LogoURL,
		Slogan:                r.Slogan,
		SloganImageURL:        r.SloganImageURL,
		ManagementIntro:       r.ManagementIntro,
		ShortDescription:      r.ShortDescription,
		Services:              mapAll(r.Services, toFeature),
		TargetCustomers:       nonNil(r.TargetCustomers),
		CompetitiveAdvantages: mapAll(r.CompetitiveAdvantages, toFeature),
		Assets:                mapAll(r.Assets, toFeature),
		BrandIdentity:         r.BrandIdentity,
		CEO:                   r.CEO,
		OrganizationalChart:   department.CloneAll(r.OrganizationalChart),
	}
}

// CompanyResponse is a subsidiary as the site renders it.
type CompanyResponse struct {
	Slug                  string                  `json:"slug"`
	Name                  string                  `json:"name"`
	LogoURL               string                  `json:"logoUrl"`
	Slogan                string                  `json:"slogan"`
	SloganImageURL        string                  `json:"sloganImageUrl"`
	ManagementIntro       string                  `json:"managementIntro"`
	ShortDescription      string                  `json:"shortDescription"`
	Services              []FeatureDTO            `json:"services"`
	TargetCustomers       []string                `json:"targetCustomers"`
	CompetitiveAdvantages []FeatureDTO            `json:"competitiveAdvantages"`
	Assets                []FeatureDTO            `json:"assets"`
	BrandIdentity         holding.BrandIdentity   `json:"brandIdentity"`
	CEO                   holding.CEO             `json:"ceo"`
	OrganizationalChart   []department.Department `json:"organizationalChart"`
}

// FromCompany creates a CompanyResponse.
func FromCompany(c holding.Company) CompanyResponse {
	chart := c.OrganizationalChart
	if chart == nil {
		chart = []department.Department{}
	}
	return CompanyResponse{
		Slug:                  c.Slug,
		Name:                  c.Name,
		LogoURL:               c.LogoURL,
		Slogan:                c.Slogan,
		SloganImageURL:        c.SloganImageURL,
		ManagementIntro:       c.ManagementIntro,
		ShortDescription:      c.ShortDescription,
		Services:              mapAll(c.Services, fromFeature),
		TargetCustomers:       nonNil(c.TargetCustomers),
		CompetitiveAdvantages: mapAll(c.CompetitiveAdvantages, fromFeature),
		Assets:                mapAll(c.Assets, fromFeature),
		BrandIdentity:         c.BrandIdentity,
		CEO:                   c.CEO,
		OrganizationalChart:   chart,
	}
}

// FromCompanies converts a list of subsidiaries.
func FromCompanies(cs []holding.Company) []CompanyResponse {
	return mapAll(cs, FromCompany)
}

func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}

package dto

import (
	"simorgh/internal/domain/holding"
	"simorgh/internal/domain/icon"
)

// ValueDTO is one core value card.
type ValueDTO struct {
	Icon        string `json:"icon"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ValuesDTO is the core values block.
type ValuesDTO struct {
	Title string     `json:"title"`
	Items []ValueDTO `json:"items"`
}

// SettingsDTO is the top-level part of the document edited on the settings page.
type SettingsDTO struct {
	Name         string              `json:"name" binding:"required"`
	Slogan       string              `json:"slogan"`
	Intro        string              `json:"intro"`
	HeroImageURL string              `json:"heroImageUrl"`
	Vision       holding.TitledText  `json:"vision"`
	Mission      holding.TitledText  `json:"mission"`
	Values       ValuesDTO           `json:"values"`
	Contact      holding.Contact     `json:"contact"`
	SocialLinks  holding.SocialLinks `json:"socialLinks"`
}

// ToSettings converts to the domain model; icon names are canonicalized.
func (r *SettingsDTO) ToSettings() holding.Settings {
	return holding.Settings{
		Name:         r.Name,
		Slogan:       r.Slogan,
		Intro:        r.Intro,
		HeroImageURL: r.HeroImageURL,
		Vision:       r.Vision,
		Mission:      r.Mission,
		Values: holding.Values{
			Title: r.Values.Title,
			Items: mapAll(r.Values.Items, func(v ValueDTO) holding.Value {
				return holding.Value{Icon: icon.Parse(v.Icon), Name: v.Name, Description: v.Description}
			}),
		},
		Contact:     r.Contact,
		SocialLinks: r.SocialLinks,
	}
}

// FromSettings creates a SettingsDTO.
func FromSettings(s holding.Settings) SettingsDTO {
	return SettingsDTO{
		Name:         s.Name,
		Slogan:       s.Slogan,
		Intro:        s.Intro,
		HeroImageURL: s.HeroImageURL,
		Vision:       s.Vision,
		Mission:      s.Mission,
		Values: ValuesDTO{
			Title: s.Values.Title,
			Items: mapAll(s.Values.Items, func(v holding.Value) ValueDTO {
				return ValueDTO{Icon: v.Icon.String(), Name: v.Name, Description: v.Description}
			}),
		},
		Contact:     s.Contact,
		SocialLinks: s.SocialLinks,
	}
}

// IconResponse lists the icons an editor may choose from.
type IconResponse struct {
	Names []string `json:"names"`
}

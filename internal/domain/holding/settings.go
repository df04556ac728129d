package holding

import "slices"

// Settings is the top-level part of the document edited on the holding settings page.
// Subsidiaries, the holding chart and training modules are not part of it.
type Settings struct {
	Name         string
	Slogan       string
	Intro        string
	HeroImageURL string
	Vision       TitledText
	Mission      TitledText
	Values       Values
	Contact      Contact
	SocialLinks  SocialLinks
}

// Settings returns the top-level part of d.
func (d *HoldingData) Settings() Settings {
	c := d.Clone()
	return Settings{
		Name:         c.Name,
		Slogan:       c.Slogan,
		Intro:        c.Intro,
		HeroImageURL: c.HeroImageURL,
		Vision:       c.Vision,
		Mission:      c.Mission,
		Values:       c.Values,
		Contact:      c.Contact,
		SocialLinks:  c.SocialLinks,
	}
}

// ApplySettings overwrites the top-level part of d with s.
func (d *HoldingData) ApplySettings(s Settings) {
	d.Name = s.Name
	d.Slogan = s.Slogan
	d.Intro = s.Intro
	d.HeroImageURL = s.HeroImageURL
	d.Vision = s.Vision
	d.Mission = s.Mission
	d.Values = Values{Title: s.Values.Title, Items: slices.Clone(s.Values.Items)}
	d.Contact = s.Contact
	d.SocialLinks = s.SocialLinks
}

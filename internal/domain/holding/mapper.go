package holding

import (
	"slices"

	"simorgh/internal/domain/department"
	"simorgh/internal/domain/icon"
)

// Hydrate converts a persisted snapshot into the in-memory document.
// Icon names are resolved through the registry; unknown or empty names become icon.Star.
// The result shares no memory with s.
func Hydrate(s Snapshot) *HoldingData {
	return &HoldingData{
		Name:         s.Name,
		Slogan:       s.Slogan,
		Intro:        s.Intro,
		HeroImageURL: s.HeroImageURL,
		Vision:       s.Vision,
		Mission:      s.Mission,
		Values: Values{
			Title: s.Values.Title,
			Items: mapSlice(s.Values.Items, hydrateValue),
		},
		Subsidiaries:        mapSlice(s.Subsidiaries, hydrateCompany),
		Contact:             s.Contact,
		SocialLinks:         s.SocialLinks,
		OrganizationalChart: department.CloneAll(s.OrganizationalChart),
		TrainingModules:     mapSlice(s.TrainingModules, cloneTrainingModule),
	}
}

// Dehydrate converts the in-memory document into its persisted form.
// Every icon is written by canonical name; out-of-range tags are written as "Star".
// The result shares no memory with d.
func Dehydrate(d *HoldingData) Snapshot {
	if d == nil {
		return Snapshot{}
	}
	return Snapshot{
		Name:         d.Name,
		Slogan:       d.Slogan,
		Intro:        d.Intro,
		HeroImageURL: d.HeroImageURL,
		Vision:       d.Vision,
		Mission:      d.Mission,
		Values: ValuesSnapshot{
			Title: d.Values.Title,
			Items: mapSlice(d.Values.Items, dehydrateValue),
		},
		Subsidiaries:        mapSlice(d.Subsidiaries, dehydrateCompany),
		Contact:             d.Contact,
		SocialLinks:         d.SocialLinks,
		OrganizationalChart: department.CloneAll(d.OrganizationalChart),
		TrainingModules:     mapSlice(d.TrainingModules, cloneTrainingModule),
	}
}

func hydrateValue(v ValueSnapshot) Value {
	return Value{Icon: icon.Parse(v.Icon), Name: v.Name, Description: v.Description}
}

func dehydrateValue(v Value) ValueSnapshot {
	return ValueSnapshot{Icon: v.Icon.String(), Name: v.Name, Description: v.Description}
}

func hydrateFeature(f FeatureSnapshot) Feature {
	return Feature{Icon: icon.Parse(f.Icon), Title: f.Title, Description: f.Description}
}

func dehydrateFeature(f Feature) FeatureSnapshot {
	return FeatureSnapshot{Icon: f.Icon.String(), Title: f.Title, Description: f.Description}
}

func hydrateCompany(c CompanySnapshot) Company {
	return Company{
		Slug:                  c.Slug,
		Name:                  c.Name,
		LogoURL:               c.LogoURL,
		Slogan:                c.Slogan,
		SloganImageURL:        c.SloganImageURL,
		ManagementIntro:       c.ManagementIntro,
		ShortDescription:      c.ShortDescription,
		Services:              mapSlice(c.Services, hydrateFeature),
		TargetCustomers:       slices.Clone(c.TargetCustomers),
		CompetitiveAdvantages: mapSlice(c.CompetitiveAdvantages, hydrateFeature),
		Assets:                mapSlice(c.Assets, hydrateFeature),
		BrandIdentity:         cloneBrand(c.BrandIdentity),
		CEO:                   c.CEO,
		OrganizationalChart:   department.CloneAll(c.OrganizationalChart),
	}
}

func dehydrateCompany(c Company) CompanySnapshot {
	return CompanySnapshot{
		Slug:                  c.Slug,
		Name:                  c.Name,
		LogoURL:               c.LogoURL,
		Slogan:                c.Slogan,
		SloganImageURL:        c.SloganImageURL,
		ManagementIntro:       c.ManagementIntro,
		ShortDescription:      c.ShortDescription,
		Services:              mapSlice(c.Services, dehydrateFeature),
		TargetCustomers:       slices.Clone(c.TargetCustomers),
		CompetitiveAdvantages: mapSlice(c.CompetitiveAdvantages, dehydrateFeature),
		Assets:                mapSlice(c.Assets, dehydrateFeature),
		BrandIdentity:         cloneBrand(c.BrandIdentity),
		CEO:                   c.CEO,
		OrganizationalChart:   department.CloneAll(c.OrganizationalChart),
	}
}

// mapSlice applies fn to every element. A nil input stays nil so the JSON form
// (null versus []) survives a round trip.
func mapSlice[S, D any](in []S, fn func(S) D) []D {
	if in == nil {
		return nil
	}
	out := make([]D, len(in))
	for i := range in {
		out[i] = fn(in[i])
	}
	return out
}

package holding

import (
	"simorgh/internal/domain/department"
	"simorgh/internal/domain/icon"
)

func parent(id string) *string { return &id }

// Default returns the bundled document used when storage holds nothing usable.
// Each call returns a fresh value.
func Default() *HoldingData {
	return &HoldingData{
		Name:         "Simorgh Holding",
		Slogan:       "Building tomorrow's businesses today",
		Intro:        "Simorgh Holding invests in and grows companies across technology, logistics and consumer services.",
		HeroImageURL: "/images/hero.jpg",
		Vision: TitledText{
			Title: "Our Vision",
			Text:  "To be the most trusted group of companies in the region.",
		},
		Mission: TitledText{
			Title: "Our Mission",
			Text:  "We give talented teams the capital, structure and support they need to build lasting companies.",
		},
		Values: Values{
			Title: "Our Core Values",
			Items: []Value{
				{Icon: icon.ShieldCheck, Name: "Integrity", Description: "We keep our word to partners, customers and colleagues."},
				{Icon: icon.LightBulb, Name: "Innovation", Description: "We look for better ways to solve old problems."},
				{Icon: icon.Users, Name: "Teamwork", Description: "We succeed together or not at all."},
				{Icon: icon.Heart, Name: "Care", Description: "We treat every customer as a long-term relationship."},
			},
		},
		Subsidiaries: []Company{
			{
				Slug:             "simorgh-tech",
				Name:             "Simorgh Tech",
				LogoURL:          "/images/companies/simorgh-tech.png",
				Slogan:           "Software that scales with you",
				SloganImageURL:   "/images/companies/simorgh-tech-slogan.jpg",
				ManagementIntro:  "A product team led by engineers who have shipped at scale.",
				ShortDescription: "Cloud software and digital transformation services.",
				Services: []Feature{
					{Icon: icon.Rocket, Title: "Product Development", Description: "End-to-end delivery of web and mobile products."},
					{Icon: icon.BarChart, Title: "Data Platforms", Description: "Reporting and analytics for growing companies."},
				},
				TargetCustomers: []string{"Retail chains", "Logistics companies", "Public sector"},
				CompetitiveAdvantages: []Feature{
					{Icon: icon.Target, Title: "Focused delivery", Description: "Small teams with clear ownership."},
				},
				Assets: []Feature{
					{Icon: icon.Diamond, Title: "In-house platform", Description: "A reusable core shared by every product."},
				},
				BrandIdentity: BrandIdentity{
					Colors:      []string{"#0F4C81", "#F2A900"},
					Personality: "Precise and approachable",
					Tone:        "Confident, plain language",
				},
				CEO: CEO{Name: "Dara Karimi", Quote: "Good software is a habit, not a project."},
				OrganizationalChart: []department.Department{
					{ID: "tech-ceo", Name: "Management", Manager: "Dara Karimi"},
					{ID: "tech-eng", Name: "Engineering", Manager: "Nima Ahmadi", ParentID: parent("tech-ceo")},
					{ID: "tech-sales", Name: "Sales", Manager: "Leila Sadeghi", ParentID: parent("tech-ceo")},
				},
			},
			{
				Slug:             "simorgh-logistics",
				Name:             "Simorgh Logistics",
				LogoURL:          "/images/companies/simorgh-logistics.png",
				Slogan:           "Delivered on time, every time",
				ShortDescription: "Warehousing and last-mile delivery.",
				Services: []Feature{
					{Icon: icon.Building, Title: "Warehousing", Description: "Bonded and general storage near major ports."},
					{Icon: icon.Feather, Title: "Last-mile delivery", Description: "Same-day delivery in every major city."},
				},
				TargetCustomers:       []string{"E-commerce", "Manufacturers"},
				CompetitiveAdvantages: []Feature{{Icon: icon.Eye, Title: "Live tracking", Description: "Every parcel is visible end to end."}},
				Assets:                []Feature{{Icon: icon.Star, Title: "Fleet", Description: "Two hundred owned vehicles."}},
				BrandIdentity: BrandIdentity{
					Colors:      []string{"#2E7D32"},
					Personality: "Reliable",
					Tone:        "Direct",
				},
				CEO:                 CEO{Name: "Maryam Tehrani", Quote: "Logistics is a promise kept."},
				OrganizationalChart: []department.Department{},
			},
		},
		Contact: Contact{
			Address: "No. 12, Vali-e Asr St., Tehran",
			Phone:   "+98 21 0000 0000",
			Email:   "info@simorgh.example",
		},
		SocialLinks: SocialLinks{
			LinkedIn:  "https://www.linkedin.com/company/simorgh-holding",
			Instagram: "https://www.instagram.com/simorgh.holding",
			Twitter:   "https://twitter.com/simorgh_holding",
		},
		OrganizationalChart: []department.Department{
			{ID: "board", Name: "Board of Directors", Manager: "Chairman"},
			{ID: "ceo", Name: "Chief Executive Office", Manager: "Kaveh Rostami", ParentID: parent("board")},
			{ID: "finance", Name: "Finance", Manager: "Shirin Mousavi", ParentID: parent("ceo")},
			{ID: "hr", Name: "Human Resources", Manager: "Ali Hosseini", ParentID: parent("ceo")},
			{ID: "audit", Name: "Internal Audit", Manager: "Parisa Naderi", ParentID: parent("board")},
		},
		TrainingModules: []TrainingModule{
			{
				ID:          "module-onboarding",
				Title:       "Onboarding",
				Description: "What every new colleague should know in the first week.",
				TextContent: "Welcome to Simorgh Holding. This kit walks through our structure, values and tools.",
				IsActive:    true,
				Assignment: Assignment{
					Question:      "Name the four core values of the holding.",
					Solution:      "Integrity, Innovation, Teamwork, Care.",
					QuestionFiles: []File{},
					SolutionFiles: []File{},
				},
			},
		},
	}
}

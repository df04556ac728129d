package holding

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simorgh/internal/domain/department"
	"simorgh/internal/domain/icon"
)

func TestRoundTrip_RichDocument(t *testing.T) {
	rich := Default()
	assert.Equal(t, rich, Hydrate(Dehydrate(rich)))
}

func TestRoundTrip_PersistedDocument(t *testing.T) {
	persisted := Dehydrate(Default())
	assert.Equal(t, persisted, Dehydrate(Hydrate(persisted)))
}

func TestHydrate_CanonicalizesIconNames(t *testing.T) {
	snap := Snapshot{
		Name: "H",
		Values: ValuesSnapshot{Items: []ValueSnapshot{
			{Icon: "RocketIcon", Name: "legacy"},
			{Icon: "Sparkles", Name: "unknown"},
			{Icon: "", Name: "empty"},
			{Icon: "Eye", Name: "canonical"},
		}},
		Subsidiaries: []CompanySnapshot{{
			Slug:     "a",
			Name:     "A",
			Services: []FeatureSnapshot{{Icon: "DiamondIcon"}},
			Assets:   []FeatureSnapshot{{Icon: "nope"}},
		}},
	}

	rich := Hydrate(snap)
	got := []icon.Icon{
		rich.Values.Items[0].Icon,
		rich.Values.Items[1].Icon,
		rich.Values.Items[2].Icon,
		rich.Values.Items[3].Icon,
	}
	assert.Equal(t, []icon.Icon{icon.Rocket, icon.Star, icon.Star, icon.Eye}, got)
	assert.Equal(t, icon.Diamond, rich.Subsidiaries[0].Services[0].Icon)
	assert.Equal(t, icon.Star, rich.Subsidiaries[0].Assets[0].Icon)

	once := Dehydrate(rich)
	assert.Equal(t, "Rocket", once.Values.Items[0].Icon)
	assert.Equal(t, "Star", once.Values.Items[1].Icon)
	assert.Equal(t, "Diamond", once.Subsidiaries[0].Services[0].Icon)

	twice := Dehydrate(Hydrate(once))
	assert.Equal(t, once, twice, "second pass must be a fixpoint")
}

func TestDehydrate_OutOfRangeTagIsStar(t *testing.T) {
	doc := &HoldingData{
		Name:   "H",
		Values: Values{Items: []Value{{Icon: icon.Icon(200), Name: "broken"}}},
	}
	assert.Equal(t, "Star", Dehydrate(doc).Values.Items[0].Icon)
}

func TestMapper_DoesNotShareMemory(t *testing.T) {
	snap := Dehydrate(Default())
	rich := Hydrate(snap)

	rich.Subsidiaries[0].TargetCustomers[0] = "changed"
	rich.Subsidiaries[0].BrandIdentity.Colors[0] = "changed"
	*rich.OrganizationalChart[1].ParentID = "changed"
	rich.TrainingModules[0].Title = "changed"

	assert.Equal(t, "Retail chains", snap.Subsidiaries[0].TargetCustomers[0])
	assert.Equal(t, "#0F4C81", snap.Subsidiaries[0].BrandIdentity.Colors[0])
	assert.Equal(t, "board", snap.OrganizationalChart[1].Parent())
	assert.Equal(t, "Onboarding", snap.TrainingModules[0].Title)
}

func TestMapper_PreservesNilSlices(t *testing.T) {
	snap := Snapshot{Name: "H", Subsidiaries: []CompanySnapshot{{Slug: "a", Name: "A"}}}

	back := Dehydrate(Hydrate(snap))
	assert.Nil(t, back.Values.Items)
	assert.Nil(t, back.OrganizationalChart)
	assert.Nil(t, back.Subsidiaries[0].Services)
	assert.NotNil(t, back.Subsidiaries)
}

func TestSnapshot_JSONFieldNames(t *testing.T) {
	snap := Snapshot{
		Name:         "H",
		HeroImageURL: "/hero.jpg",
		Subsidiaries: []CompanySnapshot{{Slug: "a", Name: "A", LogoURL: "/a.png"}},
		OrganizationalChart: []department.Department{
			{ID: "x", Name: "X", ParentID: nil},
		},
		TrainingModules: []TrainingModule{{ID: "m", Title: "M", Assignment: Assignment{IsSolutionVisible: true}}},
	}

	raw, err := json.Marshal(snap)
	require.NoError(t, err)

	var generic map[string]any
	require.NoError(t, json.Unmarshal(raw, &generic))
	assert.Contains(t, generic, "heroImageUrl")
	assert.Contains(t, generic, "organizationalChart")
	assert.Contains(t, generic, "trainingModules")
	assert.Contains(t, generic, "socialLinks")

	company := generic["subsidiaries"].([]any)[0].(map[string]any)
	assert.Equal(t, "/a.png", company["logoUrl"])

	dept := generic["organizationalChart"].([]any)[0].(map[string]any)
	assert.Contains(t, dept, "parentId")
	assert.Nil(t, dept["parentId"])

	module := generic["trainingModules"].([]any)[0].(map[string]any)
	assert.Equal(t, true, module["assignment"].(map[string]any)["isSolutionVisible"])
}

func TestClone_IsDeep(t *testing.T) {
	doc := Default()
	cp := doc.Clone()
	require.Equal(t, doc, cp)

	cp.Values.Items[0].Name = "changed"
	cp.Subsidiaries[0].Services[0].Title = "changed"
	cp.Subsidiaries[0].OrganizationalChart[0].Name = "changed"
	cp.TrainingModules[0].Assignment.QuestionFiles = append(cp.TrainingModules[0].Assignment.QuestionFiles, File{Name: "x"})

	assert.Equal(t, "Integrity", doc.Values.Items[0].Name)
	assert.Equal(t, "Product Development", doc.Subsidiaries[0].Services[0].Title)
	assert.Equal(t, "Management", doc.Subsidiaries[0].OrganizationalChart[0].Name)
	assert.Empty(t, doc.TrainingModules[0].Assignment.QuestionFiles)
}

func TestApplySettings_KeepsCollections(t *testing.T) {
	doc := Default()
	settings := doc.Settings()
	settings.Name = "Renamed"
	settings.Values.Items = []Value{{Icon: icon.Target, Name: "Focus"}}

	doc.ApplySettings(settings)
	assert.Equal(t, "Renamed", doc.Name)
	require.Len(t, doc.Values.Items, 1)
	assert.Equal(t, icon.Target, doc.Values.Items[0].Icon)
	assert.Len(t, doc.Subsidiaries, 2)
	assert.Len(t, doc.OrganizationalChart, 5)
	assert.Len(t, doc.TrainingModules, 1)

	settings.Values.Items[0].Name = "changed"
	assert.Equal(t, "Focus", doc.Values.Items[0].Name)
}

func allIconFeatures(names []string) []FeatureSnapshot {
	out := make([]FeatureSnapshot, len(names))
	for i, name := range names {
		out[i] = FeatureSnapshot{Icon: name, Title: "feature " + name}
	}
	return out
}

func TestRoundTrip_RegisteredNames(t *testing.T) {
	names := icon.Names()
	require.Len(t, names, 12)

	values := make([]ValueSnapshot, len(names))
	for i, name := range names {
		values[i] = ValueSnapshot{Icon: name, Name: "value " + name}
	}

	tests := []struct {
		name string
		snap Snapshot
	}{
		{
			name: "every name in every icon field",
			snap: Snapshot{
				Name:   "H",
				Values: ValuesSnapshot{Title: "Values", Items: values},
				Subsidiaries: []CompanySnapshot{{
					Slug:                  "a",
					Name:                  "A",
					Services:              allIconFeatures(names),
					CompetitiveAdvantages: allIconFeatures(names),
					Assets:                allIconFeatures(names),
					TargetCustomers:       []string{"x"},
					BrandIdentity:         BrandIdentity{Colors: []string{"#000"}},
				}},
			},
		},
		{
			name: "empty lists stay empty",
			snap: Snapshot{
				Name:                "H",
				Values:              ValuesSnapshot{Items: []ValueSnapshot{}},
				OrganizationalChart: []department.Department{},
				TrainingModules:     []TrainingModule{},
				Subsidiaries: []CompanySnapshot{{
					Slug:                  "a",
					Name:                  "A",
					Services:              []FeatureSnapshot{},
					CompetitiveAdvantages: []FeatureSnapshot{},
					Assets:                []FeatureSnapshot{},
					TargetCustomers:       []string{},
					BrandIdentity:         BrandIdentity{Colors: []string{}},
					OrganizationalChart:   []department.Department{},
				}},
			},
		},
		{
			name: "nil lists stay nil",
			snap: Snapshot{Name: "H", Subsidiaries: []CompanySnapshot{{Slug: "a", Name: "A"}}},
		},
		{
			name: "no subsidiaries",
			snap: Snapshot{Name: "H", Values: ValuesSnapshot{Items: values[:1]}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.snap, Dehydrate(Hydrate(tt.snap)))
		})
	}
}

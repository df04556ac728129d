package holding

import (
	"slices"

	"simorgh/internal/domain/department"
)

// Clone returns a deep copy of d.
func (d *HoldingData) Clone() *HoldingData {
	if d == nil {
		return nil
	}
	out := *d
	out.Values.Items = slices.Clone(d.Values.Items)
	out.Subsidiaries = mapSlice(d.Subsidiaries, Company.Clone)
	out.OrganizationalChart = department.CloneAll(d.OrganizationalChart)
	out.TrainingModules = mapSlice(d.TrainingModules, cloneTrainingModule)
	return &out
}

// Clone returns a deep copy of c.
func (c Company) Clone() Company {
	out := c
	out.Services = slices.Clone(c.Services)
	out.TargetCustomers = slices.Clone(c.TargetCustomers)
	out.CompetitiveAdvantages = slices.Clone(c.CompetitiveAdvantages)
	out.Assets = slices.Clone(c.Assets)
	out.BrandIdentity = cloneBrand(c.BrandIdentity)
	out.OrganizationalChart = department.CloneAll(c.OrganizationalChart)
	return out
}

// Clone returns a deep copy of m.
func (m TrainingModule) Clone() TrainingModule {
	return cloneTrainingModule(m)
}

// Clone returns a deep copy of s.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.Values.Items = slices.Clone(s.Values.Items)
	out.Subsidiaries = mapSlice(s.Subsidiaries, func(c CompanySnapshot) CompanySnapshot {
		cc := c
		cc.Services = slices.Clone(c.Services)
		cc.TargetCustomers = slices.Clone(c.TargetCustomers)
		cc.CompetitiveAdvantages = slices.Clone(c.CompetitiveAdvantages)
		cc.Assets = slices.Clone(c.Assets)
		cc.BrandIdentity = cloneBrand(c.BrandIdentity)
		cc.OrganizationalChart = department.CloneAll(c.OrganizationalChart)
		return cc
	})
	out.OrganizationalChart = department.CloneAll(s.OrganizationalChart)
	out.TrainingModules = mapSlice(s.TrainingModules, cloneTrainingModule)
	return out
}

func cloneTrainingModule(m TrainingModule) TrainingModule {
	out := m
	out.Assignment.QuestionFiles = slices.Clone(m.Assignment.QuestionFiles)
	out.Assignment.SolutionFiles = slices.Clone(m.Assignment.SolutionFiles)
	return out
}

func cloneBrand(b BrandIdentity) BrandIdentity {
	b.Colors = slices.Clone(b.Colors)
	return b
}

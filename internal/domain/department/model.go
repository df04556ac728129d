// Package department models organizational-chart nodes and builds them into a forest.
//
// A chart is a flat, ordered list of departments; each may name a parent by id.
// The list is owned by whichever collection holds it (the holding chart or a
// subsidiary's chart) and ids are only unique within that collection.
package department

// Department is one node of an organizational chart.
type Department struct {
	ID          string  `json:"id" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Manager     string  `json:"manager"`
	ParentID    *string `json:"parentId"`
	Description string  `json:"description,omitempty"`
}

// Parent returns the parent id, or "" for a root.
func (d Department) Parent() string {
	if d.ParentID == nil {
		return ""
	}
	return *d.ParentID
}

// IsRoot reports whether the department declares no parent.
func (d Department) IsRoot() bool {
	return d.Parent() == ""
}

// SetParent sets the parent id. An empty id makes the department a root.
func (d *Department) SetParent(parentID string) {
	if parentID == "" {
		d.ParentID = nil
		return
	}
	d.ParentID = &parentID
}

// Clone returns a copy that shares no memory with d.
func (d Department) Clone() Department {
	out := d
	if d.ParentID != nil {
		p := *d.ParentID
		out.ParentID = &p
	}
	return out
}

// CloneAll copies a chart. A nil chart stays nil.
func CloneAll(depts []Department) []Department {
	if depts == nil {
		return nil
	}
	out := make([]Department, len(depts))
	for i, d := range depts {
		out[i] = d.Clone()
	}
	return out
}

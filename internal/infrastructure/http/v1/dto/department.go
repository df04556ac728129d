package dto

import "simorgh/internal/domain/department"

// DepartmentRequest creates or edits a department. A null or empty parentId makes it
// a root.
type DepartmentRequest struct {
	Name        string  `json:"name" binding:"required"`
	Manager     string  `json:"manager"`
	ParentID    *string `json:"parentId"`
	Description string  `json:"description"`
}

func (r *DepartmentRequest) parent() string {
	if r.ParentID == nil {
		return ""
	}
	return *r.ParentID
}

// ToDraft converts to a new-department draft.
func (r *DepartmentRequest) ToDraft() department.Draft {
	return department.Draft{
		Name:        r.Name,
		Manager:     r.Manager,
		ParentID:    r.parent(),
		Description: r.Description,
	}
}

// ToDepartment converts to the department with departmentID.
func (r *DepartmentRequest) ToDepartment(departmentID string) department.Department {
	d := department.Department{
		ID:          departmentID,
		Name:        r.Name,
		Manager:     r.Manager,
		Description: r.Description,
	}
	d.SetParent(r.parent())
	return d
}

// NodeResponse is one department in the rendered chart.
type NodeResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Manager     string         `json:"manager"`
	ParentID    *string        `json:"parentId"`
	Description string         `json:"description,omitempty"`
	Level       int            `json:"level"`
	Children    []NodeResponse `json:"children"`
}

// FromForest converts a built chart, keeping root and child order.
func FromForest(forest department.Forest) []NodeResponse {
	return mapAll(forest, fromNode)
}

func fromNode(n *department.Node) NodeResponse {
	return NodeResponse{
		ID:          n.Department.ID,
		Name:        n.Department.Name,
		Manager:     n.Department.Manager,
		ParentID:    n.Department.ParentID,
		Description: n.Department.Description,
		Level:       n.Level,
		Children:    mapAll(n.Children, fromNode),
	}
}

// ChartResponse carries both the flat list and the tree of a chart.
type ChartResponse struct {
	Departments []department.Department `json:"departments"`
	Tree        []NodeResponse          `json:"tree"`
}

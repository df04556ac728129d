package department

import (
	"strings"

	"simorgh/internal/core/apperror"
	"simorgh/internal/core/id"
)

// idPrefix keeps generated ids readable in exported documents.
const idPrefix = "dept"

// Draft holds the fields an editor supplies for a new department.
type Draft struct {
	Name        string
	Manager     string
	ParentID    string
	Description string
}

// Add appends a department built from draft under a freshly generated id.
// The input chart is not modified.
func Add(depts []Department, draft Draft) ([]Department, Department, error) {
	if strings.TrimSpace(draft.Name) == "" || strings.TrimSpace(draft.Manager) == "" {
		return nil, Department{}, apperror.NewValidation("department name and manager are required")
	}
	if draft.ParentID != "" && indexOf(depts, draft.ParentID) < 0 {
		return nil, Department{}, apperror.NewValidation("parent department does not exist").
			WithDetail("parent_id", draft.ParentID)
	}

	created := Department{
		ID:          id.WithPrefix(idPrefix),
		Name:        draft.Name,
		Manager:     draft.Manager,
		Description: draft.Description,
	}
	created.SetParent(draft.ParentID)

	out := make([]Department, 0, len(depts)+1)
	out = append(out, CloneAll(depts)...)
	out = append(out, created)
	return out, created.Clone(), nil
}

// Update replaces the fields of the department with updated.ID.
// Re-parenting is checked so the chart never gains a loop.
func Update(depts []Department, updated Department) ([]Department, error) {
	pos := indexOf(depts, updated.ID)
	if pos < 0 {
		return nil, apperror.NewNotFound("department", updated.ID)
	}
	if strings.TrimSpace(updated.Name) == "" {
		return nil, apperror.NewValidation("department name is required")
	}
	if parent := updated.Parent(); parent != "" {
		if parent == updated.ID {
			return nil, apperror.NewValidation("department cannot be its own parent").
				WithDetail("department_id", updated.ID)
		}
		if indexOf(depts, parent) < 0 {
			return nil, apperror.NewValidation("parent department does not exist").
				WithDetail("parent_id", parent)
		}
	}

	out := CloneAll(depts)
	out[pos] = updated.Clone()
	if err := Validate(out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes the department with departmentID. It is refused while any other
// department of the same chart names it as parent; the check runs against depts as
// given, so callers must pass the current chart.
func Delete(depts []Department, departmentID string) ([]Department, error) {
	pos := indexOf(depts, departmentID)
	if pos < 0 {
		return nil, apperror.NewNotFound("department", departmentID)
	}
	if children := ChildrenOf(depts, departmentID); len(children) > 0 {
		return nil, apperror.NewDepartmentHasChildren(departmentID, children)
	}

	out := make([]Department, 0, len(depts)-1)
	for i, d := range depts {
		if i == pos {
			continue
		}
		out = append(out, d.Clone())
	}
	return out, nil
}

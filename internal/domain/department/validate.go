package department

import (
	"simorgh/internal/core/apperror"
	"simorgh/internal/core/id"
)

// Validate checks the preconditions Build relies on: every id is present and unique,
// no department is its own parent and parent links never loop.
// A parent id that does not resolve is allowed; Build shows such a node as a root.
func Validate(depts []Department) error {
	var (
		blank      []int
		duplicates []string
		selfRefs   []string
		loops      [][]string
	)

	seen := make(map[string]bool, len(depts))
	for i, d := range depts {
		if !id.IsValid(d.ID) {
			blank = append(blank, i)
			continue
		}
		if seen[d.ID] {
			duplicates = append(duplicates, d.ID)
		}
		seen[d.ID] = true
		if d.Parent() == d.ID {
			selfRefs = append(selfRefs, d.ID)
		}
	}

	for _, cycle := range findCycles(parentTable(depts)) {
		if len(cycle) == 1 {
			continue // reported as a self reference
		}
		ids := make([]string, len(cycle))
		for i, slot := range cycle {
			ids[i] = depts[slot].ID
		}
		loops = append(loops, ids)
	}

	if len(blank) == 0 && len(duplicates) == 0 && len(selfRefs) == 0 && len(loops) == 0 {
		return nil
	}

	err := apperror.NewValidation("invalid organizational chart")
	if len(blank) > 0 {
		err.WithDetail("blank_ids_at", blank)
	}
	if len(duplicates) > 0 {
		err.WithDetail("duplicate_ids", duplicates)
	}
	if len(selfRefs) > 0 {
		err.WithDetail("self_parent", selfRefs)
	}
	if len(loops) > 0 {
		err.WithDetail("cycles", loops)
	}
	return err
}

// ChildrenOf returns the ids of departments naming departmentID as their parent,
// in chart order.
func ChildrenOf(depts []Department, departmentID string) []string {
	var out []string
	for _, d := range depts {
		if d.ID != departmentID && d.Parent() == departmentID {
			out = append(out, d.ID)
		}
	}
	return out
}

func indexOf(depts []Department, departmentID string) int {
	for i, d := range depts {
		if d.ID == departmentID {
			return i
		}
	}
	return -1
}

package department

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dept(id, parent string) Department {
	d := Department{ID: id, Name: "Dept " + id, Manager: "M " + id}
	d.SetParent(parent)
	return d
}

func ids(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Department.ID
	}
	return out
}

func TestBuild_Empty(t *testing.T) {
	forest := Build(nil)
	assert.NotNil(t, forest)
	assert.Empty(t, forest)
	assert.Empty(t, Build([]Department{}))
}

func TestBuild_PreservesInputOrder(t *testing.T) {
	forest := Build([]Department{
		dept("ceo", ""),
		dept("sales", "ceo"),
		dept("board", ""),
		dept("ops", "ceo"),
		dept("audit", "board"),
		dept("hr", "ceo"),
	})

	require.Len(t, forest, 2)
	assert.Equal(t, []string{"ceo", "board"}, ids(forest))
	assert.Equal(t, []string{"sales", "ops", "hr"}, ids(forest[0].Children))
	assert.Equal(t, []string{"audit"}, ids(forest[1].Children))
}

func TestBuild_LevelsWhenChildPrecedesParent(t *testing.T) {
	forest := Build([]Department{
		dept("team", "unit"),
		dept("unit", "root"),
		dept("root", ""),
	})

	require.Len(t, forest, 1)
	root := forest[0]
	assert.Equal(t, "root", root.Department.ID)
	assert.Equal(t, 0, root.Level)
	require.Len(t, root.Children, 1)
	assert.Equal(t, 1, root.Children[0].Level)
	require.Len(t, root.Children[0].Children, 1)
	assert.Equal(t, "team", root.Children[0].Children[0].Department.ID)
	assert.Equal(t, 2, root.Children[0].Children[0].Level)
}

func TestBuild_OrphanBecomesRoot(t *testing.T) {
	forest := Build([]Department{
		dept("a", ""),
		dept("lost", "missing"),
		dept("a1", "a"),
	})

	assert.Equal(t, []string{"a", "lost"}, ids(forest))
	assert.Equal(t, 0, forest[1].Level)
	assert.Equal(t, []string{"a1"}, ids(forest[0].Children))
}

func TestBuild_EmptyParentIDIsRoot(t *testing.T) {
	empty := ""
	forest := Build([]Department{{ID: "x", Name: "X", ParentID: &empty}})
	assert.Equal(t, []string{"x"}, ids(forest))
}

func TestBuild_SelfReferenceIsDemoted(t *testing.T) {
	forest := Build([]Department{dept("a", "a"), dept("b", "a")})

	require.Equal(t, []string{"a"}, ids(forest))
	assert.Equal(t, []string{"b"}, ids(forest[0].Children))
	assert.Empty(t, forest[0].Children[0].Children)
	assert.Equal(t, 2, forest.Size())
}

func TestBuild_CycleBrokenAtFirstMember(t *testing.T) {
	forest := Build([]Department{
		dept("x", ""),
		dept("a", "c"),
		dept("b", "a"),
		dept("c", "b"),
	})

	assert.Equal(t, []string{"x", "a"}, ids(forest))
	a := forest[1]
	require.Equal(t, []string{"b"}, ids(a.Children))
	require.Equal(t, []string{"c"}, ids(a.Children[0].Children))
	assert.Equal(t, 2, a.Children[0].Children[0].Level)
	assert.Equal(t, 4, forest.Size())
}

func TestBuild_DoesNotAliasInput(t *testing.T) {
	input := []Department{dept("a", ""), dept("b", "a")}
	forest := Build(input)

	*forest[0].Children[0].Department.ParentID = "changed"
	forest[0].Department.Name = "changed"

	assert.Equal(t, "a", input[1].Parent())
	assert.Equal(t, "Dept a", input[0].Name)
}

// randomChart builds an acyclic chart whose parents may appear before or after
// their children in the list.
func randomChart(r *rand.Rand, n int) []Department {
	rank := r.Perm(n)
	byRank := make([]string, n)
	for i, rk := range rank {
		byRank[rk] = fmt.Sprintf("d%d", i)
	}
	out := make([]Department, n)
	for i, rk := range rank {
		parent := ""
		switch {
		case rk > 0 && r.Intn(4) > 0:
			parent = byRank[r.Intn(rk)]
		case r.Intn(5) == 0:
			parent = "ghost"
		}
		out[i] = dept(fmt.Sprintf("d%d", i), parent)
	}
	return out
}

func TestBuild_RandomChartsKeepOrderAndLevels(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for round := 0; round < 200; round++ {
		input := randomChart(r, 1+r.Intn(30))
		require.NoError(t, Validate(input))

		position := make(map[string]int, len(input))
		for i, d := range input {
			position[d.ID] = i
		}

		forest := Build(input)
		assert.Equal(t, len(input), forest.Size())

		var check func(nodes []*Node, parent *Node)
		check = func(nodes []*Node, parent *Node) {
			for i, n := range nodes {
				if i > 0 {
					assert.Less(t, position[nodes[i-1].Department.ID], position[n.Department.ID])
				}
				if parent == nil {
					assert.Equal(t, 0, n.Level)
				} else {
					assert.Equal(t, parent.Level+1, n.Level)
					assert.Equal(t, parent.Department.ID, n.Department.Parent())
				}
				check(n.Children, n)
			}
		}
		check(forest, nil)
	}
}

func TestFlatten_DepthFirst(t *testing.T) {
	flat := Flatten(Build([]Department{
		dept("a", ""),
		dept("b", ""),
		dept("a1", "a"),
		dept("a1x", "a1"),
	}))

	require.Len(t, flat, 4)
	got := make([]string, len(flat))
	for i, f := range flat {
		got[i] = fmt.Sprintf("%s@%d", f.Department.ID, f.Level)
	}
	assert.Equal(t, []string{"a@0", "a1@1", "a1x@2", "b@0"}, got)
}

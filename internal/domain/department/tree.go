package department

import "slices"

// Node is a department placed in the chart forest.
type Node struct {
	Department Department `json:"department"`
	Level      int        `json:"level"`
	Children   []*Node    `json:"children"`
}

// Forest is the ordered list of chart roots.
type Forest []*Node

// noParent marks a root slot in the arena parent table.
const noParent = -1

// Build turns a flat chart into a forest.
//
// Roots and every child list keep the relative order of the input. A parent id that
// does not resolve inside depts makes the node a root. Levels start at 0 for roots and
// grow by one per generation regardless of where a parent appears in the input.
//
// Ids are expected to be unique (see Validate); with duplicates the first occurrence
// receives the children. Input that loops back on itself is not rejected here: the
// first member of each loop, in input order, is demoted to a root so the result is
// always a finite forest.
func Build(depts []Department) Forest {
	if len(depts) == 0 {
		return Forest{}
	}

	parent := parentTable(depts)
	for _, cycle := range findCycles(parent) {
		parent[cycle[0]] = noParent
	}

	children := make([][]int, len(depts))
	roots := make([]int, 0, len(depts))
	for i := range depts {
		if parent[i] == noParent {
			roots = append(roots, i)
			continue
		}
		children[parent[i]] = append(children[parent[i]], i)
	}

	var place func(slot, level int) *Node
	place = func(slot, level int) *Node {
		node := &Node{
			Department: depts[slot].Clone(),
			Level:      level,
			Children:   make([]*Node, 0, len(children[slot])),
		}
		for _, child := range children[slot] {
			node.Children = append(node.Children, place(child, level+1))
		}
		return node
	}

	forest := make(Forest, 0, len(roots))
	for _, slot := range roots {
		forest = append(forest, place(slot, 0))
	}
	return forest
}

// parentTable resolves every parent id to an arena slot.
func parentTable(depts []Department) []int {
	index := make(map[string]int, len(depts))
	for i, d := range depts {
		if _, seen := index[d.ID]; !seen {
			index[d.ID] = i
		}
	}

	parent := make([]int, len(depts))
	for i, d := range depts {
		parent[i] = noParent
		if d.IsRoot() {
			continue
		}
		if p, ok := index[d.Parent()]; ok {
			parent[i] = p
		}
	}
	return parent
}

// findCycles returns every loop in the parent table. Each loop lists its slots in
// ascending order, so loop[0] is the member that appears first in the input.
func findCycles(parent []int) [][]int {
	const (
		unvisited = iota
		onPath
		done
	)
	state := make([]int, len(parent))
	var cycles [][]int

	for start := range parent {
		if state[start] != unvisited {
			continue
		}
		var path []int
		slot := start
		for slot != noParent && state[slot] == unvisited {
			state[slot] = onPath
			path = append(path, slot)
			slot = parent[slot]
		}
		if slot != noParent && state[slot] == onPath {
			var cycle []int
			for i := len(path) - 1; i >= 0; i-- {
				cycle = append(cycle, path[i])
				if path[i] == slot {
					break
				}
			}
			slices.Sort(cycle)
			cycles = append(cycles, cycle)
		}
		for _, s := range path {
			state[s] = done
		}
	}
	return cycles
}

// FlatNode is one row of a depth-first chart listing.
type FlatNode struct {
	Department Department
	Level      int
}

// Flatten lists the forest depth-first, parents before their children.
func Flatten(forest Forest) []FlatNode {
	var out []FlatNode
	var walk func(nodes []*Node)
	walk = func(nodes []*Node) {
		for _, n := range nodes {
			out = append(out, FlatNode{Department: n.Department, Level: n.Level})
			walk(n.Children)
		}
	}
	walk(forest)
	return out
}

// Size counts the nodes of the forest.
func (f Forest) Size() int {
	n := 0
	var walk func(nodes []*Node)
	walk = func(nodes []*Node) {
		for _, node := range nodes {
			n++
			walk(node.Children)
		}
	}
	walk(f)
	return n
}

// Package dag provides the precedence graph used by the planner: a directed
// acyclic graph of placed nodes where every node records the immediate
// predecessors it was attached to. It supports transitive "past" queries,
// topological placement order, and atomic multi-edge insertion.
package dag

import (
	"errors"
	"fmt"
	"sort"
)

// ErrCycle is returned when an insertion would close a cycle.
var ErrCycle = errors.New("cycle detected")

// ErrNodeNotFound is returned when an operation references a non-existent node.
var ErrNodeNotFound = errors.New("node not found")

// ErrSelfEdge is returned when an edge would create a self-loop.
var ErrSelfEdge = errors.New("self-referencing edge")

// DAG is a precedence graph. Edges point from a node to its predecessors:
// if B was placed after A, there is an edge from B to A.
type DAG struct {
	// preds maps nodeID → set of immediate predecessor IDs.
	preds map[string]map[string]bool
	// succs maps nodeID → set of immediate successor IDs.
	succs map[string]map[string]bool
}

// New creates an empty DAG.
func New() *DAG {
	return &DAG{
		preds: make(map[string]map[string]bool),
		succs: make(map[string]map[string]bool),
	}
}

// AddRoot adds id as a node with no predecessors. Adding an existing node
// is a no-op.
func (d *DAG) AddRoot(id string) {
	if d.Has(id) {
		return
	}
	d.preds[id] = make(map[string]bool)
	d.succs[id] = make(map[string]bool)
}

// Place records that id sits after every node in preds, adding id to the
// graph if it is not already present. Every predecessor must already be
// in the graph. All edges are validated before any of them is written, so
// a failed call leaves the graph untouched. Existing edges are skipped.
func (d *DAG) Place(id string, preds ...string) error {
	if len(preds) == 0 {
		return fmt.Errorf("%w: %s has no predecessor", ErrNodeNotFound, id)
	}
	for _, p := range preds {
		if p == id {
			return fmt.Errorf("%w: %s", ErrSelfEdge, id)
		}
		if !d.Has(p) {
			return fmt.Errorf("%w: %s", ErrNodeNotFound, p)
		}
		// An edge id → p closes a cycle when id is already in p's past.
		if d.Has(id) && d.hasPath(p, id) {
			return fmt.Errorf("%w: edge %s → %s would create a cycle", ErrCycle, id, p)
		}
	}

	d.AddRoot(id)
	for _, p := range preds {
		d.preds[id][p] = true
		d.succs[p][id] = true
	}
	return nil
}

// Has reports whether id is a node of the graph.
func (d *DAG) Has(id string) bool {
	_, ok := d.preds[id]
	return ok
}

// Nodes returns all node IDs in the DAG, sorted alphabetically.
func (d *DAG) Nodes() []string {
	ids := make([]string, 0, len(d.preds))
	for id := range d.preds {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of nodes in the DAG.
func (d *DAG) Len() int {
	return len(d.preds)
}

// Predecessors returns the immediate predecessors of id, sorted
// alphabetically. Returns nil if id is not in the graph.
func (d *DAG) Predecessors(id string) []string {
	return sortedKeys(d.preds[id])
}

// Successors returns the immediate successors of id, sorted alphabetically.
func (d *DAG) Successors(id string) []string {
	return sortedKeys(d.succs[id])
}

// Past returns id together with every node it transitively follows,
// sorted alphabetically.
func (d *DAG) Past(id string) ([]string, error) {
	if !d.Has(id) {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}
	visited := d.walk(id, d.preds)
	return sortedKeys(visited), nil
}

// Descendants returns every node that transitively follows id, excluding
// id itself, sorted alphabetically. Returns nil for unknown nodes.
func (d *DAG) Descendants(id string) []string {
	if !d.Has(id) {
		return nil
	}
	visited := d.walk(id, d.succs)
	delete(visited, id)
	return sortedKeys(visited)
}

// TopologicalSort returns node IDs with every predecessor before its
// successors. Among nodes that become available together, IDs are
// ordered alphabetically. Returns ErrCycle if the graph contains a cycle.
func (d *DAG) TopologicalSort() ([]string, error) {
	inDegree := make(map[string]int, len(d.preds))
	for id, ps := range d.preds {
		inDegree[id] = len(ps)
	}

	queue := d.zeroDegreeNodes(inDegree)
	sort.Strings(queue)

	sorted := make([]string, 0, len(d.preds))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		sorted = append(sorted, id)

		var freed []string
		for next := range d.succs[id] {
			inDegree[next]--
			if inDegree[next] == 0 {
				freed = append(freed, next)
			}
		}
		sort.Strings(freed)
		queue = append(queue, freed...)
	}

	if len(sorted) != len(d.preds) {
		return nil, fmt.Errorf("%w: not all nodes could be ordered (%d of %d)",
			ErrCycle, len(sorted), len(d.preds))
	}
	return sorted, nil
}

// Edges returns a copy of the predecessor relation: every node mapped to
// its sorted immediate predecessors.
func (d *DAG) Edges() map[string][]string {
	out := make(map[string][]string, len(d.preds))
	for id, ps := range d.preds {
		out[id] = sortedKeys(ps)
	}
	return out
}

// Clone returns an independent deep copy of the graph.
func (d *DAG) Clone() *DAG {
	c := New()
	for id, ps := range d.preds {
		c.preds[id] = make(map[string]bool, len(ps))
		for p := range ps {
			c.preds[id][p] = true
		}
	}
	for id, ss := range d.succs {
		c.succs[id] = make(map[string]bool, len(ss))
		for s := range ss {
			c.succs[id][s] = true
		}
	}
	return c
}

// hasPath reports whether dst is reachable from src over predecessor edges.
func (d *DAG) hasPath(src, dst string) bool {
	if src == dst {
		return true
	}
	_, ok := d.walk(src, d.preds)[dst]
	return ok
}

// walk collects start and every node reachable from it through edges,
// using an explicit stack so depth is bounded only by memory.
func (d *DAG) walk(start string, edges map[string]map[string]bool) map[string]bool {
	visited := map[string]bool{start: true}
	stack := []string{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for next := range edges[cur] {
			if !visited[next] {
				visited[next] = true
				stack = append(stack, next)
			}
		}
	}
	return visited
}

// zeroDegreeNodes returns IDs from the in-degree map that have zero value.
func (d *DAG) zeroDegreeNodes(inDegree map[string]int) []string {
	var result []string
	for id, deg := range inDegree {
		if deg == 0 {
			result = append(result, id)
		}
	}
	return result
}

func sortedKeys(set map[string]bool) []string {
	if set == nil {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

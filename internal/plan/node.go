package plan

import (
	"fmt"
	"sort"
)

// Kind categorizes a catalog node.
type Kind string

const (
	// KindAbility is a capability a participant acquires.
	KindAbility Kind = "ability"
	// KindObstacle is a challenge passed with one or more abilities.
	KindObstacle Kind = "obstacle"
)

// Node is a catalog entry. Defeats is only populated for abilities.
type Node struct {
	Name         string
	Kind         Kind
	Requirements Requirements
	Defeats      []string
}

// Enabled reports whether the node's requirements hold against avail,
// using the obstacle (any route) or ability (every prerequisite) policy.
func (n *Node) Enabled(avail Set) bool {
	if n.Kind == KindObstacle {
		return n.Requirements.Any(avail)
	}
	return n.Requirements.All(avail)
}

// addDefeat records that the ability resolves obstacle, keeping Defeats
// sorted and free of duplicates.
func (n *Node) addDefeat(obstacle string) {
	i := sort.SearchStrings(n.Defeats, obstacle)
	if i < len(n.Defeats) && n.Defeats[i] == obstacle {
		return
	}
	n.Defeats = append(n.Defeats, "")
	copy(n.Defeats[i+1:], n.Defeats[i:])
	n.Defeats[i] = obstacle
}

func (n *Node) clone() *Node {
	c := &Node{
		Name:         n.Name,
		Kind:         n.Kind,
		Requirements: n.Requirements.Clone(),
	}
	if n.Defeats != nil {
		c.Defeats = append([]string(nil), n.Defeats...)
	}
	return c
}

// catalog is the single name-keyed table of every node.
type catalog map[string]*Node

func (c catalog) add(name string, kind Kind) (*Node, error) {
	if _, ok := c[name]; ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateNode, name)
	}
	n := &Node{Name: name, Kind: kind}
	c[name] = n
	return n, nil
}

// lookup returns the named node, checking its kind when want is non-empty.
func (c catalog) lookup(name string, want Kind) (*Node, error) {
	n, ok := c[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNode, name)
	}
	if want != "" && n.Kind != want {
		return nil, fmt.Errorf("%w: %s is an %s, not an %s", ErrKindMismatch, name, n.Kind, want)
	}
	return n, nil
}

// names returns the names of nodes of the given kind (all kinds when
// kind is empty), sorted.
func (c catalog) names(kind Kind) []string {
	var out []string
	for name, n := range c {
		if kind == "" || n.Kind == kind {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

func (c catalog) clone() catalog {
	out := make(catalog, len(c))
	for name, n := range c {
		out[name] = n.clone()
	}
	return out
}

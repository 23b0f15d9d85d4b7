// Package plan models a catalog of abilities and obstacles and plans the
// order in which they can be introduced into a branching experience graph.
//
// A Network couples the catalog with a precedence graph of placed nodes.
// Obstacles are unlocked by any one of their requirement terms; abilities
// need every eclipse-derived prerequisite in their own branch's past.
// Derived requirements are rebuilt in full whenever a defeats relationship
// changes, so they never go stale.
package plan

import (
	"fmt"

	"github.com/papapumpkin/puzzplan/internal/dag"
)

// Start is the sentinel node every network is rooted at.
const Start = "start"

// Network is the planner state: the node catalog and the precedence graph.
// It is not safe for concurrent use.
type Network struct {
	nodes catalog
	net   *dag.DAG
}

// New creates a network holding the start sentinel and the initial
// abilities, each connected directly from start.
func New(initial ...string) (*Network, error) {
	n := &Network{
		nodes: make(catalog),
		net:   dag.New(),
	}
	if _, err := n.nodes.add(Start, KindObstacle); err != nil {
		return nil, err
	}
	n.net.AddRoot(Start)

	for _, name := range initial {
		if err := n.AddAbility(name); err != nil {
			return nil, err
		}
		if _, err := n.AddConnection(Start, name); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// AddAbility registers a new ability. Obstacles named in defeats are
// created when missing and linked as if by Defeats.
func (n *Network) AddAbility(name string, defeats ...string) error {
	for _, o := range defeats {
		if err := n.checkObstacleName(o); err != nil {
			return err
		}
	}
	if _, err := n.nodes.add(name, KindAbility); err != nil {
		return err
	}
	for _, o := range defeats {
		if err := n.linkDefeat(name, o); err != nil {
			return err
		}
	}
	n.recompute()
	return nil
}

// AddObstacle registers a new obstacle with no requirements.
func (n *Network) AddObstacle(name string) error {
	_, err := n.nodes.add(name, KindObstacle)
	return err
}

// Defeats records that ability can resolve obstacle, creating the obstacle
// if it is not yet in the catalog, and rebuilds eclipse requirements.
func (n *Network) Defeats(ability, obstacle string) error {
	if err := n.linkDefeat(ability, obstacle); err != nil {
		return err
	}
	n.recompute()
	return nil
}

// DefeatsJointly records that the abilities together resolve obstacle.
// The obstacle gains one Joint term; the members' own Defeats are left
// alone since none of them resolves it solo. A group with a single
// distinct member is recorded as Defeats.
func (n *Network) DefeatsJointly(abilities []string, obstacle string) error {
	if len(abilities) == 0 {
		return fmt.Errorf("%w: joint defeat of %s names no abilities", ErrUnknownNode, obstacle)
	}
	for _, a := range abilities {
		if _, err := n.nodes.lookup(a, KindAbility); err != nil {
			return err
		}
	}
	term := Joint(abilities...)
	if !term.IsJoint() {
		return n.Defeats(term.Names()[0], obstacle)
	}
	o, err := n.obstacle(obstacle)
	if err != nil {
		return err
	}
	o.Requirements = o.Requirements.With(term)
	n.recompute()
	return nil
}

// AddConnection places node after pred and returns the predecessor edges
// that were recorded. pred must be placed, and node must be enabled at
// pred's branch unless it is already placed. When the only route that
// enables node is a joint term, every member of that term becomes a
// predecessor instead of pred. The call either succeeds completely or
// leaves the network unchanged.
func (n *Network) AddConnection(pred, node string) ([]string, error) {
	if !n.net.Has(pred) {
		return nil, fmt.Errorf("%w: %s", ErrNotPlaced, pred)
	}
	target, err := n.nodes.lookup(node, "")
	if err != nil {
		return nil, err
	}

	avail, err := n.availableAt(pred, target.Kind)
	if err != nil {
		return nil, err
	}
	if !n.net.Has(node) && !target.Enabled(avail) {
		return nil, fmt.Errorf("%w: %s at branch %s (requires %v)",
			ErrNotEnabled, node, pred, target.Requirements)
	}

	edges := []string{pred}
	if en := target.Requirements.Enablers(avail); len(en) == 1 && en[0].IsJoint() {
		edges = en[0].Names()
	}
	if err := n.net.Place(node, edges...); err != nil {
		return nil, fmt.Errorf("placing %s: %w", node, err)
	}
	return edges, nil
}

// Placed reports whether name has been placed.
func (n *Network) Placed(name string) bool {
	return n.net.Has(name)
}

// Past returns name and every node it transitively follows.
func (n *Network) Past(name string) (Set, error) {
	if _, ok := n.nodes[name]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownNode, name)
	}
	past, err := n.net.Past(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotPlaced, name)
	}
	return NewSet(past...), nil
}

// Predecessors returns the immediate predecessors recorded for name.
func (n *Network) Predecessors(name string) []string {
	return n.net.Predecessors(name)
}

// Node returns a copy of the named node.
func (n *Network) Node(name string) (Node, bool) {
	node, ok := n.nodes[name]
	if !ok {
		return Node{}, false
	}
	return *node.clone(), true
}

// Names returns every catalog name, sorted.
func (n *Network) Names() []string { return n.nodes.names("") }

// Abilities returns every ability name, sorted.
func (n *Network) Abilities() []string { return n.nodes.names(KindAbility) }

// Obstacles returns every obstacle name, including start, sorted.
func (n *Network) Obstacles() []string { return n.nodes.names(KindObstacle) }

// Branches returns every placed node in topological order, start first.
// This is the canonical traversal order for branch searches.
func (n *Network) Branches() []string {
	order, err := n.net.TopologicalSort()
	if err != nil {
		// Place rejects cycles, so the graph is always sortable.
		panic(fmt.Sprintf("plan: precedence graph not acyclic: %v", err))
	}
	return order
}

// PlacedSet returns the names of every placed node.
func (n *Network) PlacedSet() Set {
	return NewSet(n.net.Nodes()...)
}

// availableAt returns the names a node of the given kind is evaluated
// against at branch: everything placed for obstacles, the branch's past
// for abilities.
func (n *Network) availableAt(branch string, kind Kind) (Set, error) {
	if kind == KindObstacle {
		return n.PlacedSet(), nil
	}
	return n.Past(branch)
}

// linkDefeat updates both sides of a single defeats relationship without
// recomputing eclipses.
func (n *Network) linkDefeat(ability, obstacle string) error {
	a, err := n.nodes.lookup(ability, KindAbility)
	if err != nil {
		return err
	}
	o, err := n.obstacle(obstacle)
	if err != nil {
		return err
	}
	o.Requirements = o.Requirements.With(Single(ability))
	a.addDefeat(obstacle)
	return nil
}

// checkObstacleName reports whether name may be used as a defeated
// obstacle: either unknown, or an existing obstacle other than start.
func (n *Network) checkObstacleName(name string) error {
	if name == Start {
		return fmt.Errorf("%w: %s cannot be defeated", ErrKindMismatch, Start)
	}
	if node, ok := n.nodes[name]; ok && node.Kind != KindObstacle {
		return fmt.Errorf("%w: %s is an %s, not an %s", ErrKindMismatch, name, node.Kind, KindObstacle)
	}
	return nil
}

// obstacle returns the named obstacle, creating it when absent.
func (n *Network) obstacle(name string) (*Node, error) {
	if err := n.checkObstacleName(name); err != nil {
		return nil, err
	}
	if _, ok := n.nodes[name]; !ok {
		return n.nodes.add(name, KindObstacle)
	}
	return n.nodes.lookup(name, KindObstacle)
}

// recompute clears and rebuilds every ability's requirement set from the
// current defeats relationships.
func (n *Network) recompute() {
	defeats := make(map[string][]string)
	for _, name := range n.nodes.names(KindAbility) {
		defeats[name] = n.nodes[name].Defeats
	}
	for name, reqs := range Recompute(defeats) {
		n.nodes[name].Requirements = reqs
	}
}

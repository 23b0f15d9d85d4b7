package plan

import "fmt"

// EnabledNodes returns every node that could be placed after branch,
// mapped to the requirement terms that justify it. Obstacles are checked
// against everything placed anywhere; abilities only against branch's own
// past. A requirement-free ability is enabled everywhere; it is reported
// with an empty route while unplaced and omitted once placed, since it has
// no route to show. With suppressLive, already-placed nodes are dropped.
func (n *Network) EnabledNodes(branch string, suppressLive bool) (map[string]Requirements, error) {
	past, err := n.Past(branch)
	if err != nil {
		return nil, err
	}
	placed := n.PlacedSet()

	out := make(map[string]Requirements)
	for _, name := range n.nodes.names("") {
		if suppressLive && placed.Has(name) {
			continue
		}
		node := n.nodes[name]
		avail := past
		if node.Kind == KindObstacle {
			avail = placed
		}
		if !node.Enabled(avail) {
			continue
		}
		en := node.Requirements.Enablers(avail)
		if len(en) == 0 && placed.Has(name) {
			continue
		}
		out[name] = en
	}
	return out, nil
}

// LockedAbilities returns the abilities whose prerequisites are not all
// present in the past of any placed branch, sorted.
func (n *Network) LockedAbilities() []string {
	pasts := n.pasts()
	var out []string
	for _, name := range n.nodes.names(KindAbility) {
		reqs := n.nodes[name].Requirements
		if len(reqs) == 0 {
			continue
		}
		if !satisfiedSomewhere(reqs, pasts) {
			out = append(out, name)
		}
	}
	return out
}

// LockedObstacles returns unplaced obstacles that no placed ability can
// currently resolve, sorted. With potential, obstacles that are only
// waiting on locked abilities are left out, so the result holds the
// obstacles that are blocked for some other reason.
func (n *Network) LockedObstacles(potential bool) []string {
	placed := n.PlacedSet()
	var lockedAbilities Set
	if potential {
		lockedAbilities = NewSet(n.LockedAbilities()...)
	}

	var out []string
	for _, name := range n.nodes.names(KindObstacle) {
		if placed.Has(name) {
			continue
		}
		node := n.nodes[name]
		if node.Enabled(placed) {
			continue
		}
		if potential && waitsOnlyOn(node.Requirements, placed, lockedAbilities) {
			continue
		}
		out = append(out, name)
	}
	return out
}

// UnlockedAbilities returns the unplaced abilities enabled at some branch,
// sorted.
func (n *Network) UnlockedAbilities() []string {
	return n.unlockedOfKind(KindAbility)
}

// UnlockedObstacles returns the unplaced obstacles enabled by what is
// placed, sorted.
func (n *Network) UnlockedObstacles() []string {
	return n.unlockedOfKind(KindObstacle)
}

// Unlocked returns every unplaced node enabled at some branch, mapped to
// the union of the terms that enable it across branches.
func (n *Network) Unlocked() map[string]Requirements {
	out := make(map[string]Requirements)
	for _, branch := range n.Branches() {
		enabled, err := n.EnabledNodes(branch, true)
		if err != nil {
			panic(fmt.Sprintf("plan: placed branch %s has no past: %v", branch, err))
		}
		for name, terms := range enabled {
			merged := out[name]
			for _, t := range terms {
				merged = merged.With(t)
			}
			out[name] = merged
		}
	}
	return out
}

func (n *Network) unlockedOfKind(kind Kind) []string {
	var out []string
	for name := range n.Unlocked() {
		if n.nodes[name].Kind == kind {
			out = append(out, name)
		}
	}
	return NewSet(out...).Sorted()
}

// universe is every placed node plus everything currently unlocked.
func (n *Network) universe() Set {
	u := n.PlacedSet()
	for name := range n.Unlocked() {
		u.Add(name)
	}
	return u
}

// pasts returns the past-set of every placed branch in canonical order.
func (n *Network) pasts() []Set {
	branches := n.Branches()
	out := make([]Set, 0, len(branches))
	for _, b := range branches {
		past, err := n.Past(b)
		if err != nil {
			panic(fmt.Sprintf("plan: placed branch %s has no past: %v", b, err))
		}
		out = append(out, past)
	}
	return out
}

func satisfiedSomewhere(reqs Requirements, pasts []Set) bool {
	for _, p := range pasts {
		if reqs.All(p) {
			return true
		}
	}
	return false
}

// waitsOnlyOn reports whether every term of reqs is blocked, and blocked
// solely by names in locked. A node with no terms is not waiting on
// anything and reports false.
func waitsOnlyOn(reqs Requirements, placed, locked Set) bool {
	if len(reqs) == 0 {
		return false
	}
	for _, t := range reqs {
		outstanding := NewSet(t.names...).Difference(placed)
		if len(outstanding) == 0 {
			return false
		}
		for name := range outstanding {
			if !locked.Has(name) {
				return false
			}
		}
	}
	return true
}

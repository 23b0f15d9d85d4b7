package plan

// JointObstacle lists the predecessor tuples at which a joint obstacle
// gating ability could be placed. For each requirement name, in sorted
// order, it collects the branches whose past contains that name, and
// returns the Cartesian product of those branch lists. Abilities with
// fewer than two requirement names need no joint obstacle and yield an
// empty result, as does any requirement not yet reachable from a branch.
func (n *Network) JointObstacle(ability string) ([][]string, error) {
	node, err := n.nodes.lookup(ability, KindAbility)
	if err != nil {
		return nil, err
	}
	names := node.Requirements.Names()
	if len(names) < 2 {
		return nil, nil
	}

	branches := n.Branches()
	pasts := n.pasts()
	perName := make([][]string, len(names))
	for i, name := range names {
		for j, past := range pasts {
			if past.Has(name) {
				perName[i] = append(perName[i], branches[j])
			}
		}
		if len(perName[i]) == 0 {
			return nil, nil
		}
	}
	return product(perName), nil
}

// product returns the Cartesian product of lists, varying the last list
// fastest.
func product(lists [][]string) [][]string {
	out := [][]string{{}}
	for _, list := range lists {
		next := make([][]string, 0, len(out)*len(list))
		for _, prefix := range out {
			for _, item := range list {
				tuple := make([]string, len(prefix), len(prefix)+1)
				copy(tuple, prefix)
				next = append(next, append(tuple, item))
			}
		}
		out = next
	}
	return out
}

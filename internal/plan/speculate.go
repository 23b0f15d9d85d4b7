package plan

// Speculate previews placing ability without touching the network. The
// placement happens on a clone: after the first branch, in topological
// order, whose past already satisfies the ability's requirements, or after
// the given branch when the ability has none. The result lists the nodes
// that would become placed or unlocked, sorted; it is empty when the
// placement opens nothing new.
func (n *Network) Speculate(ability, after string) ([]string, error) {
	node, err := n.nodes.lookup(ability, KindAbility)
	if err != nil {
		return nil, err
	}

	anchor := after
	if len(node.Requirements) > 0 {
		// An already-placed ability cannot follow itself or its own future.
		skip := NewSet(n.net.Descendants(ability)...)
		skip.Add(ability)
		for _, b := range n.Branches() {
			if skip.Has(b) {
				continue
			}
			past, err := n.Past(b)
			if err != nil {
				return nil, err
			}
			if node.Requirements.All(past) {
				anchor = b
				break
			}
		}
	}

	clone := n.Clone()
	if _, err := clone.AddConnection(anchor, ability); err != nil {
		return nil, err
	}
	return clone.universe().Difference(n.universe()).Sorted(), nil
}

package plan

// State is a value snapshot of everything a Network can mutate: the
// predecessor edges (placement is membership in Edges), every node's
// requirement terms by canonical key, and every ability's defeats.
type State struct {
	Edges        map[string][]string
	Requirements map[string][]string
	Defeats      map[string][]string
}

// State captures the current mutable state. The snapshot shares nothing
// with the network.
func (n *Network) State() State {
	s := State{
		Edges:        n.net.Edges(),
		Requirements: make(map[string][]string, len(n.nodes)),
		Defeats:      make(map[string][]string),
	}
	for name, node := range n.nodes {
		s.Requirements[name] = node.Requirements.Keys()
		if node.Kind == KindAbility {
			s.Defeats[name] = append([]string{}, node.Defeats...)
		}
	}
	return s
}

// Clone returns an independent deep copy of the network.
func (n *Network) Clone() *Network {
	return &Network{
		nodes: n.nodes.clone(),
		net:   n.net.Clone(),
	}
}

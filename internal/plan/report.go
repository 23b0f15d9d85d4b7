package plan

// Candidate is one node that can be placed next after a branch.
type Candidate struct {
	Branch string
	Node   string
	Kind   Kind
	Route  Requirements
}

// JointSuggestion proposes a joint obstacle for a locked ability: an
// obstacle placed after one of the Anchors tuples, requiring all of
// Requires together, would give the ability a branch that holds every
// prerequisite.
type JointSuggestion struct {
	Ability  string
	Requires []string
	Anchors  [][]string
}

// Report summarizes the planning state of a network.
type Report struct {
	Order              []string
	UnlockedAbilities  []string
	UnlockedObstacles  []string
	LockedAbilities    []string
	LockedObstacles    []string
	PotentialObstacles []string
	// Eclipsed maps each eclipsed ability to the abilities eclipsing it.
	Eclipsed map[string][]string
	// Speculations maps each unlocked ability to what placing it would
	// newly unlock.
	Speculations     map[string][]string
	NextPlacements   []Candidate
	JointSuggestions []JointSuggestion
}

// PlaceNext lists, for every branch in canonical order, the unplaced nodes
// that could be attached there and the route that allows it.
func (n *Network) PlaceNext() []Candidate {
	var out []Candidate
	for _, branch := range n.Branches() {
		enabled, err := n.EnabledNodes(branch, true)
		if err != nil {
			continue
		}
		for _, name := range sortedNames(enabled) {
			// Requirement-free abilities fit anywhere; list them once, under start.
			if len(enabled[name]) == 0 && branch != Start {
				continue
			}
			out = append(out, Candidate{
				Branch: branch,
				Node:   name,
				Kind:   n.nodes[name].Kind,
				Route:  enabled[name],
			})
		}
	}
	return out
}

// NewObstacles suggests joint obstacles for every locked ability that
// needs two or more prerequisites together.
func (n *Network) NewObstacles() []JointSuggestion {
	var out []JointSuggestion
	for _, ability := range n.LockedAbilities() {
		anchors, err := n.JointObstacle(ability)
		if err != nil || len(anchors) == 0 {
			continue
		}
		out = append(out, JointSuggestion{
			Ability:  ability,
			Requires: n.nodes[ability].Requirements.Names(),
			Anchors:  anchors,
		})
	}
	return out
}

// Eclipsed maps each ability with derived prerequisites to the abilities
// that eclipse it.
func (n *Network) Eclipsed() map[string][]string {
	out := make(map[string][]string)
	for _, name := range n.nodes.names(KindAbility) {
		if reqs := n.nodes[name].Requirements; len(reqs) > 0 {
			out[name] = reqs.Names()
		}
	}
	return out
}

// Analyze composes the analysis queries into a single report.
func (n *Network) Analyze() (Report, error) {
	r := Report{
		Order:              n.Branches(),
		UnlockedAbilities:  n.UnlockedAbilities(),
		UnlockedObstacles:  n.UnlockedObstacles(),
		LockedAbilities:    n.LockedAbilities(),
		LockedObstacles:    n.LockedObstacles(false),
		PotentialObstacles: n.LockedObstacles(true),
		Eclipsed:           n.Eclipsed(),
		Speculations:       make(map[string][]string),
		NextPlacements:     n.PlaceNext(),
		JointSuggestions:   n.NewObstacles(),
	}
	for _, ability := range r.UnlockedAbilities {
		opened, err := n.Speculate(ability, Start)
		if err != nil {
			return Report{}, err
		}
		r.Speculations[ability] = opened
	}
	return r, nil
}

func sortedNames(m map[string]Requirements) []string {
	s := make(Set, len(m))
	for name := range m {
		s.Add(name)
	}
	return s.Sorted()
}

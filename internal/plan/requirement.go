package plan

import (
	"slices"
	"sort"
	"strings"
)

// termKind discriminates the two shapes a requirement term can take.
type termKind int

const (
	termSingle termKind = iota // one prerequisite name
	termJoint                  // all-of group of names
)

// Term is one disjunct of an unlock condition: either a single
// prerequisite name or a joint group whose names must all be present.
// The zero Term is not valid; build terms with Single or Joint.
type Term struct {
	kind  termKind
	names []string
}

// Single returns a term satisfied when name is available.
func Single(name string) Term {
	return Term{kind: termSingle, names: []string{name}}
}

// Joint returns a term satisfied when every one of names is available.
// Names are sorted and deduplicated. A group of one name is a Single term.
func Joint(names ...string) Term {
	uniq := NewSet(names...).Sorted()
	if len(uniq) == 1 {
		return Single(uniq[0])
	}
	return Term{kind: termJoint, names: uniq}
}

// IsJoint reports whether the term is an all-of group.
func (t Term) IsJoint() bool { return t.kind == termJoint }

// Names returns a copy of the names the term refers to.
func (t Term) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Satisfied reports whether the term holds against avail.
func (t Term) Satisfied(avail Set) bool {
	switch t.kind {
	case termSingle:
		return avail.Has(t.names[0])
	case termJoint:
		return avail.ContainsAll(t.names)
	}
	return false
}

// Equal reports whether t and u are the same kind of term over the same
// names.
func (t Term) Equal(u Term) bool {
	return t.kind == u.kind && slices.Equal(t.names, u.names)
}

// Key returns a sort and display key for the term. Joint groups render as
// "a+b". Keys are not unique when a name itself contains "+"; compare
// terms with Equal.
func (t Term) Key() string {
	return strings.Join(t.names, "+")
}

// String implements fmt.Stringer.
func (t Term) String() string {
	if t.kind == termJoint {
		return "(" + strings.Join(t.names, " & ") + ")"
	}
	return t.names[0]
}

// Requirements is the set of terms gating a node, without duplicates.
type Requirements []Term

// Has reports whether an equal term is already present.
func (r Requirements) Has(t Term) bool {
	return slices.ContainsFunc(r, t.Equal)
}

// With returns r with t appended unless an equal term is already present.
func (r Requirements) With(t Term) Requirements {
	if r.Has(t) {
		return r
	}
	return append(r, t)
}

// Any reports whether at least one term is satisfied. This is the obstacle
// policy: each term is an alternative route past the obstacle.
func (r Requirements) Any(avail Set) bool {
	for _, t := range r {
		if t.Satisfied(avail) {
			return true
		}
	}
	return false
}

// All reports whether every term is satisfied at once. This is the ability
// policy: eclipse-derived prerequisites stack. An empty set is satisfied.
func (r Requirements) All(avail Set) bool {
	for _, t := range r {
		if !t.Satisfied(avail) {
			return false
		}
	}
	return true
}

// Enablers returns the terms currently satisfied by avail.
func (r Requirements) Enablers(avail Set) Requirements {
	var out Requirements
	for _, t := range r {
		if t.Satisfied(avail) {
			out = append(out, t)
		}
	}
	return out
}

// Names returns every name mentioned by any term, sorted.
func (r Requirements) Names() []string {
	s := make(Set)
	for _, t := range r {
		s.Add(t.names...)
	}
	return s.Sorted()
}

// Keys returns the canonical keys of the terms, sorted.
func (r Requirements) Keys() []string {
	keys := make([]string, len(r))
	for i, t := range r {
		keys[i] = t.Key()
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a copy that shares no backing array with r.
func (r Requirements) Clone() Requirements {
	if r == nil {
		return nil
	}
	out := make(Requirements, len(r))
	for i, t := range r {
		out[i] = Term{kind: t.kind, names: t.Names()}
	}
	return out
}

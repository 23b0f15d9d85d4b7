package plan

import "sort"

// Eclipses reports whether an ability defeating a makes an ability
// defeating b redundant: a covers every obstacle in b and the two sets
// differ in size. Equal-size sets never eclipse each other.
func Eclipses(a, b []string) bool {
	if len(a) == len(b) {
		return false
	}
	return NewSet(a...).ContainsAll(b)
}

// Recompute derives every ability's requirements from scratch. defeats maps
// each ability name to the obstacles it resolves. For every ordered pair
// where A eclipses B, Single(A) is added to B's requirements. Every ability
// in defeats gets an entry, empty when nothing eclipses it, and terms are
// ordered by name so the result is deterministic.
func Recompute(defeats map[string][]string) map[string]Requirements {
	names := make([]string, 0, len(defeats))
	for name := range defeats {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string]Requirements, len(names))
	for _, b := range names {
		var reqs Requirements
		for _, a := range names {
			if a == b {
				continue
			}
			if Eclipses(defeats[a], defeats[b]) {
				reqs = append(reqs, Single(a))
			}
		}
		out[b] = reqs
	}
	return out
}

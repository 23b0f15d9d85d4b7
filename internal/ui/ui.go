// Package ui renders planning results for the terminal.
package ui

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/papapumpkin/puzzplan/internal/history"
	"github.com/papapumpkin/puzzplan/internal/plan"
)

// Printer writes styled output to a terminal or any writer.
type Printer struct {
	w io.Writer
	s styles
}

// New returns a printer writing to stderr with color.
func New() *Printer {
	return NewWithWriter(os.Stderr, true)
}

// NewWithWriter returns a printer writing to w. With color false the
// output carries no escape sequences.
func NewWithWriter(w io.Writer, color bool) *Printer {
	return &Printer{w: w, s: newStyles(color)}
}

func (p *Printer) printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) Error(msg string) {
	p.printf("%s %s\n", p.s.err.Render("error:"), msg)
}

func (p *Printer) Info(msg string) {
	p.printf("%s\n", p.s.muted.Render(msg))
}

func (p *Printer) Success(msg string) {
	p.printf("%s %s\n", p.s.ok.Render(iconOK), msg)
}

// Route formats a requirement set as alternatives separated by "|",
// joint terms in parentheses. An empty set is "(free)".
func Route(r plan.Requirements) string {
	if len(r) == 0 {
		return "(free)"
	}
	terms := make([]string, len(r))
	keys := make([]string, len(r))
	for i, t := range r {
		keys[i] = t.Key()
		terms[i] = t.String()
	}
	sort.Sort(byKey{keys, terms})
	return strings.Join(terms, " | ")
}

type byKey struct{ keys, terms []string }

func (b byKey) Len() int           { return len(b.keys) }
func (b byKey) Less(i, j int) bool { return b.keys[i] < b.keys[j] }
func (b byKey) Swap(i, j int) {
	b.keys[i], b.keys[j] = b.keys[j], b.keys[i]
	b.terms[i], b.terms[j] = b.terms[j], b.terms[i]
}

// name styles a node name by kind.
func (p *Printer) name(kind plan.Kind, name string) string {
	if kind == plan.KindAbility {
		return p.s.ability.Render(name)
	}
	return p.s.obstacle.Render(name)
}

func (p *Printer) list(items []string) string {
	if len(items) == 0 {
		return p.s.muted.Render("(none)")
	}
	return strings.Join(items, ", ")
}

// Enabled prints the nodes enabled at a branch with their routes.
func (p *Printer) Enabled(n *plan.Network, branch string, enabled map[string]plan.Requirements) {
	p.printf("%s\n", p.s.heading.Render("enabled at "+branch))
	if len(enabled) == 0 {
		p.printf("  %s\n", p.s.muted.Render("(nothing)"))
		return
	}
	names := make([]string, 0, len(enabled))
	for name := range enabled {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		kind := plan.KindObstacle
		if node, ok := n.Node(name); ok {
			kind = node.Kind
		}
		p.printf("  %s %-16s %s\n", iconBullet, p.name(kind, name), p.s.route.Render(Route(enabled[name])))
	}
}

// Candidates prints placement candidates grouped by branch.
func (p *Printer) Candidates(cands []plan.Candidate) {
	p.printf("%s\n", p.s.heading.Render("next placements"))
	if len(cands) == 0 {
		p.printf("  %s\n", p.s.muted.Render("(nothing can be placed)"))
		return
	}
	branch := ""
	for _, c := range cands {
		if c.Branch != branch {
			branch = c.Branch
			p.printf("  after %s\n", branch)
		}
		p.printf("    %s %-16s %s\n", iconPending, p.name(c.Kind, c.Node), p.s.route.Render(Route(c.Route)))
	}
}

// Locked prints locked abilities and obstacles. Obstacles that would open
// once a locked ability opens are marked as potential.
func (p *Printer) Locked(abilities, obstacles, potential []string) {
	p.printf("%s\n", p.s.heading.Render("locked"))
	p.printf("  abilities:  %s\n", p.s.locked.Render(p.list(abilities)))

	hard := plan.NewSet(potential...)
	marked := make([]string, len(obstacles))
	for i, o := range obstacles {
		if hard.Has(o) {
			marked[i] = o + " " + iconLocked
		} else {
			marked[i] = o
		}
	}
	p.printf("  obstacles:  %s\n", p.s.locked.Render(p.list(marked)))
	if len(obstacles) > 0 {
		p.printf("  %s\n", p.s.muted.Render(iconLocked+" stays locked even if every locked ability opens"))
	}
}

// Past prints a node's past.
func (p *Printer) Past(node string, past []string) {
	p.printf("%s %s\n", p.s.heading.Render("past of"), node)
	p.printf("  %s\n", p.list(past))
}

// Speculation prints what placing ability after a branch would unlock.
func (p *Printer) Speculation(ability, after string, opened []string) {
	p.printf("%s %s %s\n", p.s.heading.Render("speculate"), p.s.ability.Render(ability), p.s.muted.Render("after "+after))
	p.printf("  would unlock: %s\n", p.s.ok.Render(p.list(opened)))
}

// JointAnchors prints the predecessor tuples a joint obstacle for ability
// could be placed after.
func (p *Printer) JointAnchors(ability string, requires []string, anchors [][]string) {
	p.printf("%s %s %s\n", p.s.heading.Render("joint obstacle for"), p.s.ability.Render(ability),
		p.s.muted.Render("requires "+strings.Join(requires, " & ")))
	if len(anchors) == 0 {
		p.printf("  %s\n", p.s.muted.Render("(no anchors)"))
		return
	}
	for _, a := range anchors {
		p.printf("  %s after %s\n", iconBullet, strings.Join(a, " + "))
	}
}

// Placement reports a committed placement.
func (p *Printer) Placement(pred, node string, edges []string) {
	if len(edges) == 1 && edges[0] == pred {
		p.Success(fmt.Sprintf("placed %s after %s", node, pred))
		return
	}
	p.Success(fmt.Sprintf("placed %s after %s (joint route: %s)", node, pred, strings.Join(edges, " + ")))
}

// Graph prints every placed node in canonical order with its recorded
// predecessors.
func (p *Printer) Graph(n *plan.Network) {
	p.printf("%s\n", p.s.heading.Render("placements"))
	for _, name := range n.Branches() {
		node, _ := n.Node(name)
		preds := n.Predecessors(name)
		if len(preds) == 0 {
			p.printf("  %s\n", p.name(node.Kind, name))
			continue
		}
		p.printf("  %-16s %s %s\n", p.name(node.Kind, name), p.s.muted.Render(iconArrow), strings.Join(preds, " + "))
	}
}

// Report prints a full analysis.
func (p *Printer) Report(n *plan.Network, r plan.Report) {
	p.Graph(n)
	p.printf("\n%s\n", p.s.heading.Render("unlocked"))
	p.printf("  abilities:  %s\n", p.s.ok.Render(p.list(r.UnlockedAbilities)))
	p.printf("  obstacles:  %s\n", p.s.ok.Render(p.list(r.UnlockedObstacles)))
	p.printf("\n")
	p.Locked(r.LockedAbilities, r.LockedObstacles, r.PotentialObstacles)

	if len(r.Eclipsed) > 0 {
		p.printf("\n%s\n", p.s.heading.Render("eclipsed"))
		names := make([]string, 0, len(r.Eclipsed))
		for name := range r.Eclipsed {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			p.printf("  %-16s by %s\n", p.s.ability.Render(name), strings.Join(r.Eclipsed[name], ", "))
		}
	}

	if len(r.Speculations) > 0 {
		p.printf("\n%s\n", p.s.heading.Render("speculation"))
		names := make([]string, 0, len(r.Speculations))
		for name := range r.Speculations {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			p.printf("  %-16s %s %s\n", p.s.ability.Render(name), iconArrow, p.list(r.Speculations[name]))
		}
	}

	p.printf("\n")
	p.Candidates(r.NextPlacements)

	for _, js := range r.JointSuggestions {
		p.printf("\n")
		p.JointAnchors(js.Ability, js.Requires, js.Anchors)
	}
}

// Valid reports a catalog that replayed cleanly.
func (p *Printer) Valid(path string, n *plan.Network) {
	p.Success(fmt.Sprintf("%s: %d abilities, %d obstacles, %d placed",
		path, len(n.Abilities()), len(n.Obstacles())-1, len(n.Branches())))
}

// Invalid reports a catalog that failed to replay.
func (p *Printer) Invalid(path string, err error) {
	p.printf("%s %s\n  %s %v\n", p.s.err.Render(iconFailed), path, p.s.err.Render(iconBullet), err)
}

// History prints placements in commit order.
func (p *Printer) History(entries []history.Entry) {
	p.printf("%s\n", p.s.heading.Render("history"))
	if len(entries) == 0 {
		p.printf("  %s\n", p.s.muted.Render("(no placements)"))
		return
	}
	for _, e := range entries {
		edges := ""
		if len(e.Edges) > 0 && !(len(e.Edges) == 1 && e.Edges[0] == e.Predecessor) {
			edges = p.s.muted.Render(" (" + strings.Join(e.Edges, " + ") + ")")
		}
		p.printf("  %4d  %s  %s after %s%s\n", e.ID,
			p.s.muted.Render(e.PlacedAt.Format("2006-01-02 15:04:05")), e.Node, e.Predecessor, edges)
	}
}

// Sessions prints a session summary table.
func (p *Printer) Sessions(sessions []history.Session) {
	p.printf("%s\n", p.s.heading.Render("sessions"))
	if len(sessions) == 0 {
		p.printf("  %s\n", p.s.muted.Render("(no sessions)"))
		return
	}
	for _, s := range sessions {
		p.printf("  %s  %3d placement(s)  %s\n", s.ID, s.Placements,
			p.s.muted.Render(s.Last.Format("2006-01-02 15:04:05")))
	}
}

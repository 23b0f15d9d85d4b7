// Package catalog reads and writes the TOML catalog a planning session is
// built from, and replays it into a plan.Network.
//
// A catalog declares the initial abilities connected from start, abilities
// with the obstacles they defeat, standalone obstacles and joint defeats,
// followed by a log of steps (placements and later defeats edits) in the
// order they were committed. A catalog is valid exactly when Build can
// replay it.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/papapumpkin/puzzplan/internal/plan"
)

// Ability is one [[ability]] table.
type Ability struct {
	Name    string   `toml:"name"`
	Defeats []string `toml:"defeats,omitempty"`
}

// Obstacle is one [[obstacle]] table.
type Obstacle struct {
	Name string `toml:"name"`
}

// Joint is one [[joint]] table: the abilities that resolve Obstacle together.
type Joint struct {
	Obstacle  string   `toml:"obstacle"`
	Abilities []string `toml:"abilities"`
}

// Step operations.
const (
	OpPlace   = "place"
	OpDefeats = "defeats"
	OpJoint   = "joint"
)

// ErrUnknownStep is returned by Build for a step whose op it does not know.
var ErrUnknownStep = errors.New("unknown step")

// Step is one [[step]] table. Op decides which of the other fields are set.
type Step struct {
	Op        string   `toml:"op"`
	After     string   `toml:"after,omitempty"`
	Node      string   `toml:"node,omitempty"`
	Ability   string   `toml:"ability,omitempty"`
	Obstacle  string   `toml:"obstacle,omitempty"`
	Abilities []string `toml:"abilities,omitempty"`
}

// String implements fmt.Stringer.
func (s Step) String() string {
	switch s.Op {
	case OpPlace:
		return fmt.Sprintf("place %s after %s", s.Node, s.After)
	case OpDefeats:
		return fmt.Sprintf("%s defeats %s", s.Ability, s.Obstacle)
	case OpJoint:
		return fmt.Sprintf("%s resolved by %s together", s.Obstacle, strings.Join(s.Abilities, " & "))
	}
	return s.Op
}

// File is the on-disk catalog.
type File struct {
	Start     []string   `toml:"start"`
	Abilities []Ability  `toml:"ability,omitempty"`
	Obstacles []Obstacle `toml:"obstacle,omitempty"`
	Joints    []Joint    `toml:"joint,omitempty"`
	Steps     []Step     `toml:"step,omitempty"`
}

// Load reads a catalog from the given path. A missing file yields an empty
// catalog, so the first edit creates it.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &File{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("catalog: reading %s: %w", path, err)
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: parsing %s: %w", path, err)
	}
	return &f, nil
}

// Save writes the catalog to the given path, creating parent directories
// as needed.
func Save(path string, f *File) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("catalog: creating directory %s: %w", dir, err)
	}

	data, err := toml.Marshal(f)
	if err != nil {
		return fmt.Errorf("catalog: marshaling %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("catalog: writing %s: %w", path, err)
	}
	return nil
}

// Build replays the catalog into a fresh network: initial abilities first,
// then standalone obstacles, declared abilities and their defeats, joint
// defeats, and finally every step in the order it was committed. An
// [[ability]] table may name an initial ability to give it defeats.
func Build(f *File) (*plan.Network, error) {
	n, err := plan.New(f.Start...)
	if err != nil {
		return nil, fmt.Errorf("catalog: start: %w", err)
	}
	for _, o := range f.Obstacles {
		if err := n.AddObstacle(o.Name); err != nil {
			return nil, fmt.Errorf("catalog: obstacle %s: %w", o.Name, err)
		}
	}
	for _, a := range f.Abilities {
		if slices.Contains(f.Start, a.Name) {
			for _, o := range a.Defeats {
				if err := n.Defeats(a.Name, o); err != nil {
					return nil, fmt.Errorf("catalog: ability %s: %w", a.Name, err)
				}
			}
			continue
		}
		if err := n.AddAbility(a.Name, a.Defeats...); err != nil {
			return nil, fmt.Errorf("catalog: ability %s: %w", a.Name, err)
		}
	}
	for _, j := range f.Joints {
		if err := n.DefeatsJointly(j.Abilities, j.Obstacle); err != nil {
			return nil, fmt.Errorf("catalog: joint %s: %w", j.Obstacle, err)
		}
	}
	for i, s := range f.Steps {
		if err := apply(n, s); err != nil {
			return nil, fmt.Errorf("catalog: step %d (%s): %w", i+1, s, err)
		}
	}
	return n, nil
}

// apply replays one step against n.
func apply(n *plan.Network, s Step) error {
	switch s.Op {
	case OpPlace:
		_, err := n.AddConnection(s.After, s.Node)
		return err
	case OpDefeats:
		if _, ok := n.Node(s.Ability); !ok {
			return n.AddAbility(s.Ability, s.Obstacle)
		}
		return n.Defeats(s.Ability, s.Obstacle)
	case OpJoint:
		return n.DefeatsJointly(s.Abilities, s.Obstacle)
	}
	return fmt.Errorf("%w: %q", ErrUnknownStep, s.Op)
}

// AddDefeat appends a step recording that ability defeats obstacle. The
// ability is created on replay when the catalog does not declare it.
func (f *File) AddDefeat(ability, obstacle string) {
	f.Steps = append(f.Steps, Step{Op: OpDefeats, Ability: ability, Obstacle: obstacle})
}

// AddJoint appends a step recording that abilities resolve obstacle together.
func (f *File) AddJoint(obstacle string, abilities ...string) {
	f.Steps = append(f.Steps, Step{Op: OpJoint, Obstacle: obstacle, Abilities: abilities})
}

// Place appends a committed placement.
func (f *File) Place(after, node string) {
	f.Steps = append(f.Steps, Step{Op: OpPlace, After: after, Node: node})
}

// Clone returns a deep copy of the catalog, so callers can try an edit
// and validate it with Build before keeping it.
func (f *File) Clone() *File {
	c := &File{
		Start:     slices.Clone(f.Start),
		Obstacles: slices.Clone(f.Obstacles),
	}
	for _, a := range f.Abilities {
		c.Abilities = append(c.Abilities, Ability{Name: a.Name, Defeats: slices.Clone(a.Defeats)})
	}
	for _, j := range f.Joints {
		c.Joints = append(c.Joints, Joint{Obstacle: j.Obstacle, Abilities: slices.Clone(j.Abilities)})
	}
	for _, s := range f.Steps {
		s.Abilities = slices.Clone(s.Abilities)
		c.Steps = append(c.Steps, s)
	}
	return c
}

package plan

import (
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSpeculate(t *testing.T) {
	t.Parallel()

	t.Run("opens obstacle", func(t *testing.T) {
		t.Parallel()
		n := rockWorld(t)
		before := n.State()
		got, err := n.Speculate("punch", Start)
		mustDo(t, err)
		if !slices.Equal(got, []string{"door"}) {
			t.Errorf("Speculate(punch) = %v, want [door]", got)
		}
		if diff := cmp.Diff(before, n.State()); diff != "" {
			t.Errorf("Speculate mutated the network (-before +after):\n%s", diff)
		}
		if n.Placed("punch") {
			t.Error("punch placed on the original network")
		}
	})

	t.Run("attaches to first satisfying branch", func(t *testing.T) {
		t.Parallel()
		n := jointWorld(t)
		mustDo(t, n.DefeatsJointly([]string{"jump", "punch"}, "gate"))
		mustDo(t, n.DefeatsJointly([]string{"jump", "slide"}, "chasm"))
		mustConnect(t, n, "rock", "gate")

		before := n.State()
		got, err := n.Speculate("slide", Start)
		mustDo(t, err)
		if !slices.Equal(got, []string{"chasm"}) {
			t.Errorf("Speculate(slide) = %v, want [chasm]", got)
		}
		if diff := cmp.Diff(before, n.State()); diff != "" {
			t.Errorf("Speculate mutated the network (-before +after):\n%s", diff)
		}
	})

	t.Run("no satisfying branch", func(t *testing.T) {
		t.Parallel()
		n := jointWorld(t)
		before := n.State()
		if _, err := n.Speculate("slide", Start); !errors.Is(err, ErrNotEnabled) {
			t.Errorf("got %v, want ErrNotEnabled", err)
		}
		if diff := cmp.Diff(before, n.State()); diff != "" {
			t.Errorf("failed Speculate mutated the network (-before +after):\n%s", diff)
		}
	})

	t.Run("already placed opens nothing", func(t *testing.T) {
		t.Parallel()
		n := rockWorld(t)
		got, err := n.Speculate("jump", Start)
		mustDo(t, err)
		if len(got) != 0 {
			t.Errorf("Speculate(jump) = %v, want empty", got)
		}
	})

	t.Run("wrong kind", func(t *testing.T) {
		t.Parallel()
		n := rockWorld(t)
		if _, err := n.Speculate("rock", Start); !errors.Is(err, ErrKindMismatch) {
			t.Errorf("got %v, want ErrKindMismatch", err)
		}
		if _, err := n.Speculate("nope", Start); !errors.Is(err, ErrUnknownNode) {
			t.Errorf("got %v, want ErrUnknownNode", err)
		}
	})
}

func TestJointObstacle(t *testing.T) {
	t.Parallel()

	t.Run("cartesian product of branches", func(t *testing.T) {
		t.Parallel()
		n := jointWorld(t)
		got, err := n.JointObstacle("slide")
		mustDo(t, err)
		want := [][]string{
			{"jump", "punch"},
			{"jump", "door"},
			{"rock", "punch"},
			{"rock", "door"},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("JointObstacle(slide) mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("single requirement", func(t *testing.T) {
		t.Parallel()
		n := rockWorld(t)
		got, err := n.JointObstacle("jump")
		mustDo(t, err)
		if len(got) != 0 {
			t.Errorf("JointObstacle(jump) = %v, want empty", got)
		}
	})

	t.Run("unreachable requirement", func(t *testing.T) {
		t.Parallel()
		n := mustNew(t)
		mustDo(t, n.AddAbility("jump", "rock"))
		mustDo(t, n.AddAbility("punch", "door"))
		mustDo(t, n.AddAbility("slide"))
		mustConnect(t, n, Start, "jump")
		got, err := n.JointObstacle("slide")
		mustDo(t, err)
		if len(got) != 0 {
			t.Errorf("JointObstacle(slide) = %v, want empty", got)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		t.Parallel()
		n := rockWorld(t)
		if _, err := n.JointObstacle("door"); !errors.Is(err, ErrKindMismatch) {
			t.Errorf("got %v, want ErrKindMismatch", err)
		}
	})
}

func TestProduct(t *testing.T) {
	t.Parallel()

	got := product([][]string{{"a", "b"}, {"x"}, {"1", "2"}})
	want := [][]string{
		{"a", "x", "1"},
		{"a", "x", "2"},
		{"b", "x", "1"},
		{"b", "x", "2"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("product mismatch (-want +got):\n%s", diff)
	}
}

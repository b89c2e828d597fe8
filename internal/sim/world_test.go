package sim

import (
	"testing"
	"time"

	"github.com/arcadeworks/gridsnake/internal/config"
	"github.com/arcadeworks/gridsnake/internal/core"
)

func newTestWorld(t *testing.T, seed int64) *World {
	t.Helper()
	w, err := New(config.Default(), seed)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return w
}

// tick runs one update cycle with exactly one elapsed movement interval.
func tick(w *World, actions ...core.Action) Report {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return w.Update(150*time.Millisecond, in)
}

// idle runs one update cycle too short for the movement timer to fire.
func idle(w *World, actions ...core.Action) Report {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return w.Update(time.Millisecond, in)
}

// clearFood removes every live food entity so movement tests are not
// disturbed by the randomly placed initial food.
func clearFood(w *World) {
	for _, id := range w.store.ByKind(KindFood) {
		w.store.Despawn(id)
	}
}

// setSegments replaces the snake's body with segments at the given positions.
func setSegments(w *World, positions []Position) {
	for _, id := range w.segments {
		w.store.Despawn(id)
	}
	w.segments = w.segments[:0]
	for _, p := range positions {
		w.segments = append(w.segments, w.store.Spawn(KindSegment, p))
	}
}

func TestInitialState(t *testing.T) {
	w := newTestWorld(t, 1)
	snap := w.Snapshot()

	if snap.Head != (Position{X: 3, Y: 3}) {
		t.Errorf("head at %v, want (3,3)", snap.Head)
	}
	if snap.Dir != DirUp || snap.Intent != DirUp {
		t.Errorf("directions %v/%v, want up/up", snap.Dir, snap.Intent)
	}
	if len(snap.Segments) != 1 || snap.Segments[0] != (Position{X: 3, Y: 2}) {
		t.Errorf("segments %v, want [(3,2)]", snap.Segments)
	}
	if len(snap.Foods) != 1 {
		t.Errorf("got %d foods, want 1", len(snap.Foods))
	}
	if snap.Entities != 3 {
		t.Errorf("got %d entities, want 3", snap.Entities)
	}
}

func TestHeadFollowsDisplacements(t *testing.T) {
	w := newTestWorld(t, 1)
	clearFood(w)

	steps := []struct {
		action core.Action
		want   Position
	}{
		{core.ActionNone, Position{X: 3, Y: 4}},  // keeps moving up
		{core.ActionRight, Position{X: 4, Y: 4}},
		{core.ActionNone, Position{X: 5, Y: 4}},
		{core.ActionUp, Position{X: 5, Y: 5}},
		{core.ActionLeft, Position{X: 4, Y: 5}},
		{core.ActionDown, Position{X: 4, Y: 4}},
	}

	for i, step := range steps {
		if step.action == core.ActionNone {
			tick(w)
		} else {
			tick(w, step.action)
		}
		if got := w.Snapshot().Head; got != step.want {
			t.Fatalf("step %d: head at %v, want %v", i, got, step.want)
		}
	}
}

func TestReversalRejected(t *testing.T) {
	w := newTestWorld(t, 1)
	clearFood(w)

	// Moving up; pressing down must be silently ignored at commit time.
	rep := tick(w, core.ActionDown)

	snap := w.Snapshot()
	if snap.Dir != DirUp {
		t.Errorf("direction %v after reversal attempt, want up", snap.Dir)
	}
	if snap.Head != (Position{X: 3, Y: 4}) {
		t.Errorf("head at %v, want (3,4)", snap.Head)
	}
	if rep.GameOver {
		t.Error("reversal attempt must not be a terminal event")
	}
}

func TestIntentPriorityAndSameDirectionExcluded(t *testing.T) {
	w := newTestWorld(t, 1)
	clearFood(w)

	// Left outranks down in the latch order.
	tick(w, core.ActionLeft, core.ActionDown)
	if got := w.Snapshot().Dir; got != DirLeft {
		t.Errorf("direction %v, want left (priority order)", got)
	}

	// Moving left: pressing left again is a no-op candidate, down wins.
	tick(w, core.ActionLeft, core.ActionDown)
	if got := w.Snapshot().Dir; got != DirDown {
		t.Errorf("direction %v, want down (current direction excluded)", got)
	}
}

func TestIntentLatchedBetweenTicks(t *testing.T) {
	w := newTestWorld(t, 1)
	clearFood(w)

	// A key tap on a cycle with no elapsed tick must not be lost.
	idle(w, core.ActionRight)
	snap := w.Snapshot()
	if snap.Intent != DirRight {
		t.Fatalf("intent %v after idle-cycle tap, want right", snap.Intent)
	}
	if snap.Dir != DirUp {
		t.Fatalf("direction %v before tick, want up", snap.Dir)
	}

	// Without further input the latched intent commits on the next tick.
	tick(w)
	if got := w.Snapshot().Dir; got != DirRight {
		t.Errorf("direction %v after tick, want right", got)
	}
}

func TestIntentUnchangedWithoutInput(t *testing.T) {
	w := newTestWorld(t, 1)
	clearFood(w)

	idle(w, core.ActionLeft)
	idle(w)
	if got := w.Snapshot().Intent; got != DirLeft {
		t.Errorf("intent %v, want left to persist across empty cycles", got)
	}
}

func TestChainFollowThrough(t *testing.T) {
	w := newTestWorld(t, 1)
	clearFood(w)

	// Head (3,3) moving up, one segment at (3,2). After one tick the
	// segment takes the head's vacated cell and the vacated tail cell is
	// recorded.
	tick(w)

	snap := w.Snapshot()
	if snap.Head != (Position{X: 3, Y: 4}) {
		t.Errorf("head at %v, want (3,4)", snap.Head)
	}
	if len(snap.Segments) != 1 || snap.Segments[0] != (Position{X: 3, Y: 3}) {
		t.Errorf("segments %v, want [(3,3)]", snap.Segments)
	}
	if snap.LastTail != (Position{X: 3, Y: 2}) {
		t.Errorf("last tail %v, want (3,2)", snap.LastTail)
	}
}

func TestBodyShiftsAsRigidChain(t *testing.T) {
	w := newTestWorld(t, 1)
	clearFood(w)
	setSegments(w, []Position{{X: 3, Y: 2}, {X: 3, Y: 1}, {X: 3, Y: 0}})

	tick(w)

	snap := w.Snapshot()
	want := []Position{{X: 3, Y: 3}, {X: 3, Y: 2}, {X: 3, Y: 1}}
	for i, p := range want {
		if snap.Segments[i] != p {
			t.Errorf("segment %d at %v, want %v", i, snap.Segments[i], p)
		}
	}
	if snap.LastTail != (Position{X: 3, Y: 0}) {
		t.Errorf("last tail %v, want (3,0)", snap.LastTail)
	}
}

func TestBoundaryCollision(t *testing.T) {
	w := newTestWorld(t, 1)
	clearFood(w)

	w.store.SetPosition(w.head, Position{X: 0, Y: 5})
	setSegments(w, []Position{{X: 1, Y: 5}})
	w.dir, w.intent = DirLeft, DirLeft

	rep := tick(w)
	if !rep.GameOver {
		t.Fatal("leaving the arena must emit a terminal event")
	}
	if rep.FinalLength != 2 {
		t.Errorf("final length %d, want 2", rep.FinalLength)
	}
}

func TestSelfCollision(t *testing.T) {
	w := newTestWorld(t, 1)
	clearFood(w)

	// A segment coincides with the head's pre-move position: exactly one
	// terminal event, no matter how many segments match.
	w.store.SetPosition(w.head, Position{X: 5, Y: 5})
	setSegments(w, []Position{{X: 5, Y: 5}, {X: 5, Y: 5}, {X: 5, Y: 4}})
	w.dir, w.intent = DirRight, DirRight

	rep := tick(w)
	if !rep.GameOver {
		t.Fatal("self-intersection must emit a terminal event")
	}
}

func TestResetAfterGameOver(t *testing.T) {
	w := newTestWorld(t, 1)
	clearFood(w)

	// Drive left off the arena edge: x 3 -> 2 -> 1 -> 0 -> out.
	var rep Report
	for i := 0; i < 4; i++ {
		rep = tick(w, core.ActionLeft)
	}
	if !rep.GameOver {
		t.Fatal("expected terminal event on fourth tick")
	}

	snap := w.Snapshot()
	if snap.Head != (Position{X: 3, Y: 3}) {
		t.Errorf("head at %v after reset, want (3,3)", snap.Head)
	}
	if snap.Dir != DirUp || snap.Intent != DirUp {
		t.Errorf("directions %v/%v after reset, want up/up", snap.Dir, snap.Intent)
	}
	if len(snap.Segments) != 1 || snap.Segments[0] != (Position{X: 3, Y: 2}) {
		t.Errorf("segments %v after reset, want [(3,2)]", snap.Segments)
	}
	// Reset despawns food too; the spawner refills on its own timer later.
	if snap.Entities != 2 {
		t.Errorf("%d entities after reset, want 2 (head + segment)", snap.Entities)
	}
}

func TestResetDiscardsGrowth(t *testing.T) {
	w := newTestWorld(t, 1)
	clearFood(w)

	// Grow once, then collide: the reset is full, not a rollback.
	w.store.Spawn(KindFood, Position{X: 3, Y: 4})
	tick(w)
	if got := w.Length(); got != 3 {
		t.Fatalf("length %d after eating, want 3", got)
	}

	clearFood(w)
	var rep Report
	for i := 0; i < 4; i++ {
		rep = tick(w, core.ActionLeft)
	}
	if !rep.GameOver {
		t.Fatal("expected terminal event")
	}
	if rep.FinalLength != 3 {
		t.Errorf("final length %d, want 3", rep.FinalLength)
	}
	if got := w.Length(); got != 2 {
		t.Errorf("length %d after reset, want 2", got)
	}
}

func TestDeterminism(t *testing.T) {
	// Two worlds with the same seed and input script stay identical.
	w1 := newTestWorld(t, 12345)
	w2 := newTestWorld(t, 12345)

	script := map[int]core.Action{
		3:  core.ActionRight,
		8:  core.ActionDown,
		15: core.ActionLeft,
		22: core.ActionUp,
	}

	for i := 0; i < 50; i++ {
		if a, ok := script[i]; ok {
			tick(w1, a)
			tick(w2, a)
			continue
		}
		tick(w1)
		tick(w2)
	}

	s1, s2 := w1.Snapshot(), w2.Snapshot()
	if s1.Head != s2.Head {
		t.Errorf("head mismatch: %v vs %v", s1.Head, s2.Head)
	}
	if s1.Dir != s2.Dir {
		t.Errorf("direction mismatch: %v vs %v", s1.Dir, s2.Dir)
	}
	if len(s1.Segments) != len(s2.Segments) {
		t.Errorf("length mismatch: %d vs %d", len(s1.Segments), len(s2.Segments))
	}
	if len(s1.Foods) != len(s2.Foods) {
		t.Fatalf("food count mismatch: %d vs %d", len(s1.Foods), len(s2.Foods))
	}
	for i := range s1.Foods {
		if s1.Foods[i] != s2.Foods[i] {
			t.Errorf("food %d mismatch: %v vs %v", i, s1.Foods[i], s2.Foods[i])
		}
	}
}

func TestEntitiesViewExposesSizeHints(t *testing.T) {
	w := newTestWorld(t, 1)

	var sawHead, sawSegment, sawFood bool
	for _, e := range w.Entities() {
		switch e.Kind {
		case KindHead:
			sawHead = true
			if e.Size != 0.65 {
				t.Errorf("head size hint %v, want 0.65", e.Size)
			}
		case KindSegment:
			sawSegment = true
			if e.Size != 0.65 {
				t.Errorf("segment size hint %v, want 0.65", e.Size)
			}
		case KindFood:
			sawFood = true
			if e.Size != 0.8 {
				t.Errorf("food size hint %v, want 0.8", e.Size)
			}
		}
	}
	if !sawHead || !sawSegment || !sawFood {
		t.Errorf("missing roles in entity view: head=%v segment=%v food=%v", sawHead, sawSegment, sawFood)
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Arena.Width = 0
	if _, err := New(cfg, 1); err == nil {
		t.Error("expected error for zero-width arena")
	}

	cfg = config.Default()
	cfg.Start.Direction = "sideways"
	if _, err := New(cfg, 1); err == nil {
		t.Error("expected error for unknown start direction")
	}
}

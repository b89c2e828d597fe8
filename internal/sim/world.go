// Package sim implements the tick-driven snake simulation: entity lifecycle,
// direction-intent resolution, fixed-interval movement, collision detection,
// growth propagation and timed food spawning, coordinated through one
// fixed-order update cycle. Rendering and input decoding live elsewhere;
// the simulation consumes already-decoded direction signals and exposes
// entity positions plus size hints for a render adapter to consume.
package sim

import (
	"math/rand"
	"time"

	"github.com/arcadeworks/gridsnake/internal/config"
	"github.com/arcadeworks/gridsnake/internal/core"
)

// World holds all per-cycle shared simulation state: the entity store, the
// head's direction pair, the body order, timers and the cycle event flags.
// It is single-threaded by construction; every component runs to completion
// within one Update call in a fixed order.
type World struct {
	cfg config.Config
	rng *rand.Rand

	store *Store

	// Head state. Exactly one head exists during normal play; intent is
	// latched from input every cycle, dir changes only on elapsed ticks.
	head   ID
	dir    Direction
	intent Direction

	// Fixed at construction, reused on every reset.
	startDir Direction

	// Body order, index 0 nearest the head. Kept in lockstep with the store.
	segments []ID

	// Position vacated by the tail during the most recent movement tick.
	// Read by growth within the same cycle, stale afterwards.
	lastTail Position

	moveTimer *IntervalTimer
	foodTimer *IntervalTimer
	events    cycleEvents
}

// Report summarizes one update cycle for the platform layer.
type Report struct {
	Ticked      bool // a movement tick elapsed this cycle
	Ate         bool // food was consumed this cycle
	GameOver    bool // a terminal collision occurred this cycle
	FinalLength int  // snake length (head + segments) at game over, else 0
}

// New creates a world from a validated configuration and RNG seed, spawning
// the initial snake and one food entity.
func New(cfg config.Config, seed int64) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	startDir, err := ParseDirection(cfg.Start.Direction)
	if err != nil {
		return nil, err
	}

	w := &World{
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(seed)),
		store:     NewStore(),
		moveTimer: NewIntervalTimer(time.Duration(cfg.Timing.MoveIntervalMS) * time.Millisecond),
		foodTimer: NewIntervalTimer(time.Duration(cfg.Timing.FoodIntervalMS) * time.Millisecond),
	}
	w.startDir = startDir
	w.spawnSnake()
	w.spawnFood()
	return w, nil
}

// Update runs one full cycle. The stage order is a hard dependency: growth
// needs the growth event from eating and the tail position from movement,
// and the game-over reset must run after every other effect of the cycle.
func (w *World) Update(dt time.Duration, in core.InputFrame) Report {
	w.moveTimer.Tick(dt)
	w.latchIntent(in)

	if w.moveTimer.Finished() {
		w.stepMovement()
		w.checkEating()
	}
	if w.events.growth {
		w.grow()
	}

	// The spawner's triggers are independent: an elapsed food timer and a
	// growth event in the same cycle each spawn, producing two food
	// entities. Documented behavior, not a guarded invariant.
	w.foodTimer.Tick(dt)
	if w.foodTimer.Finished() {
		w.spawnFood()
	}
	if w.events.growth {
		w.spawnFood()
	}

	rep := Report{
		Ticked:   w.moveTimer.Finished(),
		Ate:      w.events.growth,
		GameOver: w.events.gameOver,
	}
	if w.events.gameOver {
		rep.FinalLength = len(w.segments) + 1
		w.reset()
	}
	w.events.clear()
	return rep
}

// spawnSnake creates the starting configuration: one segment and a fresh
// head with both direction fields at the initial direction.
func (w *World) spawnSnake() {
	seg := w.store.Spawn(KindSegment, Position{X: w.cfg.Start.SegmentX, Y: w.cfg.Start.SegmentY})
	w.segments = append(w.segments[:0], seg)
	w.head = w.store.Spawn(KindHead, Position{X: w.cfg.Start.HeadX, Y: w.cfg.Start.HeadY})
	w.dir = w.startDir
	w.intent = w.startDir
}

// reset despawns every simulation entity and reinitializes the snake. It is
// a full state reset: length and elapsed time are not preserved. Food
// reappears via the spawner's own timer, not here.
func (w *World) reset() {
	for _, id := range w.store.ByKind(KindSegment) {
		w.store.Despawn(id)
	}
	for _, id := range w.store.ByKind(KindFood) {
		w.store.Despawn(id)
	}
	w.store.Despawn(w.head)
	w.spawnSnake()
}

// ArenaWidth returns the playfield width in cells.
func (w *World) ArenaWidth() int {
	return w.cfg.Arena.Width
}

// ArenaHeight returns the playfield height in cells.
func (w *World) ArenaHeight() int {
	return w.cfg.Arena.Height
}

// Length returns the current snake length, head included.
func (w *World) Length() int {
	return len(w.segments) + 1
}

// EntityView is the render adapter's view of one live entity: its role, grid
// position and sprite extent in cell units.
type EntityView struct {
	ID   ID
	Kind Kind
	Pos  Position
	Size float64
}

// Entities returns a view of every live entity in stable handle order.
func (w *World) Entities() []EntityView {
	views := make([]EntityView, 0, w.store.Len())
	for _, kind := range []Kind{KindHead, KindSegment, KindFood} {
		for _, id := range w.store.ByKind(kind) {
			views = append(views, EntityView{
				ID:   id,
				Kind: kind,
				Pos:  w.store.Position(id),
				Size: kind.SizeHint(),
			})
		}
	}
	return views
}

package sim

import "github.com/arcadeworks/gridsnake/internal/core"

// latchIntent updates the head's intended direction from this cycle's input.
// It runs every cycle regardless of the movement timer: fast key taps
// between ticks must not be lost. Candidates are tried in a fixed priority
// order, skipping the direction the snake is already moving in (a no-op);
// rejection of the literal opposite happens at commit time in stepMovement.
// With no recognized input the intent is left unchanged.
func (w *World) latchIntent(in core.InputFrame) {
	switch {
	case w.dir != DirLeft && in.Has(core.ActionLeft):
		w.intent = DirLeft
	case w.dir != DirDown && in.Has(core.ActionDown):
		w.intent = DirDown
	case w.dir != DirUp && in.Has(core.ActionUp):
		w.intent = DirUp
	case w.dir != DirRight && in.Has(core.ActionRight):
		w.intent = DirRight
	}
}

// stepMovement advances the snake by one cell on an elapsed movement tick.
// Reversal attempts are silently ignored rather than erroring. Boundary exit
// and self-intersection raise the game-over event; movement still completes
// positionally, the reset handler restores a valid state at the end of the
// cycle.
func (w *World) stepMovement() {
	if w.intent != w.dir.Opposite() {
		w.dir = w.intent
	}

	lastHead := w.store.Position(w.head)
	next := w.dir.Shift(lastHead)
	w.store.SetPosition(w.head, next)

	if next.X < 0 || next.Y < 0 || next.X >= w.cfg.Arena.Width || next.Y >= w.cfg.Arena.Height {
		w.events.gameOver = true
	}

	// Capture every segment position before any overwrite; the chain shift
	// reads pre-tick positions and a shared mutable store would otherwise
	// corrupt them.
	prev := make([]Position, len(w.segments))
	for i, id := range w.segments {
		prev[i] = w.store.Position(id)
		if prev[i] == lastHead {
			w.events.gameOver = true
		}
	}

	// Rigid chain follow-through: segment 0 takes the head's vacated cell,
	// segment i takes segment i-1's.
	ahead := lastHead
	for i, id := range w.segments {
		w.store.SetPosition(id, ahead)
		ahead = prev[i]
	}
	w.lastTail = ahead
}

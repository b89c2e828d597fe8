package sim

// Snapshot captures the observable simulation state for determinism checks
// and tests.
type Snapshot struct {
	Head     Position
	Dir      Direction
	Intent   Direction
	Segments []Position // head-to-tail order
	Foods    []Position
	LastTail Position
	Entities int // live entity count
}

// Snapshot returns the current simulation snapshot.
func (w *World) Snapshot() Snapshot {
	segs := make([]Position, len(w.segments))
	for i, id := range w.segments {
		segs[i] = w.store.Position(id)
	}
	var foods []Position
	for _, id := range w.store.ByKind(KindFood) {
		foods = append(foods, w.store.Position(id))
	}
	return Snapshot{
		Head:     w.store.Position(w.head),
		Dir:      w.dir,
		Intent:   w.intent,
		Segments: segs,
		Foods:    foods,
		LastTail: w.lastTail,
		Entities: w.store.Len(),
	}
}

package sim

// checkEating compares every head position with every live food position on
// an elapsed movement tick. A match despawns that food and raises the growth
// event. Effectively O(1) with one head and one food; kept as a nested
// comparison so multiple food instances need no redesign.
func (w *World) checkEating() {
	headPos := w.store.Position(w.head)
	for _, id := range w.store.ByKind(KindFood) {
		if w.store.Position(id) == headPos {
			w.store.Despawn(id)
			w.events.growth = true
		}
	}
}

// grow appends one segment at the cell the tail vacated during this cycle's
// movement tick. Growth runs after movement and eating within the cycle;
// that ordering is what keeps lastTail fresh.
func (w *World) grow() {
	id := w.store.Spawn(KindSegment, w.lastTail)
	w.segments = append(w.segments, id)
}

// spawnFood places a food entity at a uniformly random cell. There is no
// occupancy check: overlap with the snake is possible and not an error.
func (w *World) spawnFood() {
	w.store.Spawn(KindFood, Position{
		X: w.rng.Intn(w.cfg.Arena.Width),
		Y: w.rng.Intn(w.cfg.Arena.Height),
	})
}

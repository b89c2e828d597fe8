package sim

// cycleEvents are single-cycle-lifetime flags. Consumers only ever query
// presence, never payload, so each event kind is a boolean: set anywhere in
// the cycle, visible to every later stage of the same cycle, cleared when
// the cycle ends. Multiple events of one kind in a cycle coalesce.
type cycleEvents struct {
	growth   bool
	gameOver bool
}

func (e *cycleEvents) clear() {
	*e = cycleEvents{}
}

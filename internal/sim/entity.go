package sim

import "fmt"

// ID is a handle into the entity store. Handles are indices, not live
// references, so the segment-order list and the store cannot form
// ownership cycles.
type ID int

// Kind tags an entity with its simulation role. The render adapter uses the
// kind (and its size hint) to pick visuals; the simulation uses it for
// lifecycle queries.
type Kind uint8

const (
	KindHead Kind = iota
	KindSegment
	KindFood
)

func (k Kind) String() string {
	switch k {
	case KindHead:
		return "head"
	case KindSegment:
		return "segment"
	case KindFood:
		return "food"
	default:
		return "unknown"
	}
}

// SizeHint returns the sprite extent of this entity kind as a fraction of
// one grid cell. The core exposes it; screen-space scaling is the render
// adapter's job.
func (k Kind) SizeHint() float64 {
	if k == KindFood {
		return 0.8
	}
	return 0.65
}

type entity struct {
	kind Kind
	pos  Position
	live bool
}

// Store is an arena-style container for live simulation entities. Despawned
// slots are recycled. Accessing a despawned handle is a programming-contract
// violation: the segment-order list and the store must stay in lockstep, so
// a stale handle means the simulation is corrupt and the store panics.
type Store struct {
	entities []entity
	free     []ID
	liveN    int
}

// NewStore creates an empty entity store.
func NewStore() *Store {
	return &Store{}
}

// Spawn creates a live entity and returns its handle.
func (s *Store) Spawn(kind Kind, pos Position) ID {
	s.liveN++
	if n := len(s.free); n > 0 {
		id := s.free[n-1]
		s.free = s.free[:n-1]
		s.entities[id] = entity{kind: kind, pos: pos, live: true}
		return id
	}
	s.entities = append(s.entities, entity{kind: kind, pos: pos, live: true})
	return ID(len(s.entities) - 1)
}

// Despawn removes an entity. The handle must be live.
func (s *Store) Despawn(id ID) {
	e := s.get(id)
	e.live = false
	s.liveN--
	s.free = append(s.free, id)
}

// Alive reports whether the handle refers to a live entity.
func (s *Store) Alive(id ID) bool {
	return id >= 0 && int(id) < len(s.entities) && s.entities[id].live
}

// Kind returns the role of a live entity.
func (s *Store) Kind(id ID) Kind {
	return s.get(id).kind
}

// Position returns the grid position of a live entity.
func (s *Store) Position(id ID) Position {
	return s.get(id).pos
}

// SetPosition moves a live entity.
func (s *Store) SetPosition(id ID, pos Position) {
	s.get(id).pos = pos
}

// ByKind returns the handles of all live entities with the given role,
// in ascending handle order. The slice is a snapshot: despawning while
// iterating it is safe.
func (s *Store) ByKind(kind Kind) []ID {
	var ids []ID
	for i := range s.entities {
		if s.entities[i].live && s.entities[i].kind == kind {
			ids = append(ids, ID(i))
		}
	}
	return ids
}

// Len returns the number of live entities.
func (s *Store) Len() int {
	return s.liveN
}

func (s *Store) get(id ID) *entity {
	if id < 0 || int(id) >= len(s.entities) || !s.entities[id].live {
		panic(fmt.Sprintf("sim: entity %d is not alive", id))
	}
	return &s.entities[id]
}

package condition

import "github.com/samdwyer/actiontracker/internal/gamedata"

// Instance is one condition record attached to exactly one actor.
// An instance with tier 0 does not exist; it is deleted instead.
type Instance struct {
	ActorID   string
	Key       string
	Tier      int
	Active    bool
	Modifiers []gamedata.Modifier
}

// RecordStore persists condition instances on behalf of the ledger.
// It is the boundary to whatever document store owns actor records.
type RecordStore interface {
	Find(actorID, key string) (Instance, bool)
	Upsert(inst Instance)
	Delete(actorID, key string) bool
	List(actorID string) []Instance
}

// MemoryStore is an in-memory RecordStore. Instances are listed in the
// order they were first created for an actor.
type MemoryStore struct {
	actors map[string][]Instance
}

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{actors: make(map[string][]Instance)}
}

func (s *MemoryStore) index(actorID, key string) int {
	for i, inst := range s.actors[actorID] {
		if inst.Key == key {
			return i
		}
	}
	return -1
}

// Find returns the instance for (actorID, key) if present.
func (s *MemoryStore) Find(actorID, key string) (Instance, bool) {
	i := s.index(actorID, key)
	if i < 0 {
		return Instance{}, false
	}
	return s.actors[actorID][i], true
}

// Upsert replaces the existing instance in place or appends a new one.
func (s *MemoryStore) Upsert(inst Instance) {
	if i := s.index(inst.ActorID, inst.Key); i >= 0 {
		s.actors[inst.ActorID][i] = inst
		return
	}
	s.actors[inst.ActorID] = append(s.actors[inst.ActorID], inst)
}

// Delete removes the instance, reporting whether one existed.
func (s *MemoryStore) Delete(actorID, key string) bool {
	i := s.index(actorID, key)
	if i < 0 {
		return false
	}
	list := s.actors[actorID]
	s.actors[actorID] = append(list[:i:i], list[i+1:]...)
	if len(s.actors[actorID]) == 0 {
		delete(s.actors, actorID)
	}
	return true
}

// List returns a copy of every instance on the actor.
func (s *MemoryStore) List(actorID string) []Instance {
	list := s.actors[actorID]
	if len(list) == 0 {
		return nil
	}
	out := make([]Instance, len(list))
	copy(out, list)
	return out
}

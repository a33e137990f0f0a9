package entity

// Roster holds every actor known to the current session, in insertion order.
type Roster struct {
	actors map[string]*Actor
	order  []string
}

// NewRoster creates an empty roster.
func NewRoster() *Roster {
	return &Roster{actors: make(map[string]*Actor)}
}

// Add inserts or replaces an actor.
func (r *Roster) Add(a *Actor) {
	if _, exists := r.actors[a.ID]; !exists {
		r.order = append(r.order, a.ID)
	}
	r.actors[a.ID] = a
}

// Remove deletes an actor by id.
func (r *Roster) Remove(id string) {
	if _, exists := r.actors[id]; !exists {
		return
	}
	delete(r.actors, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			return
		}
	}
}

// Get returns the actor with the given id, or nil if not found.
func (r *Roster) Get(id string) *Actor {
	return r.actors[id]
}

// Lookup returns the actor's display name.
func (r *Roster) Lookup(id string) (string, bool) {
	a, ok := r.actors[id]
	if !ok {
		return "", false
	}
	return a.Name, true
}

// Feats returns the actor's feats.
func (r *Roster) Feats(id string) ([]string, bool) {
	a, ok := r.actors[id]
	if !ok {
		return nil, false
	}
	return a.Feats, true
}

// All returns every actor in insertion order.
func (r *Roster) All() []*Actor {
	out := make([]*Actor, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.actors[id])
	}
	return out
}

// Count returns the number of actors.
func (r *Roster) Count() int {
	return len(r.order)
}

package combat

// DefaultGateCapacity is the number of handled transitions remembered.
const DefaultGateCapacity = 64

// TransitionKey identifies one logical turn transition.
type TransitionKey struct {
	CombatID    string
	Round       int
	Turn        int
	CombatantID string
}

// Gate admits each transition key once, remembering a bounded history.
// The oldest key is forgotten once the capacity is exceeded.
type Gate struct {
	capacity int
	seen     map[TransitionKey]struct{}
	order    []TransitionKey
}

// NewGate creates a gate. A capacity below 1 uses DefaultGateCapacity.
func NewGate(capacity int) *Gate {
	if capacity < 1 {
		capacity = DefaultGateCapacity
	}
	return &Gate{
		capacity: capacity,
		seen:     make(map[TransitionKey]struct{}, capacity),
		order:    make([]TransitionKey, 0, capacity),
	}
}

// Admit reports whether key has not been seen, recording it if so.
func (g *Gate) Admit(key TransitionKey) bool {
	if _, ok := g.seen[key]; ok {
		return false
	}
	g.seen[key] = struct{}{}
	g.order = append(g.order, key)
	if len(g.order) > g.capacity {
		delete(g.seen, g.order[0])
		g.order = g.order[1:]
	}
	return true
}

// Len returns the number of remembered keys.
func (g *Gate) Len() int {
	return len(g.order)
}

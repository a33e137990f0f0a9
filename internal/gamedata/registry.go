package gamedata

import (
	"errors"
	"sort"
)

// ConditionRegistry holds loaded condition definitions and provides lookup utilities.
// Definitions keep the order they were declared in.
type ConditionRegistry struct {
	conditions map[string]*ConditionDef
	all        []ConditionDef
}

// NewConditionRegistry creates a registry from loaded condition definitions.
func NewConditionRegistry(conditions []ConditionDef) *ConditionRegistry {
	registry := &ConditionRegistry{
		conditions: make(map[string]*ConditionDef, len(conditions)),
		all:        conditions,
	}
	for i := range conditions {
		registry.conditions[conditions[i].Key] = &conditions[i]
	}
	return registry
}

// NewConditionRegistryFromDefs validates hand-built definitions before registering them.
func NewConditionRegistryFromDefs(conditions []ConditionDef) (*ConditionRegistry, error) {
	prepared, err := prepare(conditions)
	if err != nil {
		return nil, err
	}
	return NewConditionRegistry(prepared), nil
}

// LoadConditionRegistry loads and creates a registry from the embedded conditions.yaml.
func LoadConditionRegistry() (*ConditionRegistry, error) {
	conditions, err := LoadConditions()
	if err != nil {
		return nil, err
	}
	if len(conditions) == 0 {
		return nil, errors.New("no conditions loaded from conditions.yaml")
	}
	return NewConditionRegistry(conditions), nil
}

// MustLoadConditionRegistry loads a registry, panicking on error.
func MustLoadConditionRegistry() *ConditionRegistry {
	registry, err := LoadConditionRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the condition definition with the given key, or nil if not found.
func (r *ConditionRegistry) GetByID(key string) *ConditionDef {
	return r.conditions[key]
}

// All returns all condition definitions in declaration order.
func (r *ConditionRegistry) All() []ConditionDef {
	return r.all
}

// ByKind returns the definitions of one kind, in declaration order.
func (r *ConditionRegistry) ByKind(kind ConditionKind) []*ConditionDef {
	var result []*ConditionDef
	for i := range r.all {
		if r.all[i].Kind == kind {
			result = append(result, &r.all[i])
		}
	}
	return result
}

// AutoDecrementing returns the definitions whose tier drops at end of turn.
func (r *ConditionRegistry) AutoDecrementing() []*ConditionDef {
	var result []*ConditionDef
	for i := range r.all {
		if r.all[i].AutoDecrement {
			result = append(result, &r.all[i])
		}
	}
	return result
}

// Keys returns every condition key, sorted.
func (r *ConditionRegistry) Keys() []string {
	keys := make([]string, 0, len(r.conditions))
	for k := range r.conditions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Count returns the number of conditions in the registry.
func (r *ConditionRegistry) Count() int {
	return len(r.all)
}

// Package injector holds the instances registered into one scope.
//
// Instances are kept in insertion order. A lookup by type returns the first
// instance whose dynamic type is assignable to the requested type, so when
// several registrations satisfy the same interface the earliest one wins.
// Lookups are answered from an index keyed by reflect.Type that also
// remembers misses; Insert only fills in the misses the new instance now
// satisfies, which keeps the earliest-wins rule without rescanning.
package injector

import (
	"reflect"
	"sync"
)

const notFound = -1

type Injector struct {
	mu        sync.RWMutex
	instances []any
	index     map[reflect.Type]int
}

func New() *Injector {
	return &Injector{
		index: make(map[reflect.Type]int),
	}
}

// Insert appends instance. Duplicates are kept; nil is ignored.
func (i *Injector) Insert(instance any) bool {
	if instance == nil {
		return false
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	pos := len(i.instances)
	i.instances = append(i.instances, instance)

	concrete := reflect.TypeOf(instance)
	for t, at := range i.index {
		if at == notFound && concrete.AssignableTo(t) {
			i.index[t] = pos
		}
	}
	return true
}

func (i *Injector) LookupFirst(t reflect.Type) (any, bool) {
	if t == nil {
		return nil, false
	}

	i.mu.RLock()
	at, cached := i.index[t]
	if cached {
		defer i.mu.RUnlock()
		if at == notFound {
			return nil, false
		}
		return i.instances[at], true
	}
	i.mu.RUnlock()

	i.mu.Lock()
	defer i.mu.Unlock()

	at = i.scan(t)
	i.index[t] = at
	if at == notFound {
		return nil, false
	}
	return i.instances[at], true
}

func (i *Injector) scan(t reflect.Type) int {
	for pos, instance := range i.instances {
		if reflect.TypeOf(instance).AssignableTo(t) {
			return pos
		}
	}
	return notFound
}

// Clear drops every instance. No teardown hook is invoked on them.
func (i *Injector) Clear() {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.instances = nil
	clear(i.index)
}

func (i *Injector) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.instances)
}

// Types lists the dynamic types of the stored instances in insertion order.
func (i *Injector) Types() []reflect.Type {
	i.mu.RLock()
	defer i.mu.RUnlock()

	types := make([]reflect.Type, len(i.instances))
	for pos, instance := range i.instances {
		types[pos] = reflect.TypeOf(instance)
	}
	return types
}

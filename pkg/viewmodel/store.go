package viewmodel

import (
	"reflect"
	"sync"

	"github.com/shuldan/locator/pkg/contracts"
)

// Store caches the view-models of a single owner.
type Store struct {
	mu     sync.Mutex
	values map[reflect.Type]contracts.ViewModel
	order  []reflect.Type
}

var _ contracts.ViewModelStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{values: make(map[reflect.Type]contracts.ViewModel)}
}

func (s *Store) Get(t reflect.Type) (contracts.ViewModel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	vm, ok := s.values[t]
	return vm, ok
}

// Put caches vm under t. A replaced value is cleared.
func (s *Store) Put(t reflect.Type, vm contracts.ViewModel) {
	s.mu.Lock()
	prev, existed := s.values[t]
	s.values[t] = vm
	if !existed {
		s.order = append(s.order, t)
	}
	s.mu.Unlock()

	if existed && prev != vm {
		prev.OnCleared()
	}
}

// Clear empties the store and calls OnCleared on each cached value in insertion order.
func (s *Store) Clear() {
	s.mu.Lock()
	cleared := make([]contracts.ViewModel, 0, len(s.order))
	for _, t := range s.order {
		cleared = append(cleared, s.values[t])
	}
	s.values = make(map[reflect.Type]contracts.ViewModel)
	s.order = nil
	s.mu.Unlock()

	for _, vm := range cleared {
		vm.OnCleared()
	}
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.values)
}

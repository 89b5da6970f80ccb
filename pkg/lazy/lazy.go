// Package lazy defers a fallible computation until its first access.
package lazy

import "sync"

// Value memoises the first successful result of init. A failed attempt is not
// remembered, so the next Get runs init again.
type Value[T any] struct {
	mu    sync.Mutex
	init  func() (T, error)
	value T
	done  bool
}

func New[T any](init func() (T, error)) *Value[T] {
	return &Value[T]{init: init}
}

func (v *Value[T]) Get() (T, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.done {
		return v.value, nil
	}

	value, err := v.init()
	if err != nil {
		var zero T
		return zero, err
	}

	v.value = value
	v.done = true
	v.init = nil
	return value, nil
}

// MustGet panics with the initialisation error.
func (v *Value[T]) MustGet() T {
	value, err := v.Get()
	if err != nil {
		panic(err)
	}
	return value
}

func (v *Value[T]) Initialized() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.done
}

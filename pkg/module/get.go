package module

import "reflect"

func Get[T any](m *Module) (T, error) {
	instance, err := m.Resolve(reflect.TypeFor[T]())
	if err != nil {
		var zero T
		return zero, err
	}
	return instance.(T), nil
}

func MustGet[T any](m *Module) T {
	v, err := Get[T](m)
	if err != nil {
		panic(err)
	}
	return v
}

func Find[T any](m *Module) (T, bool) {
	instance, ok := m.Lookup(reflect.TypeFor[T]())
	if !ok {
		var zero T
		return zero, false
	}
	return instance.(T), true
}

package locator

import (
	"fmt"
	"reflect"

	"github.com/shuldan/locator/pkg/contracts"
	"github.com/shuldan/locator/pkg/lazy"
	"github.com/shuldan/locator/pkg/viewmodel"
)

// Inject declares a dependency on T. The lookup runs on first Get, module
// scope first and app scope second.
func Inject[T any](s *Scopes) *lazy.Value[T] {
	return lazy.New(func() (T, error) {
		return Resolve[T](s)
	})
}

func Resolve[T any](s *Scopes) (T, error) {
	instance, err := s.Lookup(reflect.TypeFor[T]())
	if err != nil {
		var zero T
		return zero, err
	}
	return instance.(T), nil
}

func MustResolve[T any](s *Scopes) T {
	v, err := Resolve[T](s)
	if err != nil {
		panic(err)
	}
	return v
}

// ViewModelInject declares a view-model cached by owner. owner must be a
// screen or a container owner; the check happens on first Get.
func ViewModelInject[T contracts.ViewModel](s *Scopes, owner contracts.LifecycleOwner) *lazy.Value[T] {
	return lazy.New(func() (T, error) {
		var zero T

		store, err := viewModelStoreOf(owner)
		if err != nil {
			return zero, err
		}

		provider, err := viewmodel.NewProvider(store, s.ViewModelFactory())
		if err != nil {
			return zero, err
		}
		return viewmodel.Get[T](provider)
	})
}

// SharedViewModel declares a view-model resolved straight from the module
// scope, shared by every screen bound to it.
func SharedViewModel[T contracts.ViewModel](s *Scopes) *lazy.Value[T] {
	return lazy.New(func() (T, error) {
		vm, err := s.module.Module().ResolveViewModel(reflect.TypeFor[T]())
		if err != nil {
			var zero T
			return zero, err
		}
		return vm.(T), nil
	})
}

func viewModelStoreOf(owner contracts.LifecycleOwner) (contracts.ViewModelStore, error) {
	switch o := owner.(type) {
	case contracts.ScreenOwner:
		return o.ViewModelStore(), nil
	case contracts.ContainerOwner:
		return o.ViewModelStore(), nil
	default:
		return nil, ErrInvalidScopeOwner.WithDetail("owner", fmt.Sprintf("%T", owner))
	}
}

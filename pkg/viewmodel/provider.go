// Package viewmodel implements the host side of view-model provisioning: a per
// owner cache in front of a factory.
package viewmodel

import (
	"reflect"

	"github.com/shuldan/locator/pkg/contracts"
)

type Provider struct {
	store   contracts.ViewModelStore
	factory contracts.ViewModelFactory
}

func NewProvider(store contracts.ViewModelStore, factory contracts.ViewModelFactory) (*Provider, error) {
	if factory == nil {
		return nil, ErrNilFactory
	}
	if store == nil {
		store = NewStore()
	}
	return &Provider{store: store, factory: factory}, nil
}

// Get returns the cached view-model for t, creating it through the factory on a miss.
func (p *Provider) Get(t reflect.Type) (contracts.ViewModel, error) {
	if vm, ok := p.store.Get(t); ok {
		return vm, nil
	}

	vm, err := p.factory.Create(t)
	if err != nil {
		return nil, err
	}
	if vm == nil {
		return nil, ErrNilViewModel.WithDetail("type", t.String())
	}
	if !reflect.TypeOf(vm).AssignableTo(t) {
		return nil, ErrTypeMismatch.
			WithDetail("type", t.String()).
			WithDetail("got", reflect.TypeOf(vm).String())
	}

	p.store.Put(t, vm)
	return vm, nil
}

func Get[T contracts.ViewModel](p *Provider) (T, error) {
	vm, err := p.Get(reflect.TypeFor[T]())
	if err != nil {
		var zero T
		return zero, err
	}
	return vm.(T), nil
}

// FactoryFunc adapts a function to contracts.ViewModelFactory.
type FactoryFunc func(t reflect.Type) (contracts.ViewModel, error)

func (f FactoryFunc) Create(t reflect.Type) (contracts.ViewModel, error) {
	return f(t)
}

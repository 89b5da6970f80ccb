// Package module wraps one instance store behind typed register and resolve operations.
package module

import (
	"reflect"
	"sync"

	"github.com/shuldan/locator/pkg/contracts"
	"github.com/shuldan/locator/pkg/errors"
	"github.com/shuldan/locator/pkg/injector"
	"github.com/shuldan/locator/pkg/logger"
)

type Module struct {
	name   string
	logger contracts.Logger

	once     sync.Once
	injector *injector.Injector
}

func New(name string, opts ...Option) *Module {
	m := &Module{
		name:   name,
		logger: logger.NewNop(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.logger = m.logger.With("module", name)
	return m
}

func (m *Module) Name() string {
	return m.name
}

func (m *Module) store() *injector.Injector {
	m.once.Do(func() {
		m.injector = injector.New()
	})
	return m.injector
}

// Inject registers instance. Later registrations of a compatible type do not
// shadow earlier ones within the same module.
func (m *Module) Inject(instance any) {
	if !m.store().Insert(instance) {
		m.logger.Warn("ignored nil instance")
		return
	}
	m.logger.Trace("instance registered", "type", reflect.TypeOf(instance).String())
}

// Lookup returns the first registered instance assignable to t.
func (m *Module) Lookup(t reflect.Type) (any, bool) {
	instance, ok := m.store().LookupFirst(t)
	m.logger.Trace("instance lookup", "type", typeName(t), "found", ok)
	return instance, ok
}

func (m *Module) Resolve(t reflect.Type) (any, error) {
	instance, ok := m.Lookup(t)
	if !ok {
		return nil, ErrNotRegistered.WithDetail("type", typeName(t)).WithCause(errors.ErrNotFound)
	}
	return instance, nil
}

// ResolveViewModel answers view-model requests. It uses the same lookup as
// Resolve; the separate entry point lets the view-model provider path evolve
// its own creation policy.
func (m *Module) ResolveViewModel(t reflect.Type) (contracts.ViewModel, error) {
	instance, err := m.Resolve(t)
	if err != nil {
		return nil, err
	}

	vm, ok := instance.(contracts.ViewModel)
	if !ok {
		return nil, ErrNotViewModel.
			WithDetail("type", typeName(t)).
			WithDetail("got", reflect.TypeOf(instance).String())
	}
	return vm, nil
}

// Teardown empties the store. The module stays usable.
func (m *Module) Teardown() {
	n := m.store().Len()
	m.store().Clear()
	m.logger.Debug("module torn down", "released", n)
}

func (m *Module) Len() int {
	return m.store().Len()
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

package locator

import (
	"reflect"

	"github.com/shuldan/locator/pkg/contracts"
	"github.com/shuldan/locator/pkg/errors"
	"github.com/shuldan/locator/pkg/logger"
	"github.com/shuldan/locator/pkg/module"
)

// SetupFunc registers instances into a module.
type SetupFunc func(m *module.Module)

// Scopes carries the app and module locators. It is created once by the
// composition root and passed to every call site that injects dependencies.
type Scopes struct {
	app    *Locator
	module *Locator
	logger contracts.Logger
}

// NewScopes builds both locators. WithRebindPolicy only affects the module scope.
func NewScopes(opts ...Option) *Scopes {
	o := &options{rebind: RebindKeep}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = logger.NewNop()
	}

	return &Scopes{
		app:    New(ScopeApp, WithLogger(o.logger)),
		module: New(ScopeModule, WithLogger(o.logger), WithRebindPolicy(o.rebind)),
		logger: o.logger,
	}
}

func (s *Scopes) App() *Locator {
	return s.app
}

func (s *Scopes) Module() *Locator {
	return s.module
}

// Logger returns the logger both scopes were built with, for hosts that want
// their lifecycles to log alongside the locator.
func (s *Scopes) Logger() contracts.Logger {
	return s.logger
}

// InitAppInjection applies setup to the app scope and returns its locator.
func (s *Scopes) InitAppInjection(setup SetupFunc) *Locator {
	if setup != nil {
		setup(s.app.Module())
	}
	s.logger.Debug("app injection initialised", "instances", s.app.Module().Len())
	return s.app
}

// InitModuleInjection binds the module scope to owner and applies setup to it.
// The module scope is cleared when owner's lifecycle is destroyed.
func (s *Scopes) InitModuleInjection(owner contracts.LifecycleOwner, setup SetupFunc) error {
	if err := s.module.Bind(owner); err != nil {
		return err
	}
	if setup != nil {
		setup(s.module.Module())
	}
	s.logger.Debug("module injection initialised", "instances", s.module.Module().Len())
	return nil
}

// Lookup resolves t from the module scope, then from the app scope.
func (s *Scopes) Lookup(t reflect.Type) (any, error) {
	if instance, ok := s.module.Module().Lookup(t); ok {
		return instance, nil
	}
	if instance, ok := s.app.Module().Lookup(t); ok {
		return instance, nil
	}

	name := "<nil>"
	if t != nil {
		name = t.String()
	}
	return nil, ErrNotInjected.WithDetail("type", name).WithCause(errors.ErrNotFound)
}

// ViewModelFactory returns a factory that creates view-models from the module scope.
func (s *Scopes) ViewModelFactory() contracts.ViewModelFactory {
	return viewModelFactory{scopes: s}
}

type viewModelFactory struct {
	scopes *Scopes
}

func (f viewModelFactory) Create(t reflect.Type) (contracts.ViewModel, error) {
	return f.scopes.module.Module().ResolveViewModel(t)
}

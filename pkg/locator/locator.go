// Package locator binds modules to UI scopes and resolves dependencies across them.
//
// Two scopes exist. The app scope lives as long as the process; the module
// scope lives as long as the screen it was last bound to. Plain lookups try
// the module scope first and fall back to the app scope, so screen local
// registrations shadow app wide ones of the same type.
package locator

import (
	"context"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/shuldan/locator/pkg/contracts"
	"github.com/shuldan/locator/pkg/errors"
	"github.com/shuldan/locator/pkg/logger"
	"github.com/shuldan/locator/pkg/module"
)

type Scope string

const (
	ScopeApp    Scope = "app"
	ScopeModule Scope = "module"
)

type binding struct {
	lifecycle    contracts.Lifecycle
	subscription string
}

// Locator owns the module of one scope. The module is created on first access
// and is only ever cleared afterwards, never replaced.
type Locator struct {
	scope  Scope
	logger contracts.Logger
	rebind RebindPolicy

	once   sync.Once
	module *module.Module
	active atomic.Bool

	mu       sync.Mutex
	bindings []binding
}

var _ contracts.LifecycleObserver = (*Locator)(nil)

func New(scope Scope, opts ...Option) *Locator {
	o := &options{rebind: RebindKeep}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = logger.NewNop()
	}

	return &Locator{
		scope:  scope,
		logger: o.logger.With("scope", string(scope)),
		rebind: o.rebind,
	}
}

func (l *Locator) Scope() Scope {
	return l.scope
}

func (l *Locator) Module() *module.Module {
	l.once.Do(func() {
		l.module = module.New(string(l.scope), module.WithLogger(l.logger))
		l.active.Store(true)
		l.logger.Debug("module created")
	})
	return l.module
}

// Initialized reports whether Module has been called at least once.
func (l *Locator) Initialized() bool {
	return l.active.Load()
}

// OnLifecycleDestroyed clears the module store of this scope.
func (l *Locator) OnLifecycleDestroyed(_ context.Context) {
	l.logger.Debug("bound lifecycle destroyed")
	l.Module().Teardown()
}

// Bind subscribes the locator to owner's lifecycle. Binding a lifecycle that is
// already bound is a no-op. Under RebindReset every earlier binding is dropped
// and the module cleared before the new subscription is made.
func (l *Locator) Bind(owner contracts.LifecycleOwner) error {
	if owner == nil {
		return ErrNilOwner
	}
	lc := owner.Lifecycle()
	if lc == nil {
		return ErrNilOwner
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.pruneLocked()

	for _, b := range l.bindings {
		if sameLifecycle(b.lifecycle, lc) {
			l.logger.Trace("lifecycle already bound", "subscription", b.subscription)
			return nil
		}
	}

	if l.rebind == RebindReset && len(l.bindings) > 0 {
		l.resetLocked()
	}

	id, err := lc.AddObserver(l)
	if err != nil {
		l.logger.Warn("lifecycle bind failed", "code", string(errors.GetErrorCode(err)))
		return ErrBind.WithDetail("scope", string(l.scope)).WithCause(err)
	}

	l.bindings = append(l.bindings, binding{lifecycle: lc, subscription: id})
	l.logger.Debug("lifecycle bound", "subscription", id, "bindings", len(l.bindings))
	return nil
}

// Unbind removes the subscription to owner's lifecycle, if any.
func (l *Locator) Unbind(owner contracts.LifecycleOwner) bool {
	if owner == nil || owner.Lifecycle() == nil {
		return false
	}
	lc := owner.Lifecycle()

	l.mu.Lock()
	defer l.mu.Unlock()

	for i, b := range l.bindings {
		if !sameLifecycle(b.lifecycle, lc) {
			continue
		}
		lc.RemoveObserver(b.subscription)
		l.bindings = append(l.bindings[:i], l.bindings[i+1:]...)
		l.logger.Debug("lifecycle unbound", "subscription", b.subscription)
		return true
	}
	return false
}

// Bindings returns the number of live lifecycle subscriptions.
func (l *Locator) Bindings() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.pruneLocked()
	return len(l.bindings)
}

func (l *Locator) pruneLocked() {
	live := l.bindings[:0]
	for _, b := range l.bindings {
		if b.lifecycle.State() != contracts.LifecycleDestroyed {
			live = append(live, b)
		}
	}
	clear(l.bindings[len(live):])
	l.bindings = live
}

func (l *Locator) resetLocked() {
	for _, b := range l.bindings {
		b.lifecycle.RemoveObserver(b.subscription)
	}
	l.bindings = nil
	l.Module().Teardown()
	l.logger.Debug("module scope reset before rebind")
}

// sameLifecycle reports identity. Values of a non-comparable dynamic type
// never match, since == on them panics.
func sameLifecycle(a, b contracts.Lifecycle) bool {
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || ta == nil || !ta.Comparable() {
		return false
	}
	return a == b
}

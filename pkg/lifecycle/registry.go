// Package lifecycle provides a host side lifecycle that observers can subscribe to.
package lifecycle

import (
	"context"
	"runtime/debug"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/shuldan/locator/pkg/contracts"
	"github.com/shuldan/locator/pkg/logger"
)

type subscription struct {
	id       string
	observer contracts.LifecycleObserver
}

// Registry is a forward-only lifecycle. Observers are notified, in the order
// they subscribed, when the registry reaches contracts.LifecycleDestroyed.
type Registry struct {
	mu            sync.RWMutex
	name          string
	state         contracts.LifecycleState
	subscriptions []subscription
	logger        contracts.Logger
	panicHandler  PanicHandler
}

var _ contracts.Lifecycle = (*Registry)(nil)

func New(opts ...Option) *Registry {
	r := &Registry{
		state: contracts.LifecycleInitialized,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.name == "" {
		r.name = uuid.NewString()
	}
	if r.logger == nil {
		r.logger = logger.NewNop()
	}
	if r.panicHandler == nil {
		r.panicHandler = NewDefaultPanicHandler(r.logger)
	}
	r.logger = r.logger.With("lifecycle", r.name)

	return r
}

func (r *Registry) Name() string {
	return r.name
}

func (r *Registry) State() contracts.LifecycleState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

// AddObserver subscribes observer and returns the subscription id.
func (r *Registry) AddObserver(observer contracts.LifecycleObserver) (string, error) {
	if observer == nil {
		return "", ErrNilObserver
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == contracts.LifecycleDestroyed {
		return "", ErrLifecycleDestroyed.WithDetail("name", r.name)
	}

	id := uuid.NewString()
	r.subscriptions = append(r.subscriptions, subscription{id: id, observer: observer})
	r.logger.Trace("observer added", "subscription", id)
	return id, nil
}

func (r *Registry) RemoveObserver(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := slices.IndexFunc(r.subscriptions, func(s subscription) bool { return s.id == id })
	if idx < 0 {
		return false
	}
	r.subscriptions = slices.Delete(r.subscriptions, idx, idx+1)
	r.logger.Trace("observer removed", "subscription", id)
	return true
}

func (r *Registry) ObserverCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subscriptions)
}

// MoveTo advances the lifecycle. Moving to the current state is a no-op;
// moving backwards fails with ErrInvalidTransition.
func (r *Registry) MoveTo(ctx context.Context, state contracts.LifecycleState) error {
	r.mu.Lock()
	from := r.state
	if state == from {
		r.mu.Unlock()
		return nil
	}
	if state < from || state > contracts.LifecycleDestroyed {
		r.mu.Unlock()
		return ErrInvalidTransition.
			WithDetail("name", r.name).
			WithDetail("from", from.String()).
			WithDetail("to", state.String())
	}

	r.state = state
	var notify []subscription
	if state == contracts.LifecycleDestroyed {
		notify = r.subscriptions
		r.subscriptions = nil
	}
	r.mu.Unlock()

	r.logger.Debug("lifecycle moved", "from", from.String(), "to", state.String())

	// Every subscription is notified even if a panic handler re-panics; the
	// first escaped panic is raised once the loop is done.
	var escaped any
	for _, s := range notify {
		if p := r.notifyDestroyed(ctx, s); p != nil && escaped == nil {
			escaped = p
		}
	}
	if escaped != nil {
		panic(escaped)
	}
	return nil
}

func (r *Registry) Destroy(ctx context.Context) error {
	return r.MoveTo(ctx, contracts.LifecycleDestroyed)
}

func (r *Registry) notifyDestroyed(ctx context.Context, s subscription) (escaped any) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		defer func() {
			escaped = recover()
		}()
		r.panicHandler.Handle(r.name, s.observer, rec, debug.Stack())
	}()

	s.observer.OnLifecycleDestroyed(ctx)
	return nil
}

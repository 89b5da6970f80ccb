package contracts

import "context"

type LifecycleState int

const (
	LifecycleInitialized LifecycleState = iota
	LifecycleCreated
	LifecycleStarted
	LifecycleResumed
	LifecycleDestroyed
)

func (s LifecycleState) String() string {
	switch s {
	case LifecycleInitialized:
		return "initialized"
	case LifecycleCreated:
		return "created"
	case LifecycleStarted:
		return "started"
	case LifecycleResumed:
		return "resumed"
	case LifecycleDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// LifecycleObserver is notified once when the observed lifecycle reaches LifecycleDestroyed.
type LifecycleObserver interface {
	OnLifecycleDestroyed(ctx context.Context)
}

// Lifecycle is identified by ==, so implementations should be pointer types.
// Observers keyed by a lifecycle of a non-comparable type cannot be matched
// against it later.
type Lifecycle interface {
	State() LifecycleState
	AddObserver(observer LifecycleObserver) (string, error)
	RemoveObserver(id string) bool
}

type LifecycleOwner interface {
	Lifecycle() Lifecycle
}

// ContainerOwner is a top level UI host, the activity of a screen stack.
type ContainerOwner interface {
	LifecycleOwner
	ViewModelStore() ViewModelStore
}

// ScreenOwner is a screen hosted inside a ContainerOwner.
type ScreenOwner interface {
	LifecycleOwner
	ViewModelStore() ViewModelStore
	Container() ContainerOwner
}

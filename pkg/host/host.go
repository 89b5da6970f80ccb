// Package host provides minimal UI owners that satisfy the lifecycle and
// view-model contracts: an Activity hosting any number of Fragments.
package host

import (
	"context"

	"github.com/shuldan/locator/pkg/contracts"
	"github.com/shuldan/locator/pkg/lifecycle"
	"github.com/shuldan/locator/pkg/viewmodel"
)

type owner struct {
	lifecycle *lifecycle.Registry
	store     *viewmodel.Store
}

func newOwner(name string, opts []lifecycle.Option) owner {
	opts = append([]lifecycle.Option{lifecycle.WithName(name)}, opts...)
	return owner{
		lifecycle: lifecycle.New(opts...),
		store:     viewmodel.NewStore(),
	}
}

func (o *owner) Lifecycle() contracts.Lifecycle {
	return o.lifecycle
}

func (o *owner) ViewModelStore() contracts.ViewModelStore {
	return o.store
}

func (o *owner) Name() string {
	return o.lifecycle.Name()
}

// Resume moves the owner through created and started to resumed.
func (o *owner) Resume(ctx context.Context) error {
	return o.lifecycle.MoveTo(ctx, contracts.LifecycleResumed)
}

// Destroy clears the owner's view-models, then signals destruction to observers.
func (o *owner) Destroy(ctx context.Context) error {
	if o.lifecycle.State() == contracts.LifecycleDestroyed {
		return nil
	}
	o.store.Clear()
	return o.lifecycle.Destroy(ctx)
}

type Activity struct {
	owner
	fragments []*Fragment
}

var _ contracts.ContainerOwner = (*Activity)(nil)

func NewActivity(name string, opts ...lifecycle.Option) *Activity {
	return &Activity{owner: newOwner(name, opts)}
}

// Destroy tears down the hosted fragments before the activity itself.
func (a *Activity) Destroy(ctx context.Context) error {
	for i := len(a.fragments) - 1; i >= 0; i-- {
		if err := a.fragments[i].Destroy(ctx); err != nil {
			return err
		}
	}
	return a.owner.Destroy(ctx)
}

type Fragment struct {
	owner
	parent *Activity
}

var _ contracts.ScreenOwner = (*Fragment)(nil)

func NewFragment(name string, parent *Activity, opts ...lifecycle.Option) *Fragment {
	f := &Fragment{owner: newOwner(name, opts), parent: parent}
	if parent != nil {
		parent.fragments = append(parent.fragments, f)
	}
	return f
}

func (f *Fragment) Container() contracts.ContainerOwner {
	if f.parent == nil {
		return nil
	}
	return f.parent
}

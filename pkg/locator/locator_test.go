package locator

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/shuldan/locator/pkg/contracts"
	"github.com/shuldan/locator/pkg/host"
	"github.com/shuldan/locator/pkg/lifecycle"
	"github.com/shuldan/locator/pkg/logger"
	"github.com/shuldan/locator/pkg/module"
)

type bareOwner struct {
	lc *lifecycle.Registry
}

func (o bareOwner) Lifecycle() contracts.Lifecycle {
	if o.lc == nil {
		return nil
	}
	return o.lc
}

func TestLocator_ModuleIsLazy(t *testing.T) {
	l := New(ScopeModule)

	if l.Initialized() {
		t.Fatal("module must not exist before first access")
	}

	m := l.Module()
	if !l.Initialized() {
		t.Error("expected locator to be active after first access")
	}
	if l.Module() != m {
		t.Error("module must be created once")
	}
	if m.Name() != "module" {
		t.Errorf("expected module named after scope, got %q", m.Name())
	}
}

func TestLocator_OnLifecycleDestroyedKeepsModule(t *testing.T) {
	l := New(ScopeApp)
	m := l.Module()
	m.Inject(&Logger{tag: "app"})

	l.OnLifecycleDestroyed(context.Background())

	if l.Module() != m {
		t.Error("teardown must not replace the module")
	}
	if m.Len() != 0 {
		t.Errorf("expected cleared module, got %d entries", m.Len())
	}
	if !l.Initialized() {
		t.Error("teardown must not return the locator to uninitialized")
	}
}

func TestLocator_BindClearsOnDestroy(t *testing.T) {
	ctx := context.Background()
	l := New(ScopeModule)
	screen := host.NewActivity("main")

	if err := l.Bind(screen); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	l.Module().Inject(&Logger{})

	if err := screen.Destroy(ctx); err != nil {
		t.Fatal(err)
	}

	if l.Module().Len() != 0 {
		t.Errorf("expected module cleared on destroy, got %d", l.Module().Len())
	}
	if l.Bindings() != 0 {
		t.Errorf("destroyed lifecycle should be pruned, got %d bindings", l.Bindings())
	}
}

func TestLocator_BindSameLifecycleOnce(t *testing.T) {
	l := New(ScopeModule)
	screen := host.NewActivity("main")

	for n := 0; n < 3; n++ {
		if err := l.Bind(screen); err != nil {
			t.Fatalf("Bind failed: %v", err)
		}
	}

	if got := screen.Lifecycle().(*lifecycle.Registry).ObserverCount(); got != 1 {
		t.Errorf("expected one subscription, got %d", got)
	}
	if l.Bindings() != 1 {
		t.Errorf("expected one binding, got %d", l.Bindings())
	}
}

func TestLocator_BindErrors(t *testing.T) {
	l := New(ScopeModule)

	if err := l.Bind(nil); !errors.Is(err, ErrNilOwner) {
		t.Errorf("expected ErrNilOwner, got %v", err)
	}
	if err := l.Bind(bareOwner{}); !errors.Is(err, ErrNilOwner) {
		t.Errorf("expected ErrNilOwner for owner without lifecycle, got %v", err)
	}

	gone := host.NewActivity("gone")
	_ = gone.Destroy(context.Background())

	err := l.Bind(gone)
	if !errors.Is(err, ErrBind) {
		t.Fatalf("expected ErrBind, got %v", err)
	}
	if !errors.Is(err, lifecycle.ErrLifecycleDestroyed) {
		t.Errorf("expected lifecycle cause, got %v", err)
	}
}

func TestLocator_Unbind(t *testing.T) {
	ctx := context.Background()
	l := New(ScopeModule)
	screen := host.NewActivity("main")
	_ = l.Bind(screen)
	l.Module().Inject(&Logger{})

	if !l.Unbind(screen) {
		t.Fatal("expected Unbind to succeed")
	}
	if l.Unbind(screen) {
		t.Error("second Unbind should report false")
	}
	if l.Unbind(nil) {
		t.Error("Unbind(nil) should report false")
	}

	_ = screen.Destroy(ctx)

	if l.Module().Len() != 1 {
		t.Error("unbound lifecycle must not clear the module")
	}
}

func TestLocator_RebindKeep(t *testing.T) {
	ctx := context.Background()
	l := New(ScopeModule)
	first := host.NewActivity("first")
	second := host.NewActivity("second")

	_ = l.Bind(first)
	l.Module().Inject(&Logger{tag: "first"})
	_ = l.Bind(second)

	if l.Bindings() != 2 {
		t.Fatalf("keep policy should hold both bindings, got %d", l.Bindings())
	}
	if got := module.MustGet[*Logger](l.Module()); got.tag != "first" {
		t.Errorf("keep policy must preserve earlier registrations, got %q", got.tag)
	}

	_ = first.Destroy(ctx)

	if l.Module().Len() != 0 {
		t.Error("destroying any bound owner clears the module scope")
	}
	if l.Bindings() != 1 {
		t.Errorf("expected the second binding to survive, got %d", l.Bindings())
	}
}

func TestLocator_RebindReset(t *testing.T) {
	ctx := context.Background()
	l := New(ScopeModule, WithRebindPolicy(RebindReset))
	first := host.NewActivity("first")
	second := host.NewActivity("second")

	_ = l.Bind(first)
	l.Module().Inject(&Logger{tag: "first"})
	_ = l.Bind(second)

	if l.Bindings() != 1 {
		t.Errorf("reset policy should hold only the latest binding, got %d", l.Bindings())
	}
	if l.Module().Len() != 0 {
		t.Error("reset policy should clear earlier registrations")
	}
	if got := first.Lifecycle().(*lifecycle.Registry).ObserverCount(); got != 0 {
		t.Errorf("earlier owner should be unsubscribed, got %d observers", got)
	}

	l.Module().Inject(&Logger{tag: "second"})
	_ = first.Destroy(ctx)

	if l.Module().Len() != 1 {
		t.Error("destroying an unbound owner must not clear the module")
	}
}

func TestParseRebindPolicy(t *testing.T) {
	tests := []struct {
		in   string
		want RebindPolicy
	}{
		{"", RebindKeep},
		{"keep", RebindKeep},
		{" RESET ", RebindReset},
	}

	for _, tt := range tests {
		got, err := ParseRebindPolicy(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseRebindPolicy(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}

	if _, err := ParseRebindPolicy("replace"); !errors.Is(err, ErrUnknownRebind) {
		t.Errorf("expected ErrUnknownRebind, got %v", err)
	}
}

func TestLocator_LogsWithScope(t *testing.T) {
	buf := &bytes.Buffer{}
	log, _ := logger.NewLogger(logger.WithWriter(buf), logger.WithLevel(logger.LevelTrace))
	l := New(ScopeApp, WithLogger(log))

	l.Module().Inject(&Logger{})
	l.OnLifecycleDestroyed(context.Background())

	out := buf.String()
	if !strings.Contains(out, "instance registered") || !strings.Contains(out, `scope="app"`) {
		t.Errorf("expected scoped registration log, got %q", out)
	}
	if !strings.Contains(out, "module torn down") {
		t.Errorf("expected teardown log, got %q", out)
	}
}

// mapLifecycle is a value type holding a map, so it is not comparable.
type mapLifecycle struct {
	observers map[string]contracts.LifecycleObserver
}

func (l mapLifecycle) State() contracts.LifecycleState { return contracts.LifecycleCreated }

func (l mapLifecycle) AddObserver(o contracts.LifecycleObserver) (string, error) {
	id := strconv.Itoa(len(l.observers))
	l.observers[id] = o
	return id, nil
}

func (l mapLifecycle) RemoveObserver(id string) bool {
	_, ok := l.observers[id]
	delete(l.observers, id)
	return ok
}

type valueOwner struct {
	lc mapLifecycle
}

func (o valueOwner) Lifecycle() contracts.Lifecycle { return o.lc }

func TestLocator_BindNonComparableLifecycle(t *testing.T) {
	l := New(ScopeModule)
	screen := host.NewActivity("main")
	owner := valueOwner{lc: mapLifecycle{observers: map[string]contracts.LifecycleObserver{}}}

	if err := l.Bind(screen); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	if err := l.Bind(owner); err != nil {
		t.Fatalf("Bind failed: %v", err)
	}
	if err := l.Bind(owner); err != nil {
		t.Fatalf("second Bind failed: %v", err)
	}

	if l.Bindings() != 3 {
		t.Errorf("non-comparable lifecycles are never deduplicated, got %d bindings", l.Bindings())
	}
	if l.Unbind(owner) {
		t.Error("non-comparable lifecycle cannot be matched for Unbind")
	}
	if !l.Unbind(screen) {
		t.Error("pointer lifecycle should still unbind")
	}
}

func TestLocator_BindFailureLogsCode(t *testing.T) {
	buf := &bytes.Buffer{}
	log, _ := logger.NewLogger(logger.WithWriter(buf))
	l := New(ScopeModule, WithLogger(log))

	gone := host.NewActivity("gone")
	_ = gone.Destroy(context.Background())
	_ = l.Bind(gone)

	want := string(lifecycle.ErrLifecycleDestroyed.Code)
	if !strings.Contains(buf.String(), "lifecycle bind failed") || !strings.Contains(buf.String(), want) {
		t.Errorf("expected warning with code %s, got %q", want, buf.String())
	}
}

package main

import (
	"context"
	"fmt"
	"log"

	"github.com/shuldan/locator/pkg/bootstrap"
	"github.com/shuldan/locator/pkg/errors"
	"github.com/shuldan/locator/pkg/host"
	"github.com/shuldan/locator/pkg/lifecycle"
	"github.com/shuldan/locator/pkg/locator"
	"github.com/shuldan/locator/pkg/logger"
	"github.com/shuldan/locator/pkg/module"
)

type Greeter interface {
	Greet(name string) string
}

type plainGreeter struct {
	prefix string
}

func (g plainGreeter) Greet(name string) string {
	return g.prefix + ", " + name
}

type ProfileViewModel struct {
	greeter Greeter
}

func (vm *ProfileViewModel) Title() string {
	return vm.greeter.Greet("profile")
}

func (vm *ProfileViewModel) OnCleared() {
	fmt.Println("profile view-model cleared")
}

func main() {
	ctx := context.Background()

	scopes, err := bootstrap.New("LOCATOR_", "config.yaml").
		WithLoggerOptions(logger.WithColor()).
		CreateScopes()
	if err != nil {
		log.Fatal(err)
	}

	scopes.InitAppInjection(func(m *module.Module) {
		m.Inject(plainGreeter{prefix: "Hello"})
	})

	activity := host.NewActivity("main", lifecycle.WithLogger(scopes.Logger()))
	fragment := host.NewFragment("profile", activity, lifecycle.WithLogger(scopes.Logger()))

	err = scopes.InitModuleInjection(activity, func(m *module.Module) {
		m.Inject(plainGreeter{prefix: "Welcome back"})
		m.Inject(&ProfileViewModel{greeter: plainGreeter{prefix: "Profile of"}})
	})
	if err != nil {
		log.Fatal(err)
	}
	if err = activity.Resume(ctx); err != nil {
		log.Fatal(err)
	}

	greeter := locator.Inject[Greeter](scopes)
	profile := locator.ViewModelInject[*ProfileViewModel](scopes, fragment)

	fmt.Println(greeter.MustGet().Greet("user"))
	fmt.Println(profile.MustGet().Title())

	if err = activity.Destroy(ctx); err != nil {
		log.Fatal(err)
	}

	// The module scope is empty now; lookups fall back to the app scope.
	fmt.Println(locator.MustResolve[Greeter](scopes).Greet("again"))

	if _, err = locator.Resolve[*ProfileViewModel](scopes); err != nil {
		if missing, ok := errors.Detail(err, "type"); ok {
			fmt.Println("not injected:", missing)
		}
	}
}

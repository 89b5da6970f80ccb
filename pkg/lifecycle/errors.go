package lifecycle

import "github.com/shuldan/locator/pkg/errors"

var newLifecycleCode = errors.WithPrefix("LIFECYCLE")

var (
	ErrNilObserver        = newLifecycleCode().New("observer must not be nil")
	ErrLifecycleDestroyed = newLifecycleCode().New("cannot observe lifecycle {{.name}}: already destroyed")
	ErrInvalidTransition  = newLifecycleCode().New("lifecycle {{.name}} cannot move from {{.from}} to {{.to}}")
)

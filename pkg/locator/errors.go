package locator

import "github.com/shuldan/locator/pkg/errors"

var newLocatorCode = errors.WithPrefix("LOCATOR")

var (
	ErrNotInjected       = newLocatorCode().New("{{.type}} not injected")
	ErrInvalidScopeOwner = newLocatorCode().New("lifecycle owner must be a screen or container owner, got {{.owner}}")
	ErrNilOwner          = newLocatorCode().New("lifecycle owner must not be nil")
	ErrBind              = newLocatorCode().New("failed to bind {{.scope}} scope to lifecycle")
	ErrUnknownRebind     = newLocatorCode().New("unknown rebind policy {{.policy}}")
)

package module

import "github.com/shuldan/locator/pkg/errors"

var newModuleCode = errors.WithPrefix("MODULE")

var (
	ErrNotRegistered = newModuleCode().New("{{.type}} not provided")
	ErrNotViewModel  = newModuleCode().New("{{.type}} resolved to {{.got}} which is not a view-model")
)

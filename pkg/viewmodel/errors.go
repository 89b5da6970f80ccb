package viewmodel

import "github.com/shuldan/locator/pkg/errors"

var newViewModelCode = errors.WithPrefix("VIEWMODEL")

var (
	ErrNilFactory   = newViewModelCode().New("view-model factory must not be nil")
	ErrNilViewModel = newViewModelCode().New("factory returned no view-model for {{.type}}")
	ErrTypeMismatch = newViewModelCode().New("view-model for {{.type}} has type {{.got}}")
)

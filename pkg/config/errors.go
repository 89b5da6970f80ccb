package config

import "github.com/shuldan/locator/pkg/errors"

var newConfigCode = errors.WithPrefix("CONFIG")

var (
	ErrNoConfigSource = newConfigCode().New("no valid configuration source found")
	ErrParseYAML      = newConfigCode().New("failed to parse YAML file {{.path}}: {{.reason}}")
)

// errorsIsNoSource reports a missing source that did not hide a broken file.
func errorsIsNoSource(err error) bool {
	return errors.Is(err, ErrNoConfigSource) && !errors.Is(err, ErrParseYAML)
}

package logger

import "github.com/shuldan/locator/pkg/errors"

var newLoggerCode = errors.WithPrefix("LOGGER")

var (
	ErrUnknownLevel = newLoggerCode().New("unknown log level {{.level}}")
)

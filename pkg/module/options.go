package module

import "github.com/shuldan/locator/pkg/contracts"

type Option func(*Module)

func WithLogger(logger contracts.Logger) Option {
	return func(m *Module) {
		if logger != nil {
			m.logger = logger
		}
	}
}

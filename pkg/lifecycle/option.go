package lifecycle

import "github.com/shuldan/locator/pkg/contracts"

type Option func(*Registry)

func WithName(name string) Option {
	return func(r *Registry) {
		r.name = name
	}
}

func WithLogger(logger contracts.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

func WithPanicHandler(h PanicHandler) Option {
	return func(r *Registry) {
		r.panicHandler = h
	}
}

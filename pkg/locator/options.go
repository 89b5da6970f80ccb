package locator

import (
	"strings"

	"github.com/shuldan/locator/pkg/contracts"
)

// RebindPolicy decides what the module scope does with earlier owners when it
// is bound to a new one.
type RebindPolicy string

const (
	// RebindKeep leaves earlier subscriptions and registrations in place.
	RebindKeep RebindPolicy = "keep"
	// RebindReset unbinds earlier owners and clears the scope first.
	RebindReset RebindPolicy = "reset"
)

func ParseRebindPolicy(s string) (RebindPolicy, error) {
	switch RebindPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", RebindKeep:
		return RebindKeep, nil
	case RebindReset:
		return RebindReset, nil
	default:
		return RebindKeep, ErrUnknownRebind.WithDetail("policy", s)
	}
}

type Option func(*options)

type options struct {
	logger contracts.Logger
	rebind RebindPolicy
}

func WithLogger(logger contracts.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func WithRebindPolicy(policy RebindPolicy) Option {
	return func(o *options) {
		o.rebind = policy
	}
}

// Package bootstrap is the composition root: it loads configuration, builds the
// logger and hands out the injection scopes.
package bootstrap

import (
	"strings"

	"github.com/shuldan/locator/pkg/config"
	"github.com/shuldan/locator/pkg/contracts"
	"github.com/shuldan/locator/pkg/locator"
	"github.com/shuldan/locator/pkg/logger"
)

type Bootstrap struct {
	envPrefix     string
	configPaths   []string
	loggerOptions []logger.Option
}

func New(envPrefix string, configPaths ...string) *Bootstrap {
	return &Bootstrap{
		envPrefix:   envPrefix,
		configPaths: configPaths,
	}
}

// WithLoggerOptions appends options applied after the configured ones.
func (b *Bootstrap) WithLoggerOptions(opts ...logger.Option) *Bootstrap {
	b.loggerOptions = append(b.loggerOptions, opts...)
	return b
}

// LoadConfig merges the YAML files with the prefixed environment; the
// environment wins on conflicts.
func (b *Bootstrap) LoadConfig() (contracts.Config, error) {
	return config.Load(config.NewChainLoader(
		config.NewYamlConfigLoader(b.configPaths...),
		config.NewEnvConfigLoader(b.envPrefix),
	))
}

// CreateLogger reads the logger section: level, format (text or json), color
// and source.
func (b *Bootstrap) CreateLogger(cfg contracts.Config) (contracts.Logger, error) {
	sub := section(cfg, "logger")

	level, err := logger.ParseLevel(sub.GetString("level", "info"))
	if err != nil {
		return nil, err
	}

	opts := []logger.Option{logger.WithLevel(level)}
	if strings.EqualFold(sub.GetString("format", "text"), "json") {
		opts = append(opts, logger.WithJSON())
	} else {
		opts = append(opts, logger.WithText())
	}
	if sub.GetBool("color") {
		opts = append(opts, logger.WithColor())
	}
	if sub.GetBool("source") {
		opts = append(opts, logger.WithSource())
	}

	return logger.NewLogger(append(opts, b.loggerOptions...)...)
}

func (b *Bootstrap) CreateScopes() (*locator.Scopes, error) {
	cfg, err := b.LoadConfig()
	if err != nil {
		return nil, err
	}

	log, err := b.CreateLogger(cfg)
	if err != nil {
		return nil, err
	}
	log.Debug("configuration loaded", "sections", len(cfg.All()))

	rebind := locator.RebindKeep
	if sub := section(cfg, "locator.module"); sub.Has("rebind") {
		if rebind, err = locator.ParseRebindPolicy(sub.GetString("rebind")); err != nil {
			return nil, err
		}
	}

	log.Debug("scopes created", "rebind", string(rebind))
	return locator.NewScopes(
		locator.WithLogger(log),
		locator.WithRebindPolicy(rebind),
	), nil
}

// section returns the sub tree at key, or an empty config when it is absent.
func section(cfg contracts.Config, key string) contracts.Config {
	if sub, ok := cfg.GetSub(key); ok {
		return sub
	}
	return config.NewMapConfig(nil)
}

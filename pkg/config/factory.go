package config

import "github.com/shuldan/locator/pkg/contracts"

var _ Loader = (*EnvConfigLoader)(nil)
var _ Loader = (*YamlConfigLoader)(nil)
var _ Loader = (*chainLoader)(nil)

func NewEnvConfigLoader(prefix string) Loader {
	return &EnvConfigLoader{prefix: prefix}
}

func NewYamlConfigLoader(paths ...string) *YamlConfigLoader {
	return &YamlConfigLoader{paths: paths}
}

func NewChainLoader(loaders ...Loader) Loader {
	return &chainLoader{loaders: loaders}
}

func NewMapConfig(values map[string]any) contracts.Config {
	if values == nil {
		values = make(map[string]any)
	}
	return &MapConfig{values: values}
}

// Load runs loader and wraps the result. A loader that finds no source yields an
// empty configuration so callers fall back to their defaults.
func Load(loader Loader) (contracts.Config, error) {
	values, err := loader.Load()
	if err != nil {
		if errorsIsNoSource(err) {
			return NewMapConfig(nil), nil
		}
		return nil, err
	}
	return NewMapConfig(values), nil
}

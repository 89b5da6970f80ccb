package config

import (
	"os"
	"strconv"
	"strings"
)

// EnvConfigLoader maps PREFIX_A__B=value to the nested key a.b.
type EnvConfigLoader struct {
	prefix string
}

func (l *EnvConfigLoader) Load() (map[string]any, error) {
	config := make(map[string]any)

	for _, env := range os.Environ() {
		key, value, found := strings.Cut(env, "=")
		if !found || !strings.HasPrefix(key, l.prefix) {
			continue
		}

		configKey := strings.ToLower(strings.TrimPrefix(key, l.prefix))
		configKey = strings.ReplaceAll(configKey, "__", ".")
		if configKey == "" {
			continue
		}

		setNested(config, configKey, parseEnvValue(value))
	}

	return config, nil
}

func parseEnvValue(value string) any {
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	if i, err := strconv.Atoi(value); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}
	return value
}

func setNested(m map[string]any, key string, value any) {
	keys := strings.Split(key, ".")
	last := len(keys) - 1

	current := m
	for i, k := range keys {
		if i == last {
			current[k] = value
			return
		}
		next, ok := current[k].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[k] = next
		}
		current = next
	}
}

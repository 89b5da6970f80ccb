package config

type chainLoader struct {
	loaders []Loader
}

// Load merges every loader's result in order; later loaders win on conflicts.
func (c *chainLoader) Load() (map[string]any, error) {
	final := make(map[string]any)
	var lastErr error

	for _, loader := range c.loaders {
		config, err := loader.Load()
		if err != nil {
			lastErr = err
			continue
		}

		mergeMaps(final, config)
	}

	if len(final) == 0 {
		if lastErr == nil {
			return nil, ErrNoConfigSource
		}
		return nil, ErrNoConfigSource.WithCause(lastErr)
	}

	return final, nil
}

func mergeMaps(dst, src map[string]any) {
	for k, v := range src {
		if vMap, ok := v.(map[string]any); ok {
			if dstMap, ok := dst[k].(map[string]any); ok {
				mergeMaps(dstMap, vMap)
				continue
			}
		}
		dst[k] = v
	}
}

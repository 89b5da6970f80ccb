package config

import (
	"errors"
	"testing"
)

type mockLoader struct {
	config map[string]any
	err    error
}

func (m *mockLoader) Load() (map[string]any, error) {
	return m.config, m.err
}

func TestChainLoader_Load_SuccessfulMerge(t *testing.T) {
	file := &mockLoader{
		config: map[string]any{
			"logger": map[string]any{
				"level":  "info",
				"format": "text",
			},
		},
	}
	env := &mockLoader{
		config: map[string]any{
			"logger": map[string]any{
				"level": "debug",
			},
			"locator": map[string]any{
				"module": map[string]any{"rebind": "reset"},
			},
		},
	}

	result, err := NewChainLoader(file, env).Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	cfg := NewMapConfig(result)
	if got := cfg.GetString("logger.level"); got != "debug" {
		t.Errorf("expected logger.level = debug, got %q", got)
	}
	if got := cfg.GetString("logger.format"); got != "text" {
		t.Errorf("expected logger.format = text, got %q", got)
	}
	if got := cfg.GetString("locator.module.rebind"); got != "reset" {
		t.Errorf("expected locator.module.rebind = reset, got %q", got)
	}
}

func TestChainLoader_Load_SkipsFailingLoaders(t *testing.T) {
	failing := &mockLoader{err: errors.New("unreadable")}
	ok := &mockLoader{config: map[string]any{"a": 1}}

	result, err := NewChainLoader(failing, ok).Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result["a"] != 1 {
		t.Errorf("expected a = 1, got %v", result["a"])
	}
}

func TestChainLoader_Load_NoSource(t *testing.T) {
	cause := errors.New("missing")

	_, err := NewChainLoader(&mockLoader{err: cause}, &mockLoader{config: map[string]any{}}).Load()

	if !errors.Is(err, ErrNoConfigSource) {
		t.Errorf("expected ErrNoConfigSource, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be preserved, got %v", err)
	}
}

func TestLoad_NoSourceYieldsEmptyConfig(t *testing.T) {
	cfg, err := Load(NewYamlConfigLoader("does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(cfg.All()) != 0 {
		t.Errorf("expected empty config, got %v", cfg.All())
	}
}

func TestLoad_PropagatesParseErrors(t *testing.T) {
	parseErr := ErrParseYAML.WithDetail("path", "x.yaml").WithDetail("reason", "bad")

	_, err := Load(&mockLoader{err: parseErr})
	if !errors.Is(err, ErrParseYAML) {
		t.Errorf("expected ErrParseYAML, got %v", err)
	}
}

func TestLoad_ChainSurfacesBrokenFile(t *testing.T) {
	parseErr := ErrParseYAML.WithDetail("path", "x.yaml").WithDetail("reason", "bad")

	_, err := Load(NewChainLoader(&mockLoader{err: parseErr}, &mockLoader{config: map[string]any{}}))
	if !errors.Is(err, ErrParseYAML) {
		t.Errorf("expected ErrParseYAML, got %v", err)
	}
}

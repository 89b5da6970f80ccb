package logger

import (
	"log/slog"
	"strings"
)

const (
	levelTrace    = slog.LevelDebug - 4
	levelCritical = slog.LevelError + 4
)

const (
	LevelTrace    = levelTrace
	LevelCritical = levelCritical
)

func getLevelName(level slog.Leveler) string {
	var levelNames = map[slog.Leveler]string{
		levelTrace:    "TRACE",
		levelCritical: "CRITICAL",
	}

	if name, ok := levelNames[level]; ok {
		return name
	}
	return level.Level().String()
}

// ParseLevel maps a configuration value such as "debug" or "CRITICAL" to a level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return levelTrace, nil
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	case "critical":
		return levelCritical, nil
	default:
		return slog.LevelInfo, ErrUnknownLevel.WithDetail("level", s)
	}
}

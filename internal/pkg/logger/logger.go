package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config: настройки логгера. Переменные: SCORING_LOG_FILE, SCORING_LOG_LEVEL, SCORING_LOG_FORMAT.
// Пустой File: только stderr.
type Config struct {
	File   string `envconfig:"FILE" default:""`
	Level  string `envconfig:"LEVEL" default:"info"`
	Format string `envconfig:"FORMAT" default:"text"`
}

// writer возвращает writer в файл + stderr. Если файл не открылся, только stderr и ошибку открытия.
func writer(file string, stderr io.Writer) (io.Writer, error) {
	if file == "" {
		return stderr, nil
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return stderr, err
	}
	return io.MultiWriter(f, stderr), nil
}

// ParseLevel переводит строку (debug, info, warn, error) в slog.Level. Неизвестное значение: Info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New возвращает логгер по конфигу. Если файл лога не открылся, пишет только в stderr и
// сообщает об этом предупреждением независимо от уровня.
func New(cfg Config) *slog.Logger {
	return newWithStderr(cfg, os.Stderr)
}

func newWithStderr(cfg Config, stderr io.Writer) *slog.Logger {
	w, err := writer(cfg.File, stderr)
	log := newLogger(w, cfg)
	if err != nil {
		// предупреждение видно и при уровне error
		warn := log
		if ParseLevel(cfg.Level) > slog.LevelWarn {
			warn = newLogger(w, Config{Level: "warn", Format: cfg.Format})
		}
		warn.Warn("log file unavailable, logging to stderr only", "file", cfg.File, "error", err)
	}
	return log
}

func newLogger(w io.Writer, cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

package app

import (
	"io"
	"log/slog"
)

// App owns the logger and configuration of one export run.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp builds an App with its own logger writing to outW.
func NewApp(outW io.Writer, cfg *Config) *App {
	logger := NewLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.", "level", cfg.LogLevel, "format", cfg.LogFormat)

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
	}
}

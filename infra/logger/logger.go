package logger

import corelogger "github.com/VoidAwk/2020-ICTSI-Superproject-OR-Model/core/logger"

// Logger mirrors the core logger interface.
type Logger = corelogger.Logger

// NopLogger implements Logger with no-op methods.
type NopLogger = corelogger.NopLogger

// Config selects the log level and output format.
type Config struct {
	// Level is a zerolog level name such as "debug" or "info".
	Level string `json:"level"`
	// Format is "json" or "console". Empty picks console when APP_ENV=dev.
	Format string `json:"format"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
}

var global = Config{Level: "info"}

// Configure sets the options used by New.
func Configure(cfg Config) {
	cfg.SetDefaults()
	global = cfg
}

// New returns a Logger for the given component.
func New(component string) Logger {
	return NewZerologLogger(component, global)
}

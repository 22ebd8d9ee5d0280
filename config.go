package hotkeys

import (
	"io"
	"time"

	"github.com/dshills/hotkeys/key"
)

// Config configures a Manager. It is read once at construction; invalid
// values fall back to defaults with a warning rather than failing.
type Config struct {
	// LogLevel is the minimum diagnostic level: LogLevelNone,
	// LogLevelWarn (default), or LogLevelDebug.
	LogLevel LogLevel

	// LogOutput is where diagnostics are written. Default: os.Stderr.
	LogOutput io.Writer

	// IgnoreEvents is a predicate applied to every incoming key event
	// before any other processing. Events it accepts are dropped without
	// touching history or handlers. Hosts typically use it to ignore
	// events originating in editable fields. Nil ignores nothing.
	IgnoreEvents func(*key.Event) bool

	// SequenceTimeout is the inter-key timeout for ordered sequence
	// patterns. Default: 1s.
	SequenceTimeout time.Duration

	// HistoryLimit caps the completed-combo history. Default: 32.
	HistoryLimit int
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel:        LogLevelWarn,
		SequenceTimeout: 1000 * time.Millisecond,
		HistoryLimit:    key.DefaultHistoryLimit,
	}
}

// normalize applies defaults for out-of-range values, logging each fallback
// through the supplied logger.
func (c *Config) normalize(log *Logger) {
	if c.LogLevel < LogLevelWarn || c.LogLevel > LogLevelNone {
		log.Warn("invalid log level %d, using warn", c.LogLevel)
		c.LogLevel = LogLevelWarn
	}
	if c.SequenceTimeout < 0 {
		log.Warn("negative sequence timeout %v, using default", c.SequenceTimeout)
		c.SequenceTimeout = 0
	}
	if c.SequenceTimeout == 0 {
		c.SequenceTimeout = 1000 * time.Millisecond
	}
	if c.HistoryLimit < 0 {
		log.Warn("negative history limit %d, using default", c.HistoryLimit)
		c.HistoryLimit = 0
	}
	if c.HistoryLimit == 0 {
		c.HistoryLimit = key.DefaultHistoryLimit
	}
}

// Options carries per-component settings supplied at registration.
type Options struct {
	// IgnoreEvents overrides the manager-wide predicate for events
	// dispatched through this component. Nil uses the manager's.
	IgnoreEvents func(*key.Event) bool

	// SequenceTimeout overrides the manager's inter-key timeout for
	// bindings registered by this component. Zero uses the manager's.
	SequenceTimeout time.Duration
}

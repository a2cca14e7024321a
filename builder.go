package tlog

// Builder provides a fluent API for building logger configurations.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg *Config
	err error // Accumulate errors for deferred handling
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates a new Logger instance with the specified configuration.
func (b *Builder) Build() (*Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	logger := New()

	// ApplyConfig handles all initialization and validation.
	if err := logger.ApplyConfig(b.cfg); err != nil {
		return nil, err
	}

	return logger, nil
}

// Level sets the minimum log level.
func (b *Builder) Level(level Level) *Builder {
	b.cfg.Level = level
	return b
}

// LevelString sets the minimum log level from a string.
func (b *Builder) LevelString(level string) *Builder {
	if b.err != nil {
		return b
	}
	levelVal, err := ParseLevel(level)
	if err != nil {
		b.err = err
		return b
	}
	b.cfg.Level = levelVal
	return b
}

// FilePath sets the log file path.
func (b *Builder) FilePath(path string) *Builder {
	b.cfg.FilePath = path
	return b
}

// Append selects append mode over truncate on file open.
func (b *Builder) Append(append bool) *Builder {
	b.cfg.Append = append
	return b
}

// TimestampSuffix enables inserting the startup timestamp into the file name.
func (b *Builder) TimestampSuffix(suffix bool) *Builder {
	b.cfg.TimestampSuffix = suffix
	return b
}

// Target sets the output destination bit set.
func (b *Builder) Target(target Target) *Builder {
	b.cfg.Target = target
	return b
}

// TargetString sets the output destination from a string.
func (b *Builder) TargetString(target string) *Builder {
	if b.err != nil {
		return b
	}
	targetVal, err := ParseTarget(target)
	if err != nil {
		b.err = err
		return b
	}
	b.cfg.Target = targetVal
	return b
}

// ConsoleTarget selects "stdout" or "stderr" for console output.
func (b *Builder) ConsoleTarget(target string) *Builder {
	b.cfg.ConsoleTarget = target
	return b
}

// Template sets the placeholder template.
func (b *Builder) Template(template string) *Builder {
	b.cfg.Template = template
	return b
}

// TimestampFormat sets the time format for the {t} placeholder.
func (b *Builder) TimestampFormat(format string) *Builder {
	b.cfg.TimestampFormat = format
	return b
}

// Encoding sets the file text encoding.
func (b *Builder) Encoding(encoding string) *Builder {
	b.cfg.Encoding = encoding
	return b
}

// QueueCap bounds the pending queue; zero keeps it unbounded.
func (b *Builder) QueueCap(cap int64) *Builder {
	b.cfg.QueueCap = cap
	return b
}

// HeartbeatIntervalS enables periodic statistics heartbeats.
func (b *Builder) HeartbeatIntervalS(interval int64) *Builder {
	b.cfg.HeartbeatIntervalS = interval
	return b
}

// Example usage:
//
//	logger, err := tlog.NewBuilder().
//		FilePath("/var/log/app/app.log").
//		LevelString("debug").
//		TargetString("both").
//		Build()
//
//	if err == nil {
//		defer logger.Shutdown()
//		logger.Info("logger initialized")
//	}

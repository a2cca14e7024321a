package tlog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/lixenwraith/config"
)

// Config holds all logger configuration values
type Config struct {
	// Filtering and file destination
	Level           Level  `toml:"level"`
	FilePath        string `toml:"file_path"`        // Empty disables the file handle
	Append          bool   `toml:"append"`           // Append vs truncate on open
	TimestampSuffix bool   `toml:"timestamp_suffix"` // Insert startup time into the file name

	// Output routing and formatting
	Target          Target `toml:"target"`           // Console / File bit set
	ConsoleTarget   string `toml:"console_target"`   // "stdout" or "stderr"
	Template        string `toml:"template"`         // Placeholder template
	TimestampFormat string `toml:"timestamp_format"` // Time format for {t}
	Encoding        string `toml:"encoding"`         // "utf-8", "utf-16le", or "utf-16be"

	// Queue and diagnostics
	QueueCap           int64 `toml:"queue_cap"`            // 0 = unbounded
	HeartbeatIntervalS int64 `toml:"heartbeat_interval_s"` // 0 = disabled

	// Internal error handling
	InternalErrorsToStderr bool `toml:"internal_errors_to_stderr"` // Write internal diagnostics to stderr
}

// defaultConfig is the single source for all configurable default values
var defaultConfig = Config{
	Level:           LevelTrace,
	FilePath:        "",
	Append:          true,
	TimestampSuffix: true,

	Target:          TargetConsole,
	ConsoleTarget:   "stdout",
	Template:        DefaultTemplate,
	TimestampFormat: DefaultTimestampFormat,
	Encoding:        "utf-8",

	QueueCap:           0,
	HeartbeatIntervalS: 0,

	InternalErrorsToStderr: true,
}

// DefaultConfig returns a copy of the default configuration
func DefaultConfig() *Config {
	copiedConfig := defaultConfig
	return &copiedConfig
}

// Clone creates a deep copy of the configuration
func (c *Config) Clone() *Config {
	copiedConfig := *c
	return &copiedConfig
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	switch c.Level {
	case LevelTrace, LevelDebug, LevelInfo, LevelWarning, LevelError, LevelCritical:
	default:
		return fmtErrorf("invalid level: %d", int64(c.Level))
	}

	if c.Target == 0 || c.Target&^TargetBoth != 0 {
		return fmtErrorf("invalid target: %d (use console, file, or both)", int64(c.Target))
	}

	if c.ConsoleTarget != "stdout" && c.ConsoleTarget != "stderr" {
		return fmtErrorf("invalid console_target: '%s' (use stdout or stderr)", c.ConsoleTarget)
	}

	if strings.TrimSpace(c.Template) == "" {
		return fmtErrorf("template cannot be empty")
	}

	if strings.TrimSpace(c.TimestampFormat) == "" {
		return fmtErrorf("timestamp_format cannot be empty")
	}

	switch c.Encoding {
	case "utf-8", "utf-16le", "utf-16be":
	default:
		return fmtErrorf("invalid encoding: '%s' (use utf-8, utf-16le, or utf-16be)", c.Encoding)
	}

	if c.QueueCap < 0 {
		return fmtErrorf("queue_cap cannot be negative: %d", c.QueueCap)
	}

	if c.HeartbeatIntervalS < 0 {
		return fmtErrorf("heartbeat_interval_s cannot be negative: %d", c.HeartbeatIntervalS)
	}

	return nil
}

// NewConfigFromFile loads configuration from a TOML file and returns a validated Config
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	// Use lixenwraith/config as a loader
	loader := config.New()

	// Register the struct to enable proper unmarshaling
	if err := loader.RegisterStruct("tlog.", *cfg); err != nil {
		return nil, fmt.Errorf("tlog: failed to register config struct: %w", err)
	}

	// Load from file (handles file not found gracefully)
	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmt.Errorf("tlog: failed to load config from %s: %w", path, err)
	}

	// Extract values into our Config struct
	if err := extractConfig(loader, "tlog.", cfg); err != nil {
		return nil, fmt.Errorf("tlog: failed to extract config values: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// extractConfig extracts values from lixenwraith/config into our Config struct
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		tomlTag := field.Tag.Get("toml")
		if tomlTag == "" {
			continue
		}

		val, found := loader.Get(prefix + tomlTag)
		if !found {
			continue // Use default value
		}

		if err := setFieldValue(fieldValue, val); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field.Name, err)
		}
	}

	return nil
}

// setFieldValue sets a reflect.Value with proper type conversion
func setFieldValue(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.String:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		field.SetString(strVal)

	case reflect.Int64:
		switch v := value.(type) {
		case int64:
			field.SetInt(v)
		case int:
			field.SetInt(int64(v))
		default:
			return fmt.Errorf("expected int64, got %T", value)
		}

	case reflect.Bool:
		boolVal, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
		field.SetBool(boolVal)

	default:
		return fmt.Errorf("unsupported field type: %v", field.Kind())
	}

	return nil
}

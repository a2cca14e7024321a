package tlog

import (
	"strconv"
	"strings"
)

// ApplyOverride applies string key-value overrides to the logger's current
// configuration. Each override should be in the format "key=value".
// The configuration is cloned before modification to ensure thread safety.
//
// Example:
//
//	logger := tlog.New()
//	err := logger.ApplyOverride(
//	    "file_path=/var/log/app/app.log",
//	    "level=debug",
//	    "target=both",
//	)
func (l *Logger) ApplyOverride(overrides ...string) error {
	cfg := l.GetConfig()

	var errors []error

	for _, override := range overrides {
		key, value, err := parseKeyValue(override)
		if err != nil {
			errors = append(errors, err)
			continue
		}

		if err := applyConfigField(cfg, key, value); err != nil {
			errors = append(errors, err)
		}
	}

	if len(errors) > 0 {
		return combineConfigErrors(errors)
	}

	return l.ApplyConfig(cfg)
}

// applyConfigField sets a single configuration field from its string form.
// Levels and targets are accepted by name or by numeric value.
func applyConfigField(cfg *Config, key, value string) error {
	switch strings.ToLower(key) {
	case "level":
		if lv, err := ParseLevel(value); err == nil {
			cfg.Level = lv
			return nil
		}
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid level: '%s'", value)
		}
		cfg.Level = Level(n)

	case "target":
		if tg, err := ParseTarget(value); err == nil {
			cfg.Target = tg
			return nil
		}
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid target: '%s'", value)
		}
		cfg.Target = Target(n)

	case "file_path":
		cfg.FilePath = value

	case "console_target":
		cfg.ConsoleTarget = value

	case "template":
		cfg.Template = value

	case "timestamp_format":
		cfg.TimestampFormat = value

	case "encoding":
		cfg.Encoding = value

	case "append", "timestamp_suffix", "internal_errors_to_stderr":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("%s must be a boolean: '%s'", key, value)
		}
		switch strings.ToLower(key) {
		case "append":
			cfg.Append = b
		case "timestamp_suffix":
			cfg.TimestampSuffix = b
		case "internal_errors_to_stderr":
			cfg.InternalErrorsToStderr = b
		}

	case "queue_cap", "heartbeat_interval_s":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("%s must be an integer: '%s'", key, value)
		}
		if strings.ToLower(key) == "queue_cap" {
			cfg.QueueCap = n
		} else {
			cfg.HeartbeatIntervalS = n
		}

	default:
		return fmtErrorf("unknown config key: %s", key)
	}

	return nil
}

// combineConfigErrors combines multiple configuration errors into a single error.
func combineConfigErrors(errors []error) error {
	if len(errors) == 0 {
		return nil
	}
	if len(errors) == 1 {
		return errors[0]
	}

	var sb strings.Builder
	sb.WriteString("tlog: multiple configuration errors:")
	for _, err := range errors {
		errMsg := strings.TrimPrefix(err.Error(), "tlog: ")
		sb.WriteString(" [")
		sb.WriteString(errMsg)
		sb.WriteString("]")
	}
	return fmtErrorf("%s", strings.TrimPrefix(sb.String(), "tlog: "))
}

package tlog

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/davecgh/go-spew/spew"
)

// String returns the canonical upper-case level name.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelCritical:
		return "CRITICAL"
	default:
		return fmt.Sprintf("LEVEL(%d)", int64(l))
	}
}

// renderer turns a Message into an output line per the placeholder
// template. It owns a reusable buffer and is confined to the worker
// goroutine.
type renderer struct {
	buf             []byte
	timestampFormat string
}

func newRenderer(timestampFormat string) *renderer {
	return &renderer{
		buf:             make([]byte, 0, 256),
		timestampFormat: timestampFormat,
	}
}

// setTimestampFormat updates the cached format.
func (r *renderer) setTimestampFormat(format string) {
	if format == "" {
		format = DefaultTimestampFormat
	}
	r.timestampFormat = format
}

// render substitutes placeholders in a single left-to-right pass over the
// template. Substituted output is never rescanned, so placeholder-looking
// text inside the message survives verbatim; unknown placeholders pass
// through unchanged. The returned slice is valid until the next render.
func (r *renderer) render(template string, msg Message) []byte {
	r.buf = r.buf[:0]
	for i := 0; i < len(template); {
		if template[i] == '{' && i+2 < len(template) && template[i+2] == '}' {
			switch template[i+1] {
			case 't':
				r.buf = msg.Timestamp.AppendFormat(r.buf, r.timestampFormat)
			case 'L':
				r.buf = append(r.buf, msg.Level.String()...)
			case 'f':
				r.buf = append(r.buf, msg.File...)
			case 'l':
				r.buf = strconv.AppendInt(r.buf, int64(msg.Line), 10)
			case 'm':
				r.buf = append(r.buf, msg.Text...)
			default:
				r.buf = append(r.buf, template[i:i+3]...)
			}
			i += 3
			continue
		}
		r.buf = append(r.buf, template[i])
		i++
	}
	return r.buf
}

// dumper renders arbitrary values in the variadic facade.
// Configured for log-friendly, compact output.
var dumper = &spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                10,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// joinArgs concatenates the display representations of args in order,
// without a separator, to form the message text.
func joinArgs(args []any) string {
	buf := make([]byte, 0, 64)
	for _, arg := range args {
		buf = appendDisplayValue(buf, arg)
	}
	return string(buf)
}

// appendDisplayValue converts a value to its display representation,
// falling back to go-spew for types that are not explicitly supported.
func appendDisplayValue(buf []byte, v any) []byte {
	switch val := v.(type) {
	case string:
		return append(buf, val...)
	case int:
		return strconv.AppendInt(buf, int64(val), 10)
	case int64:
		return strconv.AppendInt(buf, val, 10)
	case uint:
		return strconv.AppendUint(buf, uint64(val), 10)
	case uint64:
		return strconv.AppendUint(buf, val, 10)
	case float32:
		return strconv.AppendFloat(buf, float64(val), 'f', -1, 32)
	case float64:
		return strconv.AppendFloat(buf, val, 'f', -1, 64)
	case bool:
		return strconv.AppendBool(buf, val)
	case nil:
		return append(buf, "nil"...)
	case time.Time:
		return val.AppendFormat(buf, DefaultTimestampFormat)
	case error:
		return append(buf, val.Error()...)
	case fmt.Stringer:
		return append(buf, val.String()...)
	default:
		return append(buf, bytes.TrimSpace([]byte(dumper.Sdump(val)))...)
	}
}

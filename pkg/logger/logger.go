package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fprevidi/Blabbo/config"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog so the rest of the codebase never imports it directly.
// The zero value is a valid no-op logger, which keeps test wiring simple.
type Logger struct {
	z *zerolog.Logger
}

func NewLogger(cfg *config.Config) (*Logger, error) {
	level := zerolog.InfoLevel
	if cfg.LoggerMode.Level != "" {
		parsed, err := zerolog.ParseLevel(cfg.LoggerMode.Level)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.LoggerMode.Level, err)
		}
		level = parsed
	}

	var out io.Writer = os.Stderr
	if cfg.LoggerMode.Development {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}

	z := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return &Logger{z: &z}, nil
}

func (l Logger) base() *zerolog.Logger {
	if l.z == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return l.z
}

func (l Logger) kv(ev *zerolog.Event, keysAndValues []any) *zerolog.Event {
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprint(keysAndValues[i])
		}
		ev = ev.Interface(key, keysAndValues[i+1])
	}
	return ev
}

func (l Logger) Debug(msg string, keysAndValues ...any) {
	l.kv(l.base().Debug(), keysAndValues).Msg(msg)
}

func (l Logger) Info(msg string, keysAndValues ...any) {
	l.kv(l.base().Info(), keysAndValues).Msg(msg)
}

func (l Logger) Warn(msg string, keysAndValues ...any) {
	l.kv(l.base().Warn(), keysAndValues).Msg(msg)
}

func (l Logger) Error(msg string, keysAndValues ...any) {
	l.kv(l.base().Error(), keysAndValues).Msg(msg)
}

func (l Logger) Debugf(format string, args ...any) { l.base().Debug().Msgf(format, args...) }

func (l Logger) Infof(format string, args ...any) { l.base().Info().Msgf(format, args...) }

func (l Logger) Warnf(format string, args ...any) { l.base().Warn().Msgf(format, args...) }

func (l Logger) Errorf(format string, args ...any) { l.base().Error().Msgf(format, args...) }

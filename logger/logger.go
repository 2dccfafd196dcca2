package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	fnderrors "github.com/kohaku-dl/fantia-novel-dl/errors"
)

const (
	// Log levels
	INFO = iota
	WARN
	ERROR
	DEBUG
)

// Logger wraps a zerolog.Logger so that callers can
// log based on the package's level constants.
type Logger struct {
	zl zerolog.Logger
}

func NewLogger(out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}

	writer := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "15:04:05",
		FormatLevel: func(i interface{}) string {
			if i == nil {
				return ""
			}
			return strings.ToUpper(fmt.Sprintf("[%s]", i))
		},
	}
	zl := zerolog.New(writer).With().Timestamp().Logger()
	return &Logger{zl: zl}
}

func (l *Logger) SetOutput(w io.Writer) {
	l.zl = l.zl.Output(w)
}

// GetZerolog returns the underlying zerolog instance for advanced usage.
func (l *Logger) GetZerolog() *zerolog.Logger {
	return &l.zl
}

func (l *Logger) Debug(args ...any) {
	l.zl.Debug().Msg(fmt.Sprint(args...))
}

func (l *Logger) Debugf(format string, args ...any) {
	l.zl.Debug().Msgf(format, args...)
}

func (l *Logger) Info(args ...any) {
	l.zl.Info().Msg(fmt.Sprint(args...))
}

func (l *Logger) Infof(format string, args ...any) {
	l.zl.Info().Msgf(format, args...)
}

func (l *Logger) Warn(args ...any) {
	l.zl.Warn().Msg(fmt.Sprint(args...))
}

func (l *Logger) Warnf(format string, args ...any) {
	l.zl.Warn().Msgf(format, args...)
}

func (l *Logger) Error(args ...any) {
	l.zl.Error().Msg(fmt.Sprint(args...))
}

func (l *Logger) Errorf(format string, args ...any) {
	l.zl.Error().Msgf(format, args...)
}

// LogBasedOnLvlf logs a message based on the log level passed in.
//
// Please ensure that the lvl passed in is valid
// (i.e. INFO, WARN, ERROR, or DEBUG), otherwise this function will panic.
func (l *Logger) LogBasedOnLvlf(lvl int, format string, args ...any) {
	switch lvl {
	case INFO:
		l.Infof(format, args...)
	case WARN:
		l.Warnf(format, args...)
	case ERROR:
		l.Errorf(format, args...)
	case DEBUG:
		l.Debugf(format, args...)
	default:
		panic(
			fmt.Sprintf(
				"error %d: invalid log level %d passed to LogBasedOnLvlf()",
				fnderrors.DEV_ERROR,
				lvl,
			),
		)
	}
}

// LogBasedOnLvl is a wrapper for LogBasedOnLvlf() that takes a plain string.
func (l *Logger) LogBasedOnLvl(lvl int, msg string) {
	l.LogBasedOnLvlf(lvl, "%s", msg)
}

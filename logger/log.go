package logger

import (
	"context"
	"errors"
	"os"
)

var MainLogger = NewLogger(os.Stderr)

// Logs the given error to the main logger at the given level.
// A nil error is a no-op.
func LogError(err error, level int) {
	if err == nil {
		return
	}
	MainLogger.LogBasedOnLvl(level, err.Error())
}

// Logs multiple errors at the given level via LogError().
//
// Also reports whether any of the errors were due to
// context.Canceled, which is caused by Ctrl + C.
func LogErrors(level int, errs ...error) bool {
	var hasCancelled bool
	for _, err := range errs {
		if errors.Is(err, context.Canceled) {
			hasCancelled = true
			continue
		}
		LogError(err, level)
	}
	return hasCancelled
}

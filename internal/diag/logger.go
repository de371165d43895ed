// SPDX-License-Identifier: MPL-2.0

package diag

import (
	"io"

	"github.com/charmbracelet/log"
)

// Logger is the production Sink, rendering records through charmbracelet/log
// with severity mapped to the corresponding log level.
type Logger struct {
	logger *log.Logger
}

// NewLogger creates a Sink writing to w.
func NewLogger(w io.Writer) *Logger {
	return &Logger{logger: log.New(w)}
}

// Emit implements Sink.
func (l *Logger) Emit(rec Record) {
	keyvals := make([]any, 0, 6)
	if rec.Code != "" {
		keyvals = append(keyvals, "code", rec.Code)
	}
	if rec.Path != "" {
		keyvals = append(keyvals, "path", rec.Path)
	}
	if rec.Cause != nil {
		keyvals = append(keyvals, "cause", rec.Cause)
	}

	switch rec.Severity {
	case SeverityError:
		l.logger.Error(rec.Message, keyvals...)
	case SeverityWarning:
		l.logger.Warn(rec.Message, keyvals...)
	default:
		l.logger.Info(rec.Message, keyvals...)
	}
}

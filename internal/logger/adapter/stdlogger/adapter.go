// Package stdlogger adapts the global zerolog logger to printf style logger interfaces,
// such as the gorm logger writer.
package stdlogger

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger forwards printf style calls to the global zerolog logger.
type Logger struct {
	// level used by Printf, gorm routes every message through Printf.
	printLevel zerolog.Level
}

// New creates a Logger which logs Printf calls on debug level.
func New() *Logger {
	return &Logger{printLevel: zerolog.DebugLevel}
}

// NewWithPrintLevel creates a Logger which logs Printf calls on the given level.
func NewWithPrintLevel(l zerolog.Level) *Logger {
	return &Logger{printLevel: l}
}

// Printf implements gorm.io/gorm/logger.Writer.
func (l *Logger) Printf(format string, args ...interface{}) {
	log.WithLevel(l.printLevel).Msg(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// Debugf logs on debug level.
func (l *Logger) Debugf(format string, args ...interface{}) {
	log.Debug().Msgf(format, args...)
}

// Infof logs on info level.
func (l *Logger) Infof(format string, args ...interface{}) {
	log.Info().Msgf(format, args...)
}

// Warningf logs on warn level.
func (l *Logger) Warningf(format string, args ...interface{}) {
	log.Warn().Msgf(format, args...)
}

// Errorf logs on error level.
func (l *Logger) Errorf(format string, args ...interface{}) {
	log.Error().Msgf(format, args...)
}

// Package logging adapts zap to the repuestos.Logger interface.
package logging

import (
	"fmt"

	"github.com/fivetwenty-io/repuestos/pkg/repuestos"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger implements repuestos.Logger on top of a *zap.Logger.
type ZapLogger struct {
	logger *zap.Logger
}

var _ repuestos.Logger = (*ZapLogger)(nil)

// NewZapLogger wraps logger. A nil logger discards everything.
func NewZapLogger(logger *zap.Logger) *ZapLogger {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ZapLogger{logger: logger}
}

// New builds the CLI logger: development output at debug level when verbose,
// otherwise production JSON output limited to warnings and errors.
func New(verbose bool) (*zap.Logger, error) {
	if verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("failed to build development logger: %w", err)
		}

		return logger, nil
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	config.Sampling = nil

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return logger, nil
}

// Zap returns the wrapped logger.
func (l *ZapLogger) Zap() *zap.Logger {
	return l.logger
}

func (l *ZapLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, toFields(fields)...)
}

func (l *ZapLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, toFields(fields)...)
}

func (l *ZapLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, toFields(fields)...)
}

func (l *ZapLogger) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, toFields(fields)...)
}

func toFields(fields map[string]interface{}) []zap.Field {
	if len(fields) == 0 {
		return nil
	}

	zapFields := make([]zap.Field, 0, len(fields))
	for key, value := range fields {
		zapFields = append(zapFields, zap.Any(key, value))
	}

	return zapFields
}

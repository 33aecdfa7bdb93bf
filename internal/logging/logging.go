package logging

import (
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a development-style zap logger at level writing to stderr
// (stdout is reserved for program output).
func New(level zapcore.Level) *zap.Logger {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.EncoderConfig.TimeKey = ""
	logConfig.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	logConfig.DisableStacktrace = true
	logConfig.DisableCaller = true
	logConfig.Level.SetLevel(level)
	return zap.Must(logConfig.Build())
}

// NewWithWriter creates a logger with the same encoding as New writing to w.
func NewWithWriter(level zapcore.Level, w io.Writer) *zap.Logger {
	encConfig := zap.NewDevelopmentEncoderConfig()
	encConfig.TimeKey = ""
	encConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encConfig), zapcore.AddSync(w), level)
	return zap.New(core)
}

// ParseLevel converts a string log level.
// Returns zapcore.InfoLevel for unrecognized values.
func ParseLevel(s string) zapcore.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

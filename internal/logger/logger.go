package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the shared engine logger. Call Init before using it.
var Log *zap.Logger

var level zap.AtomicLevel

// Init builds the shared logger. Safe to call more than once; later
// calls keep the existing logger.
func Init() {
	if Log != nil {
		return
	}
	level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	config := zap.NewDevelopmentConfig()
	config.Level = level
	log, err := config.Build()
	if err != nil {
		panic(err)
	}
	Log = log
}

// SetLevel changes the minimum logged level by name ("debug", "info",
// "warn", "error"). Unknown names leave the level untouched.
func SetLevel(name string) {
	parsed, err := zapcore.ParseLevel(name)
	if err != nil {
		Log.Warn("Unknown log level", zap.String("level", name))
		return
	}
	level.SetLevel(parsed)
}

// Sync flushes buffered log entries.
func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}

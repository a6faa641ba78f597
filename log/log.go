// Package log provides the thin structured-logging wrapper the CLI uses.
// The verification core in scheme/verify never imports this package: it stays
// pure and side-effect free, and only the ambient layers around it log.
package log

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the subset of a SugaredLogger this package exposes. The CLI calls
// Infow and Errorw.
type Logger interface {
	Infow(msg string, keyvals ...interface{})
	Warnw(msg string, keyvals ...interface{})
	Errorw(msg string, keyvals ...interface{})
	With(args ...interface{}) Logger
}

type log struct {
	*zap.SugaredLogger
}

func (l *log) With(args ...interface{}) Logger {
	return &log{l.SugaredLogger.With(args...)}
}

const (
	InfoLevel  = int(zapcore.InfoLevel)
	DebugLevel = int(zapcore.DebugLevel)
	ErrorLevel = int(zapcore.ErrorLevel)
)

var defaultLevel = InfoLevel

var once sync.Once
var defaultLogger Logger

// New returns a logger that prints statements at the given level to stderr,
// using a console encoder suited to interactive use.
func New(level int) Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoder := zapcore.NewConsoleEncoder(encoderConfig)

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stderr), zapcore.Level(level))
	return &log{zap.New(core).Sugar()}
}

// DefaultLogger returns a process-wide logger at InfoLevel, constructed once.
func DefaultLogger() Logger {
	once.Do(func() {
		defaultLogger = New(defaultLevel)
	})
	return defaultLogger
}

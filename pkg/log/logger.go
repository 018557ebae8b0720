package log

import (
	"context"
	"io"
	"os"
	"strings"

	saltLog "github.com/goto/salt/log"
	"github.com/sirupsen/logrus"
)

// Ctx keys picked up by the CLI logger.
const (
	CtxKeyTraceID = "trace_id"
	CtxKeyActor   = "actor"
)

type Logger interface {
	// Debug level message with alternating key/value pairs
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
	Fatal(ctx context.Context, msg string, args ...interface{})

	// Level returns priority level for which this logger will filter logs
	Level() string

	// Writer used to print logs
	Writer() io.Writer
}

//go:generate mockery --srcpkg=github.com/goto/salt/log --name=Logger --structname=SaltLogger --output=./mocks --with-expecter --unroll-variadic=false

type CtxLogger struct {
	log  saltLog.Logger
	keys []string
}

// NewCtxLoggerWithSaltLogger wraps a salt logger, appending the values of
// ctxKeys found in the context to every entry.
func NewCtxLoggerWithSaltLogger(log saltLog.Logger, ctxKeys []string) *CtxLogger {
	return &CtxLogger{log: log, keys: ctxKeys}
}

// NewCtxLogger returns a logrus backed logger writing to stderr.
// format is either "json" or "text".
func NewCtxLogger(logLevel, format string, ctxKeys []string) *CtxLogger {
	return NewCtxLoggerWithWriter(os.Stderr, logLevel, format, ctxKeys)
}

func NewCtxLoggerWithWriter(w io.Writer, logLevel, format string, ctxKeys []string) *CtxLogger {
	var formatter logrus.Formatter = &logrus.JSONFormatter{}
	if strings.EqualFold(format, "text") {
		formatter = &logrus.TextFormatter{DisableColors: true, FullTimestamp: true}
	}
	saltLogger := saltLog.NewLogrus(
		saltLog.LogrusWithLevel(logLevel),
		saltLog.LogrusWithWriter(w),
		saltLog.LogrusWithFormatter(formatter),
	)
	return NewCtxLoggerWithSaltLogger(saltLogger, ctxKeys)
}

// NewNoop discards everything.
func NewNoop() *CtxLogger {
	return NewCtxLoggerWithSaltLogger(saltLog.NewNoop(), nil)
}

func (l *CtxLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.log.Debug(msg, l.addCtxToArgs(ctx, args)...)
}

func (l *CtxLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.log.Info(msg, l.addCtxToArgs(ctx, args)...)
}

func (l *CtxLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.log.Warn(msg, l.addCtxToArgs(ctx, args)...)
}

func (l *CtxLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.log.Error(msg, l.addCtxToArgs(ctx, args)...)
}

func (l *CtxLogger) Fatal(ctx context.Context, msg string, args ...interface{}) {
	l.log.Fatal(msg, l.addCtxToArgs(ctx, args)...)
}

func (l *CtxLogger) Level() string {
	return l.log.Level()
}

func (l *CtxLogger) Writer() io.Writer {
	return l.log.Writer()
}

func (l *CtxLogger) addCtxToArgs(ctx context.Context, args []interface{}) []interface{} {
	if ctx == nil {
		return args
	}

	for _, key := range l.keys {
		if val, ok := ctx.Value(key).(string); ok {
			args = append(args, key, val)
		}
	}

	return args
}

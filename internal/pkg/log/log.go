package log

import (
	"context"
	"fmt"
	"log"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

var global *otelzap.Logger

// Logger is the ctx-aware logging facade used by usecases and repositories.
type Logger interface {
	Debug(ctx context.Context, message string, args ...interface{})
	Info(ctx context.Context, message string, args ...interface{})
	Warn(ctx context.Context, message string, args ...interface{})
	Error(ctx context.Context, message string, args ...interface{})
}

func SetupLogger() *otelzap.Logger {
	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("error setup logger: %v", err)
	}
	return otelzap.New(zapLogger, otelzap.WithMinLevel(zap.InfoLevel))
}

// Setup builds and registers the global logger in one step.
func Setup() *otelzap.Logger {
	logger := SetupLogger()
	Init(logger)
	return logger
}

func Init(l *otelzap.Logger) {
	global = l
}

func GetLogger() Logger {
	return &logger{l: global}
}

type logger struct {
	l *otelzap.Logger
}

func (x *logger) Debug(ctx context.Context, message string, args ...interface{}) {
	x.l.Ctx(ctx).Debug(format(message, args...))
}

func (x *logger) Info(ctx context.Context, message string, args ...interface{}) {
	x.l.Ctx(ctx).Info(format(message, args...))
}

func (x *logger) Warn(ctx context.Context, message string, args ...interface{}) {
	x.l.Ctx(ctx).Warn(format(message, args...))
}

func (x *logger) Error(ctx context.Context, message string, args ...interface{}) {
	x.l.Ctx(ctx).Error(format(message, args...))
}

func format(message string, args ...interface{}) string {
	if len(args) == 0 {
		return message
	}
	return fmt.Sprintf("%s: %v", message, args)
}

// Package crczap adapts a zap.Logger to crc.AdvancedLogger.
package crczap

import (
	"github.com/gocrc/crc"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const DefaultName = "crc"

type Logger interface {
	crc.AdvancedLogger
	ZapLogger() *zap.Logger
	Name() string
}

type Options struct {
	// LogLevel drops events below this level before they reach zap.
	LogLevel zapcore.Level
}

type logger struct {
	zapLogger *zap.Logger
	level     zapcore.Level
}

// NewZapLogger creates a new zap based logger with the logger name set to DefaultName
func NewZapLogger(l *zap.Logger, opts Options) Logger {
	return &logger{zapLogger: l.Named(DefaultName), level: opts.LogLevel}
}

// NewUnnamedZapLogger doesn't set the logger name so the user can set the name of the logger
// before providing it to this function (or just leave it unset)
func NewUnnamedZapLogger(l *zap.Logger) Logger {
	return &logger{zapLogger: l, level: zapcore.DebugLevel}
}

func (rec *logger) ZapLogger() *zap.Logger {
	return rec.zapLogger
}

func (rec *logger) Name() string {
	return rec.zapLogger.Name()
}

func (rec *logger) log(level zapcore.Level, msg string, fields []crc.LogField) {
	if level < rec.level {
		return
	}
	zf := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		zf = append(zf, zap.Any(field.Name, field.Value))
	}
	if ce := rec.zapLogger.Check(level, msg); ce != nil {
		ce.Write(zf...)
	}
}

func (rec *logger) Error(msg string, fields ...crc.LogField) {
	rec.log(zapcore.ErrorLevel, msg, fields)
}

func (rec *logger) Warning(msg string, fields ...crc.LogField) {
	rec.log(zapcore.WarnLevel, msg, fields)
}

func (rec *logger) Info(msg string, fields ...crc.LogField) {
	rec.log(zapcore.InfoLevel, msg, fields)
}

func (rec *logger) Debug(msg string, fields ...crc.LogField) {
	rec.log(zapcore.DebugLevel, msg, fields)
}

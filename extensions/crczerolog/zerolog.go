// Package crczerolog adapts a zerolog.Logger to crc.AdvancedLogger.
package crczerolog

import (
	"github.com/gocrc/crc"
	"github.com/rs/zerolog"
)

const DefaultName = "crc"
const DefaultNameField = "logger"

type Logger interface {
	crc.AdvancedLogger
	ZerologLogger() zerolog.Logger
}

type logger struct {
	zerologLogger zerolog.Logger
}

// NewZerologLogger creates a new zerolog based logger with a global context containing a field
// with name "logger" and value "crc", i.e.:
//
//	l.With().Str("logger", "crc").Logger()
func NewZerologLogger(l zerolog.Logger) Logger {
	return &logger{zerologLogger: l.With().Str(DefaultNameField, DefaultName).Logger()}
}

// NewUnnamedZerologLogger creates a new zerolog based logger without modifying its context like
// NewZerologLogger does.
func NewUnnamedZerologLogger(l zerolog.Logger) Logger {
	return &logger{zerologLogger: l}
}

func (rec *logger) ZerologLogger() zerolog.Logger {
	return rec.zerologLogger
}

func (rec *logger) log(event *zerolog.Event, fields ...crc.LogField) *zerolog.Event {
	for _, field := range fields {
		if err, ok := field.Value.(error); ok {
			event = event.AnErr(field.Name, err)
			continue
		}
		event = event.Interface(field.Name, field.Value)
	}
	return event
}

func (rec *logger) Error(msg string, fields ...crc.LogField) {
	rec.log(rec.zerologLogger.Error(), fields...).Msg(msg)
}

func (rec *logger) Warning(msg string, fields ...crc.LogField) {
	rec.log(rec.zerologLogger.Warn(), fields...).Msg(msg)
}

func (rec *logger) Info(msg string, fields ...crc.LogField) {
	rec.log(rec.zerologLogger.Info(), fields...).Msg(msg)
}

func (rec *logger) Debug(msg string, fields ...crc.LogField) {
	rec.log(rec.zerologLogger.Debug(), fields...).Msg(msg)
}

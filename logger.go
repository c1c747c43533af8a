/*
 * Licensed to the Apache Software Foundation (ASF) under one
 * or more contributor license agreements.  See the NOTICE file
 * distributed with this work for additional information
 * regarding copyright ownership.  The ASF licenses this file
 * to you under the Apache License, Version 2.0 (the
 * "License"); you may not use this file except in compliance
 * with the License.  You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package crc

import (
	"log"
	"strconv"
	"strings"
)

// StdLogger is the minimal printf-style logger, satisfied by *log.Logger.
type StdLogger interface {
	Print(v ...interface{})
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}

type nopLogger struct{}

func (n nopLogger) Print(_ ...interface{}) {}

func (n nopLogger) Printf(_ string, _ ...interface{}) {}

func (n nopLogger) Println(_ ...interface{}) {}

func (n nopLogger) Error(_ string, _ ...LogField) {}

func (n nopLogger) Warning(_ string, _ ...LogField) {}

func (n nopLogger) Info(_ string, _ ...LogField) {}

func (n nopLogger) Debug(_ string, _ ...LogField) {}

type defaultLogger struct{}

func (l *defaultLogger) Print(v ...interface{})                 { log.Print(v...) }
func (l *defaultLogger) Printf(format string, v ...interface{}) { log.Printf(format, v...) }
func (l *defaultLogger) Println(v ...interface{})               { log.Println(v...) }

var nilInternalLogger internalLogger = loggerAdapter{
	minimumLogLevel: LogLevelNone,
	advLogger:       nopLogger{},
	legacyLogger:    nil,
}

// LogLevel is the most verbose level a logger passes on. Higher values are
// more verbose; LogLevelNone disables logging.
type LogLevel int

const (
	LogLevelDebug = LogLevel(5)
	LogLevelInfo  = LogLevel(4)
	LogLevelWarn  = LogLevel(3)
	LogLevelError = LogLevel(2)
	LogLevelNone  = LogLevel(0)
)

func (recv LogLevel) String() string {
	switch recv {
	case LogLevelDebug:
		return "debug"
	case LogLevelInfo:
		return "info"
	case LogLevelWarn:
		return "warn"
	case LogLevelError:
		return "error"
	case LogLevelNone:
		return "none"
	default:
		// fmt.sprintf allocates so use strings.Join instead
		temp := [2]string{"invalid level ", strconv.Itoa(int(recv))}
		return strings.Join(temp[:], "")
	}
}

// LogField is a named value attached to a log event. StdLogger receives the
// values in order as printf arguments of the message.
type LogField struct {
	Name  string
	Value interface{}
}

// NewLogField pairs name with value.
func NewLogField(name string, value interface{}) LogField {
	return LogField{
		Name:  name,
		Value: value,
	}
}

// AdvancedLogger receives structured log events. See extensions/crczap and
// extensions/crczerolog for adapters.
type AdvancedLogger interface {
	Error(msg string, fields ...LogField)
	Warning(msg string, fields ...LogField)
	Info(msg string, fields ...LogField)
	Debug(msg string, fields ...LogField)
}

type internalLogger interface {
	AdvancedLogger
	MinimumLogLevel() LogLevel
}

type loggerAdapter struct {
	minimumLogLevel LogLevel
	advLogger       AdvancedLogger
	legacyLogger    StdLogger
}

func (recv loggerAdapter) logLegacy(msg string, fields ...LogField) {
	var values []interface{}
	var small [5]interface{}
	l := len(fields)
	if l <= 5 { // small stack array optimization
		values = small[:l]
	} else {
		values = make([]interface{}, l)
	}
	for i, v := range fields {
		values[i] = v.Value
	}
	recv.legacyLogger.Printf(msg, values...)
}

func (recv loggerAdapter) Error(msg string, fields ...LogField) {
	if LogLevelError <= recv.minimumLogLevel {
		if recv.advLogger != nil {
			recv.advLogger.Error(msg, fields...)
		} else {
			recv.logLegacy(msg, fields...)
		}
	}
}

func (recv loggerAdapter) Warning(msg string, fields ...LogField) {
	if LogLevelWarn <= recv.minimumLogLevel {
		if recv.advLogger != nil {
			recv.advLogger.Warning(msg, fields...)
		} else {
			recv.logLegacy(msg, fields...)
		}
	}
}

func (recv loggerAdapter) Info(msg string, fields ...LogField) {
	if LogLevelInfo <= recv.minimumLogLevel {
		if recv.advLogger != nil {
			recv.advLogger.Info(msg, fields...)
		} else {
			recv.logLegacy(msg, fields...)
		}
	}
}

func (recv loggerAdapter) Debug(msg string, fields ...LogField) {
	if LogLevelDebug <= recv.minimumLogLevel {
		if recv.advLogger != nil {
			recv.advLogger.Debug(msg, fields...)
		} else {
			recv.logLegacy(msg, fields...)
		}
	}
}

func (recv loggerAdapter) MinimumLogLevel() LogLevel {
	return recv.minimumLogLevel
}

func newInternalLoggerFromAdvancedLogger(logger AdvancedLogger, level LogLevel) loggerAdapter {
	return loggerAdapter{
		minimumLogLevel: level,
		advLogger:       logger,
		legacyLogger:    nil,
	}
}

func newInternalLoggerFromStdLogger(logger StdLogger, level LogLevel) loggerAdapter {
	return loggerAdapter{
		minimumLogLevel: level,
		advLogger:       nil,
		legacyLogger:    logger,
	}
}

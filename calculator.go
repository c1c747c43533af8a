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

import "fmt"

// engine computes one configuration. The slow variants are the bitwise
// reference algorithm, the fast variants are table driven; both return the
// same value for every input.
type engine interface {
	config() Config
	computeSlow(msg []byte) uint64
	updateSlow(acc Accumulator, b byte) uint64
	computeFast(msg []byte) uint64
	updateFast(acc Accumulator, b byte) uint64
}

func newEngine(cfg Config, tables *TableCache, logger internalLogger) (engine, error) {
	switch c := cfg.(type) {
	case *ChecksumConfig:
		if c == nil {
			return nil, ErrUnsupportedConfig
		}
		if c.bits == 0 {
			return nil, unbuiltConfigError(c.name)
		}
		return newChecksumEngine(c), nil
	case *CRCConfig:
		if c == nil {
			return nil, ErrUnsupportedConfig
		}
		if c.bits == 0 {
			return nil, unbuiltConfigError(c.name)
		}
		return newCRCEngine(c, tables, logger), nil
	case nil:
		return nil, ErrUnsupportedConfig
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedConfig, cfg)
	}
}

func unbuiltConfigError(name string) error {
	return newConfigError(name, "bits", 0, "configuration was not built by a constructor")
}

func mustEngine(cfg Config) engine {
	e, err := newEngine(cfg, nil, nil)
	if err != nil {
		panic(err)
	}
	return e
}

// Calculate returns the CRC or checksum of msg using the bitwise reference
// algorithm. It panics if cfg is nil or was not built by a constructor.
func Calculate(cfg Config, msg []byte) uint64 {
	return mustEngine(cfg).computeSlow(msg)
}

// CalculateString is Calculate over the bytes of s.
func CalculateString(cfg Config, s string) uint64 {
	return Calculate(cfg, []byte(s))
}

// Update adds one byte to acc using the bitwise reference algorithm. The
// zero Accumulator starts a new computation.
func Update(cfg Config, acc Accumulator, b byte) Accumulator {
	return Resume(mustEngine(cfg).updateSlow(acc, b))
}

// Calculator binds a configuration to its engine and computes with the
// table-driven algorithm. A Calculator is safe for concurrent use; the
// accumulators passed to Update belong to the caller.
type Calculator struct {
	cfg    Config
	engine engine
}

type options struct {
	advLogger AdvancedLogger
	stdLogger StdLogger
	logLevel  LogLevel
	tables    *TableCache
}

// Option configures a Calculator. The logging options also apply to
// NewTableCache.
type Option func(*options)

// WithLogger sends structured log events to l.
func WithLogger(l AdvancedLogger) Option {
	return func(o *options) {
		o.advLogger = l
	}
}

// WithStdLogger sends log events to a printf-style logger. Passing nil logs
// through the standard library log package.
func WithStdLogger(l StdLogger) Option {
	return func(o *options) {
		o.stdLogger = l
		if l == nil {
			o.stdLogger = &defaultLogger{}
		}
	}
}

// WithLogLevel sets the most verbose level that is logged. The default is
// LogLevelWarn.
func WithLogLevel(level LogLevel) Option {
	return func(o *options) {
		o.logLevel = level
	}
}

// WithTableCache shares lookup tables through c instead of the package
// default cache.
func WithTableCache(c *TableCache) Option {
	return func(o *options) {
		o.tables = c
	}
}

// WithoutTableCache gives the Calculator a private lookup table.
func WithoutTableCache() Option {
	return func(o *options) {
		o.tables = nil
	}
}

func newOptions(opts []Option) options {
	o := options{logLevel: LogLevelWarn}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o *options) logger() internalLogger {
	switch {
	case o.advLogger != nil:
		return newInternalLoggerFromAdvancedLogger(o.advLogger, o.logLevel)
	case o.stdLogger != nil:
		return newInternalLoggerFromStdLogger(o.stdLogger, o.logLevel)
	default:
		return nilInternalLogger
	}
}

// New returns a Calculator for cfg. For CRC configurations the lookup table
// is built (or fetched from the table cache) before New returns.
func New(cfg Config, opts ...Option) (*Calculator, error) {
	o := newOptions(append([]Option{WithTableCache(defaultTableCache)}, opts...))
	logger := o.logger()

	e, err := newEngine(cfg, o.tables, logger)
	if err != nil {
		logger.Warning("crc: unable to create calculator: %v.", NewLogField("err", err))
		return nil, err
	}
	if ce, ok := e.(*crcEngine); ok {
		ce.initTable()
	}
	return &Calculator{cfg: cfg, engine: e}, nil
}

// MustNew is like New but panics on error.
func MustNew(cfg Config, opts ...Option) *Calculator {
	c, err := New(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Config returns the configuration c computes.
func (c *Calculator) Config() Config {
	return c.cfg
}

// Calculate returns the CRC or checksum of msg.
func (c *Calculator) Calculate(msg []byte) uint64 {
	return c.engine.computeFast(msg)
}

// CalculateString is Calculate over the bytes of s.
func (c *Calculator) CalculateString(s string) uint64 {
	return c.Calculate([]byte(s))
}

// Update adds one byte to acc. The zero Accumulator starts a new
// computation; otherwise acc must hold a value previously returned for the
// same configuration.
func (c *Calculator) Update(acc Accumulator, b byte) Accumulator {
	return Resume(c.engine.updateFast(acc, b))
}

// UpdateBytes adds every byte of msg to acc in order. With an empty msg acc
// is returned unchanged.
func (c *Calculator) UpdateBytes(acc Accumulator, msg []byte) Accumulator {
	for _, b := range msg {
		acc = c.Update(acc, b)
	}
	return acc
}

func (c *Calculator) String() string {
	return fmt.Sprintf("[calculator %s]", c.cfg)
}

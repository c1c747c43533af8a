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
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is returned (wrapped in a *ConfigError) when a
	// configuration cannot be represented by the engine.
	ErrInvalidConfig = errors.New("crc: invalid configuration")

	// ErrUnsupportedConfig is returned when no engine exists for a
	// configuration, e.g. a nil Config.
	ErrUnsupportedConfig = errors.New("crc: unsupported configuration")
)

// ConfigError describes a rejected configuration parameter.
type ConfigError struct {
	// Name is the display name of the configuration being built.
	Name   string
	Field  string
	Value  uint64
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("crc: invalid %s %#x: %s", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("crc: %s: invalid %s %#x: %s", e.Name, e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

func newConfigError(name, field string, value uint64, format string, args ...interface{}) *ConfigError {
	return &ConfigError{
		Name:   name,
		Field:  field,
		Value:  value,
		Reason: fmt.Sprintf(format, args...),
	}
}

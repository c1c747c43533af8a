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
	"fmt"
	"strconv"
	"strings"
)

const (
	// MinBits and MaxBits bound the width of every configuration. Widths must
	// also be a whole number of bytes.
	MinBits = 8
	MaxBits = 64
)

// Kind identifies the engine a Config is computed with.
type Kind int

const (
	KindChecksum Kind = iota + 1
	KindCRC
)

func (k Kind) String() string {
	switch k {
	case KindChecksum:
		return "checksum"
	case KindCRC:
		return "crc"
	default:
		// fmt.sprintf allocates so use strings.Join instead
		temp := [2]string{"invalid kind ", strconv.Itoa(int(k))}
		return strings.Join(temp[:], "")
	}
}

// Config describes one checksum or CRC variant. The only implementations are
// *ChecksumConfig and *CRCConfig; both are immutable once built and safe to
// share between goroutines.
type Config interface {
	Kind() Kind
	Name() string
	// Bits is the width of every value computed with this configuration.
	Bits() int
	Bytes() int
	Mask() uint64
	InitialValue() uint64
	String() string

	base() *common
}

type common struct {
	name         string
	bits         int
	bytes        int
	mask         uint64
	initialValue uint64
}

func (c *common) base() *common { return c }

func (c *common) Name() string         { return c.name }
func (c *common) Bits() int            { return c.bits }
func (c *common) Bytes() int           { return c.bytes }
func (c *common) Mask() uint64         { return c.mask }
func (c *common) InitialValue() uint64 { return c.initialValue }

func widthMask(bits int) uint64 {
	if bits >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<uint(bits) - 1
}

func newCommon(name string, bits int, initialValue uint64) (common, error) {
	if bits < MinBits || bits > MaxBits {
		return common{}, newConfigError(name, "bits", uint64(bits), "width must be between %d and %d", MinBits, MaxBits)
	}
	if bits%8 != 0 {
		return common{}, newConfigError(name, "bits", uint64(bits), "width must be a multiple of 8")
	}
	c := common{
		name:         name,
		bits:         bits,
		bytes:        bits / 8,
		mask:         widthMask(bits),
		initialValue: initialValue,
	}
	if initialValue > c.mask {
		return common{}, newConfigError(name, "initial value", initialValue, "wider than %d bits", bits)
	}
	return c, nil
}

// ChecksumConfig is a running sum of the message bytes, masked to Bits.
type ChecksumConfig struct {
	common
}

// NewChecksumConfig validates and builds a checksum configuration.
func NewChecksumConfig(name string, bits int, initialValue uint64) (*ChecksumConfig, error) {
	c, err := newCommon(name, bits, initialValue)
	if err != nil {
		return nil, err
	}
	return &ChecksumConfig{common: c}, nil
}

// MustChecksumConfig is like NewChecksumConfig but panics on error.
func MustChecksumConfig(name string, bits int, initialValue uint64) *ChecksumConfig {
	c, err := NewChecksumConfig(name, bits, initialValue)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *ChecksumConfig) Kind() Kind { return KindChecksum }

func (c *ChecksumConfig) String() string {
	return fmt.Sprintf("[checksum name=%q bits=%d init=%#x]", c.name, c.bits, c.initialValue)
}

// CRCParams holds the parameters of a CRC variant before validation.
type CRCParams struct {
	Name         string
	Bits         int
	Polynomial   uint64
	InitialValue uint64
	FinalXOR     uint64

	ReflectInputBits   bool
	ReflectOutputBits  bool
	ReflectOutputBytes bool
}

// Validate checks that every value fits the declared width.
func (p CRCParams) Validate() error {
	_, err := p.build()
	return err
}

func (p CRCParams) build() (*CRCConfig, error) {
	c, err := newCommon(p.Name, p.Bits, p.InitialValue)
	if err != nil {
		return nil, err
	}
	if p.Polynomial > c.mask {
		return nil, newConfigError(p.Name, "polynomial", p.Polynomial, "wider than %d bits", p.Bits)
	}
	if p.FinalXOR > c.mask {
		return nil, newConfigError(p.Name, "final xor value", p.FinalXOR, "wider than %d bits", p.Bits)
	}
	return &CRCConfig{
		common:             c,
		polynomial:         p.Polynomial,
		finalXOR:           p.FinalXOR,
		reflectInputBits:   p.ReflectInputBits,
		reflectOutputBits:  p.ReflectOutputBits,
		reflectOutputBytes: p.ReflectOutputBytes,
		topBit:             uint64(1) << uint(p.Bits-1),
	}, nil
}

// CRCConfig is a fully parameterized CRC variant.
type CRCConfig struct {
	common

	polynomial         uint64
	finalXOR           uint64
	reflectInputBits   bool
	reflectOutputBits  bool
	reflectOutputBytes bool
	topBit             uint64
}

// NewCRCConfig validates p and builds an immutable configuration from it.
func NewCRCConfig(p CRCParams) (*CRCConfig, error) {
	return p.build()
}

// MustCRCConfig is like NewCRCConfig but panics on error. It is intended for
// package level variables.
func MustCRCConfig(p CRCParams) *CRCConfig {
	c, err := NewCRCConfig(p)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *CRCConfig) Kind() Kind               { return KindCRC }
func (c *CRCConfig) Polynomial() uint64       { return c.polynomial }
func (c *CRCConfig) FinalXOR() uint64         { return c.finalXOR }
func (c *CRCConfig) ReflectInputBits() bool   { return c.reflectInputBits }
func (c *CRCConfig) ReflectOutputBits() bool  { return c.reflectOutputBits }
func (c *CRCConfig) ReflectOutputBytes() bool { return c.reflectOutputBytes }

// TopBit is the most significant bit of the register, 1 << (Bits-1).
func (c *CRCConfig) TopBit() uint64 { return c.topBit }

// Params returns the parameters c was built from.
func (c *CRCConfig) Params() CRCParams {
	return CRCParams{
		Name:               c.name,
		Bits:               c.bits,
		Polynomial:         c.polynomial,
		InitialValue:       c.initialValue,
		FinalXOR:           c.finalXOR,
		ReflectInputBits:   c.reflectInputBits,
		ReflectOutputBits:  c.reflectOutputBits,
		ReflectOutputBytes: c.reflectOutputBytes,
	}
}

func (c *CRCConfig) String() string {
	return fmt.Sprintf("[crc name=%q bits=%d poly=%#x init=%#x xorout=%#x refin=%v refout=%v refbytes=%v]",
		c.name, c.bits, c.polynomial, c.initialValue, c.finalXOR,
		c.reflectInputBits, c.reflectOutputBits, c.reflectOutputBytes)
}

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

import "strings"

// Preconfigured checksums.
var (
	Checksum8  = MustChecksumConfig("8-bit Checksum", 8, 0)
	Checksum16 = MustChecksumConfig("16-bit Checksum", 16, 0)
	Checksum32 = MustChecksumConfig("32-bit Checksum", 32, 0)
)

// Preconfigured CRCs. CRC16CCITTKermit and CRC16DNP also reflect the output
// bytes, so they return the low byte of the register first.
var (
	CRC16 = MustCRCConfig(CRCParams{
		Name: "CRC-16", Bits: 16,
		Polynomial: 0x8005, InitialValue: 0x0000, FinalXOR: 0x0000,
		ReflectInputBits: true, ReflectOutputBits: true,
	})
	CRC16Modbus = MustCRCConfig(CRCParams{
		Name: "CRC-16 Modbus", Bits: 16,
		Polynomial: 0x8005, InitialValue: 0xFFFF, FinalXOR: 0x0000,
		ReflectInputBits: true, ReflectOutputBits: true,
	})
	CRC16CCITT = MustCRCConfig(CRCParams{
		Name: "CRC-CCITT", Bits: 16,
		Polynomial: 0x1021, InitialValue: 0xFFFF, FinalXOR: 0x0000,
	})
	CRC16CCITTXModem = MustCRCConfig(CRCParams{
		Name: "CRC-CCITT XModem", Bits: 16,
		Polynomial: 0x1021, InitialValue: 0x0000, FinalXOR: 0x0000,
	})
	CRC16CCITT1D0F = MustCRCConfig(CRCParams{
		Name: "CRC-CCITT 0x1D0F", Bits: 16,
		Polynomial: 0x1021, InitialValue: 0x1D0F, FinalXOR: 0x0000,
	})
	// CRC16CCITTKermit returns 0x8921 for "123456789": the published
	// check value 0x2189 with its two bytes swapped.
	CRC16CCITTKermit = MustCRCConfig(CRCParams{
		Name: "CRC-CCITT Kermit", Bits: 16,
		Polynomial: 0x1021, InitialValue: 0x0000, FinalXOR: 0x0000,
		ReflectInputBits: true, ReflectOutputBits: true, ReflectOutputBytes: true,
	})
	CRC16DNP = MustCRCConfig(CRCParams{
		Name: "CRC-DNP", Bits: 16,
		Polynomial: 0x3D65, InitialValue: 0x0000, FinalXOR: 0xFFFF,
		ReflectInputBits: true, ReflectOutputBits: true, ReflectOutputBytes: true,
	})
	CRC32 = MustCRCConfig(CRCParams{
		Name: "CRC-32", Bits: 32,
		Polynomial: 0x04C11DB7, InitialValue: 0xFFFFFFFF, FinalXOR: 0xFFFFFFFF,
		ReflectInputBits: true, ReflectOutputBits: true,
	})
)

// Additional widely used variants.
var (
	CRC8 = MustCRCConfig(CRCParams{
		Name: "CRC-8", Bits: 8,
		Polynomial: 0x07,
	})
	CRC8Maxim = MustCRCConfig(CRCParams{
		Name: "CRC-8 Maxim", Bits: 8,
		Polynomial:       0x31,
		ReflectInputBits: true, ReflectOutputBits: true,
	})
	CRC32C = MustCRCConfig(CRCParams{
		Name: "CRC-32C", Bits: 32,
		Polynomial: 0x1EDC6F41, InitialValue: 0xFFFFFFFF, FinalXOR: 0xFFFFFFFF,
		ReflectInputBits: true, ReflectOutputBits: true,
	})
	CRC64ECMA = MustCRCConfig(CRCParams{
		Name: "CRC-64 ECMA", Bits: 64,
		Polynomial:   0x42F0E1EBA9EA3693,
		InitialValue: 0xFFFFFFFFFFFFFFFF, FinalXOR: 0xFFFFFFFFFFFFFFFF,
		ReflectInputBits: true, ReflectOutputBits: true,
	})
)

var catalog = []Config{
	Checksum8,
	Checksum16,
	Checksum32,
	CRC16,
	CRC16Modbus,
	CRC16CCITT,
	CRC16CCITTXModem,
	CRC16CCITT1D0F,
	CRC16CCITTKermit,
	CRC16DNP,
	CRC32,
	CRC8,
	CRC8Maxim,
	CRC32C,
	CRC64ECMA,
}

// Catalog returns every preconfigured Config.
func Catalog() []Config {
	out := make([]Config, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds a preconfigured Config by display name, ignoring case.
func Lookup(name string) (Config, bool) {
	for _, cfg := range catalog {
		if strings.EqualFold(cfg.Name(), name) {
			return cfg, true
		}
	}
	return nil, false
}

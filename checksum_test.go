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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChecksum(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *ChecksumConfig
		buf      []byte
		expected uint64
	}{
		{"empty buf", Checksum8, []byte{}, 0},
		{"small bytes", Checksum8, []byte{1, 2, 3, 4}, 10},
		// Bytes are summed as unsigned values.
		{"high bytes 8", Checksum8, []byte{0x80, 0x90}, 0x10},
		{"high bytes 16", Checksum16, []byte{0x80, 0x90}, 0x110},
		{"wraps 16", Checksum16, bytesOf(0xFF, 258), 0xFE},
		{"check input 32", Checksum32, checkInput, 0x1DD},
		{"initial value", MustChecksumConfig("seeded", 8, 0xF0), []byte{0x20}, 0x10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newChecksumEngine(tt.cfg)
			require.Equal(t, tt.expected, e.computeSlow(tt.buf))
			require.Equal(t, tt.expected, e.computeFast(tt.buf))
		})
	}
}

func TestChecksumIncremental(t *testing.T) {
	for _, cfg := range []*ChecksumConfig{Checksum8, Checksum16, Checksum32} {
		e := newChecksumEngine(cfg)
		for _, msg := range randomMessages(5, 16, 600) {
			var acc Accumulator
			for _, b := range msg {
				acc = Resume(e.updateFast(acc, b))
				require.LessOrEqual(t, acc.Uint64(), cfg.Mask())
			}
			require.Equal(t, e.computeSlow(msg), acc.Uint64(), cfg.Name())
		}
	}
}

func TestChecksumResumeFromZero(t *testing.T) {
	seeded := MustChecksumConfig("seeded", 16, 0x1000)
	e := newChecksumEngine(seeded)

	// A fresh start uses the initial value, resuming from zero does not.
	require.Equal(t, uint64(0x1001), e.updateSlow(Accumulator{}, 1))
	require.Equal(t, uint64(0x0001), e.updateSlow(Resume(0), 1))
}

func bytesOf(b byte, n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}

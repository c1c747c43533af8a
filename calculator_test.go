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
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStaticAPI(t *testing.T) {
	require.Equal(t, uint64(0xCBF43926), CalculateString(CRC32, "123456789"))
	require.Equal(t, uint64(10), Calculate(Checksum8, []byte{1, 2, 3, 4}))

	var acc Accumulator
	for _, b := range []byte("123456789") {
		acc = Update(CRC32, acc, b)
	}
	v, ok := acc.Value()
	require.True(t, ok)
	require.Equal(t, uint64(0xCBF43926), v)
}

func TestStaticAPIPanicsOnUnsupportedConfig(t *testing.T) {
	require.PanicsWithValue(t, ErrUnsupportedConfig, func() {
		Calculate(nil, []byte{1})
	})
	require.PanicsWithValue(t, ErrUnsupportedConfig, func() {
		var cfg *CRCConfig
		Update(cfg, Accumulator{}, 1)
	})
	require.Panics(t, func() {
		Calculate(&CRCConfig{}, []byte{1})
	})
}

func TestNewRejectsUnsupportedConfig(t *testing.T) {
	rec := &recordingLogger{}
	c, err := New(nil, WithLogger(rec))
	require.Nil(t, c)
	require.ErrorIs(t, err, ErrUnsupportedConfig)
	require.Len(t, rec.events, 1)
	require.Equal(t, LogLevelWarn, rec.events[0].level)

	_, err = New(&ChecksumConfig{})
	require.ErrorIs(t, err, ErrInvalidConfig)

	require.Panics(t, func() { MustNew(nil) })
}

func TestCalculatorMatchesStaticAPI(t *testing.T) {
	msgs := randomMessages(6, 32, 128)
	for _, cfg := range Catalog() {
		t.Run(cfg.Name(), func(t *testing.T) {
			calc := MustNew(cfg)
			require.Same(t, cfg, calc.Config())
			for _, msg := range msgs {
				require.Equal(t, Calculate(cfg, msg), calc.Calculate(msg))
			}
			require.Equal(t, CalculateString(cfg, "123456789"), calc.CalculateString("123456789"))
		})
	}
}

func TestCalculatorIncremental(t *testing.T) {
	for _, cfg := range Catalog() {
		t.Run(cfg.Name(), func(t *testing.T) {
			calc := MustNew(cfg)
			msg := []byte("The quick brown fox jumps over the lazy dog")

			var acc Accumulator
			for _, b := range msg {
				acc = calc.Update(acc, b)
				require.LessOrEqual(t, acc.Uint64(), cfg.Mask())
			}
			require.Equal(t, calc.Calculate(msg), acc.Uint64())

			// Pause after the first half and resume from the shown value only.
			half := calc.UpdateBytes(Accumulator{}, msg[:20])
			resumed := calc.UpdateBytes(Resume(half.Uint64()), msg[20:])
			require.Equal(t, acc, resumed)

			require.Equal(t, half, calc.UpdateBytes(half, nil))
			require.True(t, calc.UpdateBytes(Accumulator{}, nil).IsZero())
		})
	}
}

func TestCalculatorEmptyInput(t *testing.T) {
	for _, cfg := range Catalog() {
		calc := MustNew(cfg)
		want := cfg.InitialValue()
		if c, ok := cfg.(*CRCConfig); ok {
			want = finalize(c, c.InitialValue())
		}
		require.Equal(t, want, calc.Calculate(nil), cfg.Name())
	}
}

func TestCalculatorLogsTableBuild(t *testing.T) {
	std := &testLogger{}
	MustNew(CRC32, WithStdLogger(std), WithLogLevel(LogLevelDebug), WithTableCache(NewTableCache(0)))
	require.Equal(t, "crc: built lookup table for CRC-32 (bits=32, polynomial=0x4c11db7).", std.String())

	rec := &recordingLogger{}
	tables := NewTableCache(0)
	MustNew(CRC16, WithLogger(rec), WithLogLevel(LogLevelDebug), WithTableCache(tables))
	MustNew(CRC16Modbus, WithLogger(rec), WithLogLevel(LogLevelDebug), WithTableCache(tables))
	require.Len(t, rec.events, 2)
	require.Contains(t, rec.events[0].msg, "built lookup table")
	require.Contains(t, rec.events[1].msg, "reusing lookup table")
	require.Equal(t, NewLogField("name", "CRC-16 Modbus"), rec.events[1].fields[0])

	quiet := &recordingLogger{}
	MustNew(CRC16, WithLogger(quiet))
	require.Empty(t, quiet.events)
}

func TestCalculatorPrivateTable(t *testing.T) {
	tables := NewTableCache(0)
	MustNew(CRC32, WithTableCache(tables), WithoutTableCache())
	require.Zero(t, tables.Len())
}

func TestCalculatorConcurrentUse(t *testing.T) {
	calc := MustNew(CRC32C, WithoutTableCache())
	msgs := randomMessages(7, 64, 256)
	want := make([]uint64, len(msgs))
	for i, msg := range msgs {
		want[i] = Calculate(CRC32C, msg)
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, msg := range msgs {
				if got := calc.Calculate(msg); got != want[i] {
					t.Errorf("message %d: got %#x want %#x", i, got, want[i])
				}
			}
		}()
	}
	wg.Wait()
}

func TestAccumulator(t *testing.T) {
	var acc Accumulator
	require.True(t, acc.IsZero())
	_, ok := acc.Value()
	require.False(t, ok)
	require.Equal(t, "<none>", acc.String())

	acc = Resume(0)
	require.False(t, acc.IsZero())
	v, ok := acc.Value()
	require.True(t, ok)
	require.Zero(t, v)
	require.Equal(t, "0x2189", Resume(0x2189).String())
}

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

import "sync"

// crcEngine computes one CRCConfig either bit by bit or through a 256-entry
// lookup table. Both paths keep the register in its internal (unfinalized)
// form and only finalize on the way out.
type crcEngine struct {
	cfg *CRCConfig

	tableOnce sync.Once
	table     *Table
	// tables, when set, shares lookup tables between engines.
	tables *TableCache
	logger internalLogger
}

func newCRCEngine(cfg *CRCConfig, tables *TableCache, logger internalLogger) *crcEngine {
	if logger == nil {
		logger = nilInternalLogger
	}
	return &crcEngine{cfg: cfg, tables: tables, logger: logger}
}

func (e *crcEngine) config() Config { return e.cfg }

// initTable builds the lookup table on first use. Safe to call concurrently
// and any number of times; the table is never written after that.
func (e *crcEngine) initTable() *Table {
	e.tableOnce.Do(func() {
		cached := false
		if e.tables != nil {
			e.table, cached = e.tables.get(e.cfg)
		} else {
			e.table = MakeTable(e.cfg)
		}
		msg := "crc: built lookup table for %s (bits=%d, polynomial=%#x)."
		if cached {
			msg = "crc: reusing lookup table for %s (bits=%d, polynomial=%#x)."
		}
		e.logger.Debug(msg,
			NewLogField("name", e.cfg.name),
			NewLogField("bits", e.cfg.bits),
			NewLogField("polynomial", e.cfg.polynomial))
	})
	return e.table
}

func (e *crcEngine) computeSlow(msg []byte) uint64 {
	crc := e.cfg.initialValue
	for _, b := range msg {
		crc = slowCore(e.cfg, crc, b)
	}
	return finalize(e.cfg, crc)
}

func (e *crcEngine) updateSlow(acc Accumulator, b byte) uint64 {
	crc := e.resume(acc)
	crc = slowCore(e.cfg, crc, b)
	return finalize(e.cfg, crc)
}

func (e *crcEngine) computeFast(msg []byte) uint64 {
	table := e.initTable()
	crc := e.cfg.initialValue
	for _, b := range msg {
		crc = fastCore(e.cfg, table, crc, b)
	}
	return finalize(e.cfg, crc)
}

func (e *crcEngine) updateFast(acc Accumulator, b byte) uint64 {
	table := e.initTable()
	crc := e.resume(acc)
	crc = fastCore(e.cfg, table, crc, b)
	return finalize(e.cfg, crc)
}

// resume recovers the internal register from a finalized accumulator.
func (e *crcEngine) resume(acc Accumulator) uint64 {
	v, ok := acc.Value()
	if !ok {
		return e.cfg.initialValue
	}
	return unfinalize(e.cfg, v&e.cfg.mask)
}

// slowCore brings one message byte into the register and divides it out a
// bit at a time.
func slowCore(cfg *CRCConfig, crc uint64, b byte) uint64 {
	data := uint64(b)
	if cfg.reflectInputBits {
		data = ReflectBits(data, 8)
	}
	crc ^= data << uint(cfg.bits-8)
	return divide(cfg, crc)
}

// divide performs eight rounds of modulo-2 division of the register by the
// polynomial. The register stays confined to cfg.bits.
func divide(cfg *CRCConfig, crc uint64) uint64 {
	for bit := 8; bit > 0; bit-- {
		if crc&cfg.topBit != 0 {
			crc = (crc<<1)&cfg.mask ^ cfg.polynomial
		} else {
			crc = (crc << 1) & cfg.mask
		}
	}
	return crc
}

// fastCore replaces the eight division rounds of slowCore with one table
// lookup indexed by the byte leaving the top of the register.
func fastCore(cfg *CRCConfig, table *Table, crc uint64, b byte) uint64 {
	data := uint64(b)
	if cfg.reflectInputBits {
		data = ReflectBits(data, 8)
	}
	idx := byte(data ^ crc>>uint(cfg.bits-8))
	crc = (crc << 8) & cfg.mask
	return table[idx] ^ crc
}

// finalize turns the internal register into the value shown to callers.
func finalize(cfg *CRCConfig, crc uint64) uint64 {
	if cfg.reflectOutputBits {
		crc = ReflectBits(crc, cfg.bits)
	}
	crc ^= cfg.finalXOR
	if cfg.reflectOutputBytes {
		crc = ReflectBytes(crc, cfg.bytes)
	}
	return crc
}

// unfinalize is the inverse of finalize, applied in reverse order.
func unfinalize(cfg *CRCConfig, crc uint64) uint64 {
	if cfg.reflectOutputBytes {
		crc = ReflectBytes(crc, cfg.bytes)
	}
	crc ^= cfg.finalXOR
	if cfg.reflectOutputBits {
		crc = ReflectBits(crc, cfg.bits)
	}
	return crc
}

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

import "github.com/gocrc/crc/internal/lru"

// Table holds the partial remainder of every possible top byte of the
// register. It depends only on the width and polynomial of a CRCConfig.
type Table [256]uint64

// MakeTable builds the lookup table for cfg by running the bitwise division
// core over each byte value placed in the top byte of the register.
func MakeTable(cfg *CRCConfig) *Table {
	t := new(Table)
	for dividend := range t {
		crc := uint64(dividend) << uint(cfg.bits-8)
		t[dividend] = divide(cfg, crc)
	}
	return t
}

// DefaultTableCacheSize is the number of tables kept by the shared cache.
const DefaultTableCacheSize = 64

type tableKey struct {
	bits       int
	polynomial uint64
}

// TableCache shares lookup tables between calculators whose configurations
// have the same width and polynomial, e.g. CRC16 and CRC16Modbus. Cached
// tables are read-only. It is safe for concurrent use.
type TableCache struct {
	lru    *lru.Cache[tableKey, *Table]
	logger internalLogger
}

// NewTableCache returns a cache holding at most size tables. A size of zero
// means no limit. The logging options (WithLogger, WithStdLogger,
// WithLogLevel) report tables leaving the cache at debug level; other
// options are ignored.
func NewTableCache(size int, opts ...Option) *TableCache {
	o := newOptions(opts)
	c := &TableCache{
		lru:    lru.New[tableKey, *Table](size),
		logger: o.logger(),
	}
	c.lru.OnEvicted = c.evicted
	return c
}

var defaultTableCache = NewTableCache(DefaultTableCacheSize)

func (c *TableCache) evicted(key tableKey, _ *Table) {
	c.logger.Debug("crc: dropped lookup table (bits=%d, polynomial=%#x).",
		NewLogField("bits", key.bits),
		NewLogField("polynomial", key.polynomial))
}

// get returns the table for cfg, building it on a miss. Concurrent misses
// for the same key build the table once. The second result reports whether
// the table came from the cache.
func (c *TableCache) get(cfg *CRCConfig) (*Table, bool) {
	return c.lru.GetOrCreate(keyOf(cfg), func() *Table {
		return MakeTable(cfg)
	})
}

func keyOf(cfg *CRCConfig) tableKey {
	return tableKey{bits: cfg.bits, polynomial: cfg.polynomial}
}

// Remove drops the table shared by every configuration with cfg's width and
// polynomial. It reports whether a table was cached. Calculators already
// holding the table keep using it.
func (c *TableCache) Remove(cfg *CRCConfig) bool {
	return c.lru.Remove(keyOf(cfg))
}

// Len returns the number of cached tables.
func (c *TableCache) Len() int {
	return c.lru.Len()
}

// Purge drops every cached table. Calculators already holding a table keep
// using it.
func (c *TableCache) Purge() {
	c.lru.Purge()
}

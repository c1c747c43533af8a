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

// checksumEngine sums message bytes as unsigned values 0-255. It has no
// separate bitwise and table-driven paths and no finalize step: the running
// sum is already the visible value, so resuming reuses it as is.
type checksumEngine struct {
	cfg *ChecksumConfig
}

func newChecksumEngine(cfg *ChecksumConfig) *checksumEngine {
	return &checksumEngine{cfg: cfg}
}

func (e *checksumEngine) config() Config { return e.cfg }

func (e *checksumEngine) compute(msg []byte) uint64 {
	sum := e.cfg.initialValue
	for _, b := range msg {
		sum += uint64(b)
	}
	return sum & e.cfg.mask
}

func (e *checksumEngine) update(acc Accumulator, b byte) uint64 {
	sum, ok := acc.Value()
	if !ok {
		sum = e.cfg.initialValue
	}
	sum += uint64(b)
	return sum & e.cfg.mask
}

func (e *checksumEngine) computeSlow(msg []byte) uint64              { return e.compute(msg) }
func (e *checksumEngine) computeFast(msg []byte) uint64              { return e.compute(msg) }
func (e *checksumEngine) updateSlow(acc Accumulator, b byte) uint64 { return e.update(acc, b) }
func (e *checksumEngine) updateFast(acc Accumulator, b byte) uint64 { return e.update(acc, b) }

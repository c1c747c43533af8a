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

import "strconv"

// Accumulator is the CRC or checksum computed so far, in its finalized form.
// The zero Accumulator means no bytes have been processed yet, which is
// distinct from having processed bytes that summed to zero.
type Accumulator struct {
	value uint64
	valid bool
}

// Resume returns an Accumulator holding a previously returned value so a
// computation can continue from it.
func Resume(v uint64) Accumulator {
	return Accumulator{value: v, valid: true}
}

// Value returns the finalized value and whether one is present.
func (a Accumulator) Value() (uint64, bool) {
	return a.value, a.valid
}

// Uint64 returns the finalized value, or 0 if no bytes were processed.
func (a Accumulator) Uint64() uint64 {
	return a.value
}

// IsZero reports whether a represents "start fresh".
func (a Accumulator) IsZero() bool {
	return !a.valid
}

func (a Accumulator) String() string {
	if !a.valid {
		return "<none>"
	}
	return "0x" + strconv.FormatUint(a.value, 16)
}

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

import "math/bits"

// ReflectBits reverses the order of the low n bits of value, so bit 0 swaps
// with bit n-1. Bits at or above n are dropped. n is clamped to [0, 64].
func ReflectBits(value uint64, n int) uint64 {
	if n <= 0 {
		return 0
	}
	if n > 64 {
		n = 64
	}
	return bits.Reverse64(value) >> uint(64-n)
}

// ReflectBytes reverses the order of the low n bytes of value. Bytes at or
// above n are dropped. n is clamped to [0, 8].
func ReflectBytes(value uint64, n int) uint64 {
	if n <= 0 {
		return 0
	}
	if n > 8 {
		n = 8
	}
	return bits.ReverseBytes64(value) >> uint(64-8*n)
}

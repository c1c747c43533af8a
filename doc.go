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

/*
Package crc computes checksums and CRCs under a fully parameterized model:
width, polynomial, initial value, final XOR and reflection of the input
bits, output bits and output bytes.

Pick a configuration from the catalog, or build one, and calculate:

	sum := crc.CalculateString(crc.CRC32, "123456789") // 0xCBF43926

	params := crc.CRCParams{
		Name:       "CRC-16/ARC",
		Bits:       16,
		Polynomial: 0x8005,
		ReflectInputBits:  true,
		ReflectOutputBits: true,
	}
	cfg, err := crc.NewCRCConfig(params)
	if err != nil {
		// handle err
	}

The package level functions use the bitwise reference algorithm. A
Calculator builds a 256-entry lookup table once and is the faster choice
for repeated use:

	calc, err := crc.New(crc.CRC16Modbus)
	if err != nil {
		// handle err
	}
	v := calc.Calculate(frame)

Computations can be paused and resumed one byte at a time. The zero
Accumulator starts a new computation and every returned Accumulator holds
the externally visible value, so a value shown to a peer can be resumed
with crc.Resume:

	var acc crc.Accumulator
	for _, b := range msg {
		acc = calc.Update(acc, b)
	}
	acc = calc.Update(crc.Resume(acc.Uint64()), next)
*/
package crc

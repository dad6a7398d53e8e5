// Copyright 2023 Sogang University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tensor

import "math"

// Float16ToFloat32 widens an IEEE 754 binary16 value given as its bit pattern.
func Float16ToFloat32(value uint16) float32 {
	sign := uint32(value>>15) & 0x1
	exponent := uint32(value>>10) & 0x1F
	mantissa := uint32(value & 0x3FF)

	var bits uint32
	if exponent == 0 {
		if mantissa == 0 {
			bits = sign << 31
		} else {
			// subnormal; shift the leading bit into the hidden position
			shift := uint32(0)
			for (mantissa & 0x400) == 0 {
				mantissa <<= 1
				shift++
			}
			mantissa &= 0x3FF
			exponent = (127 - 15 + 1) - shift
			bits = (sign << 31) | (exponent << 23) | (mantissa << 13)
		}
	} else if exponent == 0x1F {
		if mantissa == 0 {
			bits = (sign << 31) | 0x7F800000
		} else {
			bits = (sign << 31) | 0x7F800000 | (mantissa << 13)
		}
	} else {
		exponent = exponent + (127 - 15)
		bits = (sign << 31) | (exponent << 23) | (mantissa << 13)
	}

	return math.Float32frombits(bits)
}

// Float32ToFloat16 narrows a float32 to the IEEE 754 binary16 bit pattern,
// truncating the mantissa and saturating overflow to infinity.
func Float32ToFloat16(value float32) uint16 {
	bits := math.Float32bits(value)

	sign := uint16((bits >> 31) & 0x1)
	exponent := int((bits >> 23) & 0xFF)
	mantissa := uint32(bits & 0x7FFFFF)

	var half uint16
	if exponent == 0xFF {
		if mantissa == 0 {
			half = (sign << 15) | 0x7C00
		} else {
			half = (sign << 15) | 0x7C00 | uint16(mantissa>>13)
		}
	} else if exponent > 142 {
		half = (sign << 15) | 0x7C00
	} else if exponent < 113 {
		if exponent < 103 {
			half = sign << 15
		} else {
			// subnormal result
			mantissa |= 0x800000
			shift := uint(113 - exponent)
			halfMantissa := uint16(mantissa >> (shift + 13))
			half = (sign << 15) | halfMantissa
		}
	} else {
		halfExponent := uint16(exponent-112) << 10
		halfMantissa := uint16(mantissa >> 13)
		half = (sign << 15) | halfExponent | halfMantissa
	}

	return half
}

// BFloat16ToFloat32 widens a bfloat16 value given as its bit pattern.
// bfloat16 is the top 16 bits of the float32 encoding.
func BFloat16ToFloat32(value uint16) float32 {
	return math.Float32frombits(uint32(value) << 16)
}

// Float32ToBFloat16 narrows a float32 to the bfloat16 bit pattern with
// round-to-nearest-even.
func Float32ToBFloat16(value float32) uint16 {
	bits := math.Float32bits(value)
	if bits&0x7F800000 == 0x7F800000 && bits&0x7FFFFF != 0 {
		// NaN; keep the payload bit set so the result stays a NaN
		return uint16(bits>>16) | 0x0040
	}
	round := uint32(0x7FFF + ((bits >> 16) & 1))
	return uint16((bits + round) >> 16)
}

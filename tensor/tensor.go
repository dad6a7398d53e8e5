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

// Package tensor provides flat, dtype-tagged buffers shared between the
// synchronization scheduler and its transport.  A Vector is the unit of
// exchange for collective operations: parameter data is flattened into
// vectors before a reduction and restored from them afterwards.  The byte
// layout is little-endian so that vectors can travel over the wire without
// further marshaling.
package tensor

import (
	"encoding/binary"
	"fmt"
	"math"
)

// DType identifies the element type of a Vector.
type DType int32

const (
	// F16 is IEEE 754 binary16 half precision.
	F16 DType = iota + 1
	// BF16 is bfloat16, the truncated upper half of IEEE 754 binary32.
	BF16
	// F32 is IEEE 754 binary32 single precision.
	F32
	// F64 is IEEE 754 binary64 double precision.
	F64
)

// Size returns the element size in bytes.
func (t DType) Size() int {
	switch t {
	case F16, BF16:
		return 2
	case F32:
		return 4
	case F64:
		return 8
	default:
		panic(fmt.Sprintf("unknown dtype %d", int32(t)))
	}
}

func (t DType) String() string {
	switch t {
	case F16:
		return "f16"
	case BF16:
		return "bf16"
	case F32:
		return "f32"
	case F64:
		return "f64"
	default:
		return fmt.Sprintf("dtype(%d)", int32(t))
	}
}

// Vector is a flat buffer of Count elements of Type laid out in little-endian
// byte order.  The zero elements of a freshly allocated vector are valid
// encodings of numeric zero for every supported dtype.
type Vector struct {
	Data  []byte
	Count int
	Type  DType
}

// NewVector allocates a zeroed vector with the given element count and dtype.
func NewVector(count int, typ DType) *Vector {
	if count < 0 {
		panic(fmt.Sprintf("negative element count %d", count))
	}
	return &Vector{
		Data:  make([]byte, count*typ.Size()),
		Count: count,
		Type:  typ,
	}
}

// FromBytes wraps a little-endian payload in a vector without copying it.
// Unlike NewVector it never panics; payloads arriving over the wire are
// validated against the element count and dtype instead.
func FromBytes(data []byte, count int, typ DType) (*Vector, error) {
	switch typ {
	case F16, BF16, F32, F64:
	default:
		return nil, fmt.Errorf("unknown dtype %d", int32(typ))
	}
	if count < 0 || len(data) != count*typ.Size() {
		return nil, fmt.Errorf("%d bytes do not hold %d elements of %s", len(data), count, typ)
	}
	return &Vector{
		Data:  data,
		Count: count,
		Type:  typ,
	}, nil
}

// Clone returns a deep copy of the vector.
func (v *Vector) Clone() *Vector {
	out := NewVector(v.Count, v.Type)
	copy(out.Data, v.Data)
	return out
}

// Zero resets every element to zero.
func (v *Vector) Zero() {
	for i := range v.Data {
		v.Data[i] = 0
	}
}

// Float64At decodes the element at the given index.
func (v *Vector) Float64At(index int) float64 {
	switch v.Type {
	case F16:
		return float64(Float16ToFloat32(binary.LittleEndian.Uint16(v.Data[index*2:])))
	case BF16:
		return float64(BFloat16ToFloat32(binary.LittleEndian.Uint16(v.Data[index*2:])))
	case F32:
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(v.Data[index*4:])))
	case F64:
		return math.Float64frombits(binary.LittleEndian.Uint64(v.Data[index*8:]))
	default:
		panic(fmt.Sprintf("unknown dtype %d", int32(v.Type)))
	}
}

// SetFloat64At encodes the given value into the element at the given index,
// applying the dtype's rounding on narrowing.
func (v *Vector) SetFloat64At(index int, value float64) {
	switch v.Type {
	case F16:
		binary.LittleEndian.PutUint16(v.Data[index*2:], Float32ToFloat16(float32(value)))
	case BF16:
		binary.LittleEndian.PutUint16(v.Data[index*2:], Float32ToBFloat16(float32(value)))
	case F32:
		binary.LittleEndian.PutUint32(v.Data[index*4:], math.Float32bits(float32(value)))
	case F64:
		binary.LittleEndian.PutUint64(v.Data[index*8:], math.Float64bits(value))
	default:
		panic(fmt.Sprintf("unknown dtype %d", int32(v.Type)))
	}
}

// Float64s decodes the whole vector.
func (v *Vector) Float64s() []float64 {
	out := make([]float64, v.Count)
	for i := range out {
		out[i] = v.Float64At(i)
	}
	return out
}

// SetFloat64s encodes the given values over the whole vector.
func (v *Vector) SetFloat64s(values []float64) error {
	if len(values) != v.Count {
		return fmt.Errorf("tensor: length mismatch: vector holds %d elements, got %d values", v.Count, len(values))
	}
	for i, value := range values {
		v.SetFloat64At(i, value)
	}
	return nil
}

// Scale multiplies every element by the given factor in place.
func (v *Vector) Scale(factor float64) {
	for i := 0; i < v.Count; i++ {
		v.SetFloat64At(i, v.Float64At(i)*factor)
	}
}

// CopyFrom overwrites the vector with the contents of src.  The vectors must
// agree on element count and dtype.
func (v *Vector) CopyFrom(src *Vector) error {
	if v.Count != src.Count || v.Type != src.Type {
		return fmt.Errorf("tensor: shape mismatch: %d %s vs %d %s", v.Count, v.Type, src.Count, src.Type)
	}
	copy(v.Data, src.Data)
	return nil
}

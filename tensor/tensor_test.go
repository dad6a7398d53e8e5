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

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloat16RoundTrip(t *testing.T) {
	values := []float32{
		0,
		1,
		-1,
		0.5,
		-2.25,
		1025,
		65504,              // largest normal
		1.0 / (1 << 24),    // smallest subnormal
		-1.0 / (1 << 24),   // smallest subnormal, negative
		1023.0 / (1 << 24), // largest subnormal
	}
	for _, value := range values {
		require.Equal(t, value, Float16ToFloat32(Float32ToFloat16(value)), "value %v", value)
	}
}

func TestFloat16Narrowing(t *testing.T) {
	// Overflow saturates to infinity.
	require.True(t, math.IsInf(float64(Float16ToFloat32(Float32ToFloat16(1e5))), 1))
	require.True(t, math.IsInf(float64(Float16ToFloat32(Float32ToFloat16(float32(math.Inf(-1))))), -1))
	// The mantissa truncates on narrowing.
	require.Equal(t, float32(1), Float16ToFloat32(Float32ToFloat16(1+1.0/(1<<11))))
	// Values below the subnormal range flush to zero.
	require.Equal(t, float32(0), Float16ToFloat32(Float32ToFloat16(1.0/(1<<25))))
	// NaN stays NaN.
	require.True(t, math.IsNaN(float64(Float16ToFloat32(Float32ToFloat16(float32(math.NaN()))))))
}

func TestBFloat16RoundTrip(t *testing.T) {
	values := []float32{
		0,
		1,
		-1,
		0.5,
		-2.5,
		128,
		3.140625,
		-65536,
	}
	for _, value := range values {
		require.Equal(t, value, BFloat16ToFloat32(Float32ToBFloat16(value)), "value %v", value)
	}
}

func TestBFloat16Rounding(t *testing.T) {
	// Halfway cases round to the even mantissa, in either direction.
	require.Equal(t, float32(1), BFloat16ToFloat32(Float32ToBFloat16(1+1.0/(1<<8))))
	require.Equal(t, float32(1+1.0/(1<<6)), BFloat16ToFloat32(Float32ToBFloat16(1+3.0/(1<<8))))
	// Above halfway rounds up.
	require.Equal(t, float32(1+1.0/(1<<7)), BFloat16ToFloat32(Float32ToBFloat16(1+3.0/(1<<9))))
	// NaN stays NaN.
	require.True(t, math.IsNaN(float64(BFloat16ToFloat32(Float32ToBFloat16(float32(math.NaN()))))))
}

func TestVectorAccessors(t *testing.T) {
	for _, typ := range []DType{F16, BF16, F32, F64} {
		v := NewVector(4, typ)
		require.Len(t, v.Data, 4*typ.Size())
		require.Equal(t, []float64{0, 0, 0, 0}, v.Float64s())

		require.NoError(t, v.SetFloat64s([]float64{1, -2, 0.5, 3}))
		require.Equal(t, []float64{1, -2, 0.5, 3}, v.Float64s(), "dtype %s", typ)

		v.SetFloat64At(2, 1.5)
		require.Equal(t, 1.5, v.Float64At(2), "dtype %s", typ)

		require.Error(t, v.SetFloat64s([]float64{1}))
	}
}

func TestVectorScale(t *testing.T) {
	for _, typ := range []DType{F16, BF16, F32, F64} {
		v := NewVector(4, typ)
		require.NoError(t, v.SetFloat64s([]float64{1, 2, 3, 4}))
		v.Scale(0.5)
		require.Equal(t, []float64{0.5, 1, 1.5, 2}, v.Float64s(), "dtype %s", typ)
	}
}

func TestVectorCopyFrom(t *testing.T) {
	dst := NewVector(4, F32)
	src := NewVector(4, F32)
	require.NoError(t, src.SetFloat64s([]float64{1, 2, 3, 4}))
	require.NoError(t, dst.CopyFrom(src))
	require.Equal(t, src.Float64s(), dst.Float64s())

	require.Error(t, dst.CopyFrom(NewVector(8, F32)))
	require.Error(t, dst.CopyFrom(NewVector(4, F64)))
}

func TestVectorClone(t *testing.T) {
	v := NewVector(4, F64)
	require.NoError(t, v.SetFloat64s([]float64{1, 2, 3, 4}))
	clone := v.Clone()
	v.Zero()
	require.Equal(t, []float64{0, 0, 0, 0}, v.Float64s())
	require.Equal(t, []float64{1, 2, 3, 4}, clone.Float64s())
}

func TestDTypeSize(t *testing.T) {
	require.Equal(t, 2, F16.Size())
	require.Equal(t, 2, BF16.Size())
	require.Equal(t, 4, F32.Size())
	require.Equal(t, 8, F64.Size())
	require.Panics(t, func() { DType(0).Size() })
}

func TestNewVectorNegativeCount(t *testing.T) {
	require.Panics(t, func() { NewVector(-1, F32) })
}

func TestFromBytes(t *testing.T) {
	src := NewVector(3, F32)
	require.NoError(t, src.SetFloat64s([]float64{1, 2, 3}))

	v, err := FromBytes(src.Data, 3, F32)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, v.Float64s())

	// The payload is wrapped, not copied.
	v.SetFloat64At(0, 7)
	require.Equal(t, 7.0, src.Float64At(0))

	_, err = FromBytes(src.Data, 4, F32)
	require.Error(t, err)
	_, err = FromBytes(src.Data[:10], 3, F32)
	require.Error(t, err)
	_, err = FromBytes(src.Data, 3, DType(0))
	require.Error(t, err)
	_, err = FromBytes(nil, -1, F32)
	require.Error(t, err)
}

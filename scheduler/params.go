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

package scheduler

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/9rum/kairos/model"
	"github.com/9rum/kairos/tensor"
)

// precision tags the parameter partitions kept when a model mixes single-
// and half-precision parameters.  Reductions of the two partitions travel
// in separate buffers under different operators.
type precision int

const (
	fullPrecision precision = iota
	halfPrecision
)

func (p precision) String() string {
	if p == halfPrecision {
		return "fp16"
	}
	return "fp32"
}

// paramRegion ties one trainable parameter to its reserved range in the
// flat send buffer.
type paramRegion struct {
	param  model.Parameter
	offset int
	count  int
}

// paramMap fixes the packing order of the trainable parameters of one
// precision class.  It is built once; parameter identity is assumed stable
// for the whole run.
type paramMap struct {
	tag     precision
	regions []paramRegion
	total   int
	elem    tensor.DType
}

// modelMaps holds a model's parameter maps split by parameter precision.
// Most models populate only the full-precision map; mixed-precision models
// populate both.
type modelMaps struct {
	full, half *paramMap
}

// buildModelMaps scans the trainable parameters once and reserves a
// contiguous buffer range for each.  Parameters that require no gradient are
// left out of the maps and the buffers entirely.
func buildModelMaps(m model.Model) (*modelMaps, error) {
	maps := new(modelMaps)
	for _, param := range m.Parameters() {
		if !param.RequiresGrad() {
			continue
		}
		data := param.Data()
		if data.Count != numel(param.Shape()) {
			return nil, fmt.Errorf("parameter %s: shape %v does not cover %d elements", param.Name(), param.Shape(), data.Count)
		}
		switch data.Type {
		case tensor.F32, tensor.F64:
			maps.full = grow(maps.full, fullPrecision, tensor.F32, param)
			if data.Type == tensor.F64 {
				maps.full.elem = tensor.F64
			}
		case tensor.F16:
			maps.half = grow(maps.half, halfPrecision, tensor.F16, param)
		default:
			return nil, fmt.Errorf("parameter %s has unsupported dtype %s", param.Name(), data.Type)
		}
	}
	if maps.full == nil && maps.half == nil {
		return nil, fmt.Errorf("model has no trainable parameters")
	}
	return maps, nil
}

// grow appends param's region to pm, allocating the map on first use.
func grow(pm *paramMap, tag precision, elem tensor.DType, param model.Parameter) *paramMap {
	if pm == nil {
		pm = &paramMap{tag: tag, elem: elem}
	}
	pm.regions = append(pm.regions, paramRegion{
		param:  param,
		offset: pm.total,
		count:  param.Data().Count,
	})
	pm.total += param.Data().Count
	return pm
}

// active returns the populated maps, full precision first.
func (m *modelMaps) active() []*paramMap {
	maps := make([]*paramMap, 0, 2)
	if m.full != nil {
		maps = append(maps, m.full)
	}
	if m.half != nil {
		maps = append(maps, m.half)
	}
	return maps
}

// bufferType returns the dtype the map's parameters travel as.  The
// half-precision partition travels as is; the full-precision partition is
// narrowed to bf16 when downcast is requested.
func (pm *paramMap) bufferType(downcast bool) tensor.DType {
	if pm.tag == halfPrecision {
		return tensor.F16
	}
	if downcast {
		return tensor.BF16
	}
	return pm.elem
}

// pack flattens every mapped parameter into a fresh send buffer, narrowing
// elementwise when the buffer dtype is narrower than the parameter's.
func (pm *paramMap) pack(downcast bool) *tensor.Vector {
	buf := tensor.NewVector(pm.total, pm.bufferType(downcast))
	for _, region := range pm.regions {
		transfer(buf, region.offset, region.param.Data(), 0, region.count)
	}
	return buf
}

// restore overwrites every mapped parameter with its region of buf, casting
// back to the parameter's dtype.
func (pm *paramMap) restore(buf *tensor.Vector) {
	for _, region := range pm.regions {
		transfer(region.param.Data(), 0, buf, region.offset, region.count)
	}
}

// blend folds the scaled reduction result into the live parameters, keeping
// factor of the locally advanced values: param = param*factor + buf[region].
func (pm *paramMap) blend(buf *tensor.Vector, factor float64) {
	for _, region := range pm.regions {
		region := region
		data := region.param.Data()
		apply(region.count, func(index int) {
			data.SetFloat64At(index, data.Float64At(index)*factor+buf.Float64At(region.offset+index))
		})
	}
}

// transfer copies count elements from src starting at srcBase into dst
// starting at dstBase, converting elementwise when the dtypes differ.
func transfer(dst *tensor.Vector, dstBase int, src *tensor.Vector, srcBase, count int) {
	if dst.Type == src.Type {
		size := dst.Type.Size()
		copy(dst.Data[dstBase*size:(dstBase+count)*size], src.Data[srcBase*size:(srcBase+count)*size])
		return
	}
	apply(count, func(index int) {
		dst.SetFloat64At(dstBase+index, src.Float64At(srcBase+index))
	})
}

// apply runs fn over every index in [0, count) striding across the available
// processors.
func apply(count int, fn func(index int)) {
	if count == 0 {
		return
	}
	stride := func(numerator, denominator int) int {
		if numerator%denominator == 0 {
			return numerator / denominator
		}
		return numerator/denominator + 1
	}(count, runtime.NumCPU())

	var wg sync.WaitGroup
	for base := 0; base < count; base += stride {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			limit := min(base+stride, count)
			for index := base; index < limit; index++ {
				fn(index)
			}
		}(base)
	}
	wg.Wait()
}

// numel returns the number of elements spanned by shape.
func numel(shape []int) int {
	n := 1
	for _, dim := range shape {
		n *= dim
	}
	return n
}

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
	"testing"

	"github.com/9rum/kairos/internal/fakemodel"
	"github.com/9rum/kairos/tensor"
)

func TestBuildModelMaps(t *testing.T) {
	m := fakemodel.New(
		fakemodel.NewParam("conv.weight", []int{2, 3}, tensor.F32, 1),
		fakemodel.NewParam("embed.weight", []int{3}, tensor.F32, 0).Freeze(),
		fakemodel.NewParam("conv.bias", []int{4}, tensor.F64, 2),
		fakemodel.NewParam("head.weight", []int{5}, tensor.F16, 3),
	)

	maps, err := buildModelMaps(m)
	if err != nil {
		t.Fatal(err)
	}
	if maps.full == nil || maps.half == nil {
		t.Fatalf("expected both precision partitions, got full %v half %v", maps.full, maps.half)
	}
	if got, want := len(maps.full.regions), 2; got != want {
		t.Errorf("full partition holds %d regions, want %d", got, want)
	}
	if got, want := maps.full.total, 10; got != want {
		t.Errorf("full partition spans %d elements, want %d", got, want)
	}
	if got, want := maps.full.elem, tensor.F64; got != want {
		t.Errorf("full partition element type %s, want %s", got, want)
	}
	if got, want := maps.full.regions[1].offset, 6; got != want {
		t.Errorf("second full region starts at %d, want %d", got, want)
	}
	if got, want := len(maps.half.regions), 1; got != want {
		t.Errorf("half partition holds %d regions, want %d", got, want)
	}
	if got, want := maps.half.total, 5; got != want {
		t.Errorf("half partition spans %d elements, want %d", got, want)
	}
	for _, pm := range maps.active() {
		for _, region := range pm.regions {
			if region.param.Name() == "embed.weight" {
				t.Error("frozen parameter embed.weight mapped for synchronization")
			}
		}
	}
}

// badParam reports a shape that does not cover its storage.
type badParam struct {
	*fakemodel.Param
}

func (p badParam) Shape() []int { return []int{3} }

func TestBuildModelMapsErrors(t *testing.T) {
	frozen := fakemodel.NewParam("embed.weight", []int{3}, tensor.F32, 0).Freeze()
	if _, err := buildModelMaps(fakemodel.New(frozen)); err == nil {
		t.Error("expected an error for a model without trainable parameters")
	}

	mismatched := badParam{fakemodel.NewParam("conv.weight", []int{4}, tensor.F32, 0)}
	if _, err := buildModelMaps(fakemodel.New(mismatched)); err == nil {
		t.Error("expected an error for a shape not covering the storage")
	}

	unsupported := fakemodel.NewParam("head.weight", []int{2}, tensor.BF16, 0)
	if _, err := buildModelMaps(fakemodel.New(unsupported)); err == nil {
		t.Error("expected an error for a bf16 parameter")
	}
}

func TestPackRestore(t *testing.T) {
	weight := fakemodel.NewParam("conv.weight", []int{2, 3}, tensor.F32, 0)
	gate := fakemodel.NewParam("gate.bias", []int{0}, tensor.F32, 0)
	bias := fakemodel.NewParam("conv.bias", []int{2}, tensor.F64, 0)
	for index := 0; index < 6; index++ {
		weight.Data().SetFloat64At(index, float64(index+1))
	}
	for index := 0; index < 2; index++ {
		bias.Data().SetFloat64At(index, float64(index+7))
	}
	maps, err := buildModelMaps(fakemodel.New(weight, gate, bias))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := maps.full.total, 8; got != want {
		t.Fatalf("full partition spans %d elements, want %d", got, want)
	}

	buf := maps.full.pack(false)
	if got, want := buf.Type, tensor.F64; got != want {
		t.Fatalf("mixed f32/f64 partition travels as %s, want %s", got, want)
	}
	for index := 0; index < 8; index++ {
		if got, want := buf.Float64At(index), float64(index+1); got != want {
			t.Errorf("buf[%d] = %v, want %v", index, got, want)
		}
	}

	// identity round trip
	maps.full.restore(buf)
	for index := 0; index < 6; index++ {
		if got, want := weight.Data().Float64At(index), float64(index+1); got != want {
			t.Errorf("weight[%d] = %v, want %v", index, got, want)
		}
	}

	buf.Scale(2)
	maps.full.restore(buf)
	for index := 0; index < 6; index++ {
		if got, want := weight.Data().Float64At(index), 2*float64(index+1); got != want {
			t.Errorf("weight[%d] = %v, want %v", index, got, want)
		}
	}
	for index := 0; index < 2; index++ {
		if got, want := bias.Data().Float64At(index), 2*float64(index+7); got != want {
			t.Errorf("bias[%d] = %v, want %v", index, got, want)
		}
	}
}

func TestPackDowncast(t *testing.T) {
	weight := fakemodel.NewParam("conv.weight", []int{4}, tensor.F32, 0)
	for index := 0; index < 4; index++ {
		weight.Data().SetFloat64At(index, 1.5*float64(index))
	}
	maps, err := buildModelMaps(fakemodel.New(weight))
	if err != nil {
		t.Fatal(err)
	}

	buf := maps.full.pack(true)
	if got, want := buf.Type, tensor.BF16; got != want {
		t.Fatalf("downcast partition travels as %s, want %s", got, want)
	}
	for index := 0; index < 4; index++ {
		if got, want := buf.Float64At(index), 1.5*float64(index); got != want {
			t.Errorf("buf[%d] = %v, want %v", index, got, want)
		}
	}
}

func TestHalfPartitionNeverDowncasts(t *testing.T) {
	head := fakemodel.NewParam("head.weight", []int{2}, tensor.F16, 0.25)
	maps, err := buildModelMaps(fakemodel.New(head))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := maps.half.bufferType(true), tensor.F16; got != want {
		t.Errorf("half partition travels as %s under downcast, want %s", got, want)
	}
}

func TestBlend(t *testing.T) {
	weight := fakemodel.NewParam("conv.weight", []int{4}, tensor.F32, 8)
	maps, err := buildModelMaps(fakemodel.New(weight))
	if err != nil {
		t.Fatal(err)
	}

	buf := tensor.NewVector(4, tensor.F32)
	for index := 0; index < 4; index++ {
		buf.SetFloat64At(index, 2)
	}
	maps.full.blend(buf, 0.5)
	for index := 0; index < 4; index++ {
		if got, want := weight.Data().Float64At(index), 6.; got != want {
			t.Errorf("weight[%d] = %v, want %v", index, got, want)
		}
	}
}

func TestApply(t *testing.T) {
	const count = 1 << 14
	seen := make([]int32, count)
	apply(count, func(index int) {
		seen[index]++
	})
	for index, n := range seen {
		if n != 1 {
			t.Fatalf("index %d visited %d times", index, n)
		}
	}
	apply(0, func(index int) {
		t.Errorf("unexpected visit of index %d", index)
	})
}

func TestNumel(t *testing.T) {
	if got, want := numel([]int{2, 3, 4}), 24; got != want {
		t.Errorf("numel([2 3 4]) = %d, want %d", got, want)
	}
	if got, want := numel(nil), 1; got != want {
		t.Errorf("numel(nil) = %d, want %d", got, want)
	}
}

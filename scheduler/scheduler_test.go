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
	"strings"
	"testing"

	"github.com/9rum/kairos/collective"
	"github.com/9rum/kairos/internal/fakemodel"
	"github.com/9rum/kairos/tensor"
)

// soloTopology builds a topology spanning a single rank, on which every
// collective completes synchronously.
func soloTopology(t *testing.T) *collective.Topology {
	t.Helper()
	world, err := collective.NewWorld(1)
	if err != nil {
		t.Fatalf("could not create world: %v", err)
	}
	topology, err := collective.NewTopology(world.Communicator(0), 1)
	if err != nil {
		t.Fatalf("could not build topology: %v", err)
	}
	return topology
}

func TestNew(t *testing.T) {
	topology := soloTopology(t)
	optimizer := new(fakemodel.Optimizer)

	if _, ok := New(optimizer, topology, 10, 2, DATA_PARALLEL).(*DataParallelOptimizer); !ok {
		t.Error("DATA_PARALLEL: wrong scheduler type")
	}
	if _, ok := New(optimizer, topology, 10, 2, SKIP_BATCHES).(*SkipScheduler); !ok {
		t.Error("SKIP_BATCHES: wrong scheduler type")
	}

	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an invalid type")
		}
	}()
	New(optimizer, topology, 10, 2, 42)
}

func TestDataParallelOptimizerBlocking(t *testing.T) {
	optimizer := new(fakemodel.Optimizer)
	o := NewDataParallelOptimizer(optimizer, true)

	if err := o.Step(); err != nil {
		t.Fatalf("could not step: %v", err)
	}
	if optimizer.Steps != 1 {
		t.Errorf("got %d optimizer steps, want 1", optimizer.Steps)
	}
	o.CommitStep()
	if optimizer.Steps != 1 {
		t.Errorf("blocking step left a deferred update: got %d steps", optimizer.Steps)
	}
	o.ZeroGrad()
	if optimizer.Zeroed != 1 {
		t.Errorf("got %d gradient resets, want 1", optimizer.Zeroed)
	}
}

func TestDataParallelOptimizerDeferred(t *testing.T) {
	optimizer := new(fakemodel.Optimizer)
	o := NewDataParallelOptimizer(optimizer, false)

	if err := o.Step(); err != nil {
		t.Fatalf("could not step: %v", err)
	}
	if optimizer.Steps != 0 {
		t.Errorf("non-blocking step applied eagerly: got %d steps", optimizer.Steps)
	}
	o.CommitStep()
	if optimizer.Steps != 1 {
		t.Errorf("got %d optimizer steps after commit, want 1", optimizer.Steps)
	}
	o.CommitStep()
	if optimizer.Steps != 1 {
		t.Errorf("commit without an outstanding update stepped again: got %d steps", optimizer.Steps)
	}
}

func TestSkipSchedulerStepRequiresSetup(t *testing.T) {
	topology := soloTopology(t)
	optimizer := new(fakemodel.Optimizer)

	s := NewSkipScheduler(optimizer, topology, 10, 2)
	if err := s.Step(); err == nil || !strings.Contains(err.Error(), "model") {
		t.Errorf("step without a model: got %v", err)
	}

	s.SetModel(fakemodel.New(fakemodel.NewParam("weight", []int{2}, tensor.F32, 1)))
	if err := s.Step(); err == nil || !strings.Contains(err.Error(), "last batch") {
		t.Errorf("step without the last batch: got %v", err)
	}

	s.SetLastBatch(0)
	if err := s.Step(); err != nil {
		t.Errorf("could not step: %v", err)
	}
}

func TestSkipSchedulerRejectsUnsupportedParams(t *testing.T) {
	topology := soloTopology(t)
	optimizer := new(fakemodel.Optimizer)

	s := NewSkipScheduler(optimizer, topology, 10, 2)
	s.SetModel(fakemodel.New(fakemodel.NewParam("embed", []int{2}, tensor.BF16, 1)))
	s.SetLastBatch(0)
	if err := s.Step(); err == nil {
		t.Error("bf16 parameters were accepted")
	}
}

// TestSkipSchedulerUpdatePriority pins the per-batch update chain: a gradient
// scaler overrides a learning-rate schedule, which overrides the bare
// optimizer.
func TestSkipSchedulerUpdatePriority(t *testing.T) {
	topology := soloTopology(t)
	optimizer := new(fakemodel.Optimizer)

	s := NewSkipScheduler(optimizer, topology, 10, 2)
	s.SetModel(fakemodel.New(fakemodel.NewParam("weight", []int{2}, tensor.F32, 1)))
	s.SetLastBatch(0)

	if err := s.Step(); err != nil {
		t.Fatalf("could not step: %v", err)
	}
	if optimizer.Steps != 1 {
		t.Errorf("got %d optimizer steps, want 1", optimizer.Steps)
	}

	lrScheduler := new(fakemodel.LRScheduler)
	s.SetLRScheduler(lrScheduler)
	if err := s.Step(); err != nil {
		t.Fatalf("could not step: %v", err)
	}
	if lrScheduler.Steps != 1 || optimizer.Steps != 1 {
		t.Errorf("got %d schedule steps and %d optimizer steps, want 1 and 1", lrScheduler.Steps, optimizer.Steps)
	}

	scaler := new(fakemodel.Scaler)
	s.AddGradScaler(scaler)
	if err := s.Step(); err != nil {
		t.Fatalf("could not step: %v", err)
	}
	if scaler.Steps != 1 || scaler.Updates != 1 {
		t.Errorf("got %d scaler steps and %d updates, want 1 and 1", scaler.Steps, scaler.Updates)
	}
	if lrScheduler.Steps != 1 || optimizer.Steps != 1 {
		t.Errorf("scaler did not take precedence: %d schedule steps, %d optimizer steps", lrScheduler.Steps, optimizer.Steps)
	}

	s.ZeroGrad()
	if optimizer.Zeroed != 1 {
		t.Errorf("got %d gradient resets, want 1", optimizer.Zeroed)
	}
}

// TestSkipSchedulerModelSwap verifies that attaching a new model rebuilds the
// parameter maps instead of packing stale regions.
func TestSkipSchedulerModelSwap(t *testing.T) {
	topology := soloTopology(t)
	optimizer := new(fakemodel.Optimizer)

	s := NewSkipScheduler(optimizer, topology, 10, 2)
	s.SetModel(fakemodel.New(fakemodel.NewParam("weight", []int{2}, tensor.F32, 1)))
	s.SetLastBatch(0)
	if err := s.Step(); err != nil {
		t.Fatalf("could not step: %v", err)
	}

	swapped := fakemodel.NewParam("weight", []int{8}, tensor.F64, 3)
	s.SetModel(fakemodel.New(swapped))
	if err := s.Step(); err != nil {
		t.Fatalf("could not step after swap: %v", err)
	}
	for index := 0; index < swapped.Data().Count; index++ {
		if got := swapped.Data().Float64At(index); got != 3 {
			t.Fatalf("element %d: got %v, want 3", index, got)
		}
	}
}

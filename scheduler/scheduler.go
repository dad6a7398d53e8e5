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

// Package scheduler provides communication scheduling for synchronizing
// model parameters across data-parallel workers.  In addition to a fully
// synchronous baseline, it supports an adaptive schedule that skips most
// global synchronizations, overlaps the ones it does issue with ongoing
// local computation, and tunes the skip cadence from the observed loss
// trend.
package scheduler

import (
	"github.com/9rum/kairos/collective"
	"github.com/9rum/kairos/model"
)

const (
	DATA_PARALLEL = iota
	SKIP_BATCHES
)

// Scheduler represents the parameter synchronization scheduler.
// All implementations must embed SchedulerBase for forward compatibility.
type Scheduler interface {
	// Step is called once per training batch after backpropagation.  It
	// drives the local optimizer update and performs whatever parameter
	// synchronization the schedule calls for on this batch.
	Step() error

	// ZeroGrad resets the gradients of the scheduled parameters.
	ZeroGrad()

	// OnEpochEnd is called at the end of an epoch during training with the
	// calling worker's loss.
	OnEpochEnd(loss float64) error

	// OnTrainEnd terminates the training environment.
	OnTrainEnd() error
}

// SchedulerBase must be embedded to have forward compatible implementations.
type SchedulerBase struct {
}

func (SchedulerBase) Step() (_ error) {
	return
}
func (SchedulerBase) ZeroGrad() {}
func (SchedulerBase) OnEpochEnd(loss float64) (_ error) {
	return
}
func (SchedulerBase) OnTrainEnd() (_ error) {
	return
}

// New creates a new scheduler with the given arguments.
func New(optimizer model.Optimizer, topology *collective.Topology, totalEpochs, warmupEpochs, typ int) Scheduler {
	switch typ {
	case DATA_PARALLEL:
		return NewDataParallelOptimizer(optimizer, false)
	case SKIP_BATCHES:
		return NewSkipScheduler(optimizer, topology, totalEpochs, warmupEpochs)
	default:
		panic("invalid type")
	}
}

// DataParallelOptimizer drives a local optimizer under data parallelism
// where gradients are already averaged by the surrounding wrapper.  With
// blocking updates the optimizer steps immediately; otherwise the step is
// deferred and applied by CommitStep ahead of the next forward pass.
type DataParallelOptimizer struct {
	SchedulerBase
	optimizer  model.Optimizer
	blocking   bool
	updateNext bool
}

// NewDataParallelOptimizer creates a new data parallel optimizer wrapping
// the given local optimizer.
func NewDataParallelOptimizer(optimizer model.Optimizer, blocking bool) *DataParallelOptimizer {
	return &DataParallelOptimizer{
		optimizer: optimizer,
		blocking:  blocking,
	}
}

func (o *DataParallelOptimizer) Step() error {
	if o.blocking {
		o.optimizer.Step()
	} else {
		o.updateNext = true
	}
	return nil
}

// CommitStep applies a deferred update, if one is outstanding.
func (o *DataParallelOptimizer) CommitStep() {
	if o.updateNext {
		o.updateNext = false
		o.optimizer.Step()
	}
}

func (o *DataParallelOptimizer) ZeroGrad() {
	o.optimizer.ZeroGrad()
}

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

	"github.com/golang/glog"

	"github.com/9rum/kairos/collective"
	"github.com/9rum/kairos/model"
	"github.com/9rum/kairos/tensor"
)

// SkipScheduler implements the adaptive batch-skipping schedule.  Most
// batches update parameters locally only; global synchronizations are
// staggered round-robin across the reduction slots, issued non-blocking and
// folded in a few batches later, so communication overlaps computation.  The
// skip cadence follows the loss trend observed at epoch ends.
//
// Construct with NewSkipScheduler, then attach the model with SetModel and
// the epoch length with SetLastBatch before the first Step.
type SkipScheduler struct {
	SchedulerBase

	optimizer   model.Optimizer
	lrScheduler model.LRScheduler
	scaler      model.GradScaler
	amp         bool

	topology *collective.Topology
	pipeline *pipeline
	sum      collective.Op
	policy   *skipPolicy

	module model.Model
	sync   model.LocalSynchronizer
	maps   *modelMaps

	epoch        int
	currentBatch int
	lastBatch    int
	sendMod      int
	sendModM1    int
}

// NewSkipScheduler creates a new batch-skipping scheduler driving the given
// local optimizer across the topology's workers.
func NewSkipScheduler(optimizer model.Optimizer, topology *collective.Topology, totalEpochs, warmupEpochs int) *SkipScheduler {
	sum := collective.Sum()
	return &SkipScheduler{
		optimizer: optimizer,
		topology:  topology,
		pipeline:  newPipeline(topology, sum, collective.HalfSum(), collective.BFloatSum()),
		sum:       sum,
		policy:    newSkipPolicy(totalEpochs, warmupEpochs),
		lastBatch: -1,
		sendModM1: noSlot,
	}
}

// SetModel attaches the model whose parameters the scheduler keeps in sync.
// A model implementing model.LocalSynchronizer gets its local gradient
// exchange toggled around skip windows.
func (s *SkipScheduler) SetModel(m model.Model) {
	s.module = m
	s.sync, _ = m.(model.LocalSynchronizer)
	s.maps = nil
}

// SetLastBatch sets the index of the last batch of each epoch.  It must be
// called before the first Step.
func (s *SkipScheduler) SetLastBatch(last int) {
	s.lastBatch = last
}

// SetLRScheduler routes the per-batch update through a learning-rate
// schedule instead of the bare optimizer.
func (s *SkipScheduler) SetLRScheduler(lrScheduler model.LRScheduler) {
	s.lrScheduler = lrScheduler
}

// AddGradScaler switches the per-batch update into mixed precision, driven
// by the given scaler.
func (s *SkipScheduler) AddGradScaler(scaler model.GradScaler) {
	s.scaler = scaler
	s.amp = true
}

// Skips returns the current (global skip, local skip, batches to wait)
// triple.
func (s *SkipScheduler) Skips() (globalSkip, localSkip, batchesToWait int) {
	return s.policy.globalSkip, s.policy.localSkip, s.policy.batchesToWait
}

// Epoch returns the index of the epoch currently in progress.
func (s *SkipScheduler) Epoch() int {
	return s.epoch
}

func (s *SkipScheduler) Step() error {
	if s.module == nil {
		return fmt.Errorf("no model set")
	}
	if s.lastBatch < 0 {
		return fmt.Errorf("last batch not set")
	}
	if s.maps == nil {
		maps, err := buildModelMaps(s.module)
		if err != nil {
			return err
		}
		s.maps = maps
	}

	switch {
	case s.amp:
		s.scaler.Step(s.optimizer)
		s.scaler.Update()
	case s.lrScheduler != nil:
		s.lrScheduler.Step()
	default:
		s.optimizer.Step()
	}

	batch, next := s.currentBatch, s.currentBatch+1
	gs, ls := s.policy.globalSkip, s.policy.localSkip
	gmod, lmod := 0, 0
	if gs > 0 {
		gmod = batch % gs
	}
	if ls > 0 {
		lmod = batch % ls
	}
	btw := s.policy.batchesToWait
	if batch+btw > s.lastBatch {
		btw = s.lastBatch - batch
	}

	// full synchronization on global-skip boundaries and on the last batch
	if batch == s.lastBatch || gmod == 0 {
		return s.fullGlobalSync(btw)
	}

	if next%gs == 0 {
		// the next batch opens a full synchronization; local gradients must
		// be in sync by then
		s.startLocalSync()
		s.currentBatch++
		return nil
	}

	if gmod < btw {
		s.currentBatch++
		if next == s.lastBatch {
			s.startLocalSync()
		}
		return nil
	} else if gmod == btw {
		// the deferred reduction comes due
		if err := s.pipeline.merge(s.sendModM1); err != nil {
			return err
		}
		if err := s.pipeline.localBcast(s.sendModM1, s.maps); err != nil {
			return err
		}
		if ls > 1 {
			s.stopLocalSync()
		}
	}

	if ls == 1 && next != s.lastBatch {
		s.currentBatch++
		s.startLocalSync()
		return nil
	}

	if lmod == 0 {
		s.stopLocalSync()
	} else if next%ls == 0 {
		s.startLocalSync()
	}
	if next == s.lastBatch {
		s.startLocalSync()
	}
	s.currentBatch++
	return nil
}

// fullGlobalSync runs one staggered global synchronization.  Members of the
// current slot snapshot their parameters and issue the reduction; a
// reduction pending from the previous slot is folded in and shared within
// each locality group.  On the last batch of an epoch, and under a fully
// synchronous schedule, the fresh reduction settles immediately into a plain
// average instead of lagging behind.
func (s *SkipScheduler) fullGlobalSync(batchesToWait int) error {
	slot := s.topology.Slot(s.sendMod)

	var staged []stagedBuffer
	if slot.Member {
		staged = s.pipeline.stage(s.maps, s.policy.downcast())
	}
	if s.policy.batchesToWait != 0 {
		if err := s.pipeline.merge(s.sendModM1); err != nil {
			return err
		}
		if err := s.pipeline.localBcast(s.sendModM1, s.maps); err != nil {
			return err
		}
	}
	if slot.Member {
		if err := s.pipeline.issue(s.sendMod, staged, batchesToWait); err != nil {
			return err
		}
	}

	if s.currentBatch == s.lastBatch || s.policy.batchesToWait == 0 {
		if err := s.pipeline.settle(s.sendMod); err != nil {
			return err
		}
		if err := s.pipeline.localBcast(s.sendMod, s.maps); err != nil {
			return err
		}
		s.sendModM1 = noSlot
		if s.currentBatch == s.lastBatch {
			s.sendMod = 0
			s.epoch++
			s.currentBatch = 0
		} else {
			s.currentBatch++
			s.sendMod = s.nextSendMod()
		}
		return nil
	}

	s.currentBatch++
	s.sendModM1 = s.sendMod
	s.sendMod = s.nextSendMod()
	return nil
}

func (s *SkipScheduler) nextSendMod() int {
	if s.sendMod <= s.topology.DeviceCount()-2 {
		return s.sendMod + 1
	}
	return 0
}

func (s *SkipScheduler) startLocalSync() {
	if s.sync != nil {
		s.sync.EnableLocalSync()
	}
}

func (s *SkipScheduler) stopLocalSync() {
	if s.sync != nil {
		s.sync.DisableLocalSync()
	}
}

func (s *SkipScheduler) ZeroGrad() {
	s.optimizer.ZeroGrad()
}

// OnEpochEnd averages the per-worker losses and lets the skip policy react
// to the trend.
func (s *SkipScheduler) OnEpochEnd(loss float64) error {
	world := s.topology.World()
	losses := tensor.NewVector(world.Size(), tensor.F32)
	losses.SetFloat64At(world.Rank(), loss)
	if err := world.AllReduce(losses, s.sum); err != nil {
		return fmt.Errorf("average epoch loss: %w", err)
	}
	avg := 0.
	for rank := 0; rank < world.Size(); rank++ {
		avg += losses.Float64At(rank)
	}
	avg /= float64(world.Size())

	s.policy.observe(s.epoch, avg)
	if world.Rank() == 0 {
		glog.Infof("epoch %d: loss %f, global skip %d, local skip %d, batches to wait %d",
			s.epoch, avg, s.policy.globalSkip, s.policy.localSkip, s.policy.batchesToWait)
	}
	return nil
}

// OnTrainEnd waits out any reduction still in flight so that collectives
// stay matched across ranks at shutdown.
func (s *SkipScheduler) OnTrainEnd() error {
	return s.pipeline.drain()
}

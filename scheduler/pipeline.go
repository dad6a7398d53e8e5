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

	"golang.org/x/sync/errgroup"

	"github.com/9rum/kairos/collective"
	"github.com/9rum/kairos/tensor"
)

// noSlot marks the absence of a reduction slot in the previous-slot cursor.
const noSlot = -1

// pendingReduction tracks one in-flight reduction: the request handle, the
// buffer being summed, the map it was packed with and the number of batches
// the result is allowed to lag behind.
type pendingReduction struct {
	req           collective.Request
	buf           *tensor.Vector
	regions       *paramMap
	batchesToWait int
}

// pendingSlot holds the reductions in flight on one communicator slot, at
// most one per precision class.  The type cannot hold more, which enforces
// the single-outstanding-reduction invariant structurally.
type pendingSlot struct {
	full, half *pendingReduction
}

func (s *pendingSlot) free(tag precision) bool {
	if tag == halfPrecision {
		return s.half == nil
	}
	return s.full == nil
}

func (s *pendingSlot) store(rec *pendingReduction) {
	if rec.regions.tag == halfPrecision {
		s.half = rec
	} else {
		s.full = rec
	}
}

// take removes and returns the slot's records, full precision first.
func (s *pendingSlot) take() []*pendingReduction {
	recs := make([]*pendingReduction, 0, 2)
	if s.full != nil {
		recs = append(recs, s.full)
		s.full = nil
	}
	if s.half != nil {
		recs = append(recs, s.half)
		s.half = nil
	}
	return recs
}

func (s *pendingSlot) empty() bool {
	return s.full == nil && s.half == nil
}

// stagedBuffer is a packed send buffer awaiting its reduction.
type stagedBuffer struct {
	regions *paramMap
	buf     *tensor.Vector
}

// pipeline owns the staggered reduction slots and the collective operators
// applied on them.  The operators are constructed once at scheduler setup
// and injected here; nothing else in the process registers them.
type pipeline struct {
	topology  *collective.Topology
	sum       collective.Op
	halfSum   collective.Op
	bfloatSum collective.Op
	pending   []pendingSlot
}

func newPipeline(topology *collective.Topology, sum, halfSum, bfloatSum collective.Op) *pipeline {
	return &pipeline{
		topology:  topology,
		sum:       sum,
		halfSum:   halfSum,
		bfloatSum: bfloatSum,
		pending:   make([]pendingSlot, topology.DeviceCount()),
	}
}

// operator selects the reduction operator matching the buffer's dtype.
func (p *pipeline) operator(buf *tensor.Vector) collective.Op {
	switch buf.Type {
	case tensor.F16:
		return p.halfSum
	case tensor.BF16:
		return p.bfloatSum
	default:
		return p.sum
	}
}

// stage packs the live parameter values of every active map into fresh send
// buffers.  Packing is separated from issue so that the captured values
// predate any merge applied within the same synchronization.
func (p *pipeline) stage(maps *modelMaps, downcast bool) []stagedBuffer {
	staged := make([]stagedBuffer, 0, 2)
	for _, pm := range maps.active() {
		staged = append(staged, stagedBuffer{regions: pm, buf: pm.pack(downcast)})
	}
	return staged
}

// issue starts a non-blocking sum of every staged buffer on the given slot's
// communicator and records the pending reductions.  A slot still occupied at
// issue time signals a scheduling bug.
func (p *pipeline) issue(slot int, staged []stagedBuffer, batchesToWait int) error {
	for _, s := range staged {
		if !p.pending[slot].free(s.regions.tag) {
			return fmt.Errorf("slot %d already holds a pending %s reduction", slot, s.regions.tag)
		}
	}
	comm := p.topology.Slot(slot).Comm
	for _, s := range staged {
		req, err := comm.IAllReduce(s.buf, p.operator(s.buf))
		if err != nil {
			return fmt.Errorf("reduce %s parameters on slot %d: %w", s.regions.tag, slot, err)
		}
		p.pending[slot].store(&pendingReduction{
			req:           req,
			buf:           s.buf,
			regions:       s.regions,
			batchesToWait: batchesToWait,
		})
	}
	return nil
}

// merge completes the reduction pending on the given slot, if any, and folds
// it into the live parameters.  The incoming sum is weighted against the
// locally advanced values: after waiting w batches the local values keep
// 2w/(participants+2w) of their weight, so workers that ran further on their
// own retain proportionally more of their trajectory.  Ranks outside the
// slot, and a slot of noSlot, are no-ops.
func (p *pipeline) merge(slot int) error {
	if slot == noSlot || !p.topology.Slot(slot).Member {
		return nil
	}
	for _, rec := range p.pending[slot].take() {
		numer := 1.0
		if rec.batchesToWait > 0 {
			numer = 2 * float64(rec.batchesToWait)
		}
		denom := float64(p.topology.Groups()) + numer
		if err := rec.req.Wait(); err != nil {
			return fmt.Errorf("reduce %s parameters: %w", rec.regions.tag, err)
		}
		rec.buf.Scale(1 / denom)
		rec.regions.blend(rec.buf, numer/denom)
	}
	return nil
}

// settle waits for the reduction issued on the given slot within the current
// synchronization and overwrites the parameters with the plain average over
// the slot's ranks.  After settling, no rank may hold any pending reduction;
// a leftover record signals a scheduling bug.
func (p *pipeline) settle(slot int) error {
	if p.topology.Slot(slot).Member {
		recs := p.pending[slot].take()
		if len(recs) == 0 {
			return fmt.Errorf("no pending reduction to settle on slot %d", slot)
		}
		for _, rec := range recs {
			if err := rec.req.Wait(); err != nil {
				return fmt.Errorf("reduce %s parameters: %w", rec.regions.tag, err)
			}
			rec.buf.Scale(1 / float64(p.topology.Groups()))
			rec.regions.restore(rec.buf)
		}
	}
	for i := range p.pending {
		if !p.pending[i].empty() {
			return fmt.Errorf("pending reduction left on slot %d at synchronization point", i)
		}
	}
	return nil
}

// localBcast broadcasts the live parameters within the locality group from
// the local rank holding the freshest values.  Broadcasts are issued
// non-blocking per parameter and waited as a unit.  A holder of noSlot is a
// no-op, used when no synchronization is pending.
func (p *pipeline) localBcast(holder int, maps *modelMaps) error {
	if holder == noSlot {
		return nil
	}
	local := p.topology.Local()
	g := new(errgroup.Group)
	for _, pm := range maps.active() {
		for _, region := range pm.regions {
			req, err := local.IBcast(region.param.Data(), holder)
			if err != nil {
				return fmt.Errorf("broadcast %s: %w", region.param.Name(), err)
			}
			g.Go(req.Wait)
		}
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("broadcast parameters from local rank %d: %w", holder, err)
	}
	return nil
}

// drain waits out every pending reduction without applying it, keeping
// in-flight collectives matched across ranks at shutdown.
func (p *pipeline) drain() error {
	var first error
	for i := range p.pending {
		for _, rec := range p.pending[i].take() {
			if err := rec.req.Wait(); err != nil && first == nil {
				first = err
			}
		}
	}
	return first
}

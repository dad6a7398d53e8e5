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

package collective

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/9rum/kairos/tensor"
)

// Split colors for the staggered reduction groups.  Members of slot i share
// color memberColor+i; the remaining ranks land in a throwaway group so that
// every rank participates in every split.
const (
	memberColor    = 111
	nonMemberColor = 222
	nonMemberKey   = 444
)

// Slot is one staggered reduction group.  Exactly one rank per locality group
// belongs to each slot, so reductions on distinct slots touch disjoint ranks.
type Slot struct {
	// Comm is the slot communicator, or nil on ranks outside the slot.
	Comm Communicator
	// Ranks lists the world ranks holding the slot in ascending order.
	Ranks []int
	// Member reports whether the calling rank belongs to the slot.
	Member bool
}

// Topology partitions a world into deviceCount staggered reduction slots plus
// one locality group per node.  Rank r joins slot r%deviceCount and locality
// group r/deviceCount; its rank within the locality group equals its slot
// index, so the holder of slot i always broadcasts from local rank i.
type Topology struct {
	world       Communicator
	local       Communicator
	deviceCount int
	slots       []Slot
}

// NewTopology splits world into reduction slots and locality groups.
// Construction is collective: every rank must call it with the same
// deviceCount, and a disagreement surfaces as an error on every rank rather
// than a hang.
func NewTopology(world Communicator, deviceCount int) (*Topology, error) {
	if err := validateDeviceCount(world, deviceCount); err != nil {
		return nil, err
	}

	size := world.Size()
	rank := world.Rank()
	slots := make([]Slot, deviceCount)
	for i := range slots {
		ranks := make([]int, 0, size/deviceCount)
		for base := 0; base < size; base += deviceCount {
			ranks = append(ranks, base+i)
		}
		member := rank%deviceCount == i
		color, key := memberColor+i, rank
		if !member {
			color, key = nonMemberColor+i, nonMemberKey+rank
		}
		comm, err := world.Split(color, key)
		if err != nil {
			return nil, fmt.Errorf("split reduction slot %d: %w", i, err)
		}
		if !member {
			comm = nil
		}
		slots[i] = Slot{Comm: comm, Ranks: ranks, Member: member}
	}

	local, err := world.Split(rank/deviceCount, rank%deviceCount)
	if err != nil {
		return nil, fmt.Errorf("split locality group: %w", err)
	}

	return &Topology{
		world:       world,
		local:       local,
		deviceCount: deviceCount,
		slots:       slots,
	}, nil
}

// validateDeviceCount checks the device count against every other rank's.
// Each rank contributes its own value to a world reduction, so all ranks
// observe the same verdict.
func validateDeviceCount(world Communicator, deviceCount int) error {
	probe := tensor.NewVector(world.Size(), tensor.F64)
	probe.SetFloat64At(world.Rank(), float64(deviceCount))
	if err := world.AllReduce(probe, Sum()); err != nil {
		return fmt.Errorf("validate device count: %w", err)
	}
	if lo, hi := minmax(probe.Float64s()); lo != hi {
		return fmt.Errorf("device count differs across ranks: %v", probe.Float64s())
	}
	if deviceCount < 1 {
		return fmt.Errorf("device count must be positive, got %d", deviceCount)
	}
	if world.Size()%deviceCount != 0 {
		return fmt.Errorf("world size %d is not a multiple of device count %d", world.Size(), deviceCount)
	}
	return nil
}

// minmax returns the smallest and largest of the given values.
func minmax[T constraints.Ordered](values []T) (lo, hi T) {
	lo, hi = values[0], values[0]
	for _, value := range values[1:] {
		lo, hi = min(lo, value), max(hi, value)
	}
	return
}

// World returns the communicator the topology was built from.
func (t *Topology) World() Communicator {
	return t.world
}

// Local returns the calling rank's locality group.
func (t *Topology) Local() Communicator {
	return t.local
}

// LocalRank returns the calling rank's rank within its locality group.
func (t *Topology) LocalRank() int {
	return t.local.Rank()
}

// DeviceCount returns the number of reduction slots, which equals the number
// of ranks per locality group.
func (t *Topology) DeviceCount() int {
	return t.deviceCount
}

// Groups returns the number of locality groups, which is also the member
// count of every reduction slot.
func (t *Topology) Groups() int {
	return t.world.Size() / t.deviceCount
}

// Slot returns the i-th reduction slot.
func (t *Topology) Slot(i int) Slot {
	return t.slots[i]
}

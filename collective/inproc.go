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
	"sort"
	"sync"

	"github.com/9rum/kairos/tensor"
)

// World connects a fixed set of in-process ranks.  Each rank drives its own
// Communicator from its own goroutine, so a single process can stand in for a
// whole training group; the gRPC coordinator hosts a World the same way, with
// one handler goroutine acting for each remote rank.
type World struct {
	size  int
	group *Group
	comms []Communicator
}

// NewWorld creates a world spanning the given number of ranks.
func NewWorld(size int) (*World, error) {
	if size < 1 {
		return nil, fmt.Errorf("world size must be positive, got %d", size)
	}
	world := &World{
		size:  size,
		group: newGroup(size),
		comms: make([]Communicator, size),
	}
	for rank := range world.comms {
		world.comms[rank] = &inprocComm{group: world.group, rank: rank}
	}
	return world, nil
}

// Size returns the number of ranks in the world.
func (w *World) Size() int {
	return w.size
}

// Group returns the root group spanning all ranks.  Remote transports bridge
// into it directly with their clients' ranks and sequence numbers.
func (w *World) Group() *Group {
	return w.group
}

// Communicator returns the given rank's handle on the world.  Repeated calls
// return the same handle, as each handle carries the rank's collective
// sequence counter.
func (w *World) Communicator(rank int) Communicator {
	if rank < 0 || rank >= w.size {
		panic(fmt.Sprintf("rank %d out of range [0, %d)", rank, w.size))
	}
	return w.comms[rank]
}

// Group matches collective calls across the members of one communicator.
// Calls carrying the same sequence number form one round; the round completes
// once every member has arrived.  Sequence numbers are assigned per member in
// issue order, which keeps two overlapping collectives on the same group
// correctly paired even when their goroutines interleave.
type Group struct {
	n      int
	mu     sync.Mutex
	rounds map[uint64]*round
}

func newGroup(size int) *Group {
	return &Group{n: size, rounds: make(map[uint64]*round)}
}

// Size returns the number of member ranks.
func (g *Group) Size() int {
	return g.n
}

type roundKind int

const (
	roundAllReduce roundKind = iota + 1
	roundBcast
	roundSplit
)

func (k roundKind) String() string {
	switch k {
	case roundAllReduce:
		return "allreduce"
	case roundBcast:
		return "bcast"
	case roundSplit:
		return "split"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// round is the meeting point of one collective call across a group.
type round struct {
	kind     roundKind
	opName   string
	acc      *tensor.Vector
	root     int
	colors   []int
	keys     []int
	children map[int]*Group
	newRanks []int
	arrived  int
	consumed int
	err      error
	done     chan struct{}
}

// open fetches or creates the round for the given sequence number.
// The caller must hold g.mu.
func (g *Group) open(seq uint64, kind roundKind) *round {
	r, ok := g.rounds[seq]
	if !ok {
		r = &round{
			kind:   kind,
			root:   -1,
			colors: make([]int, g.n),
			keys:   make([]int, g.n),
			done:   make(chan struct{}),
		}
		g.rounds[seq] = r
	}
	if r.kind != kind && r.err == nil {
		r.err = fmt.Errorf("%w: %s and %s share sequence %d", ErrMismatch, r.kind, kind, seq)
	}
	return r
}

// arrive marks one member present and completes the round when it is full.
// The caller must hold g.mu.
func (g *Group) arrive(r *round) {
	r.arrived++
	if r.arrived == g.n {
		close(r.done)
	}
}

// finish releases the caller's claim on a completed round and retires the
// round once every member has collected its result.
func (g *Group) finish(seq uint64, r *round) {
	g.mu.Lock()
	defer g.mu.Unlock()
	r.consumed++
	if r.consumed == g.n {
		delete(g.rounds, seq)
	}
}

// AllReduce contributes rank's buffer to the round addressed by seq and, once
// every member has contributed, replaces the buffer in place with the
// elementwise reduction on every rank.
func (g *Group) AllReduce(rank int, seq uint64, buf *tensor.Vector, op Op) error {
	if err := g.checkRank(rank); err != nil {
		return err
	}
	if op == nil {
		return fmt.Errorf("%w: nil operator", ErrUnsupportedOp)
	}

	g.mu.Lock()
	r := g.open(seq, roundAllReduce)
	if r.err == nil {
		switch {
		case r.opName == "":
			r.opName = op.Name()
		case r.opName != op.Name():
			r.err = fmt.Errorf("%w: operators %q and %q on one reduction", ErrMismatch, r.opName, op.Name())
		}
	}
	if r.err == nil {
		if r.acc == nil {
			r.acc = buf.Clone()
		} else if err := op.Reduce(r.acc, buf); err != nil {
			r.err = err
		}
	}
	g.arrive(r)
	g.mu.Unlock()

	<-r.done
	defer g.finish(seq, r)
	if r.err != nil {
		return r.err
	}
	return buf.CopyFrom(r.acc)
}

// Bcast overwrites every member's buffer with the root member's contents.
func (g *Group) Bcast(rank int, seq uint64, buf *tensor.Vector, root int) error {
	if err := g.checkRank(rank); err != nil {
		return err
	}

	g.mu.Lock()
	r := g.open(seq, roundBcast)
	if r.err == nil && (root < 0 || root >= g.n) {
		r.err = fmt.Errorf("%w: broadcast root %d out of range [0, %d)", ErrMismatch, root, g.n)
	}
	if r.err == nil {
		switch {
		case r.root == -1:
			r.root = root
		case r.root != root:
			r.err = fmt.Errorf("%w: broadcast roots %d and %d disagree", ErrMismatch, r.root, root)
		}
	}
	if r.err == nil && rank == root {
		r.acc = buf.Clone()
	}
	g.arrive(r)
	g.mu.Unlock()

	<-r.done
	defer g.finish(seq, r)
	if r.err != nil {
		return r.err
	}
	if rank == r.root {
		return nil
	}
	return buf.CopyFrom(r.acc)
}

// Split partitions the group: members calling with the same color form a new
// group ordered by key and, on ties, by parent rank.  It returns the caller's
// new group and rank within it.
func (g *Group) Split(rank int, seq uint64, color, key int) (*Group, int, error) {
	if err := g.checkRank(rank); err != nil {
		return nil, 0, err
	}

	g.mu.Lock()
	r := g.open(seq, roundSplit)
	r.colors[rank] = color
	r.keys[rank] = key
	if r.arrived+1 == g.n && r.err == nil {
		r.children, r.newRanks = g.partition(r.colors, r.keys)
	}
	g.arrive(r)
	g.mu.Unlock()

	<-r.done
	defer g.finish(seq, r)
	if r.err != nil {
		return nil, 0, r.err
	}
	return r.children[color], r.newRanks[rank], nil
}

// partition groups the parent ranks by color and orders each new group by
// (key, parent rank).
func (g *Group) partition(colors, keys []int) (map[int]*Group, []int) {
	members := make(map[int][]int)
	for parent, color := range colors {
		members[color] = append(members[color], parent)
	}

	children := make(map[int]*Group, len(members))
	newRanks := make([]int, g.n)
	for color, parents := range members {
		sort.SliceStable(parents, func(i, j int) bool {
			if keys[parents[i]] != keys[parents[j]] {
				return keys[parents[i]] < keys[parents[j]]
			}
			return parents[i] < parents[j]
		})
		children[color] = newGroup(len(parents))
		for newRank, parent := range parents {
			newRanks[parent] = newRank
		}
	}

	return children, newRanks
}

func (g *Group) checkRank(rank int) error {
	if rank < 0 || rank >= g.n {
		return fmt.Errorf("%w: rank %d out of range [0, %d)", ErrMismatch, rank, g.n)
	}
	return nil
}

// inprocComm drives a Group on behalf of one rank.
type inprocComm struct {
	group *Group
	rank  int
	seq   uint64
}

func (c *inprocComm) nextSeq() uint64 {
	seq := c.seq
	c.seq++
	return seq
}

func (c *inprocComm) Rank() int {
	return c.rank
}

func (c *inprocComm) Size() int {
	return c.group.Size()
}

func (c *inprocComm) Split(color, key int) (Communicator, error) {
	child, rank, err := c.group.Split(c.rank, c.nextSeq(), color, key)
	if err != nil {
		return nil, err
	}
	return &inprocComm{group: child, rank: rank}, nil
}

func (c *inprocComm) AllReduce(buf *tensor.Vector, op Op) error {
	return c.group.AllReduce(c.rank, c.nextSeq(), buf, op)
}

func (c *inprocComm) IAllReduce(buf *tensor.Vector, op Op) (Request, error) {
	seq := c.nextSeq()
	return Async(func() error {
		return c.group.AllReduce(c.rank, seq, buf, op)
	}), nil
}

func (c *inprocComm) Bcast(buf *tensor.Vector, root int) error {
	return c.group.Bcast(c.rank, c.nextSeq(), buf, root)
}

func (c *inprocComm) IBcast(buf *tensor.Vector, root int) (Request, error) {
	seq := c.nextSeq()
	return Async(func() error {
		return c.group.Bcast(c.rank, seq, buf, root)
	}), nil
}

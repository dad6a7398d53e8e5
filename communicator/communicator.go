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

// The communicator package implements the collective transport between
// workers of a data-parallel training job.  The primitives are based on the
// syntax of the Message Passing Interface (MPI); the communicator runtime
// always starts with Init and ends with Finalize.  A single coordinator
// process hosts the meeting point of the collectives: every worker sends its
// contribution as a unary RPC, and the handler goroutine stands in for the
// calling rank on an in-process collective group.
package communicator

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/9rum/kairos/collective"
	"github.com/9rum/kairos/tensor"
	"github.com/golang/glog"
	"github.com/golang/protobuf/ptypes/empty"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// worldComm identifies the world communicator every rank starts from.
const worldComm = 0

// communicatorServer implements the server API for Communicator service.
type communicatorServer struct {
	UnimplementedCommunicatorServer
	done   chan<- os.Signal
	fanin  chan struct{}
	fanout []chan struct{}

	mu     sync.Mutex
	groups map[int64]*collective.Group
	ids    map[*collective.Group]int64
	next   int64
}

// NewCommunicatorServer creates a new communicator server spanning worldSize
// workers.
func NewCommunicatorServer(done chan<- os.Signal, worldSize int) (CommunicatorServer, error) {
	world, err := collective.NewWorld(worldSize)
	if err != nil {
		return nil, err
	}
	fanout := make([]chan struct{}, 0, worldSize)
	for len(fanout) < cap(fanout) {
		fanout = append(fanout, make(chan struct{}))
	}
	root := world.Group()
	return &communicatorServer{
		done:   done,
		fanin:  make(chan struct{}),
		fanout: fanout,
		groups: map[int64]*collective.Group{worldComm: root},
		ids:    map[*collective.Group]int64{root: worldComm},
		next:   worldComm + 1,
	}, nil
}

// Init initializes the training environment.  The call blocks until every
// rank of the world has arrived, so no worker starts issuing collectives
// against peers that never joined.
func (c *communicatorServer) Init(ctx context.Context, in *InitRequest) (*empty.Empty, error) {
	glog.Infof("Init called from rank %d with world size %d", in.GetRank(), in.GetWorldSize())

	if in.GetWorldSize() != int64(len(c.fanout)) {
		return nil, status.Errorf(codes.InvalidArgument, "world size %d does not match the coordinator's %d", in.GetWorldSize(), len(c.fanout))
	}
	if in.GetRank() < 0 || int64(len(c.fanout)) <= in.GetRank() {
		return nil, status.Errorf(codes.InvalidArgument, "rank %d out of range [0, %d)", in.GetRank(), len(c.fanout))
	}

	go func() {
		c.fanin <- struct{}{}
	}()

	if in.GetRank() == 0 {
		go func() {
			for range c.fanout {
				<-c.fanin
			}
			for _, ch := range c.fanout {
				ch <- struct{}{}
			}
		}()
	}

	<-c.fanout[in.GetRank()]
	return new(empty.Empty), nil
}

// group resolves a communicator identifier.
func (c *communicatorServer) group(comm int64) (*collective.Group, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	group, ok := c.groups[comm]
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unknown communicator %d", comm)
	}
	return group, nil
}

// register assigns a stable identifier to a sub-communicator.  The members
// of a split resolve the same group, so all of them observe the same
// identifier.
func (c *communicatorServer) register(group *collective.Group) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	if id, ok := c.ids[group]; ok {
		return id
	}
	id := c.next
	c.next++
	c.ids[group] = id
	c.groups[id] = group
	return id
}

// Split partitions the communicator into disjoint sub-communicators.
func (c *communicatorServer) Split(ctx context.Context, in *SplitRequest) (*SplitResponse, error) {
	group, err := c.group(in.GetComm())
	if err != nil {
		return nil, err
	}

	child, rank, err := group.Split(int(in.GetRank()), in.GetSeq(), int(in.GetColor()), int(in.GetKey()))
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &SplitResponse{
		Comm: c.register(child),
		Rank: int64(rank),
		Size: int64(child.Size()),
	}, nil
}

// AllReduce reduces the payload elementwise across all ranks of the
// communicator.
func (c *communicatorServer) AllReduce(ctx context.Context, in *AllReduceRequest) (*AllReduceResponse, error) {
	group, err := c.group(in.GetComm())
	if err != nil {
		return nil, err
	}

	op, err := collective.OpNamed(in.GetOp())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	buf, err := tensor.FromBytes(in.GetData(), int(in.GetCount()), tensor.DType(in.GetDtype()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	if err := group.AllReduce(int(in.GetRank()), in.GetSeq(), buf, op); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &AllReduceResponse{Data: buf.Data}, nil
}

// Bcast replicates the root rank's payload to every rank of the
// communicator.
func (c *communicatorServer) Bcast(ctx context.Context, in *BcastRequest) (*BcastResponse, error) {
	group, err := c.group(in.GetComm())
	if err != nil {
		return nil, err
	}

	buf, err := tensor.FromBytes(in.GetData(), int(in.GetCount()), tensor.DType(in.GetDtype()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	if err := group.Bcast(int(in.GetRank()), in.GetSeq(), buf, int(in.GetRoot())); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &BcastResponse{Data: buf.Data}, nil
}

// Finalize terminates the training environment.
func (c *communicatorServer) Finalize(ctx context.Context, in *empty.Empty) (*empty.Empty, error) {
	glog.Info("Finalize called")
	defer glog.Flush()
	defer c.close()

	return new(empty.Empty), nil
}

// close closes all open channels and notifies the main goroutine that the
// communicator runtime has ended.
func (c *communicatorServer) close() {
	close(c.fanin)
	for _, ch := range c.fanout {
		close(ch)
	}
	signal.Notify(c.done, syscall.SIGTERM)
	close(c.done)
}

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

package communicator

import (
	"errors"
	"net"
	"os"
	"sync"
	"testing"

	"github.com/9rum/kairos/collective"
	"github.com/9rum/kairos/tensor"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// newTestServer starts a coordinator for worldSize workers on an ephemeral
// port and returns its address.  The server stops when the communicator
// runtime is finalized or when the test ends, whichever comes first.
func newTestServer(t *testing.T, worldSize int) string {
	t.Helper()

	lis, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		t.Fatalf("could not listen: %v", err)
	}

	done := make(chan os.Signal)
	srv, err := NewCommunicatorServer(done, worldSize)
	if err != nil {
		t.Fatalf("could not create server: %v", err)
	}

	server := grpc.NewServer()
	RegisterCommunicatorServer(server, srv)

	go server.Serve(lis)
	go func() {
		<-done
		server.GracefulStop()
	}()
	t.Cleanup(server.Stop)

	return lis.Addr().String()
}

// maxOp is a reduction operator the coordinator does not know.
type maxOp struct{}

func (maxOp) Name() string { return "max" }

func (maxOp) Reduce(acc, operand *tensor.Vector) error { return nil }

func TestCommunicator(t *testing.T) {
	const (
		worldSize = 1 << 2
		numel     = 1 << 4
	)
	target := newTestServer(t, worldSize)

	comms := make([]*Comm, worldSize)

	var wg sync.WaitGroup
	for rank := 0; rank < worldSize; rank++ {
		wg.Add(1)
		go func(rank int) {
			defer wg.Done()
			comm, err := Dial(target, rank, worldSize)
			if err != nil {
				t.Errorf("rank %d could not init: %v", rank, err)
				return
			}
			comms[rank] = comm
		}(rank)
	}
	wg.Wait()
	if t.Failed() {
		t.FailNow()
	}
	defer func() {
		for _, comm := range comms {
			comm.Close()
		}
	}()

	for rank, comm := range comms {
		if comm.Rank() != rank || comm.Size() != worldSize {
			t.Fatalf("rank %d: got rank %d size %d", rank, comm.Rank(), comm.Size())
		}
	}

	for rank := 0; rank < worldSize; rank++ {
		wg.Add(1)
		go func(rank int) {
			defer wg.Done()
			buf := tensor.NewVector(numel, tensor.F32)
			for index := 0; index < numel; index++ {
				buf.SetFloat64At(index, float64(rank+index))
			}
			req, err := comms[rank].IAllReduce(buf, collective.Sum())
			if err != nil {
				t.Errorf("rank %d could not all-reduce: %v", rank, err)
				return
			}
			if err := req.Wait(); err != nil {
				t.Errorf("rank %d all-reduce failed: %v", rank, err)
				return
			}
			for index := 0; index < numel; index++ {
				want := float64(worldSize*(worldSize-1)/2 + worldSize*index)
				if got := buf.Float64At(index); got != want {
					t.Errorf("rank %d element %d: got %v, want %v", rank, index, got, want)
				}
			}
		}(rank)
	}
	wg.Wait()

	for rank := 0; rank < worldSize; rank++ {
		wg.Add(1)
		go func(rank int) {
			defer wg.Done()
			buf := tensor.NewVector(numel, tensor.F64)
			if rank == 1 {
				for index := 0; index < numel; index++ {
					buf.SetFloat64At(index, float64(index))
				}
			}
			if err := comms[rank].Bcast(buf, 1); err != nil {
				t.Errorf("rank %d could not bcast: %v", rank, err)
				return
			}
			for index := 0; index < numel; index++ {
				if got := buf.Float64At(index); got != float64(index) {
					t.Errorf("rank %d element %d: got %v, want %d", rank, index, got, index)
				}
			}
		}(rank)
	}
	wg.Wait()

	if err := comms[0].Finalize(); err != nil {
		t.Fatalf("could not finalize: %v", err)
	}
}

func TestCommunicatorTopology(t *testing.T) {
	const (
		worldSize   = 1 << 2
		deviceCount = 1 << 1
	)
	target := newTestServer(t, worldSize)

	comms := make([]*Comm, worldSize)

	var wg sync.WaitGroup
	for rank := 0; rank < worldSize; rank++ {
		wg.Add(1)
		go func(rank int) {
			defer wg.Done()
			comm, err := Dial(target, rank, worldSize)
			if err != nil {
				t.Errorf("rank %d could not init: %v", rank, err)
				return
			}
			comms[rank] = comm

			topology, err := collective.NewTopology(comm, deviceCount)
			if err != nil {
				t.Errorf("rank %d could not build topology: %v", rank, err)
				return
			}

			// Every rank holds the slot matching its local rank.
			slot := topology.Slot(rank % deviceCount)
			if !slot.Member {
				t.Errorf("rank %d is not a member of slot %d", rank, rank%deviceCount)
				return
			}
			buf := tensor.NewVector(1, tensor.F32)
			buf.SetFloat64At(0, float64(rank))
			if err := slot.Comm.AllReduce(buf, collective.Sum()); err != nil {
				t.Errorf("rank %d could not reduce over slot: %v", rank, err)
				return
			}
			want := 0.0
			for _, peer := range slot.Ranks {
				want += float64(peer)
			}
			if got := buf.Float64At(0); got != want {
				t.Errorf("rank %d slot sum: got %v, want %v", rank, got, want)
			}

			// The locality group relays slot 0's result to the other ranks
			// of the node; its holder always sits at local rank 0.
			relay := tensor.NewVector(1, tensor.F32)
			if topology.LocalRank() == 0 {
				relay.SetFloat64At(0, buf.Float64At(0))
			}
			if err := topology.Local().Bcast(relay, 0); err != nil {
				t.Errorf("rank %d could not bcast over locality group: %v", rank, err)
				return
			}
			want = 0.0
			for _, peer := range topology.Slot(0).Ranks {
				want += float64(peer)
			}
			if got := relay.Float64At(0); got != want {
				t.Errorf("rank %d relayed sum: got %v, want %v", rank, got, want)
			}
		}(rank)
	}
	wg.Wait()
	if t.Failed() {
		t.FailNow()
	}
	defer func() {
		for _, comm := range comms {
			comm.Close()
		}
	}()

	if err := comms[0].Finalize(); err != nil {
		t.Fatalf("could not finalize: %v", err)
	}
}

func TestCommunicatorRejectsCustomOps(t *testing.T) {
	target := newTestServer(t, 1)

	comm, err := Dial(target, 0, 1)
	if err != nil {
		t.Fatalf("could not init: %v", err)
	}
	defer comm.Close()

	buf := tensor.NewVector(1, tensor.F32)
	if err := comm.AllReduce(buf, maxOp{}); !errors.Is(err, collective.ErrUnsupportedOp) {
		t.Errorf("AllReduce accepted a custom operator: %v", err)
	}
	if _, err := comm.IAllReduce(buf, maxOp{}); !errors.Is(err, collective.ErrUnsupportedOp) {
		t.Errorf("IAllReduce accepted a custom operator: %v", err)
	}

	// The failed attempts must not desynchronize the sequence numbers.
	if err := comm.AllReduce(buf, collective.Sum()); err != nil {
		t.Errorf("could not all-reduce: %v", err)
	}

	if err := comm.Finalize(); err != nil {
		t.Fatalf("could not finalize: %v", err)
	}
}

func TestCommunicatorInitValidation(t *testing.T) {
	target := newTestServer(t, 2)

	if _, err := Dial(target, 0, 3); status.Code(err) != codes.InvalidArgument {
		t.Errorf("mismatched world size: got %v, want %v", status.Code(err), codes.InvalidArgument)
	}
	if _, err := Dial(target, 2, 2); status.Code(err) != codes.InvalidArgument {
		t.Errorf("out-of-range rank: got %v, want %v", status.Code(err), codes.InvalidArgument)
	}
	if _, err := Dial(target, -1, 2); status.Code(err) != codes.InvalidArgument {
		t.Errorf("negative rank: got %v, want %v", status.Code(err), codes.InvalidArgument)
	}
}

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
	"context"
	"fmt"

	"github.com/9rum/kairos/collective"
	"github.com/9rum/kairos/tensor"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/emptypb"
)

// Comm is a collective communicator backed by a remote coordinator.  Every
// worker dials the coordinator once at startup; collective calls travel as
// unary RPCs carrying the calling rank and a per-communicator sequence
// number, and block until the matching contributions of the other ranks
// arrive at the coordinator.  Only the well-known reduction operators can
// travel over the wire; custom operators are rejected at issue time.
//
// Like every Communicator, a Comm serves a single rank and must be driven by
// that rank's control goroutine.
type Comm struct {
	client CommunicatorClient
	conn   *grpc.ClientConn
	comm   int64
	rank   int
	size   int
	seq    uint64
}

// Dial connects to the coordinator at target and registers the calling
// worker, blocking until every rank of the world has arrived.
func Dial(target string, rank, worldSize int) (*Comm, error) {
	conn, err := grpc.Dial(target, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	client := NewCommunicatorClient(conn)
	if _, err := client.Init(context.Background(), &InitRequest{Rank: int64(rank), WorldSize: int64(worldSize)}); err != nil {
		conn.Close()
		return nil, err
	}
	return &Comm{
		client: client,
		conn:   conn,
		comm:   worldComm,
		rank:   rank,
		size:   worldSize,
	}, nil
}

// Finalize terminates the coordinator.  Exactly one rank invokes it, after
// every collective has completed on every rank.
func (c *Comm) Finalize() error {
	_, err := c.client.Finalize(context.Background(), new(emptypb.Empty))
	return err
}

// Close releases the connection to the coordinator.  Communicators obtained
// from Split share the root connection; closing any of them closes all.
func (c *Comm) Close() error {
	return c.conn.Close()
}

func (c *Comm) nextSeq() uint64 {
	seq := c.seq
	c.seq++
	return seq
}

// Rank returns the calling worker's rank within the communicator.
func (c *Comm) Rank() int {
	return c.rank
}

// Size returns the number of ranks spanned by the communicator.
func (c *Comm) Size() int {
	return c.size
}

// Split partitions the communicator on the coordinator and returns the
// calling rank's handle on its sub-communicator.
func (c *Comm) Split(color, key int) (collective.Communicator, error) {
	r, err := c.client.Split(context.Background(), &SplitRequest{
		Comm:  c.comm,
		Rank:  int64(c.rank),
		Seq:   c.nextSeq(),
		Color: int64(color),
		Key:   int64(key),
	})
	if err != nil {
		return nil, err
	}
	return &Comm{
		client: c.client,
		conn:   c.conn,
		comm:   r.GetComm(),
		rank:   int(r.GetRank()),
		size:   int(r.GetSize()),
	}, nil
}

// AllReduce reduces buf elementwise across all ranks of the communicator.
func (c *Comm) AllReduce(buf *tensor.Vector, op collective.Op) error {
	if _, err := collective.OpNamed(op.Name()); err != nil {
		return err
	}
	return c.allReduce(c.nextSeq(), buf, op)
}

// IAllReduce is the non-blocking form of AllReduce.
func (c *Comm) IAllReduce(buf *tensor.Vector, op collective.Op) (collective.Request, error) {
	if _, err := collective.OpNamed(op.Name()); err != nil {
		return nil, err
	}
	seq := c.nextSeq()
	return collective.Async(func() error {
		return c.allReduce(seq, buf, op)
	}), nil
}

func (c *Comm) allReduce(seq uint64, buf *tensor.Vector, op collective.Op) error {
	r, err := c.client.AllReduce(context.Background(), &AllReduceRequest{
		Comm:  c.comm,
		Rank:  int64(c.rank),
		Seq:   seq,
		Op:    op.Name(),
		Dtype: int32(buf.Type),
		Count: int64(buf.Count),
		Data:  buf.Data,
	})
	if err != nil {
		return err
	}
	return refill(buf, r.GetData())
}

// Bcast overwrites buf on every rank with the root rank's contents.
func (c *Comm) Bcast(buf *tensor.Vector, root int) error {
	return c.bcast(c.nextSeq(), buf, root)
}

// IBcast is the non-blocking form of Bcast.
func (c *Comm) IBcast(buf *tensor.Vector, root int) (collective.Request, error) {
	seq := c.nextSeq()
	return collective.Async(func() error {
		return c.bcast(seq, buf, root)
	}), nil
}

func (c *Comm) bcast(seq uint64, buf *tensor.Vector, root int) error {
	r, err := c.client.Bcast(context.Background(), &BcastRequest{
		Comm:  c.comm,
		Rank:  int64(c.rank),
		Seq:   seq,
		Root:  int64(root),
		Dtype: int32(buf.Type),
		Count: int64(buf.Count),
		Data:  buf.Data,
	})
	if err != nil {
		return err
	}
	return refill(buf, r.GetData())
}

// refill overwrites buf with the payload returned by the coordinator.
func refill(buf *tensor.Vector, data []byte) error {
	if len(data) != len(buf.Data) {
		return fmt.Errorf("coordinator returned %d bytes, want %d", len(data), len(buf.Data))
	}
	copy(buf.Data, data)
	return nil
}

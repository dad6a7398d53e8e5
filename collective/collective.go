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

// Package collective provides the group-communication primitives used by the
// synchronization scheduler.  The primitives are based on the syntax of the
// Message Passing Interface (MPI): a Communicator spans an ordered set of
// worker ranks, Split derives sub-communicators, and the all-reduce and
// broadcast collectives come in blocking and non-blocking forms, the latter
// returning a Request to be waited on.  Collectives must be called by every
// rank of a communicator in the same order; once issued, a request must
// eventually be waited on, since unmatched collectives deadlock the group.
package collective

import (
	"errors"

	"github.com/9rum/kairos/tensor"
)

var (
	// ErrMismatch reports a collective whose arguments disagree across the
	// participating ranks.  It indicates a scheduling bug, not a transient
	// transport condition.
	ErrMismatch = errors.New("mismatched collective call")

	// ErrUnsupportedOp reports a reduction operator the transport cannot
	// apply, for example a custom operator handed to a remote backend.
	ErrUnsupportedOp = errors.New("unsupported reduction operator")
)

// Request is the handle of an in-flight non-blocking collective.
type Request interface {
	// Wait blocks until the collective completes and returns the terminal
	// error, if any.  Transport failures are fatal to the operation; the
	// handle never retries.
	Wait() error
}

// Async runs fn on its own goroutine and returns a Request resolving to fn's
// error.  Transports derive the non-blocking form of a collective from the
// blocking one with it.
func Async(fn func() error) Request {
	req := &asyncRequest{done: make(chan error, 1)}
	go func() {
		req.done <- fn()
	}()
	return req
}

// asyncRequest resolves once its collective goroutine reports completion.
type asyncRequest struct {
	done    chan error
	err     error
	settled bool
}

// Wait blocks until the collective completes.  Repeated waits return the same
// terminal error.
func (r *asyncRequest) Wait() error {
	if !r.settled {
		r.err = <-r.done
		r.settled = true
	}
	return r.err
}

// Communicator is a communication channel spanning a fixed, ordered set of
// worker ranks.  A communicator is driven by its rank's control goroutine;
// issuing collectives on one communicator from several goroutines at once is
// not supported.
type Communicator interface {
	// Rank returns the calling worker's rank within the communicator.
	Rank() int

	// Size returns the number of ranks spanned by the communicator.
	Size() int

	// Split partitions the communicator: ranks calling with the same color
	// form a new communicator, ordered by key and, on ties, by their rank in
	// the parent.  Split is collective; every rank of the parent must call it.
	Split(color, key int) (Communicator, error)

	// AllReduce reduces buf elementwise across all ranks with the given
	// operator and replaces buf with the result in place on every rank.
	AllReduce(buf *tensor.Vector, op Op) error

	// IAllReduce is the non-blocking form of AllReduce.  buf must not be
	// touched until the returned request has been waited on.
	IAllReduce(buf *tensor.Vector, op Op) (Request, error)

	// Bcast overwrites buf on every rank with the root rank's contents.
	Bcast(buf *tensor.Vector, root int) error

	// IBcast is the non-blocking form of Bcast.  buf must not be touched
	// until the returned request has been waited on.
	IBcast(buf *tensor.Vector, root int) (Request, error)
}

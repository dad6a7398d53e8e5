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

import "math"

const (
	// lossStabilityThreshold bounds the absolute difference between distant
	// loss averages below which the trend counts as stable.
	lossStabilityThreshold = 0.075

	// cooldownEpochs is the number of epochs at the end of training forced
	// back to full synchronization.
	cooldownEpochs = 5
)

// skipPolicy tunes the skip cadence from the loss trend observed across
// epochs.  It is a heuristic control loop, a tunable policy rather than a
// provably optimal schedule: training starts fully synchronous, switches to
// a moderate cadence after warm-up, relaxes back toward synchrony whenever
// the loss plateaus, and finishes the last epochs fully synchronous again.
type skipPolicy struct {
	globalSkip    int
	localSkip     int
	batchesToWait int
	epochsToWait  int
	history       []float64
	warmupEpochs  int
	totalEpochs   int
}

func newSkipPolicy(totalEpochs, warmupEpochs int) *skipPolicy {
	return &skipPolicy{
		epochsToWait: 3,
		warmupEpochs: warmupEpochs,
		totalEpochs:  totalEpochs,
	}
}

// downcast reports whether reduction buffers should travel narrowed to bf16.
// Only the fully synchronous tier pays the precision cost, where every batch
// reduces and communication dominates.
func (p *skipPolicy) downcast() bool {
	return p.globalSkip < 1
}

// observe records an epoch's average loss and adjusts the skip cadence.
// epoch is the index of the upcoming epoch, as callers observe after the
// last batch has advanced the cursor.
func (p *skipPolicy) observe(epoch int, avgLoss float64) {
	p.history = append(p.history, avgLoss)

	if epoch < p.warmupEpochs {
		p.set(0, 0, 0)
		return
	}
	if epoch == p.warmupEpochs {
		p.set(4, 1, 1)
		p.history = p.history[:0]
	}
	if epoch >= p.totalEpochs-cooldownEpochs {
		p.set(0, 0, 0)
		return
	}

	if !stable(p.history, p.epochsToWait) {
		return
	}
	switch {
	case p.globalSkip > 1:
		// loss stable; halve the cadence and demand a longer trend next time
		p.globalSkip /= 2
		p.localSkip /= 2
		p.batchesToWait /= 2
		p.epochsToWait++
		p.history = p.history[:0]
		if p.globalSkip > 0 {
			p.localSkip = max(p.localSkip, 1)
			p.batchesToWait = max(p.batchesToWait, 1)
		}
	case p.globalSkip == 1:
		// cadence bottomed out; jump back to an aggressive schedule
		p.set(8, 2, 3)
		p.epochsToWait = 3
		p.history = p.history[:0]
	}
}

func (p *skipPolicy) set(globalSkip, localSkip, batchesToWait int) {
	p.globalSkip, p.localSkip, p.batchesToWait = globalSkip, localSkip, batchesToWait
}

// stable reports whether the newest loss average moved by at most the
// stability threshold relative to the average k-1 epochs earlier.  It needs
// at least k samples.
func stable(history []float64, k int) bool {
	if len(history) < k {
		return false
	}
	return math.Abs(history[len(history)-1]-history[len(history)-k]) <= lossStabilityThreshold
}

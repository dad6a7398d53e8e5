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

import "testing"

func assertSkips(t *testing.T, p *skipPolicy, globalSkip, localSkip, batchesToWait int) {
	t.Helper()
	if p.globalSkip != globalSkip || p.localSkip != localSkip || p.batchesToWait != batchesToWait {
		t.Fatalf("skips = (%d, %d, %d), want (%d, %d, %d)",
			p.globalSkip, p.localSkip, p.batchesToWait, globalSkip, localSkip, batchesToWait)
	}
}

func TestSkipPolicyWarmup(t *testing.T) {
	p := newSkipPolicy(30, 4)
	assertSkips(t, p, 0, 0, 0)
	for epoch := 0; epoch < 4; epoch++ {
		p.observe(epoch, 10-float64(epoch))
		assertSkips(t, p, 0, 0, 0)
	}
}

func TestSkipPolicyActivation(t *testing.T) {
	p := newSkipPolicy(30, 4)
	for epoch := 0; epoch < 4; epoch++ {
		p.observe(epoch, 10-float64(epoch))
	}
	p.observe(4, 6)
	assertSkips(t, p, 4, 1, 1)
	if len(p.history) != 0 {
		t.Errorf("loss history not cleared at activation: %v", p.history)
	}
}

func TestSkipPolicyLadder(t *testing.T) {
	p := newSkipPolicy(100, 1)
	p.observe(0, 5)
	p.observe(1, 5)
	assertSkips(t, p, 4, 1, 1)

	// a flat loss is stable; each detection halves the cadence and extends
	// the required trend by one epoch
	epoch := 2
	feed := func(n int) {
		for i := 0; i < n; i++ {
			p.observe(epoch, 1)
			epoch++
		}
	}
	feed(3)
	assertSkips(t, p, 2, 1, 1)
	if got, want := p.epochsToWait, 4; got != want {
		t.Fatalf("epochs to wait = %d, want %d", got, want)
	}
	feed(4)
	assertSkips(t, p, 1, 1, 1)
	if got, want := p.epochsToWait, 5; got != want {
		t.Fatalf("epochs to wait = %d, want %d", got, want)
	}

	// cadence bottomed out; the next stable trend jumps back up
	feed(5)
	assertSkips(t, p, 8, 2, 3)
	if got, want := p.epochsToWait, 3; got != want {
		t.Fatalf("epochs to wait = %d, want %d", got, want)
	}
}

func TestSkipPolicyUnstableHolds(t *testing.T) {
	p := newSkipPolicy(100, 1)
	p.observe(0, 5)
	p.observe(1, 5)
	assertSkips(t, p, 4, 1, 1)

	loss := 8.
	for epoch := 2; epoch < 20; epoch++ {
		p.observe(epoch, loss)
		loss -= 0.25
		assertSkips(t, p, 4, 1, 1)
	}
}

func TestSkipPolicyStabilityBoundary(t *testing.T) {
	if !stable([]float64{1, 1, 1.0625}, 3) {
		t.Error("a drift of 0.0625 over the window should count as stable")
	}
	if stable([]float64{1, 1, 1.09375}, 3) {
		t.Error("a drift of 0.09375 over the window should count as unstable")
	}
	if stable([]float64{1, 1}, 3) {
		t.Error("two samples cannot establish a three-epoch trend")
	}
	if !stable([]float64{1, 1.09375, 1.0625}, 3) {
		t.Error("only the endpoints of the window should matter")
	}
}

func TestSkipPolicyCooldown(t *testing.T) {
	p := newSkipPolicy(10, 1)
	p.observe(0, 5)
	p.observe(1, 5)
	assertSkips(t, p, 4, 1, 1)

	for epoch := 5; epoch < 10; epoch++ {
		p.observe(epoch, 1)
		assertSkips(t, p, 0, 0, 0)
	}
}

func TestSkipPolicyDowncast(t *testing.T) {
	p := newSkipPolicy(30, 4)
	if !p.downcast() {
		t.Error("fully synchronous schedule should downcast reduction buffers")
	}
	p.set(4, 1, 1)
	if p.downcast() {
		t.Error("skip schedule should keep full reduction precision")
	}
}

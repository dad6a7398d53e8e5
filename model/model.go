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

// Package model declares the interfaces the synchronization scheduler
// requires from the surrounding training stack.  The tensor computation
// library, the model definition and the local optimizer are collaborators;
// the scheduler only reads named parameters, rewrites their flat storage
// after a merge, and drives the optimizer once per batch.
package model

import "github.com/9rum/kairos/tensor"

// Parameter is a single named, trainable tensor of the model.
type Parameter interface {
	// Name identifies the parameter.  Names are unique within a model and
	// their iteration order matches the model's declaration order.
	Name() string

	// Shape returns the declared dimensions.  The product of the dimensions
	// equals Data().Count.
	Shape() []int

	// RequiresGrad reports whether the parameter participates in gradient
	// updates.  Frozen parameters are excluded from synchronization.
	RequiresGrad() bool

	// Data exposes the flattened storage.  Merges mutate it in place.
	Data() *tensor.Vector
}

// Model is the set of parameters kept in sync across workers.
type Model interface {
	// Parameters returns the named parameters in declaration order.
	Parameters() []Parameter
}

// LocalSynchronizer toggles gradient synchronization within a locality
// group.  Data-parallel wrappers that all-reduce gradients among the
// processes of one node implement it; the scheduler turns the exchange off
// during local-skip windows and back on ahead of a global synchronization.
// Models without local parallelism simply do not implement the interface.
type LocalSynchronizer interface {
	// EnableLocalSync resumes gradient exchange within the locality group.
	EnableLocalSync()

	// DisableLocalSync suspends gradient exchange, keeping gradient
	// accumulation private to the worker.
	DisableLocalSync()
}

// Optimizer is the local optimizer collaborator.  Its update rule is opaque
// to the scheduler.
type Optimizer interface {
	// Step applies the accumulated gradients to the parameters.
	Step()

	// ZeroGrad resets the accumulated gradients.
	ZeroGrad()
}

// LRScheduler steps a learning-rate schedule in place of the bare optimizer
// when one is configured.
type LRScheduler interface {
	Step()
}

// GradScaler drives the optimizer under mixed-precision training: Step skips
// the update when gradients overflowed and Update adjusts the loss scale for
// the next iteration.
type GradScaler interface {
	Step(optimizer Optimizer)
	Update()
}

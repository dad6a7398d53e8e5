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

	"github.com/9rum/kairos/tensor"
)

// Op is a commutative, elementwise reduction operator.  Operators are
// explicitly constructed values injected into the reduction pipeline; the
// narrow-precision sums exist because transports treat half-width floats as
// opaque bytes and need the arithmetic supplied.
type Op interface {
	// Name identifies the operator.  Remote transports resolve well-known
	// operators by name; operators unknown to a transport are rejected with
	// ErrUnsupportedOp.
	Name() string

	// Reduce folds operand into acc elementwise.  Both vectors keep their
	// dtype; narrowing happens per element after the fold.
	Reduce(acc, operand *tensor.Vector) error
}

// Sum returns the standard-precision sum operator, defined over f32 and f64
// vectors.
func Sum() Op {
	return sumOp{name: "sum", types: []tensor.DType{tensor.F32, tensor.F64}}
}

// HalfSum returns the sum operator for f16 vectors.
func HalfSum() Op {
	return sumOp{name: "sum_f16", types: []tensor.DType{tensor.F16}}
}

// BFloatSum returns the sum operator for bf16 vectors.
func BFloatSum() Op {
	return sumOp{name: "sum_bf16", types: []tensor.DType{tensor.BF16}}
}

// OpNamed resolves a well-known operator by its wire name.
func OpNamed(name string) (Op, error) {
	switch name {
	case "sum":
		return Sum(), nil
	case "sum_f16":
		return HalfSum(), nil
	case "sum_bf16":
		return BFloatSum(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedOp, name)
	}
}

type sumOp struct {
	name  string
	types []tensor.DType
}

func (op sumOp) Name() string {
	return op.name
}

func (op sumOp) Reduce(acc, operand *tensor.Vector) error {
	if acc.Count != operand.Count || acc.Type != operand.Type {
		return fmt.Errorf("%w: %d %s vs %d %s", ErrMismatch, acc.Count, acc.Type, operand.Count, operand.Type)
	}
	supported := false
	for _, typ := range op.types {
		if acc.Type == typ {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("%w: %s over %s vectors", ErrUnsupportedOp, op.name, acc.Type)
	}
	for i := 0; i < acc.Count; i++ {
		acc.SetFloat64At(i, acc.Float64At(i)+operand.Float64At(i))
	}
	return nil
}

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

// Package fakemodel provides an in-memory training stack for exercising the
// synchronization scheduler: a model with named, dtype-tagged parameters, a
// counting optimizer, and counting mixed-precision collaborators.
package fakemodel

import (
	"github.com/9rum/kairos/model"
	"github.com/9rum/kairos/tensor"
)

// Param is an in-memory trainable tensor.
type Param struct {
	name   string
	shape  []int
	frozen bool
	data   *tensor.Vector
}

// NewParam creates a parameter of the given shape and dtype with every
// element set to fill.
func NewParam(name string, shape []int, typ tensor.DType, fill float64) *Param {
	count := 1
	for _, dim := range shape {
		count *= dim
	}
	data := tensor.NewVector(count, typ)
	for index := 0; index < count; index++ {
		data.SetFloat64At(index, fill)
	}
	return &Param{
		name:  name,
		shape: shape,
		data:  data,
	}
}

// Freeze excludes the parameter from gradient updates and returns it.
func (p *Param) Freeze() *Param {
	p.frozen = true
	return p
}

func (p *Param) Name() string         { return p.name }
func (p *Param) Shape() []int         { return p.shape }
func (p *Param) RequiresGrad() bool   { return !p.frozen }
func (p *Param) Data() *tensor.Vector { return p.data }

// Model is a bag of parameters without local gradient synchronization.
type Model struct {
	params []model.Parameter
}

// New creates a model over the given parameters, keeping their order.
func New(params ...model.Parameter) *Model {
	return &Model{params: params}
}

func (m *Model) Parameters() []model.Parameter {
	return m.params
}

// SyncModel is a Model whose local gradient synchronization can be toggled.
// It records every toggle it receives, in order.
type SyncModel struct {
	Model
	Toggles []bool
}

// NewSync creates a toggleable model over the given parameters.
func NewSync(params ...model.Parameter) *SyncModel {
	return &SyncModel{Model: Model{params: params}}
}

func (m *SyncModel) EnableLocalSync()  { m.Toggles = append(m.Toggles, true) }
func (m *SyncModel) DisableLocalSync() { m.Toggles = append(m.Toggles, false) }

// Optimizer counts update and reset calls.  OnStep, when set, stands in for
// the parameter update itself.
type Optimizer struct {
	Steps  int
	Zeroed int
	OnStep func()
}

func (o *Optimizer) Step() {
	o.Steps++
	if o.OnStep != nil {
		o.OnStep()
	}
}

func (o *Optimizer) ZeroGrad() { o.Zeroed++ }

// Scaler counts mixed-precision stepping.
type Scaler struct {
	Steps   int
	Updates int
}

func (s *Scaler) Step(optimizer model.Optimizer) { s.Steps++ }
func (s *Scaler) Update()                        { s.Updates++ }

// LRScheduler counts schedule-driven stepping.
type LRScheduler struct {
	Steps int
}

func (l *LRScheduler) Step() { l.Steps++ }

// Drift returns an optimizer hook advancing every trainable parameter by
// delta, standing in for a real local update.
func Drift(m model.Model, delta float64) func() {
	return func() {
		for _, param := range m.Parameters() {
			if !param.RequiresGrad() {
				continue
			}
			data := param.Data()
			for index := 0; index < data.Count; index++ {
				data.SetFloat64At(index, data.Float64At(index)+delta)
			}
		}
	}
}

// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Weighted progress ledger for the update state machine.
package goflashrom

import (
	"github.com/golang/glog"
)

type Phase string

const (
	PhaseWrite  Phase = "write"
	PhaseVerify Phase = "verify"
)

// Report is passed to the progress callback after each completed phase.
type Report struct {
	Phase   Phase
	Percent float64
}

// ProgressFunc receives completion reports. Implementations should return
// quickly; they run on the update's calling goroutine.
type ProgressFunc func(Report)

// Progress is an ordered sequence of weighted phases. Phases complete
// strictly in order, each exactly once. A nil *Progress is valid and records
// nothing.
type Progress struct {
	cb    ProgressFunc
	steps []step
	next  int
}

type step struct {
	phase  Phase
	weight int
	done   bool
}

func NewProgress(cb ProgressFunc) *Progress {
	return &Progress{cb: cb}
}

// AddStep appends a phase with the given relative weight.
func (p *Progress) AddStep(phase Phase, weight int) {
	if p == nil {
		return
	}
	p.steps = append(p.steps, step{phase: phase, weight: weight})
}

// StepDone marks the next pending phase complete and reports the new
// percentage.
func (p *Progress) StepDone() {
	if p == nil {
		return
	}
	if p.next >= len(p.steps) {
		glog.Warning("StepDone called with no pending step")
		return
	}
	p.steps[p.next].done = true
	p.next++
	if p.cb != nil {
		p.cb(Report{Phase: p.steps[p.next-1].phase, Percent: p.Percent()})
	}
}

// Done reports whether the named phase has completed.
func (p *Progress) Done(phase Phase) bool {
	if p == nil {
		return false
	}
	for _, s := range p.steps {
		if s.phase == phase {
			return s.done
		}
	}
	return false
}

// Percent returns completed weight over total weight, 0-100.
func (p *Progress) Percent() float64 {
	if p == nil {
		return 0
	}
	var total, done int
	for _, s := range p.steps {
		total += s.weight
		if s.done {
			done += s.weight
		}
	}
	if total == 0 {
		return 0
	}
	return 100 * float64(done) / float64(total)
}

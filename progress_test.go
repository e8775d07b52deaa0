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

package goflashrom_test

import (
	"testing"

	"github.com/google/goflashrom"
)

func TestProgressAdvancesInOrder(t *testing.T) {
	var reports []goflashrom.Report
	p := goflashrom.NewProgress(func(r goflashrom.Report) {
		reports = append(reports, r)
	})
	p.AddStep(goflashrom.PhaseWrite, 90)
	p.AddStep(goflashrom.PhaseVerify, 10)

	if p.Percent() != 0 {
		t.Errorf("Expected 0%%, got %v", p.Percent())
	}

	p.StepDone()
	if !p.Done(goflashrom.PhaseWrite) || p.Done(goflashrom.PhaseVerify) {
		t.Error("Expected write done, verify pending")
	}
	if p.Percent() != 90 {
		t.Errorf("Expected 90%%, got %v", p.Percent())
	}

	p.StepDone()
	if p.Percent() != 100 {
		t.Errorf("Expected 100%%, got %v", p.Percent())
	}

	if len(reports) != 2 ||
		reports[0].Phase != goflashrom.PhaseWrite || reports[0].Percent != 90 ||
		reports[1].Phase != goflashrom.PhaseVerify || reports[1].Percent != 100 {
		t.Errorf("Unexpected reports %+v", reports)
	}
}

func TestProgressIgnoresExtraStepDone(t *testing.T) {
	calls := 0
	p := goflashrom.NewProgress(func(goflashrom.Report) { calls++ })
	p.AddStep(goflashrom.PhaseWrite, 90)
	p.StepDone()
	p.StepDone() // no pending step; must not fire the callback again
	if calls != 1 {
		t.Errorf("Callback fired %d times, want 1", calls)
	}
}

func TestNilProgressIsSafe(t *testing.T) {
	var p *goflashrom.Progress
	p.AddStep(goflashrom.PhaseWrite, 90)
	p.StepDone()
	if p.Percent() != 0 || p.Done(goflashrom.PhaseWrite) {
		t.Error("Nil progress should record nothing")
	}
}

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

// Write orchestration: validate, write, verify, optional post-write reset.
package goflashrom

import (
	"github.com/golang/glog"
)

// Relative weights of the write and verify phases.
const (
	writeWeight  = 90
	verifyWeight = 10
)

// WriteFirmware writes image to the device's bios region and verifies the
// result by read-back. Steps run in fixed order, each gated on the previous
// step's success; the first failure aborts the operation. The caller must
// hold exclusive access to the device for the whole call and must have run
// EnsureBackup first for the device's first update.
//
// image must cover the whole chip: its length must equal FlashSize() exactly,
// even though only the bios region is written.
func WriteFirmware(dev FlashDevice, image []byte, progress *Progress) error {
	var err error

	// Cheap validation before any hardware operation.
	if len(image) != dev.FlashSize() {
		return &SizeMismatchError{Expected: dev.FlashSize(), Actual: len(image)}
	}

	layout, err := ResolveRegion(dev, RegionBios)
	if err != nil {
		return err
	}
	if err = dev.ApplyLayout(layout); err != nil {
		return &FlashWriteError{Err: err}
	}
	defer dev.ReleaseLayout()

	progress.AddStep(PhaseWrite, writeWeight)
	progress.AddStep(PhaseVerify, verifyWeight)

	glog.Info("Writing firmware image")
	if err = dev.Write(image); err != nil {
		return &FlashWriteError{Err: err}
	}
	progress.StepDone()

	glog.Info("Verifying flash contents")
	if err = dev.Verify(image); err != nil {
		return &VerifyError{Err: err}
	}
	progress.StepDone()

	return maybeResetAux(dev)
}

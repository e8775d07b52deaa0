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

package goflashrom

import (
	"fmt"

	"github.com/golang/glog"
)

// maybeResetAux performs the post-write auxiliary reset on devices configured
// for it. Stale auxiliary state (CMOS on PC hardware) can cause boot
// misbehavior after a firmware change, so for such devices the reset is part
// of the update's completion contract: a reset failure fails the overall
// update even though the firmware write itself has been verified.
func maybeResetAux(dev FlashDevice) error {
	if !dev.Config().ResetOnComplete {
		return nil
	}
	glog.V(1).Info("Attempting auxiliary state reset")
	r, ok := dev.(AuxResetter)
	if !ok {
		return &PostActionError{Err: fmt.Errorf("device %s cannot reset auxiliary state", dev.ID())}
	}
	if err := r.ResetAux(); err != nil {
		return &PostActionError{Err: err}
	}
	return nil
}

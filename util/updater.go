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

package util

import (
	"fmt"

	"github.com/google/goflashrom"

	"github.com/golang/glog"
)

// Updates system firmware on a device.
// Backs up the current image (first update only), then writes and verifies
// the new one. The caller must hold exclusive access to the device.
func UpdateDevice(dev goflashrom.FlashDevice, image []byte, stateDir string,
	progress *goflashrom.Progress) error {
	var err error
	glog.Info("Ensuring pre-update backup")
	if err = goflashrom.EnsureBackup(dev, stateDir); err != nil {
		return fmt.Errorf("Failed to back up device: %v", err)
	}
	if err = goflashrom.WriteFirmware(dev, image, progress); err != nil {
		return err
	}
	glog.Info("Device updated successfully")
	return nil
}

// UpdateFromFile loads a .bin or .hex firmware image and applies it.
func UpdateFromFile(dev goflashrom.FlashDevice, filename, stateDir string,
	progress *goflashrom.Progress) error {
	image, err := LoadFirmwareFile(filename)
	if err != nil {
		return fmt.Errorf("Failed loading firmware file: %v", err)
	}
	return UpdateDevice(dev, image, stateDir, progress)
}

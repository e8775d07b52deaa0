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

// One-time backup of the pre-update flash image.
package goflashrom

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/glog"
)

// BackupPath returns the deterministic backup artifact location for a device
// identity under the given state directory.
func BackupPath(stateDir, deviceID string) string {
	return filepath.Join(stateDir, "builder", fmt.Sprintf("flashrom-%s.bin", deviceID))
}

// EnsureBackup guarantees a persisted copy of the device's current full flash
// contents exists before the first destructive write. A device is backed up
// at most once: if the artifact already exists the device is not read again,
// so a later corrupted image can never overwrite a good backup. The artifact
// is never mutated or deleted afterwards; it is kept for manual recovery.
func EnsureBackup(dev FlashDevice, stateDir string) error {
	var err error
	path := BackupPath(stateDir, dev.ID())
	if err = os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &BackupIOError{Path: path, Err: err}
	}
	if _, err = os.Stat(path); err == nil {
		glog.V(1).Infof("Backup %s already exists, skipping", path)
		return nil
	}

	layout, err := ResolveRegion(dev, RegionBios)
	if err != nil {
		return err
	}
	if err = dev.ApplyLayout(layout); err != nil {
		return &FlashReadError{Err: err}
	}
	defer dev.ReleaseLayout()

	glog.Infof("Backing up original firmware to %s", path)
	contents := make([]byte, dev.FlashSize())
	if err = dev.Read(contents); err != nil {
		return &FlashReadError{Err: fmt.Errorf("failed to back up original firmware: %v", err)}
	}
	if err = writeFileAtomic(path, contents); err != nil {
		return &BackupIOError{Path: path, Err: err}
	}
	return nil
}

// Persists via temp file and rename so a crash never leaves a truncated
// artifact that would satisfy the existence check.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}

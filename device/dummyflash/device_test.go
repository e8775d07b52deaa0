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

package dummyflash_test

import (
	"bytes"
	"testing"

	"github.com/google/goflashrom"
	"github.com/google/goflashrom/device/dummyflash"
)

const size = 1 << 16

func newDevice(t *testing.T, opts dummyflash.Options) *dummyflash.Device {
	t.Helper()
	if opts.Size == 0 {
		opts.Size = size
	}
	dev, err := dummyflash.New("dummy", goflashrom.DeviceConfig{}, opts)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return dev
}

func TestLayoutScopedWriteLeavesOtherRegionsUntouched(t *testing.T) {
	initial := bytes.Repeat([]byte{0x11}, size)
	dev := newDevice(t, dummyflash.Options{Image: initial})

	layout, err := goflashrom.ResolveRegion(dev, goflashrom.RegionBios)
	if err != nil {
		t.Fatalf("ResolveRegion failed: %v", err)
	}
	if err = dev.ApplyLayout(layout); err != nil {
		t.Fatalf("ApplyLayout failed: %v", err)
	}
	defer dev.ReleaseLayout()

	image := bytes.Repeat([]byte{0xee}, size)
	if err = dev.Write(image); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	contents := dev.Contents()
	// Descriptor region excluded from the layout keeps its old contents.
	if !bytes.Equal(contents[:0x1000], initial[:0x1000]) {
		t.Error("Write touched the fd region outside the layout")
	}
	if !bytes.Equal(contents[0x1000:], image[0x1000:]) {
		t.Error("Write did not program the bios region")
	}
	if err = dev.Verify(image); err != nil {
		t.Errorf("Verify failed: %v", err)
	}
}

func TestUnscopedWriteCoversWholeChip(t *testing.T) {
	dev := newDevice(t, dummyflash.Options{})
	image := bytes.Repeat([]byte{0xee}, size)
	if err := dev.Write(image); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if !bytes.Equal(dev.Contents(), image) {
		t.Error("Unscoped write did not cover the whole chip")
	}
}

func TestVerifyDetectsMismatch(t *testing.T) {
	dev := newDevice(t, dummyflash.Options{})
	image := bytes.Repeat([]byte{0xee}, size)
	if err := dev.Verify(image); err == nil {
		t.Error("Verify passed against blank flash")
	}
}

func TestResetAux(t *testing.T) {
	dev := newDevice(t, dummyflash.Options{})
	if dev.CmosCleared() {
		t.Fatal("CMOS cleared before reset")
	}
	if err := dev.ResetAux(); err != nil {
		t.Fatalf("ResetAux failed: %v", err)
	}
	if !dev.CmosCleared() {
		t.Error("CMOS not cleared after reset")
	}
}

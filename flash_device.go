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

// Safe in-place reprogramming of system flash: one-time backup, region-scoped
// write, read-back verification.
package goflashrom

import (
	"io"
)

// Name of the region holding the system firmware. Both the backup and write
// paths restrict the flash layout to this region; a descriptor without it is
// an error, never "write the whole chip".
const RegionBios = "bios"

// DeviceConfig holds per-device settings fixed at construction time.
type DeviceConfig struct {
	// ResetOnComplete requests an auxiliary configuration reset (e.g. CMOS)
	// after a successful, verified firmware write.
	ResetOnComplete bool
}

//go:generate mockgen -destination=mocks/flash_device.go -package=mocks github.com/google/goflashrom FlashDevice
type FlashDevice interface {
	io.Closer
	// Stable identity of the physical flash target. Keys the backup artifact.
	ID() string
	Config() DeviceConfig
	// Total addressable flash size in bytes.
	FlashSize() int
	// Reads the region layout from the live hardware descriptor.
	ReadLayout() (*Layout, error)
	// Scopes subsequent Read/Write/Verify calls to the layout's regions.
	ApplyLayout(layout *Layout) error
	ReleaseLayout()
	// Full-chip operations; buf length must equal FlashSize().
	Read(buf []byte) error
	Write(buf []byte) error
	// Compares current flash contents against buf. Distinct from trusting
	// Write's return value.
	Verify(buf []byte) error
}

// AuxResetter is the optional capability of resetting auxiliary non-volatile
// configuration state (CMOS on PC hardware). Devices constructed with
// ResetOnComplete must implement it.
type AuxResetter interface {
	ResetAux() error
}

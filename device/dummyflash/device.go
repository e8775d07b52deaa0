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

// In-memory flash device for development and integration tests. Models a
// descriptor-partitioned chip with emulated CMOS, honoring layout scoping for
// writes and verification.
package dummyflash

import (
	"bytes"
	"fmt"

	"github.com/google/goflashrom"

	"github.com/golang/glog"
)

// Options configures the emulated chip.
type Options struct {
	// Size of the flash in bytes.
	Size int
	// Regions of the emulated descriptor layout. Defaults to a descriptor
	// sector plus a bios region covering the rest of the chip.
	Regions []goflashrom.Region
	// Initial flash contents; zero-filled when nil.
	Image []byte

	// Fault injection.
	ReadErr   error
	WriteErr  error
	VerifyErr error
}

// Implements goflashrom.FlashDevice and goflashrom.AuxResetter.
type Device struct {
	id     string
	cfg    goflashrom.DeviceConfig
	flash  []byte
	layout *goflashrom.Layout
	active *goflashrom.Layout
	opts   Options

	cmosCleared bool
}

func DefaultRegions(size int) []goflashrom.Region {
	return []goflashrom.Region{
		{Name: "fd", Start: 0, End: 0xfff},
		{Name: goflashrom.RegionBios, Start: 0x1000, End: uint32(size) - 1},
	}
}

func New(id string, cfg goflashrom.DeviceConfig, opts Options) (*Device, error) {
	if opts.Size <= 0 {
		return nil, fmt.Errorf("invalid flash size %d", opts.Size)
	}
	if opts.Regions == nil {
		opts.Regions = DefaultRegions(opts.Size)
	}
	d := &Device{
		id:     id,
		cfg:    cfg,
		flash:  make([]byte, opts.Size),
		layout: goflashrom.NewLayout(opts.Regions),
		opts:   opts,
	}
	if opts.Image != nil {
		if len(opts.Image) != opts.Size {
			return nil, fmt.Errorf("initial image size %d != flash size %d", len(opts.Image), opts.Size)
		}
		copy(d.flash, opts.Image)
	}
	return d, nil
}

func (d *Device) ID() string { return d.id }

func (d *Device) Config() goflashrom.DeviceConfig { return d.cfg }

func (d *Device) FlashSize() int { return len(d.flash) }

func (d *Device) Close() error { return nil }

func (d *Device) ReadLayout() (*goflashrom.Layout, error) {
	return goflashrom.NewLayout(d.layout.Regions()), nil
}

func (d *Device) ApplyLayout(layout *goflashrom.Layout) error {
	d.active = layout
	return nil
}

func (d *Device) ReleaseLayout() {
	d.active = nil
}

// Address spans touched by the current operation: the active layout's
// regions, or the whole chip when no layout is applied.
func (d *Device) spans() []goflashrom.Region {
	if d.active != nil {
		return d.active.Regions()
	}
	return []goflashrom.Region{{Name: "all", Start: 0, End: uint32(len(d.flash)) - 1}}
}

func (d *Device) Read(buf []byte) error {
	if d.opts.ReadErr != nil {
		return d.opts.ReadErr
	}
	if len(buf) != len(d.flash) {
		return fmt.Errorf("read buffer size %d != flash size %d", len(buf), len(d.flash))
	}
	copy(buf, d.flash)
	return nil
}

// Write programs only the bytes inside the active layout's regions, the way
// a layout-scoped flasher leaves excluded regions untouched.
func (d *Device) Write(buf []byte) error {
	if d.opts.WriteErr != nil {
		return d.opts.WriteErr
	}
	if len(buf) != len(d.flash) {
		return fmt.Errorf("image size %d != flash size %d", len(buf), len(d.flash))
	}
	for _, r := range d.spans() {
		glog.V(1).Infof("[dummy-write]: region %v", r)
		copy(d.flash[r.Start:r.End+1], buf[r.Start:r.End+1])
	}
	return nil
}

func (d *Device) Verify(buf []byte) error {
	if d.opts.VerifyErr != nil {
		return d.opts.VerifyErr
	}
	if len(buf) != len(d.flash) {
		return fmt.Errorf("image size %d != flash size %d", len(buf), len(d.flash))
	}
	for _, r := range d.spans() {
		if !bytes.Equal(d.flash[r.Start:r.End+1], buf[r.Start:r.End+1]) {
			return fmt.Errorf("contents differ in region %s", r.Name)
		}
	}
	return nil
}

func (d *Device) ResetAux() error {
	glog.V(1).Info("[dummy-cmos]: reset")
	d.cmosCleared = true
	return nil
}

// Contents exposes the emulated flash for assertions.
func (d *Device) Contents() []byte {
	out := make([]byte, len(d.flash))
	copy(out, d.flash)
	return out
}

// CmosCleared reports whether ResetAux has run.
func (d *Device) CmosCleared() bool {
	return d.cmosCleared
}

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

package serprog_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/google/goflashrom"
	"github.com/google/goflashrom/device/serprog"
)

const simSize = 1 << 16

// fakeProgrammer simulates a serprog programmer wired to a 64KiB SPI chip.
// Commands arrive one frame per Write; responses queue for Read.
type fakeProgrammer struct {
	flash   []byte
	pending bytes.Buffer
	closed  bool
}

func newFakeProgrammer() *fakeProgrammer {
	f := &fakeProgrammer{flash: make([]byte, simSize)}
	// Descriptor: signature, FRBA=0x40, fd [0,0xfff], bios [0x1000,0xffff].
	binary.LittleEndian.PutUint32(f.flash[0x10:], 0x0ff0a55a)
	binary.LittleEndian.PutUint32(f.flash[0x14:], 0x00040000)
	binary.LittleEndian.PutUint32(f.flash[0x40:], 0x00000000)
	binary.LittleEndian.PutUint32(f.flash[0x44:], 0x000f0001)
	for i := 2; i < 5; i++ {
		binary.LittleEndian.PutUint32(f.flash[0x40+4*i:], 0x00007fff)
	}
	return f
}

func (f *fakeProgrammer) Read(p []byte) (int, error) {
	return f.pending.Read(p)
}

func (f *fakeProgrammer) Close() error {
	f.closed = true
	return nil
}

func (f *fakeProgrammer) Write(p []byte) (int, error) {
	const ack, nak = 0x06, 0x15
	switch p[0] {
	case 0x01: // Q_IFACE
		f.pending.Write([]byte{ack, 0x01, 0x00})
	case 0x02: // Q_CMDMAP
		cmdmap := make([]byte, 32)
		cmdmap[0x13>>3] |= 1 << (0x13 & 7) // O_SPIOP only
		f.pending.WriteByte(ack)
		f.pending.Write(cmdmap)
	case 0x12: // S_BUSTYPE
		f.pending.WriteByte(ack)
	case 0x13: // O_SPIOP
		slen := int(p[1]) | int(p[2])<<8 | int(p[3])<<16
		rlen := int(p[4]) | int(p[5])<<8 | int(p[6])<<16
		out := p[7 : 7+slen]
		f.pending.WriteByte(ack)
		f.pending.Write(f.spi(out, rlen))
	default:
		f.pending.WriteByte(nak)
	}
	return len(p), nil
}

func (f *fakeProgrammer) spi(out []byte, rlen int) []byte {
	addr := func() int {
		return int(out[1])<<16 | int(out[2])<<8 | int(out[3])
	}
	switch out[0] {
	case 0x9f: // JEDEC ID: 64KiB chip
		return []byte{0xef, 0x40, 16}
	case 0x05: // status: never busy
		return []byte{0x00}
	case 0x06: // WREN
		return nil
	case 0x03: // read
		a := addr()
		return f.flash[a : a+rlen]
	case 0x20: // 4K sector erase
		a := addr()
		for i := a; i < a+4096; i++ {
			f.flash[i] = 0xff
		}
		return nil
	case 0x02: // page program
		copy(f.flash[addr():], out[4:])
		return nil
	}
	return make([]byte, rlen)
}

func TestProbeReadsGeometry(t *testing.T) {
	dev, err := serprog.NewDeviceDeps(newFakeProgrammer(), "serprog", goflashrom.DeviceConfig{})
	if err != nil {
		t.Fatalf("NewDeviceDeps failed: %v", err)
	}
	defer dev.Close()
	if dev.FlashSize() != simSize {
		t.Errorf("FlashSize = %d, want %d", dev.FlashSize(), simSize)
	}
}

func TestReadLayoutFromDescriptor(t *testing.T) {
	dev, err := serprog.NewDeviceDeps(newFakeProgrammer(), "serprog", goflashrom.DeviceConfig{})
	if err != nil {
		t.Fatalf("NewDeviceDeps failed: %v", err)
	}
	defer dev.Close()

	layout, err := dev.ReadLayout()
	if err != nil {
		t.Fatalf("ReadLayout failed: %v", err)
	}
	bios, err := layout.Restrict(goflashrom.RegionBios)
	if err != nil {
		t.Fatalf("Layout lacks bios region: %v", err)
	}
	r := bios.Regions()[0]
	if r.Start != 0x1000 || r.End != 0xffff {
		t.Errorf("Unexpected bios bounds %v", r)
	}
}

func TestWriteVerifyRoundTrip(t *testing.T) {
	fake := newFakeProgrammer()
	dev, err := serprog.NewDeviceDeps(fake, "serprog", goflashrom.DeviceConfig{})
	if err != nil {
		t.Fatalf("NewDeviceDeps failed: %v", err)
	}
	defer dev.Close()

	descriptor := make([]byte, 0x1000)
	copy(descriptor, fake.flash[:0x1000])

	image := bytes.Repeat([]byte{0xc3}, simSize)
	if err = goflashrom.WriteFirmware(dev, image, nil); err != nil {
		t.Fatalf("WriteFirmware failed: %v", err)
	}
	if !bytes.Equal(fake.flash[0x1000:], image[0x1000:]) {
		t.Error("bios region not programmed")
	}
	// Layout scoping must keep the write out of the descriptor region.
	if !bytes.Equal(fake.flash[:0x1000], descriptor) {
		t.Error("descriptor region modified by bios-scoped write")
	}
}

func TestCloseReleasesTransport(t *testing.T) {
	fake := newFakeProgrammer()
	dev, err := serprog.NewDeviceDeps(fake, "serprog", goflashrom.DeviceConfig{})
	if err != nil {
		t.Fatalf("NewDeviceDeps failed: %v", err)
	}
	dev.Close()
	if !fake.closed {
		t.Error("Transport not closed")
	}
}

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

// SPI flash access through a serprog-protocol programmer on USB bulk
// endpoints. Geometry is probed from the chip's JEDEC ID; the region layout
// comes from the on-flash Intel descriptor.
package serprog

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/google/goflashrom"

	"github.com/golang/glog"
)

// Serprog protocol bytes.
const (
	cmdNop      = 0x00
	cmdQIface   = 0x01
	cmdQCmdMap  = 0x02
	cmdQPgmName = 0x03
	cmdSBusType = 0x12
	cmdOSpiOp   = 0x13

	respAck = 0x06
	respNak = 0x15

	ifaceVersion = 0x01
	busSpi       = 0x08
)

// SPI flash opcodes.
const (
	opPageProgram = 0x02
	opRead        = 0x03
	opReadStatus  = 0x05
	opWriteEnable = 0x06
	opSectorErase = 0x20
	opReadJedecID = 0x9f

	statusBusy = 0x01

	pageSize   = 256
	sectorSize = 4096
	// Bulk read chunk; serprog rlen is 24-bit but a USB transfer this size
	// keeps buffering modest.
	readChunk = 4096
)

// Options selects the programmer hardware.
type Options struct {
	// USB identifiers; default to the stm32-vserprog CDC device.
	VID uint16
	PID uint16
	// Bulk endpoint numbers.
	InEndpoint  int
	OutEndpoint int
}

const (
	defaultVid   = 0x0483
	defaultPid   = 0x5740
	defaultInEp  = 1
	defaultOutEp = 2
)

// Implements goflashrom.FlashDevice. No AuxResetter: an external programmer
// has no path to the target's CMOS.
type Device struct {
	id        string
	cfg       goflashrom.DeviceConfig
	rw        io.ReadWriteCloser
	flashSize int
	cmdmap    [32]byte
	active    *goflashrom.Layout
}

// Open probes a serprog programmer over USB. Takes ownership of the USB
// handles; they are torn down on Close.
func Open(id string, cfg goflashrom.DeviceConfig, opts Options) (*Device, error) {
	if opts.VID == 0 {
		opts.VID = defaultVid
	}
	if opts.PID == 0 {
		opts.PID = defaultPid
	}
	if opts.InEndpoint == 0 {
		opts.InEndpoint = defaultInEp
	}
	if opts.OutEndpoint == 0 {
		opts.OutEndpoint = defaultOutEp
	}
	rw, err := openUsbTransport(opts)
	if err != nil {
		return nil, err
	}
	return NewDeviceDeps(rw, id, cfg)
}

// NewDeviceDeps probes a programmer reachable over rw. Takes ownership of rw:
// the device closes it on Close().
func NewDeviceDeps(rw io.ReadWriteCloser, id string, cfg goflashrom.DeviceConfig) (*Device, error) {
	var err error
	d := &Device{id: id, cfg: cfg, rw: rw}
	if err = d.probe(); err != nil {
		rw.Close()
		return nil, fmt.Errorf("probe failed: %v", err)
	}
	return d, nil
}

// Sends a serprog command and reads the ACK plus resp bytes.
func (d *Device) command(cmd byte, params, resp []byte) error {
	var err error
	glog.V(2).Infof("[serprog]: cmd = 0x%02x, plen = %v, rlen = %v", cmd, len(params), len(resp))
	buf := make([]byte, 0, 1+len(params))
	buf = append(buf, cmd)
	buf = append(buf, params...)
	if _, err = d.rw.Write(buf); err != nil {
		return fmt.Errorf("command 0x%02x write failed: %v", cmd, err)
	}
	ack := make([]byte, 1)
	if _, err = io.ReadFull(d.rw, ack); err != nil {
		return fmt.Errorf("command 0x%02x ack read failed: %v", cmd, err)
	}
	switch ack[0] {
	case respAck:
	case respNak:
		return fmt.Errorf("command 0x%02x refused (NAK)", cmd)
	default:
		return fmt.Errorf("command 0x%02x unknown response 0x%02x", cmd, ack[0])
	}
	if len(resp) > 0 {
		if _, err = io.ReadFull(d.rw, resp); err != nil {
			return fmt.Errorf("command 0x%02x response read failed: %v", cmd, err)
		}
	}
	return nil
}

func (d *Device) supports(cmd byte) bool {
	return d.cmdmap[cmd>>3]&(1<<(cmd&7)) != 0
}

// Runs one SPI operation: sends out, reads inLen bytes back.
func (d *Device) spiOp(out []byte, inLen int) ([]byte, error) {
	params := make([]byte, 6, 6+len(out))
	params[0] = byte(len(out))
	params[1] = byte(len(out) >> 8)
	params[2] = byte(len(out) >> 16)
	params[3] = byte(inLen)
	params[4] = byte(inLen >> 8)
	params[5] = byte(inLen >> 16)
	params = append(params, out...)
	in := make([]byte, inLen)
	if err := d.command(cmdOSpiOp, params, in); err != nil {
		return nil, err
	}
	return in, nil
}

func (d *Device) probe() error {
	var err error
	ver := make([]byte, 2)
	if err = d.command(cmdQIface, nil, ver); err != nil {
		return fmt.Errorf("Q_IFACE failed: %v", err)
	}
	if v := uint16(ver[0]) | uint16(ver[1])<<8; v != ifaceVersion {
		return fmt.Errorf("unsupported serprog interface version %d", v)
	}
	if err = d.command(cmdQCmdMap, nil, d.cmdmap[:]); err != nil {
		return fmt.Errorf("Q_CMDMAP failed: %v", err)
	}
	if !d.supports(cmdOSpiOp) {
		return fmt.Errorf("programmer does not support SPI operations")
	}
	if d.supports(cmdQPgmName) {
		name := make([]byte, 16)
		if err = d.command(cmdQPgmName, nil, name); err != nil {
			return fmt.Errorf("Q_PGMNAME failed: %v", err)
		}
		glog.V(1).Infof("[serprog]: programmer %q", bytes.TrimRight(name, "\x00"))
	}
	if err = d.command(cmdSBusType, []byte{busSpi}, nil); err != nil {
		return fmt.Errorf("S_BUSTYPE failed: %v", err)
	}

	id, err := d.spiOp([]byte{opReadJedecID}, 3)
	if err != nil {
		return fmt.Errorf("JEDEC ID read failed: %v", err)
	}
	// Third ID byte is the log2 capacity on JEDEC-compliant chips.
	if id[2] < 16 || id[2] > 27 {
		return fmt.Errorf("implausible JEDEC capacity byte 0x%02x (id %02x %02x %02x)",
			id[2], id[0], id[1], id[2])
	}
	d.flashSize = 1 << id[2]
	glog.V(1).Infof("[serprog]: chip %02x%02x, %d bytes", id[0], id[1], d.flashSize)
	return nil
}

func (d *Device) ID() string { return d.id }

func (d *Device) Config() goflashrom.DeviceConfig { return d.cfg }

func (d *Device) FlashSize() int { return d.flashSize }

func (d *Device) Close() error {
	return d.rw.Close()
}

func (d *Device) ReadLayout() (*goflashrom.Layout, error) {
	buf := make([]byte, goflashrom.IfdMinBytes)
	if err := d.readAt(0, buf); err != nil {
		return nil, fmt.Errorf("descriptor read failed: %v", err)
	}
	return goflashrom.ParseIFD(buf)
}

func (d *Device) ApplyLayout(layout *goflashrom.Layout) error {
	d.active = layout
	return nil
}

func (d *Device) ReleaseLayout() {
	d.active = nil
}

func spiAddr(addr uint32) []byte {
	return []byte{byte(addr >> 16), byte(addr >> 8), byte(addr)}
}

func (d *Device) readAt(addr uint32, buf []byte) error {
	// Read in chunks.
	for n := 0; n < len(buf); {
		toRead := len(buf) - n
		if toRead > readChunk {
			toRead = readChunk
		}
		out := append([]byte{opRead}, spiAddr(addr)...)
		in, err := d.spiOp(out, toRead)
		if err != nil {
			return fmt.Errorf("read at 0x%x failed: %v", addr, err)
		}
		copy(buf[n:], in)
		n += toRead
		addr += uint32(toRead)
	}
	return nil
}

func (d *Device) Read(buf []byte) error {
	if len(buf) != d.flashSize {
		return fmt.Errorf("read buffer size %d != flash size %d", len(buf), d.flashSize)
	}
	glog.V(1).Infof("[serprog]: reading %d bytes", len(buf))
	return d.readAt(0, buf)
}

func (d *Device) waitReady() error {
	for i := 0; i < 1000; i++ {
		status, err := d.spiOp([]byte{opReadStatus}, 1)
		if err != nil {
			return fmt.Errorf("status read failed: %v", err)
		}
		if status[0]&statusBusy == 0 {
			return nil
		}
		time.Sleep(time.Millisecond)
	}
	return fmt.Errorf("chip stuck busy")
}

func (d *Device) writeEnable() error {
	if _, err := d.spiOp([]byte{opWriteEnable}, 0); err != nil {
		return fmt.Errorf("write enable failed: %v", err)
	}
	return nil
}

// Erases the 4K sector at addr and programs it from image.
func (d *Device) programSector(addr uint32, image []byte) error {
	var err error
	if err = d.writeEnable(); err != nil {
		return err
	}
	if _, err = d.spiOp(append([]byte{opSectorErase}, spiAddr(addr)...), 0); err != nil {
		return fmt.Errorf("erase at 0x%x failed: %v", addr, err)
	}
	if err = d.waitReady(); err != nil {
		return fmt.Errorf("erase at 0x%x: %v", addr, err)
	}
	for off := uint32(0); off < sectorSize; off += pageSize {
		if err = d.writeEnable(); err != nil {
			return err
		}
		out := append([]byte{opPageProgram}, spiAddr(addr+off)...)
		out = append(out, image[addr+off:addr+off+pageSize]...)
		if _, err = d.spiOp(out, 0); err != nil {
			return fmt.Errorf("program at 0x%x failed: %v", addr+off, err)
		}
		if err = d.waitReady(); err != nil {
			return fmt.Errorf("program at 0x%x: %v", addr+off, err)
		}
	}
	return nil
}

// Address spans of the active layout, sector aligned; whole chip when no
// layout is applied.
func (d *Device) spans() []goflashrom.Region {
	if d.active == nil {
		return []goflashrom.Region{{Name: "all", Start: 0, End: uint32(d.flashSize) - 1}}
	}
	regions := d.active.Regions()
	spans := make([]goflashrom.Region, len(regions))
	for i, r := range regions {
		spans[i] = goflashrom.Region{
			Name:  r.Name,
			Start: r.Start &^ (sectorSize - 1),
			End:   r.End | (sectorSize - 1),
		}
	}
	return spans
}

func (d *Device) Write(image []byte) error {
	if len(image) != d.flashSize {
		return fmt.Errorf("image size %d != flash size %d", len(image), d.flashSize)
	}
	for _, span := range d.spans() {
		glog.V(1).Infof("[serprog]: writing %v", span)
		for addr := span.Start; addr < span.End; addr += sectorSize {
			if err := d.programSector(addr, image); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *Device) Verify(image []byte) error {
	if len(image) != d.flashSize {
		return fmt.Errorf("image size %d != flash size %d", len(image), d.flashSize)
	}
	for _, span := range d.spans() {
		glog.V(1).Infof("[serprog]: verifying %v", span)
		buf := make([]byte, span.End-span.Start+1)
		if err := d.readAt(span.Start, buf); err != nil {
			return err
		}
		want := image[span.Start : span.End+1]
		if !bytes.Equal(buf, want) {
			for i := range buf {
				if buf[i] != want[i] {
					return fmt.Errorf("contents differ at 0x%x (got 0x%02x, want 0x%02x)",
						span.Start+uint32(i), buf[i], want[i])
				}
			}
		}
	}
	return nil
}

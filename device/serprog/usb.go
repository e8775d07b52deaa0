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

package serprog

import (
	"encoding/hex"
	"fmt"

	"github.com/golang/glog"
	"github.com/google/gousb"
)

// Encapsulates the programmer's USB resources.
type usbTransport struct {
	ctx       *gousb.Context
	dev       *gousb.Device
	intf      *gousb.Interface
	intf_done func()
	// Bulk output/input data endpoints.
	ep_out *gousb.OutEndpoint
	ep_in  *gousb.InEndpoint
}

func openUsbTransport(opts Options) (*usbTransport, error) {
	t := &usbTransport{}
	t.ctx = gousb.NewContext()

	var err error
	t.dev, err = t.ctx.OpenDeviceWithVIDPID(gousb.ID(opts.VID), gousb.ID(opts.PID))
	if t.dev == nil && err == nil {
		t.Close()
		return nil, fmt.Errorf("serprog device %04x:%04x not found", opts.VID, opts.PID)
	}
	if err != nil {
		t.Close()
		return nil, fmt.Errorf("Opening serprog device: %v", err)
	}

	t.intf, t.intf_done, err = t.dev.DefaultInterface()
	if err != nil {
		t.Close()
		return nil, fmt.Errorf("Claiming default interface: %v", err)
	}

	t.ep_out, err = t.intf.OutEndpoint(opts.OutEndpoint)
	if err != nil {
		t.Close()
		return nil, fmt.Errorf("Opening output endpoint: %v", err)
	}

	t.ep_in, err = t.intf.InEndpoint(opts.InEndpoint)
	if err != nil {
		t.Close()
		return nil, fmt.Errorf("Opening input endpoint: %v", err)
	}

	return t, nil
}

func (t *usbTransport) Read(p []byte) (n int, err error) {
	n, err = t.ep_in.Read(p)
	if glog.V(2) && n > 0 {
		glog.Infof("[usb-bulk IN]: read %d bytes. data:\n%s", n, hex.Dump(p[:min(n, 32)]))
	}
	return n, err
}

func (t *usbTransport) Write(buf []byte) (n int, err error) {
	n, err = t.ep_out.Write(buf)
	if glog.V(2) {
		glog.Infof("[usb-bulk OUT]: wrote %d bytes. data:\n%s", n, hex.Dump(buf[:min(len(buf), 32)]))
	}
	return n, err
}

func (t *usbTransport) Close() error {
	glog.V(1).Infof("Closing USB transport")
	if t.intf_done != nil {
		t.intf_done()
		t.intf_done = nil
	}
	if t.intf != nil {
		t.intf.Close()
		t.intf = nil
	}
	if t.dev != nil {
		t.dev.Close()
		t.dev = nil
	}
	if t.ctx != nil {
		t.ctx.Close()
		t.ctx = nil
	}
	return nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

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

// Updates system firmware on a flash device.
// Takes a one-time backup of the current image, then writes and verifies the
// supplied .bin or .hex image against the bios region.
package main

import (
	"flag"

	"github.com/google/goflashrom"
	"github.com/google/goflashrom/device/dummyflash"
	"github.com/google/goflashrom/device/serprog"
	"github.com/google/goflashrom/util"

	"github.com/golang/glog"
)

var (
	firmwareFile = flag.String("firmware", "", ".bin or .hex firmware image")
	stateDir     = flag.String("state_dir", "/var/lib/goflashrom", "directory holding backup artifacts")
	backend      = flag.String("backend", "serprog", "flash backend: serprog or dummy")
	deviceID     = flag.String("device_id", "flashrom", "stable device identity keying the backup")
	resetCmos    = flag.Bool("reset_cmos", false, "reset CMOS after a verified write")
)

func init() {
	flag.Parse()
}

func openDevice(imageSize int) (goflashrom.FlashDevice, error) {
	cfg := goflashrom.DeviceConfig{ResetOnComplete: *resetCmos}
	switch *backend {
	case "dummy":
		return dummyflash.New(*deviceID, cfg, dummyflash.Options{Size: imageSize})
	default:
		return serprog.Open(*deviceID, cfg, serprog.Options{})
	}
}

func main() {
	var err error
	defer glog.Flush()

	if len(*firmwareFile) == 0 {
		glog.Fatal("Missing --firmware argument")
	}

	image, err := util.LoadFirmwareFile(*firmwareFile)
	if err != nil {
		glog.Fatalf("Failed loading firmware file: %v", err)
	}

	dev, err := openDevice(len(image))
	if err != nil {
		glog.Fatalf("Failed opening %v device: %v", *backend, err)
	}
	defer dev.Close()

	progress := goflashrom.NewProgress(func(r goflashrom.Report) {
		glog.Infof("Phase %v done (%.0f%%)", r.Phase, r.Percent)
	})
	if err = util.UpdateDevice(dev, image, *stateDir, progress); err != nil {
		glog.Fatalf("Failed updating device: %v", err)
	}

	glog.Info("Successfully updated device")
}

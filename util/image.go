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

// Firmware image loading.
package util

import (
	"fmt"
	"os"
	"path"

	"github.com/marcinbor85/gohex"
)

type Segment struct {
	Address uint32
	Data    []byte
}

func LoadIntelHexFile(filename string) (*Segment, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	mem := gohex.NewMemory()
	if err = mem.ParseIntelHex(file); err != nil {
		return nil, err
	}

	segments := mem.GetDataSegments()
	if len(segments) != 1 {
		return nil, fmt.Errorf("Unexpected number of segments (%v)", len(segments))
	}

	return &Segment{segments[0].Address, segments[0].Data}, nil
}

// LoadFirmwareFile loads a whole-chip firmware image from a raw .bin or an
// Intel-Hex .hex file. Hex images must carry a single segment based at 0.
func LoadFirmwareFile(filename string) ([]byte, error) {
	if path.Ext(filename) == ".hex" {
		seg, err := LoadIntelHexFile(filename)
		if err != nil {
			return nil, err
		}
		if seg.Address != 0 {
			return nil, fmt.Errorf("Hex image based at 0x%x, expected 0", seg.Address)
		}
		return seg.Data, nil
	}
	return os.ReadFile(filename)
}

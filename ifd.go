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

// Intel flash descriptor parsing. Hardware-backed devices derive their region
// layout from the descriptor table held in the first flash sectors.
package goflashrom

import (
	"encoding/binary"
	"fmt"

	"github.com/golang/glog"
)

const (
	// Descriptor signature value, found at ifdSigOffset.
	ifdSignature = 0x0ff0a55a
	ifdSigOffset = 0x10
	// FLMAP0 follows the signature.
	ifdMapOffset = 0x14

	// Minimum bytes needed to locate and read the region table.
	IfdMinBytes = 0x1000
)

// Region slots in the FLREG table, in table order. Unused slots are encoded
// with base above limit and are skipped.
var ifdRegionNames = []string{"fd", RegionBios, "me", "gbe", "pd"}

// ParseIFD decodes the region table from the first flash sectors. buf must
// hold at least IfdMinBytes read from address 0.
func ParseIFD(buf []byte) (*Layout, error) {
	if len(buf) < IfdMinBytes {
		return nil, fmt.Errorf("descriptor buffer too short (%d bytes)", len(buf))
	}
	if sig := binary.LittleEndian.Uint32(buf[ifdSigOffset:]); sig != ifdSignature {
		return nil, fmt.Errorf("no descriptor signature at 0x%x (found 0x%08x)", ifdSigOffset, sig)
	}

	flmap0 := binary.LittleEndian.Uint32(buf[ifdMapOffset:])
	frba := (flmap0 >> 16 & 0xff) << 4
	if int(frba)+4*len(ifdRegionNames) > len(buf) {
		return nil, fmt.Errorf("region table at 0x%x out of range", frba)
	}

	var regions []Region
	for i, name := range ifdRegionNames {
		flreg := binary.LittleEndian.Uint32(buf[int(frba)+4*i:])
		base := (flreg & 0x7fff) << 12
		limit := (flreg >> 16 & 0x7fff) << 12
		if base > limit {
			// Slot unused on this platform.
			continue
		}
		r := Region{Name: name, Start: base, End: limit | 0xfff}
		glog.V(1).Infof("[ifd]: region %v", r)
		regions = append(regions, r)
	}
	if len(regions) == 0 {
		return nil, fmt.Errorf("descriptor defines no regions")
	}
	return NewLayout(regions), nil
}

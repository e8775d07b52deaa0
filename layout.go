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

// Flash region layout, derived from the hardware descriptor per operation.
package goflashrom

import (
	"fmt"
)

// Region is a named address range within the flash chip. End is inclusive.
type Region struct {
	Name  string
	Start uint32
	End   uint32
}

func (r Region) String() string {
	return fmt.Sprintf("%s [0x%08x-0x%08x]", r.Name, r.Start, r.End)
}

// Layout is a set of regions partitioning the flash address space. A layout
// is built fresh from the live descriptor for every operation; the descriptor
// is authoritative and cheap to re-read.
type Layout struct {
	regions []Region
}

func NewLayout(regions []Region) *Layout {
	l := &Layout{regions: make([]Region, len(regions))}
	copy(l.regions, regions)
	return l
}

func (l *Layout) Regions() []Region {
	return l.regions
}

// Restrict returns a layout containing exactly the named region. A missing
// name is an error, never an empty layout.
func (l *Layout) Restrict(name string) (*Layout, error) {
	for _, r := range l.regions {
		if r.Name == name {
			return &Layout{regions: []Region{r}}, nil
		}
	}
	return nil, &UnsupportedRegionError{Region: name}
}

// ResolveRegion reads the layout from the device's live descriptor and
// restricts it to the named region. Restricting the write target is a defense
// against touching management-engine or other sensitive regions even though
// a whole-chip image is supplied.
func ResolveRegion(dev FlashDevice, name string) (*Layout, error) {
	layout, err := dev.ReadLayout()
	if err != nil {
		return nil, &DescriptorError{Err: err}
	}
	return layout.Restrict(name)
}

// Copyright 2026 AWOK559
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

// Loads Intel-HEX firmware files and flattens them into raw .bin images
// of the kind the flashing tool consumes.
package util

import (
	"fmt"
	"os"
	"sort"

	"github.com/marcinbor85/gohex"
)

type Segment struct {
	Address uint32
	Data    []byte
}

// LoadIntelHexFile parses filename and returns its data segments sorted
// by address. At least one segment is required.
func LoadIntelHexFile(filename string) ([]Segment, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	mem := gohex.NewMemory()
	if err = mem.ParseIntelHex(file); err != nil {
		return nil, err
	}

	raw := mem.GetDataSegments()
	if len(raw) == 0 {
		return nil, fmt.Errorf("no data segments in %s", filename)
	}
	segments := make([]Segment, len(raw))
	for i, s := range raw {
		segments[i] = Segment{s.Address, s.Data}
	}
	sort.Slice(segments, func(i, j int) bool {
		return segments[i].Address < segments[j].Address
	})
	return segments, nil
}

// WriteBinFile flattens segments into a single binary image at filename.
// The image starts at the first segment's address; gaps between segments
// are filled with 0xff, the erased-flash value.
func WriteBinFile(segments []Segment, filename string) error {
	if len(segments) == 0 {
		return fmt.Errorf("no segments to write")
	}
	base := segments[0].Address
	var image []byte
	for _, s := range segments {
		off := int64(s.Address) - int64(base)
		if off < int64(len(image)) {
			return fmt.Errorf("overlapping segment at %#x", s.Address)
		}
		for int64(len(image)) < off {
			image = append(image, 0xff)
		}
		image = append(image, s.Data...)
	}
	return os.WriteFile(filename, image, 0644)
}

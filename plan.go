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

// Builds the offset-to-file flash plan handed to the external flasher.
// Wrong offsets produce a device that does not boot, so the table below
// is the contract this whole tool exists to get right.
package c5flash

import (
	"fmt"
	"sort"
	"strings"
)

// Flash offsets shared by all supported chips. The bootloader offset is
// chip specific and lives in the ChipProfile.
const (
	OffsetPartitions uint32 = 0x8000
	OffsetOTAData    uint32 = 0xd000
	OffsetApp        uint32 = 0x10000
)

// ChipProfile carries the chip identifier and connection parameters for
// one target variant. Flash geometry fields are passed through to the
// flasher only when non-empty.
type ChipProfile struct {
	Chip             string
	Baud             int
	BootloaderOffset uint32
	FlashMode        string
	FlashFreq        string
	FlashSize        string
}

// Profiles holds the known target variants. Two bootloader offsets have
// been seen in the wild for the C5; neither is canonical, so both ship
// as named profiles and the offset stays overridable.
var Profiles = map[string]ChipProfile{
	"esp32c5": {
		Chip:             "esp32c5",
		Baud:             921600,
		BootloaderOffset: 0x2000,
	},
	"esp32c5-legacy": {
		Chip:             "esp32c5",
		Baud:             921600,
		BootloaderOffset: 0x0,
		FlashMode:        "qio",
		FlashFreq:        "80m",
		FlashSize:        "4MB",
	},
}

// ProfileNames returns the known profile names, sorted.
func ProfileNames() []string {
	names := make([]string, 0, len(Profiles))
	for name := range Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PlanEntry is one image write: file contents at a flash offset.
type PlanEntry struct {
	Offset uint32
	Path   string
}

// FlashPlan is the complete, ordered set of writes plus the connection
// parameters for one flash run. Built once, then only read.
type FlashPlan struct {
	Port    string
	Profile ChipProfile
	Entries []PlanEntry
}

// BuildPlan lays out images at their flash offsets for the given target.
// The entry order matches the offset order: bootloader, partition table,
// OTA data (when present), application.
func BuildPlan(port string, images *ImageSet, profile ChipProfile) (*FlashPlan, error) {
	if images.Bootloader == "" || images.Partitions == "" {
		return nil, fmt.Errorf("bootloader and partition table are both required")
	}
	if images.App == "" {
		return nil, fmt.Errorf("no application image selected")
	}
	plan := &FlashPlan{
		Port:    port,
		Profile: profile,
		Entries: []PlanEntry{
			{profile.BootloaderOffset, images.Bootloader},
			{OffsetPartitions, images.Partitions},
		},
	}
	if images.OTAData != "" {
		plan.Entries = append(plan.Entries, PlanEntry{OffsetOTAData, images.OTAData})
	}
	plan.Entries = append(plan.Entries, PlanEntry{OffsetApp, images.App})
	return plan, nil
}

// EsptoolArgs renders the plan as the argument list for the esptool
// write_flash command.
func (p *FlashPlan) EsptoolArgs() []string {
	args := []string{
		"--chip", p.Profile.Chip,
		"--port", p.Port,
		"--baud", fmt.Sprintf("%d", p.Profile.Baud),
		"--before", "default_reset",
		"--after", "hard_reset",
	}
	if p.Profile.FlashMode != "" {
		args = append(args, "--flash_mode", p.Profile.FlashMode)
	}
	if p.Profile.FlashFreq != "" {
		args = append(args, "--flash_freq", p.Profile.FlashFreq)
	}
	if p.Profile.FlashSize != "" {
		args = append(args, "--flash_size", p.Profile.FlashSize)
	}
	args = append(args, "write_flash", "-z")
	for _, e := range p.Entries {
		args = append(args, fmt.Sprintf("%#x", e.Offset), e.Path)
	}
	return args
}

func (p *FlashPlan) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s @ %s (baud %d)", p.Profile.Chip, p.Port, p.Profile.Baud)
	for _, e := range p.Entries {
		fmt.Fprintf(&b, "\n  %#-8x %s", e.Offset, e.Path)
	}
	return b.String()
}

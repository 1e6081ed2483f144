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

package c5flash_test

import (
	"reflect"
	"testing"

	"github.com/AWOK559/c5flash"
)

var fullSet = &c5flash.ImageSet{
	Bootloader: "bins/bootloader.bin",
	Partitions: "bins/partition-table.bin",
	OTAData:    "bins/ota_data_initial.bin",
	App:        "bins/app.bin",
}

func TestEsptoolArgsFullImageSet(t *testing.T) {
	plan, err := c5flash.BuildPlan("/dev/ttyACM0", fullSet, c5flash.Profiles["esp32c5"])
	if err != nil {
		t.Fatalf("BuildPlan failed: %v", err)
	}
	want := []string{
		"--chip", "esp32c5",
		"--port", "/dev/ttyACM0",
		"--baud", "921600",
		"--before", "default_reset",
		"--after", "hard_reset",
		"write_flash", "-z",
		"0x2000", "bins/bootloader.bin",
		"0x8000", "bins/partition-table.bin",
		"0xd000", "bins/ota_data_initial.bin",
		"0x10000", "bins/app.bin",
	}
	if got := plan.EsptoolArgs(); !reflect.DeepEqual(got, want) {
		t.Errorf("EsptoolArgs mismatch:\n got %v\nwant %v", got, want)
	}
}

func TestEsptoolArgsOmitsAbsentOTAData(t *testing.T) {
	images := *fullSet
	images.OTAData = ""
	plan, err := c5flash.BuildPlan("/dev/ttyACM0", &images, c5flash.Profiles["esp32c5"])
	if err != nil {
		t.Fatalf("BuildPlan failed: %v", err)
	}
	for _, arg := range plan.EsptoolArgs() {
		if arg == "0xd000" {
			t.Errorf("OTA entry present despite absent image")
		}
	}
	if len(plan.Entries) != 3 {
		t.Errorf("Expected 3 entries, got %d", len(plan.Entries))
	}
}

func TestEsptoolArgsLegacyProfileGeometry(t *testing.T) {
	plan, err := c5flash.BuildPlan("/dev/ttyACM0", fullSet, c5flash.Profiles["esp32c5-legacy"])
	if err != nil {
		t.Fatalf("BuildPlan failed: %v", err)
	}
	want := []string{
		"--chip", "esp32c5",
		"--port", "/dev/ttyACM0",
		"--baud", "921600",
		"--before", "default_reset",
		"--after", "hard_reset",
		"--flash_mode", "qio",
		"--flash_freq", "80m",
		"--flash_size", "4MB",
		"write_flash", "-z",
		"0x0", "bins/bootloader.bin",
		"0x8000", "bins/partition-table.bin",
		"0xd000", "bins/ota_data_initial.bin",
		"0x10000", "bins/app.bin",
	}
	if got := plan.EsptoolArgs(); !reflect.DeepEqual(got, want) {
		t.Errorf("EsptoolArgs mismatch:\n got %v\nwant %v", got, want)
	}
}

func TestBuildPlanBootloaderOffsetOverride(t *testing.T) {
	profile := c5flash.Profiles["esp32c5"]
	profile.BootloaderOffset = 0x0
	plan, err := c5flash.BuildPlan("/dev/ttyACM0", fullSet, profile)
	if err != nil {
		t.Fatalf("BuildPlan failed: %v", err)
	}
	if plan.Entries[0].Offset != 0 {
		t.Errorf("Bootloader offset = %#x, want 0x0", plan.Entries[0].Offset)
	}
}

func TestBuildPlanRequiresAllMandatoryImages(t *testing.T) {
	for _, images := range []*c5flash.ImageSet{
		{Partitions: "pt.bin", App: "app.bin"},
		{Bootloader: "bl.bin", App: "app.bin"},
		{Bootloader: "bl.bin", Partitions: "pt.bin"},
	} {
		if _, err := c5flash.BuildPlan("/dev/ttyACM0", images, c5flash.Profiles["esp32c5"]); err == nil {
			t.Errorf("BuildPlan accepted incomplete set %+v", images)
		}
	}
}

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

// Locates the firmware images to flash inside a bins directory.
package c5flash

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AWOK559/c5flash/util"

	"github.com/golang/glog"
)

// Candidate file names per image role, in priority order.
var (
	bootloaderNames = []string{"bootloader.bin"}
	partitionsNames = []string{"partition-table.bin", "partitions.bin"}
	otaDataNames    = []string{"ota_data_initial.bin"}
)

// ErrNoAppImage is returned when no .bin file remains once the named
// roles have been assigned.
var ErrNoAppImage = errors.New("no application firmware .bin file found")

// MissingImageError reports required roles with no matching file.
type MissingImageError struct {
	Roles []string
}

func (e *MissingImageError) Error() string {
	return fmt.Sprintf("missing required image(s): %s", strings.Join(e.Roles, ", "))
}

// ImageSet names the files selected for each flash role. OTAData may be
// empty; the other three are required for a complete flash.
type ImageSet struct {
	Bootloader string
	Partitions string
	OTAData    string
	App        string
}

// findFile returns the first file in dir matching one of names, or "".
func findFile(dir string, names []string) string {
	for _, name := range names {
		matches, err := filepath.Glob(filepath.Join(dir, name))
		if err == nil && len(matches) > 0 {
			return matches[0]
		}
	}
	return ""
}

// ResolveImages assigns the files in dir to flash roles. The bootloader
// and partition-table roles match fixed names; the application image is
// the largest .bin not claimed by a role. If dir holds no loose .bin
// application but exactly one .hex file, that file is converted to a
// .bin alongside it and used instead.
//
// On a *MissingImageError the partially filled ImageSet is returned too,
// so callers can show the operator which roles were found before failing.
func ResolveImages(dir string) (*ImageSet, error) {
	set := &ImageSet{
		Bootloader: findFile(dir, bootloaderNames),
		Partitions: findFile(dir, partitionsNames),
		OTAData:    findFile(dir, otaDataNames),
	}

	app, err := selectAppImage(dir, set)
	if err != nil {
		return nil, err
	}
	set.App = app

	var missing []string
	if set.Bootloader == "" {
		missing = append(missing, "bootloader")
	}
	if set.Partitions == "" {
		missing = append(missing, "partition table")
	}
	if len(missing) > 0 {
		return set, &MissingImageError{Roles: missing}
	}
	return set, nil
}

// selectAppImage picks the largest .bin in dir not already assigned to a
// role. filepath.Glob returns sorted names, so a size tie resolves to
// the lexically first candidate on any fixed directory snapshot.
func selectAppImage(dir string, set *ImageSet) (string, error) {
	allBins, err := filepath.Glob(filepath.Join(dir, "*.bin"))
	if err != nil {
		return "", fmt.Errorf("scanning %s: %v", dir, err)
	}
	assigned := map[string]bool{
		set.Bootloader: true,
		set.Partitions: true,
		set.OTAData:    true,
	}

	var best string
	var bestSize int64 = -1
	for _, f := range allBins {
		if assigned[f] {
			continue
		}
		fi, err := os.Stat(f)
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}
		if fi.Size() > bestSize {
			best, bestSize = f, fi.Size()
		}
	}
	if best != "" {
		return best, nil
	}
	return appImageFromHex(dir)
}

// appImageFromHex converts a lone Intel-HEX application image to .bin.
// More than one .hex is ambiguous and treated as no application image.
func appImageFromHex(dir string) (string, error) {
	hexes, err := filepath.Glob(filepath.Join(dir, "*.hex"))
	if err != nil || len(hexes) != 1 {
		return "", ErrNoAppImage
	}
	hexFile := hexes[0]
	binFile := strings.TrimSuffix(hexFile, ".hex") + ".bin"
	glog.Infof("Converting %s to %s", hexFile, binFile)
	segments, err := util.LoadIntelHexFile(hexFile)
	if err != nil {
		return "", fmt.Errorf("loading %s: %v", hexFile, err)
	}
	if err := util.WriteBinFile(segments, binFile); err != nil {
		return "", fmt.Errorf("writing %s: %v", binFile, err)
	}
	return binFile, nil
}

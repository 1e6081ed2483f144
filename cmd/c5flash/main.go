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

// Flashes an ESP32-C5 over serial. Waits for the device to show up,
// picks the firmware images out of the bins directory, confirms with
// the operator and hands the plan to esptool.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/AWOK559/c5flash"

	"github.com/fatih/color"
	"github.com/golang/glog"
	"golang.org/x/term"
)

var (
	binsDir     = flag.String("bins", "bins", "directory containing the firmware .bin files")
	chip        = flag.String("chip", "esp32c5", "target profile, one of: "+strings.Join(c5flash.ProfileNames(), ", "))
	bootOffset  = flag.String("bootloader_offset", "", "override the bootloader flash offset (e.g. 0x0)")
	baud        = flag.Int("baud", 0, "override the flashing baud rate")
	esptoolPath = flag.String("esptool", "", "esptool executable (default: "+c5flash.DefaultEsptool+" on PATH)")
	waitTimeout = flag.Duration("wait_timeout", 0, "give up waiting for the device after this long (0 waits forever)")
	assumeYes   = flag.Bool("yes", false, "flash without asking for confirmation")
)

const pollInterval = 500 * time.Millisecond

var (
	info   = color.New(color.FgYellow)
	good   = color.New(color.FgGreen)
	bad    = color.New(color.FgRed)
	detail = color.New(color.FgCyan)
	splash = color.New(color.FgMagenta)
)

func init() {
	flag.Parse()
}

func main() {
	code := run()
	glog.Flush()
	os.Exit(code)
}

func run() int {
	if fi, err := os.Stat(*binsDir); err != nil || !fi.IsDir() {
		bad.Printf("Bins directory not found: %s\nPlease create a 'bins' folder with your .bin files.\n", *binsDir)
		return 1
	}

	profile, ok := c5flash.Profiles[*chip]
	if !ok {
		bad.Printf("Unknown chip profile %q (known: %s)\n", *chip, strings.Join(c5flash.ProfileNames(), ", "))
		return 1
	}
	if *baud != 0 {
		profile.Baud = *baud
	}
	if *bootOffset != "" {
		off, err := strconv.ParseUint(*bootOffset, 0, 32)
		if err != nil {
			bad.Printf("Bad bootloader offset %q: %v\n", *bootOffset, err)
			return 1
		}
		profile.BootloaderOffset = uint32(off)
	}

	printSplash()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// The timeout bounds only the wait for the device, never the flash.
	waitCtx := ctx
	if *waitTimeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, *waitTimeout)
		defer cancel()
	}

	lister := c5flash.SerialPortLister{}
	baseline, err := c5flash.SnapshotPorts(lister)
	if err != nil {
		bad.Printf("Listing serial ports: %v\n", err)
		return 1
	}
	info.Printf("Waiting for %s device to be connected...\n", profile.Chip)
	port, err := c5flash.WaitForNewPort(waitCtx, lister, baseline, pollInterval)
	if err != nil {
		bad.Printf("No device detected: %v\n", err)
		return 1
	}
	good.Printf("Detected %s on port: %s\n", profile.Chip, port)

	images, err := c5flash.ResolveImages(*binsDir)
	if errors.Is(err, c5flash.ErrNoAppImage) {
		bad.Printf("No application firmware .bin file found in the %q folder!\n", *binsDir)
		return 1
	}
	if images != nil {
		printSummary(images)
	}
	var missing *c5flash.MissingImageError
	if errors.As(err, &missing) {
		bad.Println("Missing bootloader or partition table. Both are required for a complete flash!")
		return 1
	}
	if err != nil {
		bad.Printf("Resolving firmware images: %v\n", err)
		return 1
	}

	if !*assumeYes {
		prompt := info.Sprintf("Ready to flash these files to %s? (y/N): ", profile.Chip)
		if !c5flash.Confirm(os.Stdin, os.Stdout, prompt) {
			fmt.Println("Aborting.")
			return 0
		}
	}

	info.Printf("Flashing %s with bootloader, partition table, and application...\n", profile.Chip)
	flasher := &c5flash.EsptoolFlasher{Path: *esptoolPath}
	if err := c5flash.Execute(ctx, flasher, port, images, profile); err != nil {
		bad.Printf("Flashing failed: %v\n", err)
		return 1
	}
	good.Println("Flashing complete!")
	return 0
}

func printSummary(images *c5flash.ImageSet) {
	detail.Printf("\nBootloader:   %s\n", orNotFound(images.Bootloader))
	detail.Printf("Partitions:   %s\n", orNotFound(images.Partitions))
	detail.Printf("OTA Data:     %s\n", orNotFound(images.OTAData))
	detail.Printf("App (main):   %s\n\n", orNotFound(images.App))
}

func orNotFound(path string) string {
	if path == "" {
		return "NOT FOUND"
	}
	return path
}

func printSplash() {
	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}
	lines := []string{
		"--  ESP32 C5 Flasher --",
		"By AWOK",
		"Inspired from LordSkeletonMans ESP32 FZEasyFlasher",
		"Shout out to JCMK for the inspiration on setting up the C5",
	}
	fmt.Println()
	for _, line := range lines {
		splash.Println(centered(line, width))
	}
	fmt.Println()
}

func centered(s string, width int) string {
	pad := (width - len(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}

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

package c5flash

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/golang/glog"
)

// DefaultEsptool is the flashing executable looked up on PATH when no
// explicit path is configured.
const DefaultEsptool = "esptool.py"

//go:generate mockgen -destination=mocks/flasher.go -package=mocks github.com/AWOK559/c5flash Flasher
type Flasher interface {
	// Flash writes every entry of the plan to the device. The write is
	// not interruptible once started; cancelling ctx kills the
	// underlying tool and may leave the device partially flashed.
	Flash(ctx context.Context, plan *FlashPlan) error
}

// EsptoolFlasher flashes by running the external esptool program with
// the plan's argument list. esptool owns the serial protocol; this side
// only reports its outcome.
type EsptoolFlasher struct {
	// Path of the esptool executable. Empty means DefaultEsptool.
	Path string
	// Tool output destinations. Empty means the process's own streams.
	Stdout io.Writer
	Stderr io.Writer
}

func (f *EsptoolFlasher) Flash(ctx context.Context, plan *FlashPlan) error {
	name := f.Path
	if name == "" {
		name = DefaultEsptool
	}
	args := plan.EsptoolArgs()
	glog.V(1).Infof("Running %s %s", name, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = f.Stdout
	cmd.Stderr = f.Stderr
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("esptool failed: %w", err)
	}
	return nil
}

// Execute lays out the resolved images for the target and runs the
// flasher on the result. It is the last stage of the pipeline; by the
// time it runs the operator has already confirmed.
func Execute(ctx context.Context, f Flasher, port string, images *ImageSet, profile ChipProfile) error {
	plan, err := BuildPlan(port, images, profile)
	if err != nil {
		return err
	}
	glog.V(1).Infof("Flash plan:\n%s", plan)
	return f.Flash(ctx, plan)
}

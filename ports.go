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

// Detects the target device by watching for a serial port that was not
// present when the program started.
package c5flash

import (
	"context"
	"time"

	"github.com/golang/glog"
	"go.bug.st/serial/enumerator"
)

//go:generate mockgen -destination=mocks/port_lister.go -package=mocks github.com/AWOK559/c5flash PortLister
type PortLister interface {
	// List returns the identifiers of all serial ports currently known
	// to the OS.
	List() ([]string, error)
}

// SerialPortLister enumerates serial ports through the OS serial layer.
type SerialPortLister struct{}

func (SerialPortLister) List() ([]string, error) {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(ports))
	for _, p := range ports {
		names = append(names, p.Name)
	}
	return names, nil
}

// SnapshotPorts takes a baseline snapshot of the currently connected
// ports, to be diffed against later by WaitForNewPort.
func SnapshotPorts(lister PortLister) (map[string]bool, error) {
	names, err := lister.List()
	if err != nil {
		return nil, err
	}
	baseline := make(map[string]bool, len(names))
	for _, name := range names {
		baseline[name] = true
	}
	glog.V(1).Infof("Port baseline: %v", names)
	return baseline, nil
}

// WaitForNewPort polls the port list every interval until a port absent
// from baseline appears, and returns its identifier. If several ports
// appear within one poll, the first reported one is returned. The wait
// has no bound of its own; cancel ctx to stop it.
func WaitForNewPort(ctx context.Context, lister PortLister, baseline map[string]bool, interval time.Duration) (string, error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		names, err := lister.List()
		if err != nil {
			// Enumeration can fail transiently while a device is
			// mid-enumeration; keep polling.
			glog.Warningf("Listing serial ports: %v", err)
		}
		for _, name := range names {
			if !baseline[name] {
				glog.V(1).Infof("New port: %s", name)
				return name, nil
			}
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-ticker.C:
		}
	}
}

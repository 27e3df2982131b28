package platform

import (
	"os"
	"runtime"
)

// simulatorModelEnv is set by the simulator runtime to the identifier of the
// simulated device.
const simulatorModelEnv = "SIMULATOR_MODEL_IDENTIFIER"

// simulatorTarget is true for binaries built for the Intel iOS simulator.
const simulatorTarget = runtime.GOOS == "ios" && runtime.GOARCH == "amd64"

// Host returns a provider over the running operating system. OS version,
// hardware identifier and the simulator flag are read from the host and
// always win; everything the host cannot report (screen, idiom, bundle,
// build versions) comes from base.
func Host(base Snapshot) (*Static, error) {
	s, err := readHost()
	if err != nil {
		return nil, err
	}
	return NewStatic(overlayHost(base, applySimulator(s, os.LookupEnv))), nil
}

// overlayHost applies the host facts on top of base.
func overlayHost(base, host Snapshot) Snapshot {
	return base.Merge(Snapshot{
		OSVersion:  host.OSVersion,
		HardwareID: host.HardwareID,
		Simulator:  host.Simulator,
	})
}

// applySimulator marks s as a simulator snapshot when the build target or the
// simulator runtime say so, and reports the simulated device identifier.
func applySimulator(s Snapshot, lookup func(string) (string, bool)) Snapshot {
	if id, ok := lookup(simulatorModelEnv); ok && id != "" {
		s.Simulator = true
		s.HardwareID = id
	}
	if simulatorTarget {
		s.Simulator = true
	}
	return s
}

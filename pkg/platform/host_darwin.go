//go:build darwin

package platform

import (
	"errors"
	"strings"

	"golang.org/x/sys/unix"
)

// readHost reads kern.osproductversion and hw.machine. On devices hw.machine
// is the model identifier ("iPhone4,1"); on Macs and the simulator it is the
// CPU architecture.
func readHost() (Snapshot, error) {
	osVersion, err := unix.Sysctl("kern.osproductversion")
	if err != nil {
		return Snapshot{}, errors.Join(ErrHostIntrospection, err)
	}

	machine, err := unix.Sysctl("hw.machine")
	if err != nil {
		return Snapshot{}, errors.Join(ErrHostIntrospection, err)
	}

	return Snapshot{
		OSVersion:  strings.TrimSpace(osVersion),
		HardwareID: strings.TrimSpace(machine),
	}, nil
}

package platform

import (
	"github.com/dmitrymomot/devicekit/pkg/config"
)

// EnvPrefix is prepended to every Snapshot variable name, for example
// DEVICEKIT_OS_VERSION or DEVICEKIT_HARDWARE_ID.
const EnvPrefix = "DEVICEKIT_"

// SnapshotFromEnv reads a Snapshot from DEVICEKIT_* variables and the
// optional .env file. The result is cached for the process lifetime.
func SnapshotFromEnv() (Snapshot, error) {
	var s Snapshot
	if err := config.Load(&s, config.WithPrefix(EnvPrefix)); err != nil {
		return Snapshot{}, err
	}
	return s, nil
}

// FromEnv returns a provider over SnapshotFromEnv.
func FromEnv() (*Static, error) {
	s, err := SnapshotFromEnv()
	if err != nil {
		return nil, err
	}
	return NewStatic(s), nil
}

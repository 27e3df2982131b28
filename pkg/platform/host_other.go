//go:build !darwin

package platform

func readHost() (Snapshot, error) {
	return Snapshot{}, ErrUnsupportedPlatform
}

package platform

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"slices"
	"strings"
	"sync"
)

//go:embed profiles/*.yaml
var profileFS embed.FS

// loadProfiles parses every embedded profile once.
var loadProfiles = sync.OnceValues(func() (map[string]Snapshot, error) {
	entries, err := profileFS.ReadDir("profiles")
	if err != nil {
		return nil, fmt.Errorf("reading profiles: %w", err)
	}

	out := make(map[string]Snapshot, len(entries))
	for _, e := range entries {
		name, ok := strings.CutSuffix(e.Name(), ".yaml")
		if !ok {
			continue
		}
		data, err := profileFS.ReadFile(path.Join("profiles", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading profile %q: %w", name, err)
		}
		s, err := Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("profile %q: %w", name, err)
		}
		out[name] = s
	}
	return out, nil
})

// Profile returns the embedded snapshot of a known device, for example
// "iphone-6-plus" or "ipad-mini-2".
func Profile(name string) (Snapshot, error) {
	profiles, err := loadProfiles()
	if err != nil {
		return Snapshot{}, err
	}
	s, ok := profiles[name]
	if !ok {
		return Snapshot{}, fmt.Errorf("%w: %q", ErrProfileNotFound, name)
	}
	return s, nil
}

// Profiles returns the names of all embedded profiles, sorted.
func Profiles() ([]string, error) {
	profiles, err := loadProfiles()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

package platform

import (
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Decode reads a YAML Snapshot. Unknown keys are rejected.
func Decode(r io.Reader) (Snapshot, error) {
	var s Snapshot
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return Snapshot{}, errors.Join(ErrDecodeSnapshot, err)
	}
	return s, nil
}

// LoadFile reads a YAML Snapshot from path.
func LoadFile(path string) (Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return Snapshot{}, errors.Join(ErrDecodeSnapshot, err)
	}
	defer f.Close()

	return Decode(f)
}

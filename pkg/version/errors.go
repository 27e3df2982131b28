package version

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyVersion indicates a blank version string.
	ErrEmptyVersion = errors.New("empty version string")

	// ErrEmptySegment indicates a missing number between dots, as in "7..1".
	ErrEmptySegment = errors.New("empty version segment")

	// ErrNegativeSegment indicates a segment with a leading minus sign.
	ErrNegativeSegment = errors.New("negative version segment")

	// ErrNonNumericSegment indicates a segment that is not a base-10 integer.
	ErrNonNumericSegment = errors.New("non-numeric version segment")

	// ErrTooManySegments indicates more than major, minor and micro.
	ErrTooManySegments = errors.New("too many version segments")

	// ErrSegmentOverflow indicates a segment too large for uint.
	ErrSegmentOverflow = errors.New("version segment out of range")
)

// ParseError describes why a version string was rejected.
// It unwraps to one of the package sentinel errors.
type ParseError struct {
	Input   string
	Segment string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Segment == "" {
		return fmt.Sprintf("version %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("version %q: segment %q: %v", e.Input, e.Segment, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

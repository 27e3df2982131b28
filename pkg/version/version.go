package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// maxSegments is the number of components a version carries: major, minor, micro.
const maxSegments = 3

// Version is a parsed "major.minor.micro" version. The zero value is 0.0.0.
// Versions are comparable: "7" and "7.0.0" parse to the same value.
type Version struct {
	Major uint
	Minor uint
	Micro uint
}

// Ordering is the result of comparing two versions.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	}
	return "Ordering(" + strconv.Itoa(int(o)) + ")"
}

// New returns the version major.minor.micro.
func New(major, minor, micro uint) Version {
	return Version{Major: major, Minor: minor, Micro: micro}
}

// Parse parses a dotted decimal version string. Absent trailing segments
// default to zero. Every present segment must be a non-negative integer.
func Parse(s string) (Version, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Version{}, &ParseError{Input: s, Err: ErrEmptyVersion}
	}

	parts := strings.Split(trimmed, ".")
	if len(parts) > maxSegments {
		return Version{}, &ParseError{Input: s, Err: ErrTooManySegments}
	}

	var nums [maxSegments]uint
	for i, part := range parts {
		n, err := parseSegment(part)
		if err != nil {
			return Version{}, &ParseError{Input: s, Segment: part, Err: err}
		}
		nums[i] = n
	}

	return Version{Major: nums[0], Minor: nums[1], Micro: nums[2]}, nil
}

func parseSegment(part string) (uint, error) {
	if part == "" {
		return 0, ErrEmptySegment
	}
	if part[0] == '-' {
		return 0, ErrNegativeSegment
	}

	n, err := strconv.ParseUint(part, 10, 0)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, ErrSegmentOverflow
		}
		return 0, ErrNonNumericSegment
	}
	return uint(n), nil
}

// MustParse is like Parse but panics on malformed input.
// Use it for compile-time constants only.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// FromPacked decodes a version packed as major*10000 + minor*100 + micro,
// the encoding used by build-time OS version constants.
func FromPacked(packed uint) Version {
	return Version{
		Major: packed / 10000,
		Minor: packed / 100 % 100,
		Micro: packed % 100,
	}
}

// Packed encodes v as major*10000 + minor*100 + micro.
// Minor and micro components above 99 saturate at 99.
func (v Version) Packed() uint {
	return v.Major*10000 + min(v.Minor, 99)*100 + min(v.Micro, 99)
}

// String returns the version as "major.minor.micro", whatever form it was
// parsed from.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Micro)
}

// Equal reports whether v and other have the same numeric components.
func (v Version) Equal(other Version) bool {
	return Compare(v, other) == Equal
}

// Compare orders v against other.
func (v Version) Compare(other Version) Ordering {
	return Compare(v, other)
}

// Compare orders a and b by major, then minor, then micro.
func Compare(a, b Version) Ordering {
	if c := compareUint(a.Major, b.Major); c != Equal {
		return c
	}
	if c := compareUint(a.Minor, b.Minor); c != Equal {
		return c
	}
	return compareUint(a.Micro, b.Micro)
}

// CompareStrings parses both arguments and compares them.
func CompareStrings(a, b string) (Ordering, error) {
	va, err := Parse(a)
	if err != nil {
		return Equal, err
	}
	vb, err := Parse(b)
	if err != nil {
		return Equal, err
	}
	return Compare(va, vb), nil
}

func compareUint(a, b uint) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Equal
	}
}

// IsEqualTo reports whether v equals the version in s.
func (v Version) IsEqualTo(s string) (bool, error) {
	return v.compareTo(s, func(o Ordering) bool { return o == Equal })
}

// IsGreaterThan reports whether v is newer than the version in s.
func (v Version) IsGreaterThan(s string) (bool, error) {
	return v.compareTo(s, func(o Ordering) bool { return o == Greater })
}

// IsGreaterThanOrEqualTo reports whether v is at least the version in s.
func (v Version) IsGreaterThanOrEqualTo(s string) (bool, error) {
	return v.compareTo(s, func(o Ordering) bool { return o != Less })
}

// IsLessThan reports whether v is older than the version in s.
func (v Version) IsLessThan(s string) (bool, error) {
	return v.compareTo(s, func(o Ordering) bool { return o == Less })
}

// IsLessThanOrEqualTo reports whether v is at most the version in s.
func (v Version) IsLessThanOrEqualTo(s string) (bool, error) {
	return v.compareTo(s, func(o Ordering) bool { return o != Greater })
}

func (v Version) compareTo(s string, accept func(Ordering) bool) (bool, error) {
	other, err := Parse(s)
	if err != nil {
		return false, err
	}
	return accept(Compare(v, other)), nil
}

// MarshalText implements encoding.TextMarshaler.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Package screen derives display facts from the scale factor and point size
// reported by the platform.
package screen

import "math"

// Named screen heights in points, measured along the longer side.
const (
	Height3_5Inch = 480
	Height4Inch   = 568
	Height4_7Inch = 667
	Height5_5Inch = 736
)

// tolerance absorbs rounding in reported point sizes.
const tolerance = 1.0

// SizeClass names a known phone screen size.
type SizeClass uint8

const (
	SizeUnknown SizeClass = iota
	Size3_5Inch
	Size4Inch
	Size4_7Inch
	Size5_5Inch
)

func (c SizeClass) String() string {
	switch c {
	case Size3_5Inch:
		return "3.5-inch"
	case Size4Inch:
		return "4-inch"
	case Size4_7Inch:
		return "4.7-inch"
	case Size5_5Inch:
		return "5.5-inch"
	default:
		return "unknown"
	}
}

// Size is a width and height, in points or pixels depending on context.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Longer returns the larger of the two dimensions.
func (s Size) Longer() float64 { return math.Max(s.Width, s.Height) }

// Screen holds the display facts of the main screen.
type Screen struct {
	Scale float64 `json:"scale"`
	// Size is measured in points.
	Size Size `json:"size"`
}

// New returns the screen with the given scale and point dimensions.
func New(scale, width, height float64) Screen {
	return Screen{Scale: scale, Size: Size{Width: width, Height: height}}
}

// Resolution returns the screen size in pixels.
func (s Screen) Resolution() Size {
	return Size{Width: s.Size.Width * s.Scale, Height: s.Size.Height * s.Scale}
}

// IsRetina reports a scale factor of at least 2.
func (s Screen) IsRetina() bool { return s.Scale >= 2 }

// IsRetinaHD reports a scale factor of at least 3, the iPhone 6 Plus density.
func (s Screen) IsRetinaHD() bool { return s.Scale >= 3 }

// Is3_5InchSize reports an iPhone 4S class screen.
func (s Screen) Is3_5InchSize() bool { return s.hasHeight(Height3_5Inch) }

// Is4InchSize reports an iPhone 5/5C/5S class screen.
func (s Screen) Is4InchSize() bool { return s.hasHeight(Height4Inch) }

// Is4_7InchSize reports an iPhone 6 class screen.
func (s Screen) Is4_7InchSize() bool { return s.hasHeight(Height4_7Inch) }

// Is5_5InchSize reports an iPhone 6 Plus class screen.
func (s Screen) Is5_5InchSize() bool { return s.hasHeight(Height5_5Inch) }

// Class returns the named size of the screen, or SizeUnknown.
func (s Screen) Class() SizeClass {
	switch {
	case s.Is3_5InchSize():
		return Size3_5Inch
	case s.Is4InchSize():
		return Size4Inch
	case s.Is4_7InchSize():
		return Size4_7Inch
	case s.Is5_5InchSize():
		return Size5_5Inch
	default:
		return SizeUnknown
	}
}

func (s Screen) hasHeight(points float64) bool {
	return math.Abs(s.Size.Longer()-points) <= tolerance
}

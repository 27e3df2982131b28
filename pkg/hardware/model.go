package hardware

import "strconv"

// Model identifies a known Apple device generation.
type Model uint8

const (
	Unknown Model = iota
	IPodTouch3G
	IPodTouch4G
	IPodTouch5G
	IPhone3Gs
	IPhone4
	IPhone4s
	IPhone5
	IPhone5c
	IPhone5s
	IPhone6
	IPhone6Plus
	IPad1
	IPad2
	IPad3
	IPad4
	IPadAir1
	IPadAir2
	IPadMini1
	IPadMini2
	IPadMini3
	Simulator
)

// modelInfo holds the static facts about each model, indexed by Model.
var modelInfo = [...]struct {
	name string
	slug string
}{
	Unknown:     {name: "Unknown", slug: "unknown"},
	IPodTouch3G: {name: "iPod Touch 3G", slug: "ipod-touch-3g"},
	IPodTouch4G: {name: "iPod Touch 4G", slug: "ipod-touch-4g"},
	IPodTouch5G: {name: "iPod Touch 5G", slug: "ipod-touch-5g"},
	IPhone3Gs:   {name: "iPhone 3GS", slug: "iphone-3gs"},
	IPhone4:     {name: "iPhone 4", slug: "iphone-4"},
	IPhone4s:    {name: "iPhone 4S", slug: "iphone-4s"},
	IPhone5:     {name: "iPhone 5", slug: "iphone-5"},
	IPhone5c:    {name: "iPhone 5C", slug: "iphone-5c"},
	IPhone5s:    {name: "iPhone 5S", slug: "iphone-5s"},
	IPhone6:     {name: "iPhone 6", slug: "iphone-6"},
	IPhone6Plus: {name: "iPhone 6 Plus", slug: "iphone-6-plus"},
	IPad1:       {name: "iPad", slug: "ipad-1"},
	IPad2:       {name: "iPad 2", slug: "ipad-2"},
	IPad3:       {name: "iPad 3", slug: "ipad-3"},
	IPad4:       {name: "iPad 4", slug: "ipad-4"},
	IPadAir1:    {name: "iPad Air", slug: "ipad-air-1"},
	IPadAir2:    {name: "iPad Air 2", slug: "ipad-air-2"},
	IPadMini1:   {name: "iPad Mini", slug: "ipad-mini-1"},
	IPadMini2:   {name: "iPad Mini 2", slug: "ipad-mini-2"},
	IPadMini3:   {name: "iPad Mini 3", slug: "ipad-mini-3"},
	Simulator:   {name: "Simulator", slug: "simulator"},
}

// Models returns every model in declaration order, Unknown first.
func Models() []Model {
	out := make([]Model, 0, len(modelInfo))
	for m := range modelInfo {
		out = append(out, Model(m))
	}
	return out
}

// Valid reports whether m is a declared model.
func (m Model) Valid() bool { return int(m) < len(modelInfo) }

// DisplayName returns the marketing name of m, for example "iPhone 4S".
// Undeclared values are reported as "Unknown".
func DisplayName(m Model) string {
	if !m.Valid() {
		return modelInfo[Unknown].name
	}
	return modelInfo[m].name
}

// String returns the display name.
func (m Model) String() string { return DisplayName(m) }

// Slug returns the stable lowercase identifier used in text encodings, for example "ipad-mini-2".
func (m Model) Slug() string {
	if !m.Valid() {
		return "model(" + strconv.Itoa(int(m)) + ")"
	}
	return modelInfo[m].slug
}

// ParseModel resolves a slug produced by Model.Slug.
func ParseModel(slug string) (Model, error) {
	for m, info := range modelInfo {
		if info.slug == slug {
			return Model(m), nil
		}
	}
	return Unknown, ErrUnknownModel
}

// MarshalText implements encoding.TextMarshaler.
func (m Model) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, ErrUnknownModel
	}
	return []byte(m.Slug()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Model) UnmarshalText(text []byte) error {
	parsed, err := ParseModel(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

package platform

// Idiom is the coarse device family the UI is laid out for.
type Idiom uint8

const (
	IdiomUnspecified Idiom = iota
	IdiomPhone
	IdiomPad
)

func (i Idiom) String() string {
	switch i {
	case IdiomPhone:
		return "phone"
	case IdiomPad:
		return "pad"
	default:
		return "unspecified"
	}
}

// ParseIdiom accepts "phone", "pad", "unspecified" and the empty string.
func ParseIdiom(s string) (Idiom, error) {
	switch s {
	case "phone":
		return IdiomPhone, nil
	case "pad":
		return IdiomPad, nil
	case "", "unspecified":
		return IdiomUnspecified, nil
	}
	return IdiomUnspecified, ErrUnknownIdiom
}

// MarshalText implements encoding.TextMarshaler.
func (i Idiom) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Idiom) UnmarshalText(text []byte) error {
	parsed, err := ParseIdiom(string(text))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

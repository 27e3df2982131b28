package platform

import "errors"

var (
	// ErrUnknownIdiom indicates idiom text other than phone, pad or unspecified.
	ErrUnknownIdiom = errors.New("unknown UI idiom")

	// ErrProfileNotFound indicates a name with no embedded profile.
	ErrProfileNotFound = errors.New("device profile not found")

	// ErrDecodeSnapshot indicates an unreadable or invalid YAML snapshot.
	ErrDecodeSnapshot = errors.New("failed to decode device snapshot")

	// ErrUnsupportedPlatform is returned by Host outside darwin and ios.
	ErrUnsupportedPlatform = errors.New("host introspection is not supported on this platform")

	// ErrHostIntrospection indicates a failed sysctl read.
	ErrHostIntrospection = errors.New("failed to read host facts")
)

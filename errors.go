package devicekit

import "errors"

var (
	// ErrNilProvider is the panic value of New when the provider is nil.
	ErrNilProvider = errors.New("devicekit: nil platform provider")
)

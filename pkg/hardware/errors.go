package hardware

import "errors"

var (
	// ErrUnknownModel indicates a slug or value that names no model.
	ErrUnknownModel = errors.New("unknown hardware model")

	// ErrEmptyIdentifier indicates an empty row key passed to WithIdentifiers.
	ErrEmptyIdentifier = errors.New("empty hardware identifier")
)

package capability

import "errors"

var (
	// ErrNoKit indicates the context passed to a rule carries no devicekit.Kit.
	ErrNoKit = errors.New("no device kit in context")

	// ErrGateNotFound indicates the requested gate was never registered.
	ErrGateNotFound = errors.New("capability gate not found")

	// ErrGateExists indicates a gate with the same name is already registered.
	ErrGateExists = errors.New("capability gate already registered")

	// ErrInvalidGate indicates an empty gate name or a nil rule.
	ErrInvalidGate = errors.New("invalid capability gate")
)

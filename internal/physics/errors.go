package physics

import "errors"

var (
	// ErrMalformedConfig indicates a document that cannot be read as any
	// physics configuration shape.
	ErrMalformedConfig = errors.New("physics: malformed configuration")

	// ErrParameterBounds indicates parameters the spring preview cannot use.
	ErrParameterBounds = errors.New("physics: parameter out of valid bounds")
)

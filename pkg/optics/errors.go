package optics

import "errors"

var (
	ErrUnknownKind     = errors.New("optics: unknown element kind")
	ErrInvalidProperty = errors.New("optics: invalid element property")
)

package controls

import "errors"

var (
	// ErrNotFound reports a query or removal against a name or handle that
	// is not registered.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument reports a bad construction-time binding parameter.
	// Nothing is registered when an add call fails with it.
	ErrInvalidArgument = errors.New("invalid argument")
)

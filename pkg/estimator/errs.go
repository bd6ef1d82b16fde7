package estimator

import "errors"

var (
	// ErrUnsupportedAction indicates that an estimator does not model the requested action.
	ErrUnsupportedAction = errors.New("estimator: unsupported action")

	// ErrUnknownClass indicates that no estimator is registered under the requested class name.
	ErrUnknownClass = errors.New("estimator: unknown class")

	// ErrDuplicateClass indicates that a class name or alias is already registered.
	ErrDuplicateClass = errors.New("estimator: duplicate class")

	// ErrMissingAttribute indicates that a required attribute was not provided.
	ErrMissingAttribute = errors.New("estimator: missing attribute")

	// ErrAttributeType indicates that an attribute could not be converted to the requested type.
	ErrAttributeType = errors.New("estimator: attribute type mismatch")
)

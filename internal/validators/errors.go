package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrInvalidData wraps the field violations reported by the struct
	// validator.
	ErrInvalidData = errors.New("invalid data")

	// ErrMissingDateFields is returned when a one-off task has no taskDate
	// or a recurring task has no recTaskDate.
	ErrMissingDateFields = errors.New("missing date field(s)")

	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
	ErrInvalidDateRange = errors.New("from must not be after to")
)

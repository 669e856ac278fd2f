package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName        = errors.New("name is required")
	ErrEmptyTitle       = errors.New("title is required")
	ErrEmptyDescription = errors.New("description is required")
	ErrEmptyContent     = errors.New("content is required")
	ErrEmptyCategory    = errors.New("category is required")
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrNegativeStock    = errors.New("stock cannot be negative")
	ErrNegativeDuration = errors.New("duration cannot be negative")
	ErrUnknownLevel     = errors.New("unknown tutorial level")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)

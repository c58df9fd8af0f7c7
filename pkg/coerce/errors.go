package coerce

import "errors"

// Every coercion failure wraps exactly one of these sentinels; callers
// classify with errors.Is.
var (
	ErrInvalidType       = errors.New("invalid type")
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidIdentifier = errors.New("invalid identifier")
	ErrInvalidEnumValue  = errors.New("invalid enum value")
	ErrStringLength      = errors.New("string length violation")
	ErrInvalidURL        = errors.New("invalid url")
	ErrInvalidNumber     = errors.New("invalid number")
	ErrInvalidSlug       = errors.New("invalid slug")
)

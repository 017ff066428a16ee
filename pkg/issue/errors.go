package issue

import "errors"

// Issue-specific error types.
var (
	ErrInvalidReference = errors.New("invalid issue reference format, expected owner/repo#number")
)

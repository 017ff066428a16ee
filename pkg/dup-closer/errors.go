package dupcloser

import "errors"

// DupCloser-specific errors.
var (
	ErrUserAborted = errors.New("aborted by user")
)

package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNoRecipients  = errors.New("no recipients found")
	ErrEmptyMessage  = errors.New("message is empty")
	ErrNotAuthorized = errors.New("not authorized")
)

// UnknownUserError reports a plain-text @mention that could not be resolved
// against the workspace directory. Parsing aborts on the first unresolved name;
// partially resolved recipients are discarded.
type UnknownUserError struct {
	Name string
}

func (e *UnknownUserError) Error() string {
	return fmt.Sprintf("unknown user %q", e.Name)
}

package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrCancelled means the user dismissed a prompt. Nothing was changed.
	ErrCancelled = errors.New("cancelled")
	// ErrRuleMismatch means the command belongs to a scoring rule the
	// session is not using.
	ErrRuleMismatch = errors.New("command not available under this scoring rule")

	ErrNotQuickAdjust = errors.New("quick adjust must be +10, +1 or -1")
)

// InputError reports user text that could not be used. The action it belongs
// to is aborted without touching the session.
type InputError struct {
	Input  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %q", e.Reason, e.Input)
}

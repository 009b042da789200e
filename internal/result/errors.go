package result

import (
	"errors"
	"fmt"
)

// ErrEmptyID is the sentinel for components that lack a usable local ID.
var ErrEmptyID = errors.New("component ID is empty")

// ComposeError wraps a composition failure with a human-readable message.
type ComposeError struct {
	Kind error
	Msg  string
}

func (e *ComposeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *ComposeError) Unwrap() error { return e.Kind }

func emptyIDError() error {
	return &ComposeError{
		Kind: ErrEmptyID,
		Msg:  "can not add component with empty ID to results set",
	}
}

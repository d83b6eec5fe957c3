package features

import "fmt"

// ErrInvalidSelection reports a raw input outside the enumerated option
// set or the declared numeric range. Callers should re-prompt rather than
// classify.
type ErrInvalidSelection struct {
	Field  string
	Value  string
	Reason string
}

func (e *ErrInvalidSelection) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}

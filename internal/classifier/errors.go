package classifier

import "fmt"

// ErrModelLoad indicates the model artifact is missing, corrupt, or has the
// wrong shape. It is fatal: a bad artifact will not become valid on retry.
type ErrModelLoad struct {
	Path string
	Err  error
}

func (e *ErrModelLoad) Error() string {
	return fmt.Sprintf("load model %s: %v", e.Path, e.Err)
}

func (e *ErrModelLoad) Unwrap() error { return e.Err }

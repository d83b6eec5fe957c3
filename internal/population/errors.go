package population

import "fmt"

// ErrDatasetLoad indicates the survey dataset is missing or malformed.
type ErrDatasetLoad struct {
	Path string
	Err  error
}

func (e *ErrDatasetLoad) Error() string {
	return fmt.Sprintf("load dataset %s: %v", e.Path, e.Err)
}

func (e *ErrDatasetLoad) Unwrap() error { return e.Err }

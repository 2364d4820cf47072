package snapshot

import "errors"

var (
	// ErrMissingGroup indicates a required group is absent.
	ErrMissingGroup = errors.New("snapshot: missing group")

	// ErrMissingAttribute indicates a required header attribute is absent.
	ErrMissingAttribute = errors.New("snapshot: missing attribute")

	// ErrMissingDataset indicates a required particle dataset is absent.
	ErrMissingDataset = errors.New("snapshot: missing dataset")

	// ErrShape indicates a dataset whose length disagrees with the particle count.
	ErrShape = errors.New("snapshot: dataset shape mismatch")
)

// LoadError wraps a failure with the file it came from.
type LoadError struct {
	Path    string
	Wrapped error
}

func (e *LoadError) Error() string {
	return "load " + e.Path + ": " + e.Wrapped.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Wrapped
}

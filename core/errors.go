package core

import "fmt"

// StorageError is a failed write or read against corpus storage, e.g. a
// unique-name violation on commit or a lost connection.
type StorageError struct {
	Corpus string
	Err    error
}

func (e *StorageError) Error() string {
	if e.Corpus != "" {
		return fmt.Sprintf("storage: corpus %q: %v", e.Corpus, e.Err)
	}

	return fmt.Sprintf("storage: %v", e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NotFoundError is returned when no corpus with the requested name has been
// committed.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("corpus %q not found", e.Name)
}

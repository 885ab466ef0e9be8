package repositories

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a lookup for an order/notification/product id that
// does not exist. Callers check it with errors.Is.
var ErrNotFound = errors.New("not found")

// RepositoryError wraps a failure of the backing store (network,
// constraint, driver). The cause is opaque to callers; they only decide
// whether to surface it or, on best-effort paths, log and move on.
type RepositoryError struct {
	Op  string
	Err error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("repository %s failed: %v", e.Op, e.Err)
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

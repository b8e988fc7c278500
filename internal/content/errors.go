package content

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by Update when the target id does not exist.
	// Point lookups report absence as a nil document, not as this error.
	ErrNotFound = errors.New("document not found")
)

// ValidationError reports a document rejected at the service boundary before
// it ever reaches a store. The store itself is schema-agnostic.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// UniquenessError reports a slug collision within a collection.
type UniquenessError struct {
	Collection string
	Slug       string
}

func (e *UniquenessError) Error() string {
	return fmt.Sprintf("slug %q already used in %s", e.Slug, e.Collection)
}

// PersistenceError wraps a storage-medium failure (file unavailable, quota,
// network). Transient in nature; distinct from configuration problems.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// QueryConfigError reports a missing index on the remote backend. It signals
// a deployment problem rather than a data or transport one, so callers can
// alert instead of retrying.
type QueryConfigError struct {
	Collection string
	Err        error
}

func (e *QueryConfigError) Error() string {
	return fmt.Sprintf("query against %s requires an index that is not deployed: %v", e.Collection, e.Err)
}

func (e *QueryConfigError) Unwrap() error { return e.Err }

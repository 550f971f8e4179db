package sponsor

import (
	"errors"
	"fmt"
)

// Validation failures, detected before any store call. Each maps to one
// distinguishable message in the admin front end.
var (
	// ErrInvalidTier is returned when the requested tier is not in the catalog.
	ErrInvalidTier = errors.New("invalid_tier")

	// ErrInteractiveActorRequired is returned when a private tier is granted
	// from a context without an invoking-actor session.
	ErrInteractiveActorRequired = errors.New("interactive_actor_required")

	// ErrAccountNotResolvable is returned when the input is neither a parseable
	// account id nor a display name known to the directory.
	ErrAccountNotResolvable = errors.New("account_not_resolvable")

	// ErrInvalidArgumentCount is raised by front ends when an operation is
	// invoked with the wrong arity; the facade itself takes typed arguments.
	ErrInvalidArgumentCount = errors.New("invalid_argument_count")
)

// StoreError wraps any persistence fault crossing the facade boundary, so
// callers see one failure kind while the original cause stays available for
// diagnostics via Unwrap.
type StoreError struct {
	Op  string // facade operation: "grant", "revoke", "query", "enumerate"
	Err error
}

func (e *StoreError) Error() string { return fmt.Sprintf("sponsor store unavailable (%s): %v", e.Op, e.Err) }
func (e *StoreError) Unwrap() error { return e.Err }

// IsStoreUnavailable reports whether err is (or wraps) a StoreError.
func IsStoreUnavailable(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}

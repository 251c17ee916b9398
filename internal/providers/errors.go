package providers

import (
	"errors"
	"fmt"
)

// AuthError reports a missing, invalid, or expired credential. The user must
// re-authorize out of band; it is never retried automatically.
type AuthError struct {
	Reason string
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("authentication failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("authentication failed: %s", e.Reason)
}

func (e *AuthError) Unwrap() error { return e.Err }

// AsAuthError attempts to unwrap an error into an AuthError.
func AsAuthError(err error) (*AuthError, bool) {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return authErr, true
	}
	return nil, false
}

// SourceUnavailableError reports a network or upstream failure. The run for
// that season is left incomplete; re-running the pipeline is safe.
type SourceUnavailableError struct {
	Provider string
	Err      error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("%s unavailable: %v", e.Provider, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error { return e.Err }

// IsSourceUnavailable reports whether err carries a SourceUnavailableError.
func IsSourceUnavailable(err error) bool {
	var srcErr *SourceUnavailableError
	return errors.As(err, &srcErr)
}

// MalformedRecordError reports an upstream record the adapter could not
// normalize. Callers log it and skip the record rather than aborting the run.
type MalformedRecordError struct {
	Provider string
	Record   string // what kind of record, e.g. "standing", "roster slot"
	Field    string // the missing or invalid field
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("%s returned malformed %s record: bad field %q", e.Provider, e.Record, e.Field)
}

// IsMalformedRecord reports whether err carries a MalformedRecordError.
func IsMalformedRecord(err error) bool {
	var recErr *MalformedRecordError
	return errors.As(err, &recErr)
}

// Package fault defines the failure taxonomy shared across layers.
//
// Zero results from a lookup is never a fault; callers must be able to tell
// "nothing found" from "the call failed".
package fault

import (
	"errors"
	"fmt"
)

// ValidationError reports malformed or incomplete user input. It is always
// raised before any I/O and is never retried automatically.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// StorageError reports that the durable store could not complete a read or
// write. The in-progress flow is aborted without partial retry.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// LookupError reports a failed call to an external collaborator. Source names
// the collaborator ("directory", "geocode", "sink") so that a caller can tell
// which leg of a multi-call flow failed.
type LookupError struct {
	Source string
	Err    error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s lookup: %v", e.Source, e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }

// PermissionError reports a refused device or caller capability. The flow
// aborts immediately; there is no fallback path.
type PermissionError struct {
	Capability string
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied: %s", e.Capability)
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsStorage(err error) bool {
	var s *StorageError
	return errors.As(err, &s)
}

func IsLookup(err error) bool {
	var l *LookupError
	return errors.As(err, &l)
}

func IsPermission(err error) bool {
	var p *PermissionError
	return errors.As(err, &p)
}

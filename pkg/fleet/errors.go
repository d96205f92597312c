package fleet

import (
	"fmt"
	"strings"
)

// ValidationError is a malformed request payload. Recoverable by the
// caller, reported with the offending field names.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid payload, fields: %s", strings.Join(e.Fields, ", "))
}

// PersistenceError is a failed storage write. Not retried; when the
// alert insert fails after the prediction insert succeeded, the
// prediction row stays behind.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// FanOutError is a failed real-time publish. It is logged and swallowed,
// never surfaced to the HTTP caller.
type FanOutError struct {
	Event string
	Err   error
}

func (e *FanOutError) Error() string {
	return fmt.Sprintf("fan-out %s: %v", e.Event, e.Err)
}

func (e *FanOutError) Unwrap() error {
	return e.Err
}

package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Names of the error taxonomy as reported in ResultError.Name.
const (
	ErrNameValidation = "ValidationError"
	ErrNameConnection = "ConnectionError"
	ErrNameRemote     = "RemoteRejection"
	ErrNameUnknown    = "UnknownError"
)

var (
	ErrAttemptNotFound    = errors.New("distribution attempt not found")
	ErrUnsupportedAction  = errors.New("action not supported by platform")
	ErrMissingCredentials = errors.New("missing platform credentials")
	ErrUnknownPlatform    = errors.New("unsupported platform")
)

// ValidationError is a local pre-flight failure. It never reaches the
// network and always carries at least one reason.
type ValidationError struct {
	Platform Platform
	Reasons  []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s validation failed: %s", e.Platform.DisplayName(), strings.Join(e.Reasons, "; "))
}

// ConnectionError means credentials were rejected or the platform could not
// be reached by the pre-mutation probe.
type ConnectionError struct {
	Platform Platform
	Err      error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to %s: %v", e.Platform.DisplayName(), e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// RemoteError is a rejection returned by a platform API for one request.
type RemoteError struct {
	Platform   Platform
	Step       string
	StatusCode int
	Code       string
	Message    string
}

func (e *RemoteError) Error() string {
	var b strings.Builder
	b.WriteString(e.Platform.DisplayName())
	if e.Step != "" {
		b.WriteString(" ")
		b.WriteString(e.Step)
	}
	b.WriteString(" rejected")
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (status=%d", e.StatusCode)
		if e.Code != "" {
			fmt.Fprintf(&b, " code=%s", e.Code)
		}
		b.WriteString(")")
	} else if e.Code != "" {
		fmt.Fprintf(&b, " (code=%s)", e.Code)
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	return b.String()
}

// CreationError wraps the failure of one creation step together with the
// remote objects created before it. Those objects are left paused on the
// platform; nothing is rolled back.
type CreationError struct {
	Platform Platform
	Step     string
	Created  []RemoteObject
	Err      error
}

func (e *CreationError) Error() string {
	return fmt.Sprintf("%s create %s: %v", e.Platform.DisplayName(), e.Step, e.Err)
}

func (e *CreationError) Unwrap() error { return e.Err }

// Classify maps err onto the taxonomy name reported to callers.
func Classify(err error) string {
	var (
		validationErr *ValidationError
		connErr       *ConnectionError
		remoteErr     *RemoteError
	)
	switch {
	case errors.As(err, &validationErr):
		return ErrNameValidation
	case errors.As(err, &connErr):
		return ErrNameConnection
	case errors.As(err, &remoteErr):
		return ErrNameRemote
	default:
		return ErrNameUnknown
	}
}

package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidProfile is returned when a profile fails validation
	ErrInvalidProfile = errors.New("invalid profile")

	// ErrProfileNotFound is returned when an operation needs a saved profile and there is none
	ErrProfileNotFound = errors.New("profile not found")

	// ErrBrokerNotFound is returned when a broker referenced by a job no longer exists
	ErrBrokerNotFound = errors.New("broker not found")
)

// AutomationErrorKind classifies failures reported by the broker automation engine
type AutomationErrorKind string

const (
	AutomationErrorEngineUnavailable AutomationErrorKind = "engineUnavailable"
	AutomationErrorCircuitOpen       AutomationErrorKind = "circuitOpen"
	AutomationErrorRateLimited       AutomationErrorKind = "rateLimited"
	AutomationErrorTimeout           AutomationErrorKind = "timeout"
	AutomationErrorCaptcha           AutomationErrorKind = "captcha"
	AutomationErrorNoActionFound     AutomationErrorKind = "noActionFound"
	AutomationErrorAction            AutomationErrorKind = "actionFailed"
	AutomationErrorParsing           AutomationErrorKind = "parsingFailed"
	AutomationErrorUnknown           AutomationErrorKind = "unknown"
)

// AutomationError is a failure of a scan or opt-out run.
// It is recorded in history and makes the job retry with backoff.
type AutomationError struct {
	Kind    AutomationErrorKind
	Message string
}

func (e *AutomationError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("automation error: %s", e.Kind)
	}
	return fmt.Sprintf("automation error: %s: %s", e.Kind, e.Message)
}

// NewAutomationError creates an automation error of the given kind
func NewAutomationError(kind AutomationErrorKind, format string, args ...interface{}) *AutomationError {
	return &AutomationError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// AsAutomationError unwraps err into an automation error.
// Any other error is reported as an unknown automation failure.
func AsAutomationError(err error) *AutomationError {
	if err == nil {
		return nil
	}
	var ae *AutomationError
	if errors.As(err, &ae) {
		return ae
	}
	return &AutomationError{Kind: AutomationErrorUnknown, Message: err.Error()}
}

package provider

import (
	"errors"
	"fmt"
)

// Kind classifies a failure for the inbound layer. The set is closed; handlers
// switch on it to shape the response envelope.
type Kind string

const (
	KindInputValidation       Kind = "input-validation-failed"
	KindAuthFailed            Kind = "provider-auth-failed"
	KindBadRequest            Kind = "provider-bad-request"
	KindNotFound              Kind = "provider-not-found"
	KindUnavailable           Kind = "provider-unavailable"
	KindNetwork               Kind = "provider-network"
	KindApplicationError      Kind = "provider-application-error"
	KindEnvelopeMalformed     Kind = "provider-envelope-malformed"
	KindNoSubscription        Kind = "no-subscription-available"
	KindInvalidSubscription   Kind = "invalid-subscription-response"
	KindPersistence           Kind = "persistence-failed"
	KindPostCommitPersistence Kind = "post-commit-persistence-failed"
)

// Error is the typed failure every workflow surfaces. Message preserves the
// provider's own description verbatim when one exists; Payload carries
// correlation identifiers for post-commit reconciliation.
type Error struct {
	Kind    Kind
	Step    string
	Message string
	Payload map[string]any
	cause   error
}

func (e *Error) Error() string {
	if e.Step != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Step, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// NewError builds a taxonomy error for one step.
func NewError(kind Kind, step, message string) *Error {
	return &Error{Kind: kind, Step: step, Message: message}
}

// Wrap attaches a cause to the error and returns it.
func (e *Error) Wrap(cause error) *Error {
	e.cause = cause
	return e
}

// WithPayload attaches reconciliation data and returns the error.
func (e *Error) WithPayload(payload map[string]any) *Error {
	e.Payload = payload
	return e
}

// KindOf extracts the taxonomy kind, or "" for untyped errors.
func KindOf(err error) Kind {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}

// Map classifies the outcome of one outbound call. A transport error maps to
// provider-network; a non-2xx status maps per the taxonomy table. A 2xx
// response maps to nil; envelope-level checks stay with the caller, which
// knows the provider's envelope shape.
func Map(step string, resp *Response, err error) *Error {
	if err != nil {
		return NewError(KindNetwork, step, err.Error()).Wrap(err)
	}

	switch {
	case resp.OK():
		return nil
	case resp.Status == 401 || resp.Status == 403:
		return NewError(KindAuthFailed, step, bodyMessage(resp))
	case resp.Status == 400:
		return NewError(KindBadRequest, step, bodyMessage(resp))
	case resp.Status == 404:
		return NewError(KindNotFound, step, bodyMessage(resp))
	case resp.Status >= 500:
		return NewError(KindUnavailable, step, bodyMessage(resp))
	default:
		return NewError(KindEnvelopeMalformed, step, fmt.Sprintf("unexpected status %d", resp.Status))
	}
}

func bodyMessage(resp *Response) string {
	if len(resp.Body) == 0 {
		return fmt.Sprintf("provider returned status %d", resp.Status)
	}
	return string(resp.Body)
}

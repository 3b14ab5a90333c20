package sqlgen

import (
	"errors"
	"fmt"
)

// Kind is the closed set of ways a submission can fail.
type Kind string

const (
	KindValidation Kind = "validation"
	KindTransport  Kind = "transport"
	KindDecode     Kind = "decode"
	KindSchema     Kind = "schema"
	KindSplit      Kind = "split"
	KindUnknown    Kind = "unknown"
)

// Error carries a user-facing message alongside the underlying cause. Message
// never contains secrets and is safe to render.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) UserMessage() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &Error{Kind: KindValidation, Message: message}
}

func NewTransportError(err error) error {
	return &Error{
		Kind:    KindTransport,
		Message: fmt.Sprintf("Error connecting to the API: %v", err),
		Err:     err,
	}
}

func NewDecodeError(err error) error {
	return &Error{
		Kind:    KindDecode,
		Message: fmt.Sprintf("Error decoding the JSON response: %v", err),
		Err:     err,
	}
}

// NewSchemaError reports a key path that is absent from (or has the wrong
// shape in) the generation response.
func NewSchemaError(key string) error {
	return &Error{
		Kind:    KindSchema,
		Message: fmt.Sprintf("Error reading the JSON response: missing key %q. Check the structure of the API response.", key),
	}
}

func NewSplitError(err error) error {
	return &Error{
		Kind:    KindSplit,
		Message: "Could not generate the SQL code. Check the errors.",
		Err:     err,
	}
}

func NewUnknownError(err error) error {
	return &Error{
		Kind:    KindUnknown,
		Message: fmt.Sprintf("An unexpected error occurred: %v", err),
		Err:     err,
	}
}

// KindOf returns the Kind of err, KindUnknown for foreign errors and "" for nil.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}

	var genErr *Error
	if errors.As(err, &genErr) {
		return genErr.Kind
	}

	return KindUnknown
}

// asError normalizes any error into the taxonomy.
func asError(err error) *Error {
	var genErr *Error
	if errors.As(err, &genErr) {
		return genErr
	}

	return NewUnknownError(err).(*Error)
}

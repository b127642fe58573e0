package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies an operation failure for the GraphQL surface.
type Kind string

const (
	KindNotFound           Kind = "NOT_FOUND"
	KindDuplicate          Kind = "DUPLICATE"
	KindInvalidCredentials Kind = "INVALID_CREDENTIALS"
	KindUnauthenticated    Kind = "UNAUTHENTICATED"
	KindNotAuthorized      Kind = "NOT_AUTHORIZED"
	KindValidation         Kind = "VALIDATION"
	KindInternal           Kind = "INTERNAL"
)

const defaultPublicMessage = "request failed"

// Error is a classified error carried through resolvers to the
// GraphQL response. It implements gqlerrors.ExtendedError so the
// kind surfaces as the "code" extension.
type Error struct {
	Kind    Kind
	Message string
	err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.err
}

// Extensions satisfies gqlerrors.ExtendedError.
func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": string(e.Kind)}
}

// New creates a classified error.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates a classified error with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap classifies an underlying error while keeping it for logs.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, err: err}
}

func NotFound(what string) *Error {
	return Newf(KindNotFound, "%s not found", what)
}

func Duplicate(what string) *Error {
	return Newf(KindDuplicate, "%s already exists", what)
}

func InvalidCredentials() *Error {
	return New(KindInvalidCredentials, "invalid credentials")
}

func Unauthenticated() *Error {
	return New(KindUnauthenticated, "authentication required")
}

func NotAuthorized() *Error {
	return New(KindNotAuthorized, "Not authorized")
}

func Validation(message string) *Error {
	return New(KindValidation, message)
}

// KindOf returns the classification of err, or KindInternal for
// anything that is not a classified error.
func KindOf(err error) Kind {
	var classified *Error
	if stderrors.As(err, &classified) {
		return classified.Kind
	}
	return KindInternal
}

// IsKind reports whether err is classified as kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Sanitize returns err unchanged when it is already classified and
// replaces anything else with a generic internal error so store and
// driver details never leak to API callers.
func Sanitize(err error) *Error {
	if err == nil {
		return nil
	}
	var classified *Error
	if stderrors.As(err, &classified) {
		return classified
	}
	return Wrap(KindInternal, defaultPublicMessage, err)
}

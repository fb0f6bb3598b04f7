package errs

import "errors"

// Kind is the business category of an error. Handlers map it to a status code.
type Kind string

const (
	KindNotFound      Kind = "NOT_FOUND"
	KindInvalidState  Kind = "INVALID_STATE"
	KindConflict      Kind = "CONFLICT"
	KindForbidden     Kind = "FORBIDDEN"
	KindPaymentFailed Kind = "PAYMENT_FAILED"
	KindValidation    Kind = "VALIDATION"
)

type Error struct {
	Kind  Kind
	msg   string
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Message returns the message without the cause chain
func (e *Error) Message() string {
	return e.msg
}

func NotFound(msg string) *Error     { return &Error{Kind: KindNotFound, msg: msg} }
func InvalidState(msg string) *Error { return &Error{Kind: KindInvalidState, msg: msg} }
func Conflict(msg string) *Error     { return &Error{Kind: KindConflict, msg: msg} }
func Forbidden(msg string) *Error    { return &Error{Kind: KindForbidden, msg: msg} }
func Validation(msg string) *Error   { return &Error{Kind: KindValidation, msg: msg} }

func PaymentFailed(cause error, msg string) error {
	return &Error{Kind: KindPaymentFailed, msg: msg, cause: cause}
}

func WrapKind(err error, kind Kind, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, msg: msg, cause: err}
}

// KindOf returns the outermost kind in the chain, or "" for uncategorized errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

var (
	ErrIdempotencyInProgress = Conflict("request with this idempotency key is in progress")
	ErrIdempotencyMismatch   = Conflict("idempotency key reused with different parameters")
	ErrInvalidCursor         = Validation("invalid cursor")
)

package domain

import (
	"errors"
	"fmt"
)

// Kind is the class of failure an error code reports.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindInvalid
	KindRateLimited
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalid:
		return "invalid"
	case KindRateLimited:
		return "rate_limited"
	default:
		return "internal"
	}
}

// DomainError is a failure with a stable code of the form MD-<AREA>-<NNNN>.
// Errors compare equal under errors.Is when their codes match, so copies
// carrying details still match the sentinel they came from.
type DomainError struct {
	Code    string
	Message string
	Details string
	Cause   error

	kind Kind
}

func newError(kind Kind, code, message string) *DomainError {
	return &DomainError{Code: code, Message: message, kind: kind}
}

// NewDomainError creates an error with an unclassified code.
func NewDomainError(code, message string) *DomainError {
	return newError(KindInternal, code, message)
}

func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && e.Code == t.Code
}

// Kind reports the class of the error.
func (e *DomainError) Kind() Kind {
	return e.kind
}

// Text is the message shown to clients: Message plus Details when set.
func (e *DomainError) Text() string {
	if e.Details == "" {
		return e.Message
	}
	return e.Message + ": " + e.Details
}

// WithDetails returns a copy carrying details.
func (e *DomainError) WithDetails(details string) *DomainError {
	c := *e
	c.Details = details
	return &c
}

// WithCause returns a copy wrapping cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	c := *e
	c.Cause = cause
	return &c
}

// IsDomainError reports whether err wraps a DomainError with code.
// An empty code matches any DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if !errors.As(err, &de) {
		return false
	}
	return code == "" || de.Code == code
}

// GetErrorCode returns the code of the DomainError in err, or "".
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// Memo errors.
var (
	ErrMemoNotFound   = newError(KindNotFound, "MD-MEMO-4040", "memo not found")
	ErrMemoValidation = newError(KindInvalid, "MD-MEMO-4001", "memo validation failed")
)

// Argument errors.
var (
	ErrInvalidArgument = newError(KindInvalid, "MD-ARG-1001", "invalid argument")
	ErrMissingArgument = newError(KindInvalid, "MD-ARG-1002", "missing required argument")
)

// System errors.
var (
	ErrBadRequest     = newError(KindInvalid, "MD-SYS-4000", "bad request")
	ErrRateLimited    = newError(KindRateLimited, "MD-SYS-4290", "too many requests")
	ErrInternalServer = newError(KindInternal, "MD-SYS-5000", "internal server error")
)

// MemoNotFound reports a missing memo id.
func MemoNotFound(id int64) *DomainError {
	return ErrMemoNotFound.WithDetails(fmt.Sprintf("id %d", id))
}

package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrServerNotFound         = errors.New("server not found")
	ErrIpAddressAlreadyExists = errors.New("ip address already exists")
)

// Kind is the closed set of failure categories the service reports to its callers.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindConflict
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NOT_FOUND"
	case KindConflict:
		return "BAD_REQUEST"
	case KindInternal:
		return "INTERNAL_ERROR"
	default:
		return "UNKNOWN"
	}
}

type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func NewNotFoundError(message string, cause error) error {
	return &Error{Kind: KindNotFound, Message: message, Cause: cause}
}

func NewConflictError(message string, cause error) error {
	return &Error{Kind: KindConflict, Message: message, Cause: cause}
}

func NewInternalError(message string, cause error) error {
	return &Error{Kind: KindInternal, Message: message, Cause: cause}
}

// KindOf returns the kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// MessageOf returns the user facing message of the first *Error in err's chain.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return ""
}

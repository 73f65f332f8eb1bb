package service

import "errors"

// ErrorKind classifies a service failure so the HTTP layer can pick a status code.
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindDuplicateName
	KindNotFound
	KindConflict
	KindAuth
)

// Error is a recoverable domain failure with a caller-facing message.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

func validationError(msg string) error    { return &Error{Kind: KindValidation, Message: msg} }
func duplicateNameError(msg string) error { return &Error{Kind: KindDuplicateName, Message: msg} }
func notFoundError(msg string) error      { return &Error{Kind: KindNotFound, Message: msg} }
func conflictError(msg string) error      { return &Error{Kind: KindConflict, Message: msg} }
func authError(msg string) error          { return &Error{Kind: KindAuth, Message: msg} }

// Kind extracts the ErrorKind from err, or ok=false if err is not a service Error.
func Kind(err error) (ErrorKind, bool) {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind, true
	}
	return 0, false
}

// IsKind reports whether err is a service Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	k, ok := Kind(err)
	return ok && k == kind
}

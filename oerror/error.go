package oerror

import "fmt"

// Error is a plain message error. Values are compared by identity, so package
// level Errors can be used as sentinels with errors.Is.
type Error struct {
	Err string
}

// New returns an Error with the message formatted from format and args.
func New(format string, args ...any) *Error {
	if len(args) == 0 {
		return &Error{Err: format}
	}
	return &Error{Err: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.Err
}

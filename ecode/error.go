package ecode

import (
	"errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

// Error is a failure tagged with a business code
type Error struct {
	Code    int
	Message string
	Err     error
	Stack   []byte
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error with the given code and message.
func New(code int, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Stack:   goerrors.New(message).Stack(),
	}
}

// Wrap tags err with a code, keeping err reachable through errors.Is/As.
func Wrap(code int, message string, err error) *Error {
	var stack []byte
	if se, ok := err.(*goerrors.Error); ok {
		stack = se.Stack()
	} else if err != nil {
		stack = goerrors.Wrap(err, 1).Stack()
	} else {
		stack = goerrors.New(message).Stack()
	}
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
		Stack:   stack,
	}
}

// CodeOf returns the code of the first *Error in err's chain, or ServerErr
// when there is none.
func CodeOf(err error) int {
	if err == nil {
		return OK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ServerErr
}

// MessageOf returns the message of the first *Error in err's chain.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return Text(ServerErr)
}

// Is reports whether err carries the given code.
func Is(err error, code int) bool {
	return err != nil && CodeOf(err) == code
}

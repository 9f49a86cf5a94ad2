package effects

import (
	"errors"
	"fmt"
)

// Code classifies a rejected generation request.
type Code string

const (
	CodeInvalidDuration Code = "INVALID_DURATION"
	CodeFrameCount      Code = "FRAME_COUNT"
	CodeInvalidStream   Code = "INVALID_STREAM"
	CodeInvalidCanvas   Code = "INVALID_CANVAS"
	CodeUnknownEffect   Code = "UNKNOWN_EFFECT"
)

// Error names the transition and the parameter that was rejected.
type Error struct {
	Code    Code
	Effect  string // effect ID, empty when the effect itself is unknown
	Message string
	Cause   error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Effect != "" {
		msg = e.Effect + ": " + msg
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether err carries the given code anywhere in its chain.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

func newError(code Code, effect string, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Effect:  effect,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

package errors

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// UnknownCode is the code given to errors that carry none
const UnknownCode = 500

// Status is the serialisable part of an Error
type Status struct {
	Code     int               `json:"code,omitempty"`
	Message  string            `json:"message,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Error is a coded error with optional metadata and cause.
//
// Values are immutable: WithCause and WithMetadata return copies, so
// package level sentinels can be shared and compared with Is.
type Error struct {
	Status
	cause error
}

// Error renders "code=.., message=.." followed by the sorted metadata and
// the cause, if any.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("code=")
	b.WriteString(strconv.Itoa(e.Code))
	b.WriteString(", message=")
	b.WriteString(e.Message)

	if len(e.Metadata) > 0 {
		b.WriteString(", metadata={")
		for i, k := range slices.Sorted(maps.Keys(e.Metadata)) {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(k)
			b.WriteByte('=')
			b.WriteString(e.Metadata[k])
		}
		b.WriteByte('}')
	}

	if e.cause != nil {
		b.WriteString(", cause=")
		b.WriteString(e.cause.Error())
	}
	return b.String()
}

// Unwrap returns the cause
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether err is an *Error with the same code and message.
// Metadata and cause are ignored.
func (e *Error) Is(err error) bool {
	var target *Error
	if errors.As(err, &target) {
		return e.Code == target.Code && e.Message == target.Message
	}
	return false
}

// WithCause returns a copy of e with cause attached
func (e *Error) WithCause(cause error) *Error {
	if cause == nil {
		return e
	}
	err := e.clone()
	err.cause = cause
	return err
}

// WithMetadata returns a copy of e with m merged into its metadata
func (e *Error) WithMetadata(m map[string]string) *Error {
	if len(m) == 0 {
		return e
	}
	err := e.clone()
	if err.Metadata == nil {
		err.Metadata = make(map[string]string, len(m))
	}
	maps.Copy(err.Metadata, m)
	return err
}

func (e *Error) clone() *Error {
	return &Error{
		Status: Status{
			Code:     e.Code,
			Message:  e.Message,
			Metadata: maps.Clone(e.Metadata),
		},
		cause: e.cause,
	}
}

// GetCode returns the error code
func (e *Error) GetCode() int {
	return e.Code
}

// GetMessage returns the error message
func (e *Error) GetMessage() string {
	return e.Message
}

// GetMetadata returns a copy of the metadata
func (e *Error) GetMetadata() map[string]string {
	return maps.Clone(e.Metadata)
}

// GetCause returns the cause
func (e *Error) GetCause() error {
	return e.cause
}

// New creates an error. args, if any, format the message.
func New(code int, format string, args ...any) *Error {
	message := format
	if len(args) > 0 {
		message = fmt.Sprintf(format, args...)
	}
	return &Error{Status: Status{Code: code, Message: message}}
}

// Wrap returns a new error caused by err, or nil if err is nil
func Wrap(err error, code int, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return New(code, format, args...).WithCause(err)
}

// FromError returns the first *Error in the chain of err. Other errors are
// converted into an UnknownCode error carrying their text.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return New(UnknownCode, "%v", err)
}

// Code returns the code of err, 0 for nil and UnknownCode for foreign errors
func Code(err error) int {
	if err == nil {
		return 0
	}
	return FromError(err).Code
}

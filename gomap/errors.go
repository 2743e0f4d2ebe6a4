package gomap

import (
	"errors"
	"fmt"
)

var (
	ErrNotABoolean             = errors.New("expected a boolean (`true`, `yes`, `false`, `no`; case insensitive)")
	ErrNotAnInteger            = errors.New("expected an integer")
	ErrNotAnUnsignedInteger    = errors.New("expected an unsigned integer")
	ErrNotAFloatingPointNumber = errors.New("expected a floating point number")
	ErrNotAKeyValuePair        = errors.New("expected a key-value pair (`KEY=VALUE`)")
	ErrTooManyElements         = errors.New("too many elements")
)

// MarshalError represents an error during marshaling.
type MarshalError struct {
	FieldPath string // field path (e.g. "person.address.street")
	Message   string
	Err       error
}

func (e *MarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("marshal error at %s: %s", e.FieldPath, e.message())
	}
	return fmt.Sprintf("marshal error: %s", e.message())
}

func (e *MarshalError) message() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *MarshalError) Unwrap() error {
	return e.Err
}

// UnmarshalError represents an error during unmarshaling.
type UnmarshalError struct {
	FieldPath string
	Message   string
	Err       error
}

func (e *UnmarshalError) Error() string {
	if e.FieldPath != "" {
		return fmt.Sprintf("unmarshal error at %s: %s", e.FieldPath, e.message())
	}
	return fmt.Sprintf("unmarshal error: %s", e.message())
}

func (e *UnmarshalError) message() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *UnmarshalError) Unwrap() error {
	return e.Err
}

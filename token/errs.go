package token

import "errors"

var (
	ErrSeparatorNotFound = errors.New("separator not found")
	ErrNotAnEnum         = errors.New("expected an enum (`VARIANT` or `VARIANT{ARGS}`)")
)

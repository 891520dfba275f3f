package model

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyBound reports a second binding to an exclusive slot
	ErrAlreadyBound = errors.New("slot already bound")

	// ErrNotBound reports an invocation of a slot nobody bound
	ErrNotBound = errors.New("slot not bound")
)

// BindError locates a wiring failure on a named model field
type BindError struct {
	Field string // Field name as declared on the container
	Slot  string // getter, condition, start-condition, handler, ...
	Err   error
}

func (e *BindError) Error() string {
	return fmt.Sprintf("model field %q: %s: %v", e.Field, e.Slot, e.Err)
}

func (e *BindError) Unwrap() error {
	return e.Err
}

func bindErr(field, slot string, err error) error {
	return &BindError{Field: field, Slot: slot, Err: err}
}

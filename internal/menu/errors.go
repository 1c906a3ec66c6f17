package menu

import (
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNotFound        = errors.New("menu not found")
	ErrDishNotFound    = errors.New("dish not found")
	ErrConflict        = errors.New("menu already exists")
	ErrCorruptData     = errors.New("corrupt menu data")
	ErrUnknownCategory = errors.New("unknown category")
)

// ValidationError lists the offending request fields. It matches
// ErrInvalidInput under errors.Is.
type ValidationError struct {
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	msg := e.Reason
	if msg == "" {
		msg = "missing required parameters"
	}
	if len(e.Fields) == 0 {
		return msg
	}
	return msg + ": " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

func missing(fields ...string) error {
	return &ValidationError{Fields: fields}
}

func invalid(field, reason string) error {
	return &ValidationError{Fields: []string{field}, Reason: reason}
}

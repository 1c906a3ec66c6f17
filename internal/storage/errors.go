package storage

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrObjectNotFound = errors.New("object not found")
	ErrInvalidImage   = errors.New("invalid image data")
)

// BridgeError wraps an object storage failure with the operation and key.
type BridgeError struct {
	Op  string
	Key string
	Err error
}

func (e *BridgeError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *BridgeError) Unwrap() error { return e.Err }

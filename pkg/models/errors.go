package models

import (
	"errors"
	"fmt"
)

// NotFoundError indicates that a referenced root or file did not exist at
// the moment of access, either because of bad input or because the
// filesystem changed underneath a running comparison.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("path does not exist: %s", e.Path)
}

// InvalidArgumentError indicates a violated input invariant, such as a
// key-less option set or a file outside its claimed root.
type InvalidArgumentError struct {
	Field   string
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return e.Field + ": " + e.Message
}

// IOError indicates a file that exists but could not be read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsInvalidArgument reports whether err is (or wraps) an InvalidArgumentError.
func IsInvalidArgument(err error) bool {
	var ia *InvalidArgumentError
	return errors.As(err, &ia)
}

// IsIO reports whether err is (or wraps) an IOError.
func IsIO(err error) bool {
	var io *IOError
	return errors.As(err, &io)
}

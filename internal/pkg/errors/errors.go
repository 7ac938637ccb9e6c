package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

/*
 * Error Flow:
 * - The connect package maps HTTP responses from the worker onto the typed errors in this package.
 * - Commands return errors unchanged (wrapped at most); errors.HandleCommon turns typed errors into
 *   ErrorWithSuggestions right before cobra hands them back to main.
 */

var (
	ErrNoContext = fmt.Errorf("context not set")
)

func Wrap(err error, msg string) error {
	return errors.Wrap(err, msg)
}

func Wrapf(err error, fmt string, args ...interface{}) error {
	return errors.Wrapf(err, fmt, args...)
}

func New(msg string) error {
	return errors.New(msg)
}

func Errorf(fmt string, args ...interface{}) error {
	return errors.Errorf(fmt, args...)
}

func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

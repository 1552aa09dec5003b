package uuidgen

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidFormat indicates that the UUID string format is invalid
	ErrInvalidFormat = errors.New("uuidgen: invalid UUID format")

	// ErrInvalidLength indicates that the UUID byte slice has incorrect length
	ErrInvalidLength = errors.New("uuidgen: invalid UUID length (expected 16 bytes)")

	// ErrInvalidVersion indicates that the UUID version is not supported
	ErrInvalidVersion = errors.New("uuidgen: invalid or unsupported UUID version")

	// ErrMissingArgument indicates that a version-specific input was not supplied
	ErrMissingArgument = errors.New("uuidgen: missing required argument")

	// ErrInvalidNamespace indicates that a namespace could not be resolved to a UUID
	ErrInvalidNamespace = errors.New("uuidgen: invalid namespace UUID")

	// ErrInvalidCount indicates a negative repeat count
	ErrInvalidCount = errors.New("uuidgen: count must not be negative")
)

// MissingArgumentError names the inputs a version requires but did not get.
type MissingArgumentError struct {
	Version Version
	Fields  []string
}

func (e *MissingArgumentError) Error() string {
	flags := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		flags[i] = "--" + f
	}
	verb := "is"
	if len(flags) > 1 {
		verb = "are"
	}
	return fmt.Sprintf("%s %s required for UUID version %s", strings.Join(flags, " and "), verb, e.Version)
}

// Is reports ErrMissingArgument as a match.
func (e *MissingArgumentError) Is(target error) bool {
	return target == ErrMissingArgument
}

// InvalidNamespaceError carries the namespace text that failed to resolve.
type InvalidNamespaceError struct {
	Namespace string
	Err       error
}

func (e *InvalidNamespaceError) Error() string {
	return fmt.Sprintf("invalid namespace UUID format %q", e.Namespace)
}

// Is reports ErrInvalidNamespace as a match.
func (e *InvalidNamespaceError) Is(target error) bool {
	return target == ErrInvalidNamespace
}

func (e *InvalidNamespaceError) Unwrap() error {
	return e.Err
}

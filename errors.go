// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package envtree

import (
	"fmt"
)

// MissingVariableError occurs when no environment variable exists at
// the exact composed name of a required leaf and no declared default
// applies. Name is always the deepest offending variable name, so an
// operator can fix the environment directly from the message.
type MissingVariableError struct {
	// Name is the fully composed environment variable name.
	Name string
}

// Error implements the [builtin.error] interface.
func (e MissingVariableError) Error() string {
	return fmt.Sprintf("environment variable %q is not set", e.Name)
}

// CastError occurs when a variable exists at the exact composed name
// but its content does not coerce to the target type.
type CastError struct {
	// Name is the fully composed environment variable name.
	Name string

	// Type is the string form of the target Go type.
	Type string

	Cause error
}

// Error implements the [builtin.error] interface.
func (e CastError) Error() string {
	return fmt.Sprintf("failed to convert environment variable %q to %s: %s", e.Name, e.Type, e.Cause)
}

// Unwrap implements the implicit interface used by [errors.Is] and [errors.As].
func (e CastError) Unwrap() error {
	return e.Cause
}

// UnsupportedTypeError occurs when the resolver is handed a descriptor
// variant it does not recognize. This is a programmer error in the
// schema, not a missing configuration condition, and is never retried
// or defaulted.
type UnsupportedTypeError struct {
	// Type is the string form of the offending type.
	Type string

	// Path is the name prefix at which the type was encountered.
	Path string
}

// Error implements the [builtin.error] interface.
func (e UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported type %q at %q", e.Type, e.Path)
}

// UnknownElementTypeError occurs when a list or optional descriptor is
// missing its element descriptor. Descriptors built with the schema
// package always carry one; this only arises with hand assembled
// descriptors.
type UnknownElementTypeError struct {
	// Path is the name prefix at which the descriptor was encountered.
	Path string
}

// Error implements the [builtin.error] interface.
func (e UnknownElementTypeError) Error() string {
	return fmt.Sprintf("unknown element type at %q", e.Path)
}

// PanicError occurs when resolution panics, which can only happen when
// a hand assembled descriptor disagrees with the Go type it claims to
// describe. The panic is recovered at the [Resolver.ResolveType]
// boundary and returned as a regular error.
type PanicError struct {
	// Value is the recovered panic value.
	Value any
}

// Error implements the [builtin.error] interface.
func (e PanicError) Error() string {
	return fmt.Sprintf("recovered from panic during resolution: %v", e.Value)
}

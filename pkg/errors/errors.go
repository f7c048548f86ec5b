// Copyright 2022-2026 The N42 Authors
// This file is part of the N42 library.
//
// The N42 library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The N42 library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the N42 library. If not, see <http://www.gnu.org/licenses/>.

// Package errors defines the sentinel errors returned at the CLI/IO
// boundary. The core packages (internal/evmasm, internal/cfg) are total and
// never return an error; only cmd/evmcfg's file and argument handling
// surfaces these.
package errors

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

var (
	// ErrBytecodeFileEmpty is returned when an input bytecode file contains
	// no hex digits.
	ErrBytecodeFileEmpty = errors.New("bytecode file is empty")

	// ErrInvalidHex is returned when an input file's contents don't decode
	// as hex.
	ErrInvalidHex = errors.New("input is not valid hex")

	// ErrOutputPathRequired is returned when a subcommand needing an output
	// file was invoked without one.
	ErrOutputPathRequired = errors.New("output path is required")

	// ErrNoSuchBlock describes a block-map lookup for an address with no
	// corresponding block. No function in this module returns it: the
	// resolver routes such lookups to the anywhere sink instead.
	ErrNoSuchBlock = errors.New("no block at that address")
)

// Wrap wraps an error with additional context, carrying a stack trace via
// github.com/pkg/errors.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf wraps an error with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// New returns an error that formats as the given text.
func New(text string) error {
	return errors.New(text)
}

// Errorf formats according to a format specifier and returns the string as
// a value that satisfies error. Unlike Wrap/Wrapf, it supports %w so
// callers can build ad hoc wrap chains without a sentinel.
func Errorf(format string, a ...interface{}) error {
	return fmt.Errorf(format, a...)
}

// SPDX-License-Identifier: MIT
// Package: sortlab/sequence
//
// errors.go — sentinel errors for the sequence package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Generators attach context with %w (method name + offending value).
//   • Generation methods never panic; option constructors may.

package sequence

import (
	"errors"
	"fmt"
)

// ErrNegativeSize indicates a requested sequence length below zero.
var ErrNegativeSize = errors.New("sequence: negative size")

// ErrNegativeSwaps indicates a negative transposition count for AlmostSorted.
var ErrNegativeSwaps = errors.New("sequence: negative swap count")

// ErrUnknownDistribution indicates a distribution label or kind outside the
// closed set {Uniform, ReverseSorted, AlmostSorted}.
var ErrUnknownDistribution = errors.New("sequence: unknown distribution")

// Method names used as error prefixes.
const (
	methodRandom        = "Random"
	methodReverseSorted = "ReverseSorted"
	methodAlmostSorted  = "AlmostSorted"
	methodGenerate      = "Generate"
	methodParse         = "ParseDistribution"
)

// wrapf prefixes a sentinel with method context, preserving errors.Is.
func wrapf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}

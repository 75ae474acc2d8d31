// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bserr defines the numeric error taxonomy shared by every layer
// of the B-spline engine, plus an optional diagnostic sink for 1D-level
// conditions that the top-level tensor-product evaluator swallows.
package bserr

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Category names the semantic error taxonomy. These are not the numeric
// mode-flag codes (those belong to fit validation only; see AxisCode and
// CodeBadMode); Category classifies every error the engine can produce,
// including the ones that never reach a numeric code.
type Category int

const (
	// InvalidArgument covers size/order/mode violations, plus k<1 or a
	// derivative order >= k inside the de Boor evaluator.
	InvalidArgument Category = iota
	// NonMonotoneInput covers abscissae that are not strictly increasing
	// or knots that are not nondecreasing.
	NonMonotoneInput
	// SchoenbergWhitney covers a zero pivot during banded factorization,
	// i.e. some x[i] falls outside the support of b_{i,k}.
	SchoenbergWhitney
	// OutOfDomain covers a 1D query outside the knot span [t[k], t[n+1]].
	// At the top level this is swallowed and reported as a zero return.
	OutOfDomain
	// LeftLimitAtEndpoint covers the interval walk exhausting the knot
	// vector while chasing the left limit at x == t[n+1].
	LeftLimitAtEndpoint
)

func (c Category) String() string {
	switch c {
	case InvalidArgument:
		return "INVALID_ARGUMENT"
	case NonMonotoneInput:
		return "NON_MONOTONE_INPUT"
	case SchoenbergWhitney:
		return "DATA_VIOLATES_SCHOENBERG_WHITNEY"
	case OutOfDomain:
		return "OUT_OF_DOMAIN"
	case LeftLimitAtEndpoint:
		return "LEFT_LIMIT_AT_ENDPOINT"
	}
	return "UNKNOWN"
}

// CodeBadMode is the numeric mode-flag code (§4.9) for an invalid mode
// flag (must be 0 or 1).
const CodeBadMode = 2

// slot offsets within an axis's four-code block (§4.9): bad n, bad k,
// non-increasing abscissae, non-nondecreasing knots.
const (
	SlotBadN = iota
	SlotBadK
	SlotBadAbscissae
	SlotBadKnots
)

// AxisCode returns the numeric validation code (§4.9) for the given
// 1-based axis (1..6) and slot (SlotBadN..SlotBadKnots). Axis 1 uses
// {3,4,5,6}, axis 2 uses {7,8,9,10}, ..., axis 6 uses {23,24,25,26}.
func AxisCode(axis, slot int) int {
	return 3 + (axis-1)*4 + slot
}

// Err is the error type returned by fit/validation failures. Code is the
// numeric mode-flag value (§4.9); it is 0 for errors raised outside the
// "ink" validation path (e.g. a SchoenbergWhitney failure detected deep in
// band.Factorize), in which case only Category is meaningful.
type Err struct {
	Code     int
	Category Category
	cause    error
}

func (e *Err) Error() string {
	return e.cause.Error()
}

// Unwrap exposes the underlying chk.Err-built cause.
func (e *Err) Unwrap() error {
	return e.cause
}

// New builds a categorized error with no numeric code, via chk.Err, the
// same error-construction idiom msolid/auxiliary.go and msolid/dp.go use.
func New(category Category, format string, args ...interface{}) error {
	return &Err{Category: category, cause: chk.Err(format, args...)}
}

// NewCoded builds a categorized, numerically-coded validation error
// (§4.9's fit validation path).
func NewCoded(code int, category Category, format string, args ...interface{}) error {
	return &Err{Code: code, Category: category, cause: chk.Err(format, args...)}
}

// CodeOf extracts the numeric mode-flag code from err, or 0 if err is not
// a *Err (or is nil).
func CodeOf(err error) int {
	if e, ok := err.(*Err); ok {
		return e.Code
	}
	return 0
}

// CategoryOf extracts the Category from err, defaulting to InvalidArgument
// for errors not produced by this package.
func CategoryOf(err error) Category {
	if e, ok := err.(*Err); ok {
		return e.Category
	}
	return InvalidArgument
}

// Sink is the optional diagnostic sink §7 recommends for surfacing
// 1D-level conditions (OUT_OF_DOMAIN, LEFT_LIMIT_AT_ENDPOINT) that never
// fail an evaluate call observably. It is silent unless Enabled, mirroring
// gosl/chk.Verbose.
type Sink struct {
	Enabled bool
}

// DefaultSink is the package-wide convenience sink; disabled by default.
var DefaultSink = &Sink{}

// Log records a diagnostic line when the sink is enabled. It never
// affects control flow: callers swallow the underlying condition and move
// on regardless of whether logging is enabled.
func (s *Sink) Log(category Category, format string, args ...interface{}) {
	if s == nil || !s.Enabled {
		return
	}
	io.Pfyel("[bspline] %s: "+format+"\n", append([]interface{}{category.String()}, args...)...)
}

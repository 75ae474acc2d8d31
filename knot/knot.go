// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package knot implements knot-interval search (§4.1) and default knot
// selection (§4.5) for one spline axis. Both operate on plain 0-based
// Go slices; the spec's 1-based index arithmetic is translated once here
// and never leaks into callers.
package knot

import (
	"github.com/cpmech/gobspline/bserr"
)

// Status describes where a query falls relative to the knot span scanned
// by Locate.
type Status int

const (
	// InRange means xt[ileft] <= x < xt[ileft+1].
	InRange Status = iota
	// BelowRange means x < xt[0].
	BelowRange
	// AboveRange means x >= xt[len(xt)-1].
	AboveRange
)

// Hint is the caller-owned interval-search hint (§3 "Interval hint"). The
// zero value starts the first search unhinted; Reset restores it cheaply
// at any time with no semantic effect beyond losing locality.
type Hint struct {
	ilo int
}

// NewHint returns a freshly initialized hint.
func NewHint() *Hint { return &Hint{} }

// Reset restores h to its freshly-initialized state.
func (h *Hint) Reset() { h.ilo = 0 }

// Locate finds ileft such that xt[ileft] <= x < xt[ileft+1], galloping out
// from the caller-owned hint h and then binary-searching the bracketed
// range (§4.1). h is updated to the returned ileft so that a subsequent
// call starting near x is amortized O(1).
//
// When x < xt[0], Locate returns (0, BelowRange). When x >= xt[L-1], it
// returns (L-2, AboveRange) — the last valid bracket index. Ties among
// duplicate knots equal to x resolve to the largest such index.
func Locate(xt []float64, x float64, h *Hint) (ileft int, status Status) {
	L := len(xt)
	if L < 2 {
		panic("knot: Locate requires a knot vector of length >= 2")
	}
	if x < xt[0] {
		h.ilo = 0
		return 0, BelowRange
	}
	if x >= xt[L-1] {
		h.ilo = L - 2
		return L - 2, AboveRange
	}

	lo, hi := 0, L-2
	i := h.ilo
	if i < lo || i > hi {
		i = lo
	}
	if xt[i] <= x && x < xt[i+1] {
		h.ilo = i
		return i, InRange
	}

	if x >= xt[i+1] {
		step := 1
		for i+step <= hi && xt[i+step] <= x {
			i += step
			step *= 2
		}
		lo = i
		hi = min(i+step, hi)
	} else {
		step := 1
		for i-step >= lo && xt[i-step] > x {
			i -= step
			step *= 2
		}
		hi = i
		lo = max(i-step, lo)
	}

	for lo < hi {
		mid := (lo + hi + 1) / 2
		if xt[mid] <= x {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	h.ilo = lo
	return lo, InRange
}

// rightShift is the constant endpoint shift of §4.5: kept literal, not
// exposed as a tunable, for bit-for-bit compatibility (see DESIGN.md).
const rightShift = 0.1

// Default generates the default knot vector for abscissae x (length
// n >= 3, strictly increasing) and order k (2 <= k < n), following the
// de Boor "not-a-knot" construction of §4.5: k-fold endpoint knots, and
// interior knots at abscissae (k even) or abscissa midpoints (k odd).
func Default(x []float64, k int) ([]float64, error) {
	n := len(x)
	if n < 3 {
		return nil, bserr.New(bserr.InvalidArgument, "knot: need at least 3 abscissae, got %d", n)
	}
	if k < 2 || k >= n {
		return nil, bserr.New(bserr.InvalidArgument, "knot: order k=%d must satisfy 2 <= k < n=%d", k, n)
	}
	for i := 1; i < n; i++ {
		if x[i] <= x[i-1] {
			return nil, bserr.New(bserr.NonMonotoneInput, "knot: abscissae must be strictly increasing (x[%d]=%v <= x[%d]=%v)", i, x[i], i-1, x[i-1])
		}
	}

	t := make([]float64, n+k)
	for i := 0; i < k; i++ {
		t[i] = x[0]
	}
	shift := rightShift * (x[n-1] - x[n-2])
	for i := 0; i < k; i++ {
		t[n+i] = x[n-1] + shift
	}

	if k%2 == 1 {
		ioff := (k-1)/2 - k
		for m := k; m < n; m++ {
			t[m] = 0.5 * (x[m+ioff] + x[m+ioff+1])
		}
	} else {
		ioff := k/2 - k
		for m := k; m < n; m++ {
			t[m] = x[m+ioff]
		}
	}
	return t, nil
}

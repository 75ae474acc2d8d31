// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package deboor builds 1D B-spline interpolation coefficients from
// sampled values (§4.4) and evaluates a 1D B-spline, or any of its
// derivatives, at a query point via the de Boor recurrence (§4.6). Both
// operations are the single-axis primitives the tensor-product fit and
// evaluate sweeps apply one axis at a time.
package deboor

import (
	"github.com/cpmech/gobspline/band"
	"github.com/cpmech/gobspline/basis"
	"github.com/cpmech/gobspline/bserr"
	"github.com/cpmech/gobspline/knot"
)

// Coefficients builds the banded collocation matrix A[i,j] = b_{j,k}(x[i])
// for abscissae x and knots t (order k, satisfying the
// Schoenberg-Whitney condition), factorizes it once, and back-substitutes
// each of the nf right-hand sides in f (shape [n][nf]) to produce the
// coefficient matrix, shaped [nf][n] — transposed relative to f so that a
// downstream axis sweep reads each right-hand side as a contiguous row
// (§4.4).
func Coefficients(x, t []float64, k int, f [][]float64) ([][]float64, error) {
	n := len(x)
	if n < 1 {
		return nil, bserr.New(bserr.InvalidArgument, "deboor: need at least one abscissa")
	}
	if len(t) != n+k {
		return nil, bserr.New(bserr.InvalidArgument, "deboor: knot vector length %d != n+k=%d", len(t), n+k)
	}
	if len(f) != n {
		return nil, bserr.New(bserr.InvalidArgument, "deboor: value matrix has %d rows, want %d", len(f), n)
	}
	nf := 0
	if n > 0 {
		nf = len(f[0])
	}

	A := band.NewMatrix(n, k-1, k-1)
	h := knot.NewHint()
	st := basis.NewState(k)
	for i := 0; i < n; i++ {
		left, status := knot.Locate(t, x[i], h)
		if status != knot.InRange {
			return nil, bserr.New(bserr.SchoenbergWhitney, "deboor: x[%d]=%v lies outside the knot span", i, x[i])
		}
		vals, err := basis.Eval(t, left, x[i], k, basis.Fresh, st)
		if err != nil {
			return nil, err
		}
		base := left - k + 1
		for jj, v := range vals {
			A.Set(i, base+jj, v)
		}
	}
	if err := A.Factorize(); err != nil {
		return nil, err
	}

	bcoef := make([][]float64, nf)
	rhs := make([]float64, n)
	for c := 0; c < nf; c++ {
		for i := 0; i < n; i++ {
			rhs[i] = f[i][c]
		}
		if err := A.Solve(rhs); err != nil {
			return nil, err
		}
		row := make([]float64, n)
		copy(row, rhs)
		bcoef[c] = row
	}
	return bcoef, nil
}

// Eval returns the d-th derivative of the 1D B-spline (t, a, n, k) at x
// (§4.6). x must lie in [t[k-1], t[n]] (0-based; the spec's
// [t[k], t[n+1]] 1-based domain). Right-limit values are returned in the
// interior; at x == t[n] the left limit is returned. h is the
// caller-owned interval hint threaded through knot.Locate.
func Eval(t, a []float64, n, k, d int, x float64, h *knot.Hint) (float64, error) {
	if k < 1 {
		return 0, bserr.New(bserr.InvalidArgument, "deboor: order k=%d must be >= 1", k)
	}
	if d < 0 || d >= k {
		return 0, bserr.New(bserr.InvalidArgument, "deboor: derivative order d=%d must be in [0,%d)", d, k)
	}
	lo, hi := t[k-1], t[n]
	if x < lo || x > hi {
		return 0, bserr.New(bserr.OutOfDomain, "deboor: x=%v outside domain [%v,%v]", x, lo, hi)
	}

	i0, status := knot.Locate(t, x, h)
	if status == knot.AboveRange {
		i0 = len(t) - 2
	}
	if x == hi {
		for i0 > k-1 && t[i0] == t[i0+1] {
			i0--
		}
		if t[i0] == t[i0+1] {
			bserr.DefaultSink.Log(bserr.LeftLimitAtEndpoint, "no strict interior interval at x=%v", x)
			return 0, bserr.New(bserr.LeftLimitAtEndpoint, "deboor: left limit at endpoint x=%v collapses to k", x)
		}
	}

	// aj, dp and dm are kept 1-indexed (index 0 unused) to mirror §4.6's
	// 1-based indexing; a single length-3k buffer would also work but
	// three named slices read more clearly against the spec.
	aj := make([]float64, k+1)
	for m := 1; m <= k; m++ {
		aj[m] = a[i0-k+m]
	}
	dp := make([]float64, k)
	dm := make([]float64, k)
	for j := 1; j <= k-1; j++ {
		dp[j] = t[i0+j] - x
		dm[j] = x - t[i0+1-j]
	}

	for j := 1; j <= d; j++ {
		kmj := k - j
		fkmj := float64(kmj)
		for jj := 1; jj <= kmj; jj++ {
			aj[jj] = (aj[jj+1] - aj[jj]) * fkmj / (t[i0+jj] - t[i0+jj-kmj])
		}
	}

	for j := d + 1; j <= k-1; j++ {
		kmj := k - j
		ilo := kmj
		for jj := 1; jj <= kmj; jj++ {
			aj[jj] = (aj[jj+1]*dm[ilo] + aj[jj]*dp[jj]) / (dm[ilo] + dp[jj])
			ilo--
		}
	}

	return aj[1], nil
}

// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package band factorizes and solves banded, totally positive linear
// systems without pivoting (§4.3). The B-spline collocation matrix built
// by package deboor satisfies total positivity under the
// Schoenberg-Whitney condition, so pivoting is unnecessary and
// deliberately omitted here.
package band

import (
	"github.com/cpmech/gobspline/bserr"
	"github.com/cpmech/gosl/la"
)

// Matrix stores a banded matrix of order N with Nl subdiagonals and Nu
// superdiagonals in the diagonal-by-diagonal layout of §4.3: entry
// A[row,col] lives at AB[Nu+row-col][col]. Each row of AB holds one
// diagonal, stored contiguously along the column index.
type Matrix struct {
	N, Nl, Nu int
	AB        [][]float64 // (Nl+Nu+1) x N
}

// NewMatrix allocates a zeroed banded matrix of order n with nl
// subdiagonals and nu superdiagonals, using the same la.MatAlloc
// workspace-allocation idiom the teacher uses for scratch tensors.
func NewMatrix(n, nl, nu int) *Matrix {
	return &Matrix{N: n, Nl: nl, Nu: nu, AB: la.MatAlloc(nl+nu+1, n)}
}

func (m *Matrix) inBand(row, col int) bool {
	d := row - col
	return d >= -m.Nu && d <= m.Nl
}

// Get returns A[row,col], or 0 if that entry lies outside the band.
func (m *Matrix) Get(row, col int) float64 {
	if !m.inBand(row, col) {
		return 0
	}
	return m.AB[m.Nu+row-col][col]
}

// Set assigns A[row,col]. It panics if (row,col) lies outside the band:
// banded LU without pivoting never introduces fill-in, so a write outside
// the original band signals a caller bug, not a runtime condition.
func (m *Matrix) Set(row, col int, v float64) {
	if !m.inBand(row, col) {
		panic("band: write outside band structure")
	}
	m.AB[m.Nu+row-col][col] = v
}

// Add accumulates v into A[row,col].
func (m *Matrix) Add(row, col int, v float64) {
	m.Set(row, col, m.Get(row, col)+v)
}

// Factorize performs in-place banded LU without pivoting. The unit lower
// multipliers overwrite the sub-diagonal band entries they eliminate; the
// upper-triangular factor overwrites the diagonal and super-diagonal band
// entries. It fails with a SchoenbergWhitney error iff some diagonal pivot
// vanishes during elimination.
func (m *Matrix) Factorize() error {
	n := m.N
	if n <= 0 || m.Nl < 0 || m.Nu < 0 {
		return bserr.New(bserr.InvalidArgument, "band: invalid matrix dimensions n=%d nl=%d nu=%d", n, m.Nl, m.Nu)
	}

	// degenerate fast path: purely upper-triangular (no sub-diagonals),
	// nothing to eliminate.
	if m.Nl == 0 {
		for k := 0; k < n; k++ {
			if m.Get(k, k) == 0 {
				return bserr.New(bserr.SchoenbergWhitney, "band: zero pivot at row %d", k)
			}
		}
		return nil
	}

	for k := 0; k < n; k++ {
		piv := m.Get(k, k)
		if piv == 0 {
			return bserr.New(bserr.SchoenbergWhitney, "band: zero pivot at row %d", k)
		}
		iMax := min(k+m.Nl, n-1)
		jMax := min(k+m.Nu, n-1)
		for i := k + 1; i <= iMax; i++ {
			aik := m.Get(i, k)
			if aik == 0 {
				continue
			}
			factor := aik / piv
			m.Set(i, k, factor)
			for j := k + 1; j <= jMax; j++ {
				akj := m.Get(k, j)
				if akj == 0 {
					continue
				}
				m.Set(i, j, m.Get(i, j)-factor*akj)
			}
		}
	}
	return nil
}

// Solve overwrites b (length N) with the solution of Ax=b, via
// forward-substitution on L then back-substitution on U, each walking
// only within the band.
func (m *Matrix) Solve(b []float64) error {
	n := m.N
	if len(b) != n {
		return bserr.New(bserr.InvalidArgument, "band: rhs length %d does not match matrix order %d", len(b), n)
	}

	// degenerate fast path: purely lower-triangular (no super-diagonals).
	if m.Nu == 0 {
		if m.Nl > 0 {
			for k := 0; k < n; k++ {
				iMax := min(k+m.Nl, n-1)
				for i := k + 1; i <= iMax; i++ {
					factor := m.Get(i, k)
					if factor != 0 {
						b[i] -= factor * b[k]
					}
				}
			}
		}
		for k := 0; k < n; k++ {
			b[k] /= m.Get(k, k)
		}
		return nil
	}

	// forward substitution: Ly = b
	if m.Nl > 0 {
		for k := 0; k < n; k++ {
			iMax := min(k+m.Nl, n-1)
			for i := k + 1; i <= iMax; i++ {
				factor := m.Get(i, k)
				if factor != 0 {
					b[i] -= factor * b[k]
				}
			}
		}
	}

	// back substitution: Ux = y
	for k := n - 1; k >= 0; k-- {
		jMax := min(k+m.Nu, n-1)
		sum := b[k]
		for j := k + 1; j <= jMax; j++ {
			akj := m.Get(k, j)
			if akj != 0 {
				sum -= akj * b[j]
			}
		}
		b[k] = sum / m.Get(k, k)
	}
	return nil
}

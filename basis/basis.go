// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package basis evaluates the (up to kmax) nonzero B-spline basis values
// at a point via the Cox-de Boor recurrence (§4.2).
package basis

import "github.com/cpmech/gobspline/bserr"

// Mode selects whether Eval starts the recurrence fresh or continues it
// from a previously reached degree using State's preserved buffers.
type Mode int

const (
	// Fresh starts the recurrence from degree 1.
	Fresh Mode = 1
	// Continue resumes the recurrence at the degree State last reached.
	Continue Mode = 2
)

// State holds the scratch buffers for one basis evaluation: the k nonzero
// basis values plus the two parallel difference buffers that Eval reuses
// across a Continue call, avoiding redundant subtractions (§4.2).
type State struct {
	Values []float64 // biatx[0..k-1]: the k nonzero basis values, low-order index first
	deltaR []float64 // t[ileft+j] - x, 1-indexed by j (deltaR[0] unused)
	deltaL []float64 // x - t[ileft-j+1], 1-indexed by j (deltaL[0] unused)
	degree int       // highest degree (0..kmax-1) reached so far; -1 before any Fresh call
	kmax   int
}

// NewState allocates a State sized for basis evaluations up to order
// kmax.
func NewState(kmax int) *State {
	return &State{
		Values: make([]float64, kmax),
		deltaR: make([]float64, kmax),
		deltaL: make([]float64, kmax),
		degree: -1,
		kmax:   kmax,
	}
}

// Eval computes the k basis values b_{ileft-k+1,k}(x) .. b_{ileft,k}(x)
// nonzero at x, where t[ileft] <= x <= t[ileft+1] and k is the order
// (degree k-1). mode Fresh starts from the indicator function; mode
// Continue resumes the recurrence at s.degree+1, reusing s.Values,
// s.deltaR and s.deltaL from a prior lower-order call on the same
// (t, ileft, x).
//
// Results are left in s.Values[0:k]; the same slice is returned for
// convenience.
func Eval(t []float64, ileft int, x float64, k int, mode Mode, s *State) ([]float64, error) {
	if k < 1 || k > s.kmax {
		return nil, bserr.New(bserr.InvalidArgument, "basis: order k=%d out of range [1,%d]", k, s.kmax)
	}
	if x < t[ileft] || x > t[ileft+1] {
		return nil, bserr.New(bserr.InvalidArgument, "basis: x=%v outside [t[%d],t[%d]]=[%v,%v]", x, ileft, ileft+1, t[ileft], t[ileft+1])
	}

	start := 1
	switch mode {
	case Fresh:
		s.Values[0] = 1.0
		s.degree = 0
	case Continue:
		if s.degree < 0 {
			return nil, bserr.New(bserr.InvalidArgument, "basis: Continue requires a prior Fresh call on this state")
		}
		start = s.degree + 1
	default:
		return nil, bserr.New(bserr.InvalidArgument, "basis: mode must be Fresh(1) or Continue(2), got %d", mode)
	}

	for j := start; j < k; j++ {
		s.deltaR[j] = t[ileft+j] - x
		s.deltaL[j] = x - t[ileft+1-j]
		saved := 0.0
		for r := 0; r < j; r++ {
			denom := s.deltaR[r+1] + s.deltaL[j-r]
			var term float64
			if denom != 0 {
				term = s.Values[r] / denom
			}
			s.Values[r] = saved + s.deltaR[r+1]*term
			saved = s.deltaL[j-r] * term
		}
		s.Values[j] = saved
	}
	s.degree = k - 1
	return s.Values[:k], nil
}

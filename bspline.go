// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bspline implements tensor-product B-spline interpolation of
// scalar-valued functions sampled on a regular rectilinear grid, for
// dimensionality d in 2..6. FitND/EvalND are the single generic core
// (§9); Fit2..Fit6 and Eval2..Eval6 are thin named wrappers over it, one
// per dimensionality, matching the library's ten public entry points
// (§6).
package bspline

import (
	"github.com/cpmech/gobspline/bserr"
	"github.com/cpmech/gobspline/deboor"
	"github.com/cpmech/gobspline/knot"
)

// AxisInfo is the per-axis knot/order data retained on a Spline between
// fit and evaluate (§3 "Spline representation").
type AxisInfo struct {
	N, K  int
	Knots []float64
}

// EvalState bundles the caller-owned per-axis interval hints evaluate
// needs for locality (§4.1, §4.6). A fresh EvalState always starts
// unhinted; Reset restores every axis hint without otherwise affecting
// the spline. This is the caller-owned replacement for the teacher-era
// "process-wide retained hint" pattern called out in §5/§9: a Spline
// owns one EvalState sized to its own axis count for the common
// single-threaded case (see Spline.Eval), while concurrent callers can
// construct additional independent states with NewEvalState and drive
// evaluation through EvalND/Spline.EvalWithState instead.
type EvalState struct {
	hints []*knot.Hint
}

// NewEvalState allocates an EvalState for a spline of the given
// dimensionality.
func NewEvalState(naxes int) *EvalState {
	hints := make([]*knot.Hint, naxes)
	for i := range hints {
		hints[i] = knot.NewHint()
	}
	return &EvalState{hints: hints}
}

// Reset restores every axis hint in s to its freshly-initialized state.
func (s *EvalState) Reset() {
	for _, h := range s.hints {
		h.Reset()
	}
}

// Spline is the immutable bundle fit produces and evaluate consumes
// (§3). Axes and Bcoef must not be mutated between fit and evaluate;
// doing so invalidates evaluation.
type Spline struct {
	Axes  []AxisInfo
	Bcoef *Tensor
	state *EvalState
}

// FitND fits a d-dimensional tensor-product B-spline (§4.7) to fcn, one
// axis sweep at a time. fcn must have shape (axes[0].N(),...,axes[d-1].N());
// the returned Spline's Bcoef has the same shape. FitND tolerates fcn
// being the same Tensor the caller intends to keep using afterwards as
// "the samples": it never mutates fcn, always sweeping into freshly
// allocated buffers (§5 alias safety), so passing the very same *Tensor
// as both "samples" and a later "coefficients" slot is safe by
// construction — there is no in-place variant to misuse.
func FitND(mode Mode, axes []Axis, fcn *Tensor) (*Spline, error) {
	if err := validate(mode, axes); err != nil {
		return nil, err
	}
	d := len(axes)
	shape := make([]int, d)
	for i, a := range axes {
		shape[i] = len(a.X)
	}
	if len(fcn.Shape) != d {
		return nil, bserr.New(bserr.InvalidArgument, "bspline: sample array has rank %d, want %d", len(fcn.Shape), d)
	}
	for i := range shape {
		if fcn.Shape[i] != shape[i] {
			return nil, bserr.New(bserr.InvalidArgument, "bspline: sample array shape[%d]=%d != n=%d", i, fcn.Shape[i], shape[i])
		}
	}

	axisInfo := make([]AxisInfo, d)
	for i, a := range axes {
		var t []float64
		if mode == UserKnots {
			t = append([]float64{}, a.Knots...)
		} else {
			generated, err := knot.Default(a.X, a.K)
			if err != nil {
				return nil, err
			}
			t = generated
		}
		axisInfo[i] = AxisInfo{N: len(a.X), K: a.K, Knots: t}
	}

	// two-buffer cyclic-rotation sweep (§4.7): data always holds a
	// tensor whose leading dimension is the axis about to be processed.
	// Each sweep turns that axis's n sample values into n coefficients
	// (same count, new basis) and cycles the axis order left by one, so
	// after d sweeps every axis has been processed and the original
	// axis order is restored.
	curShape := append([]int{}, shape...)
	data := append([]float64{}, fcn.Data...)
	for axis := 0; axis < d; axis++ {
		nActive := curShape[0]
		nf := product(curShape[1:])
		f := make([][]float64, nActive)
		for i := 0; i < nActive; i++ {
			f[i] = data[i*nf : (i+1)*nf]
		}
		rows, err := deboor.Coefficients(axes[axis].X, axisInfo[axis].Knots, axes[axis].K, f)
		if err != nil {
			return nil, err
		}
		newData := make([]float64, nActive*nf)
		for c := 0; c < nf; c++ {
			copy(newData[c*nActive:(c+1)*nActive], rows[c])
		}
		data = newData
		curShape = append(append([]int{}, curShape[1:]...), nActive)
	}

	bcoef := &Tensor{Shape: shape, Data: data, strides: strides(shape)}
	return &Spline{Axes: axisInfo, Bcoef: bcoef, state: NewEvalState(d)}, nil
}

// Eval evaluates the spline (or a mixed partial derivative thereof) at
// query point x, using sp's own bundled EvalState (§9's recommended
// default for single-threaded callers).
func (sp *Spline) Eval(x []float64, derivs []int) float64 {
	return EvalND(sp.Axes, sp.Bcoef, x, derivs, sp.state)
}

// EvalWithState evaluates sp at x using an explicitly supplied EvalState,
// for callers that need independent hint state per goroutine (§5).
func (sp *Spline) EvalWithState(x []float64, derivs []int, state *EvalState) float64 {
	return EvalND(sp.Axes, sp.Bcoef, x, derivs, state)
}

// Derivative is a convenience over Eval that fixes every derivative order
// to zero except axis, which uses the given order.
func (sp *Spline) Derivative(x []float64, axis, order int) float64 {
	derivs := make([]int, len(sp.Axes))
	derivs[axis] = order
	return sp.Eval(x, derivs)
}

// EvalND reduces the d-dimensional coefficient array bcoef to a scalar at
// query point x with derivative orders derivs, via the collapse strategy
// of §4.8: dimension by dimension from axis 0 to axis d-1, a rank-r
// tensor is reduced to rank r-1 by a single 1D de Boor evaluation per
// remaining grid line. Returns 0 for any out-of-domain query or internal
// left-limit condition, without otherwise signaling failure (§7) — the
// 1D-level conditions are still surfaced through bserr.DefaultSink for
// diagnostic builds.
func EvalND(axes []AxisInfo, bcoef *Tensor, x []float64, derivs []int, state *EvalState) float64 {
	d := len(axes)
	lefts := make([]int, d)
	for a := 0; a < d; a++ {
		t := axes[a].Knots
		k := axes[a].K
		lo, hi := t[0], t[len(t)-1]
		if x[a] < lo || x[a] > hi {
			bserr.DefaultSink.Log(bserr.OutOfDomain, "axis %d query %v outside knot span [%v,%v]", a, x[a], lo, hi)
			return 0
		}
		left, status := knot.Locate(t, x[a], state.hints[a])
		if status == knot.AboveRange {
			// x[a] sits exactly at the right endpoint (§4.6): walk back
			// over the duplicated endpoint knots to the bracket of the
			// last non-degenerate interval, the same left-limit walk
			// deboor.Eval performs internally when it owns the full knot
			// vector directly (axis 0 never needs this here because it
			// always goes through deboor.Eval on the full vector below).
			for left > k-1 && t[left] == t[left+1] {
				left--
			}
			if t[left] == t[left+1] {
				bserr.DefaultSink.Log(bserr.LeftLimitAtEndpoint, "axis %d: no strict interior interval at x=%v", a, x[a])
				return 0
			}
		}
		lefts[a] = left
	}

	// Fill T_1: walk the axis-0 slice of bcoef at every combination of
	// the remaining axes' k_a local offsets, evaluating axis 0 directly
	// against the full coefficient vector and full knots.
	dims := make([]int, d-1)
	for a := 1; a < d; a++ {
		dims[a-1] = axes[a].K
	}
	cur := NewTensor(dims)
	n0 := axes[0].N
	vec := make([]float64, n0)
	globalIdx := make([]int, d)
	idx := make([]int, len(dims))
	for {
		for a := 1; a < d; a++ {
			k := axes[a].K
			globalIdx[a] = lefts[a] - k + 1 + idx[a-1]
		}
		for i0 := 0; i0 < n0; i0++ {
			globalIdx[0] = i0
			vec[i0] = bcoef.At(globalIdx)
		}
		val, err := deboor.Eval(axes[0].Knots, vec, n0, axes[0].K, derivs[0], x[0], state.hints[0])
		if err != nil {
			bserr.DefaultSink.Log(bserr.CategoryOf(err), "axis 0 evaluate failed: %v", err)
			return 0
		}
		cur.Set(idx, val)
		if !nextIndex(idx, dims) {
			break
		}
	}

	// Successive local-window collapses for axes 1..d-1. idx/full buffers
	// are allocated once per axis and reused across every grid line and
	// every local basis index, never inside the innermost loop.
	for a := 1; a < d; a++ {
		k := axes[a].K
		t := axes[a].Knots
		left := lefts[a]
		winStart := left - k + 1
		tLocal := t[winStart : winStart+2*k]
		remDims := dims[1:]
		next := NewTensor(remDims)
		localHint := knot.NewHint()
		localVec := make([]float64, k)
		ridx := make([]int, len(remDims))
		full := make([]int, len(remDims)+1)
		for {
			copy(full[1:], ridx)
			for j := 0; j < k; j++ {
				full[0] = j
				localVec[j] = cur.At(full)
			}
			localHint.Reset()
			val, err := deboor.Eval(tLocal, localVec, k, k, derivs[a], x[a], localHint)
			if err != nil {
				bserr.DefaultSink.Log(bserr.CategoryOf(err), "axis %d evaluate failed: %v", a, err)
				return 0
			}
			next.Set(ridx, val)
			if !nextIndex(ridx, remDims) {
				break
			}
		}
		cur = next
		dims = remDims
	}

	return cur.Data[0]
}

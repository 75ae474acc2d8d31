// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bspline

import "github.com/cpmech/gobspline/bserr"

// The Fit2..Fit6 and Eval2..Eval6 wrappers below are the library's named
// public entry points (§6): one pair per supported dimensionality,
// assembling the []Axis / query slice FitND and EvalND need and
// otherwise adding nothing of their own. Callers that already think in
// terms of []Axis should call FitND/EvalND directly instead.

func fixedAxes(xs [][]float64, ks []int) []Axis {
	axes := make([]Axis, len(xs))
	for i := range xs {
		axes[i] = Axis{X: xs[i], K: ks[i]}
	}
	return axes
}

// Fit2 fits a 2D tensor-product B-spline to fcn, sampled on the grid
// x1 x x2, with per-axis orders k1, k2.
func Fit2(x1, x2 []float64, k1, k2 int, fcn *Tensor) (*Spline, error) {
	return FitND(DefaultKnots, fixedAxes([][]float64{x1, x2}, []int{k1, k2}), fcn)
}

// Fit3 fits a 3D tensor-product B-spline.
func Fit3(x1, x2, x3 []float64, k1, k2, k3 int, fcn *Tensor) (*Spline, error) {
	return FitND(DefaultKnots, fixedAxes([][]float64{x1, x2, x3}, []int{k1, k2, k3}), fcn)
}

// Fit4 fits a 4D tensor-product B-spline.
func Fit4(x1, x2, x3, x4 []float64, k1, k2, k3, k4 int, fcn *Tensor) (*Spline, error) {
	return FitND(DefaultKnots, fixedAxes([][]float64{x1, x2, x3, x4}, []int{k1, k2, k3, k4}), fcn)
}

// Fit5 fits a 5D tensor-product B-spline.
func Fit5(x1, x2, x3, x4, x5 []float64, k1, k2, k3, k4, k5 int, fcn *Tensor) (*Spline, error) {
	return FitND(DefaultKnots, fixedAxes([][]float64{x1, x2, x3, x4, x5}, []int{k1, k2, k3, k4, k5}), fcn)
}

// Fit6 fits a 6D tensor-product B-spline.
func Fit6(x1, x2, x3, x4, x5, x6 []float64, k1, k2, k3, k4, k5, k6 int, fcn *Tensor) (*Spline, error) {
	return FitND(DefaultKnots, fixedAxes([][]float64{x1, x2, x3, x4, x5, x6}, []int{k1, k2, k3, k4, k5, k6}), fcn)
}

func checkDims(sp *Spline, want int) error {
	if len(sp.Axes) != want {
		return bserr.New(bserr.InvalidArgument, "bspline: spline has %d axes, want %d", len(sp.Axes), want)
	}
	return nil
}

// Eval2 evaluates a 2D spline (value, when d1=d2=0, or a mixed partial
// derivative otherwise) at (x1,x2).
func Eval2(sp *Spline, x1, x2 float64, d1, d2 int) (float64, error) {
	if err := checkDims(sp, 2); err != nil {
		return 0, err
	}
	return sp.Eval([]float64{x1, x2}, []int{d1, d2}), nil
}

// Eval3 evaluates a 3D spline at (x1,x2,x3).
func Eval3(sp *Spline, x1, x2, x3 float64, d1, d2, d3 int) (float64, error) {
	if err := checkDims(sp, 3); err != nil {
		return 0, err
	}
	return sp.Eval([]float64{x1, x2, x3}, []int{d1, d2, d3}), nil
}

// Eval4 evaluates a 4D spline at (x1,x2,x3,x4).
func Eval4(sp *Spline, x1, x2, x3, x4 float64, d1, d2, d3, d4 int) (float64, error) {
	if err := checkDims(sp, 4); err != nil {
		return 0, err
	}
	return sp.Eval([]float64{x1, x2, x3, x4}, []int{d1, d2, d3, d4}), nil
}

// Eval5 evaluates a 5D spline at (x1,x2,x3,x4,x5).
func Eval5(sp *Spline, x1, x2, x3, x4, x5 float64, d1, d2, d3, d4, d5 int) (float64, error) {
	if err := checkDims(sp, 5); err != nil {
		return 0, err
	}
	return sp.Eval([]float64{x1, x2, x3, x4, x5}, []int{d1, d2, d3, d4, d5}), nil
}

// Eval6 evaluates a 6D spline at (x1,x2,x3,x4,x5,x6).
func Eval6(sp *Spline, x1, x2, x3, x4, x5, x6 float64, d1, d2, d3, d4, d5, d6 int) (float64, error) {
	if err := checkDims(sp, 6); err != nil {
		return 0, err
	}
	return sp.Eval([]float64{x1, x2, x3, x4, x5, x6}, []int{d1, d2, d3, d4, d5, d6}), nil
}

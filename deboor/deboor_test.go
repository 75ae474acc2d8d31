// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package deboor

import (
	"math"
	"testing"

	"github.com/cpmech/gobspline/knot"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"
)

func TestCoefficientsInterpolateAtData(tst *testing.T) {
	chk.PrintTitle("CoefficientsInterpolateAtData")
	x := []float64{0, 1, 2, 3, 4, 5}
	k := 3
	t, err := knot.Default(x, k)
	if err != nil {
		tst.Fatalf("knot.Default failed: %v", err)
	}
	f := make([][]float64, len(x))
	for i, xi := range x {
		f[i] = []float64{xi * xi}
	}
	bcoef, err := Coefficients(x, t, k, f)
	if err != nil {
		tst.Fatalf("Coefficients failed: %v", err)
	}

	h := knot.NewHint()
	for i, xi := range x {
		val, err := Eval(t, bcoef[0], len(x), k, 0, xi, h)
		if err != nil {
			tst.Errorf("eval at x[%d]=%v failed: %v", i, xi, err)
			continue
		}
		want := xi * xi
		if math.Abs(val-want) > 1e-9 {
			tst.Errorf("x=%v: got %v want %v", xi, val, want)
		}
	}
}

func TestEvalDerivativeMatchesFiniteDifference(tst *testing.T) {
	chk.PrintTitle("EvalDerivativeMatchesFiniteDifference")
	x := []float64{0, 0.5, 1, 1.8, 2.5, 3.2, 4}
	k := 4
	t, err := knot.Default(x, k)
	if err != nil {
		tst.Fatalf("knot.Default failed: %v", err)
	}
	f := make([][]float64, len(x))
	for i, xi := range x {
		f[i] = []float64{math.Sin(xi)}
	}
	bcoef, err := Coefficients(x, t, k, f)
	if err != nil {
		tst.Fatalf("Coefficients failed: %v", err)
	}

	probe := 2.1
	h := knot.NewHint()
	deriv, err := Eval(t, bcoef[0], len(x), k, 1, probe, h)
	if err != nil {
		tst.Fatalf("derivative eval failed: %v", err)
	}
	numDeriv, _ := num.DerivCentral(func(xx float64, args ...interface{}) (v float64) {
		hLocal := knot.NewHint()
		v, _ = Eval(t, bcoef[0], len(x), k, 0, xx, hLocal)
		return
	}, probe, 1e-3)
	if math.Abs(deriv-numDeriv) > 1e-4 {
		tst.Errorf("analytical derivative %v does not match finite-difference %v", deriv, numDeriv)
	}
}

func TestEvalLeftLimitAtRightEndpoint(tst *testing.T) {
	chk.PrintTitle("EvalLeftLimitAtRightEndpoint")
	x := []float64{0, 1, 2, 3, 4}
	k := 3
	t, err := knot.Default(x, k)
	if err != nil {
		tst.Fatalf("knot.Default failed: %v", err)
	}
	f := make([][]float64, len(x))
	for i, xi := range x {
		f[i] = []float64{xi}
	}
	bcoef, err := Coefficients(x, t, k, f)
	if err != nil {
		tst.Fatalf("Coefficients failed: %v", err)
	}
	h := knot.NewHint()
	val, err := Eval(t, bcoef[0], len(x), k, 0, x[len(x)-1], h)
	if err != nil {
		tst.Fatalf("eval at right endpoint failed: %v", err)
	}
	if math.Abs(val-x[len(x)-1]) > 1e-9 {
		tst.Errorf("right-endpoint value %v != %v", val, x[len(x)-1])
	}
}

func TestCoefficientsRejectsBadShapes(tst *testing.T) {
	chk.PrintTitle("CoefficientsRejectsBadShapes")
	x := []float64{0, 1, 2}
	t := []float64{0, 0, 0, 2, 2, 2}
	if _, err := Coefficients(x, t, 3, [][]float64{{0}, {1}}); err == nil {
		tst.Errorf("expected error for mismatched row count")
	}
}

// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package testdata

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestGridMatchesPointwiseEval(tst *testing.T) {
	chk.PrintTitle("GridMatchesPointwiseEval")
	x1 := Linspace(0, 1, 4)
	x2 := Linspace(0, 2, 5)
	t := Grid("S1", [][]float64{x1, x2})
	for i, a := range x1 {
		for j, b := range x2 {
			want := S1(a, b)
			got := t.At([]int{i, j})
			if math.Abs(got-want) > 1e-14 {
				tst.Errorf("(%d,%d): got %v want %v", i, j, got, want)
			}
		}
	}
}

func TestParamsReportsArity(tst *testing.T) {
	chk.PrintTitle("ParamsReportsArity")
	p := Params("S3")
	if len(p) == 0 || p[0].N != "arity" || p[0].V != 4 {
		tst.Errorf("expected arity parameter 4, got %v", p)
	}
	if Params("unknown") != nil {
		tst.Errorf("expected nil params for unknown scenario")
	}
}

func TestLinspaceEndpoints(tst *testing.T) {
	chk.PrintTitle("LinspaceEndpoints")
	x := Linspace(-1, 3, 9)
	if x[0] != -1 || x[len(x)-1] != 3 {
		tst.Errorf("linspace endpoints wrong: %v", x)
	}
	for i := 1; i < len(x); i++ {
		if x[i] <= x[i-1] {
			tst.Errorf("linspace not strictly increasing at %d", i)
		}
	}
}

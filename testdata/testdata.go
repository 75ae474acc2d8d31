// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testdata supplies the named sample functions used to exercise
// fit/evaluate accuracy (§8 scenarios S1-S5) plus the grid-sampling
// helper that turns one of them into a *bspline.Tensor. Scenarios are
// looked up by name (a name -> arity map plus a name switch for
// evaluation), after the factory-map idiom the teacher uses for its
// constitutive-model calculators (msolid.GetKgc / kgcfactory).
package testdata

import (
	"math"

	"github.com/cpmech/gobspline"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/utl"
)

// S1 is the 2D scenario function f(x,y) = 0.5*(y*exp(-x) + sin((pi/2)*y)).
func S1(x, y float64) float64 {
	return 0.5 * (y*math.Exp(-x) + math.Sin((math.Pi/2)*y))
}

// S2 is the 3D scenario function f(x,y,z) = 0.5*(y*exp(-x) + z*sin((pi/2)*y)).
func S2(x, y, z float64) float64 {
	return 0.5 * (y*math.Exp(-x) + z*math.Sin((math.Pi/2)*y))
}

// S3 is the 4D scenario function
// f(x,y,z,q) = 0.5*(y*exp(-x) + z*sin((pi/2)*y) + q).
func S3(x, y, z, q float64) float64 {
	return 0.5 * (y*math.Exp(-x) + z*math.Sin((math.Pi/2)*y) + q)
}

// S4 is the 5D scenario function
// f(x,y,z,q,r) = 0.5*(y*exp(-x) + z*sin((pi/2)*y) + q*r).
func S4(x, y, z, q, r float64) float64 {
	return 0.5 * (y*math.Exp(-x) + z*math.Sin((math.Pi/2)*y) + q*r)
}

// S5 is the 6D scenario function
// f(x,y,z,q,r,s) = 0.5*(y*exp(-x) + z*sin((pi/2)*y) + q*r + 2*s).
func S5(x, y, z, q, r, s float64) float64 {
	return 0.5 * (y*math.Exp(-x) + z*math.Sin((math.Pi/2)*y) + q*r + 2*s)
}

// scalarFuncs maps a scenario name to its arity, mirroring the teacher's
// kgcfactory map of name -> constructor; eval dispatches to the function.
var scalarFuncs = map[string]int{
	"S1": 2,
	"S2": 3,
	"S3": 4,
	"S4": 5,
	"S5": 6,
}

// Arity returns the number of arguments scenario name expects, or 0 if
// name is not a registered scenario.
func Arity(name string) int {
	return scalarFuncs[name]
}

// Params describes scenario name as a fun.Prms list, the same named
// key/value shape msolid's constitutive models report via GetPrms — here
// naming the scenario's arity and the sine-argument constant pi/2
// ("halfpi") instead of material parameters.
func Params(name string) fun.Prms {
	n := Arity(name)
	if n == 0 {
		return nil
	}
	prms := fun.Prms{&fun.Prm{N: "arity", V: float64(n)}}
	if n >= 2 {
		prms = append(prms, &fun.Prm{N: "halfpi", V: math.Pi / 2})
	}
	return prms
}

// eval dispatches to the named scenario function; xs must have exactly
// Arity(name) entries.
func eval(name string, xs []float64) float64 {
	switch name {
	case "S1":
		return S1(xs[0], xs[1])
	case "S2":
		return S2(xs[0], xs[1], xs[2])
	case "S3":
		return S3(xs[0], xs[1], xs[2], xs[3])
	case "S4":
		return S4(xs[0], xs[1], xs[2], xs[3], xs[4])
	case "S5":
		return S5(xs[0], xs[1], xs[2], xs[3], xs[4], xs[5])
	}
	utl.Panic("testdata: unknown scenario %q", name)
	return 0
}

// Grid generates the samples of scenario name over the rectilinear grid
// axes (one abscissa slice per dimension), returning the sample Tensor
// fit expects.
func Grid(name string, axes [][]float64) *bspline.Tensor {
	if Arity(name) != len(axes) {
		utl.Panic("testdata: scenario %q needs %d axes, got %d", name, Arity(name), len(axes))
	}
	shape := make([]int, len(axes))
	for i, a := range axes {
		shape[i] = len(a)
	}
	t := bspline.NewTensor(shape)
	xs := make([]float64, len(axes))
	total := 1
	for _, n := range shape {
		total *= n
	}
	idx := make([]int, len(shape))
	for lin := 0; lin < total; lin++ {
		rem := lin
		for i := len(shape) - 1; i >= 0; i-- {
			idx[i] = rem % shape[i]
			rem /= shape[i]
		}
		for i, a := range axes {
			xs[i] = a[idx[i]]
		}
		t.Set(idx, eval(name, xs))
	}
	return t
}

// Linspace returns n evenly spaced points from lo to hi inclusive, the
// same regular-grid helper shape the teacher's mesh generators use.
func Linspace(lo, hi float64, n int) []float64 {
	x := make([]float64, n)
	if n == 1 {
		x[0] = lo
		return x
	}
	step := (hi - lo) / float64(n-1)
	for i := range x {
		x[i] = lo + float64(i)*step
	}
	return x
}

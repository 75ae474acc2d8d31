// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bspline

import "github.com/cpmech/gobspline/bserr"

// Mode selects whether FitND generates default knots per axis
// (DefaultKnots) or expects the caller to have supplied them
// (UserKnots), mirroring the single shared mode flag of §4.9.
type Mode int

const (
	// DefaultKnots generates knots via knot.Default for every axis.
	DefaultKnots Mode = 0
	// UserKnots requires every axis's Knots field to already hold a
	// valid nondecreasing knot vector of length N+K.
	UserKnots Mode = 1
)

// Axis is the caller's per-axis input to FitND (§3 "Axis specification").
// Knots is read only when the fit call's mode is UserKnots; otherwise it
// is ignored and the generated knots are returned on the resulting
// Spline instead of being written back into this struct.
type Axis struct {
	X     []float64
	K     int
	Knots []float64
}

// validate checks mode and every axis in order, exactly as §4.9
// specifies, and returns the first failing numerically-coded error. On
// success the caller's mode is implicitly accepted as 1 (§4.9 "on success
// the mode flag is set to 1"); FitND communicates that by returning a
// nil error rather than mutating a flag in place (§9 redesign note — the
// numeric code remains available via bserr.CodeOf for compatibility).
func validate(mode Mode, axes []Axis) error {
	if mode != DefaultKnots && mode != UserKnots {
		return bserr.NewCoded(bserr.CodeBadMode, bserr.InvalidArgument, "bspline: mode must be 0 or 1, got %d", mode)
	}
	for a, axis := range axes {
		axisNum := a + 1
		n := len(axis.X)
		if n < 3 {
			return bserr.NewCoded(bserr.AxisCode(axisNum, bserr.SlotBadN), bserr.InvalidArgument,
				"bspline: axis %d needs n >= 3 abscissae, got %d", axisNum, n)
		}
		if axis.K < 2 || axis.K > n-1 {
			return bserr.NewCoded(bserr.AxisCode(axisNum, bserr.SlotBadK), bserr.InvalidArgument,
				"bspline: axis %d order k=%d must satisfy 2 <= k <= n-1=%d", axisNum, axis.K, n-1)
		}
		for i := 1; i < n; i++ {
			if axis.X[i] <= axis.X[i-1] {
				return bserr.NewCoded(bserr.AxisCode(axisNum, bserr.SlotBadAbscissae), bserr.NonMonotoneInput,
					"bspline: axis %d abscissae must be strictly increasing (x[%d]=%v <= x[%d]=%v)", axisNum, i, axis.X[i], i-1, axis.X[i-1])
			}
		}
		if mode == UserKnots {
			if len(axis.Knots) != n+axis.K {
				return bserr.NewCoded(bserr.AxisCode(axisNum, bserr.SlotBadKnots), bserr.InvalidArgument,
					"bspline: axis %d knot vector length %d != n+k=%d", axisNum, len(axis.Knots), n+axis.K)
			}
			for i := 1; i < len(axis.Knots); i++ {
				if axis.Knots[i] < axis.Knots[i-1] {
					return bserr.NewCoded(bserr.AxisCode(axisNum, bserr.SlotBadKnots), bserr.NonMonotoneInput,
						"bspline: axis %d knots must be nondecreasing (t[%d]=%v < t[%d]=%v)", axisNum, i, axis.Knots[i], i-1, axis.Knots[i-1])
				}
			}
		}
	}
	return nil
}

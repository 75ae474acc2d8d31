// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bspline

// Tensor is a dense d-dimensional array of float64, stored flat in
// row-major order (the last shape entry varies fastest). It backs both
// the sample array fit consumes and the coefficient array fit produces
// and evaluate consumes (§3 "Sample array", "Coefficient array"). Strides
// are cached at construction so At/Set never allocate.
type Tensor struct {
	Shape   []int
	Data    []float64
	strides []int
}

// NewTensor allocates a zeroed Tensor of the given shape.
func NewTensor(shape []int) *Tensor {
	n := product(shape)
	return &Tensor{
		Shape:   append([]int{}, shape...),
		Data:    make([]float64, n),
		strides: strides(shape),
	}
}

// product returns the product of dims, or 1 for an empty slice (the
// degenerate rank-0 scalar tensor produced by the last collapse step of
// evaluate).
func product(dims []int) int {
	p := 1
	for _, d := range dims {
		p *= d
	}
	return p
}

// strides returns the row-major strides for shape.
func strides(shape []int) []int {
	s := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		s[i] = acc
		acc *= shape[i]
	}
	return s
}

// At returns the element at the given multi-index.
func (t *Tensor) At(idx []int) float64 {
	return t.Data[t.flatten(idx)]
}

// Set assigns the element at the given multi-index.
func (t *Tensor) Set(idx []int, v float64) {
	t.Data[t.flatten(idx)] = v
}

// flatten converts a multi-index to a linear offset using the tensor's
// cached strides (§5 "no allocator pressure inside inner loops" — evaluate
// calls this once per element without recomputing strides).
func (t *Tensor) flatten(idx []int) int {
	off := 0
	for i, v := range idx {
		off += v * t.strides[i]
	}
	return off
}

// unflatten converts a linear index (0 <= lin < product(dims)) into a
// fresh multi-index over dims, row-major. Reserved for one-off
// conversions (Permute); evaluate's hot loops enumerate combinations in
// place via nextIndex instead, to avoid allocating an index slice per
// element.
func unflatten(lin int, dims []int) []int {
	idx := make([]int, len(dims))
	for i := len(dims) - 1; i >= 0; i-- {
		idx[i] = lin % dims[i]
		lin /= dims[i]
	}
	return idx
}

// nextIndex advances idx by one step in row-major mixed-radix order over
// dims, in place, returning false once idx has wrapped back to all zero
// (every combination visited). Starting from an all-zero idx and calling
// nextIndex after each element processed enumerates product(dims)
// combinations with no per-step allocation.
func nextIndex(idx, dims []int) bool {
	for i := len(dims) - 1; i >= 0; i-- {
		idx[i]++
		if idx[i] < dims[i] {
			return true
		}
		idx[i] = 0
	}
	return false
}

// Clone returns a deep copy of t.
func (t *Tensor) Clone() *Tensor {
	data := make([]float64, len(t.Data))
	copy(data, t.Data)
	return &Tensor{
		Shape:   append([]int{}, t.Shape...),
		Data:    data,
		strides: append([]int{}, t.strides...),
	}
}

// Permute returns a new Tensor with axes reordered according to perm
// (perm[i] names which axis of t becomes axis i of the result). It is a
// test utility (exercised by TestPermuteTransposes), not used by the
// fit/evaluate core itself.
func Permute(t *Tensor, perm []int) *Tensor {
	d := len(t.Shape)
	newShape := make([]int, d)
	for i, p := range perm {
		newShape[i] = t.Shape[p]
	}
	out := NewTensor(newShape)
	total := product(newShape)
	oldIdx := make([]int, d)
	for lin := 0; lin < total; lin++ {
		newIdx := unflatten(lin, newShape)
		for i, p := range perm {
			oldIdx[p] = newIdx[i]
		}
		out.Data[lin] = t.At(oldIdx)
	}
	return out
}

// Copyright 2016 The Gobend Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana provides closed-form solutions for checking the solver
package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// OneFreeNode computes the force-density equilibrium of a single free node
// connected to anchors by edges with constant force densities:
//
//	x* = (sum_i q_i a_i + p) / sum_i q_i
//
// with a_i the anchor positions and p the applied load.
type OneFreeNode struct {
	Anchors [][]float64 // anchor positions
	Q       []float64   // constant force density of each connecting edge
	P       []float64   // applied load at the free node
}

// Position returns the equilibrium position of the free node
func (o OneFreeNode) Position() (x []float64) {
	x = make([]float64, 3)
	qsum := 0.0
	for i, a := range o.Anchors {
		for d := 0; d < 3; d++ {
			x[d] += o.Q[i] * a[d]
		}
		qsum += o.Q[i]
	}
	for d := 0; d < 3; d++ {
		x[d] = (x[d] + o.P[d]) / qsum
	}
	return
}

// CheckPosition compares a computed position against the closed form
func (o OneFreeNode) CheckPosition(tst *testing.T, tol float64, x []float64) {
	chk.Array(tst, "x", tol, x, o.Position())
}

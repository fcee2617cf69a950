// Copyright 2016 The Gobend Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_onenode01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("onenode01. single free node equilibrium")

	// two anchors with unit densities and a vertical load
	sol := OneFreeNode{
		Anchors: [][]float64{{0, 0, 0}, {1, 0, 0}},
		Q:       []float64{1, 1},
		P:       []float64{0, 0, -1},
	}
	chk.Array(tst, "x", 1e-15, sol.Position(), []float64{0.5, 0, -0.5})

	// unequal densities shift the node towards the stiffer anchor
	sol = OneFreeNode{
		Anchors: [][]float64{{0, 0, 0}, {4, 0, 0}},
		Q:       []float64{3, 1},
		P:       []float64{0, 0, 0},
	}
	chk.Array(tst, "x", 1e-15, sol.Position(), []float64{1, 0, 0})
}

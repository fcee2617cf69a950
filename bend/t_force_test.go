// Copyright 2016 The Gobend Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bend

import (
	"math"
	"testing"

	"github.com/cpmech/gobend/bnet"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// prepSolver runs the pre-loop stages and returns the solver ready to step
func prepSolver(tst *testing.T, net *bnet.Network, cables []Cable, splines []Spline, cfg *Config) *solver {
	top := NewTopology(net)
	el, err := NewElements(net, top, cables, splines, cfg)
	if err != nil {
		tst.Fatalf("NewElements failed: %v", err)
	}
	top.BuildIncidence()
	return newSolver(net, top, el, cfg)
}

func Test_fdens01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fdens01. force-density components and clamping")

	net := bnet.NewNetwork()
	net.AddNode(0, 0, 0, 0)
	net.AddNode(1, 2, 0, 0)
	net.AddNode(2, 3, 0, 0)
	a, _ := net.AddEdge(0, 1)
	a.Fpre = 3
	a.Lpre = 2
	a.Linit = 1
	net.AddEdge(1, 2)
	net.Node(0).Anchor = true

	o := prepSolver(tst, net, nil, nil, DefaultConfig())
	o.el.EA[0] = 10 // directly; the edge carries no tube section
	o.fdensity()

	// edge 0: all three components active
	// q_fpre = 3/2, q_lpre = f/lpre = (1*2)/2, q_EA = 10*(2-1)/(1*2)
	chk.Scalar(tst, "q_fpre[0]", 1e-15, o.qfpre[0], 1.5)
	chk.Scalar(tst, "q_lpre[0]", 1e-15, o.qlpre[0], 1.0)
	chk.Scalar(tst, "q_EA[0]", 1e-15, o.qEA[0], 5.0)

	// edge 1: lpre = 0 and linit = 0 clamp to zero contribution
	io.Pforan("q_lpre = %v\n", o.qlpre)
	chk.Scalar(tst, "q_fpre[1]", 1e-15, o.qfpre[1], 0)
	chk.Scalar(tst, "q_lpre[1]", 1e-15, o.qlpre[1], 0)
	chk.Scalar(tst, "q_EA[1]", 1e-15, o.qEA[1], 0)
}

func Test_shear01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shear01. circular spline: moment = EI/R towards the centre")

	// four nodes on a circle of radius 2 in the xy-plane
	R := 2.0
	net := bnet.NewNetwork()
	for i := 0; i < 4; i++ {
		θ := float64(i) * PI / 6.0
		net.AddNode(i, R*math.Cos(θ), R*math.Sin(θ), 0)
	}
	for i := 0; i < 3; i++ {
		net.AddEdge(i, i+1)
	}
	net.Node(0).Anchor = true
	net.Node(3).Anchor = true
	spline := Spline{Start: 0, Edges: [][2]int{{0, 1}, {1, 2}, {2, 3}}, E: 30, Radius: 30, Thickness: 5}

	o := prepSolver(tst, net, nil, []Spline{spline}, DefaultConfig())
	o.shear()

	// the osculating circle of any three nodes is the circle itself
	EI := o.el.Splines[0].EI
	for _, i := range []int{1, 2} {
		θ := float64(i) * PI / 6.0
		mref := []float64{-EI / R * math.Cos(θ), -EI / R * math.Sin(θ), 0}
		io.Pforan("m[%d] = %v\n", i, o.m[i])
		chk.Array(tst, io.Sf("m[%d]", i), 1e-6, o.m[i], mref)
	}

	// endpoint moments stay untouched
	chk.Array(tst, "m[0]", 1e-17, o.m[0], nil)
	chk.Array(tst, "m[3]", 1e-17, o.m[3], nil)

	// shear forces balance over the spline
	sum := []float64{0, 0, 0}
	for i := 0; i < 4; i++ {
		for d := 0; d < 3; d++ {
			sum[d] += o.s[i][d]
		}
	}
	chk.Array(tst, "sum s", 1e-5, sum, nil)
}

func Test_shear02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("shear02. straight spline: colinear triples give zero moment")

	net := chainNet(tst, 5, 0, 4)
	spline := Spline{Start: 0, Edges: [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}}, E: 30, Radius: 10, Thickness: 5}
	o := prepSolver(tst, net, nil, []Spline{spline}, DefaultConfig())
	o.shear()
	for i := 0; i < 5; i++ {
		chk.Array(tst, io.Sf("m[%d]", i), 1e-17, o.m[i], nil)
		chk.Array(tst, io.Sf("s[%d]", i), 1e-17, o.s[i], nil)
	}
}

func Test_mass01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mass01. lumped masses accumulate over incident edges")

	net := chainNet(tst, 3, 0, 2)
	o := prepSolver(tst, net, nil, nil, DefaultConfig())
	o.fdensity()
	o.lumpMass()

	// w = qpre = 1 per edge; mass = 1/2 dt^2 * (sum of w over incident edges)
	chk.Array(tst, "mass", 1e-15, o.mass, []float64{0.5, 1.0, 0.5})
}

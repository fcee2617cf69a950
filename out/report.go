// Copyright 2016 The Gobend Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out prints result tables and plots convergence histories
package out

import (
	"sort"

	"github.com/cpmech/gobend/bend"
	"github.com/cpmech/gobend/bnet"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// PrintNodes prints a table with position and residual of all nodes; anchors
// are marked with '*'. Shear, moment and reactions are not part of this table.
func PrintNodes(net *bnet.Network) {
	io.Pf("%4s %1s %30s %30s\n", "node", "", "x y z", "rx ry rz")
	for _, key := range net.Nodes() {
		a := net.Node(key)
		mark := ""
		if a.Anchor {
			mark = "*"
		}
		io.Pf("%4d %1s %30s %30s\n", key, mark,
			io.Sf("%9.5f %9.5f %9.5f", a.X, a.Y, a.Z),
			io.Sf("%9.5f %9.5f %9.5f", a.Rx, a.Ry, a.Rz))
	}
}

// PrintEdges prints a table with the resulting density, force and lengths of
// all edges.
func PrintEdges(net *bnet.Network) {
	io.Pf("%9s %12s %12s %12s %12s\n", "edge", "q", "f", "l", "linit")
	for _, pair := range net.Edges() {
		a := net.Edge(pair[0], pair[1])
		io.Pf("%4d %4d %12.6f %12.6f %12.6f %12.6f\n", pair[0], pair[1], a.Q, a.F, a.L, a.Linit)
	}
}

// PrintReactions prints the reactions at all anchors
func PrintReactions(net *bnet.Network) {
	for _, key := range net.Anchors() {
		rea := net.NodeReaction(key)
		io.Pf("%4d : reaction = %10.6f %10.6f %10.6f\n", key, rea[0], rea[1], rea[2])
	}
}

// PlotHistory saves a figure with the three convergence criteria against the
// global step counter. Does nothing on an empty history.
func PlotHistory(h *bend.History, dirout, fname string) {
	if h.Len() == 0 {
		return
	}
	steps := append([]int(nil), h.Steps...)
	sort.Ints(steps)
	x := make([]float64, len(steps))
	c1 := make([]float64, len(steps))
	c2 := make([]float64, len(steps))
	c3 := make([]float64, len(steps))
	for i, k := range steps {
		x[i] = float64(k)
		c1[i] = h.Membrane[k]
		c2[i] = h.Spline[k]
		c3[i] = h.Displacements[k]
	}
	plt.SetForEps(0.75, 300)
	plt.Plot(x, c1, "'b-', label='membrane', clip_on=0")
	plt.Plot(x, c2, "'r-', label='spline', clip_on=0")
	plt.Plot(x, c3, "'g-', label='displacements', clip_on=0")
	plt.Gll("$k$", "crit", "")
	plt.SaveD(dirout, fname)
}

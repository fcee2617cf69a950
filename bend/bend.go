// Copyright 2016 The Gobend Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bend implements the equilibrium solver for bending-active
// structures: slender elastic splines modelled as chains of straight edges,
// held in shape by cables, ties, membrane edges and anchors. Equilibrium is
// found by dynamic relaxation with Runge-Kutta 4 integration over fictitious
// masses; bending follows from the osculating circle at interior spline nodes.
package bend

import (
	"math"

	"github.com/cpmech/gobend/bnet"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// solver carries the working arrays of one call to BendSplines
type solver struct {

	// input
	top *Topology
	el  *Elements
	cfg *Config

	// state; (nv x 3) except where noted
	xyz [][]float64 // node positions
	p   [][]float64 // applied loads
	v   [][]float64 // velocities
	r   [][]float64 // residual forces
	s   [][]float64 // shear forces
	m   [][]float64 // bending moment vectors
	q   []float64   // (ne) force densities
	f   []float64   // (ne) axial forces
	l   []float64   // (ne) edge lengths

	// relaxation parameters
	alpha          float64 // bending amplification; halved when converging
	dt, cc, ca, cb float64 // time step and viscous damping constants

	// per-iteration arrays
	qfpre []float64 // (ne) fpre / l
	qlpre []float64 // (ne) f / lpre
	qEA   []float64 // (ne) elastic force densities
	w     []float64 // (ne) scratch for mass lumping and matvec
	mass  []float64 // (nv) fictitious nodal masses

	// integration scratch
	xyz0, v0, dx       [][]float64
	vtmp               [][]float64
	k0, k1, k2, k3     [][]float64
	vcol, ncol         []float64 // (nv) matvec columns
	ecol               []float64 // (ne) matvec column
	allnodes           []int
}

// BendSplines computes the equilibrium configuration of a network of nodes
// and edges combined with cables and splines, and writes positions, residual,
// shear, moment and edge results back into the network. A nil cfg means
// DefaultConfig; a nil progress callback disables batch reporting.
//
// Configuration and topology problems are reported as errors before the
// relaxation starts. Non-convergence is not an error: the reached state is
// written back and the returned history carries the final criteria.
func BendSplines(net *bnet.Network, cables []Cable, splines []Spline, cfg *Config, progress Progress) (hist *History, err error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	err = cfg.Validate()
	if err != nil {
		return
	}
	top := NewTopology(net)
	el, err := NewElements(net, top, cables, splines, cfg)
	if err != nil {
		return
	}
	top.BuildIncidence()
	o := newSolver(net, top, el, cfg)
	hist = o.run(progress)
	o.writeback(net)
	return
}

// newSolver allocates the working arrays and copies the initial state out of
// the network; the network is not touched again until writeback.
func newSolver(net *bnet.Network, top *Topology, el *Elements, cfg *Config) (o *solver) {
	nv := len(top.Keys)
	ne := len(top.Edges)
	o = &solver{top: top, el: el, cfg: cfg}

	o.xyz = la.MatAlloc(nv, 3)
	o.p = la.MatAlloc(nv, 3)
	for i, key := range top.Keys {
		a := net.Node(key)
		o.xyz[i][0], o.xyz[i][1], o.xyz[i][2] = a.X, a.Y, a.Z
		o.p[i][0], o.p[i][1], o.p[i][2] = a.Px, a.Py, a.Pz
	}
	o.v = la.MatAlloc(nv, 3)
	o.r = la.MatAlloc(nv, 3)
	o.s = la.MatAlloc(nv, 3)
	o.m = la.MatAlloc(nv, 3)

	o.alpha = cfg.Alpha
	o.dt = 1.0
	o.cc = 0.1
	o.ca = (1.0 - o.cc*0.5) / (1.0 + o.cc*0.5)
	o.cb = 0.5 * (1.0 + o.ca)

	o.q = make([]float64, ne)
	la.VecFill(o.q, 1)
	o.l = make([]float64, ne)
	o.f = make([]float64, ne)
	o.updateLengths()
	for e := range o.f {
		o.f[e] = o.q[e] * o.l[e]
	}

	o.qfpre = make([]float64, ne)
	o.qlpre = make([]float64, ne)
	o.qEA = make([]float64, ne)
	o.w = make([]float64, ne)
	o.mass = make([]float64, nv)

	o.xyz0 = la.MatAlloc(nv, 3)
	o.v0 = la.MatAlloc(nv, 3)
	o.dx = la.MatAlloc(nv, 3)
	o.vtmp = la.MatAlloc(nv, 3)
	o.k0 = la.MatAlloc(nv, 3)
	o.k1 = la.MatAlloc(nv, 3)
	o.k2 = la.MatAlloc(nv, 3)
	o.k3 = la.MatAlloc(nv, 3)
	o.vcol = make([]float64, nv)
	o.ncol = make([]float64, nv)
	o.ecol = make([]float64, ne)
	o.allnodes = utl.IntRange(nv)
	return
}

// updateLengths refreshes the edge lengths from the current positions
func (o *solver) updateLengths() {
	for e, pair := range o.top.Edges {
		u, v := pair[0], pair[1]
		o.l[e] = norm3(o.xyz[u][0]-o.xyz[v][0], o.xyz[u][1]-o.xyz[v][1], o.xyz[u][2]-o.xyz[v][2])
	}
}

// axialResidual computes res = p + s - Ct*diag(q)*C*xyz on the given rows
func (o *solver) axialResidual(rows []int, res [][]float64) {
	for d := 0; d < 3; d++ {
		for i := range o.vcol {
			o.vcol[i] = o.xyz[i][d]
		}
		la.SpMatVecMul(o.ecol, 1, o.top.C, o.vcol) // ecol := C * xyz[:,d]
		for e := range o.ecol {
			o.ecol[e] *= o.q[e]
		}
		la.SpMatTrVecMul(o.ncol, 1, o.top.C, o.ecol) // ncol := Ct * Q * C * xyz[:,d]
		for _, i := range rows {
			res[i][d] = o.p[i][d] + o.s[i][d] - o.ncol[i]
		}
	}
}

// normRows returns the Euclidean norm of the selected rows of a (n x 3) array
func normRows(a [][]float64, rows []int) float64 {
	sum := 0.0
	for _, i := range rows {
		sum += a[i][0]*a[i][0] + a[i][1]*a[i][1] + a[i][2]*a[i][2]
	}
	return math.Sqrt(sum)
}

// run performs the dynamic relaxation: batches of kdiv RK4 steps followed by
// a convergence check which either stops (alpha already 1) or halves alpha so
// the amplified bending forces decay towards their physical magnitude.
func (o *solver) run(progress Progress) (hist *History) {
	hist = NewHistory()
	nbatches := (o.cfg.Kmax + o.cfg.Kdiv - 1) / o.cfg.Kdiv
	if nbatches < 1 {
		nbatches = 1
	}
	k := 0
	for i := 0; i < nbatches; i++ {
		for j := 0; j < o.cfg.Kdiv; j++ {
			k = i*o.cfg.Kdiv + j

			// force densities and lumped masses for this step
			o.fdensity()
			for e := range o.q {
				o.q[e] = o.el.Qpre[e] + o.qfpre[e] + o.qlpre[e] + o.qEA[e]
			}
			o.lumpMass()

			// relax
			o.step()

			// update derived state
			o.updateLengths()
			for e := range o.f {
				o.f[e] = o.q[e] * o.l[e]
			}
			o.shear()
			o.axialResidual(o.allnodes, o.r)
		}

		// convergence; crit3 is whatever the last inner step produced
		crit1 := normRows(o.r, o.el.MembraneNodes)
		crit2 := normRows(o.r, o.el.SplineNodes)
		crit3 := normRows(o.dx, o.top.Free)
		hist.append(k, crit1, crit2, crit3)
		if progress != nil {
			progress(k, crit1, crit2, crit3)
		}
		if (crit1 < o.cfg.Tol1 && crit2 < o.cfg.Tol2) || crit3 < o.cfg.Tol3 {
			if o.alpha == 1 {
				break
			}
			o.alpha = math.Ceil(0.5 * o.alpha)
		}
	}
	return
}

// writeback copies the equilibrium state into the network: 12 scalars per
// node and the resulting density, force and lengths per edge.
func (o *solver) writeback(net *bnet.Network) {
	for i, key := range o.top.Keys {
		a := net.Node(key)
		a.X, a.Y, a.Z = o.xyz[i][0], o.xyz[i][1], o.xyz[i][2]
		a.Rx, a.Ry, a.Rz = o.r[i][0], o.r[i][1], o.r[i][2]
		a.Sx, a.Sy, a.Sz = o.s[i][0], o.s[i][1], o.s[i][2]
		a.Mx, a.My, a.Mz = o.m[i][0], o.m[i][1], o.m[i][2]
	}
	for e, pair := range o.top.Pairs {
		a := net.Edge(pair[0], pair[1])
		a.Q = o.q[e]
		a.F = o.f[e]
		a.L = o.l[e]
		a.Linit = o.el.Linit[e]
	}
}

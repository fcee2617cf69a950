// Copyright 2016 The Gobend Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bend

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// finite masks non-finite values to zero. Divisions by zero length, rest
// length or unstressed length must contribute nothing.
func finite(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}

// norm3 returns the Euclidean norm of a 3-vector given by components
func norm3(x, y, z float64) float64 {
	return math.Sqrt(x*x + y*y + z*z)
}

// cross3 returns the cross product of two 3-vectors
func cross3(u, v [3]float64) [3]float64 {
	return [3]float64{
		u[1]*v[2] - u[2]*v[1],
		u[2]*v[0] - u[0]*v[2],
		u[0]*v[1] - u[1]*v[0],
	}
}

// dot3 returns the dot product of two 3-vectors
func dot3(u, v [3]float64) float64 {
	return u[0]*v[0] + u[1]*v[1] + u[2]*v[2]
}

// fdensity computes the force-density components of all edges:
// q_fpre from prescribed axial forces, q_lpre from prescribed rest lengths
// and q_EA from elastic extension relative to the unstressed lengths.
func (o *solver) fdensity() {
	for e := range o.qfpre {
		o.qfpre[e] = finite(o.el.Fpre[e] / o.l[e])
		o.qlpre[e] = finite(o.f[e] / o.el.Lpre[e])
		o.qEA[e] = finite(o.el.EA[e] * (o.l[e] - o.el.Linit[e]) / (o.el.Linit[e] * o.l[e]))
	}
}

// shear updates the bending moments at interior spline nodes from the
// osculating circle through each triple of consecutive nodes and accumulates
// the resulting nodal shear forces, amplified by alpha. Endpoint moments are
// left untouched. Without splines the previous shear values are kept.
func (o *solver) shear() {
	if len(o.el.Splines) == 0 {
		return
	}
	for i := range o.s {
		o.s[i][0] = 0
		o.s[i][1] = 0
		o.s[i][2] = 0
	}
	for _, sp := range o.el.Splines {

		// bending moments from the osculating circle at interior nodes
		v1, v2 := sp.Vi[0], sp.Vi[1]
		var a, b [3]float64
		for d := 0; d < 3; d++ {
			b[d] = o.xyz[v2][d] - o.xyz[v1][d]
		}
		lb2 := dot3(b, b)
		for i := 0; i < len(sp.Vi)-2; i++ {
			v1 = sp.Vi[i+1]
			v2 = sp.Vi[i+2]
			for d := 0; d < 3; d++ {
				a[d] = -b[d]
				b[d] = o.xyz[v2][d] - o.xyz[v1][d]
			}
			axb := cross3(a, b)
			la2 := lb2
			lb2 = dot3(b, b)
			var t [3]float64
			for d := 0; d < 3; d++ {
				t[d] = la2*b[d] - lb2*a[d]
			}

			// offset from the node to the centre of the osculating circle;
			// degenerate (colinear) triples give non-finite components which
			// are masked to a zero moment
			txaxb := cross3(t, axb)
			den := 2.0 * dot3(axb, axb)
			var oc [3]float64
			for d := 0; d < 3; d++ {
				oc[d] = txaxb[d] / den
			}
			lo := math.Sqrt(dot3(oc, oc))
			bending := finite(sp.EI / lo)
			for d := 0; d < 3; d++ {
				o.m[v1][d] = finite(bending * oc[d] / lo)
			}
		}

		// shear: per-edge moment difference over edge length, scattered to
		// the incident nodes through the spline's rows of C
		for k, e := range sp.Ei {
			u, v := sp.Vi[k], sp.Vi[k+1]
			for d := 0; d < 3; d++ {
				dm := finite(o.alpha * (o.m[u][d] - o.m[v][d]) / o.l[e])
				o.s[u][d] += dm
				o.s[v][d] -= dm
			}
		}
	}
}

// lumpMass recomputes the fictitious nodal masses keeping the explicit
// integration stable; the 4*EI/l^3 term covers bending stiffness.
func (o *solver) lumpMass() {
	for e := range o.w {
		o.w[e] = o.el.Qpre[e] + o.qfpre[e] + o.qlpre[e] +
			finite(o.el.EA[e]/o.el.Linit[e]) +
			finite(4.0*o.el.EI[e]/(o.l[e]*o.l[e]*o.l[e]))
	}
	la.SpMatVecMul(o.mass, 0.5*o.dt*o.dt, o.top.Ct2, o.w) // mass := 1/2 dt² Ct2 w
}

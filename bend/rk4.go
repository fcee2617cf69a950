// Copyright 2016 The Gobend Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bend

// acceleration evaluates a(t,v) = cb * (p + s - Ct*Q*C*xyz) / mass over the
// free nodes, with xyz temporarily set to xyz0 + v*t. The shear forces s are
// frozen within the step; only the axial term tracks the sub-step geometry.
func (o *solver) acceleration(t float64, vin, kout [][]float64) {
	for _, i := range o.top.Free {
		for d := 0; d < 3; d++ {
			o.xyz[i][d] = o.xyz0[i][d] + vin[i][d]*t
		}
	}
	o.axialResidual(o.top.Free, o.r)
	for _, i := range o.top.Free {
		for d := 0; d < 3; d++ {
			kout[i][d] = o.dt * o.cb * o.r[i][d] / o.mass[i]
		}
	}
}

// step advances the node velocities by one damped Runge-Kutta 4 increment and
// moves the free nodes accordingly. The displacement increments are kept in
// o.dx for the convergence test.
func (o *solver) step() {

	// save state and damp the previous velocities
	for i := range o.xyz {
		for d := 0; d < 3; d++ {
			o.xyz0[i][d] = o.xyz[i][d]
		}
	}
	for _, i := range o.top.Free {
		for d := 0; d < 3; d++ {
			o.v0[i][d] = o.ca * o.v[i][d]
		}
	}

	// classical RK4 stages
	o.acceleration(0, o.v0, o.k0)
	for _, i := range o.top.Free {
		for d := 0; d < 3; d++ {
			o.vtmp[i][d] = o.v0[i][d] + 0.5*o.k0[i][d]
		}
	}
	o.acceleration(0.5*o.dt, o.vtmp, o.k1)
	for _, i := range o.top.Free {
		for d := 0; d < 3; d++ {
			o.vtmp[i][d] = o.v0[i][d] + 0.5*o.k1[i][d]
		}
	}
	o.acceleration(0.5*o.dt, o.vtmp, o.k2)
	for _, i := range o.top.Free {
		for d := 0; d < 3; d++ {
			o.vtmp[i][d] = o.v0[i][d] + o.k2[i][d]
		}
	}
	o.acceleration(o.dt, o.vtmp, o.k3)

	// update velocities and positions
	for _, i := range o.top.Free {
		for d := 0; d < 3; d++ {
			dv := (o.k0[i][d] + 2.0*o.k1[i][d] + 2.0*o.k2[i][d] + o.k3[i][d]) / 6.0
			o.v[i][d] = o.v0[i][d] + dv
			o.dx[i][d] = o.v[i][d] * o.dt
			o.xyz[i][d] = o.xyz0[i][d] + o.dx[i][d]
		}
	}
}

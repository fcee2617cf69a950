// Copyright 2016 The Gobend Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bend

// Progress is an optional observer invoked once per outer batch with the
// global step counter and the three convergence criteria.
type Progress func(k int, crit1, crit2, crit3 float64)

// History records the convergence criteria of every completed outer batch,
// keyed by the global step counter. The solver never fails on
// non-convergence; callers inspect the final criteria instead.
type History struct {
	Steps         []int           // global step counter at the end of each batch
	Membrane      map[int]float64 // crit1: residual norm over membrane nodes
	Spline        map[int]float64 // crit2: residual norm over spline nodes
	Displacements map[int]float64 // crit3: displacement increment norm over free nodes
}

// NewHistory returns an empty history
func NewHistory() (o *History) {
	o = new(History)
	o.Membrane = make(map[int]float64)
	o.Spline = make(map[int]float64)
	o.Displacements = make(map[int]float64)
	return
}

// append records the criteria of one batch
func (o *History) append(k int, crit1, crit2, crit3 float64) {
	o.Steps = append(o.Steps, k)
	o.Membrane[k] = crit1
	o.Spline[k] = crit2
	o.Displacements[k] = crit3
}

// Len returns the number of completed batches
func (o *History) Len() int {
	return len(o.Steps)
}

// Final returns the criteria of the last completed batch
func (o *History) Final() (crit1, crit2, crit3 float64) {
	if len(o.Steps) == 0 {
		return
	}
	k := o.Steps[len(o.Steps)-1]
	return o.Membrane[k], o.Spline[k], o.Displacements[k]
}

// Converged tells whether the final criteria satisfy the given tolerances,
// i.e. (crit1 < tol1 and crit2 < tol2) or crit3 < tol3.
func (o *History) Converged(tol1, tol2, tol3 float64) bool {
	if len(o.Steps) == 0 {
		return false
	}
	crit1, crit2, crit3 := o.Final()
	return (crit1 < tol1 && crit2 < tol2) || crit3 < tol3
}

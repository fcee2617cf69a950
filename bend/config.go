// Copyright 2016 The Gobend Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bend

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Config holds the solver options. The zero value is not usable; start from
// DefaultConfig and change fields as needed.
type Config struct {

	// unit multipliers
	UnitE         float64 // multiplier applied to edge E; kN/mm2 => N/m2
	UnitRadius    float64 // multiplier applied to edge radius; mm => m
	UnitThickness float64 // multiplier applied to edge thickness; mm => m

	// relaxation
	Alpha float64 // initial bending amplification factor
	Kmax  int     // total inner-iteration budget
	Kdiv  int     // inner batch size between convergence checks

	// tolerances
	Tol1 float64 // membrane residual tolerance
	Tol2 float64 // spline residual tolerance
	Tol3 float64 // displacement increment tolerance
}

// DefaultConfig returns the default solver options
func DefaultConfig() *Config {
	return &Config{
		UnitE:         1e9,
		UnitRadius:    1e-3,
		UnitThickness: 1e-3,
		Alpha:         10000,
		Kmax:          10000,
		Kdiv:          100,
		Tol1:          1e-3,
		Tol2:          1e-2,
		Tol3:          1e-6,
	}
}

// Validate checks the numeric options. All floats must be finite and
// non-negative; the iteration counts must be at least 1.
func (o *Config) Validate() (err error) {
	vals := []struct {
		name string
		v    float64
	}{
		{"unit.E", o.UnitE},
		{"unit.radius", o.UnitRadius},
		{"unit.thickness", o.UnitThickness},
		{"alpha", o.Alpha},
		{"tol1", o.Tol1},
		{"tol2", o.Tol2},
		{"tol3", o.Tol3},
	}
	for _, it := range vals {
		if math.IsNaN(it.v) || math.IsInf(it.v, 0) {
			return chk.Err("config: %s must be finite (%v is incorrect)", it.name, it.v)
		}
		if it.v < 0 {
			return chk.Err("config: %s must be non-negative (%v is incorrect)", it.name, it.v)
		}
	}
	if o.Kmax < 1 {
		return chk.Err("config: kmax must be at least 1 (kmax = %d is incorrect)", o.Kmax)
	}
	if o.Kdiv < 1 {
		return chk.Err("config: kdiv must be at least 1 (kdiv = %d is incorrect)", o.Kdiv)
	}
	return
}

// Cable groups edges sharing a prescribed force density. Participation
// overwrites each member edge's qpre.
type Cable struct {
	Edges [][2]int // member edges as (u,v) node keys
	Qpre  float64  // prescribed force density [kN/m]
}

// Spline describes an ordered path of edges behaving as a continuous elastic
// beam. The edges may be listed in either orientation; preprocessing
// re-aligns them head-to-tail starting from Start.
type Spline struct {
	Start     int      // node key of the first path node
	Edges     [][2]int // path edges as (u,v) node keys
	E         float64  // Young's modulus [kN/mm2]
	Radius    float64  // tube outer radius [mm]
	Thickness float64  // tube wall thickness [mm]
}

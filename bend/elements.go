// Copyright 2016 The Gobend Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bend

import (
	"github.com/cpmech/gobend/bnet"
	"github.com/cpmech/gosl/chk"
)

// PI is truncated on purpose; sectional properties computed with it differ
// from math.Pi in the 6th digit and changing it perturbs all absolute forces.
const PI = 3.14159

// SplineElem is the preprocessed form of a spline: compact indices along the
// path and the overriding sectional stiffnesses.
type SplineElem struct {
	Vi []int // node indices along the path; edge k connects Vi[k] -> Vi[k+1]
	Ei []int // edge indices along the path
	EA float64
	EI float64
}

// Elements holds the per-edge property arrays after unit scaling and
// cable/spline overrides, plus the preprocessed splines and node classes.
type Elements struct {

	// per-edge arrays
	Qpre  []float64 // prescribed force densities
	Fpre  []float64 // prescribed axial forces
	Lpre  []float64 // prescribed rest lengths
	Linit []float64 // initial unstressed lengths
	EA    []float64 // axial stiffnesses
	EI    []float64 // bending stiffnesses

	// splines
	Splines []*SplineElem

	// node classes (compact indices, ascending)
	SplineNodes   []int // free nodes on spline paths
	MembraneNodes []int // free nodes not on spline paths
}

// NewElements runs the element preprocessor: unit scaling, sectional
// properties, cable and spline overrides, edge alignment along spline paths,
// and initialisation of the unstressed lengths. Mutates top.Edges to align
// spline edges head-to-tail.
func NewElements(net *bnet.Network, top *Topology, cables []Cable, splines []Spline, cfg *Config) (o *Elements, err error) {

	// gather edge attributes in index order
	ne := len(top.Pairs)
	o = new(Elements)
	o.Qpre = make([]float64, ne)
	o.Fpre = make([]float64, ne)
	o.Lpre = make([]float64, ne)
	o.Linit = make([]float64, ne)
	o.EA = make([]float64, ne)
	o.EI = make([]float64, ne)
	for e, pair := range top.Pairs {
		a := net.Edge(pair[0], pair[1])
		o.Qpre[e] = a.Qpre
		o.Fpre[e] = a.Fpre
		o.Lpre[e] = a.Lpre
		o.Linit[e] = a.Linit

		// unit scaling and sectional properties
		E := a.E * cfg.UnitE
		radius := a.Radius * cfg.UnitRadius
		thickness := a.Thickness * cfg.UnitThickness
		A := PI * (radius*radius - pow2(radius-thickness))
		I := PI * (pow4(radius) - pow4(radius-thickness)) / 4.0
		o.EA[e] = E * A
		o.EI[e] = E * I
	}

	// overwrite cable force densities
	for i, cable := range cables {
		for _, pair := range cable.Edges {
			e, ok := top.EdgeIndex(pair[0], pair[1])
			if !ok {
				err = chk.Err("cable %d references edge (%d,%d) which is absent from the network", i, pair[0], pair[1])
				return
			}
			o.Qpre[e] = cable.Qpre
		}
	}

	// preprocess splines: walk the declared edges from the start node,
	// aligning edge orientations with the walk direction
	var allvi []int
	for i, spline := range splines {
		last, ok := top.KeyIndex[spline.Start]
		if !ok {
			err = chk.Err("spline %d: start node %d is unknown", i, spline.Start)
			return
		}
		se := &SplineElem{Vi: []int{last}}
		for _, pair := range spline.Edges {
			e, ok := top.EdgeIndex(pair[0], pair[1])
			if !ok {
				err = chk.Err("spline %d references edge (%d,%d) which is absent from the network", i, pair[0], pair[1])
				return
			}
			ui, vi := top.KeyIndex[pair[0]], top.KeyIndex[pair[1]]
			var next int
			switch last {
			case ui:
				next = vi
			case vi:
				next = ui
			default:
				err = chk.Err("spline %d: path is not connected at edge (%d,%d)", i, pair[0], pair[1])
				return
			}
			top.Edges[e] = [2]int{last, next}
			se.Vi = append(se.Vi, next)
			se.Ei = append(se.Ei, e)
			last = next
		}
		allvi = append(allvi, se.Vi...)

		// spline material governs its edges: axial response through EA,
		// bending through EI; prescribed densities/forces/lengths are off
		E := spline.E * cfg.UnitE
		radius := spline.Radius * cfg.UnitRadius
		thickness := spline.Thickness * cfg.UnitThickness
		A := PI * (radius*radius - pow2(radius-thickness))
		I := PI * (pow4(radius) - pow4(radius-thickness)) / 4.0
		se.EA = E * A
		se.EI = E * I
		for _, e := range se.Ei {
			o.Qpre[e] = 0
			o.Lpre[e] = 0
			o.Fpre[e] = 0
			o.EA[e] = se.EA
			o.EI[e] = se.EI
		}
		o.Splines = append(o.Splines, se)
	}

	// node classes
	free := append([]int(nil), top.Free...)
	o.SplineNodes = intersect(sortedSet(allvi), free)
	o.MembraneNodes = subtract(free, o.SplineNodes)

	// if none of the initial lengths are set, use the current lengths
	allzero := true
	for _, l := range o.Linit {
		if l != 0 {
			allzero = false
			break
		}
	}
	if allzero {
		for e, pair := range top.Edges {
			a := net.Node(top.Keys[pair[0]])
			b := net.Node(top.Keys[pair[1]])
			dx := a.X - b.X
			dy := a.Y - b.Y
			dz := a.Z - b.Z
			o.Linit[e] = norm3(dx, dy, dz)
		}
	}
	return
}

func pow2(x float64) float64 { return x * x }
func pow4(x float64) float64 { x = x * x; return x * x }

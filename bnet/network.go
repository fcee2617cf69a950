// Copyright 2016 The Gobend Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bnet implements the network datastructure holding nodes, edges and
// their attributes for form finding of bending-active structures
package bnet

import (
	"strconv"

	"github.com/cpmech/gosl/chk"
	"github.com/katalvlaran/lvlath/core"
)

// NodeAttrs holds per-node design parameters and results
type NodeAttrs struct {

	// input
	X, Y, Z    float64 // position [m]
	Px, Py, Pz float64 // applied load [kN]
	Anchor     bool    // position is fixed during the solve

	// output
	Rx, Ry, Rz float64 // residual force
	Sx, Sy, Sz float64 // shear force from bending
	Mx, My, Mz float64 // bending moment vector
}

// EdgeAttrs holds per-edge design parameters and results
type EdgeAttrs struct {

	// input
	Qpre      float64 // prescribed force density [kN/m]
	Fpre      float64 // prescribed axial force [kN]
	Lpre      float64 // prescribed rest length [m]
	Linit     float64 // initial unstressed length [m]
	E         float64 // Young's modulus [kN/mm2]
	Radius    float64 // tube outer radius [mm]
	Thickness float64 // tube wall thickness [mm]

	// output
	Q float64 // resulting force density
	F float64 // resulting axial force
	L float64 // resulting length
}

// Network holds an ordered node/edge attribute store plus an adjacency graph.
// Node keys are opaque ints; edges are ordered (u,v) pairs. Iteration follows
// insertion order so the edge-to-index mapping is stable during one solve.
type Network struct {
	keys  []int               // node keys in insertion order
	nodes map[int]*NodeAttrs  // key => attributes
	edges [][2]int            // edge endpoints in insertion order
	eattr map[[2]int]*EdgeAttrs // (u,v) => attributes
	adj   *core.Graph         // undirected adjacency
}

// NewNetwork returns an empty network
func NewNetwork() (o *Network) {
	o = new(Network)
	o.nodes = make(map[int]*NodeAttrs)
	o.eattr = make(map[[2]int]*EdgeAttrs)
	o.adj = core.NewGraph(core.WithDirected(false))
	return
}

// AddNode adds a node with position x,y,z and default attributes
func (o *Network) AddNode(key int, x, y, z float64) (a *NodeAttrs, err error) {
	if _, ok := o.nodes[key]; ok {
		err = chk.Err("node %d exists already", key)
		return
	}
	if e := o.adj.AddVertex(vid(key)); e != nil {
		err = chk.Err("cannot add node %d to adjacency: %v", key, e)
		return
	}
	a = &NodeAttrs{X: x, Y: y, Z: z}
	o.nodes[key] = a
	o.keys = append(o.keys, key)
	return
}

// AddEdge adds an edge between existing nodes u and v with default attributes
func (o *Network) AddEdge(u, v int) (a *EdgeAttrs, err error) {
	if _, ok := o.nodes[u]; !ok {
		err = chk.Err("edge (%d,%d): node %d is unknown", u, v, u)
		return
	}
	if _, ok := o.nodes[v]; !ok {
		err = chk.Err("edge (%d,%d): node %d is unknown", u, v, v)
		return
	}
	if o.HasEdge(u, v) {
		err = chk.Err("edge (%d,%d) exists already", u, v)
		return
	}
	if _, e := o.adj.AddEdge(vid(u), vid(v), 0); e != nil {
		err = chk.Err("cannot add edge (%d,%d) to adjacency: %v", u, v, e)
		return
	}
	a = &EdgeAttrs{Qpre: 1.0}
	o.eattr[[2]int{u, v}] = a
	o.edges = append(o.edges, [2]int{u, v})
	return
}

// Nodes returns node keys in insertion order
func (o *Network) Nodes() []int {
	return o.keys
}

// Edges returns edge endpoints in insertion order
func (o *Network) Edges() [][2]int {
	return o.edges
}

// NumberOfNodes returns the number of nodes
func (o *Network) NumberOfNodes() int {
	return len(o.keys)
}

// NumberOfEdges returns the number of edges
func (o *Network) NumberOfEdges() int {
	return len(o.edges)
}

// HasNode tells whether key is a node of the network
func (o *Network) HasNode(key int) bool {
	_, ok := o.nodes[key]
	return ok
}

// HasEdge tells whether an edge connects u and v, in either orientation
func (o *Network) HasEdge(u, v int) bool {
	return o.adj.HasEdge(vid(u), vid(v))
}

// Node returns the attributes of a node or nil
func (o *Network) Node(key int) *NodeAttrs {
	return o.nodes[key]
}

// Edge returns the attributes of edge (u,v), accepting either orientation
func (o *Network) Edge(u, v int) *EdgeAttrs {
	if a, ok := o.eattr[[2]int{u, v}]; ok {
		return a
	}
	return o.eattr[[2]int{v, u}]
}

// Anchors returns the keys of all anchor nodes, in insertion order
func (o *Network) Anchors() (keys []int) {
	for _, key := range o.keys {
		if o.nodes[key].Anchor {
			keys = append(keys, key)
		}
	}
	return
}

// Degree returns the number of edges incident to a node
func (o *Network) Degree(key int) int {
	ids, err := o.adj.NeighborIDs(vid(key))
	if err != nil {
		return 0
	}
	return len(ids)
}

// NodePoint returns the position of a node
func (o *Network) NodePoint(key int) []float64 {
	a := o.nodes[key]
	if a == nil {
		return nil
	}
	return []float64{a.X, a.Y, a.Z}
}

// EdgeCoords returns the positions of the endpoints of edge (u,v)
func (o *Network) EdgeCoords(u, v int) (xu, xv []float64) {
	return o.NodePoint(u), o.NodePoint(v)
}

// EdgeVector returns xv - xu for edge (u,v)
func (o *Network) EdgeVector(u, v int) []float64 {
	a, b := o.nodes[u], o.nodes[v]
	if a == nil || b == nil {
		return nil
	}
	return []float64{b.X - a.X, b.Y - a.Y, b.Z - a.Z}
}

// NodeResidual returns the residual force vector at a node
func (o *Network) NodeResidual(key int) []float64 {
	a := o.nodes[key]
	if a == nil {
		return nil
	}
	return []float64{a.Rx, a.Ry, a.Rz}
}

// NodeReaction returns the reaction at an anchor, i.e. the negative of the
// residual. Returns nil for non-anchor nodes.
func (o *Network) NodeReaction(key int) []float64 {
	a := o.nodes[key]
	if a == nil || !a.Anchor {
		return nil
	}
	return []float64{-a.Rx, -a.Ry, -a.Rz}
}

// vid maps a node key to the adjacency-graph vertex id
func vid(key int) string {
	return strconv.Itoa(key)
}

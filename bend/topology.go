// Copyright 2016 The Gobend Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bend

import (
	"sort"

	"github.com/cpmech/gobend/bnet"
	"github.com/cpmech/gosl/la"
)

// Topology holds the compact indexing and incidence structures derived from a
// network. Edges holds compact endpoint indices and is re-oriented by the
// element preprocessor so that spline edges run head-to-tail along each path;
// the incidence matrix is assembled afterwards.
type Topology struct {

	// maps
	KeyIndex map[int]int    // node key => compact index
	UvIndex  map[[2]int]int // stored (u,v) key pair => edge index
	Keys     []int          // compact index => node key
	Pairs    [][2]int       // edge index => stored (u,v) key pair

	// connectivity
	Edges [][2]int // edge index => (ui,vi) compact endpoints; orientation mutable until BuildIncidence

	// partitions
	Fixed []int // compact indices of anchor nodes
	Free  []int // compact indices of the remaining nodes

	// incidence; built by BuildIncidence
	C   *la.CCMatrix // (ne x nv) with +1 at column u and -1 at column v
	Ct2 *la.CCMatrix // element-wise square of the transpose; for mass lumping
}

// NewTopology derives the compact indexing and the fixed/free partition of a
// network. The incidence matrix is not assembled yet; call BuildIncidence
// after the element preprocessor has aligned spline edges.
func NewTopology(net *bnet.Network) (o *Topology) {
	o = new(Topology)
	o.Keys = net.Nodes()
	o.KeyIndex = make(map[int]int)
	for i, key := range o.Keys {
		o.KeyIndex[key] = i
	}
	o.Pairs = net.Edges()
	o.UvIndex = make(map[[2]int]int)
	o.Edges = make([][2]int, len(o.Pairs))
	for e, pair := range o.Pairs {
		o.UvIndex[pair] = e
		o.Edges[e] = [2]int{o.KeyIndex[pair[0]], o.KeyIndex[pair[1]]}
	}
	isfixed := make([]bool, len(o.Keys))
	for _, key := range net.Anchors() {
		idx := o.KeyIndex[key]
		o.Fixed = append(o.Fixed, idx)
		isfixed[idx] = true
	}
	for i := range o.Keys {
		if !isfixed[i] {
			o.Free = append(o.Free, i)
		}
	}
	return
}

// EdgeIndex returns the index of the edge connecting node keys u and v,
// accepting either orientation. Returns ok=false if no such edge is stored.
func (o *Topology) EdgeIndex(u, v int) (e int, ok bool) {
	if e, ok = o.UvIndex[[2]int{u, v}]; ok {
		return
	}
	e, ok = o.UvIndex[[2]int{v, u}]
	return
}

// BuildIncidence assembles the sparse incidence matrix C and the element-wise
// square of its transpose. Must be called after edge orientations are final.
func (o *Topology) BuildIncidence() {
	nv := len(o.Keys)
	ne := len(o.Edges)
	var tc, t2 la.Triplet
	tc.Init(ne, nv, 2*ne)
	t2.Init(nv, ne, 2*ne)
	for e, pair := range o.Edges {
		tc.Put(e, pair[0], 1)
		tc.Put(e, pair[1], -1)
		t2.Put(pair[0], e, 1)
		t2.Put(pair[1], e, 1)
	}
	o.C = tc.ToMatrix(nil)
	o.Ct2 = t2.ToMatrix(nil)
}

// sortedSet returns the sorted unique values of a list of indices
func sortedSet(list []int) (res []int) {
	seen := make(map[int]bool)
	for _, i := range list {
		if !seen[i] {
			seen[i] = true
			res = append(res, i)
		}
	}
	sort.Ints(res)
	return
}

// intersect returns the sorted intersection of a sorted set with another set
func intersect(sorted []int, other []int) (res []int) {
	in := make(map[int]bool)
	for _, i := range other {
		in[i] = true
	}
	for _, i := range sorted {
		if in[i] {
			res = append(res, i)
		}
	}
	return
}

// subtract returns the sorted difference sorted \ other
func subtract(sorted []int, other []int) (res []int) {
	in := make(map[int]bool)
	for _, i := range other {
		in[i] = true
	}
	for _, i := range sorted {
		if !in[i] {
			res = append(res, i)
		}
	}
	return
}

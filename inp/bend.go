// Copyright 2016 The Gobend Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.bend) JSON file
package inp

import (
	"encoding/json"

	"github.com/cpmech/gobend/bend"
	"github.com/cpmech/gobend/bnet"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// NodeData holds node input data
type NodeData struct {
	Id     int     `json:"id"`     // node key
	X      float64 `json:"x"`      // position
	Y      float64 `json:"y"`      // position
	Z      float64 `json:"z"`      // position
	Anchor bool    `json:"anchor"` // fixed during the solve
	Px     float64 `json:"px"`     // applied load
	Py     float64 `json:"py"`     // applied load
	Pz     float64 `json:"pz"`     // applied load
}

// EdgeData holds edge input data. A nil qpre means the default density of 1.
type EdgeData struct {
	U         int      `json:"u"`         // first endpoint
	V         int      `json:"v"`         // second endpoint
	Qpre      *float64 `json:"qpre"`      // prescribed force density [kN/m]
	Fpre      float64  `json:"fpre"`      // prescribed axial force [kN]
	Lpre      float64  `json:"lpre"`      // prescribed rest length [m]
	Linit     float64  `json:"linit"`     // initial unstressed length [m]
	E         float64  `json:"E"`         // Young's modulus [kN/mm2]
	Radius    float64  `json:"radius"`    // tube outer radius [mm]
	Thickness float64  `json:"thickness"` // tube wall thickness [mm]
}

// CableData holds cable input data
type CableData struct {
	Edges [][2]int `json:"edges"`
	Qpre  float64  `json:"qpre"`
}

// SplineData holds spline input data
type SplineData struct {
	Start     int      `json:"start"`
	Edges     [][2]int `json:"edges"`
	E         float64  `json:"E"`
	Radius    float64  `json:"radius"`
	Thickness float64  `json:"thickness"`
}

// ConfigData holds solver options; absent keys keep the defaults and unknown
// keys are ignored by the decoder.
type ConfigData struct {
	UnitE         *float64 `json:"unitE"`
	UnitRadius    *float64 `json:"unitRadius"`
	UnitThickness *float64 `json:"unitThickness"`
	Alpha         *float64 `json:"alpha"`
	Kmax          *int     `json:"kmax"`
	Kdiv          *int     `json:"kdiv"`
	Tol1          *float64 `json:"tol1"`
	Tol2          *float64 `json:"tol2"`
	Tol3          *float64 `json:"tol3"`
}

// BendData is the schema of a .bend file
type BendData struct {
	Desc    string        `json:"desc"`
	Nodes   []*NodeData   `json:"nodes"`
	Edges   []*EdgeData   `json:"edges"`
	Cables  []*CableData  `json:"cables"`
	Splines []*SplineData `json:"splines"`
	Config  *ConfigData   `json:"config"`
}

// Job bundles one solver run: the network, the cable and spline records and
// the configuration.
type Job struct {
	Desc    string
	Network *bnet.Network
	Cables  []bend.Cable
	Splines []bend.Spline
	Config  *bend.Config
}

// ReadBend reads a .bend file and assembles the corresponding job
func ReadBend(path string) (job *Job, err error) {

	// read and decode
	buf, err := io.ReadFile(path)
	if err != nil {
		err = chk.Err("cannot read %q: %v", path, err)
		return
	}
	var dat BendData
	if e := json.Unmarshal(buf, &dat); e != nil {
		err = chk.Err("cannot decode %q: %v", path, e)
		return
	}

	// network
	net := bnet.NewNetwork()
	for _, n := range dat.Nodes {
		a, e := net.AddNode(n.Id, n.X, n.Y, n.Z)
		if e != nil {
			err = chk.Err("%q: %v", path, e)
			return
		}
		a.Anchor = n.Anchor
		a.Px, a.Py, a.Pz = n.Px, n.Py, n.Pz
	}
	for _, ed := range dat.Edges {
		a, e := net.AddEdge(ed.U, ed.V)
		if e != nil {
			err = chk.Err("%q: %v", path, e)
			return
		}
		if ed.Qpre != nil {
			a.Qpre = *ed.Qpre
		}
		a.Fpre = ed.Fpre
		a.Lpre = ed.Lpre
		a.Linit = ed.Linit
		a.E = ed.E
		a.Radius = ed.Radius
		a.Thickness = ed.Thickness
	}

	// records
	job = &Job{Desc: dat.Desc, Network: net}
	for _, c := range dat.Cables {
		job.Cables = append(job.Cables, bend.Cable{Edges: c.Edges, Qpre: c.Qpre})
	}
	for _, s := range dat.Splines {
		job.Splines = append(job.Splines, bend.Spline{Start: s.Start, Edges: s.Edges, E: s.E, Radius: s.Radius, Thickness: s.Thickness})
	}

	// configuration
	job.Config = dat.Config.apply(bend.DefaultConfig())
	err = job.Config.Validate()
	if err != nil {
		err = chk.Err("%q: %v", path, err)
		job = nil
	}
	return
}

// Run solves the job and writes the results back into the network
func (o *Job) Run(progress bend.Progress) (*bend.History, error) {
	return bend.BendSplines(o.Network, o.Cables, o.Splines, o.Config, progress)
}

// apply overwrites the options present in the file onto the defaults
func (o *ConfigData) apply(cfg *bend.Config) *bend.Config {
	if o == nil {
		return cfg
	}
	if o.UnitE != nil {
		cfg.UnitE = *o.UnitE
	}
	if o.UnitRadius != nil {
		cfg.UnitRadius = *o.UnitRadius
	}
	if o.UnitThickness != nil {
		cfg.UnitThickness = *o.UnitThickness
	}
	if o.Alpha != nil {
		cfg.Alpha = *o.Alpha
	}
	if o.Kmax != nil {
		cfg.Kmax = *o.Kmax
	}
	if o.Kdiv != nil {
		cfg.Kdiv = *o.Kdiv
	}
	if o.Tol1 != nil {
		cfg.Tol1 = *o.Tol1
	}
	if o.Tol2 != nil {
		cfg.Tol2 = *o.Tol2
	}
	if o.Tol3 != nil {
		cfg.Tol3 = *o.Tol3
	}
	return cfg
}

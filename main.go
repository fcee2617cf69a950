// Copyright 2016 The Gobend Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"

	"github.com/cpmech/gobend/inp"
	"github.com/cpmech/gobend/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// message
	io.PfWhite("\nGobend -- form finding of bending-active structures\n\n")

	// input filenamepath
	flag.Parse()
	var fnamepath string
	if len(flag.Args()) > 0 {
		fnamepath = flag.Arg(0)
	} else {
		chk.Panic("Please, provide a filename. Ex.: cantilever.bend")
	}

	// check extension
	if io.FnExt(fnamepath) == "" {
		fnamepath += ".bend"
	}

	// other options
	saveplot := false
	if len(flag.Args()) > 1 {
		saveplot = io.Atob(flag.Arg(1))
	}

	// read job
	job, err := inp.ReadBend(fnamepath)
	if err != nil {
		chk.Panic("cannot read input data:\n%v", err)
	}
	if job.Desc != "" {
		io.Pf("> %s\n", job.Desc)
	}

	// run
	hist, err := job.Run(func(k int, crit1, crit2, crit3 float64) {
		io.Pf("%6d : crit1=%12.6e crit2=%12.6e crit3=%12.6e\n", k, crit1, crit2, crit3)
	})
	if err != nil {
		chk.Panic("solver failed:\n%v", err)
	}

	// report
	out.PrintNodes(job.Network)
	out.PrintEdges(job.Network)
	out.PrintReactions(job.Network)
	crit1, crit2, crit3 := hist.Final()
	if hist.Converged(job.Config.Tol1, job.Config.Tol2, job.Config.Tol3) {
		io.PfGreen("> converged after %d batches\n", hist.Len())
	} else {
		io.PfRed("> not converged: crit1=%g crit2=%g crit3=%g\n", crit1, crit2, crit3)
	}

	// convergence plot
	if saveplot {
		out.PlotHistory(hist, "/tmp/gobend", io.FnKey(fnamepath)+".eps")
		io.Pf("> convergence plot saved to /tmp/gobend\n")
	}
}

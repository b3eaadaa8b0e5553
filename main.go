// Copyright 2016 The Gopore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/gopore/gopore/inp"
	"github.com/gopore/gopore/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, fnkey := io.ArgToFilename(0, "inp/data/ch4-h2", ".sim", true)
	verbose := io.ArgToBool(1, true)

	// message
	if verbose {
		io.PfWhite("\nGopore -- gas diffusivities in porous media\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
		))
	}

	// read simulation and build mixture model
	sim, err := inp.ReadSim(filepath.Dir(fnamepath), filepath.Base(fnamepath))
	if err != nil {
		chk.Panic("cannot read simulation:\n%v", err)
	}
	if verbose && sim.Data.Desc != "" {
		io.Pf("%s\n", sim.Data.Desc)
	}

	// compute and write tables
	dirout := sim.Data.DirOut
	if dirout == "" {
		dirout = "/tmp/gopore"
	}
	err = out.Save(dirout, fnkey, sim.Mix, sim.Conditions.T, sim.Conditions.P)
	if err != nil {
		chk.Panic("calculation failed:\n%v", err)
	}
	if verbose {
		io.Pf("\ndone. T = %g [K]  P = %g [Pa]  species = %v\n", sim.Conditions.T, sim.Conditions.P, sim.Mix.Names)
	}
}

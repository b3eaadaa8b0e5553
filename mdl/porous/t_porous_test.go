// Copyright 2016 The Gopore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package porous

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

func verbose() {
	chk.Verbose = true
}

func Test_geo01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("geo01. init and Knudsen diffusivity")

	var geo Model
	err := geo.Init(geo.GetPrms(true))
	if err != nil {
		tst.Errorf("cannot initialise geometry: %v\n", err)
		return
	}
	chk.Float64(tst, "nf", 1e-17, geo.Nf, 0.35)
	chk.Float64(tst, "dpore", 1e-17, geo.Dpore, 1e-8)
	chk.Float64(tst, "tau", 1e-17, geo.Tau, 1.5)

	// methane at 300 K
	mwCH4 := 16.043e-3
	D, err := geo.Knudsen(mwCH4, 300)
	if err != nil {
		tst.Errorf("Knudsen failed: %v\n", err)
		return
	}
	io.Pforan("Dknu(CH4, 300K) = %e [m²/s]\n", D)
	chk.Float64(tst, "Dknu", 1e-10, D, 4.8938e-7)

	// scales with √T: quadrupling T doubles D
	D4, err := geo.Knudsen(mwCH4, 1200)
	if err != nil {
		tst.Errorf("Knudsen failed: %v\n", err)
		return
	}
	chk.Float64(tst, "Dknu(4T)/Dknu(T)", 1e-14, D4/D, 2.0)

	// monotonically increasing in T
	T := utl.LinSpace(200, 600, 9)
	prev := 0.0
	for _, t := range T {
		d, err := geo.Knudsen(mwCH4, t)
		if err != nil {
			tst.Errorf("Knudsen failed: %v\n", err)
			return
		}
		if d <= prev {
			tst.Errorf("Knudsen diffusivity is not increasing in T: D(%g) = %e <= %e\n", t, d, prev)
			return
		}
		prev = d
	}
}

func Test_geo02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("geo02. invalid input")

	bad := []dbf.Params{
		{&dbf.P{N: "nf", V: 0}, &dbf.P{N: "dpore", V: 1e-8}, &dbf.P{N: "tau", V: 1.5}},
		{&dbf.P{N: "nf", V: 1.2}, &dbf.P{N: "dpore", V: 1e-8}, &dbf.P{N: "tau", V: 1.5}},
		{&dbf.P{N: "nf", V: 0.35}, &dbf.P{N: "dpore", V: -1e-8}, &dbf.P{N: "tau", V: 1.5}},
		{&dbf.P{N: "nf", V: 0.35}, &dbf.P{N: "dpore", V: 1e-8}, &dbf.P{N: "tau", V: 0}},
		{&dbf.P{N: "nf", V: 0.35}, &dbf.P{N: "dpore", V: 1e-8}, &dbf.P{N: "wrong", V: 1.5}},
	}
	for k, prms := range bad {
		var geo Model
		err := geo.Init(prms)
		if err == nil {
			tst.Errorf("Init should have failed for parameter set #%d\n", k)
			return
		}
		io.Pf("ok, error caught: %v\n", err)
	}

	var geo Model
	err := geo.Init(geo.GetPrms(true))
	if err != nil {
		tst.Errorf("cannot initialise geometry: %v\n", err)
		return
	}
	if _, err := geo.Knudsen(-1e-3, 300); err == nil {
		tst.Errorf("Knudsen should have failed for negative molecular weight\n")
		return
	}
	if _, err := geo.Knudsen(16.043e-3, 0); err == nil {
		tst.Errorf("Knudsen should have failed for zero temperature\n")
		return
	}
}

// Copyright 2016 The Gopore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/gopore/gopore/mdl/mixture"
	"github.com/gopore/gopore/mdl/porous"
)

// Data holds global data for simulations
type Data struct {
	Desc   string `json:"desc"`   // description of simulation
	LJfile string `json:"ljfile"` // Lennard-Jones table path, relative to the .sim file directory
	DirOut string `json:"dirout"` // directory for output; e.g. /tmp/gopore
}

// SpeciesData holds the input data of one species
type SpeciesData struct {
	Name string  `json:"name"` // species name; must match a substance in the LJ table
	Mw   float64 `json:"mw"`   // molecular weight [kg/mol]
}

// MediumData holds the input data of the porous medium
type MediumData struct {
	Nf    float64 `json:"nf"`    // void fraction [-]
	Dpore float64 `json:"dpore"` // nominal pore diameter [m]
	Tau   float64 `json:"tau"`   // tortuosity [-]
}

// ConditionsData holds the computation context. Temperature and pressure are
// supplied per run and never stored on the models.
type ConditionsData struct {
	T float64 `json:"temperature"` // temperature [K]
	P float64 `json:"pressure"`    // pressure [Pa]
}

// Simulation holds all simulation data read from a .sim JSON file
type Simulation struct {

	// input
	Data       Data           `json:"data"`       // global information
	Medium     MediumData     `json:"medium"`     // porous medium geometry
	Species    []*SpeciesData `json:"species"`    // species, in output order
	Conditions ConditionsData `json:"conditions"` // temperature and pressure

	// derived
	LJ  *LJTable       // Lennard-Jones table
	Mix *mixture.Model // mixture transport model, ready to compute
}

// ReadSim reads a simulation file and constructs the mixture model: the
// species' sigma/epsilon are resolved against the Lennard-Jones table named
// in the file. All input errors surface here, before any computation.
func ReadSim(dir, fn string) (sim *Simulation, err error) {

	// read file
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, chk.Err("cannot read simulation file %q: %v", fn, err)
	}

	// decode
	sim = new(Simulation)
	err = json.Unmarshal(b, sim)
	if err != nil {
		return nil, chk.Err("cannot decode simulation file %q: %v", fn, err)
	}

	// check conditions
	if sim.Conditions.T <= 0 {
		return nil, chk.Err("simulation %q: temperature T = %g [K] is invalid; must be positive", fn, sim.Conditions.T)
	}
	if sim.Conditions.P <= 0 {
		return nil, chk.Err("simulation %q: pressure P = %g [Pa] is invalid; must be positive", fn, sim.Conditions.P)
	}
	if len(sim.Species) < 1 {
		return nil, chk.Err("simulation %q: at least one species is required", fn)
	}
	if sim.Data.LJfile == "" {
		return nil, chk.Err("simulation %q: ljfile must be given", fn)
	}

	// geometry
	geo := new(porous.Model)
	err = geo.Init(dbf.Params{
		&dbf.P{N: "nf", V: sim.Medium.Nf},
		&dbf.P{N: "dpore", V: sim.Medium.Dpore},
		&dbf.P{N: "tau", V: sim.Medium.Tau},
	})
	if err != nil {
		return nil, err
	}

	// Lennard-Jones parameters
	sim.LJ, err = ReadLJTable(dir, sim.Data.LJfile)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(sim.Species))
	mw := make([]float64, len(sim.Species))
	sigma := make([]float64, len(sim.Species))
	epsilon := make([]float64, len(sim.Species))
	for k, spc := range sim.Species {
		names[k] = spc.Name
		mw[k] = spc.Mw
		sigma[k], epsilon[k], err = sim.LJ.Get(spc.Name)
		if err != nil {
			return nil, err
		}
	}

	// mixture model
	sim.Mix = new(mixture.Model)
	err = sim.Mix.Init(geo, names, mw, sigma, epsilon)
	if err != nil {
		return nil, err
	}
	return
}

// Copyright 2016 The Gopore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package porous implements the geometry model for gas transport in porous media
// and the Knudsen diffusivity derived from the kinetic theory of gases
//  Reference:
//   [1] Bird RB, Stewart WE and Lightfoot EN (1960) Transport Phenomena.
//       John Wiley & Sons, New York
package porous

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Rgas is the universal gas constant [J/(mol·K)] [=] [m³·Pa/(mol·K)]
const Rgas = 8.314

// Model holds the geometry of a porous medium. One geometry is shared by all
// species moving through the medium within one run.
type Model struct {
	Nf    float64 // void fraction of porous medium [-]
	Dpore float64 // nominal pore diameter [m]
	Tau   float64 // tortuosity [-]
}

// Init initialises this structure
func (o *Model) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "nf":
			o.Nf = p.V
		case "dpore":
			o.Dpore = p.V
		case "tau":
			o.Tau = p.V
		default:
			return chk.Err("porous geometry: parameter named %q is incorrect", p.N)
		}
	}
	if o.Nf <= 0 || o.Nf > 1 {
		return chk.Err("porous geometry: void fraction nf = %g is invalid; must be within (0, 1]", o.Nf)
	}
	if o.Dpore <= 0 {
		return chk.Err("porous geometry: pore diameter dpore = %g [m] is invalid; must be positive", o.Dpore)
	}
	if o.Tau <= 0 {
		return chk.Err("porous geometry: tortuosity tau = %g is invalid; must be positive", o.Tau)
	}
	return
}

// GetPrms gets (an example of) parameters
func (o Model) GetPrms(example bool) dbf.Params {
	if example {
		return dbf.Params{
			&dbf.P{N: "nf", V: 0.35},    // [-]
			&dbf.P{N: "dpore", V: 1e-8}, // [m]
			&dbf.P{N: "tau", V: 1.5},    // [-]
		}
	}
	return dbf.Params{
		&dbf.P{N: "nf", V: o.Nf},
		&dbf.P{N: "dpore", V: o.Dpore},
		&dbf.P{N: "tau", V: o.Tau},
	}
}

// Knudsen computes the Knudsen diffusivity [m²/s] of one species with molecular
// weight mw [kg/mol] at temperature T [K]. Knudsen diffusion is dominated by
// molecule-wall collisions; it depends only on the diffusing species, never on
// a partner species.
//  Units:
//   R = m³·Pa/(mol·K) [=] m·m·kg/(mol·s·s·K)  thus  √(R·T/mw) [=] m/s
func (o Model) Knudsen(mw, T float64) (float64, error) {
	if mw <= 0 {
		return 0, chk.Err("knudsen diffusivity: molecular weight mw = %g [kg/mol] is invalid; must be positive", mw)
	}
	if T <= 0 {
		return 0, chk.Err("knudsen diffusivity: temperature T = %g [K] is invalid; must be positive", T)
	}
	return o.Nf * o.Dpore / o.Tau / 3.0 * math.Sqrt(8.0*Rgas*T/math.Pi/mw), nil
}

// Copyright 2016 The Gopore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mixture implements a transport model for gas mixtures in porous media.
// Pairwise molecular diffusivities follow the Chapman-Enskog correlation with
// Lennard-Jones combining rules; the effective macropore diffusivity combines
// the molecular and Knudsen resistances in series
//  References:
//   [1] Bird RB, Stewart WE and Lightfoot EN (1960) Transport Phenomena.
//       John Wiley & Sons, New York
//   [2] Poling BE, Prausnitz JM and O'Connell JP (2001) The Properties of
//       Gases and Liquids, 5th ed. McGraw-Hill, New York
package mixture

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/gopore/gopore/mdl/porous"
)

// PatmPa is standard atmospheric pressure [Pa/atm]
const PatmPa = 101325.0

// constants of the collision integral approximation; Neufeld et al, as
// tabulated in [1] p. 746
const (
	a1 = 1.06036
	b1 = 0.15610
	a2 = 0.19300
	b2 = 0.47635
	a3 = 1.03587
	b3 = 1.52996
	a4 = 1.76474
	b4 = 3.89411
)

// Model holds one porous-medium geometry and the Lennard-Jones parameters of
// every species in the mixture, keyed by species name. Names keeps the
// insertion order of species; the pairwise output tables iterate in this
// order. The model is immutable after Init; all compute methods are pure
// functions of (model, T, P).
type Model struct {

	// geometry
	Geo *porous.Model // porous medium shared by all species

	// per-species parameters
	Names []string           // species names; defines iteration order
	Mw    map[string]float64 // molecular weight [kg/mol]
	Sigma map[string]float64 // Lennard-Jones collision diameter [Å]
	Eps   map[string]float64 // Lennard-Jones well depth ÷ Boltzmann constant [K]
}

// Result holds one entry of the pairwise results table
type Result struct {
	I     string  // diffusing species
	J     string  // partner species
	Name  string  // metric name; e.g. "knudsen"
	Value float64 // diffusivity [m²/s]
}

// Init initialises this structure. The slices mw, sigma and epsilon run
// parallel to names: mw in [kg/mol], sigma in [Å], epsilon in [K].
func (o *Model) Init(geo *porous.Model, names []string, mw, sigma, epsilon []float64) (err error) {
	if geo == nil {
		return chk.Err("mixture model: porous geometry model must be non-nil")
	}
	n := len(names)
	if n < 1 {
		return chk.Err("mixture model: at least one species is required")
	}
	if len(mw) != n || len(sigma) != n || len(epsilon) != n {
		return chk.Err("mixture model: lengths of names, mw, sigma and epsilon must match: %d, %d, %d, %d", n, len(mw), len(sigma), len(epsilon))
	}
	o.Geo = geo
	o.Names = make([]string, n)
	o.Mw = make(map[string]float64)
	o.Sigma = make(map[string]float64)
	o.Eps = make(map[string]float64)
	for k, name := range names {
		if name == "" {
			return chk.Err("mixture model: species #%d has an empty name", k)
		}
		if _, dup := o.Mw[name]; dup {
			return chk.Err("mixture model: species %q is given more than once", name)
		}
		if mw[k] <= 0 {
			return chk.Err("mixture model: molecular weight of %q = %g [kg/mol] is invalid; must be positive", name, mw[k])
		}
		if sigma[k] <= 0 {
			return chk.Err("mixture model: sigma of %q = %g [Å] is invalid; must be positive", name, sigma[k])
		}
		if epsilon[k] <= 0 {
			return chk.Err("mixture model: epsilon of %q = %g [K] is invalid; must be positive", name, epsilon[k])
		}
		o.Names[k] = name
		o.Mw[name] = mw[k]
		o.Sigma[name] = sigma[k]
		o.Eps[name] = epsilon[k]
	}
	return
}

// SigmaIJ computes the Lennard-Jones combining rule for sigma [Å]: the
// arithmetic mean of the pure-species collision diameters. Symmetric in (i,j).
func (o *Model) SigmaIJ(i, j string) (float64, error) {
	si, oki := o.Sigma[i]
	if !oki {
		return 0, chk.Err("sigma combining rule: species %q has no sigma entry", i)
	}
	sj, okj := o.Sigma[j]
	if !okj {
		return 0, chk.Err("sigma combining rule: species %q has no sigma entry", j)
	}
	return (si + sj) / 2.0, nil
}

// EpsIJ computes the Lennard-Jones combining rule for epsilon [K]: the
// geometric mean of the pure-species well depths. Symmetric in (i,j).
func (o *Model) EpsIJ(i, j string) (float64, error) {
	ei, oki := o.Eps[i]
	if !oki {
		return 0, chk.Err("epsilon combining rule: species %q has no epsilon entry", i)
	}
	ej, okj := o.Eps[j]
	if !okj {
		return 0, chk.Err("epsilon combining rule: species %q has no epsilon entry", j)
	}
	return math.Sqrt(ei * ej), nil
}

// CollisionIntegral approximates the collision integral Ω [-] as a function of
// the reduced temperature w = T/epsilon_ij. The approximation is only valid
// while the result stays within (0.5, 2.7); outside this window the reduced
// temperature fell outside the correlation's range and an error is returned
// instead of a clamped value.
func CollisionIntegral(w float64) (float64, error) {
	if w <= 0 {
		return 0, chk.Err("collision integral: reduced temperature w = %g is invalid; must be positive", w)
	}
	value := a1/math.Pow(w, b1) + a2/math.Exp(b2*w) + a3/math.Exp(b3*w) + a4/math.Exp(b4*w)
	if value <= 0.5 || value >= 2.7 {
		return 0, chk.Err("collision integral: value %.3f at reduced temperature w = %g is outside the valid range (0.5, 2.7)", value, w)
	}
	return value, nil
}

// Knudsen computes the Knudsen diffusivity [m²/s] of species i at temperature
// T [K]. Knudsen diffusion is single-species by physics: no partner species is
// involved. The pairwise results table repeats this value once per (i,j) row
// for table symmetry only.
func (o *Model) Knudsen(i string, T float64) (float64, error) {
	mw, ok := o.Mw[i]
	if !ok {
		return 0, chk.Err("knudsen diffusivity: species %q has no molecular weight entry", i)
	}
	return o.Geo.Knudsen(mw, T)
}

// Molecular computes the binary molecular diffusivity [m²/s] of the pair
// (i,j) by the Chapman-Enskog correlation. T is in [K] and Patm is in [atm]:
// callers holding pressure in Pa must divide by 101325 first — feeding Pa
// here silently produces results wrong by orders of magnitude.
//
// The correlation is evaluated in its native units (g/mol, Å, atm, cm²/s)
// and the result converted to m²/s.
func (o *Model) Molecular(i, j string, T, Patm float64) (float64, error) {
	if T <= 0 {
		return 0, chk.Err("molecular diffusivity: temperature T = %g [K] is invalid; must be positive", T)
	}
	if Patm <= 0 {
		return 0, chk.Err("molecular diffusivity: pressure P = %g [atm] is invalid; must be positive", Patm)
	}
	mi, oki := o.Mw[i]
	if !oki {
		return 0, chk.Err("molecular diffusivity: species %q has no molecular weight entry", i)
	}
	mj, okj := o.Mw[j]
	if !okj {
		return 0, chk.Err("molecular diffusivity: species %q has no molecular weight entry", j)
	}
	sij, err := o.SigmaIJ(i, j)
	if err != nil {
		return 0, err
	}
	eij, err := o.EpsIJ(i, j)
	if err != nil {
		return 0, err
	}
	omega, err := CollisionIntegral(T / eij)
	if err != nil {
		return 0, chk.Err("molecular diffusivity of pair (%q,%q): %v", i, j, err)
	}

	// molecular weights in g/mol to apply the correlation
	Mi := mi * 1000.0
	Mj := mj * 1000.0

	// native result is in cm²/s; ÷100 once per squared length dimension
	return 1.858e-3 * math.Sqrt(T*T*T*(1.0/Mi+1.0/Mj)) / (Patm * sij * sij * omega) / 100.0 / 100.0, nil
}

// EffectiveMacropore computes the effective macropore diffusivity [m²/s] of
// species i diffusing against j, combining the molecular and Knudsen
// diffusivities as resistances in series and scaling by porosity/tortuosity.
// T is in [K] and P is in [Pa]; the conversion to [atm] for the molecular
// term happens here.
func (o *Model) EffectiveMacropore(i, j string, T, P float64) (float64, error) {
	if P <= 0 {
		return 0, chk.Err("effective macropore diffusivity: pressure P = %g [Pa] is invalid; must be positive", P)
	}
	dmol, err := o.Molecular(i, j, T, P/PatmPa)
	if err != nil {
		return 0, err
	}
	dknu, err := o.Knudsen(i, T)
	if err != nil {
		return 0, err
	}
	return o.Geo.Nf / o.Geo.Tau / (1.0/dmol + 1.0/dknu), nil
}

// Calc computes all three diffusivity metrics for every ordered pair (i,j)
// with i ≠ j, in the insertion order of the species list. T is in [K] and P
// is in [Pa]. Any error aborts the batch; partial results are discarded.
func (o *Model) Calc(T, P float64) (results []Result, err error) {
	for _, i := range o.Names {
		for _, j := range o.Names {
			if i == j {
				continue
			}
			deff, err := o.EffectiveMacropore(i, j, T, P)
			if err != nil {
				return nil, err
			}
			dknu, err := o.Knudsen(i, T)
			if err != nil {
				return nil, err
			}
			dmol, err := o.Molecular(i, j, T, P/PatmPa)
			if err != nil {
				return nil, err
			}
			results = append(results,
				Result{I: i, J: j, Name: "effective_macropore", Value: deff},
				Result{I: i, J: j, Name: "knudsen", Value: dknu},
				Result{I: i, J: j, Name: "molecular", Value: dmol},
			)
		}
	}
	return
}

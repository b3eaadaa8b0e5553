// Copyright 2016 The Gopore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file and the
// Lennard-Jones parameter table read from a comma-separated text file
package inp

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// names of the columns that must be present in a Lennard-Jones table
const (
	ColSubstance = "Substance"
	ColSigma     = "sigma [angstrom]"
	ColEpsilon   = "epsilon [K]"
)

// LJTable holds Lennard-Jones parameters looked up from a reference table;
// e.g. Poling et al, The Properties of Gases and Liquids, Appendix B
type LJTable struct {
	Names []string           // substances in file order
	Sigma map[string]float64 // collision diameter [Å]
	Eps   map[string]float64 // well depth ÷ Boltzmann constant [K]
}

// ReadLJTable reads a Lennard-Jones table from a comma-separated text file.
// The header row must name at least the Substance, sigma and epsilon columns;
// extra columns are ignored and blank lines are skipped.
func ReadLJTable(dir, fn string) (tab *LJTable, err error) {
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return
	}
	lines := strings.Split(string(b), "\n")

	// header
	if strings.TrimSpace(lines[0]) == "" {
		return nil, chk.Err("LJ table %q is empty", fn)
	}
	header := strings.Split(strings.TrimSpace(lines[0]), ",")
	for k, name := range header {
		header[k] = strings.TrimSpace(name)
	}
	isub := utl.StrIndexSmall(header, ColSubstance)
	isig := utl.StrIndexSmall(header, ColSigma)
	ieps := utl.StrIndexSmall(header, ColEpsilon)
	if isub < 0 || isig < 0 || ieps < 0 {
		return nil, chk.Err("LJ table %q: header must contain columns %q, %q and %q; got %q", fn, ColSubstance, ColSigma, ColEpsilon, header)
	}

	// rows
	tab = &LJTable{
		Sigma: make(map[string]float64),
		Eps:   make(map[string]float64),
	}
	for k, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		cells := strings.Split(line, ",")
		if len(cells) != len(header) {
			return nil, chk.Err("LJ table %q: row %d has %d columns; header has %d", fn, k+2, len(cells), len(header))
		}
		name := strings.TrimSpace(cells[isub])
		if name == "" {
			return nil, chk.Err("LJ table %q: row %d has an empty substance name", fn, k+2)
		}
		if _, dup := tab.Sigma[name]; dup {
			return nil, chk.Err("LJ table %q: substance %q appears more than once", fn, name)
		}
		sigma, err := strconv.ParseFloat(strings.TrimSpace(cells[isig]), 64)
		if err != nil {
			return nil, chk.Err("LJ table %q: cannot parse sigma of %q: %v", fn, name, err)
		}
		epsilon, err := strconv.ParseFloat(strings.TrimSpace(cells[ieps]), 64)
		if err != nil {
			return nil, chk.Err("LJ table %q: cannot parse epsilon of %q: %v", fn, name, err)
		}
		if sigma <= 0 || epsilon <= 0 {
			return nil, chk.Err("LJ table %q: substance %q has non-positive parameters: sigma = %g [Å], epsilon = %g [K]", fn, name, sigma, epsilon)
		}
		tab.Names = append(tab.Names, name)
		tab.Sigma[name] = sigma
		tab.Eps[name] = epsilon
	}
	return
}

// Get returns the Lennard-Jones parameters of one substance. A substance
// absent from the table is a fatal input error naming the substance.
func (o *LJTable) Get(name string) (sigma, epsilon float64, err error) {
	sigma, ok := o.Sigma[name]
	if !ok {
		err = chk.Err("no Lennard-Jones parameters found for %q in table", name)
		return
	}
	epsilon = o.Eps[name]
	return
}

// Copyright 2016 The Gopore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the serialization of model parameters and batch
// results to flat comma-separated tables
package out

import (
	"bytes"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/gopore/gopore/mdl/mixture"
)

// Params writes the parameter dump of the model to buf: one row per scalar
// field and one row per mapping key or sequence element, with the parent
// field name blank on continuation rows. The rows are
//  name, ,value        scalar
//  name, ,             mapping header
//      ,key,value      one per key
//  name, ,             sequence header
//      ,element,       one per element
func Params(buf *bytes.Buffer, m *mixture.Model) (err error) {
	return writeFields(buf, m.Fields())
}

// writeFields renders fields by dispatching on the closed set of kinds
func writeFields(buf *bytes.Buffer, fields []mixture.Field) (err error) {
	for _, f := range fields {
		switch f.Kind {
		case mixture.KindScalar:
			io.Ff(buf, "%s, ,%v\n", f.Name, f.Value)
		case mixture.KindMapping:
			io.Ff(buf, "%s, , \n", f.Name)
			for _, key := range f.Keys {
				io.Ff(buf, " ,%s,%v\n", key, f.Mapping[key])
			}
		case mixture.KindSequence:
			io.Ff(buf, "%s, , \n", f.Name)
			for _, item := range f.Seq {
				io.Ff(buf, " ,%s, \n", item)
			}
		default:
			return chk.Err("parameter dump: field %q has unsupported kind %d", f.Name, f.Kind)
		}
	}
	return
}

// Results writes the pairwise results table to buf: one row per (i,j,metric)
// with i ≠ j, values in scientific notation [m²/s], in species insertion
// order. T is in [K] and P is in [Pa].
func Results(buf *bytes.Buffer, m *mixture.Model, T, P float64) (err error) {
	results, err := m.Calc(T, P)
	if err != nil {
		return
	}
	for _, r := range results {
		io.Ff(buf, "%s,%s,%s [m^2/s],%e\n", r.I, r.J, r.Name, r.Value)
	}
	return
}

// Save writes the parameter dump to <fnkey>-params.csv and the results table
// to <fnkey>-results.csv within dirout
func Save(dirout, fnkey string, m *mixture.Model, T, P float64) (err error) {
	var params, results bytes.Buffer
	err = Params(&params, m)
	if err != nil {
		return
	}
	err = Results(&results, m, T, P)
	if err != nil {
		return
	}
	io.WriteFileVD(dirout, fnkey+"-params.csv", &params)
	io.WriteFileVD(dirout, fnkey+"-results.csv", &results)
	return
}

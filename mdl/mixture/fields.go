// Copyright 2016 The Gopore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mixture

import "github.com/gopore/gopore/mdl/porous"

// Kind labels the closed set of field kinds the parameter writers know how to
// render. Writers dispatch on Kind; an unknown value is a fatal error there.
type Kind int

// field kinds
const (
	KindScalar   Kind = iota + 1 // single float64 value
	KindMapping                  // species name → float64, with ordered keys
	KindSequence                 // ordered list of strings
)

// Field is one reportable field of the model. Which member is meaningful
// depends on Kind: Value for scalars, Keys+Mapping for mappings, Seq for
// sequences.
type Field struct {
	Name    string
	Kind    Kind
	Value   float64
	Keys    []string
	Mapping map[string]float64
	Seq     []string
}

// Fields returns every scalar, mapping and list field of the model, in a
// fixed order, for the parameter dump. Mapping fields carry the species
// insertion order in Keys so the dump is reproducible.
func (o *Model) Fields() []Field {
	return []Field{
		{Name: "void_fraction", Kind: KindScalar, Value: o.Geo.Nf},
		{Name: "d_pore", Kind: KindScalar, Value: o.Geo.Dpore},
		{Name: "tortuosity", Kind: KindScalar, Value: o.Geo.Tau},
		{Name: "R", Kind: KindScalar, Value: porous.Rgas},
		{Name: "molecular_weight", Kind: KindMapping, Keys: o.Names, Mapping: o.Mw},
		{Name: "sigma", Kind: KindMapping, Keys: o.Names, Mapping: o.Sigma},
		{Name: "epsilon", Kind: KindMapping, Keys: o.Names, Mapping: o.Eps},
		{Name: "species", Kind: KindSequence, Seq: o.Names},
	}
}

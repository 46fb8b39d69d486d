// Copyright 2019 The PyBaMM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package potential implements derived potential variables
package potential

import (
	"github.com/santacodes/PyBaMM/mdl"
	"github.com/santacodes/PyBaMM/sym"
)

// Potential names the open-circuit potentials and reaction
// overpotentials of the two electrodes. Expression builder consumed by
// the model assembly.
type Potential struct{}

// New returns the potential builder
func New() *Potential {
	return &Potential{}
}

// DerivedOpenCircuitPotentials returns the named OCP variables and the
// open-circuit voltage
func (o *Potential) DerivedOpenCircuitPotentials(ocpN, ocpP *sym.Node) []*mdl.VarDef {
	return []*mdl.VarDef{
		{Name: "X-averaged negative electrode open circuit potential", Expr: ocpN},
		{Name: "X-averaged positive electrode open circuit potential", Expr: ocpP},
		{Name: "X-averaged open circuit voltage", Expr: sym.Sub(ocpP, ocpN)},
	}
}

// DerivedReactionOverpotentials returns the named overpotential
// variables and their difference
func (o *Potential) DerivedReactionOverpotentials(etaN, etaP *sym.Node) []*mdl.VarDef {
	return []*mdl.VarDef{
		{Name: "X-averaged negative electrode reaction overpotential", Expr: etaN},
		{Name: "X-averaged positive electrode reaction overpotential", Expr: etaP},
		{Name: "X-averaged reaction overpotential", Expr: sym.Sub(etaP, etaN)},
	}
}

// Copyright 2019 The PyBaMM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package electrode implements electrode charge-conservation submodels
package electrode

import (
	"github.com/santacodes/PyBaMM/mdl"
	"github.com/santacodes/PyBaMM/sym"

	"github.com/cpmech/gosl/chk"
)

// Ohm implements Ohmic charge conservation in the solid phase.
// At leading order the electrode potentials are uniform and the terminal
// voltage follows from the open-circuit voltage and the overpotentials.
type Ohm struct{}

// New returns the electrode builder
func New() *Ohm {
	return &Ohm{}
}

// LeadingOrderVariables reads the open-circuit voltage and the reaction
// overpotential merged earlier and returns the terminal voltage
func (o *Ohm) LeadingOrderVariables(vars *mdl.VarTable) (defs []*mdl.VarDef, err error) {
	ocv, err := vars.Get("X-averaged open circuit voltage")
	if err != nil {
		return nil, chk.Err("electrode submodel needs the open circuit voltage:\n%v", err)
	}
	eta, err := vars.Get("X-averaged reaction overpotential")
	if err != nil {
		return nil, chk.Err("electrode submodel needs the reaction overpotential:\n%v", err)
	}
	return []*mdl.VarDef{
		{Name: "Terminal voltage", Expr: sym.Add(ocv, eta)},
	}, nil
}

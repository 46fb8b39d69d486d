// Copyright 2019 The PyBaMM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package thermal implements thermal submodels
package thermal

import (
	"github.com/santacodes/PyBaMM/mdl"
	"github.com/santacodes/PyBaMM/sym"
)

// Isothermal holds the cell at the reference temperature. It contributes
// only derived temperature variables; there is no thermal state.
type Isothermal struct{}

// NewIsothermal returns the isothermal submodel
func NewIsothermal() *Isothermal {
	return &Isothermal{}
}

// Name returns the submodel name
func (o *Isothermal) Name() string {
	return "isothermal"
}

// DerivedVariables contributes the (uniform) temperature variables
func (o *Isothermal) DerivedVariables(vars *mdl.VarTable) ([]*mdl.VarDef, error) {
	temp := sym.Broadcast(sym.NewScalar(1), []string{"current collector"})
	return []*mdl.VarDef{
		{Name: "X-averaged cell temperature", Expr: temp},
		{Name: "X-averaged negative electrode temperature", Expr: temp},
		{Name: "X-averaged positive electrode temperature", Expr: temp},
	}, nil
}

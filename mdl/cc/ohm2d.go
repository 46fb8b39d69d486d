// Copyright 2019 The PyBaMM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cc implements current collector submodels
package cc

import (
	"github.com/santacodes/PyBaMM/mdl"
	"github.com/santacodes/PyBaMM/sym"
)

// OhmTwoDimensional implements Ohmic conduction in the plane of the
// current collectors (dimensionality 2): an algebraic system coupling
// the collector potential with the through-cell current density.
type OhmTwoDimensional struct {
	V *sym.Node // current collector voltage state
	I *sym.Node // through-cell current density state
}

// NewOhmTwoDimensional returns the 2-D collector submodel governing the
// given voltage and current states
func NewOhmTwoDimensional(v, i *sym.Node) *OhmTwoDimensional {
	return &OhmTwoDimensional{V: v, I: i}
}

// Name returns the submodel name
func (o *OhmTwoDimensional) Name() string {
	return "current collector (Ohm, two-dimensional)"
}

// FundamentalVariables contributes the collector voltage and current
func (o *OhmTwoDimensional) FundamentalVariables() ([]*mdl.VarDef, error) {
	return []*mdl.VarDef{
		{Name: o.V.Name, Expr: o.V},
		{Name: o.I.Name, Expr: o.I},
	}, nil
}

// Equations contributes the algebraic system: in-plane conduction
// balancing the through-cell current, and the current matching the
// applied programme
func (o *OhmTwoDimensional) Equations() ([]*mdl.Equation, error) {
	alpha := sym.NewParameter("Current collector resistance")
	conduction := sym.Add(sym.Diverg(sym.Grad(o.V)), sym.Mul(alpha, o.I))
	applied := sym.Sub(o.I, sym.NewParameter("Current function"))
	return []*mdl.Equation{
		{State: o.V, Expr: conduction, Differential: false},
		{State: o.I, Expr: applied, Differential: false},
	}, nil
}

// InitialConditions contributes the initial guesses of the algebraic
// states
func (o *OhmTwoDimensional) InitialConditions() ([]*mdl.IcDef, error) {
	return []*mdl.IcDef{
		{State: o.V, Expr: sym.NewParameter("Initial current collector voltage")},
		{State: o.I, Expr: sym.NewParameter("Typical current")},
	}, nil
}

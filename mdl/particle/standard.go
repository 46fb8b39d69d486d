// Copyright 2019 The PyBaMM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package particle implements submodels for lithium transport in the
// active-material particles
package particle

import (
	"github.com/santacodes/PyBaMM/mdl"
	"github.com/santacodes/PyBaMM/sym"

	"github.com/cpmech/gosl/io"
)

// Standard implements Fickian diffusion of lithium in a representative
// spherical particle:
//
//        dc    1
//        ── = ─── (-div N)      with      N = -D(c,T) grad c
//        dt    C
//
// driven by the homogeneous interfacial current density at the surface.
type Standard struct {
	Dom  string    // electrode side: "Negative" or "Positive"
	C    *sym.Node // particle concentration state
	T    *sym.Node // temperature, broadcast onto the particle domain
	J    *sym.Node // homogeneous interfacial current density
	flux *sym.Node // -D(c,T) grad c; shared by equation and derived variable
}

// NewStandard returns the particle submodel for one electrode side.
// t must already live on the particle domain (broadcast by the caller);
// j drives the surface boundary condition.
func NewStandard(dom string, c, t, j *sym.Node) (o *Standard) {
	o = &Standard{Dom: dom, C: c, T: t, J: j}
	d := sym.NewFunParam(io.Sf("%s particle diffusivity", o.Dom), o.C, o.T)
	o.flux = sym.Neg(sym.Mul(d, sym.Grad(o.C)))
	return
}

// Name returns the submodel name
func (o *Standard) Name() string {
	return io.Sf("%s particle (Fickian diffusion)", o.Dom)
}

// lowered returns the side prefix in lower case; e.g. "negative"
func (o *Standard) lowered() string {
	if o.Dom == "Negative" {
		return "negative"
	}
	return "positive"
}

// FundamentalVariables contributes the particle concentration state
func (o *Standard) FundamentalVariables() ([]*mdl.VarDef, error) {
	return []*mdl.VarDef{
		{Name: o.C.Name, Expr: o.C},
	}, nil
}

// Equations contributes the differential system for the concentration
func (o *Standard) Equations() ([]*mdl.Equation, error) {
	tau := sym.NewParameter(io.Sf("%s particle diffusion timescale", o.Dom))
	rhs := sym.Div(sym.Neg(sym.Diverg(o.flux)), tau)
	return []*mdl.Equation{
		{State: o.C, Expr: rhs, Differential: true},
	}, nil
}

// InitialConditions contributes the initial concentration
func (o *Standard) InitialConditions() ([]*mdl.IcDef, error) {
	return []*mdl.IcDef{
		{State: o.C, Expr: sym.NewParameter(io.Sf("Initial concentration in %s electrode", o.lowered()))},
	}, nil
}

// BoundaryConditions contributes zero flux at the particle centre and
// the interfacial-current-driven flux at the surface
func (o *Standard) BoundaryConditions() ([]*mdl.BcDef, error) {
	tau := sym.NewParameter(io.Sf("%s particle diffusion timescale", o.Dom))
	a := sym.NewParameter(io.Sf("%s electrode surface area to volume ratio", o.Dom))
	surfFlux := sym.Neg(sym.Div(sym.Mul(tau, o.J), a))
	return []*mdl.BcDef{
		{State: o.C, Pair: &mdl.BcPair{
			Left:  &mdl.Bc{Kind: "Neumann", Expr: sym.NewScalar(0)},
			Right: &mdl.Bc{Kind: "Neumann", Expr: surfFlux},
		}},
	}, nil
}

// DerivedVariables contributes the flux and the surface concentration
func (o *Standard) DerivedVariables(vars *mdl.VarTable) ([]*mdl.VarDef, error) {
	return []*mdl.VarDef{
		{Name: io.Sf("X-averaged %s particle flux", o.lowered()), Expr: o.flux},
		{Name: io.Sf("X-averaged %s particle surface concentration", o.lowered()), Expr: sym.Surf(o.C)},
	}, nil
}

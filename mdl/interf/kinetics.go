// Copyright 2019 The PyBaMM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package interf implements interfacial reaction kinetics at the
// electrode/electrolyte interface
package interf

import (
	"math"

	"github.com/santacodes/PyBaMM/mdl"
	"github.com/santacodes/PyBaMM/sym"

	"github.com/cpmech/gosl/io"
)

// LithiumIonReaction builds the expressions of lithium-ion intercalation
// kinetics for one electrode side. It is an expression builder consumed
// by the model assembly, not a submodel on its own.
type LithiumIonReaction struct {
	Dom string // electrode side: "Negative" or "Positive"
}

// New returns the kinetics builder for one electrode side
func New(dom string) *LithiumIonReaction {
	return &LithiumIonReaction{Dom: dom}
}

// lowered returns the side prefix in lower case
func (o *LithiumIonReaction) lowered() string {
	if o.Dom == "Negative" {
		return "negative"
	}
	return "positive"
}

// HomogeneousCurrent returns the interfacial current density obtained by
// spreading the through-cell current density uniformly over the
// electrode thickness
func (o *LithiumIonReaction) HomogeneousCurrent(iCC *sym.Node) *sym.Node {
	l := sym.NewParameter(io.Sf("%s electrode thickness", o.Dom))
	j := sym.Div(iCC, l)
	if o.Dom == "Positive" {
		j = sym.Neg(j)
	}
	return j
}

// ExchangeCurrent returns the exchange-current density as a function of
// the electrolyte and particle-surface concentrations
func (o *LithiumIonReaction) ExchangeCurrent(cE, cSurf *sym.Node) *sym.Node {
	return sym.NewFunParam(io.Sf("%s electrode exchange-current density", o.Dom), cE, cSurf)
}

// InverseButlerVolmer returns the reaction overpotential obtained by
// inverting symmetric Butler-Volmer kinetics: eta = 2 asinh(j / (2 j0))
func (o *LithiumIonReaction) InverseButlerVolmer(j, j0 *sym.Node) *sym.Node {
	ratio := sym.Div(j, sym.Mul(sym.NewScalar(2), j0))
	return sym.Mul(sym.NewScalar(2), sym.NewFunction("arcsinh", func(args []float64) float64 {
		return math.Asinh(args[0])
	}, ratio))
}

// OpenCircuitPotential returns the open-circuit potential as a function
// of the particle-surface concentration
func (o *LithiumIonReaction) OpenCircuitPotential(cSurf *sym.Node) *sym.Node {
	return sym.NewFunParam(io.Sf("%s electrode OCP", o.Dom), cSurf)
}

// DerivedCurrents returns the named interfacial-current variables for
// one electrode side
func (o *LithiumIonReaction) DerivedCurrents(j, j0 *sym.Node) []*mdl.VarDef {
	return []*mdl.VarDef{
		{Name: io.Sf("X-averaged %s electrode interfacial current density", o.lowered()), Expr: j},
		{Name: io.Sf("X-averaged %s electrode exchange-current density", o.lowered()), Expr: j0},
	}
}

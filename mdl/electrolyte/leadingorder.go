// Copyright 2019 The PyBaMM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package electrolyte implements electrolyte transport submodels
package electrolyte

import (
	"github.com/santacodes/PyBaMM/mdl"
	"github.com/santacodes/PyBaMM/sym"
)

// LeadingOrder implements the leading-order Stefan-Maxwell limit in
// which the electrolyte concentration is uniform and carries no flux
type LeadingOrder struct{}

// NewLeadingOrder returns the leading-order electrolyte submodel
func NewLeadingOrder() *LeadingOrder {
	return &LeadingOrder{}
}

// Name returns the submodel name
func (o *LeadingOrder) Name() string {
	return "electrolyte (leading-order Stefan-Maxwell)"
}

// DerivedVariables contributes the uniform concentration and zero flux
func (o *LeadingOrder) DerivedVariables(vars *mdl.VarTable) ([]*mdl.VarDef, error) {
	return []*mdl.VarDef{
		{Name: "X-averaged electrolyte concentration", Expr: sym.NewScalar(1)},
		{Name: "X-averaged electrolyte flux", Expr: sym.NewScalar(0)},
	}, nil
}

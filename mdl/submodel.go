// Copyright 2019 The PyBaMM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"github.com/santacodes/PyBaMM/sym"
)

// VarDef holds one named-variable contribution
type VarDef struct {
	Name string    // variable name. ex: "Terminal voltage"
	Expr *sym.Node // defining expression
}

// IcDef holds one initial-condition contribution
type IcDef struct {
	State *sym.Node // the governed state
	Expr  *sym.Node // initial value expression
}

// BcDef holds one boundary-condition contribution
type BcDef struct {
	State *sym.Node // the expression the spatial operator acts on
	Pair  *BcPair   // left and right conditions
}

// Submodel is a self-contained contributor of variables, equations and
// conditions for one physical phenomenon. Concrete submodels implement
// only the capability interfaces below that they need; Update discovers
// capabilities by type assertion.
type Submodel interface {
	Name() string // returns the submodel name
}

// WithFundamentalVariables defines submodels contributing state variables
type WithFundamentalVariables interface {
	FundamentalVariables() ([]*VarDef, error)
}

// WithDerivedVariables defines submodels contributing post-processed
// variables; they may read variables merged earlier
type WithDerivedVariables interface {
	DerivedVariables(vars *VarTable) ([]*VarDef, error)
}

// WithEquations defines submodels contributing governing equations
type WithEquations interface {
	Equations() ([]*Equation, error)
}

// WithInitialConditions defines submodels contributing initial conditions
type WithInitialConditions interface {
	InitialConditions() ([]*IcDef, error)
}

// WithBoundaryConditions defines submodels contributing boundary conditions
type WithBoundaryConditions interface {
	BoundaryConditions() ([]*BcDef, error)
}

// WithEvents defines submodels contributing termination events
type WithEvents interface {
	Events(vars *VarTable) ([]*Event, error)
}

// Copyright 2019 The PyBaMM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"github.com/santacodes/PyBaMM/inp"
	"github.com/santacodes/PyBaMM/sym"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Equation couples a state variable with its governing expression:
// the state's time derivative for differential equations, or a residual
// that must vanish for algebraic equations
type Equation struct {
	State        *sym.Node // the governed state (a variable leaf)
	Expr         *sym.Node // right-hand side or residual expression
	Differential bool      // differential (true) or algebraic (false)
}

// Bc holds one boundary condition expression
type Bc struct {
	Kind string    // "Dirichlet" or "Neumann"
	Expr *sym.Node // boundary value or flux
}

// BcPair holds the left and right boundary conditions of a state
type BcPair struct {
	Left  *Bc
	Right *Bc
}

// Event holds a scalar expression whose zero-crossing during simulation
// signals a termination condition; e.g. a voltage cut-off
type Event struct {
	Name string
	Expr *sym.Node
}

// Model owns the tables assembled by submodel composition. A model
// instance is not safe for concurrent mutation but distinct instances
// are fully independent.
type Model struct {

	// identity and configuration
	Name string       // model name. ex: "Single Particle Model"
	Opts *inp.Options // validated options

	// assembled tables
	Vars   *VarTable            // named (derived) variables
	Eqs    []*Equation          // governing equations in merge order
	Ics    map[string]*sym.Node // initial conditions by state name
	Bcs    map[uint64]*BcPair   // boundary conditions by state node identity
	Events []*Event             // termination events

	// derived
	eqidx map[string]int // state name => index into Eqs
}

// New returns an empty model
func New(name string, opts *inp.Options) *Model {
	return &Model{
		Name:  name,
		Opts:  opts,
		Vars:  NewVarTable(),
		Ics:   make(map[string]*sym.Node),
		Bcs:   make(map[uint64]*BcPair),
		eqidx: make(map[string]int),
	}
}

// Eq returns the equation governing one state
func (o *Model) Eq(state string) (eq *Equation, err error) {
	i, ok := o.eqidx[state]
	if !ok {
		err = chk.Err("state %q has no governing equation", state)
	} else {
		eq = o.Eqs[i]
	}
	return
}

// addEq inserts one governing equation. A state may be governed by
// exactly one equation, differential or algebraic, never both.
func (o *Model) addEq(eq *Equation) (err error) {
	if eq.State.Kind != sym.KindVariable {
		return chk.Err("equation key must be a variable leaf; got %s node %v", eq.State.Name, eq.State)
	}
	if _, ok := o.eqidx[eq.State.Name]; ok {
		return chk.Err("collision: state %q is already governed by an equation", eq.State.Name)
	}
	o.eqidx[eq.State.Name] = len(o.Eqs)
	o.Eqs = append(o.Eqs, eq)
	return
}

// AddRhs sets the differential equation d(state)/dt = expr
func (o *Model) AddRhs(state, expr *sym.Node) error {
	return o.addEq(&Equation{State: state, Expr: expr, Differential: true})
}

// AddAlgebraic sets the algebraic equation expr = 0 governing state
func (o *Model) AddAlgebraic(state, expr *sym.Node) error {
	return o.addEq(&Equation{State: state, Expr: expr, Differential: false})
}

// AddIc sets the initial condition of one state
func (o *Model) AddIc(state, expr *sym.Node) (err error) {
	if _, ok := o.Ics[state.Name]; ok {
		return chk.Err("collision: state %q already has an initial condition", state.Name)
	}
	o.Ics[state.Name] = expr
	return
}

// AddBc sets the boundary conditions of one state (or of any expression
// a spatial operator is applied to)
func (o *Model) AddBc(state *sym.Node, pair *BcPair) (err error) {
	if _, ok := o.Bcs[state.ID()]; ok {
		return chk.Err("collision: %q already has boundary conditions", state.Name)
	}
	o.Bcs[state.ID()] = pair
	return
}

// AddEvent appends a termination event
func (o *Model) AddEvent(name string, expr *sym.Node) {
	o.Events = append(o.Events, &Event{Name: name, Expr: expr})
}

// Update merges each submodel's contributions into this model's tables,
// in the given order. Submodels depending on another submodel's output
// must come after their dependency; the framework does not auto-order.
// Any duplicate variable name or state key is a collision error.
func (o *Model) Update(subs ...Submodel) (err error) {
	for _, sub := range subs {

		// fundamental variables
		if s, ok := sub.(WithFundamentalVariables); ok {
			defs, err := s.FundamentalVariables()
			if err != nil {
				return chk.Err("cannot get fundamental variables of submodel %q:\n%v", sub.Name(), err)
			}
			for _, d := range defs {
				if err = o.Vars.Set(d.Name, d.Expr); err != nil {
					return chk.Err("cannot merge submodel %q:\n%v", sub.Name(), err)
				}
			}
		}

		// governing equations
		if s, ok := sub.(WithEquations); ok {
			eqs, err := s.Equations()
			if err != nil {
				return chk.Err("cannot get equations of submodel %q:\n%v", sub.Name(), err)
			}
			for _, eq := range eqs {
				if err = o.addEq(eq); err != nil {
					return chk.Err("cannot merge submodel %q:\n%v", sub.Name(), err)
				}
			}
		}

		// initial conditions
		if s, ok := sub.(WithInitialConditions); ok {
			ics, err := s.InitialConditions()
			if err != nil {
				return chk.Err("cannot get initial conditions of submodel %q:\n%v", sub.Name(), err)
			}
			for _, ic := range ics {
				if err = o.AddIc(ic.State, ic.Expr); err != nil {
					return chk.Err("cannot merge submodel %q:\n%v", sub.Name(), err)
				}
			}
		}

		// boundary conditions
		if s, ok := sub.(WithBoundaryConditions); ok {
			bcs, err := s.BoundaryConditions()
			if err != nil {
				return chk.Err("cannot get boundary conditions of submodel %q:\n%v", sub.Name(), err)
			}
			for _, bc := range bcs {
				if err = o.AddBc(bc.State, bc.Pair); err != nil {
					return chk.Err("cannot merge submodel %q:\n%v", sub.Name(), err)
				}
			}
		}

		// derived variables; may read earlier variables
		if s, ok := sub.(WithDerivedVariables); ok {
			defs, err := s.DerivedVariables(o.Vars)
			if err != nil {
				return chk.Err("cannot get derived variables of submodel %q:\n%v", sub.Name(), err)
			}
			for _, d := range defs {
				if err = o.Vars.Set(d.Name, d.Expr); err != nil {
					return chk.Err("cannot merge submodel %q:\n%v", sub.Name(), err)
				}
			}
		}

		// events
		if s, ok := sub.(WithEvents); ok {
			evs, err := s.Events(o.Vars)
			if err != nil {
				return chk.Err("cannot get events of submodel %q:\n%v", sub.Name(), err)
			}
			o.Events = append(o.Events, evs...)
		}
	}
	return
}

// Finalize checks that the assembled model is complete: every governed
// state has an initial condition and every variable leaf referenced by an
// equation, boundary condition or event resolves to a governed state.
// Unresolved references are build-time errors.
func (o *Model) Finalize() (err error) {
	for _, eq := range o.Eqs {
		if _, ok := o.Ics[eq.State.Name]; !ok {
			return chk.Err("state %q has no initial condition", eq.State.Name)
		}
	}
	check := func(what string, n *sym.Node) {
		n.PreOrder(func(leaf *sym.Node) {
			if err != nil || leaf.Kind != sym.KindVariable {
				return
			}
			if _, ok := o.eqidx[leaf.Name]; !ok {
				err = chk.Err("%s references variable %q which no equation governs", what, leaf.Name)
			}
		})
	}
	for _, eq := range o.Eqs {
		check(io.Sf("equation for %q", eq.State.Name), eq.Expr)
	}
	for _, bc := range o.Bcs {
		for _, b := range []*Bc{bc.Left, bc.Right} {
			if b != nil {
				check("boundary condition", b.Expr)
			}
		}
	}
	for _, ev := range o.Events {
		check(io.Sf("event %q", ev.Name), ev.Expr)
	}
	return
}

// ProcessParameters rewrites every equation, variable definition,
// initial/boundary condition and event, replacing parameter leaves with
// values from the given set. Old trees are replaced wholesale; state
// variable leaves are unaffected so boundary-condition keys stay valid.
func (o *Model) ProcessParameters(pars *inp.ParSet) (err error) {
	for _, eq := range o.Eqs {
		if eq.Expr, err = pars.ProcessSymbol(eq.Expr); err != nil {
			return chk.Err("cannot process equation for %q:\n%v", eq.State.Name, err)
		}
	}
	for _, name := range o.Vars.Names() {
		def, _ := o.Vars.Get(name)
		processed, err := pars.ProcessSymbol(def)
		if err != nil {
			return chk.Err("cannot process variable %q:\n%v", name, err)
		}
		o.Vars.defs[name] = processed
	}
	for name, ic := range o.Ics {
		if o.Ics[name], err = pars.ProcessSymbol(ic); err != nil {
			return chk.Err("cannot process initial condition of %q:\n%v", name, err)
		}
	}
	for _, pair := range o.Bcs {
		for _, b := range []*Bc{pair.Left, pair.Right} {
			if b == nil {
				continue
			}
			if b.Expr, err = pars.ProcessSymbol(b.Expr); err != nil {
				return chk.Err("cannot process boundary condition:\n%v", err)
			}
		}
	}
	for _, ev := range o.Events {
		if ev.Expr, err = pars.ProcessSymbol(ev.Expr); err != nil {
			return chk.Err("cannot process event %q:\n%v", ev.Name, err)
		}
	}
	return
}

// Copyright 2019 The PyBaMM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dis

import (
	"github.com/santacodes/PyBaMM/mdl"
	"github.com/santacodes/PyBaMM/sym"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// System is the discretised model: the solvable differential-algebraic
// system handed to an external time integrator. Every expression here is
// fully lowered; leaves are numbers or state-vector slices.
type System struct {
	Layout *Layout              // global state-vector layout
	Rhs    map[string]*sym.Node // time derivatives of differential states, by name
	Res    map[string]*sym.Node // residuals of algebraic states, by name
	Y0     la.Vector            // initial state vector
	Events []*mdl.Event         // discretised termination events

	// discretised variable table for post-processing
	varnames []string
	vars     map[string]*sym.Node
}

// NewSystem returns an empty system over the given layout
func NewSystem(layout *Layout) *System {
	return &System{
		Layout: layout,
		Rhs:    make(map[string]*sym.Node),
		Res:    make(map[string]*sym.Node),
		Y0:     la.NewVector(layout.Ny),
		vars:   make(map[string]*sym.Node),
	}
}

// setVar stores a discretised variable
func (o *System) setVar(name string, expr *sym.Node) {
	if _, ok := o.vars[name]; !ok {
		o.varnames = append(o.varnames, name)
	}
	o.vars[name] = expr
}

// Var returns the discretised expression of a named variable
func (o *System) Var(name string) (expr *sym.Node, err error) {
	expr, ok := o.vars[name]
	if !ok {
		err = chk.Err("variable %q cannot be found in the discretised system", name)
	}
	return
}

// VarNames returns all discretised variable names in model order
func (o *System) VarNames() []string {
	return o.varnames
}

// Fcn evaluates the combined system into f: the time derivative for each
// differential slice and the residual for each algebraic slice. This is
// the callback handed to the external integrator.
func (o *System) Fcn(f la.Vector, t float64, y la.Vector) (err error) {
	if len(f) != o.Layout.Ny {
		return chk.Err("output vector has size %d instead of %d", len(f), o.Layout.Ny)
	}
	for _, s := range o.Layout.Slices {
		expr, ok := o.Rhs[s.Name]
		if !ok {
			if expr, ok = o.Res[s.Name]; !ok {
				return chk.Err("state %q has no discretised equation", s.Name)
			}
		}
		v, err := expr.Eval(t, y)
		if err != nil {
			return chk.Err("cannot evaluate equation for %q:\n%v", s.Name, err)
		}
		switch len(v) {
		case 1:
			for i := 0; i < s.Len; i++ {
				f[s.Off+i] = v[0]
			}
		case s.Len:
			copy(f[s.Off:s.Off+s.Len], v)
		default:
			return chk.Err("equation for %q evaluates to size %d instead of %d", s.Name, len(v), s.Len)
		}
	}
	return
}

// EventValues evaluates all termination events against the live state.
// A sign change between solver steps signals termination; root
// refinement is the external solver's responsibility.
func (o *System) EventValues(t float64, y la.Vector) (vals la.Vector, err error) {
	vals = la.NewVector(len(o.Events))
	for i, ev := range o.Events {
		v, err := ev.Expr.Eval(t, y)
		if err != nil {
			return nil, chk.Err("cannot evaluate event %q:\n%v", ev.Name, err)
		}
		vals[i] = v[0]
	}
	return
}

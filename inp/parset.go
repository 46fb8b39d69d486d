// Copyright 2019 The PyBaMM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"path/filepath"

	"github.com/santacodes/PyBaMM/sym"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Par holds one parameter entry: a plain numeric value, a callable scalar
// function, or a symbolic sub-expression. Exactly one of the three is set.
type Par struct {
	Name string    // parameter name
	V    float64   // numeric value
	Fcn  dbf.T     // callable; receives the first argument as t and the rest as x
	Expr *sym.Node // symbolic sub-expression to substitute
}

// ParSet holds a parameter set: an ordered mapping from parameter name to
// entry. Consumed read-only by parameter processing.
type ParSet struct {
	names []string
	pars  map[string]*Par
}

// NewParSet returns an empty parameter set
func NewParSet() *ParSet {
	return &ParSet{pars: make(map[string]*Par)}
}

// Set adds or replaces a numeric entry
func (o *ParSet) Set(name string, v float64) {
	o.put(&Par{Name: name, V: v})
}

// SetFcn adds or replaces a callable entry
func (o *ParSet) SetFcn(name string, fcn dbf.T) {
	o.put(&Par{Name: name, Fcn: fcn})
}

// SetExpr adds or replaces a sub-expression entry
func (o *ParSet) SetExpr(name string, expr *sym.Node) {
	o.put(&Par{Name: name, Expr: expr})
}

// put inserts an entry keeping insertion order
func (o *ParSet) put(p *Par) {
	if _, ok := o.pars[p.Name]; !ok {
		o.names = append(o.names, p.Name)
	}
	o.pars[p.Name] = p
}

// Get returns the entry for name
func (o *ParSet) Get(name string) (p *Par, err error) {
	p, ok := o.pars[name]
	if !ok {
		err = chk.Err("parameter %q is missing from the parameter set", name)
	}
	return
}

// Names returns all parameter names in insertion order
func (o *ParSet) Names() []string {
	return o.names
}

// ProcessSymbol returns a new tree identical in shape to node except that
// every parameter leaf is replaced by a numeric scalar or by the bound
// callable/sub-expression from this set. The operation is idempotent: a
// tree without parameter leaves is returned unchanged (same pointers).
func (o *ParSet) ProcessSymbol(node *sym.Node) (res *sym.Node, err error) {
	switch node.Kind {

	case sym.KindParameter:
		p, err := o.Get(node.Name)
		if err != nil {
			return nil, err
		}
		switch {
		case p.Expr != nil:
			return o.ProcessSymbol(p.Expr)
		case p.Fcn != nil:
			// a callable without declared arguments is a programme in time
			return sym.NewFunction(node.Name, dbfAdapter(p.Fcn), sym.Time()), nil
		}
		return sym.NewScalar(p.V), nil

	case sym.KindFunParam:
		p, err := o.Get(node.Name)
		if err != nil {
			return nil, err
		}
		args, _, err := o.processArgs(node)
		if err != nil {
			return nil, err
		}
		switch {
		case p.Expr != nil:
			return o.ProcessSymbol(p.Expr)
		case p.Fcn != nil:
			return sym.NewFunction(node.Name, dbfAdapter(p.Fcn), args...), nil
		}
		// constant entry: the function collapses to a scalar
		return sym.NewScalar(p.V), nil
	}

	// composite: rebuild only if some child changed
	if node.IsLeaf() {
		return node, nil
	}
	args, changed, err := o.processArgs(node)
	if err != nil {
		return nil, err
	}
	if !changed {
		return node, nil
	}
	return node.WithArgs(args...), nil
}

// processArgs processes all children of node
func (o *ParSet) processArgs(node *sym.Node) (args []*sym.Node, changed bool, err error) {
	args = make([]*sym.Node, len(node.Args))
	for i, a := range node.Args {
		args[i], err = o.ProcessSymbol(a)
		if err != nil {
			return
		}
		if args[i] != a {
			changed = true
		}
	}
	return
}

// dbfAdapter exposes a dbf function as an elementwise callable; the first
// argument fills the t slot and the remainder the x slot
func dbfAdapter(fcn dbf.T) func(args []float64) float64 {
	return func(args []float64) float64 {
		if len(args) == 0 {
			return fcn.F(0, nil)
		}
		return fcn.F(args[0], args[1:])
	}
}

// ParsData holds the JSON structure of a parameter-set file
type ParsData struct {
	Desc      string    `json:"desc"`      // description of parameter set
	Functions FuncsData `json:"functions"` // all named functions
	Values    []struct {
		Name  string  `json:"name"`  // parameter name
		Value float64 `json:"value"` // numeric value
		Func  string  `json:"func"`  // name of function in Functions; empty for plain values
	} `json:"values"`
}

// ReadPars reads a parameter set from a JSON file
func ReadPars(dir, fn string) (pset *ParSet, err error) {

	// read file
	b := io.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, chk.Err("cannot read parameter file %q:\n%v", fn, err)
	}

	// decode
	var data ParsData
	err = json.Unmarshal(b, &data)
	if err != nil {
		return nil, chk.Err("cannot parse parameter file %q:\n%v", fn, err)
	}

	// build set
	pset = NewParSet()
	for _, v := range data.Values {
		if v.Func != "" {
			fcn, err := data.Functions.Get(v.Func)
			if err != nil {
				return nil, err
			}
			pset.SetFcn(v.Name, fcn)
			continue
		}
		pset.Set(v.Name, v.Value)
	}
	return
}

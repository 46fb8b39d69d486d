// Copyright 2019 The PyBaMM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mdl implements the model container and the submodel
// composition framework
package mdl

import (
	"github.com/santacodes/PyBaMM/sym"

	"github.com/cpmech/gosl/chk"
)

// VarTable maps human-readable variable names to their defining
// expressions. Insertion order is significant: later post-processing
// steps may depend on earlier derived variables being present.
type VarTable struct {
	names []string
	defs  map[string]*sym.Node
}

// NewVarTable returns an empty variable table
func NewVarTable() *VarTable {
	return &VarTable{defs: make(map[string]*sym.Node)}
}

// Set adds one variable definition. A name already present is a
// collision error; there is no silent overwrite.
func (o *VarTable) Set(name string, def *sym.Node) (err error) {
	if _, ok := o.defs[name]; ok {
		return chk.Err("collision: variable %q is already defined in the model", name)
	}
	o.names = append(o.names, name)
	o.defs[name] = def
	return
}

// Get returns the definition of one variable
func (o *VarTable) Get(name string) (def *sym.Node, err error) {
	def, ok := o.defs[name]
	if !ok {
		err = chk.Err("variable %q cannot be found in the model", name)
	}
	return
}

// Has tells whether name is defined
func (o *VarTable) Has(name string) bool {
	_, ok := o.defs[name]
	return ok
}

// Names returns all variable names in insertion order
func (o *VarTable) Names() []string {
	return o.names
}

// Len returns the number of variables
func (o *VarTable) Len() int {
	return len(o.names)
}

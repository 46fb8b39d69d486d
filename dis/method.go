// Copyright 2019 The PyBaMM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dis

import (
	"github.com/santacodes/PyBaMM/mdl"
	"github.com/santacodes/PyBaMM/msh"
	"github.com/santacodes/PyBaMM/sym"

	"github.com/cpmech/gosl/chk"
)

// Method defines what all spatial methods must implement. Each operation
// receives an already-discretised operand and returns a tree whose
// operators are concrete matrices bound to the submesh. The discretiser
// is agnostic to the internals of any particular method.
type Method interface {

	// Name returns the method name
	Name() string

	// Gradient builds the gradient operator applied to c on submesh s,
	// repeated over nsec secondary-domain points. The boundary-condition
	// pair carries discretised expressions; a method requiring boundary
	// data fails when bc is nil or incomplete.
	Gradient(s *msh.SubMesh, c *sym.Node, bc *mdl.BcPair, nsec int) (*sym.Node, error)

	// Divergence builds the divergence operator applied to the
	// edge/face-valued expression c, repeated over nsec blocks
	Divergence(s *msh.SubMesh, c *sym.Node, nsec int) (*sym.Node, error)

	// BoundaryValue builds the operator extracting the value of c at the
	// domain's upper spatial boundary, one value per secondary point
	BoundaryValue(s *msh.SubMesh, c *sym.Node, nsec int) (*sym.Node, error)

	// Broadcast builds the repetition operator lifting c (with clen
	// entries) onto submesh s
	Broadcast(s *msh.SubMesh, c *sym.Node, clen int) (*sym.Node, error)
}

// MethodAllocatorType defines a function that allocates a spatial method
type MethodAllocatorType func() Method

// methodAllocators holds all spatial-method allocators
var methodAllocators = make(map[string]MethodAllocatorType)

// SetMethodAllocator registers a new spatial-method allocator
func SetMethodAllocator(name string, fcn MethodAllocatorType) {
	if _, ok := methodAllocators[name]; ok {
		chk.Panic("cannot set allocator for spatial method %q because it exists already", name)
	}
	methodAllocators[name] = fcn
}

// NewMethod allocates a spatial method from the factory
func NewMethod(name string) (m Method, err error) {
	fcn, ok := methodAllocators[name]
	if !ok {
		err = chk.Err("cannot find allocator for spatial method %q", name)
		return
	}
	return fcn(), nil
}

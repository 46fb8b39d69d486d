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

// ZeroDim implements the spatial method for single-point (0-D) domains
// such as an averaged current collector. Values are point values; there
// is nothing to differentiate.
type ZeroDim struct{}

// register method
func init() {
	SetMethodAllocator("zero dimensional", func() Method { return &ZeroDim{} })
}

// Name returns the method name
func (o *ZeroDim) Name() string { return "zero dimensional" }

// Gradient is not defined on a 0-D domain
func (o *ZeroDim) Gradient(s *msh.SubMesh, c *sym.Node, bc *mdl.BcPair, nsec int) (*sym.Node, error) {
	return nil, chk.Err("cannot take gradient on 0-D domain %q", s.Dom)
}

// Divergence is not defined on a 0-D domain
func (o *ZeroDim) Divergence(s *msh.SubMesh, c *sym.Node, nsec int) (*sym.Node, error) {
	return nil, chk.Err("cannot take divergence on 0-D domain %q", s.Dom)
}

// BoundaryValue of a point value is the value itself
func (o *ZeroDim) BoundaryValue(s *msh.SubMesh, c *sym.Node, nsec int) (*sym.Node, error) {
	return c, nil
}

// Broadcast on a single point is the identity repetition
func (o *ZeroDim) Broadcast(s *msh.SubMesh, c *sym.Node, clen int) (*sym.Node, error) {
	return (&FiniteVolume{}).Broadcast(s, c, clen)
}

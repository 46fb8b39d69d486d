// Copyright 2019 The PyBaMM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dis

import (
	"github.com/santacodes/PyBaMM/mdl"
	"github.com/santacodes/PyBaMM/msh"
	"github.com/santacodes/PyBaMM/sym"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// FiniteElement implements a lowest-order method on 2-D tensor-product
// grids, used for the current collector at dimensionality 2. Boundary
// conditions are natural (zero flux); gradients stack the y and z
// difference operators.
type FiniteElement struct{}

// register method
func init() {
	SetMethodAllocator("finite element", func() Method { return &FiniteElement{} })
}

// Name returns the method name
func (o *FiniteElement) Name() string { return "finite element" }

// Gradient builds the stacked [Dy; Dz] operator (2n×n) with one-sided
// differences at the grid boundary. Only natural boundary conditions are
// supported; an explicit pair is rejected rather than silently ignored.
func (o *FiniteElement) Gradient(s *msh.SubMesh, c *sym.Node, bc *mdl.BcPair, nsec int) (res *sym.Node, err error) {
	if s.Dim != 2 {
		return nil, chk.Err("finite element gradient needs a 2-D submesh; domain %q is %d-D", s.Dom, s.Dim)
	}
	if nsec != 1 {
		return nil, chk.Err("finite element method on domain %q does not repeat over secondary domains", s.Dom)
	}
	if bc != nil {
		return nil, chk.Err("finite element method on domain %q supports only natural boundary conditions", s.Dom)
	}
	ny, nz, n := s.Ny, s.Nz, s.N
	h := 1.0 / float64(ny-1)
	G := la.NewMatrix(2*n, n)
	idx := func(y, z int) int { return z*ny + y }
	for z := 0; z < nz; z++ {
		for y := 0; y < ny; y++ {
			i := idx(y, z)
			switch {
			case y == 0:
				G.Set(i, idx(0, z), -1/h)
				G.Set(i, idx(1, z), 1/h)
			case y == ny-1:
				G.Set(i, idx(ny-2, z), -1/h)
				G.Set(i, idx(ny-1, z), 1/h)
			default:
				G.Set(i, idx(y-1, z), -1/(2*h))
				G.Set(i, idx(y+1, z), 1/(2*h))
			}
			switch {
			case z == 0:
				G.Set(n+i, idx(y, 0), -1/h)
				G.Set(n+i, idx(y, 1), 1/h)
			case z == nz-1:
				G.Set(n+i, idx(y, nz-2), -1/h)
				G.Set(n+i, idx(y, nz-1), 1/h)
			default:
				G.Set(n+i, idx(y, z-1), -1/(2*h))
				G.Set(n+i, idx(y, z+1), 1/(2*h))
			}
		}
	}
	return sym.NewMatMul(G, c), nil
}

// Divergence builds the [Dy Dz] operator (n×2n) contracting a stacked
// two-component field back onto grid points
func (o *FiniteElement) Divergence(s *msh.SubMesh, c *sym.Node, nsec int) (res *sym.Node, err error) {
	if s.Dim != 2 {
		return nil, chk.Err("finite element divergence needs a 2-D submesh; domain %q is %d-D", s.Dom, s.Dim)
	}
	if nsec != 1 {
		return nil, chk.Err("finite element method on domain %q does not repeat over secondary domains", s.Dom)
	}
	ny, nz, n := s.Ny, s.Nz, s.N
	h := 1.0 / float64(ny-1)
	D := la.NewMatrix(n, 2*n)
	idx := func(y, z int) int { return z*ny + y }
	for z := 0; z < nz; z++ {
		for y := 0; y < ny; y++ {
			i := idx(y, z)
			switch {
			case y == 0:
				D.Set(i, idx(0, z), -1/h)
				D.Set(i, idx(1, z), 1/h)
			case y == ny-1:
				D.Set(i, idx(ny-2, z), -1/h)
				D.Set(i, idx(ny-1, z), 1/h)
			default:
				D.Set(i, idx(y-1, z), -1/(2*h))
				D.Set(i, idx(y+1, z), 1/(2*h))
			}
			switch {
			case z == 0:
				D.Set(i, n+idx(y, 0), -1/h)
				D.Set(i, n+idx(y, 1), 1/h)
			case z == nz-1:
				D.Set(i, n+idx(y, nz-2), -1/h)
				D.Set(i, n+idx(y, nz-1), 1/h)
			default:
				D.Set(i, n+idx(y, z-1), -1/(2*h))
				D.Set(i, n+idx(y, z+1), 1/(2*h))
			}
		}
	}
	return sym.NewMatMul(D, c), nil
}

// BoundaryValue is not defined for the 2-D method
func (o *FiniteElement) BoundaryValue(s *msh.SubMesh, c *sym.Node, nsec int) (*sym.Node, error) {
	return nil, chk.Err("boundary extraction is not available with the finite element method on domain %q", s.Dom)
}

// Broadcast builds the repetition matrix onto the grid points
func (o *FiniteElement) Broadcast(s *msh.SubMesh, c *sym.Node, clen int) (*sym.Node, error) {
	return (&FiniteVolume{}).Broadcast(s, c, clen)
}

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

// FiniteVolume implements a cell-centred finite-volume method on uniform
// 1-D submeshes. Cell unknowns live at centres; gradients live at the
// n+1 edges and need boundary data for the two outer edges. States with
// a secondary domain are stored secondary-major: one block of n cells
// per secondary point, and every operator repeats per block.
type FiniteVolume struct{}

// register method
func init() {
	SetMethodAllocator("finite volume", func() Method { return &FiniteVolume{} })
}

// Name returns the method name
func (o *FiniteVolume) Name() string { return "finite volume" }

// Gradient builds the edge-differencing operator, (n+1)nsec × n nsec.
// The outer edges of each block come from the boundary conditions: a
// Neumann condition sets the edge value directly; a Dirichlet condition
// uses a ghost cell at half width. A boundary expression is either a
// scalar shared by all blocks or one value per block.
func (o *FiniteVolume) Gradient(s *msh.SubMesh, c *sym.Node, bc *mdl.BcPair, nsec int) (res *sym.Node, err error) {
	if s.Dim != 1 {
		return nil, chk.Err("finite volume gradient needs a 1-D submesh; domain %q is %d-D", s.Dom, s.Dim)
	}
	if bc == nil || bc.Left == nil || bc.Right == nil {
		return nil, chk.Err("missing boundary conditions: the gradient operator on domain %q requires left and right boundary data", s.Dom)
	}
	n, dx := s.N, s.Dx()
	G := la.NewMatrix((n+1)*nsec, n*nsec)
	for k := 0; k < nsec; k++ {
		for e := 1; e < n; e++ {
			G.Set(k*(n+1)+e, k*n+e-1, -1/dx)
			G.Set(k*(n+1)+e, k*n+e, 1/dx)
		}
	}
	var maskL, maskR float64
	switch bc.Left.Kind {
	case "Neumann":
		maskL = 1
	case "Dirichlet":
		for k := 0; k < nsec; k++ {
			G.Set(k*(n+1), k*n, 2/dx)
		}
		maskL = -2 / dx
	default:
		return nil, chk.Err("unknown boundary condition kind %q on domain %q", bc.Left.Kind, s.Dom)
	}
	switch bc.Right.Kind {
	case "Neumann":
		maskR = 1
	case "Dirichlet":
		for k := 0; k < nsec; k++ {
			G.Set(k*(n+1)+n, k*n+n-1, -2/dx)
		}
		maskR = 2 / dx
	default:
		return nil, chk.Err("unknown boundary condition kind %q on domain %q", bc.Right.Kind, s.Dom)
	}

	// grad(c) = G c + M_L bcL + M_R bcR
	res = sym.NewMatMul(G, c)
	left, err := o.boundaryMask(s, bc.Left.Expr, 0, maskL, nsec, c.Dom)
	if err != nil {
		return nil, err
	}
	right, err := o.boundaryMask(s, bc.Right.Expr, n, maskR, nsec, c.Dom)
	if err != nil {
		return nil, err
	}
	res = sym.Raw(sym.KindAdd, res, left)
	res = sym.Raw(sym.KindAdd, res, right)
	return
}

// boundaryMask builds the operator scattering one boundary expression
// onto edge e of every secondary block
func (o *FiniteVolume) boundaryMask(s *msh.SubMesh, expr *sym.Node, e int, val float64, nsec int, dom []string) (res *sym.Node, err error) {
	n := s.N
	nb := discreteLen(expr)
	switch nb {
	case 1:
		M := la.NewMatrix((n+1)*nsec, 1)
		for k := 0; k < nsec; k++ {
			M.Set(k*(n+1)+e, 0, val)
		}
		return sym.NewMatMulOn(M, expr, dom), nil
	case nsec:
		M := la.NewMatrix((n+1)*nsec, nsec)
		for k := 0; k < nsec; k++ {
			M.Set(k*(n+1)+e, k, val)
		}
		return sym.NewMatMulOn(M, expr, dom), nil
	}
	return nil, chk.Err("boundary expression on domain %q has size %d; want 1 or %d", s.Dom, nb, nsec)
}

// Divergence builds the edge-to-cell differencing operator,
// n nsec × (n+1) nsec
func (o *FiniteVolume) Divergence(s *msh.SubMesh, c *sym.Node, nsec int) (res *sym.Node, err error) {
	if s.Dim != 1 {
		return nil, chk.Err("finite volume divergence needs a 1-D submesh; domain %q is %d-D", s.Dom, s.Dim)
	}
	n, dx := s.N, s.Dx()
	D := la.NewMatrix(n*nsec, (n+1)*nsec)
	for k := 0; k < nsec; k++ {
		for i := 0; i < n; i++ {
			D.Set(k*n+i, k*(n+1)+i, -1/dx)
			D.Set(k*n+i, k*(n+1)+i+1, 1/dx)
		}
	}
	return sym.NewMatMul(D, c), nil
}

// BoundaryValue builds the operator extrapolating the cell values of c
// to the domain's upper boundary with the two last cells of each block;
// the result lives on the secondary domain
func (o *FiniteVolume) BoundaryValue(s *msh.SubMesh, c *sym.Node, nsec int) (res *sym.Node, err error) {
	if s.N < 2 {
		return nil, chk.Err("boundary extrapolation on domain %q needs at least 2 cells", s.Dom)
	}
	n := s.N
	R := la.NewMatrix(nsec, n*nsec)
	for k := 0; k < nsec; k++ {
		R.Set(k, k*n+n-2, -0.5)
		R.Set(k, k*n+n-1, 1.5)
	}
	return sym.NewMatMulOn(R, c, c.Sec), nil
}

// edgeAverage builds the operator interpolating cell-centre values to
// the cell edges of each block: arithmetic mean at internal edges,
// nearest cell at the two outer edges. Used when a centre-valued
// coefficient multiplies an edge-valued gradient.
func edgeAverage(s *msh.SubMesh, nsec int) (A *la.Matrix) {
	n := s.N
	A = la.NewMatrix((n+1)*nsec, n*nsec)
	for k := 0; k < nsec; k++ {
		A.Set(k*(n+1), k*n, 1)
		for e := 1; e < n; e++ {
			A.Set(k*(n+1)+e, k*n+e-1, 0.5)
			A.Set(k*(n+1)+e, k*n+e, 0.5)
		}
		A.Set(k*(n+1)+n, k*n+n-1, 1)
	}
	return
}

// Broadcast builds the repetition operator lifting the clen entries of c
// onto the n points of submesh s, one block of n per entry
func (o *FiniteVolume) Broadcast(s *msh.SubMesh, c *sym.Node, clen int) (res *sym.Node, err error) {
	B := la.NewMatrix(s.N*clen, clen)
	for k := 0; k < clen; k++ {
		for i := 0; i < s.N; i++ {
			B.Set(k*s.N+i, k, 1)
		}
	}
	return sym.NewMatMulOn(B, c, []string{s.Dom}), nil
}

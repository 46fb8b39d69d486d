// Copyright 2019 The PyBaMM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dis

import (
	"strings"
	"testing"

	"github.com/santacodes/PyBaMM/inp"
	"github.com/santacodes/PyBaMM/mdl"
	"github.com/santacodes/PyBaMM/sym"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

func Test_layout01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("layout01. slice allocation and checking")

	l := NewLayout()
	s1, err := l.Alloc("c_n", []string{"negative particle"}, 4, true)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	s2, err := l.Alloc("c_p", []string{"positive particle"}, 3, true)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Int(tst, "c_n off", s1.Off, 0)
	chk.Int(tst, "c_p off", s2.Off, 4)
	chk.Int(tst, "ny", l.Ny, 7)
	if err = l.Check(); err != nil {
		tst.Errorf("check failed:\n%v", err)
		return
	}

	// duplicates and empty slices are rejected
	if _, err = l.Alloc("c_n", nil, 2, true); err == nil {
		tst.Errorf("duplicate state must be rejected")
		return
	}
	if _, err = l.Alloc("v", nil, 0, false); err == nil {
		tst.Errorf("empty slice must be rejected")
		return
	}

	// a corrupted layout fails the check
	s2.Off = 5
	if err = l.Check(); err == nil {
		tst.Errorf("non-contiguous layout must fail the check")
		return
	}
	io.Pforan("err = %v\n", err)
}

// diffusionModel builds a one-state diffusion model on the unit domain
// with zero-flux boundaries
func diffusionModel(tst *testing.T) (*mdl.Model, *sym.Node) {
	opts, err := inp.NewOptions(nil)
	if err != nil {
		tst.Fatalf("cannot build options:\n%v", err)
	}
	m := mdl.New("diffusion", opts)
	c := sym.NewVariable("concentration", []string{"particle"}, "current collector")
	if err = m.AddRhs(c, sym.Neg(sym.Diverg(sym.Neg(sym.Grad(c))))); err != nil {
		tst.Fatalf("cannot add equation:\n%v", err)
	}
	if err = m.AddIc(c, sym.NewScalar(0.5)); err != nil {
		tst.Fatalf("cannot add initial condition:\n%v", err)
	}
	err = m.AddBc(c, &mdl.BcPair{
		Left:  &mdl.Bc{Kind: "Neumann", Expr: sym.NewScalar(0)},
		Right: &mdl.Bc{Kind: "Neumann", Expr: sym.NewScalar(0)},
	})
	if err != nil {
		tst.Fatalf("cannot add boundary conditions:\n%v", err)
	}
	m.Vars.Set("concentration", c)
	m.Vars.Set("surface concentration", sym.Surf(c))
	return m, c
}

func Test_disc01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("disc01. discretise a diffusion model")

	m, _ := diffusionModel(tst)
	mesh := unitMesh(tst, 4)
	disc, err := New(mesh, map[string]string{"particle": "finite volume", "current collector": "zero dimensional"})
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	sys, err := disc.ProcessModel(m)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Int(tst, "ny", sys.Layout.Ny, 4)
	chk.Array(tst, "y0", 1e-15, sys.Y0, []float64{0.5, 0.5, 0.5, 0.5})

	// uniform initial state has zero time derivative
	f := la.NewVector(4)
	if err = sys.Fcn(f, 0, sys.Y0); err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Array(tst, "f(y0)", 1e-14, f, []float64{0, 0, 0, 0})

	// the surface value of the uniform state is the state value
	surf, err := sys.Var("surface concentration")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	v, err := surf.Eval(0, sys.Y0)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Array(tst, "surf", 1e-14, v, []float64{0.5})
}

func Test_disc02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("disc02. memoisation gives identical output nodes")

	m, c := diffusionModel(tst)
	mesh := unitMesh(tst, 4)
	disc, err := New(mesh, map[string]string{"particle": "finite volume", "current collector": "zero dimensional"})
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	if _, err = disc.ProcessModel(m); err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	// independently built but structurally equal trees lower to the same node
	g1 := sym.Grad(c)
	g2 := sym.Grad(sym.NewVariable("concentration", []string{"particle"}, "current collector"))
	d1, err := disc.ProcessSymbol(g1)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	d2, err := disc.ProcessSymbol(g2)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	if d1 != d2 {
		tst.Errorf("structurally equal trees lowered to different nodes")
	}
}

func Test_disc03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("disc03. lowering errors")

	mesh := unitMesh(tst, 4)
	disc, err := New(mesh, map[string]string{"particle": "finite volume", "current collector": "zero dimensional"})
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	// unresolved parameters are rejected
	_, err = disc.ProcessSymbol(sym.NewParameter("diffusivity"))
	if err == nil {
		tst.Errorf("unresolved parameter must be rejected")
		return
	}
	io.Pforan("err = %v\n", err)
	if !strings.Contains(err.Error(), "unresolved parameter") {
		tst.Errorf("error does not mention the unresolved parameter")
		return
	}

	// ungoverned variables have no state slice
	_, err = disc.ProcessSymbol(sym.NewVariable("ghost", []string{"particle"}))
	if err == nil {
		tst.Errorf("ungoverned variable must be rejected")
		return
	}
	io.Pforan("err = %v\n", err)

	// gradients without model boundary conditions fail
	_, err = disc.ProcessSymbol(sym.Grad(sym.NewVector(la.Vector{1, 2, 3, 4}, []string{"particle"})))
	if err == nil {
		tst.Errorf("gradient without boundary data must be rejected")
		return
	}
	io.Pforan("err = %v\n", err)
	if !strings.Contains(err.Error(), "missing boundary conditions") {
		tst.Errorf("error does not mention the missing boundary conditions")
	}
}

func Test_disc04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("disc04. missing method assignment and missing ICs")

	mesh := unitMesh(tst, 4)
	_, err := New(mesh, map[string]string{"particle": "finite volume"})
	if err == nil {
		tst.Errorf("missing method assignment must be rejected")
		return
	}
	io.Pforan("err = %v\n", err)

	// a governed state without an initial condition is rejected
	opts, _ := inp.NewOptions(nil)
	m := mdl.New("incomplete", opts)
	c := sym.NewVariable("concentration", []string{"particle"})
	m.AddRhs(c, sym.NewScalar(0))
	disc, err := New(mesh, map[string]string{"particle": "finite volume", "current collector": "zero dimensional"})
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	_, err = disc.ProcessModel(m)
	if err == nil {
		tst.Errorf("missing initial condition must be rejected")
		return
	}
	io.Pforan("err = %v\n", err)
}

func Test_disc05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("disc05. centre values lift to edges in mixed products")

	m, c := diffusionModel(tst)
	mesh := unitMesh(tst, 4)
	disc, err := New(mesh, map[string]string{"particle": "finite volume", "current collector": "zero dimensional"})
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	if _, err = disc.ProcessModel(m); err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	// c * grad(c): 4 centre values against 5 edge values
	expr, err := disc.ProcessSymbol(sym.Mul(c, sym.Grad(c)))
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	y := la.Vector{0.125, 0.375, 0.625, 0.875}
	v, err := expr.Eval(0, y)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("c*grad(c) = %v\n", v)

	// zero-flux boundaries; interior edges carry the averaged c times slope 1
	chk.Array(tst, "c*grad(c)", 1e-14, v, []float64{0, 0.25, 0.5, 0.75, 0})
}

// Copyright 2019 The PyBaMM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dis

import (
	"strings"
	"testing"

	"github.com/santacodes/PyBaMM/inp"
	"github.com/santacodes/PyBaMM/mdl"
	"github.com/santacodes/PyBaMM/msh"
	"github.com/santacodes/PyBaMM/sym"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// unitMesh returns a mesh with one 1-D domain [0,1] with n cells and a
// 0-D current collector
func unitMesh(tst *testing.T, n int) *msh.Mesh {
	g := inp.NewGeometry()
	g.Add(&inp.DomGeom{Name: "particle", Dim: 1, SubMesh: "uniform1d", Npts: n, MinV: 0, MaxV: 1, Resolved: true})
	g.Add(&inp.DomGeom{Name: "current collector", Dim: 0, SubMesh: "zero0d", Npts: 1, MinV: 0, MaxV: 1, Resolved: true})
	m, err := msh.NewMesh(g, nil)
	if err != nil {
		tst.Fatalf("cannot build mesh:\n%v", err)
	}
	return m
}

func Test_fv01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fv01. gradient with Neumann boundary data")

	m := unitMesh(tst, 4)
	s, _ := m.Get("particle")
	c := sym.NewStateVector("c", 0, 4, []string{"particle"})
	bc := &mdl.BcPair{
		Left:  &mdl.Bc{Kind: "Neumann", Expr: sym.NewScalar(0)},
		Right: &mdl.Bc{Kind: "Neumann", Expr: sym.NewScalar(2)},
	}
	fv := &FiniteVolume{}
	res, err := fv.Gradient(s, c, bc, 1)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	// cell values on the centres of a unit slope
	y := la.Vector{0.125, 0.375, 0.625, 0.875}
	v, err := res.Eval(0, y)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("grad = %v\n", v)
	chk.Array(tst, "grad", 1e-14, v, []float64{0, 1, 1, 1, 2})
}

func Test_fv02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fv02. gradient with Dirichlet boundary data")

	m := unitMesh(tst, 4)
	s, _ := m.Get("particle")
	c := sym.NewStateVector("c", 0, 4, []string{"particle"})
	bc := &mdl.BcPair{
		Left:  &mdl.Bc{Kind: "Dirichlet", Expr: sym.NewScalar(0)},
		Right: &mdl.Bc{Kind: "Dirichlet", Expr: sym.NewScalar(1)},
	}
	fv := &FiniteVolume{}
	res, err := fv.Gradient(s, c, bc, 1)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	// ghost cells at half width reproduce the unit slope at the edges
	y := la.Vector{0.125, 0.375, 0.625, 0.875}
	v, err := res.Eval(0, y)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Array(tst, "grad", 1e-14, v, []float64{1, 1, 1, 1, 1})
}

func Test_fv03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fv03. gradient without boundary data fails")

	m := unitMesh(tst, 4)
	s, _ := m.Get("particle")
	c := sym.NewStateVector("c", 0, 4, []string{"particle"})
	fv := &FiniteVolume{}
	_, err := fv.Gradient(s, c, nil, 1)
	if err == nil {
		tst.Errorf("gradient without boundary conditions must fail")
		return
	}
	io.Pforan("err = %v\n", err)
	if !strings.Contains(err.Error(), "missing boundary conditions") {
		tst.Errorf("error does not mention the missing boundary conditions")
		return
	}
	_, err = fv.Gradient(s, c, &mdl.BcPair{Left: &mdl.Bc{Kind: "Neumann", Expr: sym.NewScalar(0)}}, 1)
	if err == nil {
		tst.Errorf("gradient with an incomplete pair must fail")
	}
}

func Test_fv04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fv04. divergence and boundary extrapolation")

	m := unitMesh(tst, 4)
	s, _ := m.Get("particle")
	fv := &FiniteVolume{}

	// divergence of a unit-slope edge field is one in every cell
	edges := sym.NewVector(la.Vector{0, 0.25, 0.5, 0.75, 1}, []string{"particle"})
	res, err := fv.Divergence(s, edges, 1)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	v, err := res.Eval(0, nil)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Array(tst, "div", 1e-14, v, []float64{1, 1, 1, 1})

	// linear extrapolation of cell values to the upper boundary
	c := sym.NewStateVector("c", 0, 4, []string{"particle"}, "current collector")
	res, err = fv.BoundaryValue(s, c, 1)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	v, err = res.Eval(0, la.Vector{0.125, 0.375, 0.625, 0.875})
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Array(tst, "surf", 1e-14, v, []float64{1})
	chk.Strings(tst, "surf domain", res.Dom, []string{"current collector"})
}

func Test_fv05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fv05. broadcast repetition")

	m := unitMesh(tst, 4)
	s, _ := m.Get("particle")
	fv := &FiniteVolume{}
	res, err := fv.Broadcast(s, sym.NewScalar(3), 1)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	v, err := res.Eval(0, nil)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Array(tst, "broadcast", 1e-15, v, []float64{3, 3, 3, 3})
	chk.Strings(tst, "broadcast domain", res.Dom, []string{"particle"})
}

func Test_zero01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("zero01. 0-D method rejects spatial derivatives")

	m := unitMesh(tst, 4)
	s, _ := m.Get("current collector")
	z := &ZeroDim{}
	if _, err := z.Gradient(s, nil, nil, 1); err == nil {
		tst.Errorf("gradient on a 0-D domain must fail")
		return
	}
	if _, err := z.Divergence(s, nil, 1); err == nil {
		tst.Errorf("divergence on a 0-D domain must fail")
		return
	}

	// boundary value of a point value is the value itself
	c := sym.NewScalar(7)
	res, err := z.BoundaryValue(s, c, 1)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	if res != c {
		tst.Errorf("0-D boundary value must be the operand itself")
	}
}

func Test_fe01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fe01. 2-D gradient and divergence on a tensor grid")

	g := inp.NewGeometry()
	g.Add(&inp.DomGeom{Name: "current collector", Dim: 2, SubMesh: "tensor2d", Npts: 9, MinV: 0, MaxV: 1, Resolved: true})
	m, err := msh.NewMesh(g, nil)
	if err != nil {
		tst.Fatalf("cannot build mesh:\n%v", err)
	}
	s, _ := m.Get("current collector")
	fe := &FiniteElement{}

	// field v = y on a 3x3 unit grid: dy component 1, dz component 0
	c := sym.NewVector(la.Vector{0, 0.5, 1, 0, 0.5, 1, 0, 0.5, 1}, []string{"current collector"})
	res, err := fe.Gradient(s, c, nil, 1)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	v, err := res.Eval(0, nil)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("grad = %v\n", v)
	chk.Array(tst, "dy", 1e-14, v[:9], []float64{1, 1, 1, 1, 1, 1, 1, 1, 1})
	chk.Array(tst, "dz", 1e-14, v[9:], []float64{0, 0, 0, 0, 0, 0, 0, 0, 0})

	// divergence of that stacked field is zero everywhere
	dres, err := fe.Divergence(s, sym.NewVector(v, []string{"current collector"}), 1)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	dv, err := dres.Eval(0, nil)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Array(tst, "div", 1e-14, dv, make([]float64, 9))
}

func Test_fe02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fe02. 2-D method takes natural boundary conditions only")

	g := inp.NewGeometry()
	g.Add(&inp.DomGeom{Name: "current collector", Dim: 2, SubMesh: "tensor2d", Npts: 9, MinV: 0, MaxV: 1, Resolved: true})
	m, _ := msh.NewMesh(g, nil)
	s, _ := m.Get("current collector")
	fe := &FiniteElement{}
	c := sym.NewVector(make([]float64, 9), []string{"current collector"})
	bc := &mdl.BcPair{Left: &mdl.Bc{Kind: "Neumann", Expr: sym.NewScalar(0)}}
	_, err := fe.Gradient(s, c, bc, 1)
	if err == nil {
		tst.Errorf("explicit boundary pair must be rejected")
		return
	}
	io.Pforan("err = %v\n", err)
	if !strings.Contains(err.Error(), "natural boundary conditions") {
		tst.Errorf("error does not mention natural boundary conditions")
	}
}

func Test_fv06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fv06. operators repeat per secondary-domain block")

	m := unitMesh(tst, 4)
	s, _ := m.Get("particle")
	c := sym.NewStateVector("c", 0, 8, []string{"particle"}, "current collector")
	bc := &mdl.BcPair{
		Left:  &mdl.Bc{Kind: "Neumann", Expr: sym.NewScalar(0)},
		Right: &mdl.Bc{Kind: "Neumann", Expr: sym.NewVector(la.Vector{2, 4}, []string{"current collector"})},
	}
	fv := &FiniteVolume{}
	res, err := fv.Gradient(s, c, bc, 2)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	// two blocks: a unit slope and a double slope
	y := la.Vector{0.125, 0.375, 0.625, 0.875, 0.25, 0.75, 1.25, 1.75}
	v, err := res.Eval(0, y)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("grad = %v\n", v)
	chk.Array(tst, "grad", 1e-14, v, []float64{0, 1, 1, 1, 2, 0, 2, 2, 2, 4})

	// boundary extrapolation gives one value per block
	bv, err := fv.BoundaryValue(s, c, 2)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	v, err = bv.Eval(0, y)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Array(tst, "surf", 1e-14, v, []float64{1, 2})

	// divergence contracts each block of edges
	edges := sym.NewVector(la.Vector{0, 0.25, 0.5, 0.75, 1, 0, 0.5, 1, 1.5, 2}, []string{"particle"})
	dres, err := fv.Divergence(s, edges, 2)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	v, err = dres.Eval(0, nil)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Array(tst, "div", 1e-14, v, []float64{1, 1, 1, 1, 2, 2, 2, 2})
}

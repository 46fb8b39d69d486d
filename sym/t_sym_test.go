// Copyright 2019 The PyBaMM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_identity01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("identity01. structural identity of independent trees")

	dom := []string{"negative particle"}
	a1 := NewVariable("concentration", dom, "current collector")
	a2 := NewVariable("concentration", dom, "current collector")
	e1 := Add(Mul(NewScalar(2), a1), Grad(a1))
	e2 := Add(Mul(NewScalar(2), a2), Grad(a2))
	io.Pforan("e1 = %v\n", e1)
	if !e1.Same(e2) {
		tst.Errorf("structurally equal trees have different identities: %d and %d", e1.ID(), e2.ID())
		return
	}

	// any structural difference changes the identity
	e3 := Add(Mul(NewScalar(3), a1), Grad(a1))
	if e1.Same(e3) {
		tst.Errorf("trees with different scalars share an identity")
		return
	}
	e4 := Add(Mul(NewScalar(2), NewVariable("concentration", []string{"positive particle"}, "current collector")), Grad(a1))
	if e1.Same(e4) {
		tst.Errorf("trees on different domains share an identity")
	}
}

func Test_identity02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("identity02. identity covers discrete payloads")

	m1 := la.NewMatrix(2, 2)
	m1.Set(0, 0, 1)
	m2 := la.NewMatrix(2, 2)
	m2.Set(0, 0, 1)
	y1 := NewStateVector("c", 0, 2, nil)
	a := NewMatMul(m1, y1)
	b := NewMatMul(m2, NewStateVector("c", 0, 2, nil))
	if !a.Same(b) {
		tst.Errorf("equal operators have different identities")
		return
	}
	m2.Set(1, 1, 5)
	c := NewMatMul(m2, NewStateVector("c", 0, 2, nil))
	if a.Same(c) {
		tst.Errorf("different operators share an identity")
		return
	}
	if y1.Same(NewStateVector("c", 1, 2, nil)) {
		tst.Errorf("state slices with different offsets share an identity")
	}
}

func Test_domains01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("domains01. binary operations merge domains")

	neg := NewVariable("c", []string{"negative electrode"})
	scl := NewScalar(2)
	e := Mul(scl, neg)
	chk.Strings(tst, "dom(2*c)", e.Dom, []string{"negative electrode"})

	// secondary domains follow the tagged operand
	c := NewVariable("c", []string{"negative particle"}, "current collector")
	e = Add(c, NewScalar(1))
	chk.Strings(tst, "dom(c+1)", e.Dom, []string{"negative particle"})
	chk.Strings(tst, "sec(c+1)", e.Sec, []string{"current collector"})
}

func Test_domains02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("domains02. mismatched domains panic")

	defer chk.RecoverTstPanicIsOK(tst)
	a := NewVariable("a", []string{"negative electrode"})
	b := NewVariable("b", []string{"positive electrode"})
	Add(a, b)
}

func Test_domains03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("domains03. gradient of domain-less expression panics")

	defer chk.RecoverTstPanicIsOK(tst)
	Grad(NewScalar(1))
}

func Test_domains04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("domains04. surface value and broadcast move domains")

	c := NewVariable("c", []string{"negative particle"}, "current collector")
	s := Surf(c)
	chk.Strings(tst, "dom(surf(c))", s.Dom, []string{"current collector"})

	t := NewScalar(1)
	b := Broadcast(t, []string{"current collector"})
	chk.Strings(tst, "dom(broadcast)", b.Dom, []string{"current collector"})
	b2 := Broadcast(b, []string{"negative particle"})
	chk.Strings(tst, "dom(broadcast2)", b2.Dom, []string{"negative particle"})
	chk.Strings(tst, "sec(broadcast2)", b2.Sec, []string{"current collector"})
}

func Test_domains05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("domains05. broadcast onto own domain panics")

	defer chk.RecoverTstPanicIsOK(tst)
	c := NewVariable("c", []string{"negative particle"})
	Broadcast(c, []string{"negative particle"})
}

func Test_eval01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eval01. evaluation of discretised trees")

	y := la.Vector{1, 2, 3, 10}
	c := NewStateVector("c", 0, 3, nil)

	// elementwise arithmetic with scalar broadcast
	e := Raw(KindAdd, Raw(KindMul, NewScalar(2), c), NewScalar(1))
	v, err := e.Eval(0.5, y)
	if err != nil {
		tst.Errorf("eval failed:\n%v", err)
		return
	}
	chk.Array(tst, "2c+1", 1e-15, v, []float64{3, 5, 7})

	// time leaf
	v, err = Raw(KindMul, Time(), NewScalar(4)).Eval(0.5, y)
	if err != nil {
		tst.Errorf("eval failed:\n%v", err)
		return
	}
	chk.Array(tst, "4t", 1e-15, v, []float64{2})

	// linear operator
	m := la.NewMatrix(2, 3)
	m.Set(0, 0, 1)
	m.Set(1, 2, 1)
	v, err = NewMatMul(m, c).Eval(0, y)
	if err != nil {
		tst.Errorf("eval failed:\n%v", err)
		return
	}
	chk.Array(tst, "Mc", 1e-15, v, []float64{1, 3})
}

func Test_eval02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eval02. function nodes apply elementwise")

	y := la.Vector{1, 4, 9}
	c := NewStateVector("c", 0, 3, nil)
	sq := NewFunction("square", func(args []float64) float64 { return args[0] * args[0] }, c)
	v, err := sq.Eval(0, y)
	if err != nil {
		tst.Errorf("eval failed:\n%v", err)
		return
	}
	chk.Array(tst, "c^2", 1e-15, v, []float64{1, 16, 81})

	// mixed scalar and vector arguments
	mix := NewFunction("scale", func(args []float64) float64 { return args[0] * args[1] }, NewScalar(10), c)
	v, err = mix.Eval(0, y)
	if err != nil {
		tst.Errorf("eval failed:\n%v", err)
		return
	}
	chk.Array(tst, "10c", 1e-15, v, []float64{10, 40, 90})
}

func Test_eval03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eval03. symbolic leaves refuse evaluation")

	c := NewVariable("c", []string{"negative particle"})
	_, err := c.Eval(0, nil)
	if err == nil {
		tst.Errorf("evaluating a variable leaf must fail")
		return
	}
	io.Pforan("err = %v\n", err)

	_, err = NewParameter("diffusivity").Eval(0, nil)
	if err == nil {
		tst.Errorf("evaluating a parameter leaf must fail")
		return
	}

	// out-of-range state slice
	_, err = NewStateVector("c", 2, 5, nil).Eval(0, la.Vector{1, 2, 3})
	if err == nil {
		tst.Errorf("out-of-range state slice must fail")
	}
}

func Test_withargs01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("withargs01. head copies get fresh identities")

	c := NewVariable("c", []string{"negative particle"})
	e := Add(c, NewScalar(1))
	id := e.ID()
	e2 := e.WithArgs(c, NewScalar(2))
	if e2.ID() == id {
		tst.Errorf("copy with different children kept the identity")
		return
	}
	e3 := e.WithArgs(c, NewScalar(1))
	if e3.ID() != id {
		tst.Errorf("copy with equal children changed the identity")
	}
}

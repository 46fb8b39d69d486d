// Copyright 2019 The PyBaMM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Eval evaluates a fully-discretised tree against time t and the flat
// state vector y. Binary operations act elementwise; a length-one operand
// broadcasts over the other operand's length. Symbolic leaves (variables,
// parameters) and spatial operators cause an error since they must have
// been lowered before evaluation.
func (o *Node) Eval(t float64, y la.Vector) (res la.Vector, err error) {
	switch o.Kind {

	case KindScalar:
		return la.Vector{o.Value}, nil

	case KindTime:
		return la.Vector{t}, nil

	case KindVector:
		return o.Vec, nil

	case KindStateVector:
		if o.Off+o.Len > len(y) {
			return nil, chk.Err("state slice [%d:%d] is out of range of state vector with size %d", o.Off, o.Off+o.Len, len(y))
		}
		return y[o.Off : o.Off+o.Len], nil

	case KindMatMul:
		u, e := o.Args[0].Eval(t, y)
		if e != nil {
			return nil, e
		}
		if o.Mat.N != len(u) {
			return nil, chk.Err("operator size %dx%d does not match operand size %d", o.Mat.M, o.Mat.N, len(u))
		}
		res = la.NewVector(o.Mat.M)
		la.MatVecMul(res, 1, o.Mat, u)
		return res, nil

	case KindNeg:
		u, e := o.Args[0].Eval(t, y)
		if e != nil {
			return nil, e
		}
		res = la.NewVector(len(u))
		for i, v := range u {
			res[i] = -v
		}
		return res, nil

	case KindAdd, KindSub, KindMul, KindDiv:
		a, e := o.Args[0].Eval(t, y)
		if e != nil {
			return nil, e
		}
		b, e := o.Args[1].Eval(t, y)
		if e != nil {
			return nil, e
		}
		return o.evalBinop(a, b)

	case KindFunction:
		args := make([]la.Vector, len(o.Args))
		n := 1
		for i, arg := range o.Args {
			args[i], err = arg.Eval(t, y)
			if err != nil {
				return
			}
			if len(args[i]) > 1 {
				if n > 1 && len(args[i]) != n {
					return nil, chk.Err("function %q has arguments with mismatched sizes %d and %d", o.Name, n, len(args[i]))
				}
				n = len(args[i])
			}
		}
		res = la.NewVector(n)
		x := make([]float64, len(args))
		for i := 0; i < n; i++ {
			for k, a := range args {
				if len(a) == 1 {
					x[k] = a[0]
				} else {
					x[k] = a[i]
				}
			}
			res[i] = o.Fcn(x)
		}
		return res, nil
	}
	return nil, chk.Err("cannot evaluate %s node %v: tree is not fully discretised", kindNames[o.Kind], o)
}

// evalBinop applies an elementwise binary operation with scalar broadcast
func (o *Node) evalBinop(a, b la.Vector) (res la.Vector, err error) {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	if (len(a) != n && len(a) != 1) || (len(b) != n && len(b) != 1) {
		return nil, chk.Err("cannot combine vectors with sizes %d and %d", len(a), len(b))
	}
	at := func(v la.Vector, i int) float64 {
		if len(v) == 1 {
			return v[0]
		}
		return v[i]
	}
	res = la.NewVector(n)
	for i := 0; i < n; i++ {
		x, z := at(a, i), at(b, i)
		switch o.Kind {
		case KindAdd:
			res[i] = x + z
		case KindSub:
			res[i] = x - z
		case KindMul:
			res[i] = x * z
		case KindDiv:
			res[i] = x / z
		}
	}
	return
}

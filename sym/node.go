// Copyright 2019 The PyBaMM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sym implements immutable symbolic expression trees over named
// spatial domains. Trees are built once, never mutated, and compared by a
// memoised structural identity so that shared subexpressions deduplicate.
package sym

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// Kind distinguishes node types
type Kind int

// node kinds
const (
	KindScalar      Kind = iota // numeric constant leaf
	KindParameter               // named parameter leaf (pre-processing)
	KindFunParam                // named function of children, unresolved
	KindFunction                // named function of children, bound to a callable
	KindVariable                // named variable leaf over a domain
	KindTime                    // simulation time leaf
	KindStateVector             // slice of the global state vector (post-discretisation)
	KindVector                  // concrete numeric vector leaf (post-discretisation)
	KindMatMul                  // concrete linear operator applied to child (post-discretisation)
	KindAdd                     // a + b
	KindSub                     // a - b
	KindMul                     // a * b
	KindDiv                     // a / b
	KindNeg                     // -a
	KindGrad                    // spatial gradient
	KindDiverg                  // spatial divergence
	KindSurf                    // value at the domain's upper boundary
	KindBroadcast               // lift onto a larger/secondary domain
)

// kindNames maps kinds to names for diagnostics
var kindNames = map[Kind]string{
	KindScalar: "scalar", KindParameter: "parameter", KindFunParam: "function parameter",
	KindFunction: "function", KindVariable: "variable", KindTime: "time",
	KindStateVector: "state vector", KindVector: "vector", KindMatMul: "matmul",
	KindAdd: "+", KindSub: "-", KindMul: "*", KindDiv: "/", KindNeg: "neg",
	KindGrad: "grad", KindDiverg: "div", KindSurf: "surf", KindBroadcast: "broadcast",
}

// Node is one immutable node of an expression tree. Leaves have no Args.
// After discretisation the only leaves are KindScalar, KindTime, KindVector
// and KindStateVector, and every spatial operator has been replaced by
// KindMatMul nodes carrying concrete matrices.
type Node struct {

	// structure
	Kind Kind    // node type
	Name string  // variable/parameter/function name
	Args []*Node // ordered children; empty for leaves

	// domain annotations
	Dom []string // primary domain names; empty means domain-less
	Sec []string // secondary (auxiliary) domains for hierarchical geometries
	Ter []string // tertiary domains

	// payload
	Value float64                     // KindScalar
	Fcn   func(args []float64) float64 // KindFunction callable
	Mat   *la.Matrix                  // KindMatMul operator
	Vec   la.Vector                   // KindVector entries
	Off   int                         // KindStateVector slice offset
	Len   int                         // KindStateVector slice length

	// memoised structural identity; 0 means not yet computed
	hash uint64
}

// NewScalar returns a numeric constant leaf
func NewScalar(v float64) *Node {
	return &Node{Kind: KindScalar, Value: v}
}

// NewParameter returns a named parameter leaf. Parameter leaves are
// removed by parameter processing.
func NewParameter(name string) *Node {
	return &Node{Kind: KindParameter, Name: name}
}

// NewFunParam returns an unresolved function-parameter node; the parameter
// set later binds it to a callable or substitutes a sub-expression.
// The result carries the domain of the first domain-tagged argument.
func NewFunParam(name string, args ...*Node) *Node {
	o := &Node{Kind: KindFunParam, Name: name, Args: args}
	for _, a := range args {
		if len(a.Dom) > 0 {
			o.Dom, o.Sec, o.Ter = a.Dom, a.Sec, a.Ter
			break
		}
	}
	return o
}

// NewFunction returns a function node bound to a callable. The name
// identifies the function for structural identity; two function nodes with
// the same name and arguments compare equal.
func NewFunction(name string, fcn func(args []float64) float64, args ...*Node) *Node {
	o := NewFunParam(name, args...)
	o.Kind = KindFunction
	o.Fcn = fcn
	return o
}

// NewVariable returns a named variable leaf over the given primary domain.
// Optional trailing names set the secondary (auxiliary) domain.
func NewVariable(name string, dom []string, sec ...string) *Node {
	return &Node{Kind: KindVariable, Name: name, Dom: dom, Sec: sec}
}

// Time returns the simulation-time leaf
func Time() *Node {
	return &Node{Kind: KindTime, Name: "time"}
}

// NewStateVector returns a reference to the slice [off:off+n] of the
// global state vector. Optional trailing names set the secondary domain.
func NewStateVector(name string, off, n int, dom []string, sec ...string) *Node {
	return &Node{Kind: KindStateVector, Name: name, Off: off, Len: n, Dom: dom, Sec: sec}
}

// NewVector returns a concrete numeric vector leaf
func NewVector(v la.Vector, dom []string) *Node {
	return &Node{Kind: KindVector, Vec: v, Dom: dom}
}

// NewMatMul returns the application of a concrete linear operator to child.
// The result keeps the child's domain annotations.
func NewMatMul(m *la.Matrix, child *Node) *Node {
	return &Node{Kind: KindMatMul, Mat: m, Args: []*Node{child}, Dom: child.Dom, Sec: child.Sec, Ter: child.Ter}
}

// NewMatMulOn is like NewMatMul but tags the result with the given
// domain; used when an operator moves its operand to another domain
// (e.g. boundary extraction onto the secondary domain)
func NewMatMulOn(m *la.Matrix, child *Node, dom []string) *Node {
	return &Node{Kind: KindMatMul, Mat: m, Args: []*Node{child}, Dom: dom}
}

// ID returns the memoised structural identity of this node. Two
// independently built trees with identical structure, names, values and
// domain annotations have equal IDs.
func (o *Node) ID() uint64 {
	if o.hash != 0 {
		return o.hash
	}
	h := fnv.New64a()
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(o.Kind))
	h.Write(b[:])
	h.Write([]byte(o.Name))
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(o.Value))
	h.Write(b[:])
	for _, set := range [][]string{o.Dom, o.Sec, o.Ter} {
		for _, d := range set {
			h.Write([]byte(d))
			h.Write([]byte{'|'})
		}
		h.Write([]byte{';'})
	}
	if o.Kind == KindStateVector {
		binary.LittleEndian.PutUint64(b[:], uint64(o.Off))
		h.Write(b[:])
		binary.LittleEndian.PutUint64(b[:], uint64(o.Len))
		h.Write(b[:])
	}
	for _, v := range o.Vec {
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
		h.Write(b[:])
	}
	if o.Mat != nil {
		binary.LittleEndian.PutUint64(b[:], uint64(o.Mat.M))
		h.Write(b[:])
		binary.LittleEndian.PutUint64(b[:], uint64(o.Mat.N))
		h.Write(b[:])
		for _, v := range o.Mat.Data {
			binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
			h.Write(b[:])
		}
	}
	for _, a := range o.Args {
		binary.LittleEndian.PutUint64(b[:], a.ID())
		h.Write(b[:])
	}
	o.hash = h.Sum64()
	if o.hash == 0 { // reserve 0 for "not computed"
		o.hash = 1
	}
	return o.hash
}

// WithArgs returns a copy of this node head with new children and a fresh
// structural identity. Used by tree-rewriting passes; the original node is
// left untouched.
func (o *Node) WithArgs(args ...*Node) *Node {
	n := *o
	n.Args = args
	n.hash = 0
	return &n
}

// Same tells whether b is structurally identical to this node
func (o *Node) Same(b *Node) bool {
	return o.ID() == b.ID()
}

// IsLeaf tells whether this node has no children
func (o *Node) IsLeaf() bool {
	return len(o.Args) == 0
}

// String returns a readable representation for diagnostics
func (o *Node) String() string {
	switch o.Kind {
	case KindScalar:
		return io.Sf("%g", o.Value)
	case KindParameter:
		return io.Sf("[%s]", o.Name)
	case KindVariable:
		return io.Sf("%s", o.Name)
	case KindTime:
		return "t"
	case KindStateVector:
		return io.Sf("y[%d:%d]", o.Off, o.Off+o.Len)
	case KindVector:
		return io.Sf("vec%v", []float64(o.Vec))
	case KindMatMul:
		return io.Sf("(M%dx%d @ %v)", o.Mat.M, o.Mat.N, o.Args[0])
	case KindFunParam, KindFunction:
		s := o.Name + "("
		for i, a := range o.Args {
			if i > 0 {
				s += ", "
			}
			s += a.String()
		}
		return s + ")"
	case KindAdd, KindSub, KindMul, KindDiv:
		return io.Sf("(%v %s %v)", o.Args[0], kindNames[o.Kind], o.Args[1])
	case KindNeg:
		return io.Sf("(-%v)", o.Args[0])
	case KindGrad, KindDiverg, KindSurf, KindBroadcast:
		return io.Sf("%s(%v)", kindNames[o.Kind], o.Args[0])
	}
	chk.Panic("cannot print node with unknown kind %d", o.Kind)
	return ""
}

// PreOrder calls fcn on this node and then on every descendant
func (o *Node) PreOrder(fcn func(n *Node)) {
	fcn(o)
	for _, a := range o.Args {
		a.PreOrder(fcn)
	}
}

// Copyright 2019 The PyBaMM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sym

import (
	"github.com/cpmech/gosl/chk"
)

// sameDoms compares two domain name lists
func sameDoms(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// mergeDoms returns the combined domain of two operands. Operands must
// agree on their domains, or one must be domain-less.
func mergeDoms(op string, a, b *Node) (dom, sec, ter []string) {
	switch {
	case len(a.Dom) == 0:
		return b.Dom, b.Sec, b.Ter
	case len(b.Dom) == 0:
		return a.Dom, a.Sec, a.Ter
	case sameDoms(a.Dom, b.Dom):
		if len(b.Sec) > 0 && len(a.Sec) > 0 && !sameDoms(a.Sec, b.Sec) {
			chk.Panic("domain mismatch: cannot %s %v with secondary domains %v and %v", op, a.Dom, a.Sec, b.Sec)
		}
		sec = a.Sec
		if len(sec) == 0 {
			sec = b.Sec
		}
		ter = a.Ter
		if len(ter) == 0 {
			ter = b.Ter
		}
		return a.Dom, sec, ter
	}
	chk.Panic("domain mismatch: cannot %s expression on %v with expression on %v", op, a.Dom, b.Dom)
	return
}

// binop builds a binary composite node
func binop(kind Kind, a, b *Node) (o *Node) {
	o = &Node{Kind: kind, Args: []*Node{a, b}}
	o.Dom, o.Sec, o.Ter = mergeDoms(kindNames[kind], a, b)
	return
}

// Add returns a + b. Panics on domain mismatch.
func Add(a, b *Node) *Node {
	return binop(KindAdd, a, b)
}

// Sub returns a - b. Panics on domain mismatch.
func Sub(a, b *Node) *Node {
	return binop(KindSub, a, b)
}

// Mul returns a * b. Panics on domain mismatch.
func Mul(a, b *Node) *Node {
	return binop(KindMul, a, b)
}

// Div returns a / b. Panics on domain mismatch.
func Div(a, b *Node) *Node {
	return binop(KindDiv, a, b)
}

// Neg returns -a
func Neg(a *Node) *Node {
	return &Node{Kind: KindNeg, Args: []*Node{a}, Dom: a.Dom, Sec: a.Sec, Ter: a.Ter}
}

// Grad returns the spatial gradient of a over its own domain.
// The operand must be domain-tagged.
func Grad(a *Node) *Node {
	if len(a.Dom) == 0 {
		chk.Panic("cannot take gradient of domain-less expression %v", a)
	}
	return &Node{Kind: KindGrad, Args: []*Node{a}, Dom: a.Dom, Sec: a.Sec, Ter: a.Ter}
}

// Diverg returns the spatial divergence of a over its own domain.
// The operand must be domain-tagged.
func Diverg(a *Node) *Node {
	if len(a.Dom) == 0 {
		chk.Panic("cannot take divergence of domain-less expression %v", a)
	}
	return &Node{Kind: KindDiverg, Args: []*Node{a}, Dom: a.Dom, Sec: a.Sec, Ter: a.Ter}
}

// Surf extracts the value of a at its domain's upper spatial boundary.
// The result lives on the operand's secondary domain (or is domain-less).
func Surf(a *Node) *Node {
	if len(a.Dom) == 0 {
		chk.Panic("cannot take surface value of domain-less expression %v", a)
	}
	return &Node{Kind: KindSurf, Args: []*Node{a}, Dom: a.Sec, Sec: a.Ter}
}

// Raw returns a composite node without domain validation. The
// discretiser composes lowered operators with it: discrete trees carry
// domain annotations for bookkeeping only and their operands may span
// domains that symbolic arithmetic would reject.
func Raw(kind Kind, args ...*Node) *Node {
	o := &Node{Kind: kind, Args: args}
	for _, a := range args {
		if len(a.Dom) > 0 {
			o.Dom, o.Sec, o.Ter = a.Dom, a.Sec, a.Ter
			break
		}
	}
	return o
}

// Broadcast lifts a onto the given (larger) domain; the operand's own
// domain becomes the secondary domain of the result.
func Broadcast(a *Node, dom []string) *Node {
	if sameDoms(a.Dom, dom) {
		chk.Panic("cannot broadcast expression already on domain %v", dom)
	}
	return &Node{Kind: KindBroadcast, Args: []*Node{a}, Dom: dom, Sec: a.Dom, Ter: a.Sec}
}

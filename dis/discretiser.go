// Copyright 2019 The PyBaMM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dis

import (
	"sync"

	"github.com/santacodes/PyBaMM/mdl"
	"github.com/santacodes/PyBaMM/msh"
	"github.com/santacodes/PyBaMM/sym"

	"github.com/cpmech/gosl/chk"
)

// Discretiser rewrites parameter-free trees into trees whose leaves are
// state-vector slices or numbers and whose spatial operators are concrete
// matrices bound to the mesh. Rewriting is memoised by structural
// identity: two structurally-equal input trees yield the identical
// output node, so shared physical quantities are computed once.
type Discretiser struct {

	// configuration
	Msh     *msh.Mesh         // the mesh
	Methods map[string]Method // spatial method per domain
	Layout  *Layout           // global state-vector layout

	// from the model being processed
	bcsrc map[uint64]*mdl.BcPair // symbolic boundary conditions by operand identity

	// memoisation; guarded for internally-parallel discretisation
	mu   sync.Mutex
	memo map[uint64]*sym.Node
	bcs  map[uint64]*mdl.BcPair // discretised boundary pairs
}

// New returns a discretiser with one spatial method bound per mesh
// domain. A meshed domain without a method assignment is a
// configuration error.
func New(m *msh.Mesh, methods map[string]string) (o *Discretiser, err error) {
	o = &Discretiser{
		Msh:     m,
		Methods: make(map[string]Method),
		Layout:  NewLayout(),
		memo:    make(map[uint64]*sym.Node),
		bcs:     make(map[uint64]*mdl.BcPair),
	}
	for _, dom := range m.Names() {
		name, ok := methods[dom]
		if !ok {
			return nil, chk.Err("domain %q has no spatial method assigned", dom)
		}
		o.Methods[dom], err = NewMethod(name)
		if err != nil {
			return nil, chk.Err("cannot bind spatial method to domain %q:\n%v", dom, err)
		}
	}
	return
}

// ProcessModel discretises every equation, boundary/initial condition,
// variable and event of the model, allocating the global state layout,
// and returns the solvable system
func (o *Discretiser) ProcessModel(m *mdl.Model) (sys *System, err error) {

	// allocate state slices: differential states first, then algebraic
	for _, differential := range []bool{true, false} {
		for _, eq := range m.Eqs {
			if eq.Differential != differential {
				continue
			}
			n, err := o.stateSize(eq.State)
			if err != nil {
				return nil, err
			}
			if _, err = o.Layout.Alloc(eq.State.Name, eq.State.Dom, n, differential); err != nil {
				return nil, err
			}
		}
	}
	if err = o.Layout.Check(); err != nil {
		return nil, err
	}
	o.bcsrc = m.Bcs

	// equations
	sys = NewSystem(o.Layout)
	for _, eq := range m.Eqs {
		expr, err := o.ProcessSymbol(eq.Expr)
		if err != nil {
			return nil, chk.Err("cannot discretise equation for %q:\n%v", eq.State.Name, err)
		}
		if eq.Differential {
			sys.Rhs[eq.State.Name] = expr
		} else {
			sys.Res[eq.State.Name] = expr
		}
	}

	// initial conditions => initial state vector
	for _, s := range o.Layout.Slices {
		ic, ok := m.Ics[s.Name]
		if !ok {
			return nil, chk.Err("state %q has no initial condition", s.Name)
		}
		expr, err := o.ProcessSymbol(ic)
		if err != nil {
			return nil, chk.Err("cannot discretise initial condition of %q:\n%v", s.Name, err)
		}
		v, err := expr.Eval(0, nil)
		if err != nil {
			return nil, chk.Err("cannot evaluate initial condition of %q:\n%v", s.Name, err)
		}
		switch len(v) {
		case 1:
			for i := 0; i < s.Len; i++ {
				sys.Y0[s.Off+i] = v[0]
			}
		case s.Len:
			copy(sys.Y0[s.Off:s.Off+s.Len], v)
		default:
			return nil, chk.Err("initial condition of %q has size %d instead of %d", s.Name, len(v), s.Len)
		}
	}

	// variable table, for post-processing and events
	for _, name := range m.Vars.Names() {
		def, _ := m.Vars.Get(name)
		expr, err := o.ProcessSymbol(def)
		if err != nil {
			return nil, chk.Err("cannot discretise variable %q:\n%v", name, err)
		}
		sys.setVar(name, expr)
	}

	// termination events; must be scalar
	for _, ev := range m.Events {
		expr, err := o.ProcessSymbol(ev.Expr)
		if err != nil {
			return nil, chk.Err("cannot discretise event %q:\n%v", ev.Name, err)
		}
		if n := discreteLen(expr); n != 1 {
			return nil, chk.Err("event %q is not scalar (size %d)", ev.Name, n)
		}
		sys.Events = append(sys.Events, &mdl.Event{Name: ev.Name, Expr: expr})
	}
	return
}

// ProcessSymbol discretises one parameter-free tree. Memoised: calling
// twice with structurally-equal trees returns the identical node.
func (o *Discretiser) ProcessSymbol(node *sym.Node) (res *sym.Node, err error) {
	id := node.ID()
	o.mu.Lock()
	if r, ok := o.memo[id]; ok {
		o.mu.Unlock()
		return r, nil
	}
	o.mu.Unlock()

	res, err = o.lower(node)
	if err != nil {
		return
	}
	o.mu.Lock()
	o.memo[id] = res
	o.mu.Unlock()
	return
}

// lower rewrites one node
func (o *Discretiser) lower(node *sym.Node) (res *sym.Node, err error) {
	switch node.Kind {

	case sym.KindScalar, sym.KindTime, sym.KindVector, sym.KindStateVector, sym.KindMatMul:
		return node, nil

	case sym.KindParameter, sym.KindFunParam:
		return nil, chk.Err("unresolved parameter %q: tree must be parameter-free before discretisation", node.Name)

	case sym.KindVariable:
		s, ok := o.Layout.Get(node.Name)
		if !ok {
			return nil, chk.Err("variable %q has no state slice: it is not governed by any equation", node.Name)
		}
		return sym.NewStateVector(node.Name, s.Off, s.Len, node.Dom, node.Sec...), nil

	case sym.KindGrad:
		child, sub, method, nsec, err := o.lowerOperand(node)
		if err != nil {
			return nil, err
		}
		bc, err := o.boundaryPair(node.Args[0])
		if err != nil {
			return nil, err
		}
		res, err = method.Gradient(sub, child, bc, nsec)
		if err != nil {
			return nil, chk.Err("cannot discretise gradient of %q:\n%v", node.Args[0], err)
		}
		return res, nil

	case sym.KindDiverg:
		child, sub, method, nsec, err := o.lowerOperand(node)
		if err != nil {
			return nil, err
		}
		res, err = method.Divergence(sub, child, nsec)
		if err != nil {
			return nil, chk.Err("cannot discretise divergence of %q:\n%v", node.Args[0], err)
		}
		return res, nil

	case sym.KindSurf:
		child, sub, method, nsec, err := o.lowerOperand(node)
		if err != nil {
			return nil, err
		}
		res, err = method.BoundaryValue(sub, child, nsec)
		if err != nil {
			return nil, chk.Err("cannot discretise surface value of %q:\n%v", node.Args[0], err)
		}
		return res, nil

	case sym.KindBroadcast:
		child, err := o.ProcessSymbol(node.Args[0])
		if err != nil {
			return nil, err
		}
		if len(node.Dom) == 0 {
			return nil, chk.Err("broadcast has no target domain")
		}
		sub, err := o.Msh.Get(node.Dom[0])
		if err != nil {
			return nil, err
		}
		method, ok := o.Methods[node.Dom[0]]
		if !ok {
			return nil, chk.Err("domain %q has no spatial method assigned", node.Dom[0])
		}
		res, err = method.Broadcast(sub, child, discreteLen(child))
		if err != nil {
			return nil, chk.Err("cannot discretise broadcast onto %v:\n%v", node.Dom, err)
		}
		return res, nil
	}

	// composite arithmetic and bound functions: rewrite children
	args := make([]*sym.Node, len(node.Args))
	changed := false
	for i, a := range node.Args {
		if args[i], err = o.ProcessSymbol(a); err != nil {
			return
		}
		if args[i] != a {
			changed = true
		}
	}
	switch node.Kind {
	case sym.KindAdd, sym.KindSub, sym.KindMul, sym.KindDiv:
		if o.reconcileEdges(node, args) {
			changed = true
		}
	}
	if !changed {
		return node, nil
	}
	return node.WithArgs(args...), nil
}

// reconcileEdges lifts a cell-centre-valued operand to the cell edges
// when its sibling is edge-valued; e.g. a diffusivity D(c) multiplying
// grad(c). Applies on 1-D finite-volume domains only.
func (o *Discretiser) reconcileEdges(node *sym.Node, args []*sym.Node) (changed bool) {
	if len(node.Dom) != 1 || len(args) != 2 {
		return
	}
	sub, err := o.Msh.Get(node.Dom[0])
	if err != nil || sub.Dim != 1 {
		return
	}
	if _, ok := o.Methods[node.Dom[0]].(*FiniteVolume); !ok {
		return
	}
	nsec, err := o.Msh.Npts(node.Sec)
	if err != nil {
		return
	}
	na, nb := discreteLen(args[0]), discreteLen(args[1])
	switch {
	case na == sub.N*nsec && nb == (sub.N+1)*nsec:
		args[0] = sym.NewMatMul(edgeAverage(sub, nsec), args[0])
		return true
	case nb == sub.N*nsec && na == (sub.N+1)*nsec:
		args[1] = sym.NewMatMul(edgeAverage(sub, nsec), args[1])
		return true
	}
	return
}

// lowerOperand discretises the operand of a spatial operator and finds
// the submesh, method and secondary point count of its primary domain
func (o *Discretiser) lowerOperand(node *sym.Node) (child *sym.Node, sub *msh.SubMesh, method Method, nsec int, err error) {
	operand := node.Args[0]
	if len(operand.Dom) != 1 {
		err = chk.Err("spatial operators need an operand on exactly one domain; %q is on %v", operand, operand.Dom)
		return
	}
	dom := operand.Dom[0]
	sub, err = o.Msh.Get(dom)
	if err != nil {
		return
	}
	method, ok := o.Methods[dom]
	if !ok {
		err = chk.Err("domain %q has no spatial method assigned", dom)
		return
	}
	nsec, err = o.Msh.Npts(operand.Sec)
	if err != nil {
		return
	}
	child, err = o.ProcessSymbol(operand)
	return
}

// boundaryPair returns the discretised boundary-condition pair of an
// operand, or nil when the model supplies none
func (o *Discretiser) boundaryPair(operand *sym.Node) (pair *mdl.BcPair, err error) {
	id := operand.ID()
	o.mu.Lock()
	if p, ok := o.bcs[id]; ok {
		o.mu.Unlock()
		return p, nil
	}
	o.mu.Unlock()
	src, ok := o.bcsrc[id]
	if !ok {
		return nil, nil
	}
	pair = &mdl.BcPair{}
	if src.Left != nil {
		expr, err := o.ProcessSymbol(src.Left.Expr)
		if err != nil {
			return nil, chk.Err("cannot discretise left boundary condition of %q:\n%v", operand, err)
		}
		pair.Left = &mdl.Bc{Kind: src.Left.Kind, Expr: expr}
	}
	if src.Right != nil {
		expr, err := o.ProcessSymbol(src.Right.Expr)
		if err != nil {
			return nil, chk.Err("cannot discretise right boundary condition of %q:\n%v", operand, err)
		}
		pair.Right = &mdl.Bc{Kind: src.Right.Kind, Expr: expr}
	}
	o.mu.Lock()
	o.bcs[id] = pair
	o.mu.Unlock()
	return
}

// stateSize returns the slice length of a state: the point count of its
// primary domain times the point count of its secondary domain
func (o *Discretiser) stateSize(state *sym.Node) (n int, err error) {
	nd, err := o.Msh.Npts(state.Dom)
	if err != nil {
		return 0, chk.Err("cannot size state %q:\n%v", state.Name, err)
	}
	ns, err := o.Msh.Npts(state.Sec)
	if err != nil {
		return 0, chk.Err("cannot size state %q:\n%v", state.Name, err)
	}
	return nd * ns, nil
}

// discreteLen returns the number of entries a discretised tree evaluates
// to, by structural inspection
func discreteLen(n *sym.Node) int {
	switch n.Kind {
	case sym.KindScalar, sym.KindTime:
		return 1
	case sym.KindVector:
		return len(n.Vec)
	case sym.KindStateVector:
		return n.Len
	case sym.KindMatMul:
		return n.Mat.M
	}
	max := 1
	for _, a := range n.Args {
		if l := discreteLen(a); l > max {
			max = l
		}
	}
	return max
}

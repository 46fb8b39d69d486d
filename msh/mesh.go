// Copyright 2019 The PyBaMM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msh implements per-domain submeshes and the full mesh built
// from a resolved geometry registry
package msh

import (
	"github.com/santacodes/PyBaMM/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// SubMesh holds the discretisation of one domain. Immutable after build.
type SubMesh struct {
	Dom     string    // domain name
	Dim     int       // dimensionality: 0, 1 or 2
	N       int       // number of discretisation points (cells)
	Ny, Nz  int       // points per direction (2-D tensor grids only)
	Edges   la.Vector // [N+1] cell edges (1-D only)
	Centers la.Vector // [N] cell centres (1-D only)
}

// Dx returns the uniform cell width (1-D only)
func (o *SubMesh) Dx() float64 {
	return o.Edges[1] - o.Edges[0]
}

// Mesh holds the submeshes of all domains
type Mesh struct {
	names []string
	subs  map[string]*SubMesh
}

// BuilderType defines a function that builds a submesh for one domain
type BuilderType func(d *inp.DomGeom, npts int) (*SubMesh, error)

// builders holds all submesh builders
var builders = make(map[string]BuilderType)

// SetBuilder registers a new submesh builder
func SetBuilder(name string, fcn BuilderType) {
	if _, ok := builders[name]; ok {
		chk.Panic("cannot set builder for submesh type %q because it exists already", name)
	}
	builders[name] = fcn
}

// NewMesh builds submeshes for every domain in the geometry registry.
// npts overrides a domain's default point count when present. The
// geometry must have been processed (extents resolved) beforehand.
func NewMesh(g *inp.Geometry, npts map[string]int) (o *Mesh, err error) {
	o = &Mesh{subs: make(map[string]*SubMesh)}
	for _, name := range g.Names() {
		d, _ := g.Get(name)
		if !d.Resolved {
			return nil, chk.Err("cannot mesh domain %q: geometry extents have not been resolved", name)
		}
		n := d.Npts
		if v, ok := npts[name]; ok {
			n = v
		}
		fcn, ok := builders[d.SubMesh]
		if !ok {
			return nil, chk.Err("cannot find builder for submesh type %q of domain %q", d.SubMesh, name)
		}
		sub, err := fcn(d, n)
		if err != nil {
			return nil, chk.Err("cannot build submesh for domain %q:\n%v", name, err)
		}
		o.names = append(o.names, name)
		o.subs[name] = sub
	}
	return
}

// Get returns the submesh of one domain
func (o *Mesh) Get(dom string) (s *SubMesh, err error) {
	s, ok := o.subs[dom]
	if !ok {
		err = chk.Err("domain %q has no submesh", dom)
	}
	return
}

// Names returns all meshed domain names in geometry order
func (o *Mesh) Names() []string {
	return o.names
}

// Npts returns the number of points of one domain; 1 for unmeshed
// (domain-less) expressions
func (o *Mesh) Npts(dom []string) (n int, err error) {
	if len(dom) == 0 {
		return 1, nil
	}
	n = 0
	for _, name := range dom {
		s, err := o.Get(name)
		if err != nil {
			return 0, err
		}
		n += s.N
	}
	return
}

// String returns a summary of the mesh
func (o *Mesh) String() string {
	s := ""
	for _, name := range o.names {
		sub := o.subs[name]
		s += io.Sf("  %-22q dim=%d n=%d\n", name, sub.Dim, sub.N)
	}
	return s
}

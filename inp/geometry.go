// Copyright 2019 The PyBaMM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/santacodes/PyBaMM/sym"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// DomGeom holds the geometry of one named domain. Min and Max may be
// parameter expressions; ProcessGeometry resolves them to numbers before
// any mesh is built.
type DomGeom struct {

	// input
	Name    string    // domain name. ex: "negative electrode"
	Dim     int       // dimensionality: 0, 1 or 2
	Min     *sym.Node // lower spatial extent
	Max     *sym.Node // upper spatial extent
	SubMesh string    // submesh type name. ex: "uniform1d"
	Npts    int       // default number of discretisation points

	// derived (after ProcessGeometry)
	MinV, MaxV float64 // resolved extents
	Resolved   bool    // extents have been resolved
}

// Geometry maps domain names to spatial extents and dimensionality.
// Built once from configuration; immutable afterwards.
type Geometry struct {
	names []string
	doms  map[string]*DomGeom
}

// NewGeometry returns an empty geometry registry
func NewGeometry() *Geometry {
	return &Geometry{doms: make(map[string]*DomGeom)}
}

// Add registers the geometry of one domain
func (o *Geometry) Add(d *DomGeom) (err error) {
	if _, ok := o.doms[d.Name]; ok {
		return chk.Err("domain %q is already in the geometry registry", d.Name)
	}
	o.names = append(o.names, d.Name)
	o.doms[d.Name] = d
	return
}

// Get returns the geometry of one domain
func (o *Geometry) Get(name string) (d *DomGeom, err error) {
	d, ok := o.doms[name]
	if !ok {
		err = chk.Err("domain %q is not in the geometry registry", name)
	}
	return
}

// Names returns all domain names in registration order
func (o *Geometry) Names() []string {
	return o.names
}

// ProcessGeometry resolves every domain's extents by substituting
// parameters and evaluating the resulting expressions. Must be called
// before mesh construction since extents may be parameter expressions.
func (o *ParSet) ProcessGeometry(g *Geometry) (err error) {
	for _, name := range g.Names() {
		d := g.doms[name]
		d.MinV, err = o.resolveExtent(name, "min", d.Min)
		if err != nil {
			return
		}
		d.MaxV, err = o.resolveExtent(name, "max", d.Max)
		if err != nil {
			return
		}
		if d.MaxV <= d.MinV && d.Dim > 0 {
			return chk.Err("domain %q has empty extent [%g,%g]", name, d.MinV, d.MaxV)
		}
		d.Resolved = true
	}
	return
}

// resolveExtent evaluates one extent expression to a number
func (o *ParSet) resolveExtent(dom, side string, extent *sym.Node) (v float64, err error) {
	if extent == nil {
		return 0, chk.Err("domain %q has no %s extent", dom, side)
	}
	processed, err := o.ProcessSymbol(extent)
	if err != nil {
		return 0, chk.Err("cannot process %s extent of domain %q:\n%v", side, dom, err)
	}
	res, err := processed.Eval(0, nil)
	if err != nil {
		return 0, chk.Err("cannot evaluate %s extent of domain %q:\n%v", side, dom, err)
	}
	if len(res) != 1 {
		return 0, chk.Err("%s extent of domain %q is not a scalar", side, dom)
	}
	return res[0], nil
}

// String returns a summary of the geometry
func (o *Geometry) String() string {
	s := ""
	for _, name := range o.names {
		d := o.doms[name]
		if d.Resolved {
			s += io.Sf("  %-22q dim=%d  [%g,%g]  submesh=%q  npts=%d\n", name, d.Dim, d.MinV, d.MaxV, d.SubMesh, d.Npts)
			continue
		}
		s += io.Sf("  %-22q dim=%d  [%v,%v]  submesh=%q  npts=%d\n", name, d.Dim, d.Min, d.Max, d.SubMesh, d.Npts)
	}
	return s
}

// Copyright 2019 The PyBaMM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lion

import (
	"github.com/santacodes/PyBaMM/inp"
	"github.com/santacodes/PyBaMM/sym"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// DefaultGeometry returns the domain/geometry registry of the lithium-ion
// cell for the given options. Electrode extents are parameter expressions
// resolved later by ProcessGeometry; particle domains are scaled to the
// particle radius.
func DefaultGeometry(opts *inp.Options) (g *inp.Geometry, err error) {
	ln := sym.NewParameter("Negative electrode thickness")
	ls := sym.NewParameter("Separator thickness")
	lp := sym.NewParameter("Positive electrode thickness")
	zero := sym.NewScalar(0)
	g = inp.NewGeometry()
	doms := []*inp.DomGeom{
		{Name: "negative electrode", Dim: 1, Min: zero, Max: ln, SubMesh: "uniform1d", Npts: 10},
		{Name: "separator", Dim: 1, Min: ln, Max: sym.Add(ln, ls), SubMesh: "uniform1d", Npts: 5},
		{Name: "positive electrode", Dim: 1, Min: sym.Add(ln, ls), Max: sym.Add(sym.Add(ln, ls), lp), SubMesh: "uniform1d", Npts: 10},
		{Name: "negative particle", Dim: 1, Min: zero, Max: sym.NewParameter("Negative particle radius"), SubMesh: "uniform1d", Npts: 20},
		{Name: "positive particle", Dim: 1, Min: zero, Max: sym.NewParameter("Positive particle radius"), SubMesh: "uniform1d", Npts: 20},
	}
	switch opts.Dimensionality {
	case 0, 1:
		doms = append(doms, &inp.DomGeom{Name: "current collector", Dim: 0, Min: zero, Max: sym.NewScalar(1), SubMesh: "zero0d", Npts: 1})
	case 2:
		doms = append(doms, &inp.DomGeom{Name: "current collector", Dim: 2, Min: zero, Max: sym.NewScalar(1), SubMesh: "tensor2d", Npts: 16})
	default:
		return nil, chk.Err("unsupported dimensionality %d; dimensionality of current collectors must be 0, 1 or 2", opts.Dimensionality)
	}
	for _, d := range doms {
		if err = g.Add(d); err != nil {
			return nil, err
		}
	}
	return
}

// DefaultMethods returns the per-domain spatial-method assignment for
// the given options. At dimensionality 2 the current collector routes to
// the finite element method; everything else stays finite volume.
func DefaultMethods(opts *inp.Options) (methods map[string]string, err error) {
	methods = map[string]string{
		"negative electrode": "finite volume",
		"separator":          "finite volume",
		"positive electrode": "finite volume",
		"negative particle":  "finite volume",
		"positive particle":  "finite volume",
	}
	switch opts.Dimensionality {
	case 0:
		methods["current collector"] = "zero dimensional"
	case 1:
		methods["current collector"] = "finite volume"
	case 2:
		methods["current collector"] = "finite element"
	default:
		return nil, chk.Err("unsupported dimensionality %d; dimensionality of current collectors must be 0, 1 or 2", opts.Dimensionality)
	}
	return
}

// cte returns a constant dbf function
func cte(v float64) dbf.T {
	f := dbf.New("cte", dbf.Params{&dbf.P{N: "c", V: v}})
	return f
}

// DefaultPars returns the built-in (dimensionless) parameter set of the
// single-particle model family
func DefaultPars() (pset *inp.ParSet) {
	pset = inp.NewParSet()

	// geometry
	pset.Set("Negative electrode thickness", 0.3)
	pset.Set("Separator thickness", 0.2)
	pset.Set("Positive electrode thickness", 0.3)
	pset.Set("Negative particle radius", 1.0)
	pset.Set("Positive particle radius", 1.0)

	// particles
	pset.Set("Negative particle diffusion timescale", 10.0)
	pset.Set("Positive particle diffusion timescale", 10.0)
	pset.Set("Negative electrode surface area to volume ratio", 1.0)
	pset.Set("Positive electrode surface area to volume ratio", 1.0)
	pset.Set("Initial concentration in negative electrode", 0.8)
	pset.Set("Initial concentration in positive electrode", 0.6)
	pset.SetFcn("Negative particle diffusivity", cte(1.0))
	pset.SetFcn("Positive particle diffusivity", cte(1.0))

	// kinetics and potentials
	pset.SetFcn("Negative electrode exchange-current density", cte(5.0))
	pset.SetFcn("Positive electrode exchange-current density", cte(5.0))
	pset.SetFcn("Negative electrode OCP", cte(0.1))
	pset.SetFcn("Positive electrode OCP", cte(4.1))

	// applied current and termination
	pset.SetFcn("Current function", cte(0.6))
	pset.Set("Typical current", 0.6)
	pset.Set("Lower voltage cut-off", 3.0)

	// current collector (dimensionality 2)
	pset.Set("Current collector resistance", 1.0)
	pset.Set("Initial current collector voltage", 3.2)
	return
}

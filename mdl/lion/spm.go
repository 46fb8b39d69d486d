// Copyright 2019 The PyBaMM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package lion implements full lithium-ion battery models composed from
// the physical submodels
package lion

import (
	"github.com/santacodes/PyBaMM/inp"
	"github.com/santacodes/PyBaMM/mdl"
	"github.com/santacodes/PyBaMM/mdl/cc"
	"github.com/santacodes/PyBaMM/mdl/electrode"
	"github.com/santacodes/PyBaMM/mdl/electrolyte"
	"github.com/santacodes/PyBaMM/mdl/interf"
	"github.com/santacodes/PyBaMM/mdl/particle"
	"github.com/santacodes/PyBaMM/mdl/potential"
	"github.com/santacodes/PyBaMM/mdl/thermal"
	"github.com/santacodes/PyBaMM/sym"

	"github.com/cpmech/gosl/chk"
)

// domain name lists
var (
	negParticle = []string{"negative particle"}
	posParticle = []string{"positive particle"}
	collector   = []string{"current collector"}
)

// NewSPM builds the Single Particle Model: one representative particle
// per electrode, homogeneous interfacial current, leading-order
// electrolyte and electrode behaviour, and a voltage cut-off event.
// Submodels are composed in dependency order; the caller-supplied extra
// options are validated before any symbolic work.
func NewSPM(extra map[string]interface{}) (m *mdl.Model, err error) {

	// options
	opts, err := inp.NewOptions(extra)
	if err != nil {
		return nil, err
	}
	m = mdl.New("Single Particle Model", opts)

	// model variables
	cSn := sym.NewVariable("X-averaged negative particle concentration", negParticle, "current collector")
	cSp := sym.NewVariable("X-averaged positive particle concentration", posParticle, "current collector")

	// boundary conditions / current collector
	iCC, err := setCollectorConditions(m)
	if err != nil {
		return nil, err
	}

	// temperature; must be merged before the particles read it
	err = m.Update(thermal.NewIsothermal())
	if err != nil {
		return nil, err
	}
	tAv, _ := m.Vars.Get("X-averaged negative electrode temperature")

	// interfacial current density
	intN := interf.New("Negative")
	intP := interf.New("Positive")
	jN := intN.HomogeneousCurrent(iCC)
	jP := intP.HomogeneousCurrent(iCC)

	// particle submodels
	err = m.Update(
		particle.NewStandard("Negative", cSn, sym.Broadcast(tAv, negParticle), jN),
		particle.NewStandard("Positive", cSp, sym.Broadcast(tAv, posParticle), jP),
		electrolyte.NewLeadingOrder(),
	)
	if err != nil {
		return nil, err
	}

	// post-processing: exchange-current densities
	cE, _ := m.Vars.Get("X-averaged electrolyte concentration")
	cSnSurf, _ := m.Vars.Get("X-averaged negative particle surface concentration")
	cSpSurf, _ := m.Vars.Get("X-averaged positive particle surface concentration")
	j0N := intN.ExchangeCurrent(cE, cSnSurf)
	j0P := intP.ExchangeCurrent(cE, cSpSurf)
	for _, d := range append(intN.DerivedCurrents(jN, j0N), intP.DerivedCurrents(jP, j0P)...) {
		if err = m.Vars.Set(d.Name, d.Expr); err != nil {
			return nil, err
		}
	}

	// post-processing: potentials
	pot := potential.New()
	ocpN := intN.OpenCircuitPotential(cSnSurf)
	ocpP := intP.OpenCircuitPotential(cSpSurf)
	etaN := intN.InverseButlerVolmer(jN, j0N)
	etaP := intP.InverseButlerVolmer(jP, j0P)
	defs := append(pot.DerivedOpenCircuitPotentials(ocpN, ocpP), pot.DerivedReactionOverpotentials(etaN, etaP)...)
	for _, d := range defs {
		if err = m.Vars.Set(d.Name, d.Expr); err != nil {
			return nil, err
		}
	}

	// post-processing: terminal voltage
	elec := electrode.New()
	vdefs, err := elec.LeadingOrderVariables(m.Vars)
	if err != nil {
		return nil, err
	}
	for _, d := range vdefs {
		if err = m.Vars.Set(d.Name, d.Expr); err != nil {
			return nil, err
		}
	}

	// cut-off voltage; the potential-pair model has a distributed
	// voltage and terminates through its own solver controls
	if opts.Dimensionality == 0 {
		voltage, _ := m.Vars.Get("Terminal voltage")
		m.AddEvent("Minimum voltage", sym.Sub(voltage, sym.NewParameter("Lower voltage cut-off")))
	}
	return
}

// setCollectorConditions sets the current-collector conditions per the
// dimensionality option and returns the through-cell current density
// expression driving the interfacial submodels
func setCollectorConditions(m *mdl.Model) (iCC *sym.Node, err error) {
	switch m.Opts.Dimensionality {

	case 0:
		// averaged collector: the current follows the applied programme
		iCC = sym.NewParameter("Current function")
		if err = m.Vars.Set("Current collector current density", iCC); err != nil {
			return nil, err
		}
		err = m.Vars.Set("Current collector voltage", sym.NewScalar(1))
		return iCC, err

	case 1:
		return nil, chk.Err("boundary conditions for dimensionality 1 are not implemented")

	case 2:
		vCC := sym.NewVariable("Current collector voltage", collector)
		iVar := sym.NewVariable("Current collector current density", collector)
		err = m.Update(cc.NewOhmTwoDimensional(vCC, iVar))
		return iVar, err
	}
	return nil, chk.Err("unsupported dimensionality %d", m.Opts.Dimensionality)
}

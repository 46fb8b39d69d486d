// Copyright 2019 The PyBaMM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/santacodes/PyBaMM/dis"
	"github.com/santacodes/PyBaMM/mdl/lion"
	"github.com/santacodes/PyBaMM/msh"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			chk.Verbose = true
		}
	}()

	// build symbolic model
	model, err := lion.NewSPM(nil)
	if err != nil {
		chk.Panic("cannot build model:\n%v", err)
	}
	io.PfWhite("\n%s\n", model.Name)
	io.Pf("options = %v\n", model.Opts)

	// process parameters and geometry
	pars := lion.DefaultPars()
	geom, err := lion.DefaultGeometry(model.Opts)
	if err != nil {
		chk.Panic("cannot build geometry:\n%v", err)
	}
	if err = pars.ProcessGeometry(geom); err != nil {
		chk.Panic("cannot process geometry:\n%v", err)
	}
	if err = model.ProcessParameters(pars); err != nil {
		chk.Panic("cannot process parameters:\n%v", err)
	}
	if err = model.Finalize(); err != nil {
		chk.Panic("model is incomplete:\n%v", err)
	}

	// discretise
	mesh, err := msh.NewMesh(geom, nil)
	if err != nil {
		chk.Panic("cannot build mesh:\n%v", err)
	}
	methods, err := lion.DefaultMethods(model.Opts)
	if err != nil {
		chk.Panic("cannot select spatial methods:\n%v", err)
	}
	disc, err := dis.New(mesh, methods)
	if err != nil {
		chk.Panic("cannot set up discretisation:\n%v", err)
	}
	sys, err := disc.ProcessModel(model)
	if err != nil {
		chk.Panic("cannot discretise model:\n%v", err)
	}
	io.Pf("\nmesh:\n%v", mesh)
	io.Pf("\nstate layout (ny=%d):\n%v", sys.Layout.Ny, sys.Layout)

	// time walk; stand-in for the external integrator
	voltage, err := sys.Var("Terminal voltage")
	if err != nil {
		chk.Panic("%v", err)
	}
	t, dt, tf := 0.0, 0.01, 10.0
	y := sys.Y0.GetCopy()
	f := la.NewVector(sys.Layout.Ny)
	ev0, err := sys.EventValues(t, y)
	if err != nil {
		chk.Panic("cannot evaluate events:\n%v", err)
	}
	io.Pf("\n%8s%14s\n", "t", "voltage")
	for t < tf {
		if err = sys.Fcn(f, t, y); err != nil {
			chk.Panic("cannot evaluate system:\n%v", err)
		}
		for _, s := range sys.Layout.Slices {
			if !s.Differential {
				continue
			}
			for i := s.Off; i < s.Off+s.Len; i++ {
				y[i] += dt * f[i]
			}
		}
		t += dt

		// termination events: sign change between steps
		ev, err := sys.EventValues(t, y)
		if err != nil {
			chk.Panic("cannot evaluate events:\n%v", err)
		}
		stop := false
		for i, v := range ev {
			if v*ev0[i] < 0 {
				io.Pforan("event %q crossed zero at t=%g\n", sys.Events[i].Name, t)
				stop = true
			}
		}
		ev0 = ev
		if v, err := voltage.Eval(t, y); err == nil && int(t*100)%100 == 0 {
			io.Pf("%8.2f%14.6f\n", t, v[0])
		}
		if stop {
			break
		}
	}
	io.Pf("\ndone\n")
}

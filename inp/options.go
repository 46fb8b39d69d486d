// Copyright 2019 The PyBaMM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the model input data: options, parameter sets
// and the domain/geometry registry
package inp

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Options holds the configuration surface of a battery model. Options are
// validated by NewOptions before any symbolic work begins; an invalid
// option never produces a partial model.
type Options struct {
	Dimensionality   int    // dimension of current collectors: 0, 1 or 2
	Particle         string // particle model: "Fickian diffusion" or "uniform profile"
	Thermal          string // thermal model: "isothermal" or "lumped"
	SurfaceForm      string // surface potential form: "none", "differential" or "algebraic"
	CurrentCollector string // current collector model: "uniform" or "potential pair"
}

// valid option values
var (
	validParticle    = []string{"Fickian diffusion", "uniform profile"}
	validThermal     = []string{"isothermal", "lumped"}
	validSurfForm    = []string{"none", "differential", "algebraic"}
	validCollector   = []string{"uniform", "potential pair"}
	knownOptionNames = []string{"dimensionality", "particle", "thermal", "surface form", "current collector"}
)

// NewOptions returns validated options. Defaults are applied first, then
// the extra map overrides them. Unrecognised names and unsupported values
// are configuration errors.
func NewOptions(extra map[string]interface{}) (o *Options, err error) {

	// defaults
	o = &Options{
		Dimensionality:   0,
		Particle:         "Fickian diffusion",
		Thermal:          "isothermal",
		SurfaceForm:      "none",
		CurrentCollector: "uniform",
	}

	// overrides; sorted for deterministic error reporting
	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := extra[k]
		switch k {
		case "dimensionality":
			n, ok := toInt(v)
			if !ok {
				return nil, chk.Err("dimensionality option must be an integer, not %v", v)
			}
			o.Dimensionality = n
		case "particle":
			o.Particle, _ = v.(string)
		case "thermal":
			o.Thermal, _ = v.(string)
		case "surface form":
			o.SurfaceForm, _ = v.(string)
		case "current collector":
			o.CurrentCollector, _ = v.(string)
		default:
			return nil, chk.Err("unknown option %q; valid option names are %v", k, knownOptionNames)
		}
	}

	// validation
	if o.Dimensionality < 0 || o.Dimensionality > 2 {
		return nil, chk.Err("unsupported dimensionality %d; dimensionality of current collectors must be 0, 1 or 2", o.Dimensionality)
	}
	if utl.StrIndexSmall(validParticle, o.Particle) < 0 {
		return nil, chk.Err("unknown particle model %q; options are %v", o.Particle, validParticle)
	}
	if utl.StrIndexSmall(validThermal, o.Thermal) < 0 {
		return nil, chk.Err("unknown thermal model %q; options are %v", o.Thermal, validThermal)
	}
	if utl.StrIndexSmall(validSurfForm, o.SurfaceForm) < 0 {
		return nil, chk.Err("unknown surface form %q; options are %v", o.SurfaceForm, validSurfForm)
	}
	if utl.StrIndexSmall(validCollector, o.CurrentCollector) < 0 {
		return nil, chk.Err("unknown current collector model %q; options are %v", o.CurrentCollector, validCollector)
	}
	return
}

// toInt converts a value read from generic input to int
func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		return int(n), true
	}
	return 0, false
}

// String returns a summary of the options
func (o *Options) String() string {
	return io.Sf("{dimensionality:%d particle:%q thermal:%q surface form:%q current collector:%q}",
		o.Dimensionality, o.Particle, o.Thermal, o.SurfaceForm, o.CurrentCollector)
}

// Copyright 2019 The PyBaMM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"math"

	"github.com/santacodes/PyBaMM/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// register submesh builders
func init() {

	// uniform 1-D submesh: n cells of equal width with cell-centred unknowns
	SetBuilder("uniform1d", func(d *inp.DomGeom, npts int) (*SubMesh, error) {
		if npts < 2 {
			return nil, chk.Err("uniform1d submesh needs at least 2 points; got %d", npts)
		}
		o := &SubMesh{Dom: d.Name, Dim: 1, N: npts}
		o.Edges = utl.LinSpace(d.MinV, d.MaxV, npts+1)
		o.Centers = la.NewVector(npts)
		for i := 0; i < npts; i++ {
			o.Centers[i] = 0.5 * (o.Edges[i] + o.Edges[i+1])
		}
		return o, nil
	})

	// 0-D submesh: a single point
	SetBuilder("zero0d", func(d *inp.DomGeom, npts int) (*SubMesh, error) {
		return &SubMesh{Dom: d.Name, Dim: 0, N: 1,
			Edges:   la.Vector{d.MinV, d.MaxV},
			Centers: la.Vector{0.5 * (d.MinV + d.MaxV)},
		}, nil
	})

	// 2-D tensor-product grid: npts is the total number of points and must
	// be a perfect square; points per direction are equal
	SetBuilder("tensor2d", func(d *inp.DomGeom, npts int) (*SubMesh, error) {
		side := int(math.Sqrt(float64(npts)))
		if side*side != npts {
			return nil, chk.Err("tensor2d submesh needs a square number of points; got %d", npts)
		}
		return &SubMesh{Dom: d.Name, Dim: 2, N: npts, Ny: side, Nz: side}, nil
	})
}

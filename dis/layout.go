// Copyright 2019 The PyBaMM Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dis implements the discretiser: it lowers parameter-free
// symbolic trees onto a mesh, allocating the global state-vector layout
// and replacing spatial operators with concrete linear operators
package dis

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Slice records the portion of the global state vector owned by one
// state variable
type Slice struct {
	Name         string   // state variable name
	Dom          []string // primary domain
	Off          int      // offset into the global state vector
	Len          int      // number of entries
	Differential bool     // differential (true) or algebraic (false) state
}

// Layout holds the global state-vector layout: an ordered sequence of
// contiguous, non-overlapping slices. Downstream solvers index into the
// flat state vector using these records.
type Layout struct {
	Slices []*Slice // in allocation order
	Ny     int      // total size of the state vector

	byName map[string]int
}

// NewLayout returns an empty layout
func NewLayout() *Layout {
	return &Layout{byName: make(map[string]int)}
}

// Alloc appends a new slice for one state variable
func (o *Layout) Alloc(name string, dom []string, n int, differential bool) (s *Slice, err error) {
	if _, ok := o.byName[name]; ok {
		return nil, chk.Err("state %q already has a slice in the layout", name)
	}
	if n < 1 {
		return nil, chk.Err("cannot allocate empty slice for state %q", name)
	}
	s = &Slice{Name: name, Dom: dom, Off: o.Ny, Len: n, Differential: differential}
	o.byName[name] = len(o.Slices)
	o.Slices = append(o.Slices, s)
	o.Ny += n
	return
}

// Get returns the slice of one state variable
func (o *Layout) Get(name string) (s *Slice, ok bool) {
	i, ok := o.byName[name]
	if !ok {
		return
	}
	return o.Slices[i], true
}

// Check validates that slices are contiguous, non-overlapping and that
// their total length equals the state-vector size
func (o *Layout) Check() (err error) {
	off := 0
	for _, s := range o.Slices {
		if s.Off != off {
			return chk.Err("slice %q starts at %d instead of %d", s.Name, s.Off, off)
		}
		off += s.Len
	}
	if off != o.Ny {
		return chk.Err("total slice length %d does not match state-vector size %d", off, o.Ny)
	}
	return
}

// String returns a table of the layout
func (o *Layout) String() string {
	s := ""
	for _, sl := range o.Slices {
		kind := "differential"
		if !sl.Differential {
			kind = "algebraic"
		}
		s += io.Sf("  y[%4d:%4d]  %-12s  %q\n", sl.Off, sl.Off+sl.Len, kind, sl.Name)
	}
	return s
}

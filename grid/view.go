// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"github.com/cpmech/gosl/chk"
)

// Grad holds the value of the gradient of a scalar field at a point,
// already divided by the grid spacing
type Grad struct {
	X, Y float64
}

// View wraps a nodal scalar field with logical (j,k) indexing.
// On periodic grids indices wrap transparently, thus j=-1 reads column
// Mx-1 and j=Mx reads column 0. On non-periodic grids out-of-domain
// access is a bug in the caller and panics.
type View struct {
	G *Grid     // grid geometry
	V []float64 // nodal values [My*Mx], k-major
}

// NewView creates a view with its own zeroed buffer
func NewView(g *Grid) *View {
	return &View{G: g, V: make([]float64, g.N())}
}

// Wrap creates a view over an existing buffer
func Wrap(g *Grid, v []float64) *View {
	if len(v) != g.N() {
		chk.Panic("cannot wrap buffer with %d entries as a %dx%d view", len(v), g.Mx, g.My)
	}
	return &View{G: g, V: v}
}

// idx maps logical (j,k), including ghost indices, to the storage offset
func (o *View) idx(j, k int) int {
	if o.G.Periodic {
		j = (j + o.G.Mx) % o.G.Mx
		k = (k + o.G.My) % o.G.My
	} else if j < 0 || j >= o.G.Mx || k < 0 || k >= o.G.My {
		chk.Panic("access to node (%d,%d) is out of the %dx%d non-periodic grid", j, k, o.G.Mx, o.G.My)
	}
	return k*o.G.Mx + j
}

// At returns the value at node (j,k)
func (o *View) At(j, k int) float64 {
	return o.V[o.idx(j, k)]
}

// Set sets the value at node (j,k)
func (o *View) Set(j, k int, v float64) {
	o.V[o.idx(j, k)] = v
}

// Corners collects, counter-clockwise from (j,k), the four values of the
// element with lower-left node (j,k)
func (o *View) Corners(j, k int, f *[4]float64) {
	f[0] = o.At(j, k)
	f[1] = o.At(j+1, k)
	f[2] = o.At(j+1, k+1)
	f[3] = o.At(j, k+1)
}

// Fill sets all values
func (o *View) Fill(v float64) {
	for i := range o.V {
		o.V[i] = v
	}
}

// CopyFrom copies all values from another view on the same grid
func (o *View) CopyFrom(src *View) {
	copy(o.V, src.V)
}

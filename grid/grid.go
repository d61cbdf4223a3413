// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package grid implements structured 2D grids, their decomposition into
// per-processor patches, and ghosted views of nodal fields
package grid

import (
	"github.com/cpmech/gosl/chk"
)

// Grid holds the geometry of a uniform structured 2D grid of nodes.
// Logical indices are (j,k) with j in [0,Mx) along x and k in [0,My)
// along y. In the periodic case the last node row/column is implicit;
// i.e. node Mx wraps to node 0 and Dx = Lx / Mx, otherwise
// Dx = Lx / (Mx-1).
type Grid struct {

	// input
	Mx, My   int     // number of nodes along x and y
	Xmin     float64 // lower-left corner, x
	Ymin     float64 // lower-left corner, y
	Xmax     float64 // upper-right corner, x
	Ymax     float64 // upper-right corner, y
	Periodic bool    // periodic wrap in both directions

	// derived
	Dx, Dy float64 // grid spacing
}

// New creates a new grid
func New(mx, my int, xmin, xmax, ymin, ymax float64, periodic bool) (g *Grid, err error) {
	if mx < 3 || my < 3 {
		return nil, chk.Err("grid must have at least 3x3 nodes; mx=%d, my=%d is invalid", mx, my)
	}
	if xmax <= xmin || ymax <= ymin {
		return nil, chk.Err("grid bounding box [%g,%g]x[%g,%g] is invalid", xmin, xmax, ymin, ymax)
	}
	g = &Grid{Mx: mx, My: my, Xmin: xmin, Xmax: xmax, Ymin: ymin, Ymax: ymax, Periodic: periodic}
	if periodic {
		g.Dx = (xmax - xmin) / float64(mx)
		g.Dy = (ymax - ymin) / float64(my)
	} else {
		g.Dx = (xmax - xmin) / float64(mx-1)
		g.Dy = (ymax - ymin) / float64(my-1)
	}
	return
}

// X returns the x-coordinate of nodes in column j
func (o *Grid) X(j int) float64 {
	return o.Xmin + float64(j)*o.Dx
}

// Y returns the y-coordinate of nodes in row k
func (o *Grid) Y(k int) float64 {
	return o.Ymin + float64(k)*o.Dy
}

// N returns the total number of nodes
func (o *Grid) N() int {
	return o.Mx * o.My
}

// Id returns the equation/storage number of node (j,k)
func (o *Grid) Id(j, k int) int {
	return k*o.Mx + j
}

// Onboundary tells whether node (j,k) sits on the domain edge.
// Periodic grids have no boundary nodes.
func (o *Grid) Onboundary(j, k int) bool {
	if o.Periodic {
		return false
	}
	return j == 0 || j == o.Mx-1 || k == 0 || k == o.My-1
}

// CellArea returns dx*dy
func (o *Grid) CellArea() float64 {
	return o.Dx * o.Dy
}

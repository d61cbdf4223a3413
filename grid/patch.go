// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/mpi"
	"github.com/cpmech/gosl/utl"
)

// Patch holds the rectangle of nodes owned by one processor. Residual
// evaluation additionally reads a one-node ghost ring around the owned
// rectangle; ghost values are made consistent by Join before each
// evaluation. In serial runs the patch is the whole grid and Join is
// a no-op.
type Patch struct {

	// essential
	G      *Grid // grid geometry
	Xs, Ys int   // first owned node
	Xm, Ym int   // number of owned nodes along x and y

	// multiprocessing
	Rank  int // this processor
	Nproc int // number of processors

	// scratch for joins
	wrk []float64
}

// NewPatch decomposes the grid among nproc processors arranged in a
// near-square process grid, and returns the patch of the given rank
func NewPatch(g *Grid, rank, nproc int) (p *Patch, err error) {
	npy, npx := utl.BestSquare(nproc)
	if npx*npy != nproc {
		return nil, chk.Err("cannot decompose grid: nproc=%d is not a product of two integers", nproc)
	}
	if g.Mx < 2*npx || g.My < 2*npy {
		return nil, chk.Err("grid %dx%d is too small for a %dx%d process grid", g.Mx, g.My, npx, npy)
	}
	p = &Patch{G: g, Rank: rank, Nproc: nproc}
	px := rank % npx
	py := rank / npx
	p.Xs, p.Xm = split(g.Mx, npx, px)
	p.Ys, p.Ym = split(g.My, npy, py)
	if nproc > 1 {
		p.wrk = make([]float64, g.N())
	}
	return
}

// split partitions n items among np chunks and returns start/size of chunk i
func split(n, np, i int) (start, size int) {
	size = n / np
	rem := n % np
	extra := i
	if rem < i {
		extra = rem
	}
	start = i*size + extra
	if i < rem {
		size++
	}
	return
}

// Owns tells whether node (j,k) belongs to this patch
func (o *Patch) Owns(j, k int) bool {
	return j >= o.Xs && j < o.Xs+o.Xm && k >= o.Ys && k < o.Ys+o.Ym
}

// Join makes the field values of v globally consistent: every processor
// contributes its owned entries and receives everyone else's, so the
// ghost ring read during residual evaluation is up to date. This is a
// blocking collective operation.
func (o *Patch) Join(v *View) {
	if o.Nproc < 2 {
		return
	}
	for k := 0; k < o.G.My; k++ {
		for j := 0; j < o.G.Mx; j++ {
			if !o.Owns(j, k) {
				v.Set(j, k, 0)
			}
		}
	}
	mpi.AllReduceSum(v.V, o.wrk)
}

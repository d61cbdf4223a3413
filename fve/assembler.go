// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fve

import (
	"github.com/cpmech/gice/grid"
	"github.com/cpmech/gice/mdl/sia"
	"github.com/cpmech/gosl/chk"
)

// SourceFunc returns the local source rate (e.g. climatic mass balance)
// given the node coordinates, the unknown value and the bed elevation
type SourceFunc func(x, y, u, b float64) float64

// BoundaryFunc returns the prescribed Dirichlet value at a boundary point
type BoundaryFunc func(x, y float64) float64

// Assembler evaluates the FVE residual on the patch owned by this
// processor. One Assembler must not be shared between goroutines: it
// carries scratch buffers which are fully overwritten on every call,
// keeping Residual a pure function of its inputs.
type Assembler struct {

	// essential
	Grid  *grid.Grid  // grid geometry
	Patch *grid.Patch // owned rectangle
	Mdl   *sia.Model  // flux model
	Bed   *grid.View  // bed elevation b at nodes
	Lower *grid.View  // lower bound (admissibility) at nodes

	// options
	Source          SourceFunc   // source term; nil means zero
	Bvalue          BoundaryFunc // Dirichlet boundary values; nil means zero
	Lambda          float64      // upwinding fraction in [0,1]; 0 disables upwinding
	CheckAdmissible bool         // fail fast on inadmissible input values

	// scratch, overwritten per call
	w  *grid.View    // working copy of the unknown with boundary values enforced
	qq [4]*grid.View // per-element flux samples
}

// NewAssembler allocates an assembler and its working storage
func NewAssembler(g *grid.Grid, p *grid.Patch, mdl *sia.Model, bedv, lower *grid.View) (o *Assembler, err error) {
	if mdl == nil {
		return nil, chk.Err("assembler requires a flux model")
	}
	if bedv == nil || lower == nil {
		return nil, chk.Err("assembler requires bed and lower-bound fields on the full grid")
	}
	o = &Assembler{Grid: g, Patch: p, Mdl: mdl, Bed: bedv, Lower: lower}
	o.w = grid.NewView(g)
	for c := 0; c < 4; c++ {
		o.qq[c] = grid.NewView(g)
	}
	return
}

// Residual evaluates the FVE residual of the current iterate u into ff,
// for the nodes owned by the patch:
//
//   ff[k][j] = sum_s coeff[s] q_s  -  M(x,y,u,b) dx dy   (interior nodes)
//   ff[k][j] = u[k][j] - g(x,y)                          (boundary nodes)
//
// where the first sum is the two-point midpoint quadrature of the flux
// over the control volume boundary. For transient problems udot holds
// the time-derivative estimate and adds the accumulation term
// udot dx dy to interior residuals; pass udot = nil for steady state.
//
// The evaluation fails if CheckAdmissible is on and any input value in
// the owned+ghost region is below the lower bound.
func (o *Assembler) Residual(u, udot *grid.View, ff *grid.View) (err error) {

	// auxiliary
	g := o.Grid
	p := o.Patch
	dx, dy := g.Dx, g.Dy
	upmin := (1.0 - o.Lambda) * 0.5
	upmax := (1.0 + o.Lambda) * 0.5

	// working copy over owned nodes plus one ghost ring: check
	// admissibility and enforce Dirichlet values on the domain edge
	for k := p.Ys - 1; k <= p.Ys+p.Ym; k++ {
		for j := p.Xs - 1; j <= p.Xs+p.Xm; j++ {
			if !g.Periodic && (j < 0 || j > g.Mx-1 || k < 0 || k > g.My-1) {
				continue
			}
			uin := u.At(j, k)
			if o.CheckAdmissible && uin < o.Lower.At(j, k) {
				jj := (j + g.Mx) % g.Mx
				kk := (k + g.My) % g.My
				return chk.Err("non-admissible value u[%d][%d] = %.3e < lower bound %.3e", kk, jj, uin, o.Lower.At(j, k))
			}
			if g.Onboundary(j, k) {
				o.w.Set(j, k, o.bvalue(g.X(j), g.Y(k)))
			} else {
				o.w.Set(j, k, uin)
			}
		}
	}

	// flux samples on every element touching the owned patch, including
	// the ghost ring of elements, since boundary-node stencils reach
	// into neighboring elements
	var fu, fb [4]float64
	for k := p.Ys - 1; k < p.Ys+p.Ym; k++ {
		for j := p.Xs - 1; j < p.Xs+p.Xm; j++ {
			if !g.Periodic && (j < 0 || j >= g.Mx-1 || k < 0 || k >= g.My-1) {
				continue
			}
			o.w.Corners(j, k, &fu)
			o.Bed.Corners(j, k, &fb)
			for c := 0; c < 4; c++ {
				uval := FieldAtPt(locx[c], locy[c], &fu)
				gu := GradAtPt(locx[c], locy[c], dx, dy, &fu)
				gb := GradAtPt(locx[c], locy[c], dx, dy, &fb)

				// upwind sample: shift by ±lambda/2 from the element
				// center along the flux direction, against the bed slope
				uup := uval
				if o.Lambda > 0 {
					lxup, lyup := locx[c], locy[c]
					if xdire[c] {
						if gb.X <= 0 {
							lxup = upmin
						} else {
							lxup = upmax
						}
					} else {
						if gb.Y <= 0 {
							lyup = upmin
						} else {
							lyup = upmax
						}
					}
					uup = FieldAtPt(lxup, lyup, &fu)
				}

				_, q := o.Mdl.Flux(gu, gb, uval, uup, xdire[c])
				o.qq[c].Set(j, k, q)
			}
		}
	}

	// node residuals: 8-point quadrature around each owned node plus
	// source and (transient) accumulation terms; boundary nodes carry
	// the Dirichlet defect instead
	coeff := quadCoeffs(dx, dy)
	area := g.CellArea()
	for k := p.Ys; k < p.Ys+p.Ym; k++ {
		for j := p.Xs; j < p.Xs+p.Xm; j++ {
			if g.Onboundary(j, k) {
				ff.Set(j, k, u.At(j, k)-o.bvalue(g.X(j), g.Y(k)))
				continue
			}
			r := 0.0
			if o.Source != nil {
				r = -o.Source(g.X(j), g.Y(k), o.w.At(j, k), o.Bed.At(j, k)) * area
			}
			if udot != nil {
				r += udot.At(j, k) * area
			}
			for s := 0; s < 8; s++ {
				r += coeff[s] * o.qq[ce[s]].At(j+je[s], k+ke[s])
			}
			ff.Set(j, k, r)
		}
	}
	return
}

// bvalue returns the Dirichlet boundary value at (x,y)
func (o *Assembler) bvalue(x, y float64) float64 {
	if o.Bvalue == nil {
		return 0
	}
	return o.Bvalue(x, y)
}

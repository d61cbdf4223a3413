// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fve

import (
	"math"

	"github.com/cpmech/gice/grid"
)

// Jacobian assembles, into Kb, the finite-difference approximation of
// the derivative of the residual function encoded by resid, evaluated
// at u with residual ff0. The residual at a node depends only on its
// 3x3 neighborhood, so nodes three rows and three columns apart are
// perturbed simultaneously (9 colors, hence 9 residual evaluations).
// Entries are assembled for owned rows only; explicit zeros are kept so
// that the sparsity pattern is the same on every call and the linear
// solver can reuse its symbolic factorisation.
func (o *Domain) Jacobian(resid func(u, ff *grid.View) error, u, ff0 *grid.View) (err error) {

	// auxiliary
	g := o.Grid
	p := o.Patch

	// the 3-stride coloring is broken at the periodic seam unless the
	// node counts are multiples of 3; fall back to one column per
	// evaluation in the offending direction
	ncx, ncy := 3, 3
	if g.Periodic {
		if g.Mx%3 != 0 {
			ncx = g.Mx
		}
		if g.My%3 != 0 {
			ncy = g.My
		}
	}

	o.Kb.Start()
	for cy := 0; cy < ncy; cy++ {
		for cx := 0; cx < ncx; cx++ {

			// perturb all nodes of this color
			o.wjac.CopyFrom(u)
			for k := cy; k < g.My; k += ncy {
				for j := cx; j < g.Mx; j += ncx {
					h := o.FdEps * (1.0 + math.Abs(u.At(j, k)))
					o.wjac.Set(j, k, u.At(j, k)+h)
				}
			}

			// residual at the perturbed iterate
			if err = resid(o.wjac, o.fjac); err != nil {
				return
			}

			// derivative entries: owned rows in the 3x3 neighborhood of
			// each perturbed column
			for k := cy; k < g.My; k += ncy {
				for j := cx; j < g.Mx; j += ncx {
					h := o.FdEps * (1.0 + math.Abs(u.At(j, k)))
					col := g.Id(j, k)
					for dk := -1; dk <= 1; dk++ {
						for dj := -1; dj <= 1; dj++ {
							jr, kr := j+dj, k+dk
							if g.Periodic {
								jr = (jr + g.Mx) % g.Mx
								kr = (kr + g.My) % g.My
							} else if jr < 0 || jr >= g.Mx || kr < 0 || kr >= g.My {
								continue
							}
							if !p.Owns(jr, kr) {
								continue
							}
							o.Kb.Put(g.Id(jr, kr), col, (o.fjac.At(jr, kr)-ff0.At(jr, kr))/h)
						}
					}
				}
			}
		}
	}
	return
}

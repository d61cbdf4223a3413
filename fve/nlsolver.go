// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fve

import (
	"github.com/cpmech/gice/grid"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// Solver solves the constrained nonlinear problem F(u) = 0, u >= lower
// with a reduced-space Newton method: nodes pressed onto the lower
// bound by a positive residual are held there while the remaining
// (inactive) equations are solved by Newton iterations; every update is
// projected back onto the admissible set. The degenerate diffusivity is
// handled by sweeping the continuation schedule from large eps down to
// the target value, using each converged state as the next initial
// iterate.
type Solver struct {

	// input
	Dom *Domain

	// results
	It int // total number of Newton iterations of the last Solve/Run

	// reduced space
	Bndtol float64    // tolerance deciding whether a node sits on the bound
	active []bool     // per-node active flags, frozen during one iteration
	ff0    *grid.View // residual at the current iterate

	// transient state; dtinv = 0 means steady
	dtinv float64    // 1/dt
	uold  *grid.View // converged solution of the previous time step
	udot  *grid.View // scratch for the backward Euler derivative
	ubkp  *grid.View // backup for divergence control
}

// NewSolver creates a solver attached to a domain
func NewSolver(d *Domain) *Solver {
	return &Solver{
		Dom:    d,
		Bndtol: 1e-10,
		active: make([]bool, d.Grid.N()),
		ff0:    grid.NewView(d.Grid),
		uold:   grid.NewView(d.Grid),
		udot:   grid.NewView(d.Grid),
		ubkp:   grid.NewView(d.Grid),
	}
}

// resid evaluates the reduced residual at u into ff: the full residual
// with the backward Euler term when transient, and active rows replaced
// by the bound defect u - lower. The active set is frozen, so this is
// the function differentiated by the Jacobian assembly.
func (o *Solver) resid(u, ff *grid.View) (err error) {
	d := o.Dom
	var udot *grid.View
	if o.dtinv > 0 {
		for i := range o.udot.V {
			o.udot.V[i] = (u.V[i] - o.uold.V[i]) * o.dtinv
		}
		udot = o.udot
	}
	if err = d.Asm.Residual(u, udot, ff); err != nil {
		return
	}
	for i, a := range o.active {
		if a {
			ff.V[i] = u.V[i] - d.Lower.V[i]
		}
	}
	return
}

// updateActive recomputes the active set from the iterate and the full
// (globally consistent) residual: a node is active when it sits on the
// lower bound and the residual pushes it further down
func (o *Solver) updateActive(u, ff *grid.View) {
	d := o.Dom
	for i := range o.active {
		o.active[i] = u.V[i] <= d.Lower.V[i]+o.Bndtol && ff.V[i] > 0
	}
}

// iterate runs Newton iterations at time t until convergence
func (o *Solver) iterate(t float64) (it int, diverging bool, err error) {

	// auxiliary
	d := o.Dom
	sol := d.Sim.Solver
	var largFb, largFb0, Ldu float64
	var prevFb, prevLdu float64

	// message
	if sol.ShowR {
		io.Pf("\n%13s%4s%23s%23s\n", "t", "it", "largFb", "Ldu")
		defer func() {
			io.Pf("%13.6e%4d%23.15e%23.15e\n", t, it, largFb, Ldu)
		}()
	}

	// iterations
	for it = 0; it < sol.NmaxIt; it++ {

		// full residual at the current iterate
		var udot *grid.View
		if o.dtinv > 0 {
			for i := range o.udot.V {
				o.udot.V[i] = (d.U.V[i] - o.uold.V[i]) * o.dtinv
			}
			udot = o.udot
		}
		if err = d.Asm.Residual(d.U, udot, o.ff0); err != nil {
			return
		}
		d.Patch.Join(o.ff0)

		// reduced space: refresh the active set, then replace active
		// rows by the bound defect
		o.updateActive(d.U, o.ff0)
		for i, a := range o.active {
			if a {
				o.ff0.V[i] = d.U.V[i] - d.Lower.V[i]
			}
		}

		// right-hand side with negative of residuals
		for i, v := range o.ff0.V {
			d.Fb[i] = -v
		}

		// find largest absolute component of fb
		largFb = la.VecLargest(d.Fb, 1)

		// check largFb value
		if it == 0 {
			// store largest absolute component of fb
			largFb0 = largFb
		} else {
			// check convergence on fb
			if largFb < sol.FbTol*largFb0 {
				break
			}
			if largFb < sol.FbMin {
				break
			}
		}

		// check divergence on fb
		if it > 1 && sol.DvgCtrl {
			if largFb > prevFb {
				diverging = true
				break
			}
		}
		prevFb = largFb

		// assemble Jacobian matrix
		if err = d.Jacobian(o.resid, d.U, o.ff0); err != nil {
			return
		}

		// initialise linear solver
		if d.InitLSol {
			if err = d.LinSol.InitR(d.Kb, d.Sim.LinSol.Symmetric, d.Sim.LinSol.Verbose, d.Sim.LinSol.Timing); err != nil {
				return it, false, chk.Err("cannot initialise linear solver:\n%v", err)
			}
			d.InitLSol = false
		}

		// perform factorisation
		if err = d.LinSol.Fact(); err != nil {
			return it, false, chk.Err("factorisation failed:\n%v", err)
		}

		// solve for wb := du
		if err = d.LinSol.SolveR(d.Wb, d.Fb, false); err != nil {
			return it, false, chk.Err("solve failed:\n%v", err)
		}

		// update primary variables and clamp to the admissible set
		for i := range d.U.V {
			d.U.V[i] += d.Wb[i]
		}
		d.Project(d.U)

		// compute RMS norm of du and check convergence on du
		Ldu = la.VecRmsErr(d.Wb, sol.Atol, sol.Rtol, d.U.V)

		// message
		if sol.ShowR {
			io.Pf("%13.6e%4d%23.15e%23.15e\n", t, it, largFb, Ldu)
		}

		// stop if converged on du
		if Ldu < sol.Itol {
			break
		}

		// check divergence on du
		if it > 1 && sol.DvgCtrl {
			if Ldu > prevLdu {
				diverging = true
				break
			}
		}
		prevLdu = Ldu
	}

	// check if iterations diverged
	if it == sol.NmaxIt {
		err = chk.Err("max number of iterations reached: it = %d", it)
	}
	return
}

// Solve solves the steady problem at time t, sweeping the continuation
// schedule for the diffusivity eps when one is given
func (o *Solver) Solve(t float64) (err error) {
	d := o.Dom
	o.dtinv = 0
	o.It = 0
	sched := d.Sim.Problem.EpsSched
	if len(sched) == 0 {
		sched = []float64{d.Flux.Eps}
	}
	for i, eps := range sched {
		d.Flux.Eps = eps
		it, diverging, e := o.iterate(t)
		if e != nil {
			return chk.Err("continuation step %d (eps=%g) failed:\n%v", i, eps, e)
		}
		if diverging {
			return chk.Err("continuation step %d (eps=%g): iterations are diverging", i, eps)
		}
		o.It += it
		if d.Sim.Solver.ShowR {
			io.Pf("continuation step %d (eps=%g) converged after %d iterations\n", i, eps, it)
		}
	}
	return
}

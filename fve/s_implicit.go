// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fve

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Run runs the whole simulation: a single steady solve when the
// simulation is steady, otherwise the backward Euler time loop with
// divergence control. Each accepted output time overwrites the results
// file, so it always holds the latest saved state.
func (o *Solver) Run(verbose bool) (err error) {

	// steady case
	d := o.Dom
	if d.Sim.Data.Steady {
		if err = o.Solve(0); err != nil {
			return
		}
		return d.SaveResults()
	}

	// auxiliary
	md := 1.0    // time step multiplier if divergence control is on
	ndiverg := 0 // number of steps diverging
	sol := d.Sim.Solver
	ctl := d.Sim.Control

	// time loop
	o.It = 0
	t := 0.0
	tout := ctl.DtOut
	var dt float64
	var lasttimestep bool
	for t < ctl.Tf {

		// check for continued divergence
		if ndiverg >= sol.NdvgMax {
			return chk.Err("continuous divergence after %d steps reached", ndiverg)
		}

		// time increment
		dt = ctl.DtFunc.F(t, nil) * md
		if t+dt >= ctl.Tf {
			dt = ctl.Tf - t
			lasttimestep = true
		}
		if dt < sol.DtMin {
			if md < 1 {
				return chk.Err("dt increment is too small: %g < %g", dt, sol.DtMin)
			}
			return
		}

		// backup solution if divergence control is on
		if sol.DvgCtrl {
			o.ubkp.CopyFrom(d.U)
		}

		// time update
		t += dt
		o.dtinv = 1.0 / dt
		o.uold.CopyFrom(d.U)

		// message
		if verbose && !sol.ShowR {
			io.PfWhite("%30.15f\r", t)
		}

		// run iterations
		it, diverging, e := o.iterate(t)
		if e != nil && !(diverging && sol.DvgCtrl) {
			return e
		}

		// restore solution and reduce time step if divergence control is on
		if sol.DvgCtrl && diverging {
			if verbose {
				io.Pfred(". . . iterations diverging (%2d) . . .\n", ndiverg+1)
			}
			d.U.CopyFrom(o.ubkp)
			t -= dt
			md *= 0.5
			ndiverg++
			lasttimestep = false
			continue
		}
		ndiverg = 0
		md = 1.0
		o.It += it

		// perform output
		if t >= tout || lasttimestep {
			if err = d.SaveResults(); err != nil {
				return
			}
			tout += ctl.DtoFunc.F(t, nil)
		}
	}
	return
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gice/fve"
	"github.com/cpmech/gice/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"
	"github.com/cpmech/gosl/utl"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			if mpi.Rank() == 0 {
				io.PfRed("\nERROR: %v", err)
				io.Pf("See location of error below:\n")
				chk.Verbose = true
				for i := 5; i > 3; i-- {
					chk.CallerInfo(i)
				}
			}
		}
		mpi.Stop(false)
	}()
	mpi.Start(false)

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)
	erasePrev := io.ArgToBool(2, true)
	doprof := io.ArgToInt(3, 0)

	// message
	if mpi.Rank() == 0 && verbose {
		io.PfWhite("\nGice -- Glacier and Ice Sheet FVE Solver\n")
		io.Pf("Copyright 2016 The Gofem Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"erase previous results", "erasePrev", erasePrev,
			"profiling: 0=none 1=CPU 2=MEM", "doprof", doprof,
		))
	}

	// profiling?
	if doprof > 0 {
		defer utl.DoProf(false, doprof)()
	}

	// simulation data
	sim := inp.ReadSim(fnamepath, "", erasePrev)
	if mpi.Rank() == 0 && verbose {
		io.Pf("%v\n", sim.GetInfo())
	}

	// domain and initial state
	dom, err := fve.NewDomain(sim, mpi.Rank(), mpi.Size())
	if err != nil {
		chk.Panic("cannot allocate domain:\n%v", err)
	}
	defer dom.Clean()
	dom.SetInitial()

	// run simulation; on failure the last iterate is still reported
	solver := fve.NewSolver(dom)
	err = solver.Run(verbose && mpi.Rank() == 0)
	if err != nil {
		if mpi.Rank() == 0 {
			io.PfRed("solver did not converge:\n%v\n", err)
		}
	} else if mpi.Rank() == 0 && verbose {
		io.Pf("converged after %d Newton iterations\n", solver.It)
	}
	if err = dom.SaveResults(); err != nil {
		chk.Panic("cannot save results:\n%v", err)
	}

	// report error norms with respect to the exact solution
	if sim.Problem.Verif && mpi.Rank() == 0 {
		emax, eavg, err := dom.NodalErrors()
		if err != nil {
			chk.Panic("cannot compute error norms:\n%v", err)
		}
		io.Pf("errors: max = %23.15e  avg = %23.15e\n", emax, eavg)
	}
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. obstacle problem input file")

	sim := ReadSim("data/obstacle5x5.sim", "", true)
	if sim == nil {
		tst.Errorf("test failed\n")
		return
	}
	io.Pf("%v\n", sim.GetInfo())

	if sim.Key != "obstacle5x5" {
		tst.Errorf("wrong simulation key: %q\n", sim.Key)
		return
	}
	if sim.Problem.Kind != "obstacle" {
		tst.Errorf("wrong problem kind: %q\n", sim.Problem.Kind)
		return
	}
	chk.IntAssert(sim.Grid.Mx, 5)
	chk.IntAssert(sim.Grid.My, 5)
	chk.Scalar(tst, "xmin", 1e-17, sim.Grid.Xmin, -2)
	chk.Scalar(tst, "xmax", 1e-17, sim.Grid.Xmax, 2)
	chk.Scalar(tst, "lambda", 1e-17, sim.Problem.Lambda, 0)
	chk.Scalar(tst, "fbtol", 1e-17, sim.Solver.FbTol, 1e-12)
	chk.IntAssert(sim.Solver.NmaxIt, 100)
	if sim.Problem.Bvals != "exact" {
		tst.Errorf("wrong bvals: %q\n", sim.Problem.Bvals)
		return
	}
	if !sim.Problem.CheckAdmis {
		tst.Errorf("checkadmis must be on\n")
		return
	}
	if sim.LinSol.Name != "umfpack" {
		tst.Errorf("wrong linear solver: %q\n", sim.LinSol.Name)
		return
	}

	// defaults survive for data absent from the file
	chk.Scalar(tst, "tf (default)", 1e-17, sim.Control.Tf, 1)
	chk.Scalar(tst, "dt (default)", 1e-17, sim.Control.Dt, 1)
	chk.Scalar(tst, "rtol (default)", 1e-17, sim.Solver.Rtol, 1e-8)
	if sim.Problem.Bed != "zero" {
		tst.Errorf("bed must default to %q\n", "zero")
		return
	}
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02. steady ice input file")

	sim := ReadSim("data/ice5x5.sim", "", true)
	if sim == nil {
		tst.Errorf("test failed\n")
		return
	}
	io.Pf("%v\n", sim.GetInfo())

	if sim.Problem.Kind != "ice" {
		tst.Errorf("wrong problem kind: %q\n", sim.Problem.Kind)
		return
	}
	if !sim.Data.Steady {
		tst.Errorf("simulation must be steady\n")
		return
	}
	chk.Scalar(tst, "xmax", 1e-17, sim.Grid.Xmax, 1.8e6)
	chk.Scalar(tst, "lambda", 1e-17, sim.Problem.Lambda, 0.25)
	chk.Scalar(tst, "initmagic", 1e-17, sim.Problem.InitMagic, 1000)
	chk.Vector(tst, "epssched", 1e-17, sim.Problem.EpsSched, []float64{1.0, 0.5, 0.1, 0.01, 0.001})

	// flux model parameters
	chk.IntAssert(len(sim.Problem.Sia), 2)
	if sim.Problem.Sia[0].N != "glen" {
		tst.Errorf("first sia parameter must be %q\n", "glen")
		return
	}
	chk.Scalar(tst, "D0", 1e-17, sim.Problem.Sia[1].V, 10.0)

	// climatic mass balance parameters
	chk.IntAssert(len(sim.Problem.Cmb), 2)
	chk.Scalar(tst, "ela", 1e-17, sim.Problem.Cmb[0].V, 2000)
}

func Test_sim03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim03. transient periodic ice input file")

	sim := ReadSim("data/icet18x18.sim", "", true)
	if sim == nil {
		tst.Errorf("test failed\n")
		return
	}
	io.Pf("%v\n", sim.GetInfo())

	if sim.Data.Steady {
		tst.Errorf("simulation must be transient\n")
		return
	}
	if !sim.Grid.Periodic {
		tst.Errorf("grid must be periodic\n")
		return
	}
	if sim.Problem.Bed != "rolling" {
		tst.Errorf("wrong bed model: %q\n", sim.Problem.Bed)
		return
	}
	chk.IntAssert(len(sim.Problem.BedPrms), 3)
	chk.Scalar(tst, "b0", 1e-17, sim.Problem.BedPrms[0].V, 500)

	// time control: Dt comes from the "dt" function, DtOut defaults to Dt
	chk.Scalar(tst, "tf", 1e-17, sim.Control.Tf, 3.15569e10)
	chk.Scalar(tst, "dt", 1e-17, sim.Control.Dt, 3.15569e9)
	chk.Scalar(tst, "dtout", 1e-17, sim.Control.DtOut, 3.15569e9)
	chk.Scalar(tst, "dtfunc(0)", 1e-17, sim.Control.DtFunc.F(0, nil), 3.15569e9)
	if !sim.Solver.DvgCtrl {
		tst.Errorf("divergence control must be on\n")
		return
	}
}

func Test_func01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("func01. functions database")

	fdb := FuncsData{
		&FuncData{Name: "dt", Type: "cte", Prms: fun.Prms{&fun.Prm{N: "c", V: 123.0}}},
	}

	// "zero" and "none" give nil without error
	fcn, err := fdb.Get("zero")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	if fcn != nil {
		tst.Errorf("%q must give a nil function\n", "zero")
		return
	}

	// named function
	fcn, err = fdb.Get("dt")
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "dt(0)", 1e-17, fcn.F(0, nil), 123.0)
	chk.Scalar(tst, "dt(10)", 1e-17, fcn.F(10, nil), 123.0)

	// missing function
	fcn, err = fdb.Get("nonexistent")
	if err == nil {
		tst.Errorf("Get must fail for a function not in the database\n")
		return
	}
	io.Pf("ok, error message: %v", err)
}

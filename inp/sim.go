// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Data holds global data for simulations
type Data struct {
	Desc   string `json:"desc"`   // description of simulation
	DirOut string `json:"dirout"` // directory for output; e.g. /tmp/gice
	Steady bool   `json:"steady"` // steady simulation
}

// GridData holds the geometry of the structured grid
type GridData struct {
	Mx       int     `json:"mx"`       // number of nodes along x
	My       int     `json:"my"`       // number of nodes along y
	Xmin     float64 `json:"xmin"`     // lower-left corner, x
	Xmax     float64 `json:"xmax"`     // upper-right corner, x
	Ymin     float64 `json:"ymin"`     // lower-left corner, y
	Ymax     float64 `json:"ymax"`     // upper-right corner, y
	Periodic bool    `json:"periodic"` // periodic wrap in both directions
}

// SetDefault sets default values: the classical obstacle problem domain
func (o *GridData) SetDefault() {
	o.Mx, o.My = 5, 5
	o.Xmin, o.Xmax = -2, 2
	o.Ymin, o.Ymax = -2, 2
}

// ProblemData selects the problem kind and the models with their parameters
type ProblemData struct {
	Kind       string    `json:"kind"`       // problem kind: "obstacle", "ice" or "plap"
	Lambda     float64   `json:"lambda"`     // upwinding fraction in [0,1]
	Bvals      string    `json:"bvals"`      // Dirichlet boundary values: "zero" or "exact"
	ExactInit  bool      `json:"exactinit"`  // initialise the iterate with the exact solution
	InitMagic  float64   `json:"initmagic"`  // time scale [a] for the chop-and-scale initial iterate
	CheckAdmis bool      `json:"checkadmis"` // fail fast on non-admissible iterates
	EpsSched   []float64 `json:"epssched"`   // continuation schedule for the diffusivity eps; empty means single solve
	Sia        fun.Prms  `json:"sia"`        // flux model parameters
	Bed        string    `json:"bed"`        // bed model name; e.g. "zero", "rolling"
	BedPrms    fun.Prms  `json:"bedprms"`    // bed model parameters
	Obstacle   string    `json:"obstacle"`   // obstacle model name; e.g. "zero", "hemisphere"
	ObstPrms   fun.Prms  `json:"obstprms"`   // obstacle model parameters
	Cmb        fun.Prms  `json:"cmb"`        // climatic mass balance parameters (ice case)
	Source     string    `json:"source"`     // source function name (obstacle/plap kinds); "zero" or from functions database
	Verif      bool      `json:"verif"`      // compare results with the exact solution
}

// SetDefault set defaults values
func (o *ProblemData) SetDefault() {
	o.Kind = "obstacle"
	o.Lambda = 0.25
	o.Bvals = "zero"
	o.InitMagic = 1000
	o.Bed = "zero"
	o.Obstacle = "zero"
	o.Source = "zero"
}

// LinSolData holds data for linear solvers
type LinSolData struct {
	Name      string `json:"name"`      // "mumps" or "umfpack"
	Symmetric bool   `json:"symmetric"` // use symmetric solver
	Verbose   bool   `json:"verbose"`   // verbose?
	Timing    bool   `json:"timing"`    // show timing statistics
	Ordering  string `json:"ordering"`  // ordering scheme
	Scaling   string `json:"scaling"`   // scaling scheme
}

// SetDefault set defaults values
func (o *LinSolData) SetDefault() {
	o.Name = "umfpack"
	o.Ordering = "amf"
	o.Scaling = "rcit"
}

// SolverData holds nonlinear solver data
type SolverData struct {

	// nonlinear solver
	NmaxIt  int     `json:"nmaxit"`  // number of max iterations
	Atol    float64 `json:"atol"`    // absolute tolerance
	Rtol    float64 `json:"rtol"`    // relative tolerance
	FbTol   float64 `json:"fbtol"`   // tolerance for convergence on fb
	FbMin   float64 `json:"fbmin"`   // minimum value of fb
	DvgCtrl bool    `json:"dvgctrl"` // use divergence control
	NdvgMax int     `json:"ndvgmax"` // max number of continued divergence
	ShowR   bool    `json:"showr"`   // show residual

	// transient analyses
	DtMin float64 `json:"dtmin"` // minimum value of Dt when divergence control is on

	// constants
	Eps float64 `json:"eps"` // smallest number satisfying 1.0 + ϵ > 1.0

	// derived
	Itol float64 // iterations tolerance
}

// SetDefault set defaults values
func (o *SolverData) SetDefault() {
	o.NmaxIt = 50
	o.Atol = 1e-6
	o.Rtol = 1e-8
	o.FbTol = 1e-10
	o.FbMin = 1e-14
	o.NdvgMax = 20
	o.DtMin = 1e-8
	o.Eps = 1e-16
}

// PostProcess performs a post-processing of the just read json file
func (o *SolverData) PostProcess() {
	o.Itol = utl.Max(10.0*o.Eps/o.Rtol, utl.Min(0.01, math.Sqrt(o.Rtol)))
}

// TimeControl holds data for defining the simulation time stepping
type TimeControl struct {
	Tf     float64 `json:"tf"`     // final time
	Dt     float64 `json:"dt"`     // time step size (if constant)
	DtOut  float64 `json:"dtout"`  // time step size for output
	DtFcn  string  `json:"dtfcn"`  // time step size (function name)
	DtoFcn string  `json:"dtofcn"` // time step size for output (function name)

	// derived
	DtFunc  fun.Func // time step function
	DtoFunc fun.Func // output time step function
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data      Data        `json:"data"`      // stores global simulation data
	Grid      GridData    `json:"grid"`      // structured grid geometry
	Problem   ProblemData `json:"problem"`   // problem kind, models and parameters
	Functions FuncsData   `json:"functions"` // stores all time functions
	LinSol    LinSolData  `json:"linsol"`    // linear solver data
	Solver    SolverData  `json:"solver"`    // nonlinear solver data
	Control   TimeControl `json:"control"`   // time control

	// derived
	DirOut string // directory to save results
	Key    string // simulation key; e.g. mysim01.sim => mysim01 or mysim01-alias
}

// ReadSim reads all simulation data from a .sim JSON file
func ReadSim(simfilepath, alias string, erasePrev bool) *Simulation {

	// new sim
	var o Simulation

	// read file
	b, err := io.ReadFile(simfilepath)
	if err != nil {
		chk.Panic("ReadSim: cannot read simulation file %q", simfilepath)
	}

	// set default values
	o.Grid.SetDefault()
	o.Problem.SetDefault()
	o.Solver.SetDefault()
	o.LinSol.SetDefault()

	// decode
	err = json.Unmarshal(b, &o)
	if err != nil {
		chk.Panic("ReadSim: cannot unmarshal simulation file %q", simfilepath)
	}

	// filename key
	fn := filepath.Base(simfilepath)
	fnkey := io.FnKey(fn)
	o.Key = fnkey
	if alias != "" {
		o.Key += "-" + alias
	}

	// output directory
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/gice/" + fnkey
	}
	err = os.MkdirAll(o.DirOut, 0777)
	if err != nil {
		chk.Panic("cannot create directory for output results (%s): %v", o.DirOut, err)
	}

	// erase previous simulation results
	if erasePrev {
		io.RemoveAll(io.Sf("%s/%s*", o.DirOut, fnkey))
	}

	// set solver constants
	o.Solver.PostProcess()

	// fix Tf
	if o.Control.Tf < 1e-14 {
		o.Control.Tf = 1
	}

	// fix Dt
	if o.Control.DtFcn == "" {
		if o.Control.Dt < 1e-14 {
			o.Control.Dt = 1
		}
		o.Control.DtFunc = &fun.Cte{C: o.Control.Dt}
	} else {
		o.Control.DtFunc, err = o.Functions.Get(o.Control.DtFcn)
		if err != nil {
			chk.Panic("%v", err)
		}
		if o.Control.DtFunc == nil {
			chk.Panic("ReadSim: DtFcn cannot be %q", o.Control.DtFcn)
		}
		o.Control.Dt = o.Control.DtFunc.F(0, nil)
	}

	// fix DtOut
	if o.Control.DtoFcn == "" {
		if o.Control.DtOut < 1e-14 {
			o.Control.DtOut = o.Control.Dt
			o.Control.DtoFunc = o.Control.DtFunc
		} else {
			if o.Control.DtOut < o.Control.Dt {
				o.Control.DtOut = o.Control.Dt
			}
			o.Control.DtoFunc = &fun.Cte{C: o.Control.DtOut}
		}
	} else {
		o.Control.DtoFunc, err = o.Functions.Get(o.Control.DtoFcn)
		if err != nil {
			chk.Panic("%v", err)
		}
		if o.Control.DtoFunc == nil {
			chk.Panic("ReadSim: DtoFcn cannot be %q", o.Control.DtoFcn)
		}
		o.Control.DtOut = o.Control.DtoFunc.F(0, nil)
	}

	// check problem kind
	switch o.Problem.Kind {
	case "obstacle", "ice", "plap":
	default:
		chk.Panic("ReadSim: problem kind %q is invalid", o.Problem.Kind)
	}

	// check continuation schedule
	for _, eps := range o.Problem.EpsSched {
		if eps < 0 || eps > 1 {
			chk.Panic("ReadSim: continuation schedule value eps=%g is outside [0,1]", eps)
		}
	}
	return &o
}

// GetInfo returns information about the simulation
func (o *Simulation) GetInfo() (l string) {
	l = io.Sf("%q: %s\n", o.Key, o.Data.Desc)
	l += io.Sf("  kind     = %q\n", o.Problem.Kind)
	l += io.Sf("  grid     = %d x %d in [%g,%g] x [%g,%g] (periodic=%v)\n",
		o.Grid.Mx, o.Grid.My, o.Grid.Xmin, o.Grid.Xmax, o.Grid.Ymin, o.Grid.Ymax, o.Grid.Periodic)
	l += io.Sf("  bed      = %q   obstacle = %q\n", o.Problem.Bed, o.Problem.Obstacle)
	l += io.Sf("  steady   = %v\n", o.Data.Steady)
	return
}

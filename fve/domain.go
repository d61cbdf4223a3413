// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fve

import (
	"math"

	"github.com/cpmech/gice/ana"
	"github.com/cpmech/gice/grid"
	"github.com/cpmech/gice/inp"
	"github.com/cpmech/gice/mdl/bed"
	"github.com/cpmech/gice/mdl/cmb"
	"github.com/cpmech/gice/mdl/obstacle"
	"github.com/cpmech/gice/mdl/sia"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// Domain holds the discrete problem: grid, patch, models, nodal fields,
// the residual engine and the linear system workspace
type Domain struct {

	// input
	Sim   *inp.Simulation // simulation data
	Grid  *grid.Grid      // grid geometry
	Patch *grid.Patch     // owned rectangle
	Distr bool            // distributed (MPI) run

	// models
	Flux *sia.Model     // flux model
	Bed  bed.Model      // bed elevation model
	Obst obstacle.Model // obstacle / lower bound model
	Cmb  *cmb.Model     // climatic mass balance model (ice kind)

	// exact solutions for verification; nil when not applicable
	Dome *ana.Dome               // steady ice dome on a flat bed
	Hemi *ana.HemisphereObstacle // classical obstacle problem

	// nodal fields
	U     *grid.View // current iterate
	Bedv  *grid.View // bed elevation at nodes
	Lower *grid.View // lower bound at nodes

	// residual engine
	Asm *Assembler

	// linear system
	Kb       *la.Triplet // global Jacobian matrix
	Fb       []float64   // right-hand side: negative of residual
	Wb       []float64   // solution of the linear system
	LinSol   la.LinSol   // linear solver
	InitLSol bool        // linear solver must be initialised

	// finite-difference Jacobian scratch
	FdEps float64    // relative perturbation size
	wjac  *grid.View // perturbed iterate
	fjac  *grid.View // perturbed residual
}

// NewDomain creates a domain from the simulation data. rank and nproc
// define the patch owned by this processor; use 0, 1 for serial runs.
func NewDomain(sim *inp.Simulation, rank, nproc int) (o *Domain, err error) {

	// grid and patch
	o = &Domain{Sim: sim, Distr: nproc > 1}
	gd := sim.Grid
	o.Grid, err = grid.New(gd.Mx, gd.My, gd.Xmin, gd.Xmax, gd.Ymin, gd.Ymax, gd.Periodic)
	if err != nil {
		return nil, err
	}
	o.Patch, err = grid.NewPatch(o.Grid, rank, nproc)
	if err != nil {
		return nil, err
	}

	// flux model; the ice kind implies the Glen-law parameters
	prms := sim.Problem.Sia
	if sim.Problem.Kind == "ice" && !hasPrm(prms, "glen") {
		prms = append(prms, &fun.Prm{N: "glen", V: 1})
	}
	o.Flux = new(sia.Model)
	if err = o.Flux.Init(prms); err != nil {
		return nil, err
	}

	// bed and obstacle models
	o.Bed, err = bed.New(sim.Problem.Bed)
	if err != nil {
		return nil, err
	}
	if err = o.Bed.Init(sim.Problem.BedPrms); err != nil {
		return nil, err
	}
	o.Obst, err = obstacle.New(sim.Problem.Obstacle)
	if err != nil {
		return nil, err
	}
	if err = o.Obst.Init(sim.Problem.ObstPrms); err != nil {
		return nil, err
	}

	// climatic mass balance model
	if sim.Problem.Kind == "ice" {
		o.Cmb = new(cmb.Model)
		if err = o.Cmb.Init(sim.Problem.Cmb); err != nil {
			return nil, err
		}
	}

	// exact solutions
	_, flatbed := o.Bed.(*bed.Zero)
	switch sim.Problem.Kind {
	case "ice":
		if flatbed && !gd.Periodic {
			o.Dome, err = ana.NewDome(
				(gd.Xmin+gd.Xmax)/2.0, (gd.Ymin+gd.Ymax)/2.0, o.Flux.N, o.Flux.C)
			if err != nil {
				return nil, err
			}
		}
	case "obstacle":
		o.Hemi = ana.NewHemisphereObstacle()
	}
	if sim.Problem.Verif && o.Dome == nil && o.Hemi == nil {
		return nil, chk.Err("no exact solution is available for kind=%q with bed=%q", sim.Problem.Kind, sim.Problem.Bed)
	}

	// nodal fields
	n := o.Grid.N()
	o.U = grid.NewView(o.Grid)
	o.Bedv = grid.NewView(o.Grid)
	o.Lower = grid.NewView(o.Grid)
	for k := 0; k < o.Grid.My; k++ {
		for j := 0; j < o.Grid.Mx; j++ {
			x, y := o.Grid.X(j), o.Grid.Y(k)
			o.Bedv.Set(j, k, o.Bed.Z(x, y))
			o.Lower.Set(j, k, o.Obst.Psi(x, y))
		}
	}

	// residual engine
	o.Asm, err = NewAssembler(o.Grid, o.Patch, o.Flux, o.Bedv, o.Lower)
	if err != nil {
		return nil, err
	}
	o.Asm.Lambda = sim.Problem.Lambda
	o.Asm.CheckAdmissible = sim.Problem.CheckAdmis
	if o.Asm.Source, err = o.source(); err != nil {
		return nil, err
	}
	o.Asm.Bvalue = o.bvalue()

	// linear system
	o.Kb = new(la.Triplet)
	o.Kb.Init(n, n, 10*n)
	o.Fb = make([]float64, n)
	o.Wb = make([]float64, n)
	o.LinSol = la.GetSolver(sim.LinSol.Name)
	o.InitLSol = true

	// finite-difference Jacobian
	o.FdEps = 1e-7
	o.wjac = grid.NewView(o.Grid)
	o.fjac = grid.NewView(o.Grid)
	return
}

// source resolves the source term from the problem data
func (o *Domain) source() (SourceFunc, error) {

	// ice kind: exact balance rate when verifying against the dome,
	// otherwise the elevation-dependent mass balance model
	if o.Sim.Problem.Kind == "ice" {
		if o.Sim.Problem.Verif && o.Dome != nil {
			return func(x, y, u, b float64) float64 { return o.Dome.CMB(x, y) }, nil
		}
		return func(x, y, u, b float64) float64 { return o.Cmb.M(u + b) }, nil
	}

	// obstacle and plap kinds: named function of space
	if o.Sim.Problem.Source == "" {
		return nil, nil
	}
	fcn, err := o.Sim.Functions.Get(o.Sim.Problem.Source)
	if err != nil {
		return nil, err
	}
	if fcn == nil {
		return nil, nil
	}
	return func(x, y, u, b float64) float64 { return fcn.F(0, []float64{x, y}) }, nil
}

// bvalue resolves the Dirichlet boundary values from the problem data
func (o *Domain) bvalue() BoundaryFunc {
	if o.Sim.Problem.Bvals != "exact" {
		return nil
	}
	switch {
	case o.Hemi != nil:
		return func(x, y float64) float64 { return o.Hemi.U(x, y) }
	case o.Dome != nil:
		return func(x, y float64) float64 { return o.Dome.Thickness(x, y) }
	}
	return nil
}

// SetInitial fills the initial iterate: the exact solution when
// requested, the chop-and-scale guess for the ice kind, or the
// admissible projection of zero. Boundary values are enforced last.
func (o *Domain) SetInitial() {
	g := o.Grid
	for k := 0; k < g.My; k++ {
		for j := 0; j < g.Mx; j++ {
			x, y := g.X(j), g.Y(k)
			var v float64
			switch {
			case o.Sim.Problem.ExactInit && o.Hemi != nil:
				v = o.Hemi.U(x, y)
			case o.Sim.Problem.ExactInit && o.Dome != nil:
				v = o.Dome.Thickness(x, y)
			case o.Sim.Problem.Kind == "ice":
				v = o.Cmb.ChopScale(o.Bedv.At(j, k), o.Sim.Problem.InitMagic)
			}
			v = utl.Max(v, o.Lower.At(j, k))
			if g.Onboundary(j, k) {
				if o.Asm.Bvalue != nil {
					v = o.Asm.Bvalue(x, y)
				} else {
					v = 0
				}
			}
			o.U.Set(j, k, v)
		}
	}
}

// Project clamps the iterate to the admissible set u >= lower
func (o *Domain) Project(u *grid.View) {
	for i, v := range u.V {
		if v < o.Lower.V[i] {
			u.V[i] = o.Lower.V[i]
		}
	}
}

// NodalErrors returns the maximum and average absolute nodal errors of
// the iterate with respect to the exact solution
func (o *Domain) NodalErrors() (emax, eavg float64, err error) {
	exact := func(x, y float64) float64 { return 0 }
	switch {
	case o.Hemi != nil:
		exact = o.Hemi.U
	case o.Dome != nil:
		exact = o.Dome.Thickness
	default:
		return 0, 0, chk.Err("no exact solution is available for error norms")
	}
	g := o.Grid
	for k := 0; k < g.My; k++ {
		for j := 0; j < g.Mx; j++ {
			e := math.Abs(o.U.At(j, k) - exact(g.X(j), g.Y(k)))
			emax = utl.Max(emax, e)
			eavg += e
		}
	}
	eavg /= float64(g.N())
	return
}

// Clean releases the linear solver resources
func (o *Domain) Clean() {
	if !o.InitLSol {
		o.LinSol.Clean()
	}
}

// hasPrm tells whether a parameter named n is in the set
func hasPrm(prms fun.Prms, n string) bool {
	for _, p := range prms {
		if p.N == n {
			return true
		}
	}
	return false
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sia implements the doubly-nonlinear diffusive/advective flux
// model behind the nonsliding shallow ice approximation (SIA) and the
// p-Laplacian obstacle problem. The flux of the interior condition
//
//   - div ( C |u|^q |grad(u+b)|^{p-2} grad(u+b) ) = f
//
// is factored into a diffusivity and a pseudo-velocity
//
//   q = - D grad u + W |u_up|^q
//   D = C |u|^q sigma     W = - sigma grad b     sigma = C |grad(u+b)|^{p-2}
//
// with slope regularization delta and the diffusivity continuation
//   D(eps) = (1-eps) sigma |u|^q + eps D0
// so that D(1) = D0 regardless of u, and D(0) is the true degenerate
// diffusivity. In the ice case p = n+1, q = n+2 and C = Gamma.
package sia

import (
	"math"

	"github.com/cpmech/gice/grid"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Model holds the flux model parameters. All methods are pure functions
// of their inputs plus these parameters; only Eps is meant to change
// after Init, swept by the solver's continuation schedule.
type Model struct {

	// exponents and coefficient
	P float64 // p-Laplacian exponent (p > 1)
	Q float64 // power on |u| (porous-medium type degeneracy, q >= 0)
	C float64 // coefficient (C > 0); equals Gamma in the ice case

	// regularization
	D0    float64 // representative diffusivity for the continuation [m2/s]
	Eps   float64 // continuation parameter in [0,1]
	Delta float64 // dimensionless slope regularization

	// Glen-law input (ice case)
	Glen bool    // compute P, Q, C from the Glen exponent
	N    float64 // Glen exponent (n > 1)
	A    float64 // ice softness [Pa^-n s^-1]
	Rho  float64 // ice density [kg/m3]
	Grav float64 // gravity [m/s2]
}

// Init initialises the model from a parameters set and checks validity
func (o *Model) Init(prms fun.Prms) (err error) {

	// defaults: classical obstacle problem / EISMINT I ice constants
	o.P, o.Q, o.C = 2.0, 0.0, 1.0
	o.D0, o.Eps, o.Delta = 1.0, 0.001, 1e-4
	o.N, o.A = 3.0, 1.0e-16/31556926.0
	o.Rho, o.Grav = 910.0, 9.81

	// read parameters
	for _, p := range prms {
		switch p.N {
		case "p":
			o.P = p.V
		case "q":
			o.Q = p.V
		case "C":
			o.C = p.V
		case "D0":
			o.D0 = p.V
		case "eps":
			o.Eps = p.V
		case "delta":
			o.Delta = p.V
		case "glen":
			o.Glen = p.V > 0
		case "n":
			o.N = p.V
		case "A":
			o.A = p.V
		case "rho":
			o.Rho = p.V
		case "g":
			o.Grav = p.V
		default:
			return chk.Err("sia model: parameter named %q is invalid", p.N)
		}
	}

	// derived constants for the ice case
	if o.Glen {
		if o.N <= 1.0 {
			return chk.Err("sia model: Glen exponent n=%g is invalid; n > 1 is required", o.N)
		}
		o.P = o.N + 1.0
		o.Q = o.N + 2.0
		o.C = 2.0 * math.Pow(o.Rho*o.Grav, o.N) * o.A / (o.N + 2.0)
	}

	// checks
	if o.P <= 1.0 {
		return chk.Err("sia model: exponent p=%g is invalid; p > 1 is required", o.P)
	}
	if o.Q < 0.0 {
		return chk.Err("sia model: exponent q=%g is invalid; q >= 0 is required", o.Q)
	}
	if o.C <= 0.0 {
		return chk.Err("sia model: coefficient C=%g is invalid; C > 0 is required", o.C)
	}
	if o.Eps < 0.0 || o.Eps > 1.0 {
		return chk.Err("sia model: continuation parameter eps=%g is outside [0,1]", o.Eps)
	}
	return
}

// GetPrms gets (an example of) parameters
func (o Model) GetPrms() fun.Prms {
	return []*fun.Prm{
		&fun.Prm{N: "p", V: 2.0},
		&fun.Prm{N: "q", V: 0.0},
		&fun.Prm{N: "C", V: 1.0},
		&fun.Prm{N: "D0", V: 1.0},
		&fun.Prm{N: "eps", V: 0.001},
		&fun.Prm{N: "delta", V: 1e-4},
	}
}

// Sigma computes the slope-dependent factor
//   sigma = C (sx² + sy² + delta²)^{(p-2)/2}
// with s = grad(u+b). The delta term keeps sigma finite and smooth at
// zero slope when p < 2 and keeps the Jacobian nonsingular when p > 2.
func (o *Model) Sigma(gu, gb grid.Grad) float64 {
	sx := gu.X + gb.X
	sy := gu.Y + gb.Y
	slopesqr := sx*sx + sy*sy + o.Delta*o.Delta
	return o.C * math.Pow(slopesqr, (o.P-2.0)/2.0)
}

// Diffusivity computes the continuation diffusivity
//   D(eps) = (1-eps) sigma |u|^q + eps D0
func (o *Model) Diffusivity(sigma, u float64) float64 {
	return (1.0-o.Eps)*sigma*math.Pow(math.Abs(u), o.Q) + o.Eps*o.D0
}

// Velocity computes the pseudo-velocity from the bed slope: W = -sigma grad(b)
func (o *Model) Velocity(sigma float64, gb grid.Grad) grid.Grad {
	return grid.Grad{X: -sigma * gb.X, Y: -sigma * gb.Y}
}

// Flux computes one component of the flux
//   q = - D du/dx + Wx |u_up|^q     (xdir)
//   q = - D du/dy + Wy |u_up|^q     (otherwise)
// where uup is the upwinded sample of u. It also returns the diffusivity
// for diagnostics.
func (o *Model) Flux(gu, gb grid.Grad, u, uup float64, xdir bool) (D, q float64) {
	sigma := o.Sigma(gu, gb)
	D = o.Diffusivity(sigma, u)
	W := o.Velocity(sigma, gb)
	adv := math.Pow(math.Abs(uup), o.Q)
	if xdir {
		q = -D*gu.X + W.X*adv
		return
	}
	q = -D*gu.Y + W.Y*adv
	return
}

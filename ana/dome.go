// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements exact (analytical) solutions for verification
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Dome implements Bueler's radially symmetric exact steady solution of
// the shallow ice approximation on a flat bed. The thickness profile
//
//   H(r) = cthk [ mm z - 1/n + (1-z)^mm - z^mm ]^qq     z = r/R0
//
// is in exact balance with the mass rate returned by CMB, so the pair
// (Thickness, CMB) forms a manufactured solution for the steady ice
// problem.
//   Reference: Bueler (2003), "Construction of steady state solutions
//   for isothermal shallow ice sheets"
type Dome struct {

	// input
	Xc, Yc float64 // center of the dome
	N      float64 // Glen exponent (n > 1)
	Gamma  float64 // overall ice flow coefficient

	// profile constants
	R0 float64 // margin radius [m]
	H0 float64 // center thickness [m]

	// derived
	mm, qq float64 // profile exponents
	cthk   float64 // thickness scale
	pp     float64 // 1/n
	ccmb   float64 // mass balance scale
}

// NewDome creates a dome solution centered at (xc,yc)
func NewDome(xc, yc, n, Gamma float64) (o *Dome, err error) {
	if n <= 1 {
		return nil, chk.Err("dome solution requires n > 1; n=%g is invalid", n)
	}
	o = &Dome{Xc: xc, Yc: yc, N: n, Gamma: Gamma, R0: 750.0e3, H0: 3600.0}
	o.mm = 1.0 + 1.0/n
	o.qq = n / (2.0*n + 2.0)
	o.cthk = o.H0 / math.Pow(1.0-1.0/n, o.qq)
	o.pp = 1.0 / n
	o.ccmb = Gamma * math.Pow(o.H0, 2.0*n+2.0) / math.Pow(2.0*o.R0*(1.0-1.0/n), n)
	return
}

// clip keeps the radius away from the center and margin singularities
// of the profile formulas
func (o *Dome) clip(x, y float64) float64 {
	r := math.Hypot(x-o.Xc, y-o.Yc)
	if r < 0.01 {
		r = 0.01
	}
	if r > o.R0-0.01 {
		r = o.R0 - 0.01
	}
	return r
}

// Thickness returns the exact ice thickness at (x,y); zero outside the
// margin radius
func (o *Dome) Thickness(x, y float64) float64 {
	if math.Hypot(x-o.Xc, y-o.Yc) >= o.R0 {
		return 0
	}
	z := o.clip(x, y) / o.R0
	tmp := o.mm*z - 1.0/o.N + math.Pow(1.0-z, o.mm) - math.Pow(z, o.mm)
	return o.cthk * math.Pow(tmp, o.qq)
}

// CMB returns the mass balance rate [m/s] in exact balance with the
// thickness profile
func (o *Dome) CMB(x, y float64) float64 {
	r := o.clip(x, y)
	z := r / o.R0
	tmp := math.Pow(z, o.pp) + math.Pow(1.0-z, o.pp) - 1.0
	return (o.ccmb / r) * math.Pow(tmp, o.N-1.0) *
		(2.0*math.Pow(z, o.pp) + math.Pow(1.0-z, o.pp-1.0)*(1.0-2.0*z) - 1.0)
}

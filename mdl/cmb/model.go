// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cmb implements the linear climatic mass balance (CMB) model
// giving the surface accumulation/ablation rate as a function of the
// surface elevation s = H + b:
//
//   M(s) = zgrad (s - ela)
//
// where ela is the equilibrium line altitude and zgrad the vertical
// gradient of the mass balance.
package cmb

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Model holds the CMB parameters. The zgrad input is given in 1/a and
// converted to 1/s during Init.
type Model struct {
	Ela     float64 // equilibrium line altitude [m]
	Zgrad   float64 // vertical gradient of CMB [1/s]
	Secpera float64 // number of seconds in a year
}

// Init initialises this structure
func (o *Model) Init(prms fun.Prms) (err error) {
	o.Ela = 2000.0
	o.Secpera = 31556926.0
	zgradPerYear := 0.001
	for _, p := range prms {
		switch p.N {
		case "ela":
			o.Ela = p.V
		case "zgrad":
			zgradPerYear = p.V
		case "secpera":
			o.Secpera = p.V
		default:
			return chk.Err("cmb model: parameter named %q is invalid", p.N)
		}
	}
	if o.Secpera <= 0 {
		return chk.Err("cmb model: secpera=%g is invalid", o.Secpera)
	}
	o.Zgrad = zgradPerYear / o.Secpera
	return
}

// M returns the mass balance rate for surface elevation s [m/s]
func (o *Model) M(s float64) float64 {
	return o.Zgrad * (s - o.Ela)
}

// DMds returns the derivative of M with respect to s
func (o *Model) DMds(s float64) float64 {
	return o.Zgrad
}

// ChopScale computes an initial thickness iterate from the mass balance
// at the bare-bed surface: H0 = max(M(b),0) * initmagic * secpera, i.e.
// initmagic years of accumulation wherever the CMB is positive.
func (o *Model) ChopScale(b, initmagic float64) float64 {
	m := o.M(b)
	if m < 0 {
		return 0
	}
	return m * initmagic * o.Secpera
}

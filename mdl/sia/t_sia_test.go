// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sia

import (
	"math"
	"testing"

	"github.com/cpmech/gice/grid"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_sia01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sia01. parameters and Glen-law constants")

	// defaults: classical obstacle problem
	var m Model
	err := m.Init(nil)
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "p", 1e-15, m.P, 2.0)
	chk.Scalar(tst, "q", 1e-15, m.Q, 0.0)
	chk.Scalar(tst, "C", 1e-15, m.C, 1.0)

	// ice case: p = n+1, q = n+2, C = 2 A (rho g)^n / (n+2)
	var ice Model
	err = ice.Init([]*fun.Prm{
		&fun.Prm{N: "glen", V: 1},
		&fun.Prm{N: "n", V: 3},
	})
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "p(ice)", 1e-15, ice.P, 4.0)
	chk.Scalar(tst, "q(ice)", 1e-15, ice.Q, 5.0)
	Gamma := 2.0 * math.Pow(910.0*9.81, 3.0) * (1.0e-16 / 31556926.0) / 5.0
	chk.Scalar(tst, "Gamma", 1e-22, ice.C, Gamma)

	// invalid parameters must be caught at setup
	var bad Model
	err = bad.Init([]*fun.Prm{&fun.Prm{N: "glen", V: 1}, &fun.Prm{N: "n", V: 0.5}})
	if err == nil {
		tst.Errorf("Init must fail with n <= 1")
		return
	}
	err = bad.Init([]*fun.Prm{&fun.Prm{N: "p", V: 1.0}})
	if err == nil {
		tst.Errorf("Init must fail with p <= 1")
		return
	}
	err = bad.Init([]*fun.Prm{&fun.Prm{N: "kappa", V: 1.0}})
	if err == nil {
		tst.Errorf("Init must fail with unknown parameter")
		return
	}
}

func Test_sia02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sia02. regularization keeps the flux finite")

	var m Model
	err := m.Init([]*fun.Prm{
		&fun.Prm{N: "glen", V: 1},
		&fun.Prm{N: "n", V: 3},
		&fun.Prm{N: "delta", V: 1e-4},
		&fun.Prm{N: "eps", V: 0.001},
		&fun.Prm{N: "D0", V: 10.0},
	})
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}

	// zero slope and zero thickness: sigma bounded below by C delta^{p-2}
	zero := grid.Grad{}
	sig := m.Sigma(zero, zero)
	chk.Scalar(tst, "sigma(0)", 1e-30, sig, m.C*math.Pow(m.Delta*m.Delta, (m.P-2.0)/2.0))
	D := m.Diffusivity(sig, 0)
	chk.Scalar(tst, "D(0)", 1e-17, D, m.Eps*m.D0)

	// eps = 1: diffusivity is exactly D0 independent of slope and thickness
	m.Eps = 1.0
	chk.Scalar(tst, "D(eps=1)", 1e-15, m.Diffusivity(m.Sigma(grid.Grad{X: 0.1, Y: -0.2}, zero), 1234.0), m.D0)
	m.Eps = 0.001

	// flat bed: pseudo-velocity vanishes and the flux is purely diffusive
	gu := grid.Grad{X: 0.01, Y: -0.02}
	Dx, qx := m.Flux(gu, zero, 500.0, 600.0, true)
	_, qy := m.Flux(gu, zero, 500.0, 600.0, false)
	chk.Scalar(tst, "qx flat bed", 1e-12, qx, -Dx*gu.X)
	chk.Scalar(tst, "qy flat bed", 1e-12, qy, -Dx*gu.Y)

	// sloped bed: advective term uses the upwind sample
	gb := grid.Grad{X: -0.005, Y: 0.0}
	sig = m.Sigma(gu, gb)
	W := m.Velocity(sig, gb)
	if W.X <= 0 {
		tst.Errorf("W.x = %g must be positive for a downhill-to-the-left bed", W.X)
		return
	}
	_, qx = m.Flux(gu, gb, 500.0, 600.0, true)
	chk.Scalar(tst, "qx general bed", 1e-12, qx,
		-m.Diffusivity(sig, 500.0)*gu.X+W.X*math.Pow(600.0, m.Q))

	// negative thickness under the exponent is protected by absolute value
	_, qneg := m.Flux(gu, gb, -500.0, -600.0, true)
	chk.Scalar(tst, "abs protection", 1e-12, qneg,
		-m.Diffusivity(sig, -500.0)*gu.X+W.X*math.Pow(600.0, m.Q))
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_dome01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dome01. Bueler dome profile")

	n := 3.0
	Gamma := 2.0 * math.Pow(910.0*9.81, n) * (1.0e-16 / 31556926.0) / (n + 2.0)
	L := 1800.0e3
	dome, err := NewDome(L/2, L/2, n, Gamma)
	if err != nil {
		tst.Errorf("NewDome failed:\n%v", err)
		return
	}

	// center height, margin, and monotone decay along a radius
	chk.Scalar(tst, "H(center)", 1.0, dome.Thickness(L/2, L/2), 3600.0)
	chk.Scalar(tst, "H(margin)", 1e-15, dome.Thickness(L/2+dome.R0, L/2), 0)
	prev := dome.Thickness(L/2, L/2)
	for _, frac := range []float64{0.2, 0.4, 0.6, 0.8, 0.99} {
		h := dome.Thickness(L/2+frac*dome.R0, L/2)
		if h >= prev {
			tst.Errorf("thickness must decay along the radius: H(%g R0) = %g >= %g", frac, h, prev)
			return
		}
		prev = h
	}

	// radial symmetry
	chk.Scalar(tst, "symmetry", 1e-12,
		dome.Thickness(L/2+0.5*dome.R0, L/2),
		dome.Thickness(L/2, L/2-0.5*dome.R0))

	// the balance rate is accumulation in the interior, ablation at the margin
	if dome.CMB(L/2+0.3*dome.R0, L/2) <= 0 {
		tst.Errorf("CMB must be positive in the dome interior")
		return
	}
	if dome.CMB(L/2+0.999*dome.R0, L/2) >= 0 {
		tst.Errorf("CMB must be negative near the margin")
		return
	}

	// n <= 1 is rejected
	if _, err := NewDome(0, 0, 1.0, Gamma); err == nil {
		tst.Errorf("NewDome must fail with n <= 1")
	}
}

func Test_obstacle01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("obstacle01. exact solution of the classical problem")

	sol := NewHemisphereObstacle()

	// continuity at the free boundary
	a := sol.Afree
	chk.Scalar(tst, "continuity", 1e-5, math.Sqrt(1.0-a*a), -sol.A*math.Log(a)+sol.B)

	// C1 matching: psi'(a) = -a/sqrt(1-a²) equals the tail slope -A/a
	chk.Scalar(tst, "C1 matching", 1e-5, -a/math.Sqrt(1.0-a*a), -sol.A/a)

	// the log tail vanishes at r = 2 (B = A log 2)
	chk.Scalar(tst, "u(r=2)", 1e-5, sol.U(2.0, 0.0), 0)

	// above the obstacle everywhere outside the contact disc
	for _, r := range []float64{0.75, 0.8, 0.85} {
		if sol.U(r, 0) <= math.Sqrt(1.0-r*r) {
			tst.Errorf("exact solution must be above the obstacle at r=%g", r)
			return
		}
	}
}

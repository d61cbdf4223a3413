// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fve

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"
)

func Test_q101(tst *testing.T) {

	//verbose()
	chk.PrintTitle("q101. bilinear interpolation and gradient")

	// f(x,y) = 1 + 2x + 3y + 4xy sampled at the element corners
	dx, dy := 0.5, 0.25
	F := func(x, y float64) float64 { return 1.0 + 2.0*x + 3.0*y + 4.0*x*y }
	f := [4]float64{F(0, 0), F(dx, 0), F(dx, dy), F(0, dy)}

	// corners are reproduced
	chk.Scalar(tst, "f0", 1e-15, FieldAtPt(0, 0, &f), f[0])
	chk.Scalar(tst, "f1", 1e-15, FieldAtPt(1, 0, &f), f[1])
	chk.Scalar(tst, "f2", 1e-15, FieldAtPt(1, 1, &f), f[2])
	chk.Scalar(tst, "f3", 1e-15, FieldAtPt(0, 1, &f), f[3])

	// the interpolant is exact for bilinear fields
	for _, pt := range [][]float64{{0.5, 0.25}, {0.75, 0.5}, {0.1, 0.9}} {
		xi, eta := pt[0], pt[1]
		chk.Scalar(tst, "interp", 1e-14, FieldAtPt(xi, eta, &f), F(xi*dx, eta*dy))
	}

	// analytic gradient: dF/dx = 2 + 4y, dF/dy = 3 + 4x
	for _, pt := range [][]float64{{0.5, 0.25}, {0.25, 0.5}, {0.9, 0.1}} {
		xi, eta := pt[0], pt[1]
		g := GradAtPt(xi, eta, dx, dy, &f)
		chk.Scalar(tst, "dfdx", 1e-13, g.X, 2.0+4.0*eta*dy)
		chk.Scalar(tst, "dfdy", 1e-13, g.Y, 3.0+4.0*xi*dx)
	}

	// cross check the gradient with central differences
	xi, eta := 0.6, 0.3
	g := GradAtPt(xi, eta, dx, dy, &f)
	dnumx, _ := num.DerivCentral(func(x float64, args ...interface{}) float64 {
		return FieldAtPt(x, eta, &f)
	}, xi, 1e-3)
	dnumy, _ := num.DerivCentral(func(y float64, args ...interface{}) float64 {
		return FieldAtPt(xi, y, &f)
	}, eta, 1e-3)
	chk.Scalar(tst, "dfdx (num)", 1e-9, g.X, dnumx/dx)
	chk.Scalar(tst, "dfdy (num)", 1e-9, g.Y, dnumy/dy)
}

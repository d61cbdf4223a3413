// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fve implements the Q1 finite-volume-element (FVE) residual
// engine for glacier and doubly-nonlinear obstacle problems on uniform
// structured 2D grids, together with the variational-inequality Newton
// solver and the implicit time stepper driving it.
package fve

import (
	"github.com/cpmech/gice/grid"
)

// gradients of the Q1 shape-function weights with respect to (xi,eta)
var (
	q1gx = [4]float64{-1.0, 1.0, 1.0, -1.0}
	q1gy = [4]float64{-1.0, -1.0, 1.0, 1.0}
)

// FieldAtPt evaluates the Q1 (bilinear) interpolant at local coordinates
// (xi,eta) in [0,1]² given the four corner values of the element,
// ordered counter-clockwise from the lower-left node:
//
//   N0 = (1-xi)(1-eta)   N1 = xi(1-eta)   N2 = xi eta   N3 = (1-xi) eta
//
// The result is exact (to floating point) for bilinear fields.
func FieldAtPt(xi, eta float64, f *[4]float64) float64 {
	x := [4]float64{1.0 - xi, xi, xi, 1.0 - xi}
	y := [4]float64{1.0 - eta, 1.0 - eta, eta, eta}
	return x[0]*y[0]*f[0] + x[1]*y[1]*f[1] + x[2]*y[2]*f[2] + x[3]*y[3]*f[3]
}

// GradAtPt evaluates the gradient of the Q1 interpolant at (xi,eta),
// with the analytic shape-function derivatives divided by the cell
// spacing (dx,dy) to give a gradient in real coordinates
func GradAtPt(xi, eta, dx, dy float64, f *[4]float64) (g grid.Grad) {
	x := [4]float64{1.0 - xi, xi, xi, 1.0 - xi}
	y := [4]float64{1.0 - eta, 1.0 - eta, eta, eta}
	g.X = (q1gx[0]*y[0]*f[0] + q1gx[1]*y[1]*f[1] + q1gx[2]*y[2]*f[2] + q1gx[3]*y[3]*f[3]) / dx
	g.Y = (x[0]*q1gy[0]*f[0] + x[1]*q1gy[1]*f[1] + x[2]*q1gy[2]*f[2] + x[3]*q1gy[3]*f[3]) / dy
	return
}

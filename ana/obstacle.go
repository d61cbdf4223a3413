// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import "math"

// HemisphereObstacle implements the exact solution of the classical
// obstacle problem for the Laplace operator over the square (-2,2)²
// with the unit hemisphere as obstacle. Inside the contact disc of
// radius Afree the solution touches the obstacle; outside it follows
// the logarithmic tail
//
//   u(r) = sqrt(1 - r²)       r <= Afree
//   u(r) = -A log(r) + B      r >  Afree
type HemisphereObstacle struct {
	Afree float64 // free boundary radius
	A, B  float64 // tail coefficients, B = A log(2)
}

// NewHemisphereObstacle creates the exact solution
func NewHemisphereObstacle() *HemisphereObstacle {
	return &HemisphereObstacle{
		Afree: 0.697965148223374,
		A:     0.680259411891719,
		B:     0.471519893402112,
	}
}

// U returns the exact solution at (x,y)
func (o *HemisphereObstacle) U(x, y float64) float64 {
	r := math.Hypot(x, y)
	if r <= o.Afree {
		return math.Sqrt(1.0 - r*r)
	}
	return -o.A*math.Log(r) + o.B
}

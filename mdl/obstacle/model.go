// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package obstacle implements lower-bound (obstacle) functions psi(x,y)
// for the variational inequality u >= psi
package obstacle

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Model defines obstacle functions
type Model interface {
	Init(prms fun.Prms) error // Init initialises this structure
	Psi(x, y float64) float64 // Psi returns the obstacle height at (x,y)
}

// New returns an obstacle model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("obstacle model %q is not available in database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// Zero implements psi = 0; with this obstacle the constraint is the
// non-negativity of ice thickness
type Zero struct{}

func init() {
	allocators["zero"] = func() Model { return new(Zero) }
}

// Init initialises this structure
func (o *Zero) Init(prms fun.Prms) error { return nil }

// Psi returns the obstacle height at (x,y)
func (o *Zero) Psi(x, y float64) float64 { return 0 }

// Hemisphere implements the classical hemispherical obstacle centered at
// the origin, extended by its tangent line beyond radius r0 so that psi
// is defined (and smooth) on the whole plane:
//
//   psi(r) = sqrt(1 - r²)                       r <= r0
//   psi(r) = psi(r0) + psi'(r0) (r - r0)        r >  r0
type Hemisphere struct {
	R0 float64 // radius at which the tangent extension starts

	// derived
	psi0, dpsi0 float64
}

func init() {
	allocators["hemisphere"] = func() Model { return new(Hemisphere) }
}

// Init initialises this structure
func (o *Hemisphere) Init(prms fun.Prms) (err error) {
	o.R0 = 0.9
	for _, p := range prms {
		switch p.N {
		case "r0":
			o.R0 = p.V
		default:
			return chk.Err("hemisphere obstacle model: parameter named %q is invalid", p.N)
		}
	}
	if o.R0 <= 0 || o.R0 >= 1 {
		return chk.Err("hemisphere obstacle model: r0=%g is invalid; 0 < r0 < 1 is required", o.R0)
	}
	o.psi0 = math.Sqrt(1.0 - o.R0*o.R0)
	o.dpsi0 = -o.R0 / o.psi0
	return
}

// Psi returns the obstacle height at (x,y)
func (o *Hemisphere) Psi(x, y float64) float64 {
	r := math.Sqrt(x*x + y*y)
	if r <= o.R0 {
		return math.Sqrt(1.0 - r*r)
	}
	return o.psi0 + o.dpsi0*(r-o.R0)
}

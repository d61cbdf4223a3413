// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bed implements bed elevation models b(x,y)
package bed

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Model defines bed elevation maps
type Model interface {
	Init(prms fun.Prms) error // Init initialises this structure
	Z(x, y float64) float64   // Z returns the bed elevation at (x,y)
}

// New returns a bed model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("bed model %q is not available in database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}

// Zero implements the flat bed b = 0
type Zero struct{}

func init() {
	allocators["zero"] = func() Model { return new(Zero) }
}

// Init initialises this structure
func (o *Zero) Init(prms fun.Prms) error { return nil }

// Z returns the bed elevation at (x,y)
func (o *Zero) Z(x, y float64) float64 { return 0 }

// Rolling implements a smooth doubly-periodic ridge field
//
//   b(x,y) = b0 sin(2 pi x / lx) sin(2 pi y / ly)
//
// with zero mean, compatible with periodic boundaries when lx, ly divide
// the domain lengths.
type Rolling struct {
	B0 float64 // amplitude [m]
	Lx float64 // wavelength along x [m]
	Ly float64 // wavelength along y [m]
}

func init() {
	allocators["rolling"] = func() Model { return new(Rolling) }
}

// Init initialises this structure
func (o *Rolling) Init(prms fun.Prms) (err error) {
	o.B0, o.Lx, o.Ly = 500.0, 300.0e3, 300.0e3
	for _, p := range prms {
		switch p.N {
		case "b0":
			o.B0 = p.V
		case "lx":
			o.Lx = p.V
		case "ly":
			o.Ly = p.V
		default:
			return chk.Err("rolling bed model: parameter named %q is invalid", p.N)
		}
	}
	if o.Lx <= 0 || o.Ly <= 0 {
		return chk.Err("rolling bed model: wavelengths lx=%g, ly=%g are invalid", o.Lx, o.Ly)
	}
	return
}

// Z returns the bed elevation at (x,y)
func (o *Rolling) Z(x, y float64) float64 {
	return o.B0 * math.Sin(2.0*math.Pi*x/o.Lx) * math.Sin(2.0*math.Pi*y/o.Ly)
}

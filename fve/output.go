// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fve

import (
	"encoding/binary"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// SaveResults writes the bed elevation followed by the solution as raw
// little-endian float64 values, row-major from the lower-left node, to
//
//   <dirout>/<key>_<mx>x<my>.dat
//
// Only the root processor writes. Returns the written filename.
func (o *Domain) SaveResults() (err error) {
	if o.Patch.Rank != 0 {
		return
	}
	fn := filepath.Join(o.Sim.DirOut, io.Sf("%s_%dx%d.dat", o.Sim.Key, o.Grid.Mx, o.Grid.My))
	f, err := os.Create(fn)
	if err != nil {
		return chk.Err("cannot create results file %q: %v", fn, err)
	}
	defer f.Close()
	if err = binary.Write(f, binary.LittleEndian, o.Bedv.V); err != nil {
		return chk.Err("cannot write bed field to %q: %v", fn, err)
	}
	if err = binary.Write(f, binary.LittleEndian, o.U.V); err != nil {
		return chk.Err("cannot write solution to %q: %v", fn, err)
	}
	return
}

// ReadResults reads back a file written by SaveResults; n is the number
// of grid nodes
func ReadResults(fn string, n int) (bedv, u []float64, err error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, nil, chk.Err("cannot open results file %q: %v", fn, err)
	}
	defer f.Close()
	bedv = make([]float64, n)
	u = make([]float64, n)
	if err = binary.Read(f, binary.LittleEndian, bedv); err != nil {
		return nil, nil, chk.Err("cannot read bed field from %q: %v", fn, err)
	}
	if err = binary.Read(f, binary.LittleEndian, u); err != nil {
		return nil, nil, chk.Err("cannot read solution from %q: %v", fn, err)
	}
	return
}

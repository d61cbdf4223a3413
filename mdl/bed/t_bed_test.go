// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bed

import (
	"testing"

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

func Test_bed01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bed01. zero and rolling beds")

	z, err := New("zero")
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	z.Init(nil)
	chk.Scalar(tst, "flat", 1e-17, z.Z(123.0, -456.0), 0)

	r, err := New("rolling")
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	err = r.Init([]*fun.Prm{
		&fun.Prm{N: "b0", V: 100.0},
		&fun.Prm{N: "lx", V: 400.0},
		&fun.Prm{N: "ly", V: 400.0},
	})
	if err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	chk.Scalar(tst, "node", 1e-12, r.Z(0, 0), 0)
	chk.Scalar(tst, "crest", 1e-12, r.Z(100.0, 100.0), 100.0)
	chk.Scalar(tst, "periodic", 1e-10, r.Z(500.0, 100.0), r.Z(100.0, 100.0))

	if _, err := New("staircase"); err == nil {
		tst.Errorf("New must fail for unknown model")
	}
}

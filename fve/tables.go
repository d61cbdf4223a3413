// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fve

/* Control-volume quadrature geometry.

The control volume is the dx*dy rectangle centered at node (j,k). Its
boundary carries 8 quadrature points, numbered s=0,...,7, sitting in the
four elements meeting at the node:

     -------------------
    |         |         |
    |    ..2..|..1..    |
    |   3:    |    :0   |
  k |--------- ---------|
    |   4:    |    :7   |
    |    ..5..|..6..    |
    |         |         |
     -------------------
              j

Within the element whose lower-left node is (j,k), fluxes are sampled at
4 fixed points, c=0,...,3; c=0,2 are x-components ("*") and c=1,3 are
y-components ("%"):

     -------------------
    |         :         |
    |         *2        |
    |    3    :    1    |
    |....%.... ....%....|
    |         :         |
    |         *0        |
    |         :         |
    @-------------------
  (j,k)
*/

// local (element-wise) coordinates of the 4 flux sample points
var (
	locx = [4]float64{0.5, 0.75, 0.5, 0.25}
	locy = [4]float64{0.25, 0.5, 0.75, 0.5}
)

// direction of the flux component at each sample point
var xdire = [4]bool{true, false, true, false}

// 8-point boundary stencil: quadrature point s lives in element
// (j+je[s], k+ke[s]) and uses that element's flux component ce[s]
var (
	je = [8]int{0, 0, -1, -1, -1, -1, 0, 0}
	ke = [8]int{0, 0, 0, 0, -1, -1, -1, -1}
	ce = [8]int{0, 3, 1, 0, 2, 1, 3, 2}
)

// quadCoeffs returns the signed lengths multiplying each of the 8 flux
// samples in the boundary integral (two-point midpoint rule per side)
func quadCoeffs(dx, dy float64) [8]float64 {
	return [8]float64{dy / 2, dx / 2, dx / 2, -dy / 2, -dy / 2, -dx / 2, -dx / 2, dy / 2}
}

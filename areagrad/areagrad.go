// Package areagrad implements the gradient of a triangle's area with respect
// to its three corner positions — a pure algebra helper consumed by the
// narrow-phase contact energy pipeline, outside this module's scope, the
// same way gjk and epa are small dependency-free algebra packages sitting
// next to the broad-phase in the teacher repo.
package areagrad

import "math"

// TriangleAreaGradient writes into dA the nine partial derivatives of
//
//	½‖(t1-t0)×(t2-t0)‖
//
// with respect to (t0.X, t1.X, t2.X, t0.Y, t1.Y, t2.Y, t0.Z, t1.Z, t2.Z), in
// that column-major order (x-column, then y-column, then z-column).
//
// Undefined when the triangle is degenerate (zero area); callers must guard
// against that case themselves.
func TriangleAreaGradient(t0, t1, t2 [3]float64, dA *[9]float64) {
	t0x, t0y, t0z := t0[0], t0[1], t0[2]
	t1x, t1y, t1z := t1[0], t1[1], t1[2]
	t2x, t2y, t2z := t2[0], t2[1], t2[2]

	a0 := -t2y
	a1 := a0 + t1y
	a2 := t0x - t1x
	a3 := a0 + t0y
	a4 := -t2x
	a5 := t0x + a4
	a6 := t0y - t1y
	a7 := a2*a3 - a5*a6
	a8 := -t2z
	a9 := t1z + a8
	a10 := t0z + a8
	a11 := t0z - t1z
	a12 := a10*a2 - a11*a5
	a13 := a10*a6 - a11*a3
	a14 := 0.5 / math.Sqrt(a12*a12+a13*a13+a7*a7)
	a15 := t1x + a4

	dA[0] = a14 * (a1*a7 + a12*a9)
	dA[3] = -a14 * (-a13*a9 + a15*a7)
	dA[6] = -a14 * (a1*a13 + a12*a15)
	dA[1] = -a14 * (a10*a12 + a3*a7)
	dA[4] = a14 * (-a10*a13 + a5*a7)
	dA[7] = a14 * (a12*a5 + a13*a3)
	dA[2] = a14 * (a11*a12 + a6*a7)
	dA[5] = -a14 * (-a11*a13 + a2*a7)
	dA[8] = -a14 * (a12*a2 + a13*a6)
}

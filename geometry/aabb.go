// Package geometry holds the value types shared by the broad-phase: the
// axis-aligned bounding box and the componentwise min/max helpers used to
// build swept boxes for moving primitives.
package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB is an axis-aligned bounding box, 2D or 3D depending on Dim.
//
// When Dim is 2, Z on Min and Max is ignored by Overlap and by New's
// min <= max check; the HashGrid builds its 2D boxes with Z = 0.
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
	Dim int

	halfExtent mgl64.Vec3
	center     mgl64.Vec3
}

// New builds an AABB from a min/max pair, precomputing its half-extent and
// center. min must be componentwise <= max; violating this is a caller bug.
func New(min, max mgl64.Vec3, dim int) AABB {
	assertf(dim == 2 || dim == 3, "geometry: AABB dimension must be 2 or 3, got %d", dim)
	assertf(min.X() <= max.X() && min.Y() <= max.Y() && (dim == 2 || min.Z() <= max.Z()),
		"geometry: AABB min %v must be componentwise <= max %v", min, max)

	a := AABB{Min: min, Max: max, Dim: dim}
	a.halfExtent = a.Max.Sub(a.Min).Mul(0.5)
	a.center = a.Min.Add(a.halfExtent)
	return a
}

// HalfExtent returns the cached half-extent (Max-Min)/2.
func (a AABB) HalfExtent() mgl64.Vec3 { return a.halfExtent }

// Center returns the cached center Min+HalfExtent.
func (a AABB) Center() mgl64.Vec3 { return a.center }

// Merge2 returns the componentwise union of two boxes of the same dimension.
func Merge2(a, b AABB) AABB {
	assertf(a.Dim == b.Dim, "geometry: cannot merge AABBs of different dimension (%d vs %d)", a.Dim, b.Dim)
	return New(vecMin(a.Min, b.Min), vecMax(a.Max, b.Max), a.Dim)
}

// Merge3 returns the componentwise union of three boxes of the same dimension.
func Merge3(a, b, c AABB) AABB {
	return Merge2(Merge2(a, b), c)
}

// Overlap reports whether a and b overlap, using the center/half-extent
// form: |center_a - center_b| <= halfExtent_a + halfExtent_b on every axis.
// This is branch-light compared to a min/max comparison since the
// half-extents are precomputed once at construction.
func Overlap(a, b AABB) bool {
	assertf(a.Dim == b.Dim, "geometry: cannot test overlap of AABBs of different dimension (%d vs %d)", a.Dim, b.Dim)

	dx := math.Abs(a.center.X() - b.center.X())
	dy := math.Abs(a.center.Y() - b.center.Y())
	if dx > a.halfExtent.X()+b.halfExtent.X() || dy > a.halfExtent.Y()+b.halfExtent.Y() {
		return false
	}
	if a.Dim == 2 {
		return true
	}
	dz := math.Abs(a.center.Z() - b.center.Z())
	return dz <= a.halfExtent.Z()+b.halfExtent.Z()
}

// Inflate returns a with every side pushed out by r on both ends (an
// isotropic Minkowski dilation of the box).
func Inflate(a AABB, r float64) AABB {
	pad := mgl64.Vec3{r, r, r}
	if a.Dim == 2 {
		pad[2] = 0
	}
	return New(a.Min.Sub(pad), a.Max.Add(pad), a.Dim)
}

func vecMin(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{math.Min(a.X(), b.X()), math.Min(a.Y(), b.Y()), math.Min(a.Z(), b.Z())}
}

func vecMax(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{math.Max(a.X(), b.X()), math.Max(a.Y(), b.Y()), math.Max(a.Z(), b.Z())}
}

package sweephash

import "github.com/go-gl/mathgl/mgl64"

// MeshExtents computes the componentwise min/max over the concatenation of
// both position snapshots — the enclosing box of union(V0, V1).
func MeshExtents(v0, v1 []mgl64.Vec3) (min, max mgl64.Vec3) {
	assertf(len(v0) == len(v1), "sweephash: MeshExtents requires matching row counts, got %d and %d", len(v0), len(v1))
	assertf(len(v0) > 0, "sweephash: MeshExtents requires at least one vertex")

	min, max = v0[0], v0[0]
	for _, v := range v0 {
		min, max = vecMinMax(min, max, v)
	}
	for _, v := range v1 {
		min, max = vecMinMax(min, max, v)
	}
	return min, max
}

func vecMinMax(min, max, v mgl64.Vec3) (mgl64.Vec3, mgl64.Vec3) {
	if v.X() < min.X() {
		min[0] = v.X()
	}
	if v.Y() < min.Y() {
		min[1] = v.Y()
	}
	if v.Z() < min.Z() {
		min[2] = v.Z()
	}
	if v.X() > max.X() {
		max[0] = v.X()
	}
	if v.Y() > max.Y() {
		max[1] = v.Y()
	}
	if v.Z() > max.Z() {
		max[2] = v.Z()
	}
	return min, max
}

// AverageEdgeLength computes the average edge length across both snapshots:
//
//	Σ(‖V0[a]-V0[b]‖ + ‖V1[a]-V1[b]‖) / (2*len(edges))
//
// Undefined when edges is empty; callers must avoid that case.
func AverageEdgeLength(v0, v1 []mgl64.Vec3, edges [][2]int) float64 {
	assertf(len(edges) > 0, "sweephash: AverageEdgeLength requires at least one edge")

	var sum float64
	for _, e := range edges {
		sum += v0[e[0]].Sub(v0[e[1]]).Len()
		sum += v1[e[0]].Sub(v1[e[1]]).Len()
	}
	return sum / float64(2*len(edges))
}

// AverageDisplacementLength computes the average row-norm of d — the mean
// per-vertex displacement length.
func AverageDisplacementLength(d []mgl64.Vec3) float64 {
	assertf(len(d) > 0, "sweephash: AverageDisplacementLength requires at least one row")

	var sum float64
	for _, row := range d {
		sum += row.Len()
	}
	return sum / float64(len(d))
}

package sweephash

import (
	"github.com/AlexTru96/sweephash/geometry"
	"github.com/go-gl/mathgl/mgl64"
)

// sweptBox builds the AABB of the union of pts, then inflates it by r on
// every side — the construction common to every AddX method (spec §4.4).
func (g *HashGrid) sweptBox(pts []mgl64.Vec3, r float64) geometry.AABB {
	min, max := pts[0], pts[0]
	for _, p := range pts[1:] {
		min, max = vecMinMax(min, max, p)
	}
	if g.dim == 2 {
		min[2], max[2] = 0, 0
	}
	return geometry.Inflate(geometry.New(min, max, g.dim), r)
}

// AddVertex adds a single vertex as the AABB of its temporal edge (the
// swept box between its position at t0 and t1), inflated by r.
func (g *HashGrid) AddVertex(vt0, vt1 mgl64.Vec3, id int, r float64) {
	aabb := g.sweptBox([]mgl64.Vec3{vt0, vt1}, r)
	g.addElement(aabb, id, &g.vertexItems)
}

// AddVertices adds every row of v0/v1 as a swept vertex AABB, fanning the
// work out across g.Workers goroutines with a thread-local buffer per
// worker, serially concatenated afterward (spec §4.6).
func (g *HashGrid) AddVertices(v0, v1 []mgl64.Vec3, r float64) {
	assertf(len(v0) == len(v1), "sweephash: AddVertices requires matching row counts, got %d and %d", len(v0), len(v1))

	indices := make([]int, len(v0))
	for i := range indices {
		indices[i] = i
	}
	buffers := task(g.Workers, indices, func(i int, local *[]HashItem) {
		aabb := g.sweptBox([]mgl64.Vec3{v0[i], v1[i]}, r)
		g.addElement(aabb, i, local)
	})
	g.vertexItems = mergeBuffers(g.vertexItems, buffers)
}

// AddVerticesFromEdges inserts each edge-referenced vertex exactly once.
// It precomputes, in a single serial pass, the lowest edge index that
// references each vertex, then in the parallel pass over edges only adds a
// vertex from the edge row that matches its minimum — the deduplication
// spec §4.6 requires so later queries never emit a candidate twice for the
// same vertex.
func (g *HashGrid) AddVerticesFromEdges(v0, v1 []mgl64.Vec3, edges [][2]int, r float64) {
	assertf(len(v0) == len(v1), "sweephash: AddVerticesFromEdges requires matching row counts, got %d and %d", len(v0), len(v1))

	vertexToMinEdge := make([]int, len(v0))
	for i := range vertexToMinEdge {
		vertexToMinEdge[i] = len(edges) + 1
	}
	for ej := 0; ej < 2; ej++ {
		for ei, e := range edges {
			vi := e[ej]
			if ei < vertexToMinEdge[vi] {
				vertexToMinEdge[vi] = ei
			}
		}
	}

	indices := make([]int, len(edges))
	for i := range indices {
		indices[i] = i
	}
	buffers := task(g.Workers, indices, func(ei int, local *[]HashItem) {
		for ej := 0; ej < 2; ej++ {
			vi := edges[ei][ej]
			if vertexToMinEdge[vi] == ei {
				aabb := g.sweptBox([]mgl64.Vec3{v0[vi], v1[vi]}, r)
				g.addElement(aabb, vi, local)
			}
		}
	})
	g.vertexItems = mergeBuffers(g.vertexItems, buffers)
}

// AddEdge adds a single edge as the AABB of its temporal quad: the union of
// both endpoints at t0 and at t1, inflated by r.
func (g *HashGrid) AddEdge(a0, b0, a1, b1 mgl64.Vec3, id int, r float64) {
	aabb := g.sweptBox([]mgl64.Vec3{a0, b0, a1, b1}, r)
	g.addElement(aabb, id, &g.edgeItems)
}

// AddEdges adds every row of edges as a swept edge AABB, in parallel.
func (g *HashGrid) AddEdges(v0, v1 []mgl64.Vec3, edges [][2]int, r float64) {
	assertf(len(v0) == len(v1), "sweephash: AddEdges requires matching row counts, got %d and %d", len(v0), len(v1))

	indices := make([]int, len(edges))
	for i := range indices {
		indices[i] = i
	}
	buffers := task(g.Workers, indices, func(i int, local *[]HashItem) {
		e := edges[i]
		aabb := g.sweptBox([]mgl64.Vec3{v0[e[0]], v0[e[1]], v1[e[0]], v1[e[1]]}, r)
		g.addElement(aabb, i, local)
	})
	g.edgeItems = mergeBuffers(g.edgeItems, buffers)
}

// AddFace adds a single triangle as the AABB of its temporal prism: the
// union of all three corners at t0 and at t1, inflated by r.
func (g *HashGrid) AddFace(a0, b0, c0, a1, b1, c1 mgl64.Vec3, id int, r float64) {
	aabb := g.sweptBox([]mgl64.Vec3{a0, b0, c0, a1, b1, c1}, r)
	g.addElement(aabb, id, &g.faceItems)
}

// AddFaces adds every row of faces as a swept triangle AABB, in parallel.
func (g *HashGrid) AddFaces(v0, v1 []mgl64.Vec3, faces [][3]int, r float64) {
	assertf(len(v0) == len(v1), "sweephash: AddFaces requires matching row counts, got %d and %d", len(v0), len(v1))

	indices := make([]int, len(faces))
	for i := range indices {
		indices[i] = i
	}
	buffers := task(g.Workers, indices, func(i int, local *[]HashItem) {
		f := faces[i]
		aabb := g.sweptBox([]mgl64.Vec3{
			v0[f[0]], v0[f[1]], v0[f[2]],
			v1[f[0]], v1[f[1]], v1[f[2]],
		}, r)
		g.addElement(aabb, i, local)
	})
	g.faceItems = mergeBuffers(g.faceItems, buffers)
}

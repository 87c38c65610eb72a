package main

import (
	"fmt"

	"github.com/AlexTru96/sweephash"
	"github.com/go-gl/mathgl/mgl64"
)

// cloth builds a small 3x3 grid of vertices, the edges of its quads' two
// diagonals removed, falling under gravity for one step — just enough
// connectivity to exercise every query kind at once.
func cloth() (v0, v1 []mgl64.Vec3, edges [][2]int, faces [][3]int) {
	const n = 3
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			p := mgl64.Vec3{float64(x), float64(y), 0}
			v0 = append(v0, p)
			v1 = append(v1, p.Sub(mgl64.Vec3{0, 0.1, 0})) // one step of fall
		}
	}

	idx := func(x, y int) int { return y*n + x }
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if x+1 < n {
				edges = append(edges, [2]int{idx(x, y), idx(x+1, y)})
			}
			if y+1 < n {
				edges = append(edges, [2]int{idx(x, y), idx(x, y+1)})
			}
			if x+1 < n && y+1 < n {
				faces = append(faces, [3]int{idx(x, y), idx(x+1, y), idx(x, y+1)})
				faces = append(faces, [3]int{idx(x+1, y), idx(x+1, y+1), idx(x, y+1)})
			}
		}
	}
	return v0, v1, edges, faces
}

func main() {
	v0, v1, edges, faces := cloth()
	const inflationRadius = 0.05

	var grid sweephash.HashGrid
	grid.Workers = 4
	grid.ResizeFromMesh(v0, v1, edges, inflationRadius, 3)

	fmt.Printf("grid size %v, cell size %.3f\n", grid.GridSize(), grid.CellSize())

	grid.AddVerticesFromEdges(v0, v1, edges, inflationRadius)
	grid.AddEdges(v0, v1, edges, inflationRadius)
	grid.AddFaces(v0, v1, faces, inflationRadius)

	vertexEdge := grid.VertexEdgePairs(edges, nil, nil)
	edgeEdge := grid.EdgeEdgePairs(edges, nil, nil)
	edgeFace := grid.EdgeFacePairs(edges, faces, nil, nil)
	faceVertex := grid.FaceVertexPairs(faces, nil, nil)

	fmt.Printf("vertex-edge candidates: %d\n", len(vertexEdge))
	fmt.Printf("edge-edge candidates:   %d\n", len(edgeEdge))
	fmt.Printf("edge-face candidates:   %d\n", len(edgeFace))
	fmt.Printf("face-vertex candidates: %d\n", len(faceVertex))
}

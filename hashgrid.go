// Package sweephash implements a continuous-collision broad-phase for
// deformable-mesh contact: given two snapshots of a mesh (positions at t0
// and t1) and its connectivity, it buckets conservative swept AABBs into a
// uniform cell grid and emits de-duplicated candidate pairs for downstream
// narrow-phase code (exact CCD, distance queries) to confirm.
//
// A HashGrid moves through four states: Unsized, Sized (after Resize),
// Populated (after any AddX call) and Queried (after any query, which
// sorts the buckets it reads). Resize returns to Sized, clearing all
// buckets; Clear returns to Sized without touching the domain parameters.
package sweephash

import (
	"math"

	"github.com/AlexTru96/sweephash/geometry"
	"github.com/go-gl/mathgl/mgl64"
)

// HashGrid is a uniform grid over a fixed domain, bucketing swept element
// AABBs by the cells they overlap. It is populated once per query — each
// query is one-shot on a freshly populated grid (spec §1: no persistence
// across calls).
type HashGrid struct {
	dim       int
	cellSize  float64
	domainMin mgl64.Vec3
	domainMax mgl64.Vec3
	gridSize  [3]int // gridSize[2] is always 1 when dim == 2

	vertexItems []HashItem
	edgeItems   []HashItem
	faceItems   []HashItem

	// Workers is the number of goroutines bulk-add and parallel-foreach
	// operations fan out across. Zero is treated as 1 (serial), the same
	// default-worker convention as feather.World.Workers.
	Workers int
}

// Dim returns 2 or 3, the dimensionality fixed at the last Resize.
func (g *HashGrid) Dim() int { return g.dim }

// CellSize returns the grid's cell side length.
func (g *HashGrid) CellSize() float64 { return g.cellSize }

// GridSize returns the per-axis cell counts. The third entry is always 1
// for a 2D grid.
func (g *HashGrid) GridSize() [3]int { return g.gridSize }

// DomainMin returns the grid's lower domain bound.
func (g *HashGrid) DomainMin() mgl64.Vec3 { return g.domainMin }

// DomainMax returns the grid's upper domain bound.
func (g *HashGrid) DomainMax() mgl64.Vec3 { return g.domainMax }

// Clear empties the three item buckets but keeps the domain/cellSize/
// gridSize parameters, returning the grid to the Sized state.
func (g *HashGrid) Clear() {
	g.vertexItems = g.vertexItems[:0]
	g.edgeItems = g.edgeItems[:0]
	g.faceItems = g.faceItems[:0]
}

// Resize clears the grid and fixes its domain, cell size and dimension.
// cellSize must be strictly positive; min must be componentwise <= max.
func (g *HashGrid) Resize(min, max mgl64.Vec3, cellSize float64, dim int) {
	g.Clear()
	assertf(cellSize > 0, "sweephash: cellSize must be strictly positive, got %v", cellSize)
	assertf(dim == 2 || dim == 3, "sweephash: dim must be 2 or 3, got %d", dim)
	assertf(min.X() <= max.X() && min.Y() <= max.Y() && (dim == 2 || min.Z() <= max.Z()),
		"sweephash: domain min %v must be componentwise <= max %v", min, max)

	g.dim = dim
	g.cellSize = cellSize
	g.domainMin = min
	g.domainMax = max

	extent := max.Sub(min)
	g.gridSize[0] = cellCount(extent.X(), cellSize)
	g.gridSize[1] = cellCount(extent.Y(), cellSize)
	if dim == 3 {
		g.gridSize[2] = cellCount(extent.Z(), cellSize)
	} else {
		g.gridSize[2] = 1
	}

	if debugLog {
		logf("hash-grid resized to %dx%dx%d cells, cellSize=%v", g.gridSize[0], g.gridSize[1], g.gridSize[2], cellSize)
	}
}

func cellCount(extent, cellSize float64) int {
	return max(1, int(math.Ceil(extent/cellSize)))
}

// ResizeFromMesh is the convenience overload that derives the domain and
// cell size from mesh statistics: the domain is the extents of union(V0,
// V1) inflated by r on every side, and the cell size is
// 2*max(avgEdgeLength, avgDisplacementLength) + r — cells larger than both
// a typical primitive and a typical motion so a swept AABB straddles few
// cells on average (spec §4.3).
func (g *HashGrid) ResizeFromMesh(v0, v1 []mgl64.Vec3, edges [][2]int, inflationRadius float64, dim int) {
	lo, hi := MeshExtents(v0, v1)
	edgeLen := AverageEdgeLength(v0, v1, edges)
	displacement := make([]mgl64.Vec3, len(v0))
	for i := range v0 {
		displacement[i] = v1[i].Sub(v0[i])
	}
	dispLen := AverageDisplacementLength(displacement)

	cellSize := 2*math.Max(edgeLen, dispLen) + inflationRadius
	pad := mgl64.Vec3{inflationRadius, inflationRadius, inflationRadius}
	if dim == 2 {
		pad[2] = 0
	}
	g.Resize(lo.Sub(pad), hi.Add(pad), cellSize, dim)
}

// hash encodes a cell coordinate as a single integer: a perfect encoding of
// the cell location inside the grid, not a lossy hash, so colliding keys
// are exactly the items sharing a cell. int64 keeps the product from
// overflowing on large grids (spec §4.5).
func (g *HashGrid) hash(x, y, z int) int64 {
	return (int64(z)*int64(g.gridSize[1])+int64(y))*int64(g.gridSize[0]) + int64(x)
}

// addElement buckets aabb under every cell it overlaps, appending one
// HashItem per cell into items.
func (g *HashGrid) addElement(aabb geometry.AABB, id int, items *[]HashItem) {
	loX, loY, loZ := g.cellCoord(aabb.Min)
	hiX, hiY, hiZ := g.cellCoord(aabb.Max)

	for x := loX; x <= hiX; x++ {
		for y := loY; y <= hiY; y++ {
			for z := loZ; z <= hiZ; z++ {
				*items = append(*items, HashItem{Key: g.hash(x, y, z), ID: id, AABB: aabb})
			}
		}
	}
}

// cellCoord computes the clamped integer cell coordinate of a point,
// asserting the unclamped value lies in [-1, gridSize] per spec §4.5: a box
// slightly outside the domain is allowed to round to -1, and clamping to 0
// over-reports candidates near domain edges rather than missing them.
func (g *HashGrid) cellCoord(p mgl64.Vec3) (x, y, z int) {
	rawX := int(math.Floor((p.X() - g.domainMin.X()) / g.cellSize))
	rawY := int(math.Floor((p.Y() - g.domainMin.Y()) / g.cellSize))
	assertf(rawX >= -1 && rawX <= g.gridSize[0], "sweephash: AABB coordinate x=%v out of range [-1, %d]", p.X(), g.gridSize[0])
	assertf(rawY >= -1 && rawY <= g.gridSize[1], "sweephash: AABB coordinate y=%v out of range [-1, %d]", p.Y(), g.gridSize[1])

	x = clamp(rawX, 0, g.gridSize[0]-1)
	y = clamp(rawY, 0, g.gridSize[1]-1)

	if g.dim == 2 {
		return x, y, 0
	}

	rawZ := int(math.Floor((p.Z() - g.domainMin.Z()) / g.cellSize))
	assertf(rawZ >= -1 && rawZ <= g.gridSize[2], "sweephash: AABB coordinate z=%v out of range [-1, %d]", p.Z(), g.gridSize[2])
	z = clamp(rawZ, 0, g.gridSize[2]-1)
	return x, y, z
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// debugLog gates the one debug line the original emits on resize when
// compiled with IPC_TOOLKIT_WITH_LOGGER. No logging library appears
// anywhere in the retrieved corpus for a package this size, so this is a
// plain log.Printf behind a boolean rather than a dependency nothing else
// pulls in.
var debugLog = false

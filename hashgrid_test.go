package sweephash

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestResizeGridSize(t *testing.T) {
	var g HashGrid
	g.Resize(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{10, 10, 10}, 3, 3)

	want := [3]int{4, 4, 4} // ceil(10/3) = 4
	if g.GridSize() != want {
		t.Errorf("GridSize() = %v, want %v", g.GridSize(), want)
	}
}

func TestResize2DGridSizeZIsOne(t *testing.T) {
	var g HashGrid
	g.Resize(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{10, 10, 0}, 2, 2)

	if g.GridSize()[2] != 1 {
		t.Errorf("2D grid's z size = %d, want 1", g.GridSize()[2])
	}
}

func TestResizeClearsBuckets(t *testing.T) {
	var g HashGrid
	g.Resize(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{10, 10, 10}, 1, 3)
	g.AddVertex(mgl64.Vec3{0.5, 0.5, 0.5}, mgl64.Vec3{0.5, 0.5, 0.5}, 0, 0)

	g.Resize(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{10, 10, 10}, 1, 3)
	if len(g.vertexItems) != 0 {
		t.Errorf("vertexItems not cleared by Resize, len=%d", len(g.vertexItems))
	}
}

func TestClearKeepsDomain(t *testing.T) {
	var g HashGrid
	g.Resize(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{10, 10, 10}, 1, 3)
	g.AddVertex(mgl64.Vec3{0.5, 0.5, 0.5}, mgl64.Vec3{0.5, 0.5, 0.5}, 0, 0)

	g.Clear()
	if len(g.vertexItems) != 0 {
		t.Errorf("vertexItems not cleared, len=%d", len(g.vertexItems))
	}
	if g.DomainMax() != (mgl64.Vec3{10, 10, 10}) {
		t.Errorf("Clear must not touch domain, DomainMax() = %v", g.DomainMax())
	}
}

func TestResizePanicsOnNonPositiveCellSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for cellSize <= 0")
		}
	}()
	var g HashGrid
	g.Resize(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}, 0, 3)
}

func TestResizePanicsOnInvertedDomain(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic when min > max")
		}
	}()
	var g HashGrid
	g.Resize(mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 1}, 1, 3)
}

func TestHashRoundTrip(t *testing.T) {
	var g HashGrid
	g.Resize(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{10, 10, 10}, 1, 3)

	gx, gy := g.GridSize()[0], g.GridSize()[1]
	for x := 0; x < gx; x++ {
		for y := 0; y < gy; y++ {
			for z := 0; z < g.GridSize()[2]; z++ {
				k := g.hash(x, y, z)
				rx := int(k) % gx
				ry := (int(k) / gx) % gy
				rz := int(k) / (gx * gy)
				if rx != x || ry != y || rz != z {
					t.Fatalf("hash round-trip failed for (%d,%d,%d): decoded (%d,%d,%d)", x, y, z, rx, ry, rz)
				}
			}
		}
	}
}

func TestCellCoordClampsNearDomainEdge(t *testing.T) {
	var g HashGrid
	g.Resize(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{2, 2, 2}, 1, 3)

	x, y, z := g.cellCoord(mgl64.Vec3{-0.0001, 0, 0})
	if x != 0 || y != 0 || z != 0 {
		t.Errorf("cellCoord just outside domain should clamp to 0, got (%d,%d,%d)", x, y, z)
	}
}

func TestResizeFromMeshDerivesDomainAndCellSize(t *testing.T) {
	v0 := []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}}
	v1 := []mgl64.Vec3{{0, 0, 0}, {2, 0, 0}}
	edges := [][2]int{{0, 1}}

	var g HashGrid
	g.ResizeFromMesh(v0, v1, edges, 0.1, 3)

	if g.Dim() != 3 {
		t.Errorf("Dim() = %d, want 3", g.Dim())
	}
	if g.CellSize() <= 0 {
		t.Errorf("CellSize() = %v, want > 0", g.CellSize())
	}
	wantMin := mgl64.Vec3{-0.1, -0.1, -0.1}
	if g.DomainMin() != wantMin {
		t.Errorf("DomainMin() = %v, want %v", g.DomainMin(), wantMin)
	}
}

package sweephash

import (
	"sort"

	"github.com/AlexTru96/sweephash/candidate"
	"github.com/AlexTru96/sweephash/geometry"
)

// pair is the untyped (a, b) id tuple the join functions emit; callers wrap
// it into the candidate type proper to each query kind.
type pair struct{ a, b int }

func sortItems(items []HashItem) {
	sort.Slice(items, func(i, j int) bool { return items[i].Less(items[j]) })
}

// twoBucketJoin is the sort-and-scan two-bucket join of spec §4.7: for
// every (items0[i], items1[j]) pair sharing a cell key it emits (id0, id1)
// unless skip reports the pair adjacent/same-group or their AABBs don't
// actually overlap. Both buckets are sorted in place first.
func twoBucketJoin(items0, items1 []HashItem, skip func(a, b int) bool) []pair {
	sortItems(items0)
	sortItems(items1)

	var raw []pair
	pos := 0
	runStart, runEnd := 0, 0
	var curKey int64
	haveKey := false

	for i := range items0 {
		key := items0[i].Key
		if !haveKey || key != curKey {
			for pos < len(items1) && items1[pos].Key < key {
				pos++
			}
			runStart = pos
			runEnd = runStart
			for runEnd < len(items1) && items1[runEnd].Key == key {
				runEnd++
			}
			pos = runEnd
			curKey = key
			haveKey = true
		}

		for j := runStart; j < runEnd; j++ {
			a, b := items0[i].ID, items1[j].ID
			if skip(a, b) {
				continue
			}
			if !geometry.Overlap(items0[i].AABB, items1[j].AABB) {
				continue
			}
			raw = append(raw, pair{a, b})
		}
	}
	return raw
}

// selfJoin is the single-bucket self-join of spec §4.7 (edge-edge): sorted
// once, each item scans forward while the key matches, emitting (i, j)
// with id_i < id_j.
func selfJoin(items []HashItem, skip func(a, b int) bool) []pair {
	sortItems(items)

	var raw []pair
	for i := range items {
		for j := i + 1; j < len(items) && items[j].Key == items[i].Key; j++ {
			a, b := items[i].ID, items[j].ID
			lo, hi := a, b
			if lo > hi {
				lo, hi = hi, lo
			}
			if skip(lo, hi) {
				continue
			}
			if !geometry.Overlap(items[i].AABB, items[j].AABB) {
				continue
			}
			raw = append(raw, pair{lo, hi})
		}
	}
	return raw
}

// lesser is the ordering contract every candidate type in package
// candidate satisfies, letting sortDedup work uniformly across all four
// query kinds.
type lesser[T any] interface {
	Less(T) bool
}

// sortDedup sorts items by Less and removes consecutive duplicates — two
// items compare equal iff neither is Less than the other.
func sortDedup[T lesser[T]](items []T) []T {
	sort.Slice(items, func(i, j int) bool { return items[i].Less(items[j]) })
	if len(items) == 0 {
		return items
	}
	out := items[:1]
	for _, it := range items[1:] {
		last := out[len(out)-1]
		if last.Less(it) || it.Less(last) {
			out = append(out, it)
		}
	}
	return out
}

// sameGroup reports whether a and b's group labels are both present and
// equal. Empty groupIDs disables the filter entirely (spec §4.7).
func sameGroup(groupIDs []int, a, b int) bool {
	return len(groupIDs) > 0 && groupIDs[a] == groupIDs[b]
}

// VertexEdgePairs appends the candidate (edge, vertex) pairs — vertices
// whose swept AABB overlaps an edge's swept AABB, excluding the edge's own
// endpoints and same-group vertices — onto out and returns the grown slice,
// sorted and duplicate-free.
func (g *HashGrid) VertexEdgePairs(edges [][2]int, groupIDs []int, out []candidate.EdgeVertexCandidate) []candidate.EdgeVertexCandidate {
	raw := twoBucketJoin(g.edgeItems, g.vertexItems, func(edgeID, vertexID int) bool {
		e := edges[edgeID]
		if vertexID == e[0] || vertexID == e[1] {
			return true
		}
		return sameGroup(groupIDs, vertexID, e[0]) || sameGroup(groupIDs, vertexID, e[1])
	})

	for _, p := range raw {
		out = append(out, candidate.EdgeVertexCandidate{EdgeID: p.a, VertexID: p.b})
	}
	return sortDedup(out)
}

// EdgeEdgePairs appends the candidate (edge_i, edge_j) pairs, i < j,
// excluding edges sharing an endpoint or a group.
func (g *HashGrid) EdgeEdgePairs(edges [][2]int, groupIDs []int, out []candidate.EdgeEdgeCandidate) []candidate.EdgeEdgeCandidate {
	raw := selfJoin(g.edgeItems, func(edgeI, edgeJ int) bool {
		ei, ej := edges[edgeI], edges[edgeJ]
		for _, a := range ei {
			for _, b := range ej {
				if a == b || sameGroup(groupIDs, a, b) {
					return true
				}
			}
		}
		return false
	})

	for _, p := range raw {
		out = append(out, candidate.EdgeEdgeCandidate{EdgeI: p.a, EdgeJ: p.b})
	}
	return sortDedup(out)
}

// EdgeFacePairs appends the candidate (edge, face) pairs, excluding pairs
// that share a vertex or a group.
func (g *HashGrid) EdgeFacePairs(edges [][2]int, faces [][3]int, groupIDs []int, out []candidate.EdgeFaceCandidate) []candidate.EdgeFaceCandidate {
	raw := twoBucketJoin(g.edgeItems, g.faceItems, func(edgeID, faceID int) bool {
		e, f := edges[edgeID], faces[faceID]
		for _, a := range e {
			for _, b := range f {
				if a == b || sameGroup(groupIDs, a, b) {
					return true
				}
			}
		}
		return false
	})

	for _, p := range raw {
		out = append(out, candidate.EdgeFaceCandidate{EdgeID: p.a, FaceID: p.b})
	}
	return sortDedup(out)
}

// FaceVertexPairs appends the candidate (face, vertex) pairs, excluding a
// vertex that is a corner of the face or shares its group.
func (g *HashGrid) FaceVertexPairs(faces [][3]int, groupIDs []int, out []candidate.FaceVertexCandidate) []candidate.FaceVertexCandidate {
	raw := twoBucketJoin(g.faceItems, g.vertexItems, func(faceID, vertexID int) bool {
		f := faces[faceID]
		for _, c := range f {
			if vertexID == c || sameGroup(groupIDs, vertexID, c) {
				return true
			}
		}
		return false
	})

	for _, p := range raw {
		out = append(out, candidate.FaceVertexCandidate{FaceID: p.a, VertexID: p.b})
	}
	return sortDedup(out)
}

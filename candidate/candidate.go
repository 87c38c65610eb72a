// Package candidate holds the output types of the broad-phase: one type per
// element-pair kind, each an unordered tuple of two element ids whose
// swept AABBs overlap. This mirrors how the teacher keeps the narrow-phase
// output types (ContactConstraint, ContactPoint) in their own package
// (constraint) instead of the root package.
package candidate

// EdgeVertexCandidate is a candidate edge-vertex pair: (EdgeID, VertexID).
type EdgeVertexCandidate struct {
	EdgeID   int
	VertexID int
}

// Less orders candidates first by EdgeID, then by VertexID, matching the
// HashItem ordering rule (ascending key, ties broken by ascending id) so the
// same sort/dedup logic in the extractor applies uniformly to every kind.
func (c EdgeVertexCandidate) Less(other EdgeVertexCandidate) bool {
	if c.EdgeID != other.EdgeID {
		return c.EdgeID < other.EdgeID
	}
	return c.VertexID < other.VertexID
}

// EdgeEdgeCandidate is a candidate edge-edge pair, with EdgeI < EdgeJ.
type EdgeEdgeCandidate struct {
	EdgeI int
	EdgeJ int
}

func (c EdgeEdgeCandidate) Less(other EdgeEdgeCandidate) bool {
	if c.EdgeI != other.EdgeI {
		return c.EdgeI < other.EdgeI
	}
	return c.EdgeJ < other.EdgeJ
}

// EdgeFaceCandidate is a candidate edge-face pair: (EdgeID, FaceID).
type EdgeFaceCandidate struct {
	EdgeID int
	FaceID int
}

func (c EdgeFaceCandidate) Less(other EdgeFaceCandidate) bool {
	if c.EdgeID != other.EdgeID {
		return c.EdgeID < other.EdgeID
	}
	return c.FaceID < other.FaceID
}

// FaceVertexCandidate is a candidate face-vertex pair: (FaceID, VertexID).
type FaceVertexCandidate struct {
	FaceID   int
	VertexID int
}

func (c FaceVertexCandidate) Less(other FaceVertexCandidate) bool {
	if c.FaceID != other.FaceID {
		return c.FaceID < other.FaceID
	}
	return c.VertexID < other.VertexID
}

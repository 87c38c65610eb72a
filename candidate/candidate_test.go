package candidate

import "testing"

func TestEdgeVertexCandidateLess(t *testing.T) {
	tests := []struct {
		name string
		a, b EdgeVertexCandidate
		want bool
	}{
		{"lower edge", EdgeVertexCandidate{0, 5}, EdgeVertexCandidate{1, 0}, true},
		{"same edge, lower vertex", EdgeVertexCandidate{2, 1}, EdgeVertexCandidate{2, 3}, true},
		{"equal", EdgeVertexCandidate{2, 1}, EdgeVertexCandidate{2, 1}, false},
		{"higher edge", EdgeVertexCandidate{3, 0}, EdgeVertexCandidate{1, 9}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Less(tt.b); got != tt.want {
				t.Errorf("Less() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEdgeEdgeCandidateLess(t *testing.T) {
	a := EdgeEdgeCandidate{EdgeI: 1, EdgeJ: 2}
	b := EdgeEdgeCandidate{EdgeI: 1, EdgeJ: 3}
	if !a.Less(b) {
		t.Errorf("expected a < b")
	}
	if b.Less(a) {
		t.Errorf("expected b not < a")
	}
}

func TestEdgeFaceCandidateLess(t *testing.T) {
	a := EdgeFaceCandidate{EdgeID: 0, FaceID: 4}
	b := EdgeFaceCandidate{EdgeID: 0, FaceID: 5}
	if !a.Less(b) {
		t.Errorf("expected a < b")
	}
}

func TestFaceVertexCandidateLess(t *testing.T) {
	a := FaceVertexCandidate{FaceID: 2, VertexID: 0}
	b := FaceVertexCandidate{FaceID: 2, VertexID: 1}
	if !a.Less(b) {
		t.Errorf("expected a < b")
	}
	if a.Less(a) {
		t.Errorf("a should not be less than itself")
	}
}

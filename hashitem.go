package sweephash

import "github.com/AlexTru96/sweephash/geometry"

// HashItem is one (cell-key, element-id, AABB) entry in a HashGrid bucket.
// The AABB travels with the item so the pair extractor can run the exact
// box-overlap test without a second lookup back into the caller's mesh.
type HashItem struct {
	Key  int64
	ID   int
	AABB geometry.AABB
}

// Less orders items ascending by Key, ties broken by ascending ID — the
// HashGrid's total order, used when the pair extractor sorts buckets before
// its same-cell scan (the scan itself compares keys only).
func (h HashItem) Less(other HashItem) bool {
	if h.Key != other.Key {
		return h.Key < other.Key
	}
	return h.ID < other.ID
}

package models

import "encoding/json"

// DescriptorPair is an ordered pair of matched descriptors, left first.
// It serializes as a two-element JSON array to keep the output format
// stable for scripting consumers.
type DescriptorPair struct {
	Left  *FileDescriptor
	Right *FileDescriptor
}

// MarshalJSON encodes the pair as [left, right].
func (p DescriptorPair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]*FileDescriptor{p.Left, p.Right})
}

// UnmarshalJSON decodes a [left, right] array.
func (p *DescriptorPair) UnmarshalJSON(data []byte) error {
	var arr [2]*FileDescriptor
	if err := json.Unmarshal(data, &arr); err != nil {
		return err
	}
	p.Left, p.Right = arr[0], arr[1]
	return nil
}

// ComparisonResult is the outcome of comparing two trees: three mappings
// from equivalence key to descriptor(s). The key sets are pairwise
// disjoint, and every key observed in either tree appears in exactly one
// of the three maps. The result owns its descriptors; nothing is mutated
// after the comparison completes.
type ComparisonResult struct {
	// Left holds keys present in the left tree only
	Left map[string]*FileDescriptor `json:"left"`

	// Right holds keys present in the right tree only
	Right map[string]*FileDescriptor `json:"right"`

	// Same holds keys present in both trees
	Same map[string]DescriptorPair `json:"same"`
}

// NewComparisonResult returns a result with empty, non-nil mappings.
func NewComparisonResult() *ComparisonResult {
	return &ComparisonResult{
		Left:  make(map[string]*FileDescriptor),
		Right: make(map[string]*FileDescriptor),
		Same:  make(map[string]DescriptorPair),
	}
}

// Keys returns the total number of distinct keys across the three maps.
func (r *ComparisonResult) Keys() int {
	return len(r.Left) + len(r.Right) + len(r.Same)
}

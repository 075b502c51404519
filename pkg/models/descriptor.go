package models

// FileDescriptor holds the attributes computed for a single regular file.
// Only the attributes enabled in CompareOptions are populated; the JSON
// encoding omits the rest. Descriptors are never mutated after construction.
type FileDescriptor struct {
	// Path is the file location relative to its tree root, slash-separated
	// regardless of platform. Empty when path comparison is disabled.
	Path string `json:"path,omitempty"`

	// Size is the file length in bytes. Nil when size comparison is
	// disabled; a pointer so that zero-byte files still serialize.
	Size *int64 `json:"size,omitempty"`

	// Hash is the lowercase hex MD5 digest of the full file content.
	// Empty when hash comparison is disabled.
	Hash string `json:"hash,omitempty"`
}

// Key returns the value of the descriptor's equivalence key attribute.
// The hash takes precedence over the path when both were computed.
func (d *FileDescriptor) Key(opts CompareOptions) string {
	if opts.Hash {
		return d.Hash
	}
	return d.Path
}

// SizeValue returns the size attribute, or -1 when it was not computed.
func (d *FileDescriptor) SizeValue() int64 {
	if d.Size == nil {
		return -1
	}
	return *d.Size
}

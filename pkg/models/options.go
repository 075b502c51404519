package models

// KeyAttribute identifies which descriptor attribute acts as the
// equivalence key between the two trees.
type KeyAttribute string

const (
	// KeyPath matches files by their root-relative path
	KeyPath KeyAttribute = "path"
	// KeyHash matches files by their content hash
	KeyHash KeyAttribute = "hash"
)

// CompareOptions selects which file attributes are computed during
// indexing. At least one of Path or Hash must be enabled; Size is always
// informational and never participates in the equivalence key.
type CompareOptions struct {
	// Path enables relative path computation
	Path bool
	// Size enables file size computation
	Size bool
	// Hash enables MD5 content hashing
	Hash bool
}

// Validate checks the option invariant: a descriptor without path and
// hash has no usable equivalence key.
func (o CompareOptions) Validate() error {
	if !o.Path && !o.Hash {
		return &InvalidArgumentError{
			Field:   "options",
			Message: "at least one of path or hash comparison must be enabled",
		}
	}
	return nil
}

// KeyAttribute returns the attribute used as the equivalence key.
// Hash keying wins whenever hashing is enabled.
func (o CompareOptions) KeyAttribute() KeyAttribute {
	if o.Hash {
		return KeyHash
	}
	return KeyPath
}

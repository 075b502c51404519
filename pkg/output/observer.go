package output

// Observer receives progress events while a tree is being indexed. It is
// purely informational: implementations must not influence the
// comparison outcome.
type Observer interface {
	// TreeStart announces that a tree walk is about to begin.
	// total is the number of regular files discovered under root.
	TreeStart(label, root string, total int)

	// File announces a file path immediately before its descriptor is
	// computed, so the last announced path is the one being processed
	// when a failure occurs.
	File(path string)

	// TreeDone announces that every file of the current tree has been
	// processed.
	TreeDone()
}

// NullObserver discards all progress events. Used in silent modes.
type NullObserver struct{}

// NewNullObserver creates a no-op observer
func NewNullObserver() *NullObserver {
	return &NullObserver{}
}

// TreeStart does nothing
func (o *NullObserver) TreeStart(label, root string, total int) {}

// File does nothing
func (o *NullObserver) File(path string) {}

// TreeDone does nothing
func (o *NullObserver) TreeDone() {}

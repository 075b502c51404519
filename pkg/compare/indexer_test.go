package compare

import (
	"context"
	"sync"
	"testing"

	"github.com/Gavin1937/dirComp/pkg/models"
)

// recordingObserver captures progress events for assertions
type recordingObserver struct {
	mu     sync.Mutex
	label  string
	total  int
	files  []string
	done   bool
	builds []string
}

func (o *recordingObserver) TreeStart(label, root string, total int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.label = label
	o.total = total
}

func (o *recordingObserver) File(path string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.files = append(o.files, path)
}

func (o *recordingObserver) TreeDone() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.done = true
}

func TestIndexerAnnouncesBeforeProcessing(t *testing.T) {
	h := NewTestHelper(t)
	defer h.Cleanup()
	h.CreateLeftFile("b.txt", []byte("b"))
	h.CreateLeftFile("a.txt", []byte("a"))
	h.CreateLeftFile("sub/c.txt", []byte("c"))

	backend := leftBackend(t, h)
	opts := models.CompareOptions{Path: true}
	obs := &recordingObserver{}

	ix := NewIndexer(backend, NewBuilder(backend, opts, 4096), obs, "left", 1)

	var processed []string
	_, err := ix.Stream(context.Background(), func(desc *models.FileDescriptor) error {
		// At the moment a descriptor is delivered, its path must have
		// already been announced.
		obs.mu.Lock()
		announced := len(obs.files)
		obs.mu.Unlock()
		processed = append(processed, desc.Path)
		if announced < len(processed) {
			t.Errorf("descriptor %q delivered before announcement", desc.Path)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Stream failed: %v", err)
	}

	if obs.label != "left" || obs.total != 3 || !obs.done {
		t.Errorf("observer state: label=%q total=%d done=%v", obs.label, obs.total, obs.done)
	}

	want := []string{"a.txt", "b.txt", "sub/c.txt"}
	if len(processed) != len(want) {
		t.Fatalf("processed %v, want %v", processed, want)
	}
	for i := range want {
		if processed[i] != want[i] {
			t.Errorf("processed[%d] = %s, want %s (lexicographic order)", i, processed[i], want[i])
		}
	}
}

func TestIndexerParallelPreservesOrder(t *testing.T) {
	h := NewTestHelper(t)
	defer h.Cleanup()
	h.CreateLeftFile("c.txt", []byte("c"))
	h.CreateLeftFile("a.txt", []byte("a"))
	h.CreateLeftFile("b.txt", []byte("b"))

	backend := leftBackend(t, h)
	opts := models.CompareOptions{Path: true, Hash: true}

	ix := NewIndexer(backend, NewBuilder(backend, opts, 4096), nil, "left", 4)
	descs, err := ix.Descriptors(context.Background())
	if err != nil {
		t.Fatalf("Descriptors failed: %v", err)
	}

	want := []string{"a.txt", "b.txt", "c.txt"}
	if len(descs) != len(want) {
		t.Fatalf("got %d descriptors, want %d", len(descs), len(want))
	}
	for i := range want {
		if descs[i].Path != want[i] {
			t.Errorf("descs[%d].Path = %s, want %s", i, descs[i].Path, want[i])
		}
	}
}

func TestIndexerParallelAnnouncementOrder(t *testing.T) {
	h := NewTestHelper(t)
	defer h.Cleanup()

	want := make([]string, 0, 20)
	for i := 0; i < 20; i++ {
		name := string(rune('a'+i)) + ".txt"
		h.CreateLeftFile(name, []byte(name))
		want = append(want, name)
	}

	backend := leftBackend(t, h)
	opts := models.CompareOptions{Path: true, Hash: true}
	obs := &recordingObserver{}

	ix := NewIndexer(backend, NewBuilder(backend, opts, 4096), obs, "left", 4)
	if _, err := ix.Descriptors(context.Background()); err != nil {
		t.Fatalf("Descriptors failed: %v", err)
	}

	// Workers may finish builds in any order, but files are announced in
	// traversal order from the dispatch loop.
	if len(obs.files) != len(want) {
		t.Fatalf("announced %d files, want %d", len(obs.files), len(want))
	}
	for i := range want {
		if obs.files[i] != want[i] {
			t.Errorf("announced[%d] = %s, want %s", i, obs.files[i], want[i])
		}
	}
}

func TestIndexerDuplicateKeyLastSeenWins(t *testing.T) {
	h := NewTestHelper(t)
	defer h.Cleanup()
	h.CreateLeftFile("first.txt", []byte("same"))
	h.CreateLeftFile("second.txt", []byte("same"))

	backend := leftBackend(t, h)
	opts := models.CompareOptions{Path: true, Hash: true}

	ix := NewIndexer(backend, NewBuilder(backend, opts, 4096), nil, "left", 1)
	index, count, err := ix.Index(context.Background())
	if err != nil {
		t.Fatalf("Index failed: %v", err)
	}

	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
	if len(index) != 1 {
		t.Fatalf("index has %d keys, want 1 (duplicates collapse)", len(index))
	}

	desc := index[md5Hex([]byte("same"))]
	if desc == nil {
		t.Fatal("index missing hash key")
	}
	if desc.Path != "second.txt" {
		t.Errorf("surviving descriptor = %q, want last-seen second.txt", desc.Path)
	}
}

func TestIndexerEmptyTree(t *testing.T) {
	h := NewTestHelper(t)
	defer h.Cleanup()

	backend := leftBackend(t, h)
	opts := models.CompareOptions{Path: true}

	ix := NewIndexer(backend, NewBuilder(backend, opts, 4096), nil, "left", 1)
	index, count, err := ix.Index(context.Background())
	if err != nil {
		t.Fatalf("Index failed: %v", err)
	}
	if count != 0 || len(index) != 0 {
		t.Errorf("count=%d keys=%d, want both 0", count, len(index))
	}
}

package compare

import (
	"context"
	"io"
	"testing"

	"github.com/Gavin1937/dirComp/pkg/models"
	"github.com/Gavin1937/dirComp/pkg/storage"
)

func leftBackend(t *testing.T, h *TestHelper) *storage.Local {
	t.Helper()
	backend, err := storage.NewLocal(h.leftDir)
	if err != nil {
		t.Fatalf("failed to create backend: %v", err)
	}
	return backend
}

func TestBuildComputesOnlyEnabledAttributes(t *testing.T) {
	h := NewTestHelper(t)
	defer h.Cleanup()
	h.CreateLeftFile("sub/data.txt", []byte("hello"))

	backend := leftBackend(t, h)
	files, err := backend.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("got %d files, want 1", len(files))
	}

	tests := []struct {
		name     string
		opts     models.CompareOptions
		wantPath string
		wantSize int64
		wantHash string
	}{
		{
			"path only",
			models.CompareOptions{Path: true},
			"sub/data.txt", -1, "",
		},
		{
			"path and size",
			models.CompareOptions{Path: true, Size: true},
			"sub/data.txt", 5, "",
		},
		{
			"hash only",
			models.CompareOptions{Hash: true},
			"", -1, md5Hex([]byte("hello")),
		},
		{
			"everything",
			models.CompareOptions{Path: true, Size: true, Hash: true},
			"sub/data.txt", 5, md5Hex([]byte("hello")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			builder := NewBuilder(backend, tt.opts, 4096)
			desc, err := builder.Build(context.Background(), files[0])
			if err != nil {
				t.Fatalf("Build failed: %v", err)
			}
			if desc.Path != tt.wantPath {
				t.Errorf("path = %q, want %q", desc.Path, tt.wantPath)
			}
			if desc.SizeValue() != tt.wantSize {
				t.Errorf("size = %d, want %d", desc.SizeValue(), tt.wantSize)
			}
			if desc.Hash != tt.wantHash {
				t.Errorf("hash = %q, want %q", desc.Hash, tt.wantHash)
			}
		})
	}
}

func TestBuildRejectsOutOfRootFile(t *testing.T) {
	h := NewTestHelper(t)
	defer h.Cleanup()

	backend := leftBackend(t, h)
	builder := NewBuilder(backend, models.CompareOptions{Path: true}, 4096)

	// A mismatched root/file pair cannot happen through normal
	// traversal; the builder still guards the invariant.
	_, err := builder.Build(context.Background(), storage.FileInfo{
		Path:         "/somewhere/else/file.txt",
		RelativePath: "../else/file.txt",
	})
	if err == nil {
		t.Fatal("expected error for out-of-root file")
	}
	if !models.IsInvalidArgument(err) {
		t.Errorf("expected InvalidArgumentError, got %T: %v", err, err)
	}
}

func TestBuildVanishedFile(t *testing.T) {
	h := NewTestHelper(t)
	defer h.Cleanup()
	h.CreateLeftFile("ghost.txt", []byte("boo"))

	backend := leftBackend(t, h)
	files, err := backend.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	// Simulate a filesystem race: the file disappears between
	// discovery and descriptor computation.
	h.Cleanup()

	tests := []struct {
		name string
		opts models.CompareOptions
	}{
		{"path of vanished file", models.CompareOptions{Path: true}},
		{"size of vanished file", models.CompareOptions{Path: true, Size: true}},
		{"hash of vanished file", models.CompareOptions{Hash: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			builder := NewBuilder(backend, tt.opts, 4096)
			_, err := builder.Build(context.Background(), files[0])
			if err == nil {
				t.Fatal("expected error for vanished file")
			}
			if !models.IsNotFound(err) {
				t.Errorf("expected NotFoundError, got %T: %v", err, err)
			}
		})
	}
}

func TestBuildHashUsesReaderWrapper(t *testing.T) {
	h := NewTestHelper(t)
	defer h.Cleanup()
	h.CreateLeftFile("data.txt", []byte("wrap me"))

	backend := leftBackend(t, h)
	files, err := backend.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	wrapped := false
	builder := NewBuilder(backend, models.CompareOptions{Hash: true}, 4096)
	builder.SetReaderWrapper(func(r io.Reader) io.Reader {
		wrapped = true
		return r
	})

	desc, err := builder.Build(context.Background(), files[0])
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !wrapped {
		t.Error("reader wrapper was not applied")
	}
	if desc.Hash != md5Hex([]byte("wrap me")) {
		t.Errorf("identity wrapper changed the digest: %s", desc.Hash)
	}
}

func TestBuildHashChunkedReadsMatchWholeFile(t *testing.T) {
	// A buffer smaller than the file forces multiple reads; the digest
	// must not depend on chunking.
	h := NewTestHelper(t)
	defer h.Cleanup()

	content := make([]byte, 100*1024)
	for i := range content {
		content[i] = byte(i % 251)
	}
	h.CreateLeftFile("big.bin", content)

	backend := leftBackend(t, h)
	files, err := backend.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	builder := NewBuilder(backend, models.CompareOptions{Hash: true}, 4096)
	desc, err := builder.Build(context.Background(), files[0])
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if desc.Hash != md5Hex(content) {
		t.Errorf("chunked hash = %s, want %s", desc.Hash, md5Hex(content))
	}
	if len(desc.Hash) != 32 {
		t.Errorf("hash length = %d, want 32 hex chars", len(desc.Hash))
	}
}

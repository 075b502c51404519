package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/Gavin1937/dirComp/pkg/models"
)

func sampleReport() *models.CompareReport {
	size := int64(2)
	result := models.NewComparisonResult()
	result.Left["b.txt"] = &models.FileDescriptor{Path: "b.txt", Size: &size}
	result.Right["c.txt"] = &models.FileDescriptor{Path: "c.txt"}
	result.Same["a.txt"] = models.DescriptorPair{
		Left:  &models.FileDescriptor{Path: "a.txt"},
		Right: &models.FileDescriptor{Path: "a.txt"},
	}

	return &models.CompareReport{
		RunID:      "test-run",
		LeftRoot:   "/tmp/left",
		RightRoot:  "/tmp/right",
		Options:    models.CompareOptions{Path: true},
		Duration:   1500 * time.Millisecond,
		LeftFiles:  2,
		RightFiles: 2,
		Result:     result,
	}
}

func TestConsoleObserver(t *testing.T) {
	var buf bytes.Buffer
	obs := NewConsoleObserver(&buf)

	obs.TreeStart("left", "/tmp/left", 2)
	obs.File("/tmp/left/a.txt")
	obs.File("/tmp/left/b.txt")
	obs.TreeDone()

	out := buf.String()
	if !strings.Contains(out, "Analyzing left tree: /tmp/left (2 files)") {
		t.Errorf("missing header: %q", out)
	}

	// Paths appear in announcement order
	ia := strings.Index(out, "a.txt")
	ib := strings.Index(out, "b.txt")
	if ia == -1 || ib == -1 || ia > ib {
		t.Errorf("paths missing or out of order: %q", out)
	}
}

func TestNullObserverIsSilent(t *testing.T) {
	obs := NewNullObserver()
	obs.TreeStart("left", "/root", 10)
	obs.File("/root/a.txt")
	obs.TreeDone()
	// nothing to assert: it must simply not panic or print
}

func TestWriteJSONShape(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleReport().Result); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}

	var decoded struct {
		Left  map[string]models.FileDescriptor   `json:"left"`
		Right map[string]models.FileDescriptor   `json:"right"`
		Same  map[string][]models.FileDescriptor `json:"same"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if len(decoded.Left) != 1 || len(decoded.Right) != 1 || len(decoded.Same) != 1 {
		t.Errorf("unexpected shape: %+v", decoded)
	}
	if pair := decoded.Same["a.txt"]; len(pair) != 2 {
		t.Errorf("same entry should be a two-element array, got %v", pair)
	}
}

func TestWriteJSONFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "result.json")

	if err := WriteJSONFile(path, sampleReport().Result); err != nil {
		t.Fatalf("WriteJSONFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	var decoded models.ComparisonResult
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output file is not valid JSON: %v", err)
	}
	if len(decoded.Left) != 1 {
		t.Errorf("unexpected content: %+v", decoded)
	}

	// No leftover temp files
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the output file in %s, found %d entries", dir, len(entries))
	}
}

func TestHumanWriterSections(t *testing.T) {
	// Disable color so assertions see plain text
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	var buf bytes.Buffer
	if err := NewHumanWriter(&buf).Write(sampleReport()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Only in left tree (1):",
		"Only in right tree (1):",
		"In both trees (1):",
		"b.txt (size=2)",
		"c.txt",
		"a.txt",
		"Summary: 1 left-only, 1 right-only, 1 matched (4 files scanned in 1.5s)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

package output

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/fatih/color"

	"github.com/Gavin1937/dirComp/pkg/models"
)

// HumanWriter renders a comparison report for terminal reading: the
// three sections with sorted keys, then a summary line.
type HumanWriter struct {
	writer    io.Writer
	leftOnly  *color.Color
	rightOnly *color.Color
	matched   *color.Color
}

// NewHumanWriter creates a human-readable report writer. Color output
// follows the fatih/color global switches (NO_COLOR, piped output).
func NewHumanWriter(w io.Writer) *HumanWriter {
	return &HumanWriter{
		writer:    w,
		leftOnly:  color.New(color.FgRed),
		rightOnly: color.New(color.FgYellow),
		matched:   color.New(color.FgGreen),
	}
}

// Write renders the full report
func (hw *HumanWriter) Write(report *models.CompareReport) error {
	result := report.Result

	fmt.Fprintf(hw.writer, "Comparison of %s and %s (key: %s)\n\n",
		report.LeftRoot, report.RightRoot, report.Options.KeyAttribute())

	hw.section("Only in left tree", result.Left, hw.leftOnly)
	hw.section("Only in right tree", result.Right, hw.rightOnly)
	hw.pairSection("In both trees", result.Same, hw.matched)

	fmt.Fprintf(hw.writer, "Summary: %d left-only, %d right-only, %d matched (%d files scanned in %s)\n",
		len(result.Left), len(result.Right), len(result.Same),
		report.LeftFiles+report.RightFiles,
		report.Duration.Round(time.Millisecond))

	return nil
}

func (hw *HumanWriter) section(title string, entries map[string]*models.FileDescriptor, c *color.Color) {
	fmt.Fprintf(hw.writer, "%s (%d):\n", title, len(entries))
	for _, key := range sortedKeys(entries) {
		c.Fprintf(hw.writer, "  %s%s\n", key, describe(entries[key], key))
	}
	fmt.Fprintln(hw.writer)
}

func (hw *HumanWriter) pairSection(title string, entries map[string]models.DescriptorPair, c *color.Color) {
	fmt.Fprintf(hw.writer, "%s (%d):\n", title, len(entries))

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		pair := entries[key]
		l := details(pair.Left, key)
		r := details(pair.Right, key)
		if l == "" && r == "" {
			c.Fprintf(hw.writer, "  %s\n", key)
			continue
		}
		c.Fprintf(hw.writer, "  %s %s | %s\n", key, orDash(l), orDash(r))
	}
	fmt.Fprintln(hw.writer)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// describe renders the descriptor attributes not already shown as the key
func describe(desc *models.FileDescriptor, key string) string {
	s := details(desc, key)
	if s == "" {
		return ""
	}
	return " " + s
}

func details(desc *models.FileDescriptor, key string) string {
	var out string
	if desc.Path != "" && desc.Path != key {
		out += fmt.Sprintf("path=%s ", desc.Path)
	}
	if desc.Size != nil {
		out += fmt.Sprintf("size=%d ", *desc.Size)
	}
	if desc.Hash != "" && desc.Hash != key {
		out += fmt.Sprintf("hash=%s ", desc.Hash)
	}
	if out == "" {
		return ""
	}
	return "(" + out[:len(out)-1] + ")"
}

func sortedKeys(m map[string]*models.FileDescriptor) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

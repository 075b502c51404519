package output

import (
	"fmt"
	"io"
	"os"
)

// ConsoleObserver prints each processed file path as it is announced,
// mirroring the tool's original line-per-file progress output.
type ConsoleObserver struct {
	writer io.Writer
}

// NewConsoleObserver creates an observer printing to w (stdout if nil)
func NewConsoleObserver(w io.Writer) *ConsoleObserver {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleObserver{writer: w}
}

// TreeStart prints the tree header
func (o *ConsoleObserver) TreeStart(label, root string, total int) {
	fmt.Fprintf(o.writer, "Analyzing %s tree: %s (%d files)\n", label, root, total)
}

// File prints the announced path
func (o *ConsoleObserver) File(path string) {
	fmt.Fprintln(o.writer, path)
}

// TreeDone prints a separating blank line
func (o *ConsoleObserver) TreeDone() {
	fmt.Fprintln(o.writer)
}

package output

import (
	"fmt"
	"io"
	"os"

	"github.com/cheggaaa/pb/v3"
	"golang.org/x/term"
)

// BarObserver renders tree walk progress as a terminal progress bar.
// One bar per tree: created on TreeStart, advanced per announced file,
// finished on TreeDone. Increment is safe from worker goroutines.
type BarObserver struct {
	writer io.Writer
	width  int
	bar    *pb.ProgressBar
}

// NewBarObserver creates a progress bar observer writing to w (stdout
// if nil). The bar width tracks the terminal when one is attached.
func NewBarObserver(w io.Writer) *BarObserver {
	if w == nil {
		w = os.Stdout
	}

	width := 0
	if file, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(int(file.Fd())); err == nil && tw > 0 {
			width = tw
		}
	}

	return &BarObserver{writer: w, width: width}
}

// TreeStart prints the tree header and starts a fresh bar
func (o *BarObserver) TreeStart(label, root string, total int) {
	fmt.Fprintf(o.writer, "Analyzing %s tree: %s (%d files)\n", label, root, total)

	o.bar = pb.New(total)
	o.bar.SetWriter(o.writer)
	if o.width > 0 {
		o.bar.SetMaxWidth(o.width)
	}
	o.bar.Start()
}

// File advances the bar by one file
func (o *BarObserver) File(path string) {
	if o.bar != nil {
		o.bar.Increment()
	}
}

// TreeDone finishes the current bar
func (o *BarObserver) TreeDone() {
	if o.bar != nil {
		o.bar.Finish()
		o.bar = nil
	}
	fmt.Fprintln(o.writer)
}

// IsTerminal reports whether w is attached to an interactive terminal.
// Used to decide between bar and line-per-file progress.
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

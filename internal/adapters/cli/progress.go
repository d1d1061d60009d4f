package cli

import (
	"fmt"
	"io"
	"sync"
)

// ProgressPrinter writes one line per processed file.
type ProgressPrinter struct {
	mu sync.Mutex
	w  io.Writer
}

func NewProgressPrinter(w io.Writer) *ProgressPrinter {
	return &ProgressPrinter{w: w}
}

func (p *ProgressPrinter) Report(current, total int, fileName string) {
	pct := 100
	if total > 0 {
		pct = current * 100 / total
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.w, "Processing: %d of %d - %s (%d%%)\n", current, total, fileName, pct)
}

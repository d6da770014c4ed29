package commands

import (
	"fmt"
	"io"
	"sync"
)

// progressBar renders upload progress on a single terminal line.
// A nil *progressBar ignores every call.
type progressBar struct {
	mu      sync.Mutex
	w       io.Writer
	label   string
	started bool
}

func newProgressBar(w io.Writer, label string) *progressBar {
	return &progressBar{w: w, label: label}
}

const progressWidth = 30

// Update draws the bar at percent.
func (p *progressBar) Update(percent int) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	filled := percent * progressWidth / 100
	bar := make([]byte, progressWidth)
	for i := range bar {
		if i < filled {
			bar[i] = '='
		} else {
			bar[i] = ' '
		}
	}
	fmt.Fprintf(p.w, "\r%s [%s] %3d%%", p.label, bar, percent)
	p.started = true
}

// Done ends the progress line.
func (p *progressBar) Done() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		fmt.Fprintln(p.w)
		p.started = false
	}
}

package scanpro

import (
	"errors"
	"io"
	"sync"

	"scanpro/internal/core/domain"
)

var errProgressPanicked = errors.New("progress callback panicked")

// progressReader reports how much of the request body the transport has consumed.
// Percentages are only emitted when they grow, and never after stop.
type progressReader struct {
	r          io.Reader
	total      int64
	onProgress domain.ProgressFunc

	mu       sync.Mutex
	sent     int64
	last     int
	stopped  bool
	panicked bool
}

func newProgressReader(r io.Reader, total int64, onProgress domain.ProgressFunc) *progressReader {
	return &progressReader{r: r, total: total, onProgress: onProgress, last: -1}
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		if rerr := p.report(int64(n)); rerr != nil {
			return n, rerr
		}
	}
	return n, err
}

func (p *progressReader) report(n int64) (err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.sent += n
	if p.stopped || p.onProgress == nil {
		return nil
	}
	pct, ok := domain.Percent(p.sent, p.total)
	if !ok || pct <= p.last {
		return nil
	}
	p.last = pct

	// The callback runs on the transport's goroutine, a panic there must not escape.
	defer func() {
		if r := recover(); r != nil {
			p.panicked = true
			p.stopped = true
			err = errProgressPanicked
		}
	}()
	p.onProgress(pct)
	return nil
}

// stop prevents further callbacks and waits for a running one to return.
func (p *progressReader) stop() (panicked bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopped = true
	return p.panicked
}

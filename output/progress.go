package output

import (
	"fmt"
	"io"
	"sync"
)

// Reporter streams per-port progress lines to a sink distinct from the primary
// result channel. Writes are unbuffered and serialized, so a consumer tailing
// the sink observes each event as soon as it occurs.
type Reporter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewReporter returns a Reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Scanning announces that host:port is about to be probed. index is 1-based
// within the requested range.
func (r *Reporter) Scanning(host string, port, index, total int) {
	r.mu.Lock()
	fmt.Fprintf(r.w, "scanning %s:%d (%d/%d)\n", host, port, index, total)
	r.mu.Unlock()
}

// Open announces that the probe of port succeeded.
func (r *Reporter) Open(port int) {
	r.mu.Lock()
	fmt.Fprintf(r.w, "open %d\n", port)
	r.mu.Unlock()
}

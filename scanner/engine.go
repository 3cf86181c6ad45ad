package scanner

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"golang.org/x/time/rate"

	"portscan/logx"
	"portscan/target"
)

// Reporter receives per-port progress events while a scan is running.
type Reporter interface {
	// Scanning is called before each probe. index is 1-based within the range.
	Scanning(host string, port, index, total int)
	// Open is called immediately after a probe finds the port open.
	Open(port int)
}

// Config contains runtime configuration for the Engine.
type Config struct {
	// Workers is the number of concurrent probes. At 1 (the default) the scan
	// is fully sequential and progress events are strictly ascending by port;
	// above 1 cross-port event ordering is relaxed.
	Workers int
	// Rate caps probes per second across the whole pool. Zero or negative
	// disables pacing.
	Rate float64
}

// Engine drives probes across a requested port range and accumulates the open
// ports. Probe-level failures are absorbed; once started a scan only stops
// early if its context is cancelled.
type Engine struct {
	cfg     Config
	limiter *rate.Limiter
}

// NewEngine creates an Engine with the provided config.
func NewEngine(cfg Config) *Engine {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.Rate > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.Rate), 1)
	}
	return &Engine{cfg: cfg, limiter: limiter}
}

// Run scans req's port range, dispatching probes in ascending port order, and
// returns the open ports. Results are recorded into indexed slots, so the
// returned slice is ascending regardless of completion order; it is non-nil
// even when empty. Cancellation is checked between dispatches; in-flight
// probes still finish within their own timeout. The returned error is nil or
// the context's error.
func (e *Engine) Run(ctx context.Context, req target.Request, rep Reporter) ([]int, error) {
	total := req.Total()
	logx.Infof("scanning %s ports %d-%d (%d ports, workers=%d)", req.Host, req.Start, req.End, total, e.cfg.Workers)

	pool, err := ants.NewPool(e.cfg.Workers)
	if err != nil {
		return nil, fmt.Errorf("start worker pool: %w", err)
	}
	defer pool.Release()

	open := make([]bool, total)
	var wg sync.WaitGroup
	for i := 0; i < total; i++ {
		if ctx.Err() != nil {
			break
		}
		if err := e.limiter.Wait(ctx); err != nil {
			break
		}
		slot := i
		p := req.Start + i
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			rep.Scanning(req.Host, p, slot+1, total)
			if Probe(req.Host, p, req.Timeout) {
				rep.Open(p)
				open[slot] = true
			}
		})
		if err != nil {
			wg.Done()
			logx.Warnf("submit probe %s:%d: %v", req.Host, p, err)
			break
		}
	}
	wg.Wait()

	ports := make([]int, 0, total)
	for i, ok := range open {
		if ok {
			ports = append(ports, req.Start+i)
		}
	}
	logx.Infof("scan of %s finished: %d open", req.Host, len(ports))
	if err := ctx.Err(); err != nil {
		return ports, err
	}
	return ports, nil
}

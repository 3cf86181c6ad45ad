package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"portscan/logx"
	"portscan/output"
	"portscan/scanner"
	"portscan/target"
)

func main() {
	to := flag.Duration("t", target.DefaultTimeout, "per-probe connect timeout")
	workers := flag.Int("c", 1, "concurrent probes (1 = sequential scan)")
	probeRate := flag.Float64("rate", 100, "max probes per second across all workers (0 disables pacing)")
	fileOut := flag.String("f", "", "also write the final JSON line to this file (atomic)")
	verbose := flag.Bool("v", false, "verbose diagnostics on stderr")
	flag.Parse()

	logx.SetVerbose(*verbose)

	emitter := output.NewEmitter(os.Stdout)
	if *fileOut != "" {
		emitter.Mirror(*fileOut)
	}

	req, err := target.Parse(flag.Args())
	if err != nil {
		// Validation short-circuits: no probes, no progress lines.
		if werr := emitter.Failure(err.Error()); werr != nil {
			fmt.Fprintln(os.Stderr, werr)
		}
		os.Exit(2)
	}
	req.Timeout = *to

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eng := scanner.NewEngine(scanner.Config{Workers: *workers, Rate: *probeRate})
	ports, err := eng.Run(ctx, req, output.NewReporter(os.Stderr))
	if err != nil {
		// Interrupted mid-scan: the progress already streamed is the only
		// record of the work performed; the primary channel stays silent.
		logx.Warnf("scan interrupted: %v", err)
		os.Exit(1)
	}

	if err := emitter.Success(ports); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

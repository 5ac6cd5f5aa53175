package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sitecrawler/internal/crawler"
)

func main() {
	seed       := flag.String("seed", "", "initial URL to start crawling from (required)")
	out        := flag.String("out", "out", "directory for CSV and report output")
	maxPages   := flag.Int   ("maxPages", 10000, "stop admitting URLs after N discovered")
	depth      := flag.Int   ("depth", 16, "maximum link depth from the seed")
	workers    := flag.Int   ("workers", 7, "number of parallel fetchers")
	inflight   := flag.Int   ("maxInflight", 0, "max fetches in flight (0 = same as workers)")
	politeness := flag.Int   ("politeness", 200, "minimum gap between fetch dispatches (ms)")
	ua         := flag.String("userAgent", "SiteCrawler/1.0", "HTTP User-Agent string")
	timeout    := flag.Int   ("timeout", 15, "per-fetch timeout (sec)")
	site       := flag.String("site", "", "output file key (default: seed host without www.)")
	metrics    := flag.String("metricsAddr", "", "listen address for /metrics (empty = disabled)")

	flag.Parse()

	if *seed == "" {
		flag.Usage()
		log.Fatal("a -seed URL is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := crawler.Options{
		Seed:         *seed,
		OutDir:       *out,
		Site:         *site,
		MaxPages:     *maxPages,
		MaxDepth:     *depth,
		Workers:      *workers,
		MaxInflight:  *inflight,
		Politeness:   time.Duration(*politeness) * time.Millisecond,
		UserAgent:    *ua,
		FetchTimeout: time.Duration(*timeout) * time.Second,
		MetricsAddr:  *metrics,
	}

	if err := crawler.Run(ctx, opts); err != nil {
		log.Fatal(err)
	}
}

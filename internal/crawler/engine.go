// Package crawler runs a bounded, polite, single-site crawl and writes
// the fetch/visit/urls CSV logs plus a final report.
package crawler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"sitecrawler/internal/fetch"
	"sitecrawler/internal/frontier"
	"sitecrawler/internal/output"
	"sitecrawler/internal/politeness"
	"sitecrawler/internal/robots"
	"sitecrawler/internal/stats"
	"sitecrawler/internal/storage"
)

// -----------------------------------------------------------------------------
// Public entry-point
// -----------------------------------------------------------------------------
func Run(ctx context.Context, opts Options) error {
	_ = godotenv.Load()
	opts.withDefaults()

	seed, err := url.Parse(opts.Seed)
	if err != nil {
		return fmt.Errorf("parse seed URL: %w", err)
	}
	if (seed.Scheme != "http" && seed.Scheme != "https") || seed.Hostname() == "" {
		return fmt.Errorf("seed URL must be absolute http(s): %q", opts.Seed)
	}
	domain := strings.ToLower(seed.Hostname())
	site := opts.Site
	if site == "" {
		site = siteKey(domain)
	}

	// ----- Output artifacts --------------------------------------------------
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	logs, err := output.Open(opts.OutDir, site)
	if err != nil {
		return err
	}

	// ----- Optional page archive --------------------------------------------
	store, err := storage.New(ctx, os.Getenv("MONGODB_URI"))
	if err != nil {
		logs.Close()
		return fmt.Errorf("connect page archive: %w", err)
	}
	defer store.Close(context.Background())

	// ----- Transport + robots ------------------------------------------------
	client := fetch.New(opts.UserAgent, opts.FetchTimeout, opts.MaxBodySize)
	defer client.HTTPClient().CloseIdleConnections()
	policy := robots.Load(ctx, client.HTTPClient(), seed, opts.UserAgent)
	if !policy.Loaded() {
		log.Printf("robots.txt unavailable for %s, crawling fail-open", domain)
	}

	// runDone releases the helper goroutines below once Run returns
	runDone := make(chan struct{})
	defer close(runDone)

	// ----- Frontier ----------------------------------------------------------
	front := frontier.New(opts.MaxPages)
	front.TryEnqueue(seed.String(), 0)
	go func() {
		select {
		case <-ctx.Done():
			front.Close()
		case <-runDone:
		}
	}()

	// ----- Metrics server ----------------------------------------------------
	if opts.MetricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(opts.MetricsAddr, mux); err != nil {
				log.Println("metrics server:", err)
			}
		}()
	}

	// ----- Stats ticker ------------------------------------------------------
	st := stats.New()
	start := time.Now()
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()
	go func() {
		for {
			select {
			case t := <-ticker.C:
				attempted, _, _ := st.Totals()
				log.Printf("[%.0f min] attempted=%d discovered=%d queued=%d",
					t.Sub(start).Minutes(), attempted, front.SeenCount(), front.QueueLen())
			case <-runDone:
				return
			}
		}
	}()

	// ----- Worker pool -------------------------------------------------------
	w := &worker{
		frontier:     front,
		gate:         politeness.New(opts.Politeness),
		robots:       policy,
		client:       client,
		logs:         logs,
		stats:        st,
		store:        store,
		domain:       domain,
		maxDepth:     opts.MaxDepth,
		inflight:     semaphore.NewWeighted(int64(opts.MaxInflight)),
		archiveWords: opts.ArchiveWords,
	}
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < opts.Workers; i++ {
		g.Go(func() error { return w.run(gctx) })
	}
	runErr := g.Wait()

	// ----- Report + teardown -------------------------------------------------
	reportPath := filepath.Join(opts.OutDir, fmt.Sprintf("CrawlReport_%s.txt", site))
	if err := os.WriteFile(reportPath, []byte(st.Render(site)), 0o644); err != nil {
		logs.Close()
		return fmt.Errorf("write report: %w", err)
	}
	if err := logs.Close(); err != nil {
		return fmt.Errorf("close output logs: %w", err)
	}

	attempted, succeeded, failed := st.Totals()
	log.Printf("done in %s: attempted=%d succeeded=%d failed=%d discovered=%d",
		time.Since(start).Round(time.Second), attempted, succeeded, failed, front.SeenCount())

	// an interrupt still leaves well-formed partial output; not an error
	if runErr != nil && !errors.Is(runErr, context.Canceled) && !errors.Is(runErr, context.DeadlineExceeded) {
		return runErr
	}
	return nil
}

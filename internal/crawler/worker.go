package crawler

import (
	"context"
	"net/url"

	"golang.org/x/sync/semaphore"

	"sitecrawler/internal/fetch"
	"sitecrawler/internal/frontier"
	"sitecrawler/internal/metrics"
	"sitecrawler/internal/output"
	"sitecrawler/internal/parser"
	"sitecrawler/internal/politeness"
	"sitecrawler/internal/robots"
	"sitecrawler/internal/stats"
	"sitecrawler/internal/storage"
)

// Fetcher is the transport capability the workers consume. Satisfied by
// *fetch.Client; tests substitute their own.
type Fetcher interface {
	Get(ctx context.Context, rawURL string) fetch.Result
}

// worker holds everything one crawl goroutine needs. The same value is
// shared by the whole pool; all fields are read-only after start and
// the pointed-to components synchronize internally.
type worker struct {
	frontier *frontier.Frontier
	gate     *politeness.Gate
	robots   *robots.Policy
	client   Fetcher
	logs     *output.Logs
	stats    *stats.Stats
	store    *storage.Store

	domain       string
	maxDepth     int
	inflight     *semaphore.Weighted
	archiveWords int
}

// run is the worker loop: dequeue until the frontier drains or the
// context is canceled.
func (w *worker) run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		entry, ok := w.frontier.Dequeue()
		if !ok {
			return nil
		}
		w.process(ctx, entry)
		w.frontier.Done()
	}
}

// process handles one frontier entry end to end. Per-URL failures never
// escape: a bad URL or a failed fetch is recorded and the loop moves on.
func (w *worker) process(ctx context.Context, entry frontier.Entry) {
	u, err := url.Parse(entry.URL)
	if err != nil {
		return
	}

	inDomain := parser.HostInDomain(u.Hostname(), w.domain)
	w.logs.URL(entry.URL, inDomain)
	if !inDomain || entry.Depth > w.maxDepth {
		return
	}

	// robots denial is a silent skip: no fetch attempt, no record
	if !w.robots.Allowed(u) {
		return
	}

	if err := w.inflight.Acquire(ctx, 1); err != nil {
		return
	}
	defer w.inflight.Release(1)
	if err := w.gate.Acquire(ctx); err != nil {
		return
	}

	res := w.client.Get(ctx, entry.URL)
	w.logs.Fetch(entry.URL, res.Status)
	w.stats.OnAttempt(res.Status)
	if res.Status < 200 || res.Status >= 300 {
		return
	}

	mainType := fetch.MainType(res.ContentType)
	var links []string
	if fetch.IsHTML(mainType) {
		links = parser.ExtractLinks(u, res.Body)
		metrics.URLsDiscovered.Add(float64(len(links)))
		for _, link := range links {
			lu, err := url.Parse(link)
			if err != nil {
				continue
			}
			linkInDomain := parser.HostInDomain(lu.Hostname(), w.domain)
			w.logs.URL(link, linkInDomain)
			if linkInDomain {
				w.frontier.TryEnqueue(link, entry.Depth+1)
			}
		}
	}

	w.stats.OnVisit(len(res.Body), mainType)
	w.logs.Visit(entry.URL, len(res.Body), len(links), mainType)

	if fetch.IsHTML(mainType) && w.store.Enabled() {
		w.store.Insert(ctx, parser.ExtractPage(entry.URL, res.Body, w.archiveWords))
	}
}

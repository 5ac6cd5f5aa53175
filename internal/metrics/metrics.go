package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	PagesFetched = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "crawler_pages_fetched_total",
		Help: "Total number of pages fetched with an HTTP response",
	})
	BytesFetched = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "crawler_bytes_fetched_total",
		Help: "Total bytes downloaded",
	})
	FetchFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "crawler_fetch_failures_total",
		Help: "Total fetch attempts that failed at the transport level",
	})
	URLsDiscovered = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "crawler_urls_discovered_total",
		Help: "Total outlinks discovered during parsing",
	})
)

func init() {
	prometheus.MustRegister(PagesFetched, BytesFetched, FetchFailures, URLsDiscovered)
}

package crawler

import (
	"strings"
	"time"
)

type Options struct {
	Seed         string
	OutDir       string
	Site         string // output file key; derived from the seed host when empty
	MaxPages     int
	MaxDepth     int
	Workers      int
	MaxInflight  int           // concurrent fetches in flight; 0 means Workers
	Politeness   time.Duration // minimum gap between fetch dispatches
	UserAgent    string
	FetchTimeout time.Duration
	MaxBodySize  int64
	MetricsAddr  string // promhttp listen address; empty disables the server
	ArchiveWords int    // word cap for archived page text
}

func (o *Options) withDefaults() {
	if o.Workers < 1 {
		o.Workers = 1
	}
	if o.MaxInflight < 1 {
		o.MaxInflight = o.Workers
	}
	if o.UserAgent == "" {
		o.UserAgent = "SiteCrawler/1.0"
	}
	if o.FetchTimeout <= 0 {
		o.FetchTimeout = 15 * time.Second
	}
	if o.ArchiveWords == 0 {
		o.ArchiveWords = 500
	}
	if o.OutDir == "" {
		o.OutDir = "out"
	}
}

// siteKey derives the output file key from the seed host.
func siteKey(host string) string {
	return strings.TrimPrefix(host, "www.")
}

// Package stats accumulates per-run crawl counters and renders the
// final report.
package stats

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Size bucket boundaries; a boundary value lands in the upper bucket.
const (
	kb1   = 1024
	kb10  = 10 * 1024
	kb100 = 100 * 1024
	mb1   = 1024 * 1024
)

var bucketLabels = [5]string{
	"< 1KB",
	"1KB ~ <10KB",
	"10KB ~ <100KB",
	"100KB ~ <1MB",
	">= 1MB",
}

// Stats is safe for concurrent use; every worker records into the same
// instance.
type Stats struct {
	mu sync.Mutex

	attempted       int
	succeeded       int
	failedOrAborted int

	byStatus      map[int]int
	byContentType map[string]int
	sizes         [5]int
}

func New() *Stats {
	return &Stats{
		byStatus:      make(map[int]int),
		byContentType: make(map[string]int),
	}
}

// OnAttempt records one fetch attempt with its (possibly synthetic)
// status code.
func (s *Stats) OnAttempt(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempted++
	s.byStatus[status]++
	if status >= 200 && status < 300 {
		s.succeeded++
	} else {
		s.failedOrAborted++
	}
}

// OnVisit records the size and content type of one successful fetch.
func (s *Stats) OnVisit(size int, contentType string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sizes[bucketFor(size)]++
	s.byContentType[contentType]++
}

func bucketFor(size int) int {
	switch {
	case size < kb1:
		return 0
	case size < kb10:
		return 1
	case size < kb100:
		return 2
	case size < mb1:
		return 3
	default:
		return 4
	}
}

// Snapshot of the headline counters, mainly for tests and the progress
// ticker.
func (s *Stats) Totals() (attempted, succeeded, failed int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempted, s.succeeded, s.failedOrAborted
}

// Render produces the fixed-section textual report for the crawled site.
func (s *Stats) Render(site string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var b strings.Builder
	fmt.Fprintf(&b, "Site crawled: %s\n\n", site)

	b.WriteString("Fetch Statistics\n=================\n")
	fmt.Fprintf(&b, "# fetches attempted: %d\n", s.attempted)
	fmt.Fprintf(&b, "# fetches succeeded: %d\n", s.succeeded)
	fmt.Fprintf(&b, "# fetches failed or aborted: %d\n\n", s.failedOrAborted)

	b.WriteString("Status Codes\n============\n")
	codes := make([]int, 0, len(s.byStatus))
	for code := range s.byStatus {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	for _, code := range codes {
		fmt.Fprintf(&b, "%d: %d\n", code, s.byStatus[code])
	}
	b.WriteString("\n")

	b.WriteString("File Sizes\n==========\n")
	for i, label := range bucketLabels {
		fmt.Fprintf(&b, "%s: %d\n", label, s.sizes[i])
	}
	b.WriteString("\n")

	b.WriteString("Content Types\n=============\n")
	types := make([]string, 0, len(s.byContentType))
	for ct := range s.byContentType {
		types = append(types, ct)
	}
	sort.Strings(types)
	for _, ct := range types {
		fmt.Fprintf(&b, "%s: %d\n", ct, s.byContentType[ct])
	}
	return b.String()
}

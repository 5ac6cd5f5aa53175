// Package output writes the per-run CSV artifacts. Rows are flushed as
// they are written so an interrupted run still leaves well-formed files.
package output

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

// Indicator values for the urls CSV.
const (
	IndicatorOK    = "OK"
	IndicatorNotOK = "N_OK"
)

type csvFile struct {
	mu sync.Mutex
	f  *os.File
	w  *csv.Writer
}

func newCSVFile(path string, header []string) (*csvFile, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return nil, err
	}
	w.Flush()
	return &csvFile{f: f, w: w}, nil
}

func (c *csvFile) write(record []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.w.Write(record); err != nil {
		log.Printf("csv write %s: %v", c.f.Name(), err)
		return
	}
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		log.Printf("csv flush %s: %v", c.f.Name(), err)
	}
}

func (c *csvFile) close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.w.Flush()
	if err := c.w.Error(); err != nil {
		c.f.Close()
		return err
	}
	return c.f.Close()
}

// Logs bundles the three incremental CSV outputs of one run.
type Logs struct {
	fetch *csvFile
	visit *csvFile
	urls  *csvFile
}

// Open creates fetch_<site>.csv, visit_<site>.csv and urls_<site>.csv in
// dir and writes their headers. Failure to create any of them is a
// setup error and aborts the run.
func Open(dir, site string) (*Logs, error) {
	fetch, err := newCSVFile(filepath.Join(dir, fmt.Sprintf("fetch_%s.csv", site)), []string{"URL", "Status"})
	if err != nil {
		return nil, fmt.Errorf("create fetch log: %w", err)
	}
	visit, err := newCSVFile(filepath.Join(dir, fmt.Sprintf("visit_%s.csv", site)), []string{"URL", "Size", "#Outlinks", "Content-Type"})
	if err != nil {
		fetch.close()
		return nil, fmt.Errorf("create visit log: %w", err)
	}
	urls, err := newCSVFile(filepath.Join(dir, fmt.Sprintf("urls_%s.csv", site)), []string{"URL", "Indicator"})
	if err != nil {
		fetch.close()
		visit.close()
		return nil, fmt.Errorf("create urls log: %w", err)
	}
	return &Logs{fetch: fetch, visit: visit, urls: urls}, nil
}

// Fetch records one fetch attempt, successful or not.
func (l *Logs) Fetch(url string, status int) {
	l.fetch.write([]string{url, strconv.Itoa(status)})
}

// Visit records one successful (2xx) fetch.
func (l *Logs) Visit(url string, size, outlinks int, contentType string) {
	l.visit.write([]string{url, strconv.Itoa(size), strconv.Itoa(outlinks), contentType})
}

// URL records a domain-membership indicator for one observed URL.
func (l *Logs) URL(url string, inDomain bool) {
	ind := IndicatorNotOK
	if inDomain {
		ind = IndicatorOK
	}
	l.urls.write([]string{url, ind})
}

// Close flushes and closes all three files, returning the first error.
func (l *Logs) Close() error {
	var first error
	for _, c := range []*csvFile{l.fetch, l.visit, l.urls} {
		if err := c.close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

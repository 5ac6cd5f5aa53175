// Package frontier owns the crawl work queue. All mutation goes through
// one monitor so that dedup, the admission cap, and FIFO ordering stay
// atomic with respect to every worker.
package frontier

import (
	"hash/fnv"
	"sync"
)

// Entry is one unit of crawl work.
type Entry struct {
	URL   string
	Depth int
}

// Frontier is a FIFO queue of entries plus the seen set. A URL is added
// to the seen set the moment it is admitted, so it can never be enqueued
// twice across the whole run. Admission stops once the seen set reaches
// maxPages.
type Frontier struct {
	mu       sync.Mutex
	cond     *sync.Cond
	queue    []Entry
	seen     map[uint64]struct{}
	maxPages int
	pending  int // entries enqueued or dequeued-but-not-Done
	closed   bool
}

func New(maxPages int) *Frontier {
	f := &Frontier{
		queue:    make([]Entry, 0),
		seen:     make(map[uint64]struct{}),
		maxPages: maxPages,
	}
	f.cond = sync.NewCond(&f.mu)
	return f
}

func hash(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

// TryEnqueue admits a URL at the given depth. It is a no-op returning
// false when the URL was already seen, the admission cap is reached, or
// the frontier is closed.
func (f *Frontier) TryEnqueue(u string, depth int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return false
	}
	if _, ok := f.seen[hash(u)]; ok {
		return false
	}
	if len(f.seen) >= f.maxPages {
		return false
	}
	f.seen[hash(u)] = struct{}{}
	f.queue = append(f.queue, Entry{URL: u, Depth: depth})
	f.pending++
	f.cond.Signal()
	return true
}

// Dequeue pops the head entry. While the queue is empty but other
// entries are still being processed it blocks, since processing may
// discover more work. It returns ok=false once the frontier has fully
// drained or been closed. Every successful Dequeue must be paired with
// a Done call.
func (f *Frontier) Dequeue() (Entry, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for len(f.queue) == 0 && f.pending > 0 && !f.closed {
		f.cond.Wait()
	}
	if len(f.queue) == 0 || f.closed {
		return Entry{}, false
	}
	e := f.queue[0]
	f.queue = f.queue[1:]
	return e, true
}

// Done marks one dequeued entry as fully processed.
func (f *Frontier) Done() {
	f.mu.Lock()
	f.pending--
	if f.pending == 0 {
		f.cond.Broadcast()
	}
	f.mu.Unlock()
}

// Close releases every blocked Dequeue. Used on cancellation.
func (f *Frontier) Close() {
	f.mu.Lock()
	f.closed = true
	f.cond.Broadcast()
	f.mu.Unlock()
}

// SeenCount returns the number of URLs admitted so far.
func (f *Frontier) SeenCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.seen)
}

// QueueLen returns the number of entries waiting for a worker.
func (f *Frontier) QueueLen() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

package crawl

import (
	"strings"
	"sync"
)

// Frontier is the crawl's to-visit queue plus its visited set. Selection
// is insertion order (FIFO) so traversal is deterministic. The two sets
// are kept disjoint: a URL is never both queued and visited, and the
// visited set only grows.
//
// It is safe for concurrent use by multiple goroutines.
type Frontier struct {
	mu      sync.Mutex
	queue   []string
	queued  map[string]struct{}
	visited map[string]struct{}
}

// NewFrontier creates an empty Frontier.
func NewFrontier() *Frontier {
	return &Frontier{
		queued:  make(map[string]struct{}),
		visited: make(map[string]struct{}),
	}
}

// Push adds a URL to the frontier. Returns false if the URL is already
// queued or has been visited. URL fragments are stripped first, so URLs
// differing only by fragment are considered duplicates.
func (f *Frontier) Push(rawURL string) bool {
	url := stripFragment(rawURL)

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.visited[url]; ok {
		return false
	}
	if _, ok := f.queued[url]; ok {
		return false
	}

	f.queued[url] = struct{}{}
	f.queue = append(f.queue, url)
	return true
}

// Pop removes and returns the oldest queued URL.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return "", false
	}
	url := f.queue[0]
	f.queue = f.queue[1:]
	delete(f.queued, url)
	return url, true
}

// MarkVisited records a URL as processed. Once visited, a URL can never
// re-enter the queue.
func (f *Frontier) MarkVisited(rawURL string) {
	url := stripFragment(rawURL)

	f.mu.Lock()
	defer f.mu.Unlock()

	f.visited[url] = struct{}{}
}

// Visited returns true if the URL has been processed.
func (f *Frontier) Visited(rawURL string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, ok := f.visited[stripFragment(rawURL)]
	return ok
}

// Len returns the number of URLs in the queue.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// VisitedCount returns the number of processed URLs.
func (f *Frontier) VisitedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.visited)
}

// VisitedURLs returns a snapshot of the visited set.
func (f *Frontier) VisitedURLs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	urls := make([]string, 0, len(f.visited))
	for url := range f.visited {
		urls = append(urls, url)
	}
	return urls
}

func stripFragment(url string) string {
	if idx := strings.Index(url, "#"); idx != -1 {
		return url[:idx]
	}
	return url
}

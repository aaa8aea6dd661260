package dedup

import "sync"

// FailedFile records a path whose digest could not be computed.
type FailedFile struct {
	Path string
	Err  error
}

// Summary describes a completed aggregation pass.
type Summary struct {
	FilesAttempted     int
	FailedFiles        int
	UniqueFingerprints int
	// DuplicateFiles is the number of removable copies: the sum over all
	// groups of (group size - 1).
	DuplicateFiles int
}

// Aggregator funnels pool results into a fingerprint-keyed group map.
// All mutation happens under a single mutex, so results may be added from
// any number of goroutines. Once the result stream is exhausted the map is
// read-only and safe to share with reporting code.
type Aggregator struct {
	mu       sync.Mutex
	groups   map[Fingerprint][]string
	failures []FailedFile
}

// NewAggregator returns an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{groups: make(map[Fingerprint][]string)}
}

// Add records a single digest result. Safe for concurrent use.
func (a *Aggregator) Add(res Result) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if res.Err != nil {
		a.failures = append(a.failures, FailedFile{Path: res.Path, Err: res.Err})
		return
	}
	a.groups[res.Fingerprint] = append(a.groups[res.Fingerprint], res.Path)
}

// Collect drains results until the channel closes.
func (a *Aggregator) Collect(results <-chan Result) {
	for res := range results {
		a.Add(res)
	}
}

// Groups returns the fingerprint map. Callers must treat it as read-only;
// sharing it is only safe once the result stream has been fully drained.
func (a *Aggregator) Groups() map[Fingerprint][]string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.groups
}

// Failures returns the paths that could not be fingerprinted.
func (a *Aggregator) Failures() []FailedFile {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.failures
}

// Summarize computes counts over everything added so far. The conservation
// law holds: successes across all groups plus failures equals
// FilesAttempted.
func (a *Aggregator) Summarize() Summary {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := Summary{
		FailedFiles:        len(a.failures),
		UniqueFingerprints: len(a.groups),
	}
	succeeded := 0
	for _, paths := range a.groups {
		succeeded += len(paths)
		s.DuplicateFiles += len(paths) - 1
	}
	s.FilesAttempted = succeeded + len(a.failures)
	return s
}

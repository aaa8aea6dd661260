package dedup

import (
	"context"
	"time"
)

// ProgressInterval is the number of completed files between progress
// callbacks during a scan.
const ProgressInterval = 100

// Scanner runs the full duplicate-detection pipeline: collect image
// paths, fingerprint them over a worker pool, and aggregate the results
// into content groups.
type Scanner struct {
	// Workers is the digest concurrency; non-positive means DefaultWorkers.
	Workers int
	// Extensions filters collected files; nil means the default image set.
	Extensions ExtensionSet
	// Progress, when non-nil, is invoked with the running and total counts
	// once per ProgressInterval of digested files. The running count comes
	// from the pool's own counter, which the workers advance, so it can
	// run slightly ahead of the results drained so far.
	Progress func(completed, total int)
	// Warnf receives non-fatal scan warnings; nil disables them.
	Warnf func(format string, args ...any)
}

// ScanResult is everything a finished scan produced. Groups is read-only
// once Scan returns.
type ScanResult struct {
	Files    []string
	Groups   map[Fingerprint][]string
	Failures []FailedFile
	Summary  Summary
	Elapsed  time.Duration
}

// Scan fingerprints every matching file under roots and groups files by
// content. Per-file digest failures are collected, never fatal; the only
// errors returned are cancellation and walk failures.
func (s *Scanner) Scan(ctx context.Context, roots []string) (*ScanResult, error) {
	start := time.Now()

	exts := s.Extensions
	if exts == nil {
		exts = NewExtensionSet(nil)
	}

	files, err := CollectImageFiles(ctx, roots, exts, s.Warnf)
	if err != nil {
		return nil, err
	}

	agg := NewAggregator()
	if len(files) > 0 {
		pool := NewPool(s.Workers)
		lastReported := 0
		for res := range pool.Run(ctx, files) {
			agg.Add(res)
			if s.Progress == nil {
				continue
			}
			done := int(pool.Processed())
			if done/ProgressInterval > lastReported/ProgressInterval {
				s.Progress(done, len(files))
			}
			lastReported = done
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &ScanResult{
		Files:    files,
		Groups:   agg.Groups(),
		Failures: agg.Failures(),
		Summary:  agg.Summarize(),
		Elapsed:  time.Since(start),
	}, nil
}

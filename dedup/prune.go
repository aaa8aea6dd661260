package dedup

import (
	"errors"
	"os"
	"sort"
)

// PathFailure records a deletion attempt that failed for an OS-level
// reason other than the file already being gone.
type PathFailure struct {
	Path string
	Err  error
}

// PruneOptions adjusts prune behavior.
type PruneOptions struct {
	// DryRun evaluates the report without touching the filesystem.
	DryRun bool
	// Log receives one line per notable event; nil disables logging.
	Log func(format string, args ...any)
}

// PruneOutcome summarizes one prune pass over a report.
type PruneOutcome struct {
	// Updated holds only the retained path for each valid group. Its
	// count equals the number of valid groups processed.
	Updated   *Report
	Processed int
	Skipped   []Fingerprint
	Deleted   []string
	Missing   []string
	Failures  []PathFailure
}

// Prune retains the first stored path of every valid group and removes the
// remaining paths from disk. Groups are visited in fingerprint order so
// logs and outcomes are stable across runs.
//
// A group with no paths, or one whose stored value was not a path list,
// is skipped with a warning and excluded from the updated report. A duplicate that no longer exists on disk is a warning,
// not an error, which makes rerunning a prune over the same report
// idempotent. A deletion that fails for any other reason is recorded and
// the batch continues.
func Prune(report *Report, opts PruneOptions) *PruneOutcome {
	logf := opts.Log
	if logf == nil {
		logf = func(string, ...any) {}
	}

	out := &PruneOutcome{
		Updated: &Report{
			ScanID:      report.ScanID,
			GeneratedAt: report.GeneratedAt,
			Duplicates:  make(map[Fingerprint][]string),
		},
	}

	malformed := append([]Fingerprint(nil), report.Malformed...)
	sort.Strings(malformed)
	for _, fp := range malformed {
		logf("warning: group %s is not a path list, skipping", fp)
		out.Skipped = append(out.Skipped, fp)
	}

	fps := make([]Fingerprint, 0, len(report.Duplicates))
	for fp := range report.Duplicates {
		fps = append(fps, fp)
	}
	sort.Strings(fps)

	for _, fp := range fps {
		paths := report.Duplicates[fp]
		if len(paths) == 0 {
			logf("warning: group %s has an empty path list, skipping", fp)
			out.Skipped = append(out.Skipped, fp)
			continue
		}

		out.Processed++
		out.Updated.Duplicates[fp] = []string{paths[0]}

		for _, path := range paths[1:] {
			if opts.DryRun {
				logf("dry-run: would delete %s", path)
				continue
			}
			err := os.Remove(path)
			switch {
			case err == nil:
				logf("deleted %s", path)
				out.Deleted = append(out.Deleted, path)
			case errors.Is(err, os.ErrNotExist):
				logf("warning: cannot delete %s, file is already missing", path)
				out.Missing = append(out.Missing, path)
			default:
				logf("error deleting %s: %v", path, err)
				out.Failures = append(out.Failures, PathFailure{Path: path, Err: err})
			}
		}
	}

	out.Updated.FoundDuplicatesCount = out.Processed
	return out
}

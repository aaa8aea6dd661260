package dedup

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Report is the persisted scan artifact consumed by the prune tool.
// found_duplicates_count and duplicates form the stable contract between
// the scan and prune stages; scan_id and generated_at are informational
// and optional on read.
type Report struct {
	FoundDuplicatesCount int                      `json:"found_duplicates_count"`
	ScanID               string                   `json:"scan_id,omitempty"`
	GeneratedAt          time.Time                `json:"generated_at,omitzero"`
	Duplicates           map[Fingerprint][]string `json:"duplicates"`

	// Malformed holds fingerprints whose stored value was not a path
	// list. Such entries are preserved here instead of failing the whole
	// decode, so the prune tool can skip them per entry.
	Malformed []Fingerprint `json:"-"`
}

// UnmarshalJSON decodes a report while tolerating group entries whose
// value is not a list of paths. A document that is not JSON, or whose
// duplicates value is not a mapping, still fails; a single bad entry only
// lands in Malformed.
func (r *Report) UnmarshalJSON(data []byte) error {
	var wire struct {
		FoundDuplicatesCount int                             `json:"found_duplicates_count"`
		ScanID               string                          `json:"scan_id"`
		GeneratedAt          time.Time                       `json:"generated_at"`
		Duplicates           map[Fingerprint]json.RawMessage `json:"duplicates"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	r.FoundDuplicatesCount = wire.FoundDuplicatesCount
	r.ScanID = wire.ScanID
	r.GeneratedAt = wire.GeneratedAt
	r.Malformed = nil
	if wire.Duplicates == nil {
		r.Duplicates = nil
		return nil
	}

	r.Duplicates = make(map[Fingerprint][]string, len(wire.Duplicates))
	for fp, raw := range wire.Duplicates {
		var paths []string
		if err := json.Unmarshal(raw, &paths); err != nil {
			r.Malformed = append(r.Malformed, fp)
			continue
		}
		r.Duplicates[fp] = paths
	}
	return nil
}

// BuildReport derives a report from a completed group map. Only groups
// with two or more members count as duplicates; when includeAll is set the
// report additionally carries singleton groups, which the prune tool
// tolerates (it never deletes from a single-member group).
func BuildReport(groups map[Fingerprint][]string, includeAll bool) *Report {
	r := &Report{
		ScanID:      uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Duplicates:  make(map[Fingerprint][]string),
	}
	for fp, paths := range groups {
		if len(paths) > 1 {
			r.FoundDuplicatesCount++
		} else if !includeAll {
			continue
		}
		r.Duplicates[fp] = paths
	}
	return r
}

// Entry is one fingerprint with its member paths.
type Entry struct {
	Fingerprint Fingerprint
	Paths       []string
}

// Inventory returns every group sorted lexicographically by fingerprint.
// Purely presentational: it gives humans and tests a deterministic view of
// a map whose insertion order is completion order.
func Inventory(groups map[Fingerprint][]string) []Entry {
	entries := make([]Entry, 0, len(groups))
	for fp, paths := range groups {
		entries = append(entries, Entry{Fingerprint: fp, Paths: paths})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Fingerprint < entries[j].Fingerprint
	})
	return entries
}

// WriteReportFile writes the report as indented JSON to path.
func WriteReportFile(path string, r *Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// LoadReportFile reads a previously persisted report. An unreadable file,
// invalid JSON, or a document without a duplicates mapping is a structural
// failure: the caller gets ErrReportParse and must not attempt a prune.
func LoadReportFile(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report %s: %w", path, err)
	}

	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReportParse, path, err)
	}
	if r.Duplicates == nil {
		return nil, fmt.Errorf("%w: %s: missing duplicates mapping", ErrReportParse, path)
	}
	return &r, nil
}

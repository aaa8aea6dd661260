package dedup

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/uuid"
)

func TestBuildReport(t *testing.T) {
	groups := map[Fingerprint][]string{
		"bbb": {"x.jpg", "y.jpg", "z.jpg"},
		"aaa": {"solo.png"},
		"ccc": {"p.gif", "q.gif"},
	}

	t.Run("duplicates only", func(t *testing.T) {
		report := BuildReport(groups, false)

		if report.FoundDuplicatesCount != 2 {
			t.Errorf("FoundDuplicatesCount = %d, want 2", report.FoundDuplicatesCount)
		}
		if len(report.Duplicates) != 2 {
			t.Errorf("got %d entries, want 2", len(report.Duplicates))
		}
		if _, ok := report.Duplicates["aaa"]; ok {
			t.Error("singleton group included without includeAll")
		}
		if _, err := uuid.Parse(report.ScanID); err != nil {
			t.Errorf("ScanID %q is not a valid UUID: %v", report.ScanID, err)
		}
		if report.GeneratedAt.IsZero() {
			t.Error("GeneratedAt is zero")
		}
	})

	t.Run("include all groups", func(t *testing.T) {
		report := BuildReport(groups, true)

		if report.FoundDuplicatesCount != 2 {
			t.Errorf("FoundDuplicatesCount = %d, want 2 (singletons never count)", report.FoundDuplicatesCount)
		}
		if len(report.Duplicates) != 3 {
			t.Errorf("got %d entries, want 3", len(report.Duplicates))
		}
	})
}

func TestInventory(t *testing.T) {
	groups := map[Fingerprint][]string{
		"ffff": {"late.jpg"},
		"0000": {"early.jpg", "early2.jpg"},
		"8a8a": {"mid.png"},
	}

	entries := Inventory(groups)
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}

	fps := make([]string, len(entries))
	for i, entry := range entries {
		fps[i] = entry.Fingerprint
	}
	if !sort.StringsAreSorted(fps) {
		t.Errorf("Inventory() order = %v, want lexicographic", fps)
	}
	if entries[0].Fingerprint != "0000" || len(entries[0].Paths) != 2 {
		t.Errorf("first entry = %+v, want fingerprint 0000 with 2 paths", entries[0])
	}
}

func TestReportRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "duplicates.json")

	report := BuildReport(map[Fingerprint][]string{
		"abc123": {"a.jpg", "c.jpg"},
	}, false)

	if err := WriteReportFile(path, report); err != nil {
		t.Fatalf("WriteReportFile() error = %v", err)
	}

	loaded, err := LoadReportFile(path)
	if err != nil {
		t.Fatalf("LoadReportFile() error = %v", err)
	}
	if loaded.FoundDuplicatesCount != 1 {
		t.Errorf("FoundDuplicatesCount = %d, want 1", loaded.FoundDuplicatesCount)
	}
	if got := loaded.Duplicates["abc123"]; len(got) != 2 || got[0] != "a.jpg" || got[1] != "c.jpg" {
		t.Errorf("Duplicates[abc123] = %v, want [a.jpg c.jpg]", got)
	}
	if loaded.ScanID != report.ScanID {
		t.Errorf("ScanID = %q, want %q", loaded.ScanID, report.ScanID)
	}
}

func TestLoadReportFile_MalformedEntryTolerated(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "mixed.json")
	os.WriteFile(path, []byte(`{
  "found_duplicates_count": 2,
  "duplicates": {
    "aaaa": ["a.jpg", "c.jpg"],
    "bbbb": "not-a-list",
    "cccc": 42
  }
}`), 0644)

	report, err := LoadReportFile(path)
	if err != nil {
		t.Fatalf("LoadReportFile() error = %v, want per-entry tolerance", err)
	}

	if got := report.Duplicates["aaaa"]; len(got) != 2 || got[0] != "a.jpg" || got[1] != "c.jpg" {
		t.Errorf("Duplicates[aaaa] = %v, want [a.jpg c.jpg]", got)
	}
	if _, ok := report.Duplicates["bbbb"]; ok {
		t.Error("non-list entry bbbb landed in Duplicates")
	}
	if len(report.Malformed) != 2 {
		t.Fatalf("Malformed = %v, want the 2 bad entries", report.Malformed)
	}
	seen := map[string]bool{}
	for _, fp := range report.Malformed {
		seen[fp] = true
	}
	if !seen["bbbb"] || !seen["cccc"] {
		t.Errorf("Malformed = %v, want bbbb and cccc", report.Malformed)
	}
}

func TestLoadReportFile_Errors(t *testing.T) {
	tmpDir := t.TempDir()

	invalidJSON := filepath.Join(tmpDir, "invalid.json")
	os.WriteFile(invalidJSON, []byte("{not json"), 0644)

	noDuplicates := filepath.Join(tmpDir, "nodups.json")
	os.WriteFile(noDuplicates, []byte(`{"found_duplicates_count": 0}`), 0644)

	wrongShape := filepath.Join(tmpDir, "shape.json")
	os.WriteFile(wrongShape, []byte(`{"duplicates": ["not", "a", "map"]}`), 0644)

	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{
			name:    "missing file",
			path:    filepath.Join(tmpDir, "nonexistent.json"),
			wantErr: os.ErrNotExist,
		},
		{
			name:    "invalid JSON",
			path:    invalidJSON,
			wantErr: ErrReportParse,
		},
		{
			name:    "missing duplicates mapping",
			path:    noDuplicates,
			wantErr: ErrReportParse,
		},
		{
			name:    "duplicates is not a mapping",
			path:    wrongShape,
			wantErr: ErrReportParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadReportFile(tt.path)
			if err == nil {
				t.Fatalf("LoadReportFile(%q) expected error, got nil", tt.path)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadReportFile(%q) error = %v, want %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

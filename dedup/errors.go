package dedup

import (
	"errors"
	"fmt"
)

// Sentinel errors for package dedup.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// File and directory errors
	ErrExpectedFile = errors.New("expected file, got directory")

	// Report errors
	ErrReportParse = errors.New("report is not a valid duplicate report")
)

// FileError tags a digest failure with the path that produced it so the
// aggregator can account for it without aborting the pool.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("digest %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

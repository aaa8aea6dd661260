// Package dedup provides the duplicate-detection engine for imgdup.
//
// This package contains the core pipeline that turns a set of directories
// into a duplicate report: collecting image paths, fingerprinting file
// content, grouping files that share a fingerprint, and pruning duplicate
// groups from a previously persisted report.
//
// Key Components:
//
// Fingerprinting:
//   - BLAKE3-based 128-bit content fingerprints encoded as lowercase hex
//   - Streaming reads in fixed 4096-byte chunks to bound memory use
//   - Per-file failures tagged with the offending path via FileError
//
// Concurrency:
//   - Pool fans digest work out over a fixed number of workers
//   - Exactly one Result per input path, delivered in completion order
//   - Context cancellation stops feeding work without leaking goroutines
//
// Aggregation and Reporting:
//   - Aggregator funnels all results through a single mutex into a
//     fingerprint-keyed group map, tracking failures separately
//   - Report captures duplicate groups plus scan metadata and round-trips
//     through JSON for consumption by the prune tool
//   - Inventory provides a deterministic, fingerprint-sorted view
//
// Pruning:
//   - Prune retains the first stored path of each group and removes the
//     rest, treating already-missing files as warnings so reruns over the
//     same report are idempotent
//
// The package is designed so that the group map is mutated only while the
// pool is draining; once a scan completes the map is read-only and safe to
// share with reporting code.
package dedup

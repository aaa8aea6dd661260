// Package main provides the imgdup command-line interface.
//
// imgdup finds duplicate image files by content. It walks directory trees
// for image files, fingerprints each file concurrently over a bounded
// worker pool, and groups files whose content is identical. Duplicate
// groups are reported on the console and persisted as a JSON report.
//
// The main binary supports multiple subcommands:
//   - scan: Fingerprint images under one or more directories and report duplicates
//   - prune: Delete all but the first file of every duplicate group in a report
//   - count: Count the image files a scan would process
package main

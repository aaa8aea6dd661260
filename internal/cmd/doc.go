// Package cmd provides the command-line interface implementation for imgdup.
//
// This package contains all the subcommand implementations for the imgdup
// CLI tool. It uses the Cobra library for command structure and Fang for
// styled execution.
//
// The package is organized into the following commands:
//   - root: Main command coordinator and entry point
//   - scan: Concurrent duplicate-image scanning and report generation
//   - prune: Report-driven deletion of duplicate files
//   - count: Image file counting utility
//
// Each command is implemented as a separate file with its own constructor
// function that returns a *cobra.Command. The commands are thin wrappers:
// all scanning and pruning behavior lives in the dedup package, and the
// optional configuration file is handled by internal/config.
package cmd

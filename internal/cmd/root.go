package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mirrorlake/imgdup/version"
)

// NewRootCmd creates and returns the root cobra command for the imgdup CLI.
// It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "imgdup",
		Short: "imgdup - Find and prune duplicate image files by content fingerprint",
		Long: `imgdup scans directories for image files, fingerprints each file's
content, and groups files that are byte-for-byte identical.

A scan writes a JSON report of duplicate groups. The prune command
consumes a previously written report, keeps the first file of every
group, and deletes the rest.

Use subcommands to perform different operations:
  - scan: Fingerprint images under one or more directories and report duplicates
  - prune: Delete all but the first file of every duplicate group in a report
  - count: Count the image files a scan would process`,
		Version: version.GetFullVersion(),
	}

	groupScanning := "scanning"
	groupMaintenance := "maintenance"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupScanning,
		Title: "Scanning Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupMaintenance,
		Title: "Maintenance Commands",
	})

	scanCmd := NewScanCmd()
	pruneCmd := NewPruneCmd()
	countCmd := NewCountCmd()

	scanCmd.GroupID = groupScanning
	countCmd.GroupID = groupScanning
	pruneCmd.GroupID = groupMaintenance

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(pruneCmd)
	rootCmd.AddCommand(countCmd)

	return rootCmd
}

package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/taigrr/colorhash"

	"github.com/mirrorlake/imgdup/dedup"
	"github.com/mirrorlake/imgdup/internal/config"
)

// groupPalette is the set of colors duplicate groups are rendered in.
var groupPalette = []*color.Color{
	color.New(color.FgCyan),
	color.New(color.FgGreen),
	color.New(color.FgYellow),
	color.New(color.FgMagenta),
	color.New(color.FgBlue),
	color.New(color.FgHiCyan),
}

// groupColor picks a stable display color for a fingerprint, so the same
// group is rendered the same way across runs.
func groupColor(fp dedup.Fingerprint) *color.Color {
	return groupPalette[colorhash.HashString(fp)%len(groupPalette)]
}

// NewScanCmd creates and returns the scan subcommand for the imgdup CLI.
// It runs the full pipeline: walk, fingerprint, group, report.
func NewScanCmd() *cobra.Command {
	var (
		configPath string
		output     string
		workers    int
		extensions []string
		includeAll bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "scan [DIR...]",
		Short: "Scan directories for duplicate images",
		Long: `Scan one or more directories for image files and report duplicates.

Every image file is fingerprinted by content over a bounded worker pool,
files sharing a fingerprint are grouped, and groups with more than one
member are reported as duplicates. The resulting JSON report can be fed
to the prune command.

Directories may also come from the configuration file; flags override
config file values.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Load(configPath)
			if err != nil {
				log.Fatalf("Failed to load configuration: %v", err)
			}

			roots := args
			if len(roots) == 0 {
				roots = cfg.Directories
			}
			if len(roots) == 0 {
				log.Fatalf("No directories to scan: pass DIR arguments or set directories in %s", configPath)
			}

			if !cmd.Flags().Changed("workers") {
				workers = cfg.Workers
			}
			if !cmd.Flags().Changed("extensions") {
				extensions = cfg.Extensions
			}
			if !cmd.Flags().Changed("output") {
				output = cfg.Report
			}

			runScan(roots, workers, extensions, output, includeAll, verbose)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to configuration file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Path to write the JSON duplicate report")
	cmd.Flags().IntVarP(&workers, "workers", "w", dedup.DefaultWorkers, "Number of concurrent digest workers")
	cmd.Flags().StringSliceVarP(&extensions, "extensions", "e", nil, "Image extensions to match (default jpg,jpeg,png,gif,bmp,tiff,webp)")
	cmd.Flags().BoolVar(&includeAll, "all", false, "Include singleton groups in the written report")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print the full fingerprint inventory")

	return cmd
}

func runScan(roots []string, workers int, extensions []string, output string, includeAll, verbose bool) {
	warn := color.New(color.FgYellow)

	scanner := &dedup.Scanner{
		Workers:    workers,
		Extensions: dedup.NewExtensionSet(extensions),
		Progress: func(completed, total int) {
			fmt.Printf("Processed %d/%d files\n", completed, total)
		},
		Warnf: func(format string, args ...any) {
			warn.Printf("warning: "+format+"\n", args...)
		},
	}

	result, err := scanner.Scan(cmdContext(), roots)
	if err != nil {
		log.Fatalf("Scan failed: %v", err)
	}
	if len(result.Files) == 0 {
		fmt.Println("No image files found.")
		return
	}

	if verbose {
		fmt.Println("Fingerprint inventory:")
		for _, entry := range dedup.Inventory(result.Groups) {
			fmt.Printf("%s\n", entry.Fingerprint)
			for _, path := range entry.Paths {
				fmt.Printf("  -> %s\n", path)
			}
		}
		fmt.Println()
	}

	report := dedup.BuildReport(result.Groups, includeAll)
	printDuplicates(result.Groups, report.FoundDuplicatesCount)

	for _, failure := range result.Failures {
		warn.Printf("warning: could not fingerprint %s: %v\n", failure.Path, failure.Err)
	}

	fmt.Println()
	fmt.Printf("Elapsed: %s\n", result.Elapsed.Round(time.Millisecond))
	fmt.Printf("Files scanned: %d\n", result.Summary.FilesAttempted)
	fmt.Printf("Unique fingerprints: %d\n", result.Summary.UniqueFingerprints)
	fmt.Printf("Duplicate groups: %d\n", report.FoundDuplicatesCount)
	fmt.Printf("Removable copies: %d\n", result.Summary.DuplicateFiles)
	if n := result.Summary.FailedFiles; n > 0 {
		warn.Printf("Failed files: %d\n", n)
	}

	if output != "" {
		if err := dedup.WriteReportFile(output, report); err != nil {
			log.Fatalf("Failed to write report %s: %v", output, err)
		}
		fmt.Printf("Report written to %s\n", output)
	}
}

func printDuplicates(groups map[dedup.Fingerprint][]string, count int) {
	if count == 0 {
		fmt.Println("No duplicate images found.")
		return
	}

	fmt.Printf("Found %d duplicate groups:\n", count)
	for _, entry := range dedup.Inventory(groups) {
		if len(entry.Paths) < 2 {
			continue
		}
		groupColor(entry.Fingerprint).Printf("%s (%d copies)\n", entry.Fingerprint, len(entry.Paths))
		for i, path := range entry.Paths {
			fmt.Printf("  %d. %s\n", i+1, path)
		}
	}
}

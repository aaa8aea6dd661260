package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mirrorlake/imgdup/dedup"
)

// NewPruneCmd creates and returns the prune subcommand for the imgdup CLI.
// It deletes duplicate files listed in a previously written scan report.
func NewPruneCmd() *cobra.Command {
	var (
		reportPath string
		outputPath string
		dryRun     bool
		quiet      bool
	)

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete duplicate files listed in a scan report",
		Long: `Prune duplicate files using a report produced by a previous scan.

For every duplicate group in the report the first listed file is kept and
every other file is deleted from disk. Files that are already gone are
warnings, not errors, so pruning the same report twice is harmless.

The updated report, containing only the retained file of each group, is
written to --output when given, otherwise printed to stdout.`,
		Run: func(cmd *cobra.Command, args []string) {
			runPrune(reportPath, outputPath, dryRun, quiet)
		},
	}

	cmd.Flags().StringVarP(&reportPath, "report", "r", "", "Path to the duplicate report to prune from (required)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to write the updated report")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be deleted without removing anything")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress per-file output")

	cmd.MarkFlagRequired("report")

	return cmd
}

func runPrune(reportPath, outputPath string, dryRun, quiet bool) {
	report, err := dedup.LoadReportFile(reportPath)
	if err != nil {
		log.Fatalf("Cannot prune: %v", err)
	}

	logf := func(format string, args ...any) {
		fmt.Printf(format+"\n", args...)
	}
	if quiet {
		logf = nil
	}

	outcome := dedup.Prune(report, dedup.PruneOptions{
		DryRun: dryRun,
		Log:    logf,
	})

	warn := color.New(color.FgYellow)
	fmt.Println()
	fmt.Printf("Groups processed: %d\n", outcome.Processed)
	fmt.Printf("Files deleted: %d\n", len(outcome.Deleted))
	if n := len(outcome.Missing); n > 0 {
		warn.Printf("Already missing: %d\n", n)
	}
	if n := len(outcome.Skipped); n > 0 {
		warn.Printf("Groups skipped (empty): %d\n", n)
	}
	for _, failure := range outcome.Failures {
		warn.Printf("Failed to delete %s: %v\n", failure.Path, failure.Err)
	}

	if dryRun {
		fmt.Println("Dry run: no files were deleted and no report was written.")
		return
	}

	if outputPath != "" {
		if err := dedup.WriteReportFile(outputPath, outcome.Updated); err != nil {
			log.Fatalf("Failed to write updated report %s: %v", outputPath, err)
		}
		fmt.Printf("Updated report written to %s\n", outputPath)
		return
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(outcome.Updated); err != nil {
		log.Fatalf("Failed to encode updated report: %v", err)
	}
}

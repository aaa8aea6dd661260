package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/mirrorlake/imgdup/dedup"
)

// NewCountCmd creates and returns the count subcommand for the imgdup CLI.
// It reports how many image files a scan over the same directories would
// process.
func NewCountCmd() *cobra.Command {
	var extensions []string

	cmd := &cobra.Command{
		Use:   "count DIR [DIR...]",
		Short: "Count image files in directory trees",
		Long: `Count the image files under one or more directories.

This walks the given directories with the same extension filter a scan
uses, without fingerprinting anything. Useful for sizing a scan before
running it.`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runCount(args, extensions)
		},
	}

	cmd.Flags().StringSliceVarP(&extensions, "extensions", "e", nil, "Image extensions to match (default jpg,jpeg,png,gif,bmp,tiff,webp)")

	return cmd
}

func runCount(roots []string, extensions []string) {
	files, err := dedup.CollectImageFiles(cmdContext(), roots, dedup.NewExtensionSet(extensions), func(format string, args ...any) {
		fmt.Printf("warning: "+format+"\n", args...)
	})
	if err != nil {
		log.Fatalf("Error counting files: %v", err)
	}

	fmt.Printf("Total image files: %d\n", len(files))
}

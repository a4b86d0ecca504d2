// Package main provides the CLI entry point for slidecmp-go.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/slidecmp-go/pkg/slidecmp"
	"github.com/ukaji3/slidecmp-go/pkg/slidecmp/output"
)

var (
	outputPath string
	pretty     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "slidecmp [ours.pptx] [theirs.pptx] [diff.json]",
		Short: "Compare visual structure of two PPTX files",
		Long: `slidecmp extracts shape geometry, styling, and text from two PPTX files
and reports rendering discrepancies found by fuzzy positional matching.
Issues are diagnostic output, not failures; the exit code stays 0.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "JSON report file path (default: third positional argument)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print the JSON report")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	for _, path := range args[:2] {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", slidecmp.ErrFileNotFound, path)
		}
	}

	jsonPath := outputPath
	if jsonPath == "" && len(args) == 3 {
		jsonPath = args[2]
	}

	fmt.Printf("Extracting from: %s\n", args[0])
	ours, err := slidecmp.Extract(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Extracting from: %s\n", args[1])
	theirs, err := slidecmp.Extract(args[1])
	if err != nil {
		return err
	}

	diffs := slidecmp.Compare(ours, theirs)
	output.WriteText(os.Stdout, ours, theirs, diffs)

	if jsonPath != "" {
		data, err := output.ToJSON(ours, theirs, diffs, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		if err := os.WriteFile(jsonPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Printf("\nDetailed comparison saved to: %s\n", jsonPath)
	}

	return nil
}

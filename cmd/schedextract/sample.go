// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/schedextract/internal/sample"
)

var sampleCmd = &cobra.Command{
	Use:   "sample [output.pdf]",
	Short: "Write a sample schedule PDF",
	Long: `Write a one-page schedule PDF with a title, an academic period, and a
list of courses. Useful for trying the extractor and parser without real
schedule files. The default output is sample.pdf.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSample,
}

func init() {
	sampleCmd.Flags().String("period", sample.Demo().Period, "academic period written on the schedule")
	rootCmd.AddCommand(sampleCmd)
}

func runSample(cmd *cobra.Command, args []string) error {
	path := "sample.pdf"
	if len(args) == 1 {
		path = args[0]
	}
	period, _ := cmd.Flags().GetString("period")

	s := sample.Demo()
	s.Period = period
	if err := sample.Write(path, s); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}

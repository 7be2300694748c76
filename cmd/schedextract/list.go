// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pdiddy/schedextract/internal/archive"
	"github.com/pdiddy/schedextract/internal/render"
	"github.com/pdiddy/schedextract/pkg/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived schedules",
	Long: `List every archived schedule, or show one schedule with its full
course list when --id is given.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().Int64("id", 0, "show the schedule with this ID")
	listCmd.Flags().String("format", string(types.FormatText), "output format: text, yaml, or json")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("format")
	id, _ := cmd.Flags().GetInt64("id")

	s, err := archive.NewStore(archiveConfig())
	if err != nil {
		return err
	}
	defer s.Close()

	if id != 0 {
		return show(cmd.Context(), s, id, types.OutputFormat(format), cmd.OutOrStdout())
	}
	return list(cmd.Context(), s, types.OutputFormat(format), cmd.OutOrStdout())
}

// show prints one archived schedule with all of its courses.
func show(ctx context.Context, s *archive.Store, id int64, format types.OutputFormat, w io.Writer) error {
	sc, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if format != types.FormatText {
		out, err := render.Encode(sc, format)
		if err != nil {
			return err
		}
		return render.WriteOutput(out, "", w)
	}

	fmt.Fprintf(w, "ID:      %d\n", sc.ID)
	fmt.Fprintf(w, "File:    %s\n", sc.SourcePath)
	fmt.Fprintf(w, "Period:  %s\n", orUnknown(sc.Period))
	fmt.Fprintf(w, "Stored:  %s\n", sc.StoredAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(w, "Courses: %d\n", len(sc.Courses))
	for i, c := range sc.Courses {
		fmt.Fprintf(w, "  %d. %s\n", i+1, c)
	}
	return nil
}

func orUnknown(period string) string {
	if period == "" {
		return types.UnknownPeriod
	}
	return period
}

func list(ctx context.Context, s *archive.Store, format types.OutputFormat, w io.Writer) error {
	schedules, err := s.List(ctx)
	if err != nil {
		return err
	}

	if format != types.FormatText {
		out, err := render.Encode(schedules, format)
		if err != nil {
			return err
		}
		return render.WriteOutput(out, "", w)
	}

	if len(schedules) == 0 {
		fmt.Fprintln(w, "no schedules archived")
		return nil
	}
	fmt.Fprintf(w, "%4s  %-30s  %-8s  %7s  %s\n", "ID", "File", "Period", "Courses", "Stored")
	for _, sc := range schedules {
		fmt.Fprintf(w, "%4d  %-30s  %-8s  %7d  %s\n",
			sc.ID, sc.Filename, sc.Period, len(sc.Courses), sc.StoredAt.Format("2006-01-02 15:04"))
	}
	return nil
}

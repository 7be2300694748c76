// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/schedextract/internal/archive"
	"github.com/pdiddy/schedextract/internal/batch"
	"github.com/pdiddy/schedextract/internal/logging"
	"github.com/pdiddy/schedextract/internal/pdftext"
	"github.com/pdiddy/schedextract/pkg/types"
)

var storeCmd = &cobra.Command{
	Use:   "store [files...]",
	Short: "Extract, parse, and archive schedules in SQLite",
	Long: `Extract text from each PDF, parse the schedule, and save it in the
archive database. Schedules are keyed by source path; a file whose text has
not changed since it was last stored is skipped.`,
	RunE: runStore,
}

func init() {
	addInputFlags(storeCmd)
	rootCmd.AddCommand(storeCmd)
}

func runStore(cmd *cobra.Command, args []string) error {
	in := inputConfig(cmd, args)
	if len(in.Paths) == 0 && in.Directory == "" {
		_ = cmd.Help()
		return errNoInput
	}

	log := logging.New(cmd.ErrOrStderr(), viper.GetBool("verbose"))
	defer log.Sync()

	loader, err := pdftext.Select(types.Backend(viper.GetString("backend")))
	if err != nil {
		return err
	}

	s, err := archive.NewStore(archiveConfig())
	if err != nil {
		return err
	}
	defer s.Close()

	return store(cmd.Context(), s, in, loader, log, cmd.OutOrStdout())
}

func store(ctx context.Context, s *archive.Store, in types.InputConfig, loader pdftext.Loader, log *zap.Logger, w io.Writer) error {
	res, err := batch.NewRunner(pdftext.NewExtractor(loader, log), log).RunInputs(in)
	if err != nil {
		return err
	}

	summary, err := s.Ingest(ctx, res.Results, w)
	if err != nil {
		return fmt.Errorf("archiving schedules: %w", err)
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d schedules failed to archive", summary.Failed, summary.Total())
	}
	return nil
}

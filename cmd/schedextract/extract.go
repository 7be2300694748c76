// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/schedextract/internal/batch"
	"github.com/pdiddy/schedextract/internal/logging"
	"github.com/pdiddy/schedextract/internal/pdftext"
	"github.com/pdiddy/schedextract/internal/render"
	"github.com/pdiddy/schedextract/pkg/types"
)

var errNoInput = errors.New("provide one or more PDF files or --directory")

func runExtract(cmd *cobra.Command, args []string) error {
	cfg := extractConfig(cmd, args)
	if len(cfg.Paths) == 0 && cfg.Directory == "" {
		_ = cmd.Help()
		return errNoInput
	}

	log := logging.New(cmd.ErrOrStderr(), cfg.Verbose)
	defer log.Sync()

	loader, err := pdftext.Select(cfg.Backend)
	if err != nil {
		return err
	}
	return extract(cfg, loader, log, cmd.OutOrStdout())
}

// extract runs the batch, renders the results, and writes them to the
// configured destination.
func extract(cfg types.ExtractConfig, loader pdftext.Loader, log *zap.Logger, stdout io.Writer) error {
	ex := pdftext.NewExtractor(loader, log)
	res, err := batch.NewRunner(ex, log).RunInputs(cfg.InputConfig)
	if err != nil {
		return err
	}

	out, err := render.Render(res.Results, cfg.Mode, cfg.Format)
	switch {
	case errors.Is(err, render.ErrTooFewToCompare):
		log.Warn("Need at least 2 PDFs to compare")
	case err != nil:
		return err
	}

	if err := render.WriteOutput(out, cfg.Output, stdout); err != nil {
		if errors.Is(err, render.ErrWriteOutput) {
			log.Error("writing output failed, printing to stdout instead", zap.Error(err))
			if werr := render.WriteOutput(out, "", stdout); werr != nil {
				log.Error("printing output failed", zap.Error(werr))
			}
		}
		return err
	}
	if out != "" && cfg.Output != "" {
		log.Info("Output saved to " + cfg.Output)
	}

	log.Info(fmt.Sprintf("Processed %d PDF(s) successfully using %s", res.Processed(), ex.Backend()))
	return nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/schedextract/internal/batch"
	"github.com/pdiddy/schedextract/internal/inspect"
	"github.com/pdiddy/schedextract/internal/logging"
	"github.com/pdiddy/schedextract/internal/render"
	"github.com/pdiddy/schedextract/pkg/types"
)

var errNothingInspected = errors.New("no PDFs could be inspected")

var infoCmd = &cobra.Command{
	Use:   "info [files...]",
	Short: "Show page count and document metadata for PDFs",
	Long: `Validate each PDF and print its page count, PDF version, and the
title, author, and producer from the document information dictionary.

Files that fail validation are logged and skipped.`,
	RunE: runInfo,
}

func init() {
	addInputFlags(infoCmd)
	infoCmd.Flags().String("format", string(types.FormatText), "output format: text, yaml, or json")
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	in := inputConfig(cmd, args)
	if len(in.Paths) == 0 && in.Directory == "" {
		_ = cmd.Help()
		return errNoInput
	}
	format, _ := cmd.Flags().GetString("format")

	log := logging.New(cmd.ErrOrStderr(), viper.GetBool("verbose"))
	defer log.Sync()

	return info(in, types.OutputFormat(format), log, cmd.OutOrStdout())
}

func info(in types.InputConfig, format types.OutputFormat, log *zap.Logger, w io.Writer) error {
	paths, err := batch.Resolve(in)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return batch.ErrNoInputs
	}

	infos := inspect.InspectAll(paths, log)
	if len(infos) == 0 {
		return errNothingInspected
	}

	if format == types.FormatText {
		inspect.Write(w, infos)
		return nil
	}
	out, err := render.Encode(infos, format)
	if err != nil {
		return err
	}
	return render.WriteOutput(out, "", w)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/schedextract/pkg/types"
)

// mustBind binds a flag to a viper key. Binding only fails for a nil flag,
// which is a programming error.
func mustBind(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

// extractConfig assembles the run configuration from flags, the config
// file, and SCHEDEXTRACT_* environment variables.
func extractConfig(cmd *cobra.Command, args []string) types.ExtractConfig {
	dir, _ := cmd.Flags().GetString("directory")
	output, _ := cmd.Flags().GetString("output")
	compare, _ := cmd.Flags().GetBool("compare")
	parse, _ := cmd.Flags().GetBool("parse")

	mode := types.ModeRaw
	switch {
	case compare:
		mode = types.ModeCompare
	case parse:
		mode = types.ModeParse
	}

	pattern := viper.GetString("pattern")
	if pattern == "" {
		pattern = types.DefaultPattern
	}
	format := types.OutputFormat(viper.GetString("format"))
	if format == "" {
		format = types.FormatText
	}

	return types.ExtractConfig{
		InputConfig: types.InputConfig{
			Paths:     args,
			Directory: dir,
			Pattern:   pattern,
		},
		Backend: types.Backend(viper.GetString("backend")),
		Mode:    mode,
		Format:  format,
		Output:  output,
		Verbose: viper.GetBool("verbose"),
	}
}

func archiveConfig() types.ArchiveConfig {
	return types.ArchiveConfig{DBPath: viper.GetString("archive.db_path")}
}

// inputConfig reads the --directory and --pattern flags of a subcommand.
func inputConfig(cmd *cobra.Command, args []string) types.InputConfig {
	dir, _ := cmd.Flags().GetString("directory")
	pattern, _ := cmd.Flags().GetString("pattern")
	return types.InputConfig{Paths: args, Directory: dir, Pattern: pattern}
}

// addInputFlags registers --directory and --pattern on a subcommand.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("directory", "d", "", "process all PDFs in directory")
	cmd.Flags().String("pattern", types.DefaultPattern, "glob pattern for directory mode")
}

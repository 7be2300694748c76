// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the schedextract CLI. The root command
// extracts text from schedule PDFs; subcommands inspect PDFs, archive parsed
// schedules, and write sample documents.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/schedextract/internal/archive"
	"github.com/pdiddy/schedextract/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd extracts, parses, or compares schedule PDFs.
var rootCmd = &cobra.Command{
	Use:   "schedextract [files...]",
	Short: "Extract and analyze text from LaTeX schedule PDFs",
	Long: `schedextract extracts plain text from class schedule PDFs and can parse
the schedule title, academic period, and course names from that text.

By default the raw text of every file is printed. Use --parse for a
structured summary per schedule or --compare to list several schedules
side by side. Files come from the arguments or from --directory.`,
	Example: `  # Extract text from a single PDF
  schedextract schedule.pdf

  # Extract from all PDFs in the Schedules directory
  schedextract --directory Schedules/

  # Compare multiple schedules
  schedextract --compare Schedules/UScheduleSophie.pdf Schedules/UScheduleSergio.pdf

  # Parse schedule information as YAML
  schedextract --parse --format yaml schedule.pdf

  # Save output to a file
  schedextract schedule.pdf --output output.txt`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runExtract,
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./schedextract.yaml or ~/.config/schedextract/schedextract.yaml)")
	pf.String("backend", "", "PDF library: ledongthuc, dslipak, or rsc (default: first available)")
	pf.BoolP("verbose", "v", false, "enable verbose output")
	pf.String("db", archive.DefaultDBPath, "archive database used by store and list")

	f := rootCmd.Flags()
	f.StringP("directory", "d", "", "process all PDFs in directory")
	f.String("pattern", types.DefaultPattern, "glob pattern for directory mode")
	f.StringP("output", "o", "", "save output to file instead of stdout")
	f.BoolP("compare", "c", false, "compare multiple schedule PDFs")
	f.BoolP("parse", "p", false, "parse and display schedule information")
	f.String("format", string(types.FormatText), "output format for --parse and --compare: text, yaml, or json")

	mustBind("backend", pf.Lookup("backend"))
	mustBind("verbose", pf.Lookup("verbose"))
	mustBind("archive.db_path", pf.Lookup("db"))
	mustBind("pattern", f.Lookup("pattern"))
	mustBind("format", f.Lookup("format"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("schedextract")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "schedextract"))
		}
	}

	viper.SetEnvPrefix("SCHEDEXTRACT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

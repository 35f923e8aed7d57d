// Package main provides the CLI entry point for doccheck.
package main

import (
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using system environment variables")
	}

	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		log.Error().Err(err).Msg("doccheck failed")
		os.Exit(1)
	}
}

// newRootCmd builds the command tree reading prompts from in and writing
// results to out.
func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	g := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "doccheck",
		Short: "Compare spreadsheet ranges and classify PDF pages",
		Long: `doccheck compares a cell range between two Excel sheets, writing the
differing cells to a new workbook, and classifies PDF pages by keyword.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if g.verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)

	rootCmd.PersistentFlags().StringVar(&g.configFile, "config", "", "Config file (default: ./doccheck.yaml if present)")
	rootCmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "Verbose logging")

	rootCmd.AddCommand(
		newCompareCmd(g),
		newClassifyCmd(g),
	)
	return rootCmd
}

// globalFlags holds persistent flags shared by all subcommands.
type globalFlags struct {
	configFile string
	verbose    bool
}

package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/ukaji3/doccheck-go/pkg/doccheck"
	"github.com/ukaji3/doccheck-go/pkg/doccheck/models"
	"github.com/ukaji3/doccheck-go/pkg/doccheck/normalize"
	"github.com/ukaji3/doccheck-go/pkg/doccheck/output"
)

type compareFlags struct {
	left       string
	leftSheet  string
	right      string
	rightSheet string
	cellRange  string
	places     int32
	output     string
	format     string
}

func newCompareCmd(g *globalFlags) *cobra.Command {
	f := &compareFlags{}

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare a cell range between two Excel sheets",
		Long: `Compare a cell range between two Excel sheets cell by cell.

Numbers are rounded (half away from zero) before comparison, text is compared
ignoring case and surrounding whitespace. Differing cells are written to a new
workbook; when nothing differs the workbook holds a single "No mismatches found"
row. Inputs not given as flags are prompted for.

Example: doccheck compare --left a.xlsx --left-sheet Sheet1 --right b.xlsx --right-sheet Sheet1 --range A1:D20`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, g, f)
		},
	}

	cmd.Flags().StringVar(&f.left, "left", "", "Path of the first Excel file")
	cmd.Flags().StringVar(&f.leftSheet, "left-sheet", "", "Sheet name in the first file")
	cmd.Flags().StringVar(&f.right, "right", "", "Path of the second Excel file")
	cmd.Flags().StringVar(&f.rightSheet, "right-sheet", "", "Sheet name in the second file")
	cmd.Flags().StringVar(&f.cellRange, "range", "", "Cell range to compare, e.g. A1:D20 (default: used range of both sheets)")
	cmd.Flags().Int32Var(&f.places, "places", normalize.DefaultPlaces, "Decimal places numbers are rounded to")
	cmd.Flags().StringVarP(&f.output, "output", "o", output.DefaultReportPath, "Report workbook path")
	cmd.Flags().StringVar(&f.format, "format", "text", "Summary format on stdout: text, json, yaml")

	return cmd
}

func runCompare(cmd *cobra.Command, g *globalFlags, f *compareFlags) error {
	cfg, err := loadConfig(g.configFile, cmd.Flags(), "places", "output", "format")
	if err != nil {
		return err
	}
	if err := checkFormat(cfg.Format); err != nil {
		return err
	}

	p := newPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
	prompted := false
	ask := func(value *string, question string) error {
		if *value != "" {
			return nil
		}
		prompted = true
		answer, err := p.ask(question)
		if err != nil {
			return err
		}
		*value = answer
		return nil
	}

	if err := ask(&f.left, "Enter path for first Excel file: "); err != nil {
		return err
	}
	if err := ask(&f.leftSheet, "Enter sheet name for first file: "); err != nil {
		return err
	}
	if err := ask(&f.right, "Enter path for second Excel file: "); err != nil {
		return err
	}
	if err := ask(&f.rightSheet, "Enter sheet name for second file: "); err != nil {
		return err
	}
	if prompted && !cmd.Flags().Changed("range") {
		answer, err := p.ask("Enter cell range to compare (e.g. A1:D20, blank for used range): ")
		if err != nil {
			return err
		}
		f.cellRange = answer
	}

	places := cfg.Places
	result, err := doccheck.CompareFiles(
		doccheck.SheetRef{Path: f.left, Sheet: f.leftSheet},
		doccheck.SheetRef{Path: f.right, Sheet: f.rightSheet},
		f.cellRange,
		doccheck.CompareOptions{Places: &places},
	)
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}

	if err := doccheck.WriteReport(result, cfg.Output); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	log.Info().
		Str("report", cfg.Output).
		Str("range", result.Range).
		Int("mismatches", len(result.Mismatches)).
		Msg("report written")

	return printCompareSummary(cmd, result, cfg)
}

func printCompareSummary(cmd *cobra.Command, result *models.ComparisonResult, cfg *appConfig) error {
	out := cmd.OutOrStdout()
	switch cfg.Format {
	case "json":
		data, err := output.ToJSON(result, true)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	case "yaml":
		data, err := output.ToYAML(result)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		_, err = out.Write(data)
		return err
	}

	if result.HasMismatches() {
		_, err := fmt.Fprintf(out, "%d mismatches found and saved to %s\n", len(result.Mismatches), cfg.Output)
		return err
	}
	_, err := fmt.Fprintf(out, "No mismatches found! %s created.\n", cfg.Output)
	return err
}

func checkFormat(format string) error {
	switch format {
	case "text", "json", "yaml":
		return nil
	}
	return fmt.Errorf("invalid format: %s (must be text, json, or yaml)", format)
}

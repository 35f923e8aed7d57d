package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/doccheck-go/pkg/doccheck"
	"github.com/ukaji3/doccheck-go/pkg/doccheck/models"
	"github.com/ukaji3/doccheck-go/pkg/doccheck/output"
)

func newClassifyCmd(g *globalFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "classify [file.pdf]",
		Short: "Classify each page of a PDF by keyword",
		Long: `Classify each page of a PDF by case-insensitive keyword containment.

Rules are checked in order and the first match wins. The default order is
invoice, purchase order, packing list; override it with classify.rules in the
config file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(g.configFile, cmd.Flags(), "format")
			if err != nil {
				return err
			}
			if err := checkFormat(cfg.Format); err != nil {
				return err
			}

			var path string
			if len(args) == 1 {
				path = args[0]
			} else {
				path, err = newPrompter(cmd.InOrStdin(), cmd.OutOrStdout()).ask("Enter full PDF file path: ")
				if err != nil {
					return err
				}
			}

			pages, err := doccheck.ClassifyFile(path, doccheck.ClassifyOptions{
				Rules:    cfg.Classify.Rules,
				Fallback: cfg.Classify.Fallback,
			})
			if err != nil {
				return fmt.Errorf("classification failed: %w", err)
			}
			return printPages(cmd, pages, cfg.Format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format: text, json, yaml")
	return cmd
}

func printPages(cmd *cobra.Command, pages []models.PageClassification, format string) error {
	out := cmd.OutOrStdout()
	switch format {
	case "json":
		data, err := output.ToJSON(pages, true)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	case "yaml":
		data, err := output.ToYAML(pages)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		_, err = out.Write(data)
		return err
	}

	fmt.Fprintln(out, "Classification Results:")
	for _, p := range pages {
		if _, err := fmt.Fprintf(out, "Page %d: %s\n", p.Page, p.Label); err != nil {
			return err
		}
	}
	return nil
}

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/draft"
	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/export"
	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/extraction"
)

func newParseExtractionCmd(a *app) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "parse-extraction [response-file]",
		Short: "Turn an extraction response into a draft",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, _, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			result, err := extraction.Parse(data)
			if err != nil {
				return err
			}
			a.logger.Info("parsed extraction response",
				zap.String("shape", string(result.Shape)),
				zap.Int("fields", len(result.Template.Fields)),
			)
			return a.write(cmd, draft.FromTemplate("", name, result.Template))
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "template name for the draft")
	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	var (
		templatePath string
		outPath      string
	)
	cmd := &cobra.Command{
		Use:   "export --template <draft-file> --out <file.xlsx> <response-file>...",
		Short: "Export extraction responses for a template to an XLSX workbook",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := readDraft(cmd, []string{templatePath})
			if err != nil {
				return err
			}
			docs := make([]export.Document, 0, len(args))
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				result, err := extraction.Parse(data)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				if result.Structure == nil {
					a.logger.Warn("response has no hierarchical data, skipping", zap.String("file", path))
					continue
				}
				docs = append(docs, export.Document{
					Name:      strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
					Structure: result.Structure,
				})
			}

			out, err := os.Create(outPath)
			if err != nil {
				return err
			}
			exporter := export.New(export.WithLogger(a.logger))
			if err := exporter.Write(cmd.Context(), out, d.Template(), docs); err != nil {
				_ = out.Close()
				return err
			}
			if err := out.Close(); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d document(s) to %s\n", len(docs), outPath)
			return err
		},
	}
	cmd.Flags().StringVar(&templatePath, "template", "", "draft file describing the template")
	cmd.Flags().StringVar(&outPath, "out", "export.xlsx", "output workbook path")
	_ = cmd.MarkFlagRequired("template")
	return cmd
}

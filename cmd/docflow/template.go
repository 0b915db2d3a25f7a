package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/draft"
	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/hierarchy"
	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/naming"
)

func newEncodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "encode [draft-file]",
		Short: "Encode a draft (JSON or YAML) into a hierarchical structure",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := readDraft(cmd, args)
			if err != nil {
				return err
			}
			obj := hierarchy.Encode(d.Sections, d.Fields, hierarchy.WithTypeAnnotations(a.cfg.TypeAnnotations))
			a.logger.Debug("encoded template",
				zap.String("name", d.Name),
				zap.Int("sections", len(d.Sections)),
				zap.Int("fields", len(d.Fields)),
			)
			return a.write(cmd, obj)
		},
	}
}

func newDecodeCmd(a *app) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "decode [structure-file]",
		Short: "Decode a hierarchical structure into a draft",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			obj, err := readStructure(cmd, args)
			if err != nil {
				return err
			}
			tmpl, err := hierarchy.Decode(obj)
			if err != nil {
				return err
			}
			if name == "" && len(args) > 0 && args[0] != "-" {
				name = naming.FormatDisplayName(strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0])))
			}
			a.logger.Debug("decoded structure", zap.Int("fields", len(tmpl.Fields)))
			return a.write(cmd, draft.FromTemplate("", name, tmpl))
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "template name (default: derived from the file name)")
	return cmd
}

func newStripCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "strip [structure-file]",
		Short: "Remove page-number artifacts from every key of a structure",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			obj, err := readStructure(cmd, args)
			if err != nil {
				return err
			}
			return a.write(cmd, hierarchy.StripPageSuffixesDeep(obj))
		},
	}
}

func newFormatNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format-name <key>...",
		Short: "Print the display name derived from each structural key",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, key := range args {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), naming.FormatDisplayName(key)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

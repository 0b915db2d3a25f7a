package main

import (
	"github.com/spf13/cobra"

	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/extractschema"
	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/hierarchy"
)

func newSchemaCmd(a *app) *cobra.Command {
	var (
		document bool
		version  string
	)
	cmd := &cobra.Command{
		Use:   "schema [draft-file]",
		Short: "Print the schema an extraction result for a draft must satisfy",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := readDraft(cmd, args)
			if err != nil {
				return err
			}
			obj := hierarchy.Encode(d.Sections, d.Fields, hierarchy.WithTypeAnnotations(true))
			schema := extractschema.FromStructure(obj)
			if !document {
				return a.write(cmd, schema)
			}
			doc, err := extractschema.Document(cmd.Context(), d.Name, version, schema)
			if err != nil {
				return err
			}
			return a.write(cmd, doc)
		},
	}
	cmd.Flags().BoolVar(&document, "openapi", false, "wrap the schema in a validated OpenAPI document")
	cmd.Flags().StringVar(&version, "version", "1.0.0", "document version used with --openapi")
	return cmd
}

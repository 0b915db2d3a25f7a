package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/hierarchy"
	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/record"
)

func newRecordCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "record [draft-file]",
		Short: "Build the persisted record for a draft",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := readDraft(cmd, args)
			if err != nil {
				return err
			}
			rec, err := record.FromDraft(d,
				record.WithPageStrip(a.cfg.StripPages),
				record.WithEncodeOptions(hierarchy.WithTypeAnnotations(a.cfg.TypeAnnotations)),
			)
			if err != nil {
				return err
			}
			raw, err := json.Marshal(rec)
			if err != nil {
				return err
			}
			if result := record.Validate(raw); !result.Valid {
				return fmt.Errorf("record: generated record failed validation: %v", result.Issues)
			}
			return a.write(cmd, rec)
		},
	}
}

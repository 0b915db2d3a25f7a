package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/authoring"
)

func newNewCmd(a *app) *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Interactively author a new template draft",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			author := authoring.New(authoring.WithPromptDriver(authoring.NewSurveyDriver(cmd.ErrOrStderr())))
			d, err := author.Author(cmd.Context())
			if err != nil {
				return err
			}
			a.logger.Info("authored template", zap.String("name", d.Name), zap.Int("fields", len(d.Fields)))
			if outPath == "" {
				return a.write(cmd, d)
			}
			out, err := os.Create(outPath)
			if err != nil {
				return err
			}
			cmd.SetOut(out)
			writeErr := a.write(cmd, d)
			if err := out.Close(); err != nil && writeErr == nil {
				writeErr = err
			}
			if writeErr != nil {
				return writeErr
			}
			_, err = fmt.Fprintf(cmd.ErrOrStderr(), "Draft written to %s\n", outPath)
			return err
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "", "write the draft to this file instead of stdout")
	return cmd
}

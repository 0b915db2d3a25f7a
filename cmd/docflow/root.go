package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SHRUTI-SHAR/DocFlow-sub000/internal/config"
)

// app carries the resolved settings shared by every subcommand.
type app struct {
	cfgFile string
	cfg     config.Config
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Defaults(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "docflow",
		Short: "Convert document templates between field lists and hierarchical structures",
		Long: `docflow works with document extraction templates.

It encodes a template draft (sections and fields) into the hierarchical
structure sent to the extraction service, decodes such structures back into
drafts, strips page-number artifacts, builds extraction schemas and
persisted records, and exports batches of results to XLSX.`,
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: ./docflow.yaml or ~/.docflow/docflow.yaml)")
	flags.StringP("output", "o", config.OutputJSON, "output format: json or yaml")
	flags.Bool("strip-pages", true, "remove page-number artifacts from stored structures")
	flags.Bool("type-annotations", true, "emit _type annotations for typed fields")
	flags.String("log-level", "warn", "log level: debug, info, warn or error")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		v := config.New(a.cfgFile)
		bindings := map[string]string{
			"output":           "output",
			"strip_pages":      "strip-pages",
			"type_annotations": "type-annotations",
			"log.level":        "log-level",
		}
		for key, name := range bindings {
			if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
				return err
			}
		}
		cfg, err := config.Load(v)
		if err != nil {
			return err
		}
		logger, err := cfg.Log.Logger()
		if err != nil {
			return err
		}
		a.cfg = cfg
		a.logger = logger
		return nil
	}
	root.PersistentPostRun = func(cmd *cobra.Command, args []string) {
		_ = a.logger.Sync()
	}

	root.AddCommand(
		newEncodeCmd(a),
		newDecodeCmd(a),
		newStripCmd(a),
		newFormatNameCmd(),
		newSchemaCmd(a),
		newParseExtractionCmd(a),
		newRecordCmd(a),
		newExportCmd(a),
		newNewCmd(a),
	)
	return root
}

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"
	"gopkg.in/yaml.v3"

	"github.com/SHRUTI-SHAR/DocFlow-sub000/internal/config"
	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/draft"
	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/structure"
)

// readInput returns the contents of the first argument, or stdin when no
// argument or "-" is given.
func readInput(cmd *cobra.Command, args []string) ([]byte, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		return data, "stdin", err
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, args[0], err
	}
	return data, args[0], nil
}

func readDraft(cmd *cobra.Command, args []string) (draft.Draft, error) {
	data, source, err := readInput(cmd, args)
	if err != nil {
		return draft.Draft{}, err
	}
	return draft.Parse(data, source)
}

// readStructure parses a hierarchical structure from JSON, falling back to
// YAML. Both keep document key order.
func readStructure(cmd *cobra.Command, args []string) (*structure.Object, error) {
	data, source, err := readInput(cmd, args)
	if err != nil {
		return nil, err
	}
	obj, jsonErr := structure.Parse(data)
	if jsonErr == nil {
		return obj, nil
	}
	var fromYAML structure.Object
	if err := yaml.Unmarshal(data, &fromYAML); err != nil {
		return nil, fmt.Errorf("%s: %w", source, errors.Join(jsonErr, err))
	}
	return &fromYAML, nil
}

func (a *app) write(cmd *cobra.Command, value any) error {
	out := cmd.OutOrStdout()
	if a.cfg.Output == config.OutputYAML {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return err
		}
		return enc.Close()
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	_, err = out.Write(pretty.Pretty(raw))
	return err
}

package draft

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFS walks fsys and parses every JSON or YAML file as a draft. A draft
// without an id takes the file name without extension. Duplicate ids are
// rejected. A nil fsys yields no drafts.
func LoadFS(fsys fs.FS) ([]Draft, error) {
	if fsys == nil {
		return nil, nil
	}

	var drafts []Draft
	sources := make(map[string]string)

	err := fs.WalkDir(fsys, ".", func(name string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isDraftFile(name) {
			return nil
		}

		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("draft: read %s: %w", name, err)
		}
		d, err := Parse(data, name)
		if err != nil {
			return err
		}
		if d.TemplateID == "" {
			d.TemplateID = strings.TrimSuffix(path.Base(name), path.Ext(name))
		}
		if previous, exists := sources[d.TemplateID]; exists {
			return fmt.Errorf("draft: duplicate template id %q (files %s and %s)", d.TemplateID, previous, name)
		}
		sources[d.TemplateID] = name
		drafts = append(drafts, d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return drafts, nil
}

// Parse reads a single JSON or YAML draft document. source names the input
// in error messages.
func Parse(data []byte, source string) (Draft, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Draft{}, fmt.Errorf("draft: file %s is empty", source)
	}

	var d Draft
	if err := json.Unmarshal(data, &d); err != nil {
		d = Draft{}
		if yamlErr := yaml.Unmarshal(data, &d); yamlErr != nil {
			return Draft{}, fmt.Errorf("draft: parse %s: invalid JSON or YAML", source)
		}
	}
	d.TemplateID = strings.TrimSpace(d.TemplateID)
	return d, nil
}

func isDraftFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

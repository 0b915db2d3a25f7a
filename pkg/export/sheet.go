package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

type sheetWriter struct {
	file        *excelize.File
	headerStyle int
}

func (w *sheetWriter) header(sheet string, col, row int, values []string) error {
	if len(values) == 0 {
		return nil
	}
	cells := make([]any, len(values))
	for i, value := range values {
		cells[i] = value
	}
	if err := w.row(sheet, row, col, cells); err != nil {
		return err
	}
	first, _ := excelize.CoordinatesToCellName(col, row)
	last, _ := excelize.CoordinatesToCellName(col+len(values)-1, row)
	if err := w.file.SetCellStyle(sheet, first, last, w.headerStyle); err != nil {
		return fmt.Errorf("export: style %s!%s: %w", sheet, first, err)
	}
	return nil
}

func (w *sheetWriter) row(sheet string, row, col int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("export: cell name: %w", err)
	}
	if err := w.file.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("export: write %s!%s: %w", sheet, cell, err)
	}
	return nil
}

func (w *sheetWriter) merge(sheet string, fromCol, fromRow, toCol, toRow int) error {
	first, _ := excelize.CoordinatesToCellName(fromCol, fromRow)
	last, _ := excelize.CoordinatesToCellName(toCol, toRow)
	if err := w.file.MergeCell(sheet, first, last); err != nil {
		return fmt.Errorf("export: merge %s!%s:%s: %w", sheet, first, last, err)
	}
	return nil
}

// sheetNames hands out unique, valid sheet names.
type sheetNames struct {
	used map[string]struct{}
}

func newSheetNames(reserved ...string) *sheetNames {
	names := &sheetNames{used: make(map[string]struct{})}
	for _, name := range reserved {
		names.used[strings.ToLower(name)] = struct{}{}
	}
	return names
}

var invalidSheetChars = strings.NewReplacer(":", " ", "\\", " ", "/", " ", "?", " ", "*", " ", "[", "(", "]", ")")

func (n *sheetNames) allocate(label string) string {
	base := strings.Join(strings.Fields(invalidSheetChars.Replace(label)), " ")
	base = strings.Trim(base, "'")
	if base == "" {
		base = "Table"
	}
	for i := 1; ; i++ {
		candidate := base
		if i > 1 {
			suffix := " (" + strconv.Itoa(i) + ")"
			candidate = truncate(base, maxSheetName-len(suffix)) + suffix
		} else {
			candidate = truncate(base, maxSheetName)
		}
		if _, taken := n.used[strings.ToLower(candidate)]; taken {
			continue
		}
		n.used[strings.ToLower(candidate)] = struct{}{}
		return candidate
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return strings.TrimSpace(string(runes[:n]))
}

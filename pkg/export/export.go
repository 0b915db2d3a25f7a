package export

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/hierarchy"
	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/model"
	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/structure"
)

// SummarySheet is the name of the sheet holding one row per document.
const SummarySheet = "Summary"

const (
	defaultSheet   = "Sheet1"
	documentHeader = "Document"
	maxSheetName   = 31
)

// Document is one extracted document of a batch.
type Document struct {
	Name      string
	Structure *structure.Object
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithLogger sets the logger used for export events.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Exporter) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// Exporter builds workbooks for document batches.
type Exporter struct {
	logger *zap.Logger
}

// New returns an Exporter.
func New(options ...Option) *Exporter {
	e := &Exporter{logger: zap.NewNop()}
	for _, option := range options {
		if option != nil {
			option(e)
		}
	}
	return e
}

// Workbook lays docs out against tmpl. The summary sheet has one column per
// non-table field; every table field gets a sheet of its own with one row
// per table row and the document name in the first column. Page suffixes in
// the documents are ignored when matching keys.
func (e *Exporter) Workbook(ctx context.Context, tmpl model.Template, docs []Document) (*excelize.File, error) {
	start := time.Now()
	layout := hierarchy.Layout(tmpl.Sections, tmpl.Fields)

	normalised := make([]*structure.Object, len(docs))
	for i, doc := range docs {
		normalised[i] = hierarchy.StripPageSuffixesDeep(doc.Structure)
	}

	f := excelize.NewFile()
	if err := f.SetSheetName(defaultSheet, SummarySheet); err != nil {
		return nil, fmt.Errorf("export: rename sheet: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("export: header style: %w", err)
	}
	w := &sheetWriter{file: f, headerStyle: headerStyle}

	var leaves, tables []hierarchy.Placement
	for _, placement := range layout {
		if placement.Field.IsTable() {
			tables = append(tables, placement)
			continue
		}
		leaves = append(leaves, placement)
	}

	if err := e.writeSummary(ctx, w, leaves, docs, normalised); err != nil {
		return nil, err
	}

	names := newSheetNames(SummarySheet)
	for _, placement := range tables {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sheet := names.allocate(placement.Field.Label)
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("export: new sheet %q: %w", sheet, err)
		}
		if err := writeTable(w, sheet, placement, docs, normalised); err != nil {
			return nil, err
		}
	}

	e.logger.Info("workbook built",
		zap.Int("documents", len(docs)),
		zap.Int("summary_columns", len(leaves)),
		zap.Int("table_sheets", len(tables)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return f, nil
}

// Write builds the workbook and writes it to out.
func (e *Exporter) Write(ctx context.Context, out io.Writer, tmpl model.Template, docs []Document) error {
	f, err := e.Workbook(ctx, tmpl, docs)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(out); err != nil {
		return fmt.Errorf("export: write workbook: %w", err)
	}
	return nil
}

func (e *Exporter) writeSummary(ctx context.Context, w *sheetWriter, leaves []hierarchy.Placement, docs []Document, normalised []*structure.Object) error {
	headers := []string{documentHeader}
	for _, placement := range leaves {
		headers = append(headers, summaryHeader(placement))
	}
	if err := w.header(SummarySheet, 1, 1, headers); err != nil {
		return err
	}

	for i, doc := range docs {
		if err := ctx.Err(); err != nil {
			return err
		}
		row := []any{doc.Name}
		for _, placement := range leaves {
			row = append(row, cellValue(lookup(normalised[i], placement)))
		}
		if err := w.row(SummarySheet, i+2, 1, row); err != nil {
			return err
		}
	}
	if err := w.file.SetColWidth(SummarySheet, "A", "A", 28); err != nil {
		return fmt.Errorf("export: column width: %w", err)
	}
	return nil
}

func summaryHeader(placement hierarchy.Placement) string {
	section := strings.TrimSpace(placement.Section.Name)
	if section == "" {
		return placement.Field.Label
	}
	return section + " / " + placement.Field.Label
}

func writeTable(w *sheetWriter, sheet string, placement hierarchy.Placement, docs []Document, normalised []*structure.Object) error {
	columns, dataRow, err := writeTableHeader(w, sheet, placement.Field)
	if err != nil {
		return err
	}

	row := dataRow
	for i, doc := range docs {
		rows, _ := lookup(normalised[i], placement).([]any)
		for _, item := range rows {
			obj, ok := item.(*structure.Object)
			if !ok || !hasValues(obj) {
				continue
			}
			values := []any{doc.Name}
			for _, column := range columns {
				values = append(values, cellValue(column.read(obj)))
			}
			if err := w.row(sheet, row, 1, values); err != nil {
				return err
			}
			row++
		}
	}
	return nil
}

// tableColumn reads one column out of a table row.
type tableColumn struct {
	parent string
	name   string
}

func (c tableColumn) read(row *structure.Object) any {
	if c.parent == "" {
		value, _ := row.Get(c.name)
		return value
	}
	if nested, ok := mustGet(row, c.parent).(*structure.Object); ok {
		if value, ok := nested.Get(c.name); ok {
			return value
		}
	}
	value, _ := row.Get(c.parent + "_" + c.name)
	return value
}

// writeTableHeader writes the header rows of a table sheet and returns the
// columns and the first data row. Grouped tables get a second header row with
// parent headers merged across their sub columns.
func writeTableHeader(w *sheetWriter, sheet string, field model.Field) ([]tableColumn, int, error) {
	if !field.IsGroupedTable || len(field.GroupedHeaders) == 0 {
		headers := []string{documentHeader}
		columns := make([]tableColumn, 0, len(field.Columns))
		for _, column := range field.Columns {
			headers = append(headers, column)
			columns = append(columns, tableColumn{name: column})
		}
		if err := w.header(sheet, 1, 1, headers); err != nil {
			return nil, 0, err
		}
		return columns, 2, nil
	}

	if err := w.header(sheet, 1, 1, []string{documentHeader}); err != nil {
		return nil, 0, err
	}
	if err := w.merge(sheet, 1, 1, 1, 2); err != nil {
		return nil, 0, err
	}

	var columns []tableColumn
	col := 2
	for _, header := range field.GroupedHeaders {
		if len(header.SubHeaders) == 0 {
			if err := w.header(sheet, col, 1, []string{header.Name}); err != nil {
				return nil, 0, err
			}
			if err := w.merge(sheet, col, 1, col, 2); err != nil {
				return nil, 0, err
			}
			columns = append(columns, tableColumn{name: header.Name})
			col++
			continue
		}

		if err := w.header(sheet, col, 1, []string{header.Name}); err != nil {
			return nil, 0, err
		}
		if err := w.header(sheet, col, 2, header.SubHeaders); err != nil {
			return nil, 0, err
		}
		if last := col + len(header.SubHeaders) - 1; last > col {
			if err := w.merge(sheet, col, 1, last, 1); err != nil {
				return nil, 0, err
			}
		}
		for _, sub := range header.SubHeaders {
			columns = append(columns, tableColumn{parent: header.Name, name: sub})
		}
		col += len(header.SubHeaders)
	}
	return columns, 3, nil
}

// lookup finds the value of a placed field in an extracted structure: under
// its section first, then at the top level for flat results.
func lookup(obj *structure.Object, placement hierarchy.Placement) any {
	if section, ok := mustGet(obj, placement.Section.ID).(*structure.Object); ok {
		if value, ok := section.Get(placement.Key); ok {
			return value
		}
	}
	return mustGet(obj, placement.Key)
}

// cellValue converts a structure value into something excelize can store.
// Typed field objects contribute their value member.
func cellValue(value any) any {
	switch typed := value.(type) {
	case nil:
		return nil
	case *structure.Object:
		if inner, ok := typed.Get("value"); ok {
			return cellValue(inner)
		}
		return structure.Stringify(typed)
	case []any:
		return structure.Stringify(typed)
	default:
		return structure.ToInterface(typed)
	}
}

func hasValues(row *structure.Object) bool {
	found := false
	row.Range(func(_ string, value any) bool {
		if nested, ok := value.(*structure.Object); ok {
			found = hasValues(nested)
		} else {
			found = value != nil
		}
		return !found
	})
	return found
}

func mustGet(obj *structure.Object, key string) any {
	value, _ := obj.Get(key)
	return value
}

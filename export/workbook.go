package export

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/mmikkola/kirja/types"
)

// scratchSheet is the sheet excelize creates in a new file.
const scratchSheet = "Sheet1"

// WriteWorkbook writes one worksheet per category in the set, in sorted
// label order, and saves the workbook at path. A failure writing a single
// sheet is logged and that sheet is skipped; the remaining sheets are still
// written. An empty set produces a workbook with a single placeholder sheet.
// Returns the number of category sheets written.
func WriteWorkbook(path string, set types.ResourceSet, logger zerolog.Logger) (int, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	used := make(map[string]bool)
	wrote := 0
	for _, label := range set.Labels() {
		name := SanitizeSheetName(label, used)
		if err := writeSheet(f, name, set[label]); err != nil {
			logger.Error().
				Err(err).
				Str("label", label).
				Str("sheet", name).
				Msg("failed to write sheet")
			continue
		}
		logger.Debug().
			Str("label", label).
			Str("sheet", name).
			Int("records", len(set[label])).
			Msg("sheet written")
		wrote++
	}

	if wrote == 0 {
		// Nothing made it in; keep the default sheet as a placeholder so
		// the file is still a valid workbook.
		if err := f.SetSheetName(scratchSheet, SanitizeSheetName("", used)); err != nil {
			return 0, fmt.Errorf("failed to create placeholder sheet: %w", err)
		}
	} else if !used[scratchSheet] {
		_ = f.DeleteSheet(scratchSheet)
	}

	if err := f.SaveAs(path); err != nil {
		return wrote, fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return wrote, nil
}

func writeSheet(f *excelize.File, name string, records []types.Record) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}

	headers, rows := Flatten(records)
	if len(headers) > 0 {
		if err := setRow(f, name, 1, headers); err != nil {
			return err
		}
	}
	for i, row := range rows {
		if err := setRow(f, name, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cells := make([]any, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return f.SetSheetRow(sheet, cell, &cells)
}

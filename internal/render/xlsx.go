package render

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const xlsxSheet = "Sheet1"

// XLSX writes a single-sheet workbook with a bold header row
func XLSX(w io.Writer, headers []string, rows [][]string) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := setXLSXRow(f, 1, headers); err != nil {
		return err
	}
	if len(headers) > 0 {
		lastHeader, err := excelize.CoordinatesToCellName(len(headers), 1)
		if err != nil {
			return fmt.Errorf("failed to resolve header range: %w", err)
		}
		if err := f.SetCellStyle(xlsxSheet, "A1", lastHeader, headerStyle); err != nil {
			return fmt.Errorf("failed to style header row: %w", err)
		}
	}

	for i, row := range rows {
		if err := setXLSXRow(f, i+2, padRow(row, len(headers))); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write xlsx: %w", err)
	}
	return nil
}

func setXLSXRow(f *excelize.File, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("failed to resolve cell for row %d: %w", rowNum, err)
	}

	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	if err := f.SetSheetRow(xlsxSheet, cell, &cells); err != nil {
		return fmt.Errorf("failed to write row %d: %w", rowNum, err)
	}
	return nil
}

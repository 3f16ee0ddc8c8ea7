// Package export writes extracted resume records as a table.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/spigell/resume-extractor/internal/resume"
)

const sheetName = "Resumes"

// Write saves records to path. A ".xlsx" suffix selects a spreadsheet, anything else CSV.
func Write(path string, records []resume.Record) error {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return WriteXLSX(path, records)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %q: %w", path, err)
	}

	if err := WriteCSV(f, records); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// WriteCSV writes the header and one row per record. There is no index column.
func WriteCSV(w io.Writer, records []resume.Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(resume.Columns); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, record := range records {
		values, err := record.Values()
		if err != nil {
			return err
		}

		row := make([]string, len(values))
		for i, v := range values {
			row[i] = resume.Cell(v)
		}

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row for %q: %w", record.File, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes the same table as WriteCSV into a single worksheet.
func WriteXLSX(path string, records []resume.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	header := make([]any, len(resume.Columns))
	for i, column := range resume.Columns {
		header[i] = column
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("writing xlsx header: %w", err)
	}

	for i, record := range records {
		values, err := record.Values()
		if err != nil {
			return err
		}

		row := make([]any, len(values))
		for j, v := range values {
			row[j] = resume.Cell(v)
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("writing xlsx row for %q: %w", record.File, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %q: %w", path, err)
	}

	return nil
}

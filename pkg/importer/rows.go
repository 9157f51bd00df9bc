package importer

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// rowSource yields one row of cell values at a time, ending with io.EOF.
type rowSource interface {
	Next() ([]string, error)
	Close() error
}

// openRows picks a reader for path by extension: .xlsx and .xls go through
// excelize, everything else is read as CSV. width is the schema width, used
// to pad spreadsheet rows whose trailing empty cells are not stored.
func openRows(path string, width int) (rowSource, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return openSheetRows(path, width)
	default:
		return openCSVRows(path)
	}
}

type csvRows struct {
	f *os.File
	r *csv.Reader
}

func openCSVRows(path string) (*csvRows, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open data file: %s", path)
	}

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // row widths are checked against the schema instead

	return &csvRows{f: f, r: r}, nil
}

func (c *csvRows) Next() ([]string, error) {
	return c.r.Read()
}

func (c *csvRows) Close() error {
	return c.f.Close()
}

type sheetRows struct {
	f     *excelize.File
	rows  *excelize.Rows
	width int
}

// openSheetRows reads the first sheet of an XLSX workbook.
func openSheetRows(path string, width int) (*sheetRows, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open data file: %s", path)
	}

	if f.SheetCount < 1 {
		_ = f.Close()
		return nil, errors.Errorf("data file has no sheets: %s", path)
	}

	rows, err := f.Rows(f.GetSheetName(0))
	if err != nil {
		_ = f.Close()
		return nil, errors.Wrapf(err, "failed to read data file: %s", path)
	}

	return &sheetRows{f: f, rows: rows, width: width}, nil
}

func (s *sheetRows) Next() ([]string, error) {
	for s.rows.Next() {
		cells, err := s.rows.Columns()
		if err != nil {
			return nil, err
		}

		// Rows with no stored cells are artifacts of the sheet, not data.
		if len(cells) == 0 {
			continue
		}

		// Trailing empty cells are not stored in the sheet; pad to the schema
		// width so short rows compare like their CSV equivalent.
		for len(cells) < s.width {
			cells = append(cells, "")
		}

		return cells, nil
	}

	if err := s.rows.Error(); err != nil {
		return nil, err
	}

	return nil, io.EOF
}

func (s *sheetRows) Close() error {
	err := s.rows.Close()
	if cerr := s.f.Close(); err == nil {
		err = cerr
	}

	return err
}

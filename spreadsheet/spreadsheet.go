// Package spreadsheet reads and writes single-sheet xlsx workbooks as plain
// string tables: a header row followed by data rows, column order preserved.
package spreadsheet

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/wisptech/uisp-zabbix-sync/util"
)

const sheetName = "Sheet1"

// Table is a tabular view of a workbook: a header row and the data records
// under it, all cells as strings.
type Table struct {
	Header  []string
	Records [][]string
}

// Column returns the index of a named column, matched case-sensitively
// against the header, or -1 if the table has no such column.
func (t *Table) Column(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}

	return -1
}

// Write serializes a table to an xlsx file: one sheet, header row first, one
// row per record, input order preserved. The workbook is written to a
// temporary file in the destination directory and renamed into place, so a
// failed write leaves no new output file.
func Write(path string, table *Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeRow(f, 1, table.Header); err != nil {
		return err
	}

	for i, record := range table.Records {
		if err := writeRow(f, i+2, record); err != nil {
			return err
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".xlsx-*")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := f.Write(tmp); err != nil {
		return fmt.Errorf("writing workbook %s: %w", path, err)
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

// Read loads the first sheet of an xlsx file. The first row is the header;
// data rows shorter than the header are padded with empty cells so every
// record has the header's width. A missing file fails with an error wrapping
// util.ErrFileNotFound.
func Read(path string) (*Table, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", util.ErrFileNotFound, path)
	} else if err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}

	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("reading workbook %s: %w", path, err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("workbook %s has no header row", path)
	}

	table := Table{
		Header:  rows[0],
		Records: [][]string{},
	}

	for _, row := range rows[1:] {
		record := make([]string, len(table.Header))
		copy(record, row)
		table.Records = append(table.Records, record)
	}

	return &table, nil
}

func writeRow(f *excelize.File, row int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}

	values := make([]interface{}, len(cells))
	for i, v := range cells {
		values[i] = v
	}

	return f.SetSheetRow(sheetName, cell, &values)
}

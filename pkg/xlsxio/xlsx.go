package xlsxio

import (
	"fmt"
	"strings"

	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the sheet excelize.NewFile creates.
const DefaultSheet = "Sheet1"

func CoordinatesToCellName(col int, row int, abs ...bool) string {
	return simpleUtil.HandleError(
		excelize.CoordinatesToCellName(
			col, row, abs...,
		),
	)
}

// GetRows2MapArray reads sheet as header keyed rows.
// Every header key is present in each row; blank rows are skipped.
func GetRows2MapArray(xlsx *excelize.File, sheet string) ([]map[string]string, error) {
	rows, err := xlsx.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("GetRows(%s): %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	var (
		title = rows[0]
		data  []map[string]string
	)
	for _, row := range rows[1:] {
		if strings.TrimSpace(strings.Join(row, "")) == "" {
			continue
		}
		item := make(map[string]string, len(title))
		for j, key := range title {
			if key == "" {
				continue
			}
			if j < len(row) {
				item[key] = row[j]
			} else {
				item[key] = ""
			}
		}
		data = append(data, item)
	}
	return data, nil
}

// LoadSheet opens path and reads one sheet, "" meaning the first sheet.
func LoadSheet(path, sheet string) ([]map[string]string, error) {
	xlsx, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer xlsx.Close()

	if sheet == "" {
		sheet = xlsx.GetSheetName(0)
	}
	return GetRows2MapArray(xlsx, sheet)
}

// WriteSliceSheet writes title at A1 followed by rows.
func WriteSliceSheet(xlsx *excelize.File, sheet string, title []string, rows [][]any) error {
	if idx, _ := xlsx.GetSheetIndex(sheet); idx < 0 {
		if _, err := xlsx.NewSheet(sheet); err != nil {
			return err
		}
	}
	if err := xlsx.SetSheetRow(sheet, "A1", &title); err != nil {
		return err
	}
	for i, row := range rows {
		if err := xlsx.SetSheetRow(sheet, CoordinatesToCellName(1, i+2), &row); err != nil {
			return err
		}
	}
	return nil
}

// SaveTable writes a single sheet workbook to path.
func SaveTable(path string, title []string, rows [][]any) error {
	var xlsx = excelize.NewFile()
	defer xlsx.Close()

	if err := WriteSliceSheet(xlsx, DefaultSheet, title, rows); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return xlsx.SaveAs(path)
}

package summary

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/xuri/excelize/v2"

	"crisprCutting/pkg/xlsxio"
)

// SaveXlsx writes the table to the first sheet of a new workbook.
func (t *Table) SaveXlsx(path string) error {
	return xlsxio.SaveTable(path, t.Title, t.Lines())
}

// SaveText writes the table tab separated.
func (t *Table) SaveText(path string) (err error) {
	// osUtil and fmtUtil panic on io errors
	defer func() {
		if e := recover(); e != nil {
			err = fmt.Errorf("SaveText(%s): %v", path, e)
		}
	}()

	var out = osUtil.Create(path)
	defer simpleUtil.DeferClose(out)

	fmtUtil.FprintStringArray(out, t.Title, "\t")
	for i, row := range t.Rows {
		fields := []string{t.Samples[i]}
		for _, v := range row {
			fields = append(fields, strconv.FormatFloat(v, 'f', -1, 64))
		}
		fmtUtil.FprintStringArray(out, fields, "\t")
	}
	return nil
}

// Load reads a summary table back from the first sheet of a workbook.
func Load(path string) (*Table, error) {
	xlsx, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer xlsx.Close()

	rows, err := xlsx.GetRows(xlsx.GetSheetName(0), excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 || len(rows[0]) == 0 || rows[0][0] != SampleTitle {
		return nil, fmt.Errorf("%s: first column %q: %w", path, SampleTitle, ErrMissingColumn)
	}

	var table = &Table{Title: rows[0]}
	for i, line := range rows[1:] {
		if strings.TrimSpace(strings.Join(line, "")) == "" {
			continue
		}
		row := make([]float64, len(table.Title)-1)
		for j := range row {
			var cell string
			if j+1 < len(line) {
				cell = strings.TrimSpace(line[j+1])
			}
			row[j], err = strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: row %d column %q: %w", path, i+2, table.Title[j+1], err)
			}
		}
		table.Samples = append(table.Samples, line[0])
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

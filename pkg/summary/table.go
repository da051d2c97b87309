package summary

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/samber/lo"

	"crisprCutting/pkg/plate"
)

// Table is a cross-sample summary: one row per sample,
// columns as Title(guides) without the leading sample column.
type Table struct {
	Title   []string
	Samples []string
	Rows    [][]float64
}

// Build concatenates each sample's per guide vectors in guide order
// and appends the Mutant columns.
func Build(data Data, guides []plate.Guide, samples []plate.Sample) (*Table, error) {
	var (
		width = 3 * len(guides)
		table = &Table{
			Title:   Title(guides),
			Samples: lo.Map(samples, func(s plate.Sample, _ int) string { return s.ID }),
		}
	)
	for _, sample := range samples {
		var row []float64
		for _, guide := range guides {
			row = append(row, data[guide][sample.ID]...)
		}
		if len(row) != width {
			slog.Error("sample row length mismatch", "sample", sample.ID, "row", row, "want", width)
			return nil, &RowLengthError{Sample: sample.ID, Got: len(row), Want: width, Row: row}
		}
		for i := range guides {
			row = append(row, row[i*3+1]+row[i*3+2])
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// Column returns the index of name in each row.
func (t *Table) Column(name string) (int, error) {
	i := slices.Index(t.Title, name)
	if i < 1 {
		return -1, fmt.Errorf("%q: %w", name, ErrMissingColumn)
	}
	return i - 1, nil
}

// Lines gives rows ready for a sheet, sample id first.
func (t *Table) Lines() [][]any {
	var lines = make([][]any, len(t.Rows))
	for i, row := range t.Rows {
		line := make([]any, 0, len(row)+1)
		line = append(line, t.Samples[i])
		for _, v := range row {
			line = append(line, v)
		}
		lines[i] = line
	}
	return lines
}

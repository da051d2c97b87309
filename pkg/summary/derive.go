package summary

import (
	"log/slog"

	"gonum.org/v1/gonum/floats/scalar"

	"crisprCutting/pkg/amplicon"
	"crisprCutting/pkg/plate"
)

// Breakdown is one stacked bar: a sample's WT/InFrame/FS percentages for one guide.
type Breakdown struct {
	Sample string
	Guide  plate.Guide

	WT      float64
	InFrame float64
	FS      float64
}

// Values in amplicon.Classifications order.
func (b Breakdown) Values() [3]float64 {
	return [3]float64{b.WT, b.InFrame, b.FS}
}

// Derive recomputes InFrame = Mutant - FS and WT = 100 - Mutant for each guide
// of a percentage table and checks them against 100 and the stored columns.
// Breakdowns come sample major, guides in order.
func Derive(t *Table, guides []plate.Guide) ([]Breakdown, error) {
	type cols struct{ wt, inFrame, fs, mutant int }
	var index = make([]cols, len(guides))
	for i, guide := range guides {
		var err error
		for _, c := range []struct {
			kind string
			dst  *int
		}{
			{string(amplicon.WT), &index[i].wt},
			{string(amplicon.InFrame), &index[i].inFrame},
			{string(amplicon.FS), &index[i].fs},
			{Mutant, &index[i].mutant},
		} {
			*c.dst, err = t.Column(ColumnName(guide, c.kind))
			if err != nil {
				return nil, err
			}
		}
	}

	var breakdowns []Breakdown
	for r, row := range t.Rows {
		for i, guide := range guides {
			var (
				c       = index[i]
				mutant  = row[c.mutant]
				fs      = row[c.fs]
				inFrame = mutant - fs
				wt      = 100 - mutant
			)
			if !scalar.EqualWithinAbs(inFrame+fs+wt, 100, Tolerance) ||
				!scalar.EqualWithinAbs(inFrame, row[c.inFrame], Tolerance) ||
				!scalar.EqualWithinAbs(wt, row[c.wt], Tolerance) {
				err := &CrossCheckError{
					Sample:  t.Samples[r],
					Guide:   guide,
					WT:      row[c.wt],
					InFrame: row[c.inFrame],
					FS:      fs,
					Mutant:  mutant,
				}
				slog.Error("percentage cross check failed", "sample", t.Samples[r], "guide", guide, "row", row)
				return nil, err
			}
			breakdowns = append(breakdowns, Breakdown{
				Sample:  t.Samples[r],
				Guide:   guide,
				WT:      wt,
				InFrame: inFrame,
				FS:      fs,
			})
		}
	}
	return breakdowns, nil
}

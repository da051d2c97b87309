package summary

import (
	"errors"
	"fmt"

	"crisprCutting/pkg/plate"
)

var ErrMissingColumn = errors.New("missing column")

// RowLengthError reports a sample missing data for one or more guides.
type RowLengthError struct {
	Sample string
	Got    int
	Want   int
	Row    []float64
}

func (e *RowLengthError) Error() string {
	return fmt.Sprintf("sample %s: %d values, want %d: %v", e.Sample, e.Got, e.Want, e.Row)
}

// CrossCheckError reports WT% + InFrame% + FS% != 100 for a sample.
type CrossCheckError struct {
	Sample string
	Guide  plate.Guide

	WT      float64
	InFrame float64
	FS      float64
	Mutant  float64
}

func (e *CrossCheckError) Error() string {
	return fmt.Sprintf(
		"sample %s guide %s: WT %g + InFrame %g + FS %g = %g (Mutant %g), want 100",
		e.Sample, e.Guide, e.WT, e.InFrame, e.FS, e.WT+e.InFrame+e.FS, e.Mutant,
	)
}

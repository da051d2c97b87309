package amplicon

import (
	"errors"
	"fmt"

	"crisprCutting/pkg/plate"
)

var (
	ErrMissingColumn = errors.New("missing column")
	ErrNotInteger    = errors.New("not an integer")
	ErrNoReads       = errors.New("no reads retained")
)

// ParseError reports a sheet cell that could not be read.
type ParseError struct {
	Row    int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d column %s %q: %v", e.Row, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// UnclassifiedError reports retained reads whose Type has no classification rule.
// The sheet needs manual inspection.
type UnclassifiedError struct {
	Guide  plate.Guide
	Sample plate.Sample
	Reads  []Read
}

func (e *UnclassifiedError) Error() string {
	var types []string
	for _, r := range e.Reads {
		types = append(types, r.Type)
	}
	return fmt.Sprintf("%s %s: %d reads with unhandled Type %q", e.Guide, e.Sample, len(e.Reads), types)
}

// AggregationError reports total reads not matching WT+InFrame+FS.
type AggregationError struct {
	Guide  plate.Guide
	Sample plate.Sample
	Total  int
	Counts [3]int
	Err    error
}

func (e *AggregationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Guide, e.Sample, e.Err)
	}
	return fmt.Sprintf(
		"%s %s: total reads %d != WT %d + InFrame %d + FS %d",
		e.Guide, e.Sample, e.Total, e.Counts[0], e.Counts[1], e.Counts[2],
	)
}

func (e *AggregationError) Unwrap() error {
	return e.Err
}

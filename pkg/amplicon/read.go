package amplicon

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Read is one row of a vendor result sheet.
type Read struct {
	TargetSequence string
	Reads          int
	Type           string
	Pct            float64
	IndelLength    int

	Classification Classification

	// IndelLength cell was blank
	noLength bool
}

// Row is the classified table row written to the filtered workbook.
func (r Read) Row() []any {
	var length any = r.IndelLength
	if r.noLength {
		length = nil
	}
	return []any{
		r.TargetSequence,
		r.Reads,
		r.Type,
		r.Pct,
		length,
		string(r.Classification),
	}
}

func (r Read) String() string {
	return fmt.Sprintf("%s\t%d\t%s\t%g\t%d\t%s", r.TargetSequence, r.Reads, r.Type, r.Pct, r.IndelLength, r.Classification)
}

// ParseReads builds reads from header keyed rows, keeping only ReadTitle columns.
// Row numbers in errors are 1-based sheet rows, header being row 1.
func ParseReads(rows []map[string]string) ([]Read, error) {
	var reads = make([]Read, 0, len(rows))
	for i, item := range rows {
		for _, key := range ReadTitle {
			if _, ok := item[key]; !ok {
				return nil, &ParseError{Row: i + 2, Column: key, Err: ErrMissingColumn}
			}
		}
		var (
			read = Read{
				TargetSequence: item["TargetSequence"],
				Type:           strings.TrimSpace(item["Type"]),
			}
			err error
		)
		read.Reads, err = parseInt(item["Reads"], false)
		if err != nil {
			return nil, &ParseError{Row: i + 2, Column: "Reads", Value: item["Reads"], Err: err}
		}
		read.Pct, err = strconv.ParseFloat(strings.TrimSpace(item["Pct"]), 64)
		if err != nil {
			return nil, &ParseError{Row: i + 2, Column: "Pct", Value: item["Pct"], Err: err}
		}
		// blank for WT rows, an indel without length stays unclassified
		read.noLength = strings.TrimSpace(item["IndelLength"]) == ""
		read.IndelLength, err = parseInt(item["IndelLength"], true)
		if err != nil {
			return nil, &ParseError{Row: i + 2, Column: "IndelLength", Value: item["IndelLength"], Err: err}
		}
		reads = append(reads, read)
	}
	return reads, nil
}

// parseInt accepts integral floats ("100.0") since spreadsheets store numbers as floats.
func parseInt(s string, blankZero bool) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" && blankZero {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, ErrNotInteger
	}
	return int(f), nil
}

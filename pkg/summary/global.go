package summary

import (
	"crisprCutting/pkg/amplicon"
	"crisprCutting/pkg/plate"
)

// SampleTitle heads the sample id column of both summary tables.
const SampleTitle = "Genewiz Sample"

// Mutant column suffix, InFrame + FS
const Mutant = "Mutant"

// Tolerance for percentage sums read back from a workbook.
var Tolerance = 1e-6

// ColumnName is the "{guide} {kind}" table column.
func ColumnName(guide plate.Guide, kind string) string {
	return string(guide) + " " + kind
}

// Title is the full column list for guides in order.
func Title(guides []plate.Guide) []string {
	var title = []string{SampleTitle}
	for _, guide := range guides {
		for _, c := range amplicon.Classifications {
			title = append(title, ColumnName(guide, string(c)))
		}
	}
	for _, guide := range guides {
		title = append(title, ColumnName(guide, Mutant))
	}
	return title
}

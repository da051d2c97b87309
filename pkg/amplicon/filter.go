package amplicon

import (
	"log/slog"
	"strings"

	"github.com/samber/lo"

	"crisprCutting/pkg/plate"
)

// Filter drops reads below threshold Pct and base change reads.
func Filter(reads []Read, threshold float64) []Read {
	return lo.Filter(reads, func(r Read, _ int) bool {
		return r.Pct >= threshold && !strings.Contains(r.Type, TypeBaseChange)
	})
}

// Classify labels a single read, false if its Type has no rule.
func Classify(r Read) (Classification, bool) {
	switch r.Type {
	case TypeInsertion, TypeDeletion, TypeInsertionAndDeletion:
		if r.noLength {
			return "", false
		}
		if r.IndelLength%3 == 0 {
			return InFrame, true
		}
		return FS, true
	case TypeWT:
		return WT, true
	}
	return "", false
}

// FilterAndClassify returns a filtered copy of reads with Classification set.
// Any retained read left unclassified fails the whole sheet.
func FilterAndClassify(guide plate.Guide, sample plate.Sample, reads []Read, threshold float64) ([]Read, error) {
	var (
		filtered     = Filter(reads, threshold)
		unclassified []Read
	)
	for i := range filtered {
		c, ok := Classify(filtered[i])
		if !ok {
			unclassified = append(unclassified, filtered[i])
			continue
		}
		filtered[i].Classification = c
	}
	if len(unclassified) > 0 {
		return nil, &UnclassifiedError{Guide: guide, Sample: sample, Reads: unclassified}
	}
	slog.Debug("FilterAndClassify", "guide", guide, "sample", sample, "raw", len(reads), "kept", len(filtered))
	return filtered, nil
}

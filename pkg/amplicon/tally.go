package amplicon

import (
	"github.com/samber/lo"

	"crisprCutting/pkg/plate"
)

// Tally is the per (guide, sample) aggregate, vectors ordered WT, InFrame, FS.
type Tally struct {
	Guide  plate.Guide
	Sample plate.Sample

	Total    int
	Counts   [3]int
	Percents [3]float64
}

// CountVector and PercentVector give the tally as summary table vectors.
func (t *Tally) CountVector() []float64 {
	return []float64{float64(t.Counts[0]), float64(t.Counts[1]), float64(t.Counts[2])}
}

func (t *Tally) PercentVector() []float64 {
	return append([]float64{}, t.Percents[:]...)
}

// Aggregate sums classified reads per classification.
func Aggregate(guide plate.Guide, sample plate.Sample, reads []Read) (*Tally, error) {
	var tally = &Tally{
		Guide:  guide,
		Sample: sample,
		Total:  lo.SumBy(reads, func(r Read) int { return r.Reads }),
	}
	for i, c := range Classifications {
		tally.Counts[i] = lo.SumBy(reads, func(r Read) int {
			if r.Classification == c {
				return r.Reads
			}
			return 0
		})
	}

	if tally.Total != lo.Sum(tally.Counts[:]) {
		return nil, &AggregationError{Guide: guide, Sample: sample, Total: tally.Total, Counts: tally.Counts}
	}
	if tally.Total == 0 {
		return nil, &AggregationError{Guide: guide, Sample: sample, Err: ErrNoReads}
	}

	for i, n := range tally.Counts {
		tally.Percents[i] = float64(n) / float64(tally.Total) * 100
	}
	return tally, nil
}

package summary

import (
	"crisprCutting/pkg/amplicon"
	"crisprCutting/pkg/plate"
)

// Vector is one guide's [WT, InFrame, FS] values for a sample.
type Vector []float64

// Data maps guide -> sample id -> vector.
type Data map[plate.Guide]map[string]Vector

func (d Data) Set(guide plate.Guide, sample string, v Vector) {
	samples, ok := d[guide]
	if !ok {
		samples = make(map[string]Vector)
		d[guide] = samples
	}
	samples[sample] = v
}

// Accumulator collects tallies of one ingestion run.
type Accumulator struct {
	Reads       Data
	Percentages Data
}

func NewAccumulator() *Accumulator {
	return &Accumulator{
		Reads:       make(Data),
		Percentages: make(Data),
	}
}

func (a *Accumulator) Add(tally *amplicon.Tally) {
	a.Reads.Set(tally.Guide, tally.Sample.ID, tally.CountVector())
	a.Percentages.Set(tally.Guide, tally.Sample.ID, tally.PercentVector())
}

package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/liserjrqlxue/version"

	"crisprCutting/pkg/amplicon"
	"crisprCutting/pkg/ingest"
	"crisprCutting/pkg/plate"
)

// os
var (
	cwd = simpleUtil.HandleError(os.Getwd())
)

// flag
var (
	rawDir = flag.String(
		"i",
		"Raw Data",
		"dir of vendor result xlsx, one per guide",
	)
	analyzedDir = flag.String(
		"a",
		"Analyzed Data",
		"output dir of filtered {guide} {sample}.xlsx",
	)
	resultDir = flag.String(
		"o",
		"CRISPRCutting Results",
		"output dir of summary tables",
	)
	guides = flag.String(
		"g",
		"Trp53",
		"guide list, comma separated, in table column order",
	)
	sampleCount = flag.Int(
		"n",
		6,
		"sample count",
	)
	plateName = flag.String(
		"plate",
		"Plate1",
		"plate name of sheet, sheet = {plate}-{row}{n}",
	)
	plateRow = flag.String(
		"row",
		"A",
		"plate row of samples",
	)
	threshold = flag.Float64(
		"t",
		amplicon.Threshold,
		"drop reads with Pct < threshold",
	)
	debug = flag.Bool(
		"debug",
		false,
		"debug log",
	)
)

func main() {
	version.LogVersion()
	flag.Parse()
	if *sampleCount < 1 {
		flag.PrintDefaults()
		log.Fatal("-n must be positive")
	}
	if *debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	var cfg = ingest.Config{
		RawDir:      abs(*rawDir),
		AnalyzedDir: abs(*analyzedDir),
		ResultDir:   abs(*resultDir),
		Guides:      plate.Guides(strings.Split(*guides, ",")),
		Samples:     plate.Samples(*plateName, *plateRow, *sampleCount),
		Threshold:   *threshold,
	}
	if len(cfg.Guides) == 0 {
		flag.PrintDefaults()
		log.Fatal("-g is required")
	}

	result, err := ingest.Run(cfg)
	if result != nil {
		for _, failure := range result.Failures {
			slog.Error("Abandoned", "err", failure)
		}
	}
	simpleUtil.CheckErr(err)

	log.Printf("SaveAs(%s)", filepath.Join(cfg.ResultDir, ingest.ReadsName+".xlsx"))
	log.Printf("SaveAs(%s)", filepath.Join(cfg.ResultDir, ingest.PercentagesName+".xlsx"))
}

func abs(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(cwd, path)
}

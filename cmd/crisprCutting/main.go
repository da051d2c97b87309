package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/liserjrqlxue/version"

	"crisprCutting/pkg/chart"
	"crisprCutting/pkg/plate"
	"crisprCutting/pkg/summary"
)

// flag
var (
	input = flag.String(
		"i",
		filepath.Join("CRISPRCutting Results", "CRISPRCutting_Percentages.xlsx"),
		"input percentage summary xlsx",
	)
	output = flag.String(
		"o",
		filepath.Join("Figures", "CRISPRCutting Analysis.png"),
		"output png",
	)
	guides = flag.String(
		"g",
		"Trp53",
		"guide list, comma separated",
	)
	dpi = flag.Int(
		"dpi",
		chart.DPI,
		"png resolution",
	)
	palette = flag.String(
		"palette",
		strings.Join(chart.Palette, ","),
		"colors of WT,In-Frame,FS,...",
	)
)

func main() {
	version.LogVersion()
	flag.Parse()

	var guideList = plate.Guides(strings.Split(*guides, ","))
	if len(guideList) == 0 {
		flag.PrintDefaults()
		log.Fatal("-g is required")
	}

	table := simpleUtil.HandleError(summary.Load(*input))
	breakdowns := simpleUtil.HandleError(summary.Derive(table, guideList))

	simpleUtil.CheckErr(os.MkdirAll(filepath.Dir(*output), 0755))
	simpleUtil.CheckErr(
		chart.StackedBar(
			*output,
			breakdowns,
			chart.Options{
				Palette: strings.Split(*palette, ","),
				DPI:     *dpi,
			},
		),
	)
	log.Printf("SaveAs(%s)", *output)
}

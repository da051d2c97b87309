package ingest

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"crisprCutting/pkg/amplicon"
	"crisprCutting/pkg/plate"
	"crisprCutting/pkg/summary"
	"crisprCutting/pkg/xlsxio"
)

// output names
const (
	ReadsName       = "CRISPRCutting_Reads"
	PercentagesName = "CRISPRCutting_Percentages"
)

var ErrDuplicateGuide = errors.New("more than one workbook for guide")

type Config struct {
	RawDir      string
	AnalyzedDir string
	ResultDir   string

	Guides    []plate.Guide
	Samples   []plate.Sample
	Threshold float64
}

// Result of one run. Failures holds the sheets that were abandoned.
type Result struct {
	Workbooks   []string
	Tallies     []*amplicon.Tally
	Failures    []error
	Reads       *summary.Table
	Percentages *summary.Table
}

// FilteredPath is the audit workbook of one (guide, sample) sheet.
func FilteredPath(dir string, guide plate.Guide, sample plate.Sample) string {
	return filepath.Join(dir, fmt.Sprintf("%s %s.xlsx", guide, sample.ID))
}

// Discover lists vendor workbooks in dir, sorted, skipping office lock files.
func Discover(dir string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.xlsx"))
	if err != nil {
		return nil, err
	}
	var workbooks []string
	for _, path := range paths {
		if strings.HasPrefix(filepath.Base(path), "~$") {
			continue
		}
		workbooks = append(workbooks, path)
	}
	sort.Strings(workbooks)
	return workbooks, nil
}

// Run filters and classifies every sample sheet of every guide workbook,
// then builds and exports the cross-sample summary tables.
func Run(cfg Config) (*Result, error) {
	workbooks, err := Discover(cfg.RawDir)
	if err != nil {
		return nil, err
	}
	slog.Info("Discover", "dir", cfg.RawDir, "workbooks", workbooks)

	for _, dir := range []string{cfg.AnalyzedDir, cfg.ResultDir} {
		if err = os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	var (
		result = &Result{}
		acc    = summary.NewAccumulator()
		seen   = make(map[plate.Guide]string)
	)
	for _, path := range workbooks {
		guide := plate.GuideFromPath(path)
		if !slices.Contains(cfg.Guides, guide) {
			slog.Warn("Skip workbook", "path", path, "guide", guide, "guides", cfg.Guides)
			continue
		}
		if prev, ok := seen[guide]; ok {
			return result, fmt.Errorf("%w %s: %s, %s", ErrDuplicateGuide, guide, prev, path)
		}
		seen[guide] = path
		result.Workbooks = append(result.Workbooks, path)

		slog.Info("Analyzing", "guide", guide, "path", path)
		if err = runWorkbook(cfg, path, guide, acc, result); err != nil {
			return result, err
		}
	}

	result.Reads, err = summary.Build(acc.Reads, cfg.Guides, cfg.Samples)
	if err != nil {
		return result, fmt.Errorf("build reads table: %w", err)
	}
	result.Percentages, err = summary.Build(acc.Percentages, cfg.Guides, cfg.Samples)
	if err != nil {
		return result, fmt.Errorf("build percentages table: %w", err)
	}

	for _, export := range []struct {
		name  string
		table *summary.Table
	}{
		{ReadsName, result.Reads},
		{PercentagesName, result.Percentages},
	} {
		prefix := filepath.Join(cfg.ResultDir, export.name)
		slog.Info("Export", "table", export.name, "path", prefix+".xlsx")
		if err = export.table.SaveXlsx(prefix + ".xlsx"); err != nil {
			return result, err
		}
		if err = export.table.SaveText(prefix + ".txt"); err != nil {
			return result, err
		}
	}
	return result, nil
}

func runWorkbook(cfg Config, path string, guide plate.Guide, acc *summary.Accumulator, result *Result) error {
	xlsx, err := excelize.OpenFile(path)
	if err != nil {
		return err
	}
	defer xlsx.Close()

	for _, sample := range cfg.Samples {
		slog.Info("Sheet", "guide", guide, "sheet", sample.Sheet)
		tally, err := runSheet(cfg, xlsx, guide, sample)
		if err != nil {
			logFailure(guide, sample, err)
			result.Failures = append(result.Failures, fmt.Errorf("%s %s: %w", filepath.Base(path), sample.Sheet, err))
			continue
		}
		acc.Add(tally)
		result.Tallies = append(result.Tallies, tally)
	}
	return nil
}

func runSheet(cfg Config, xlsx *excelize.File, guide plate.Guide, sample plate.Sample) (*amplicon.Tally, error) {
	rows, err := xlsxio.GetRows2MapArray(xlsx, sample.Sheet)
	if err != nil {
		return nil, err
	}
	raw, err := amplicon.ParseReads(rows)
	if err != nil {
		return nil, err
	}
	reads, err := amplicon.FilterAndClassify(guide, sample, raw, cfg.Threshold)
	if err != nil {
		return nil, err
	}

	var lines = make([][]any, len(reads))
	for i, r := range reads {
		lines[i] = r.Row()
	}
	if err = xlsxio.SaveTable(FilteredPath(cfg.AnalyzedDir, guide, sample), amplicon.ClassifiedTitle, lines); err != nil {
		return nil, err
	}

	return amplicon.Aggregate(guide, sample, reads)
}

func logFailure(guide plate.Guide, sample plate.Sample, err error) {
	var (
		ue *amplicon.UnclassifiedError
		ae *amplicon.AggregationError
	)
	switch {
	case errors.As(err, &ue):
		slog.Error("Read Type not handled, modify the classification rules", "guide", guide, "sample", sample, "err", err)
		for _, r := range ue.Reads {
			slog.Error("Unclassified", "read", r.String())
		}
	case errors.As(err, &ae):
		slog.Error("Total reads != WT + InFrame + FS", "guide", guide, "sample", sample, "total", ae.Total, "counts", ae.Counts, "err", err)
	default:
		slog.Error("Sheet failed", "guide", guide, "sample", sample, "err", err)
	}
}

// Package panel implements the core of the preparation pipeline:
// wide-to-long reshaping, per-class center assignment with distance
// features, and the distance filter that produces the final panel.
package panel

import (
	"context"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/sync/errgroup"

	"github.com/innpulsa-research/zasca-cli/internal/centers"
	"github.com/innpulsa-research/zasca-cli/internal/labels"
	"github.com/innpulsa-research/zasca-cli/internal/table"
)

// Derived column names attached to the long panel.
const (
	ColCityCenter    = "city_center"
	ColCityDistKM    = "dist_city_center_km"
	ColProgramCenter = "program_center"
	ColProgramDistKM = "dist_program_center_km"
)

// Options configures a Pipeline run.
type Options struct {
	EntityColumn    string
	LatitudeColumn  string
	LongitudeColumn string
	LabelColumn     string
	YearColumn      string
	CohortColumn    string

	Metrics []string

	// Distance filter thresholds, independently configurable per class.
	MaxCityKM    float64
	MaxProgramKM float64

	// Workers bounds concurrent row resolution. <=1 runs sequentially;
	// output is identical either way since rows are independent and
	// written by index.
	Workers int

	// FoldLabels enables accent/case folding on label comparison.
	FoldLabels bool

	// BackfillCohort fills empty cohort cells from the earliest cohort
	// observed at the row's assigned program center.
	BackfillCohort bool
}

// Pipeline orchestrates reshape, dual center resolution, diagnostics,
// and the distance filter over one in-memory table.
type Pipeline struct {
	opts    Options
	city    *centers.Registry
	program *centers.Registry
}

// Result is the output of a pipeline run.
type Result struct {
	Table       *table.Table
	Diagnostics Diagnostics
}

// New builds a Pipeline over the two class registries.
func New(opts Options, city, program *centers.Registry) *Pipeline {
	return &Pipeline{opts: opts, city: city, program: program}
}

// rowResolution holds both class assignments for one long row.
type rowResolution struct {
	city      Assignment
	cityOK    bool
	program   Assignment
	programOK bool
	hasLabel  bool
	label     string
}

// Run executes the pipeline on a wide input table and returns the
// filtered long panel. The input table is not mutated.
func (p *Pipeline) Run(ctx context.Context, wide *table.Table) (*Result, error) {
	long, err := Reshaper{
		EntityColumn: p.opts.EntityColumn,
		YearColumn:   p.opts.YearColumn,
		Metrics:      p.opts.Metrics,
	}.Reshape(wide)
	if err != nil {
		return nil, err
	}

	latIdx := long.ColumnIndex(p.opts.LatitudeColumn)
	lonIdx := long.ColumnIndex(p.opts.LongitudeColumn)
	if latIdx < 0 || lonIdx < 0 {
		return nil, eris.Errorf("panel: coordinate columns %q/%q not in input",
			p.opts.LatitudeColumn, p.opts.LongitudeColumn)
	}
	labelIdx := long.ColumnIndex(p.opts.LabelColumn) // optional

	for _, c := range []string{ColCityCenter, ColCityDistKM, ColProgramCenter, ColProgramDistKM} {
		if long.HasColumn(c) {
			return nil, eris.Errorf("panel: input already has derived column %q", c)
		}
	}

	var fold func(string) string
	if p.opts.FoldLabels {
		fold = labels.Fold
	}

	resolutions, err := p.resolveRows(ctx, long, latIdx, lonIdx, labelIdx, fold)
	if err != nil {
		return nil, err
	}

	var diag Diagnostics
	diag.RowsIn = long.NumRows()
	for i := range resolutions {
		tally(&diag.City, &resolutions[i], resolutions[i].city, resolutions[i].cityOK, p.city, fold)
		tally(&diag.Program, &resolutions[i], resolutions[i].program, resolutions[i].programOK, p.program, fold)
	}

	out, err := table.New(append(append([]string{}, long.Columns()...),
		ColCityCenter, ColCityDistKM, ColProgramCenter, ColProgramDistKM))
	if err != nil {
		return nil, eris.Wrap(err, "panel: build output schema")
	}

	for i := 0; i < long.NumRows(); i++ {
		res := resolutions[i]
		if !keep(res.city, res.cityOK, p.opts.MaxCityKM) ||
			!keep(res.program, res.programOK, p.opts.MaxProgramKM) {
			diag.RowsDropped++
			continue
		}
		row := make([]string, 0, len(out.Columns()))
		row = append(row, long.Row(i)...)
		row = append(row,
			res.city.Name, formatKM(res.city.DistanceKM),
			res.program.Name, formatKM(res.program.DistanceKM))
		if err := out.AppendRow(row); err != nil {
			return nil, eris.Wrap(err, "panel: append output row")
		}
		diag.RowsKept++
	}

	if p.opts.BackfillCohort && p.opts.CohortColumn != "" {
		diag.CohortBackfilled = backfillCohort(out, ColProgramCenter, p.opts.CohortColumn)
	}

	return &Result{Table: out, Diagnostics: diag}, nil
}

// resolveRows resolves both center classes for every long row,
// optionally in parallel. Each goroutine writes only its own index.
func (p *Pipeline) resolveRows(ctx context.Context, long *table.Table, latIdx, lonIdx, labelIdx int, fold func(string) string) ([]rowResolution, error) {
	n := long.NumRows()
	resolutions := make([]rowResolution, n)

	resolveOne := func(i int) {
		row := long.Row(i)
		lat := parseCoord(row[latIdx])
		lon := parseCoord(row[lonIdx])
		var label string
		if labelIdx >= 0 {
			label = strings.TrimSpace(row[labelIdx])
		}

		r := &resolutions[i]
		r.label = label
		r.hasLabel = label != ""
		r.city, r.cityOK = Resolve(lat, lon, label, p.city, fold)
		r.program, r.programOK = Resolve(lat, lon, label, p.program, fold)
	}

	if p.opts.Workers <= 1 {
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return nil, eris.Wrap(err, "panel: resolution cancelled")
			}
			resolveOne(i)
		}
		return resolutions, nil
	}

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.Workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			resolveOne(i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, eris.Wrap(err, "panel: resolution cancelled")
	}
	return resolutions, nil
}

// tally folds one row's class resolution into the class diagnostics.
func tally(d *ClassDiagnostics, row *rowResolution, a Assignment, ok bool, reg *centers.Registry, fold func(string) string) {
	if row.hasLabel {
		if _, matched := labelMatch(reg, row.label, fold); !matched {
			d.recordUnmatched(row.label)
		}
	}
	if !ok {
		d.MissingCoords++
		return
	}
	switch a.Method {
	case MatchLabel:
		d.LabelMatches++
	case MatchNearest:
		d.NearestMatches++
	}
}

// keep reports whether a row survives the distance filter for one class.
func keep(a Assignment, ok bool, maxKM float64) bool {
	return ok && a.DistanceKM != nil && *a.DistanceKM <= maxKM
}

// parseCoord parses a coordinate cell; empty or non-numeric values are
// missing data, never an error.
func parseCoord(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// formatKM renders a distance cell; nil renders empty.
func formatKM(d *float64) string {
	if d == nil {
		return ""
	}
	return strconv.FormatFloat(*d, 'f', -1, 64)
}

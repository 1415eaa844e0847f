package panel

import (
	"sort"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/innpulsa-research/zasca-cli/internal/table"
)

// Reshaper converts a wide table (one row per entity, year-suffixed
// metric columns) into a long panel (one row per entity-year).
type Reshaper struct {
	// EntityColumn uniquely identifies an entity in the wide table.
	EntityColumn string
	// YearColumn is the name of the year column added to the output.
	YearColumn string
	// Metrics is the fixed set of time-varying attribute names expected
	// to appear as <metric>_<YYYY> columns.
	Metrics []string
}

// metricColumn records one matched <metric>_<YYYY> wide column.
type metricColumn struct {
	metric string
	year   int
	index  int
}

// Reshape produces the long panel. Time-invariant columns are carried
// forward unchanged; each metric's year-specific values collapse into a
// single shared column; an explicit year column is added. Output rows
// are sorted by (entity, year) ascending.
//
// Finding no year-suffixed column is a structural error: it means the
// source schema changed upstream.
func (r Reshaper) Reshape(src *table.Table) (*table.Table, error) {
	if !src.HasColumn(r.EntityColumn) {
		return nil, eris.Errorf("reshape: entity column %q not in input", r.EntityColumn)
	}
	if src.HasColumn(r.YearColumn) {
		return nil, eris.Errorf("reshape: input already has a %q column", r.YearColumn)
	}

	matched, years := r.matchColumns(src)
	if len(matched) == 0 {
		return nil, eris.Errorf("reshape: no <metric>_<year> columns found for metrics %v", r.Metrics)
	}

	// Metrics actually observed, in configured order.
	seen := make(map[string]bool, len(matched))
	for _, mc := range matched {
		seen[mc.metric] = true
	}
	var longMetrics []string
	for _, m := range r.Metrics {
		if seen[m] {
			longMetrics = append(longMetrics, m)
		}
	}

	// (metric, year) -> wide column index.
	wideIdx := make(map[string]int, len(matched))
	timeVarying := make(map[int]bool, len(matched))
	for _, mc := range matched {
		wideIdx[mc.metric+"\x00"+strconv.Itoa(mc.year)] = mc.index
		timeVarying[mc.index] = true
	}

	// Time-invariant columns keep their original order.
	var invariant []int
	var outCols []string
	for i, c := range src.Columns() {
		if timeVarying[i] {
			continue
		}
		invariant = append(invariant, i)
		outCols = append(outCols, c)
	}
	outCols = append(outCols, r.YearColumn)
	outCols = append(outCols, longMetrics...)

	out, err := table.New(outCols)
	if err != nil {
		return nil, eris.Wrap(err, "reshape: build output schema")
	}

	for ri := 0; ri < src.NumRows(); ri++ {
		row := src.Row(ri)
		for _, year := range years {
			long := make([]string, 0, len(outCols))
			for _, ci := range invariant {
				long = append(long, row[ci])
			}
			long = append(long, strconv.Itoa(year))
			for _, m := range longMetrics {
				if wi, ok := wideIdx[m+"\x00"+strconv.Itoa(year)]; ok {
					long = append(long, row[wi])
				} else {
					long = append(long, "")
				}
			}
			if err := out.AppendRow(long); err != nil {
				return nil, eris.Wrap(err, "reshape: append row")
			}
		}
	}

	sortPanel(out, r.EntityColumn, r.YearColumn)
	return out, nil
}

// matchColumns scans the wide schema for <metric>_<YYYY> columns and
// returns them with the sorted distinct years observed. A suffix that is
// not a 4-digit number disqualifies the column.
func (r Reshaper) matchColumns(src *table.Table) ([]metricColumn, []int) {
	var matched []metricColumn
	yearSet := make(map[int]bool)

	for i, col := range src.Columns() {
		for _, m := range r.Metrics {
			if !strings.HasPrefix(col, m+"_") {
				continue
			}
			year, ok := parseYearSuffix(col[len(m)+1:])
			if !ok {
				continue
			}
			matched = append(matched, metricColumn{metric: m, year: year, index: i})
			yearSet[year] = true
			break
		}
	}

	years := make([]int, 0, len(yearSet))
	for y := range yearSet {
		years = append(years, y)
	}
	sort.Ints(years)
	return matched, years
}

// parseYearSuffix parses a 4-digit year.
func parseYearSuffix(s string) (int, bool) {
	if len(s) != 4 {
		return 0, false
	}
	y, err := strconv.Atoi(s)
	if err != nil || y < 0 {
		return 0, false
	}
	return y, true
}

// sortPanel orders rows by (entity, year) ascending. Entity ids compare
// as strings, matching the upstream id columns which are not uniformly
// numeric.
func sortPanel(t *table.Table, entityCol, yearCol string) {
	ei := t.ColumnIndex(entityCol)
	yi := t.ColumnIndex(yearCol)
	rows := t.Rows()
	sort.SliceStable(rows, func(a, b int) bool {
		if rows[a][ei] != rows[b][ei] {
			return rows[a][ei] < rows[b][ei]
		}
		ya, _ := strconv.Atoi(rows[a][yi])
		yb, _ := strconv.Atoi(rows[b][yi])
		return ya < yb
	})
}

package panel

import (
	"sort"

	"go.uber.org/zap"
)

// ClassDiagnostics summarizes center resolution for one center class.
// Informational only: it never affects output rows.
type ClassDiagnostics struct {
	LabelMatches   int
	NearestMatches int
	MissingCoords  int
	unmatched      map[string]bool
}

// recordUnmatched notes an authoritative label that was present but not
// found in the class registry.
func (d *ClassDiagnostics) recordUnmatched(label string) {
	if d.unmatched == nil {
		d.unmatched = make(map[string]bool)
	}
	d.unmatched[label] = true
}

// UnmatchedLabels returns the distinct unmatched authoritative labels,
// sorted.
func (d *ClassDiagnostics) UnmatchedLabels() []string {
	out := make([]string, 0, len(d.unmatched))
	for l := range d.unmatched {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Diagnostics summarizes a pipeline run.
type Diagnostics struct {
	City    ClassDiagnostics
	Program ClassDiagnostics

	RowsIn      int // long rows entering resolution
	RowsKept    int
	RowsDropped int

	CohortBackfilled int
}

// Log emits the run summary through the global logger.
func (d *Diagnostics) Log(runID string) {
	zap.L().Info("panel: run summary",
		zap.String("run_id", runID),
		zap.Int("rows_in", d.RowsIn),
		zap.Int("rows_kept", d.RowsKept),
		zap.Int("rows_dropped", d.RowsDropped),
		zap.Int("city_label_matches", d.City.LabelMatches),
		zap.Int("city_nearest_matches", d.City.NearestMatches),
		zap.Int("city_missing_coords", d.City.MissingCoords),
		zap.Strings("city_unmatched_labels", d.City.UnmatchedLabels()),
		zap.Int("program_label_matches", d.Program.LabelMatches),
		zap.Int("program_nearest_matches", d.Program.NearestMatches),
		zap.Int("program_missing_coords", d.Program.MissingCoords),
		zap.Strings("program_unmatched_labels", d.Program.UnmatchedLabels()),
		zap.Int("cohort_backfilled", d.CohortBackfilled),
	)
}

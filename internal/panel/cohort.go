package panel

import (
	"strconv"
	"strings"

	"github.com/innpulsa-research/zasca-cli/internal/table"
)

// backfillCohort fills empty cohort cells with the earliest cohort
// observed among rows assigned to the same program center. Control
// observations have no cohort of their own; they inherit the opening
// cohort of the center they were matched to. Returns the number of
// cells filled.
func backfillCohort(t *table.Table, centerCol, cohortCol string) int {
	ci := t.ColumnIndex(centerCol)
	hi := t.ColumnIndex(cohortCol)
	if ci < 0 || hi < 0 {
		return 0
	}

	earliest := make(map[string]string)
	for i := 0; i < t.NumRows(); i++ {
		row := t.Row(i)
		center := row[ci]
		cohort := strings.TrimSpace(row[hi])
		if center == "" || cohort == "" {
			continue
		}
		if cur, ok := earliest[center]; !ok || cohortLess(cohort, cur) {
			earliest[center] = cohort
		}
	}

	var filled int
	for i := 0; i < t.NumRows(); i++ {
		row := t.Row(i)
		if strings.TrimSpace(row[hi]) != "" {
			continue
		}
		if cohort, ok := earliest[row[ci]]; ok {
			row[hi] = cohort
			filled++
		}
	}
	return filled
}

// cohortLess orders cohort values numerically when both sides parse,
// lexicographically otherwise.
func cohortLess(a, b string) bool {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		return fa < fb
	}
	return a < b
}

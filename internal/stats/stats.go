// Package stats derives per-month completion snapshots from the goal
// collection and the summary view's checkbox state. Pure derivation: no
// side effects, no retained state.
package stats

import (
	"math"

	"github.com/caffeinepub/my-goals-2026/internal/models"
)

// ComputeMonthStats collects every completed goal assigned to the month and
// counts how many the summary view has checked off. A month with no
// assigned goals is never complete.
func ComputeMonthStats(c models.Collection, checked models.CheckSet, month models.Month) models.MonthStats {
	total, done := 0, 0
	for _, cat := range c.Categories {
		for _, g := range cat.Goals {
			if !g.Completed || g.Month == nil || *g.Month != month {
				continue
			}
			total++
			if checked[models.CheckKey{CategoryID: cat.ID, GoalID: g.ID, Month: month}] {
				done++
			}
		}
	}

	result := models.MonthStats{Month: month, TotalGoals: total, CheckedGoals: done}
	if total == 0 {
		return result
	}

	result.ProgressRatio = float64(done) / float64(total)
	// Round half up on the percentage only; the ratio keeps full precision
	// for the progress ring.
	result.CompletedPct = int(math.Floor(100*result.ProgressRatio + 0.5))
	result.IncompletePct = 100 - result.CompletedPct
	result.IsComplete = done == total
	return result
}

// ComputeYear returns the snapshot for all 12 months in calendar order.
func ComputeYear(c models.Collection, checked models.CheckSet) []models.MonthStats {
	year := make([]models.MonthStats, 0, len(models.Months))
	for _, month := range models.Months {
		year = append(year, ComputeMonthStats(c, checked, month))
	}
	return year
}

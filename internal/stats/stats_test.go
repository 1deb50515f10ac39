package stats

import (
	"testing"

	"github.com/caffeinepub/my-goals-2026/internal/models"
	"github.com/google/uuid"
)

// monthCollection builds one category holding n completed goals assigned to
// the month, returning the goal ids in order.
func monthCollection(month models.Month, n int) (models.Collection, []uuid.UUID) {
	ids := make([]uuid.UUID, n)
	goals := make([]models.Goal, n)
	for i := range goals {
		ids[i] = uuid.New()
		m := month
		goals[i] = models.Goal{ID: ids[i], Text: "goal", Completed: true, Month: &m}
	}
	return models.Collection{Categories: []models.Category{
		{ID: "health", Title: "Health", Goals: goals},
	}}, ids
}

func checkSet(month models.Month, ids ...uuid.UUID) models.CheckSet {
	checked := make(models.CheckSet)
	for _, id := range ids {
		checked[models.CheckKey{CategoryID: "health", GoalID: id, Month: month}] = true
	}
	return checked
}

func TestComputeMonthStats(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		checked int
		want    models.MonthStats
	}{
		{
			name:  "no eligible goals is never complete",
			total: 0, checked: 0,
			want: models.MonthStats{Month: models.March},
		},
		{
			name:  "half checked",
			total: 4, checked: 2,
			want: models.MonthStats{
				Month: models.March, TotalGoals: 4, CheckedGoals: 2,
				CompletedPct: 50, IncompletePct: 50, ProgressRatio: 0.5,
			},
		},
		{
			name:  "all checked is complete",
			total: 4, checked: 4,
			want: models.MonthStats{
				Month: models.March, TotalGoals: 4, CheckedGoals: 4,
				CompletedPct: 100, IncompletePct: 0, ProgressRatio: 1, IsComplete: true,
			},
		},
		{
			name:  "one of three rounds down",
			total: 3, checked: 1,
			want: models.MonthStats{
				Month: models.March, TotalGoals: 3, CheckedGoals: 1,
				CompletedPct: 33, IncompletePct: 67, ProgressRatio: 1.0 / 3.0,
			},
		},
		{
			name:  "two of three rounds up",
			total: 3, checked: 2,
			want: models.MonthStats{
				Month: models.March, TotalGoals: 3, CheckedGoals: 2,
				CompletedPct: 67, IncompletePct: 33, ProgressRatio: 2.0 / 3.0,
			},
		},
		{
			name:  "half a percent rounds up",
			total: 8, checked: 1,
			want: models.MonthStats{
				Month: models.March, TotalGoals: 8, CheckedGoals: 1,
				CompletedPct: 13, IncompletePct: 87, ProgressRatio: 0.125,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ids := monthCollection(models.March, tt.total)
			got := ComputeMonthStats(c, checkSet(models.March, ids[:tt.checked]...), models.March)
			if got != tt.want {
				t.Errorf("ComputeMonthStats() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestComputeMonthStatsFiltersEligibility(t *testing.T) {
	may := models.May
	c := models.Collection{Categories: []models.Category{
		{ID: "health", Title: "Health", Goals: []models.Goal{
			{ID: uuid.New(), Text: "not completed"},
			{ID: uuid.New(), Text: "other month", Completed: true, Month: &may},
			{ID: uuid.New(), Text: "no month", Completed: true},
		}},
	}}

	got := ComputeMonthStats(c, make(models.CheckSet), models.March)
	if got.TotalGoals != 0 || got.IsComplete {
		t.Errorf("stats = %+v, want empty month", got)
	}
}

func TestComputeYear(t *testing.T) {
	c, ids := monthCollection(models.March, 2)
	year := ComputeYear(c, checkSet(models.March, ids...))

	if len(year) != 12 {
		t.Fatalf("got %d months, want 12", len(year))
	}
	for _, snapshot := range year {
		if snapshot.Month == models.March {
			if !snapshot.IsComplete {
				t.Error("march should be complete")
			}
		} else if snapshot.TotalGoals != 0 || snapshot.IsComplete {
			t.Errorf("%s = %+v, want empty", snapshot.Month, snapshot)
		}
	}
}

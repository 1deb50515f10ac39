package models

import "github.com/google/uuid"

// CheckKey addresses one checkbox cell in the yearly summary view. The
// summary keeps its own completion bookkeeping per cell, independent of
// Goal.Completed.
type CheckKey struct {
	CategoryID string
	GoalID     uuid.UUID
	Month      Month
}

// CheckSet is the summary view's checkbox state.
type CheckSet map[CheckKey]bool

// MonthStats is the derived completion snapshot for one month.
type MonthStats struct {
	Month         Month   `json:"month"`
	TotalGoals    int     `json:"totalGoals"`
	CheckedGoals  int     `json:"checkedGoals"`
	CompletedPct  int     `json:"completedPct"`
	IncompletePct int     `json:"incompletePct"`
	ProgressRatio float64 `json:"progressRatio"`
	IsComplete    bool    `json:"isComplete"`
}

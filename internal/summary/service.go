// Package summary owns the yearly summary view state: the per-cell checkbox
// map and the month-completion edge detector. Both are process-lifetime
// state; a restart clears the checkboxes and Seed re-baselines the detector
// so pre-existing complete months never re-fire a celebration.
package summary

import (
	"sync"

	"github.com/caffeinepub/my-goals-2026/internal/log"
	"github.com/caffeinepub/my-goals-2026/internal/models"
	"github.com/caffeinepub/my-goals-2026/internal/stats"
	"github.com/google/uuid"
)

// EventMonthCompleted is published exactly once per genuine false→true
// completion edge of a month.
const EventMonthCompleted = "month_completed"

// CollectionSource provides the current goal collection.
type CollectionSource interface {
	LoadGoals() models.Collection
}

// EventSink receives summary events.
type EventSink interface {
	Publish(eventType string, data interface{})
}

type Service struct {
	mu          sync.Mutex
	source      CollectionSource
	sink        EventSink
	logger      *log.Logger
	checked     models.CheckSet
	wasComplete map[models.Month]bool
	seeded      bool
}

func New(source CollectionSource, sink EventSink, logger *log.Logger) *Service {
	return &Service{
		source:      source,
		sink:        sink,
		logger:      logger,
		checked:     make(models.CheckSet),
		wasComplete: make(map[models.Month]bool),
	}
}

// Seed records the current completion state of every month as the baseline,
// without emitting events. Must run once at startup before any intent is
// served; without it a month that loads already complete would fire a
// spurious celebration on its first recomputation.
func (s *Service) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	collection := s.source.LoadGoals()
	for _, month := range models.Months {
		s.wasComplete[month] = stats.ComputeMonthStats(collection, s.checked, month).IsComplete
	}
	s.seeded = true
	s.logger.Info("completion baseline seeded")
}

// ToggleCheck flips one summary checkbox cell and returns the month's fresh
// snapshot. Fires the completion event when the flip produces a false→true
// edge for the month.
func (s *Service) ToggleCheck(categoryID string, goalID uuid.UUID, month models.Month) models.MonthStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := models.CheckKey{CategoryID: categoryID, GoalID: goalID, Month: month}
	if s.checked[key] {
		delete(s.checked, key)
	} else {
		s.checked[key] = true
	}

	snapshot := stats.ComputeMonthStats(s.source.LoadGoals(), s.checked, month)
	s.detect(snapshot)
	return snapshot
}

// Recheck recomputes every month against the current goal collection and
// fires events for any new completion edges. Called after goal mutations:
// deleting the last unchecked goal of a month can complete it without any
// checkbox changing.
func (s *Service) Recheck() {
	s.mu.Lock()
	defer s.mu.Unlock()

	collection := s.source.LoadGoals()
	for _, month := range models.Months {
		s.detect(stats.ComputeMonthStats(collection, s.checked, month))
	}
}

// MonthStats returns the current snapshot for one month without touching
// detector state.
func (s *Service) MonthStats(month models.Month) models.MonthStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return stats.ComputeMonthStats(s.source.LoadGoals(), s.checked, month)
}

// YearStats returns snapshots for all 12 months in calendar order.
func (s *Service) YearStats() []models.MonthStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return stats.ComputeYear(s.source.LoadGoals(), s.checked)
}

// Checked reports one cell of the checkbox state.
func (s *Service) Checked(categoryID string, goalID uuid.UUID, month models.Month) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checked[models.CheckKey{CategoryID: categoryID, GoalID: goalID, Month: month}]
}

// detect compares the fresh snapshot against the retained per-month boolean,
// updates it, and emits the event on a false→true edge. Complete→incomplete
// is a silent state change; re-observing complete fires nothing. Callers
// hold s.mu, so the read-update pair never splits across scheduling turns.
func (s *Service) detect(snapshot models.MonthStats) {
	previous := s.wasComplete[snapshot.Month]
	s.wasComplete[snapshot.Month] = snapshot.IsComplete

	if !s.seeded || previous || !snapshot.IsComplete {
		return
	}
	s.logger.Info("month completed", "month", snapshot.Month)
	if s.sink != nil {
		s.sink.Publish(EventMonthCompleted, snapshot)
	}
}

// Package goals implements every mutation of the category/goal collection.
// All operations are pure: they deep-copy the input collection, apply the
// change, and return the copy. References to unknown category or goal ids
// are no-ops, never faults.
package goals

import (
	"strings"

	"github.com/caffeinepub/my-goals-2026/internal/models"
	"github.com/google/uuid"
)

// Toggle flips a goal's completed flag. Completing a goal does not assign a
// month (that is a separate, user-driven step); uncompleting one always
// clears the month.
func Toggle(c models.Collection, categoryID string, goalID uuid.UUID) models.Collection {
	out := c.Clone()
	if _, goal := out.Find(categoryID, goalID); goal != nil {
		goal.Completed = !goal.Completed
		if !goal.Completed {
			goal.Month = nil
		}
	}
	return out
}

// AssignMonth sets the target month on a goal that is currently completed.
// Ignored for incomplete or unknown goals.
func AssignMonth(c models.Collection, categoryID string, goalID uuid.UUID, month models.Month) models.Collection {
	out := c.Clone()
	if _, goal := out.Find(categoryID, goalID); goal != nil && goal.Completed && month.Valid() {
		m := month
		goal.Month = &m
	}
	return out
}

// CancelPendingCompletion reverts a goal to incomplete. Used when the month
// prompt is dismissed without a choice: a completed goal without a month is
// an invalid transient state and must not be persisted.
func CancelPendingCompletion(c models.Collection, categoryID string, goalID uuid.UUID) models.Collection {
	out := c.Clone()
	if _, goal := out.Find(categoryID, goalID); goal != nil {
		goal.Completed = false
		goal.Month = nil
	}
	return out
}

// EditText replaces a goal's text. Empty or whitespace-only text is rejected
// and the original text kept.
func EditText(c models.Collection, categoryID string, goalID uuid.UUID, text string) models.Collection {
	out := c.Clone()
	if strings.TrimSpace(text) == "" {
		return out
	}
	if _, goal := out.Find(categoryID, goalID); goal != nil {
		goal.Text = text
	}
	return out
}

// Delete removes a goal from its category's list.
func Delete(c models.Collection, categoryID string, goalID uuid.UUID) models.Collection {
	out := c.Clone()
	for i := range out.Categories {
		if out.Categories[i].ID != categoryID {
			continue
		}
		goals := out.Categories[i].Goals
		for j := range goals {
			if goals[j].ID == goalID {
				out.Categories[i].Goals = append(goals[:j], goals[j+1:]...)
				break
			}
		}
		break
	}
	return out
}

// Add appends a new goal to a category and returns it alongside the updated
// collection. The returned goal is nil when the category is unknown.
func Add(c models.Collection, categoryID string, text string) (models.Collection, *models.Goal) {
	out := c.Clone()
	for i := range out.Categories {
		if out.Categories[i].ID != categoryID {
			continue
		}
		goal := models.Goal{ID: uuid.New(), Text: text}
		out.Categories[i].Goals = append(out.Categories[i].Goals, goal)
		added := out.Categories[i].Goals[len(out.Categories[i].Goals)-1]
		return out, &added
	}
	return out, nil
}

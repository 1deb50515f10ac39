package handlers

import (
	"strings"

	"github.com/caffeinepub/my-goals-2026/internal/goals"
	"github.com/caffeinepub/my-goals-2026/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type addGoalRequest struct {
	Text string `json:"text"`
}

type editGoalRequest struct {
	Text string `json:"text"`
}

type assignMonthRequest struct {
	Month string `json:"month"`
}

func GetGoals(c *fiber.Ctx) error {
	return c.JSON(store.LoadGoals())
}

func AddGoal(c *fiber.Ctx) error {
	categoryID := c.Params("categoryId")

	var req addGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	mutationMu.Lock()
	collection := store.LoadGoals()
	updated, goal := goals.Add(collection, categoryID, req.Text)
	if goal == nil {
		mutationMu.Unlock()
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Category not found",
		})
	}
	store.SaveGoals(updated)
	mutationMu.Unlock()

	return c.Status(fiber.StatusCreated).JSON(goal)
}

func ToggleGoal(c *fiber.Ctx) error {
	categoryID, goalID, ok := goalAddress(c)
	if !ok {
		return nil
	}

	mutationMu.Lock()
	collection := store.LoadGoals()
	_, before := collection.Find(categoryID, goalID)
	if before == nil {
		mutationMu.Unlock()
		return goalNotFound(c)
	}
	updated := goals.Toggle(collection, categoryID, goalID)
	store.SaveGoals(updated)
	_, after := updated.Find(categoryID, goalID)
	mutationMu.Unlock()

	summarySvc.Recheck()

	// A goal that just turned complete still needs its month; the page shows
	// the month prompt off this flag.
	return c.JSON(fiber.Map{
		"goal":       after,
		"needsMonth": after.Completed && after.Month == nil,
	})
}

func AssignMonth(c *fiber.Ctx) error {
	categoryID, goalID, ok := goalAddress(c)
	if !ok {
		return nil
	}

	var req assignMonthRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	month, ok := models.ParseMonth(req.Month)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid month",
		})
	}

	mutationMu.Lock()
	collection := store.LoadGoals()
	_, goal := collection.Find(categoryID, goalID)
	if goal == nil {
		mutationMu.Unlock()
		return goalNotFound(c)
	}
	if !goal.Completed {
		mutationMu.Unlock()
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Goal is not completed",
		})
	}
	updated := goals.AssignMonth(collection, categoryID, goalID, month)
	store.SaveGoals(updated)
	_, after := updated.Find(categoryID, goalID)
	mutationMu.Unlock()

	summarySvc.Recheck()
	return c.JSON(after)
}

func CancelPendingCompletion(c *fiber.Ctx) error {
	categoryID, goalID, ok := goalAddress(c)
	if !ok {
		return nil
	}

	mutationMu.Lock()
	collection := store.LoadGoals()
	_, goal := collection.Find(categoryID, goalID)
	if goal == nil {
		mutationMu.Unlock()
		return goalNotFound(c)
	}
	updated := goals.CancelPendingCompletion(collection, categoryID, goalID)
	store.SaveGoals(updated)
	_, after := updated.Find(categoryID, goalID)
	mutationMu.Unlock()

	summarySvc.Recheck()
	return c.JSON(after)
}

func EditGoalText(c *fiber.Ctx) error {
	categoryID, goalID, ok := goalAddress(c)
	if !ok {
		return nil
	}

	var req editGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if strings.TrimSpace(req.Text) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Goal text cannot be empty",
		})
	}

	mutationMu.Lock()
	collection := store.LoadGoals()
	_, goal := collection.Find(categoryID, goalID)
	if goal == nil {
		mutationMu.Unlock()
		return goalNotFound(c)
	}
	updated := goals.EditText(collection, categoryID, goalID, req.Text)
	store.SaveGoals(updated)
	_, after := updated.Find(categoryID, goalID)
	mutationMu.Unlock()

	return c.JSON(after)
}

func DeleteGoal(c *fiber.Ctx) error {
	categoryID, goalID, ok := goalAddress(c)
	if !ok {
		return nil
	}

	mutationMu.Lock()
	collection := store.LoadGoals()
	_, goal := collection.Find(categoryID, goalID)
	if goal == nil {
		mutationMu.Unlock()
		return goalNotFound(c)
	}
	store.SaveGoals(goals.Delete(collection, categoryID, goalID))
	mutationMu.Unlock()

	// Removing a goal can complete its month when every remaining eligible
	// goal was already checked.
	summarySvc.Recheck()
	return c.SendStatus(fiber.StatusNoContent)
}

// goalAddress parses the category/goal route params. On a bad goal id it
// writes the 400 response itself and reports !ok.
func goalAddress(c *fiber.Ctx) (string, uuid.UUID, bool) {
	categoryID := c.Params("categoryId")
	goalID, err := uuid.Parse(c.Params("goalId"))
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal ID",
		})
		return "", uuid.Nil, false
	}
	return categoryID, goalID, true
}

func goalNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "Goal not found",
	})
}

package handlers

import (
	"github.com/caffeinepub/my-goals-2026/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type toggleCheckRequest struct {
	CategoryID string `json:"categoryId"`
	GoalID     string `json:"goalId"`
	Month      string `json:"month"`
}

// ToggleCheck flips one checkbox cell in the yearly summary and returns the
// month's fresh statistics. Completion events go out over the event socket.
func ToggleCheck(c *fiber.Ctx) error {
	var req toggleCheckRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	goalID, err := uuid.Parse(req.GoalID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid goal ID",
		})
	}
	month, ok := models.ParseMonth(req.Month)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid month",
		})
	}

	return c.JSON(summarySvc.ToggleCheck(req.CategoryID, goalID, month))
}

func GetYearStats(c *fiber.Ctx) error {
	return c.JSON(summarySvc.YearStats())
}

func GetMonthStats(c *fiber.Ctx) error {
	month, ok := models.ParseMonth(c.Params("month"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid month",
		})
	}
	return c.JSON(summarySvc.MonthStats(month))
}

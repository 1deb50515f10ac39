package handlers

import (
	"github.com/caffeinepub/my-goals-2026/internal/models"
	"github.com/gofiber/fiber/v2"
)

func ListMemories(c *fiber.Ctx) error {
	memories := store.Memories()
	if memories == nil {
		memories = []models.MonthlyMemory{}
	}
	return c.JSON(memories)
}

func GetMemory(c *fiber.Ctx) error {
	month, ok := models.ParseMonth(c.Params("month"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid month",
		})
	}
	data, ok := store.LoadMemory(month)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "No memory for this month",
		})
	}
	return c.JSON(models.MonthlyMemory{Month: month, ImageData: data})
}

func DeleteMemory(c *fiber.Ctx) error {
	month, ok := models.ParseMonth(c.Params("month"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid month",
		})
	}
	store.ClearMemory(month)
	return c.SendStatus(fiber.StatusNoContent)
}

package routes

import (
	"github.com/caffeinepub/my-goals-2026/internal/handlers"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

func Setup(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/goals", handlers.GetGoals)

	goals := api.Group("/categories/:categoryId/goals")
	goals.Post("/", handlers.AddGoal)
	goals.Put("/:goalId", handlers.EditGoalText)
	goals.Delete("/:goalId", handlers.DeleteGoal)
	goals.Post("/:goalId/toggle", handlers.ToggleGoal)
	goals.Post("/:goalId/month", handlers.AssignMonth)
	goals.Post("/:goalId/cancel", handlers.CancelPendingCompletion)

	summary := api.Group("/summary")
	summary.Post("/checks", handlers.ToggleCheck)
	summary.Get("/stats", handlers.GetYearStats)
	summary.Get("/stats/:month", handlers.GetMonthStats)

	memories := api.Group("/memories")
	memories.Get("/", handlers.ListMemories)
	memories.Get("/:month", handlers.GetMemory)
	memories.Delete("/:month", handlers.DeleteMemory)

	capture := api.Group("/capture")
	capture.Get("/", handlers.GetCapture)
	capture.Post("/start", handlers.StartCapture)
	capture.Post("/save", handlers.SaveCapture)
	capture.Post("/retake", handlers.RetakeCapture)
	capture.Post("/close", handlers.CloseCapture)
	capture.Post("/upload", handlers.UploadFallback)
	capture.Post("/camera/attach", handlers.AttachCamera)
	capture.Post("/camera/error", handlers.CameraError)
	capture.Post("/camera/frame", handlers.PushFrame)
	capture.Post("/camera/switch", handlers.SwitchFacing)

	// WebSocket for dashboard events (completions, capture state, memories)
	app.Use("/ws", handlers.WebSocketUpgrade())
	app.Get("/ws/events", websocket.New(handlers.HandleEvents))
}

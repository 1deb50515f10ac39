package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/caffeinepub/my-goals-2026/internal/capture"
	"github.com/caffeinepub/my-goals-2026/internal/models"
	"github.com/gofiber/fiber/v2"
)

type startCaptureRequest struct {
	Month string `json:"month"`
}

type attachCameraRequest struct {
	Facing string `json:"facing"`
}

type cameraErrorRequest struct {
	Kind   string `json:"kind"`
	Reason string `json:"reason"`
}

// StartCapture begins the celebration flow for a month.
func StartCapture(c *fiber.Ctx) error {
	var req startCaptureRequest
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

	if err := flow.Begin(month); err != nil {
		if errors.Is(err, capture.ErrFlowActive) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "A capture is already in progress",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to start capture",
		})
	}
	return c.JSON(flow.Snapshot())
}

// GetCapture reports the current flow state.
func GetCapture(c *fiber.Ctx) error {
	return c.JSON(flow.Snapshot())
}

// AttachCamera is called by the page once getUserMedia succeeded.
func AttachCamera(c *fiber.Ctx) error {
	var req attachCameraRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	camera.Attach(req.Facing)
	return c.SendStatus(fiber.StatusNoContent)
}

// CameraError is called by the page when getUserMedia failed.
func CameraError(c *fiber.Ctx) error {
	var req cameraErrorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	camera.Fail(capture.ParseFailureKind(req.Kind), req.Reason)
	return c.SendStatus(fiber.StatusNoContent)
}

// PushFrame receives one video frame from the page.
func PushFrame(c *fiber.Ctx) error {
	data, ok := imageUpload(c, "frame")
	if !ok {
		return nil
	}
	camera.PushFrame(data)
	return c.SendStatus(fiber.StatusNoContent)
}

// SwitchFacing flips between front and back camera.
func SwitchFacing(c *fiber.Ctx) error {
	if err := camera.SwitchFacing(); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Camera is not running",
		})
	}
	return c.JSON(fiber.Map{"facing": camera.Facing()})
}

// UploadFallback accepts a user-selected file when the camera path failed
// and feeds it straight into processing.
func UploadFallback(c *fiber.Ctx) error {
	month, ok := models.ParseMonth(c.FormValue("month"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid month",
		})
	}
	data, ok := imageUpload(c, "image")
	if !ok {
		return nil
	}

	if err := flow.Upload(month, data); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to process image",
		})
	}
	return c.JSON(flow.Snapshot())
}

// SaveCapture commits the previewed photo as the month's memory.
func SaveCapture(c *fiber.Ctx) error {
	if err := flow.Save(); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Nothing to save",
		})
	}
	return c.JSON(flow.Snapshot())
}

// RetakeCapture discards the current attempt and restarts the camera.
func RetakeCapture(c *fiber.Ctx) error {
	if err := flow.Retake(); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "No capture to retake",
		})
	}
	return c.JSON(flow.Snapshot())
}

// CloseCapture tears the flow down ("maybe later").
func CloseCapture(c *fiber.Ctx) error {
	flow.Close()
	return c.JSON(flow.Snapshot())
}

// imageUpload validates and reads a multipart image field. On rejection it
// writes the response itself and reports !ok.
func imageUpload(c *fiber.Ctx, field string) ([]byte, bool) {
	file, err := c.FormFile(field)
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No image file provided",
		})
		return nil, false
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	allowed := map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true}
	if ext != "" && !allowed[ext] {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Only jpg, png, and webp images are allowed",
		})
		return nil, false
	}

	// Limit to 5MB
	if file.Size > 5*1024*1024 {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Image must be under 5MB",
		})
		return nil, false
	}

	data, err := readUpload(file)
	if err != nil {
		_ = c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read image",
		})
		return nil, false
	}
	return data, true
}

func readUpload(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

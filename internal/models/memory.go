package models

// MonthlyMemory is the celebratory photo saved for a fully completed month.
// At most one exists per month; saving again overwrites it.
type MonthlyMemory struct {
	Month     Month  `json:"month"`
	ImageData string `json:"imageData"` // base64 image data URL
}

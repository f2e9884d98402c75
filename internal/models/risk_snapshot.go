package models

import "time"

// RiskSnapshot is the last disease-risk outcome per crop, shown as a badge elsewhere.
type RiskSnapshot struct {
	Score int       `json:"score"` // 0 low, 1 medium, 2 high
	Level string    `json:"level"`
	Crop  string    `json:"crop"`
	At    time.Time `json:"at"`
}

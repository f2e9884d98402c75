package models

import "time"

// AdvisoryLogEntry is a single recorded irrigation advice.
type AdvisoryLogEntry struct {
	ID              string         `json:"id" db:"id"`
	RecordedAt      time.Time      `json:"recorded_at" db:"recorded_at"`
	CropKey         string         `json:"crop" db:"crop"`
	Zone            string         `json:"zone,omitempty" db:"zone"`
	LocationLabel   string         `json:"location" db:"location"`
	Quantity        int            `json:"quantity_l" db:"quantity_l"`
	DurationMinutes *int           `json:"duration_minutes" db:"duration_minutes"` // nil when no network flow is known
	Decision        string         `json:"decision" db:"decision"`                 // postpone | light | normal | heavy
	Weather         WeatherReading `json:"weather" db:"weather"`
}

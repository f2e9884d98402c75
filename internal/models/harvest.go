package models

import "time"

// HarvestEntry is one picked lot in the harvest ledger.
type HarvestEntry struct {
	ID         string    `json:"id" db:"id"`
	PickedOn   string    `json:"date" db:"picked_on"` // YYYY-MM-DD
	CropKey    string    `json:"crop" db:"crop"`
	Quality    string    `json:"quality" db:"quality"` // A | B | C
	QtyKg      float64   `json:"qty_kg" db:"qty_kg"`
	PricePerKg float64   `json:"price" db:"price"`
	Total      float64   `json:"total" db:"total"`
	RecordedAt time.Time `json:"recorded_at" db:"recorded_at"`
}

// HarvestTotals sums the ledger.
type HarvestTotals struct {
	SumKg  float64 `json:"sum_kg" db:"sum_kg"`
	SumMAD float64 `json:"sum_mad" db:"sum_mad"`
}

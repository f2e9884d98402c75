// Package export writes the advisory log and harvest ledger as an XLSX workbook.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"agrimoga/internal/models"
)

const (
	SheetAdvisories = "Advisories"
	SheetHarvest    = "Harvest"

	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	timeLayout  = "2006-01-02 15:04"
)

var (
	adviceHeader  = []any{"recorded_at", "crop", "zone", "location", "quantity_l", "duration_minutes", "decision", "temperature_c", "wind_kmh", "rain_or_humidity_pct", "rainy_tomorrow"}
	harvestHeader = []any{"date", "crop", "quality", "qty_kg", "price_mad_kg", "total_mad"}
)

// Workbook builds a two-sheet workbook. Rows keep the order they are given in.
func Workbook(advice []models.AdvisoryLogEntry, harvest []models.HarvestEntry, totals models.HarvestTotals) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetAdvisories); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if err := writeRows(f, SheetAdvisories, adviceHeader, adviceRows(advice)); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(SheetHarvest); err != nil {
		return nil, fmt.Errorf("create harvest sheet: %w", err)
	}
	rows := harvestRows(harvest)
	rows = append(rows, []any{"", "", "", totals.SumKg, "", totals.SumMAD})
	if err := writeRows(f, SheetHarvest, harvestHeader, rows); err != nil {
		return nil, err
	}
	return f, nil
}

// Write renders the workbook to w.
func Write(w io.Writer, advice []models.AdvisoryLogEntry, harvest []models.HarvestEntry, totals models.HarvestTotals) error {
	f, err := Workbook(advice, harvest, totals)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, header []any, rows [][]any) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("%s header: %w", sheet, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("%s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func adviceRows(entries []models.AdvisoryLogEntry) [][]any {
	out := make([][]any, 0, len(entries))
	for _, e := range entries {
		var duration any = ""
		if e.DurationMinutes != nil {
			duration = *e.DurationMinutes
		}
		out = append(out, []any{
			e.RecordedAt.UTC().Format(timeLayout),
			e.CropKey,
			e.Zone,
			e.LocationLabel,
			e.Quantity,
			duration,
			e.Decision,
			e.Weather.TemperatureC,
			e.Weather.WindKmh,
			e.Weather.RainOrHumidityPct,
			e.Weather.RainyTomorrow,
		})
	}
	return out
}

func harvestRows(entries []models.HarvestEntry) [][]any {
	out := make([][]any, 0, len(entries)+1)
	for _, e := range entries {
		out = append(out, []any{e.PickedOn, e.CropKey, e.Quality, e.QtyKg, e.PricePerKg, e.Total})
	}
	return out
}

// Package share renders advisories as WhatsApp messages.
package share

import (
	"fmt"
	"net/url"
	"strings"

	"agrimoga/internal/advisory"
	"agrimoga/internal/i18n"
	"agrimoga/internal/models"
)

const waBase = "https://wa.me/?text="

// Link wraps a message in a wa.me share URL, escaped the way browsers encode
// a URI component.
func Link(text string) string {
	return waBase + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

// Irrigation is the context printed with an irrigation decision.
type Irrigation struct {
	CropLabel string
	Zone      string
	Place     string
	Reading   models.WeatherReading
	Decision  advisory.Decision
}

// IrrigationText renders the fixed irrigation template.
func IrrigationText(in Irrigation, l i18n.Locale) string {
	place := in.Place
	if place == "" {
		place = l.T(i18n.KeySharePlaceUnknown)
	}
	w := in.Reading
	lines := []string{
		l.T(i18n.KeyShareIrrigation),
		bullet(l, i18n.KeyShareCrop, in.CropLabel),
	}
	if in.Zone != "" {
		lines = append(lines, bullet(l, i18n.KeyShareZone, in.Zone))
	}
	lines = append(lines,
		bullet(l, i18n.KeySharePlace, place),
		bullet(l, i18n.KeyShareWeather, fmt.Sprintf("%s°C • %s %s • %s%%",
			l.FormatInt(w.TemperatureC), l.FormatInt(w.WindKmh), l.T(i18n.KeyUnitKmh), l.FormatInt(w.RainOrHumidityPct))),
	)
	qty := fmt.Sprintf("%s %s", l.FormatInt(float64(in.Decision.Quantity)), l.T(i18n.KeyUnitLiters))
	if m := in.Decision.DurationMinutes; m != nil && *m > 0 {
		qty += fmt.Sprintf(" • %s ~ %s %s", l.T(i18n.KeyShareDuration), l.FormatInt(float64(*m)), l.T(i18n.KeyUnitMinutes))
	}
	lines = append(lines, bullet(l, i18n.KeyShareQuantity, qty), "", in.Decision.Title)
	return strings.Join(lines, "\n")
}

// Prices is the context printed with a pricing breakdown.
type Prices struct {
	CropLabel  string
	PricePerKg float64
	Breakdown  advisory.Breakdown
}

// PricesText renders the fixed prices template.
func PricesText(in Prices, l i18n.Locale) string {
	b := in.Breakdown
	return strings.Join([]string{
		l.T(i18n.KeySharePrices),
		fmt.Sprintf("%s: %s", l.T(i18n.KeyShareCrop), in.CropLabel),
		fmt.Sprintf("%s: %s MAD/kg", l.T(i18n.KeySharePricePerKg), l.FormatFixed(in.PricePerKg, 2)),
		fmt.Sprintf("%s: %s kg", l.T(i18n.KeyShareSellable), l.FormatInt(b.SellableKg)),
		fmt.Sprintf("%s: %s MAD", l.T(i18n.KeyShareNet), l.FormatInt(b.Net)),
		fmt.Sprintf("(%s: %s MAD/kg)", l.T(i18n.KeyShareBreakEven), l.FormatFixed(b.BreakEvenPricePerKg, 2)),
	}, "\n")
}

func bullet(l i18n.Locale, key, value string) string {
	return fmt.Sprintf("• %s: %s", l.T(key), value)
}

package share

import (
	"net/url"
	"strings"
	"testing"

	"agrimoga/internal/advisory"
	"agrimoga/internal/i18n"
	"agrimoga/internal/models"
)

func TestLink_EncodesLikeURIComponent(t *testing.T) {
	got := Link("a b\n&c")
	if got != "https://wa.me/?text=a%20b%0A%26c" {
		t.Fatalf("link = %q", got)
	}

	u, err := url.Parse(Link("💧 300 L"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if u.Query().Get("text") != "💧 300 L" {
		t.Fatalf("round trip = %q", u.Query().Get("text"))
	}
}

func TestIrrigationText(t *testing.T) {
	minutes := 38
	in := Irrigation{
		CropLabel: "Strawberry",
		Zone:      "Zone A",
		Reading:   models.WeatherReading{TemperatureC: 32, WindKmh: 15, RainOrHumidityPct: 10},
		Decision:  advisory.Decision{Quantity: 1300, DurationMinutes: &minutes, Title: "Normal watering"},
	}
	got := IrrigationText(in, i18n.English)
	want := strings.Join([]string{
		"💧 Irrigation advice (Agrimoga)",
		"• Crop: Strawberry",
		"• Zone: Zone A",
		"• Place: not set",
		"• Weather: 32°C • 15 km/h • 10%",
		"• Quantity: 1,300 L • Duration ~ 38 min",
		"",
		"Normal watering",
	}, "\n")
	if got != want {
		t.Fatalf("text =\n%s\nwant\n%s", got, want)
	}
}

func TestIrrigationText_NoDuration(t *testing.T) {
	in := Irrigation{CropLabel: "Avocado", Place: "Larache", Decision: advisory.Decision{Quantity: 90}}
	got := IrrigationText(in, i18n.English)
	if strings.Contains(got, "Duration") {
		t.Fatalf("unexpected duration in %q", got)
	}
	if !strings.Contains(got, "• Place: Larache") || strings.Contains(got, "Zone") {
		t.Fatalf("text = %q", got)
	}
}

func TestPricesText(t *testing.T) {
	b := advisory.Compute(advisory.PricingInput{
		YieldKg: 100, WasteKg: 10, PricePerKg: 12,
		Costs: advisory.Costs{Transport: 200, Labor: 100},
	})
	got := PricesText(Prices{CropLabel: "Strawberry", PricePerKg: 12, Breakdown: b}, i18n.English)
	for _, want := range []string{
		"PRICES - AGRIMOGA",
		"Sellable: 90 kg",
		"Net: 780 MAD",
		"(Break-even: 3.33 MAD/kg)",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("missing %q in\n%s", want, got)
		}
	}
}

package advisory

// Costs are the per-lot expenses in MAD. Commission counts as a cost.
type Costs struct {
	Transport  float64 `json:"transport"`
	Labor      float64 `json:"labor"`
	Packaging  float64 `json:"packaging"`
	Other      float64 `json:"other"`
	Commission float64 `json:"commission"`
}

// Base is every cost except the commission.
func (c Costs) Base() float64 {
	return nonNegative(c.Transport) + nonNegative(c.Labor) + nonNegative(c.Packaging) + nonNegative(c.Other)
}

// Total is Base plus the commission.
func (c Costs) Total() float64 {
	return c.Base() + nonNegative(c.Commission)
}

// PricingInput is a sale to evaluate. Negative figures are clamped to 0.
type PricingInput struct {
	YieldKg    float64 `json:"yield_kg"`
	WasteKg    float64 `json:"waste_kg"`
	PricePerKg float64 `json:"price_per_kg"`
	Costs      Costs   `json:"costs"`
}

// Breakdown is the result of Compute.
type Breakdown struct {
	SellableKg          float64 `json:"sellable_kg"`
	Gross               float64 `json:"gross"`
	BaseCosts           float64 `json:"base_costs"`
	Commission          float64 `json:"commission"`
	TotalCosts          float64 `json:"total_costs"`
	Net                 float64 `json:"net"`
	BreakEvenPricePerKg float64 `json:"break_even_price_per_kg"`
}

// Compute derives gross, net and break-even. Break-even is 0 when nothing is
// sellable.
func Compute(in PricingInput) Breakdown {
	sellable := max(0, nonNegative(in.YieldKg)-nonNegative(in.WasteKg))
	b := Breakdown{
		SellableKg: sellable,
		Gross:      sellable * nonNegative(in.PricePerKg),
		BaseCosts:  in.Costs.Base(),
		Commission: nonNegative(in.Costs.Commission),
		TotalCosts: in.Costs.Total(),
	}
	b.Net = b.Gross - b.TotalCosts
	if sellable > 0 {
		b.BreakEvenPricePerKg = b.TotalCosts / sellable
	}
	return b
}

// Scenario names the price point a ScenarioRow was computed at.
type Scenario string

const (
	ScenarioMin Scenario = "min"
	ScenarioAvg Scenario = "avg"
	ScenarioMax Scenario = "max"
)

// ScenarioRow is one row of the market comparison.
type ScenarioRow struct {
	Scenario   Scenario `json:"scenario"`
	PricePerKg float64  `json:"price_per_kg"`
	Net        float64  `json:"net"`
	Gross      float64  `json:"gross"`
}

// Scenarios re-runs Compute at the band's min, avg and max prices, holding
// yield, waste and costs fixed.
func Scenarios(band PriceBand, in PricingInput) []ScenarioRow {
	rows := make([]ScenarioRow, 0, 3)
	for _, s := range []struct {
		name  Scenario
		price float64
	}{
		{ScenarioMin, band.Min},
		{ScenarioAvg, band.Avg},
		{ScenarioMax, band.Max},
	} {
		in.PricePerKg = s.price
		b := Compute(in)
		rows = append(rows, ScenarioRow{Scenario: s.name, PricePerKg: s.price, Net: b.Net, Gross: b.Gross})
	}
	return rows
}

// BoxesToKg converts a box count with the crop's kg/box.
func BoxesToKg(boxes, kgPerBox float64) float64 {
	return nonNegative(boxes) * nonNegative(kgPerBox)
}

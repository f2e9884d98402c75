package advisory

import (
	"math"
	"testing"
)

func TestCompute_Example(t *testing.T) {
	t.Parallel()

	b := Compute(PricingInput{
		YieldKg:    100,
		WasteKg:    10,
		PricePerKg: 12,
		Costs:      Costs{Transport: 200, Labor: 100},
	})
	if b.SellableKg != 90 || b.Gross != 1080 || b.TotalCosts != 300 || b.Net != 780 {
		t.Fatalf("unexpected breakdown: %+v", b)
	}
	if math.Abs(b.BreakEvenPricePerKg-3.3333) > 1e-3 {
		t.Fatalf("break-even = %v, want ~3.33", b.BreakEvenPricePerKg)
	}
}

func TestCompute_CommissionIsACost(t *testing.T) {
	t.Parallel()

	b := Compute(PricingInput{YieldKg: 50, PricePerKg: 10, Costs: Costs{Other: 40, Commission: 60}})
	if b.BaseCosts != 40 || b.Commission != 60 || b.TotalCosts != 100 {
		t.Fatalf("costs = %+v", b)
	}
	if b.Net != 400 {
		t.Fatalf("net = %v, want 400", b.Net)
	}
}

func TestCompute_NothingSellable(t *testing.T) {
	t.Parallel()

	for _, waste := range []float64{100, 150, 1e6} {
		b := Compute(PricingInput{YieldKg: 100, WasteKg: waste, PricePerKg: 12, Costs: Costs{Labor: 50}})
		if b.SellableKg != 0 || b.BreakEvenPricePerKg != 0 {
			t.Fatalf("waste %v: %+v", waste, b)
		}
		if math.IsNaN(b.BreakEvenPricePerKg) || math.IsInf(b.BreakEvenPricePerKg, 0) {
			t.Fatalf("waste %v: break-even not finite", waste)
		}
		if b.Net != -50 {
			t.Fatalf("waste %v: net = %v, want -50", waste, b.Net)
		}
	}
}

func TestScenarios(t *testing.T) {
	t.Parallel()

	rows := Scenarios(PriceBand{Min: 8, Avg: 12, Max: 18}, PricingInput{
		YieldKg:    100,
		WasteKg:    10,
		PricePerKg: 99,
		Costs:      Costs{Transport: 200, Labor: 100},
	})
	want := []ScenarioRow{
		{Scenario: ScenarioMin, PricePerKg: 8, Gross: 720, Net: 420},
		{Scenario: ScenarioAvg, PricePerKg: 12, Gross: 1080, Net: 780},
		{Scenario: ScenarioMax, PricePerKg: 18, Gross: 1620, Net: 1320},
	}
	if len(rows) != len(want) {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, rows[i], want[i])
		}
	}
}

func TestBoxesToKg(t *testing.T) {
	t.Parallel()

	if got := BoxesToKg(12, 5); got != 60 {
		t.Fatalf("boxes = %v, want 60", got)
	}
	if got := BoxesToKg(-3, 5); got != 0 {
		t.Fatalf("negative boxes = %v, want 0", got)
	}
}

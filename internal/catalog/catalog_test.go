package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"agrimoga/internal/advisory"
	"agrimoga/internal/i18n"
	"agrimoga/internal/models"
)

func TestDefault_LoadsAllCrops(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	list := c.List()
	if len(list) != 3 {
		t.Fatalf("crops = %d, want 3", len(list))
	}
	if list[0].Key != advisory.Strawberry {
		t.Fatalf("first crop = %q, want strawberry", list[0].Key)
	}
	if got := c.Get("avocado").BaseDemandLPerPlant; got != 18 {
		t.Fatalf("avocado per-plant demand = %v, want 18", got)
	}
}

func TestGet_FallsBackToStrawberry(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if got := c.Get("banana").Key; got != advisory.Strawberry {
		t.Fatalf("unknown key -> %q, want strawberry", got)
	}
	if got := c.Get("framboise").Key; got != advisory.Raspberry {
		t.Fatalf("legacy key -> %q, want raspberry", got)
	}
}

func TestDefault_BotrytisRule(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	d := c.Get("strawberry").Diseases[0]
	if d.ID != "straw-botrytis" {
		t.Fatalf("first disease = %q", d.ID)
	}
	r := d.Rules
	if r.TempMin == nil || *r.TempMin != 10 || r.TempMax == nil || *r.TempMax != 22 ||
		r.HumidityMin == nil || *r.HumidityMin != 85 || r.RainProbMin == nil || *r.RainProbMin != 40 {
		t.Fatalf("unexpected rule: %+v", r)
	}
	if r.HumidityMax != nil || r.SoilWetFlag {
		t.Fatalf("unexpected optional fields: %+v", r)
	}
	if got := d.Name.Resolve(i18n.English); got != "Botrytis (gray mold)" {
		t.Fatalf("en name = %q", got)
	}
	if got := d.Actions.Resolve(i18n.French); len(got) != 3 {
		t.Fatalf("fr actions = %v", got)
	}

	w := models.WeatherReading{TemperatureC: 18, RainOrHumidityPct: 90}
	if got := advisory.Assess(c.Get("strawberry").Diseases, w).Tier; got != advisory.TierHigh {
		t.Fatalf("tier = %q, want high", got)
	}
}

func TestParse_LegacyStringFields(t *testing.T) {
	doc := `
crops:
  - key: strawberry
    label: فراولة
    baseDemandLPerM2: 2.5
    baseDemandLPerPlant: 4
    prices: {min: 8, avg: 12, max: 18}
    kgPerBox: 5
    tip: سقي خفيف
    diseases:
      - id: d1
        name: Botrytis
        causes: [رطوبة عالية]
        riskRules: {humidityMin: 85}
  - key: raspberry
    label: x
    baseDemandLPerM2: 3
    baseDemandLPerPlant: 5
    prices: {min: 1, avg: 2, max: 3}
    kgPerBox: 2
  - key: avocado
    label: y
    baseDemandLPerM2: 4
    baseDemandLPerPlant: 18
    prices: {min: 1, avg: 2, max: 3}
    kgPerBox: 10
`
	c, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	p := c.Get("strawberry")
	if got := p.Tip.Resolve(i18n.English); got != "سقي خفيف" {
		t.Fatalf("tip fallback = %q", got)
	}
	if got := p.Diseases[0].Causes.Resolve(i18n.French); len(got) != 1 {
		t.Fatalf("causes fallback = %v", got)
	}
}

func TestParse_RejectsInvalid(t *testing.T) {
	doc := `
crops:
  - key: strawberry
    label: x
    baseDemandLPerM2: 0
    baseDemandLPerPlant: 4
    prices: {min: 20, avg: 12, max: 18}
    kgPerBox: 5
    diseases:
      - id: a
        riskRules: {tempMin: 30, tempMax: 10}
      - id: a
        riskRules: {humidityMin: 120}
`
	_, err := Parse([]byte(doc))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "invalid catalog") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_ReportsEachProblem(t *testing.T) {
	c := &Catalog{
		order: []advisory.CropKey{advisory.Strawberry},
		crops: map[advisory.CropKey]advisory.CropProfile{
			advisory.Strawberry: {
				Key:                 advisory.Strawberry,
				BaseDemandLPerM2:    2.5,
				BaseDemandLPerPlant: 4,
				KgPerBox:            5,
				Prices:              advisory.PriceBand{Min: 1, Avg: 2, Max: 3},
				Zones:               []advisory.Zone{{Name: "z", Plants: 10, DrippersPerPlant: 40, DripperFlowLph: 2}},
			},
		},
	}
	problems := Validate(c)

	var paths []string
	for _, p := range problems {
		paths = append(paths, p.Path)
	}
	joined := strings.Join(paths, ",")
	for _, want := range []string{"crops", "crops[0].label", "crops[0].zones[0].drippersPerPlant"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("problems %v missing %q", paths, want)
		}
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !strings.Contains(err.Error(), "reading catalog file") {
		t.Fatalf("err = %v", err)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crops.yaml")
	if err := os.WriteFile(path, defaultYAML, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(c.List()) != 3 {
		t.Fatalf("crops = %d", len(c.List()))
	}
}

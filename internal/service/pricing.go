package service

import (
	"context"

	"agrimoga/internal/advisory"
	"agrimoga/internal/catalog"
	"agrimoga/internal/i18n"
	"agrimoga/internal/metrics"
	"agrimoga/internal/share"
	"agrimoga/internal/store"
)

const pricingFormKey = store.FormPrefix + "prices"

// PricingRequest describes a lot. A nil PricePerKg uses the crop's average
// market price. Boxes and WasteBoxes, when set, replace the kg figures using
// the crop's kg per box.
type PricingRequest struct {
	Crop       string         `json:"crop" example:"strawberry"`
	Lang       string         `json:"lang,omitempty"`
	PricePerKg *float64       `json:"price_per_kg,omitempty" example:"12"`
	YieldKg    float64        `json:"yield_kg" example:"100"`
	Boxes      *float64       `json:"boxes,omitempty"`
	WasteKg    float64        `json:"waste_kg,omitempty"`
	WasteBoxes *float64       `json:"waste_boxes,omitempty"`
	Costs      advisory.Costs `json:"costs"`
}

// ScenarioView is a scenario row with its localized label.
type ScenarioView struct {
	advisory.ScenarioRow
	Label string `json:"label"`
}

type PricingResult struct {
	Crop      advisory.CropKey      `json:"crop"`
	Label     string                `json:"label"`
	KgPerBox  float64               `json:"kg_per_box"`
	Input     advisory.PricingInput `json:"input"`
	Breakdown advisory.Breakdown    `json:"breakdown"`
	Band      advisory.PriceBand    `json:"band"`
	Scenarios []ScenarioView        `json:"scenarios"`
	ShareText string                `json:"share_text"`
	ShareLink string                `json:"share_link"`
}

type PricingService struct {
	catalog *catalog.Catalog
	store   *store.Store
	prefs   *PrefsService
	metrics *metrics.Collector
}

func NewPricingService(c *catalog.Catalog, st *store.Store, prefs *PrefsService, m *metrics.Collector) *PricingService {
	return &PricingService{catalog: c, store: st, prefs: prefs, metrics: m}
}

// BreakEven computes the breakdown, the min/avg/max market scenarios and the
// share message.
func (s *PricingService) BreakEven(ctx context.Context, req PricingRequest) (PricingResult, error) {
	l := s.prefs.resolve(ctx, req.Lang)
	profile := s.catalog.Get(req.Crop)

	in := advisory.PricingInput{
		YieldKg:    req.YieldKg,
		WasteKg:    req.WasteKg,
		PricePerKg: profile.Prices.Avg,
		Costs:      req.Costs,
	}
	if req.PricePerKg != nil {
		in.PricePerKg = *req.PricePerKg
	}
	if req.Boxes != nil {
		in.YieldKg = advisory.BoxesToKg(*req.Boxes, profile.KgPerBox)
	}
	if req.WasteBoxes != nil {
		in.WasteKg = advisory.BoxesToKg(*req.WasteBoxes, profile.KgPerBox)
	}

	b := advisory.Compute(in)
	res := PricingResult{
		Crop:      profile.Key,
		Label:     profile.Label.Resolve(l),
		KgPerBox:  profile.KgPerBox,
		Input:     in,
		Breakdown: b,
		Band:      profile.Prices,
	}
	for _, row := range advisory.Scenarios(profile.Prices, in) {
		res.Scenarios = append(res.Scenarios, ScenarioView{ScenarioRow: row, Label: scenarioLabel(row.Scenario, l)})
	}
	res.ShareText = share.PricesText(share.Prices{CropLabel: res.Label, PricePerKg: in.PricePerKg, Breakdown: b}, l)
	res.ShareLink = share.Link(res.ShareText)

	store.Save(ctx, s.store, pricingFormKey, req)
	outcome := "profit"
	if b.Net < 0 {
		outcome = "loss"
	}
	s.metrics.RecordAdvisory("pricing", outcome)
	return res, nil
}

func scenarioLabel(sc advisory.Scenario, l i18n.Locale) string {
	switch sc {
	case advisory.ScenarioMin:
		return l.T(i18n.KeyScenarioMin)
	case advisory.ScenarioMax:
		return l.T(i18n.KeyScenarioMax)
	default:
		return l.T(i18n.KeyScenarioAvg)
	}
}

package advisory

import (
	"agrimoga/internal/i18n"
	"agrimoga/internal/models"
)

// Disease is a catalogue entry scoped to one crop.
type Disease struct {
	ID      string        `json:"id" yaml:"id"`
	Name    i18n.Text     `json:"name" yaml:"name"`
	Causes  i18n.TextList `json:"causes,omitempty" yaml:"causes"`
	Actions i18n.TextList `json:"actions,omitempty" yaml:"actions"`
	Rules   DiseaseRule   `json:"riskRules" yaml:"riskRules"`
}

// DiseaseScore is one row of an assessment breakdown.
type DiseaseScore struct {
	DiseaseID string `json:"disease_id"`
	Score     int    `json:"score"`
	Tier      Tier   `json:"tier"`
}

// Assessment is the outcome of Assess.
type Assessment struct {
	Tier      Tier           `json:"tier"`
	Breakdown []DiseaseScore `json:"breakdown"`
}

// Assess scores every disease and keeps the highest tier. Evaluation stops at
// the first disease that reaches TierHigh, so the breakdown only lists the
// diseases scored up to that point.
func Assess(diseases []Disease, w models.WeatherReading) Assessment {
	w = ClampReading(w)
	out := Assessment{Tier: TierLow, Breakdown: make([]DiseaseScore, 0, len(diseases))}
	for _, d := range diseases {
		score := Evaluate(d.Rules, w)
		tier := TierFor(score)
		out.Breakdown = append(out.Breakdown, DiseaseScore{DiseaseID: d.ID, Score: score, Tier: tier})
		if tier.Rank() > out.Tier.Rank() {
			out.Tier = tier
		}
		if out.Tier == TierHigh {
			break
		}
	}
	return out
}

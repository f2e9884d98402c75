package advisory

import (
	"agrimoga/internal/i18n"
	"agrimoga/internal/models"
)

// DiseaseRule holds the optional thresholds for one disease. A nil field is
// skipped; a rule with no thresholds never scores.
type DiseaseRule struct {
	TempMin     *float64 `json:"tempMin,omitempty" yaml:"tempMin"`
	TempMax     *float64 `json:"tempMax,omitempty" yaml:"tempMax"`
	HumidityMin *float64 `json:"humidityMin,omitempty" yaml:"humidityMin"`
	HumidityMax *float64 `json:"humidityMax,omitempty" yaml:"humidityMax"`
	RainProbMin *float64 `json:"rainProbMin,omitempty" yaml:"rainProbMin"`
	SoilWetFlag bool     `json:"soilWetFlag,omitempty" yaml:"soilWetFlag"`
}

// soilWetWeight is the score added when a root-disease rule meets saturated soil.
const soilWetWeight = 2

// Evaluate scores rule against the reading: +1 per defined threshold that
// holds, +2 when a soil-wet rule meets saturated soil.
func Evaluate(rule DiseaseRule, w models.WeatherReading) int {
	humidity, rainProb := w.Humidity(), w.RainProb()
	score := 0
	if rule.TempMin != nil && w.TemperatureC >= *rule.TempMin {
		score++
	}
	if rule.TempMax != nil && w.TemperatureC <= *rule.TempMax {
		score++
	}
	if rule.HumidityMin != nil && humidity >= *rule.HumidityMin {
		score++
	}
	if rule.HumidityMax != nil && humidity <= *rule.HumidityMax {
		score++
	}
	if rule.RainProbMin != nil && rainProb >= *rule.RainProbMin {
		score++
	}
	if rule.SoilWetFlag && w.SoilIsWet {
		score += soilWetWeight
	}
	return score
}

// Tier is the coarse disease-risk class.
type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

// Tier cut-offs. Downstream displays branch on these exact values.
const (
	highTierScore   = 4
	mediumTierScore = 2
)

// TierFor maps a rule score to its tier.
func TierFor(score int) Tier {
	switch {
	case score >= highTierScore:
		return TierHigh
	case score >= mediumTierScore:
		return TierMedium
	default:
		return TierLow
	}
}

// Rank orders tiers: low 0, medium 1, high 2.
func (t Tier) Rank() int {
	switch t {
	case TierHigh:
		return 2
	case TierMedium:
		return 1
	default:
		return 0
	}
}

// Label is the localized tier name.
func (t Tier) Label(l i18n.Locale) string {
	switch t {
	case TierHigh:
		return l.T(i18n.KeyTierHigh)
	case TierMedium:
		return l.T(i18n.KeyTierMedium)
	default:
		return l.T(i18n.KeyTierLow)
	}
}

// Float is a helper for building rules in code.
func Float(v float64) *float64 { return &v }

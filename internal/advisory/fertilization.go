package advisory

import (
	"errors"
	"time"
)

var ErrInvalidDoseCount = errors.New("dose count must be greater than zero")

const (
	DefaultDoseCount = 4
	MinSplitDays     = 3
)

// FertilizationPlan splits a seasonal target into equal doses. PerDose is not
// rounded; callers round for display.
type FertilizationPlan struct {
	DoseCount int `json:"dose_count"`
	Seasonal  NPK `json:"seasonal"`
	PerDose   NPK `json:"per_dose"`
}

// ScheduledDose is one application date of a plan.
type ScheduledDose struct {
	Index int       `json:"index"`
	Date  time.Time `json:"date"`
	NPK   NPK       `json:"npk"`
}

// Plan divides seasonal by doseCount.
func Plan(seasonal NPK, doseCount int) (FertilizationPlan, error) {
	if doseCount <= 0 {
		return FertilizationPlan{}, ErrInvalidDoseCount
	}
	n := float64(doseCount)
	return FertilizationPlan{
		DoseCount: doseCount,
		Seasonal:  seasonal,
		PerDose: NPK{
			N: seasonal.N / n,
			P: seasonal.P / n,
			K: seasonal.K / n,
		},
	}, nil
}

// Schedule spaces the doses splitDays apart starting at start. Intervals under
// MinSplitDays are raised to it.
func (p FertilizationPlan) Schedule(start time.Time, splitDays int) []ScheduledDose {
	splitDays = max(splitDays, MinSplitDays)
	out := make([]ScheduledDose, 0, p.DoseCount)
	for i := 0; i < p.DoseCount; i++ {
		out = append(out, ScheduledDose{
			Index: i + 1,
			Date:  start.AddDate(0, 0, i*splitDays),
			NPK:   p.PerDose,
		})
	}
	return out
}

package catalog

import (
	"fmt"

	"agrimoga/internal/advisory"
	"agrimoga/internal/i18n"
)

// Problem is one validation failure, addressed by its YAML path.
type Problem struct {
	Path    string
	Message string
}

func (p Problem) String() string { return p.Path + ": " + p.Message }

// Validate checks the structural rules every consumer relies on: the three
// known crops are present, demands and prices are sane, zones are usable
// and each disease rule is well formed.
func Validate(c *Catalog) []Problem {
	var out []Problem
	add := func(path, format string, args ...any) {
		out = append(out, Problem{Path: path, Message: fmt.Sprintf(format, args...)})
	}

	for _, k := range []advisory.CropKey{advisory.Strawberry, advisory.Raspberry, advisory.Avocado} {
		if _, ok := c.crops[k]; !ok {
			add("crops", "missing crop %q", k)
		}
	}

	for i, k := range c.order {
		p := c.crops[k]
		path := fmt.Sprintf("crops[%d]", i)
		if advisory.NormalizeCropKey(string(k)) != k {
			add(path+".key", "unknown crop key %q", k)
		}
		if p.Label.Resolve(i18n.DefaultLocale) == "" {
			add(path+".label", "label is empty")
		}
		if p.BaseDemandLPerM2 <= 0 {
			add(path+".baseDemandLPerM2", "must be greater than 0")
		}
		if p.BaseDemandLPerPlant <= 0 {
			add(path+".baseDemandLPerPlant", "must be greater than 0")
		}
		if p.KgPerBox <= 0 {
			add(path+".kgPerBox", "must be greater than 0")
		}
		if pr := p.Prices; pr.Min < 0 || pr.Min > pr.Avg || pr.Avg > pr.Max {
			add(path+".prices", "want 0 <= min <= avg <= max, got %v/%v/%v", pr.Min, pr.Avg, pr.Max)
		}
		for j, z := range p.Zones {
			zp := fmt.Sprintf("%s.zones[%d]", path, j)
			if z.Name == "" {
				add(zp+".name", "zone name is empty")
			}
			if z.Plants <= 0 {
				add(zp+".plants", "must be greater than 0")
			}
			if z.DrippersPerPlant != advisory.DrippersRange.Clamp(z.DrippersPerPlant) {
				add(zp+".drippersPerPlant", "outside %v..%v", advisory.DrippersRange.Min, advisory.DrippersRange.Max)
			}
			if z.DripperFlowLph != advisory.DripperFlowRange.Clamp(z.DripperFlowLph) {
				add(zp+".dripperFlowLph", "outside %v..%v", advisory.DripperFlowRange.Min, advisory.DripperFlowRange.Max)
			}
		}
		seen := map[string]bool{}
		for j, d := range p.Diseases {
			dp := fmt.Sprintf("%s.diseases[%d]", path, j)
			if d.ID == "" {
				add(dp+".id", "disease id is empty")
			} else if seen[d.ID] {
				add(dp+".id", "duplicate disease id %q", d.ID)
			}
			seen[d.ID] = true
			validateRule(dp+".riskRules", d.Rules, add)
		}
	}
	return out
}

func validateRule(path string, r advisory.DiseaseRule, add func(path, format string, args ...any)) {
	if r.TempMin != nil && r.TempMax != nil && *r.TempMin > *r.TempMax {
		add(path, "tempMin %v above tempMax %v", *r.TempMin, *r.TempMax)
	}
	if r.HumidityMin != nil && r.HumidityMax != nil && *r.HumidityMin > *r.HumidityMax {
		add(path, "humidityMin %v above humidityMax %v", *r.HumidityMin, *r.HumidityMax)
	}
	for name, v := range map[string]*float64{
		"humidityMin": r.HumidityMin,
		"humidityMax": r.HumidityMax,
		"rainProbMin": r.RainProbMin,
	} {
		if v != nil && (*v < 0 || *v > 100) {
			add(path+"."+name, "must be a percentage, got %v", *v)
		}
	}
}

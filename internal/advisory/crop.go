package advisory

import (
	"strings"

	"agrimoga/internal/i18n"
)

// CropKey identifies one of the supported crops.
type CropKey string

const (
	Strawberry CropKey = "strawberry"
	Raspberry  CropKey = "raspberry"
	Avocado    CropKey = "avocado"
)

// legacyCropKeys maps the French keys older saved forms still carry.
var legacyCropKeys = map[string]CropKey{
	"fraise":    Strawberry,
	"framboise": Raspberry,
	"avocat":    Avocado,
}

// NormalizeCropKey lowercases s and resolves legacy aliases. Unknown keys map
// to Strawberry.
func NormalizeCropKey(s string) CropKey {
	s = strings.ToLower(strings.TrimSpace(s))
	switch k := CropKey(s); k {
	case Strawberry, Raspberry, Avocado:
		return k
	}
	if k, ok := legacyCropKeys[s]; ok {
		return k
	}
	return Strawberry
}

// NPK is a nutrient amount (kg/ha by convention).
type NPK struct {
	N float64 `json:"n" yaml:"n"`
	P float64 `json:"p" yaml:"p"`
	K float64 `json:"k" yaml:"k"`
}

// PriceBand is the market price range for a crop, MAD/kg.
type PriceBand struct {
	Min float64 `json:"min" yaml:"min"`
	Avg float64 `json:"avg" yaml:"avg"`
	Max float64 `json:"max" yaml:"max"`
}

// Zone is a named drip-network preset for per-plant dosing.
type Zone struct {
	Name             string  `json:"name" yaml:"name"`
	Plants           int     `json:"plants" yaml:"plants"`
	DrippersPerPlant float64 `json:"drippers_per_plant" yaml:"drippersPerPlant"`
	DripperFlowLph   float64 `json:"dripper_flow_lph" yaml:"dripperFlowLph"`
}

// Hint is a general cultivation tip shown next to the disease cards.
type Hint struct {
	Title i18n.Text `json:"title" yaml:"title"`
	Hint  i18n.Text `json:"hint" yaml:"hint"`
}

// CropProfile is the immutable per-crop configuration.
type CropProfile struct {
	Key                 CropKey   `json:"key" yaml:"key"`
	Label               i18n.Text `json:"label" yaml:"label"`
	BaseDemandLPerM2    float64   `json:"base_demand_l_per_m2" yaml:"baseDemandLPerM2"`       // L/m²/day
	BaseDemandLPerPlant float64   `json:"base_demand_l_per_plant" yaml:"baseDemandLPerPlant"` // L/plant/day
	Fertilization       NPK       `json:"fertilization" yaml:"fertilization"`                 // seasonal target
	Prices              PriceBand `json:"prices" yaml:"prices"`
	KgPerBox            float64   `json:"kg_per_box" yaml:"kgPerBox"`
	Tip                 i18n.Text `json:"tip" yaml:"tip"`
	Zones               []Zone    `json:"zones" yaml:"zones"`
	Diseases            []Disease `json:"diseases" yaml:"diseases"`
	Hints               []Hint    `json:"hints,omitempty" yaml:"hints"`
}

// Zone returns the named preset, if any.
func (p CropProfile) Zone(name string) (Zone, bool) {
	for _, z := range p.Zones {
		if z.Name == name {
			return z, true
		}
	}
	return Zone{}, false
}

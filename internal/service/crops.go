package service

import (
	"agrimoga/internal/advisory"
	"agrimoga/internal/catalog"
	"agrimoga/internal/i18n"
)

// CropView is a crop profile with its text resolved for one locale.
type CropView struct {
	Key                 advisory.CropKey   `json:"key"`
	Label               string             `json:"label"`
	BaseDemandLPerM2    float64            `json:"base_demand_l_per_m2"`
	BaseDemandLPerPlant float64            `json:"base_demand_l_per_plant"`
	Fertilization       advisory.NPK       `json:"fertilization"`
	Prices              advisory.PriceBand `json:"prices"`
	KgPerBox            float64            `json:"kg_per_box"`
	Tip                 string             `json:"tip"`
	Zones               []advisory.Zone    `json:"zones"`
	Diseases            []DiseaseView      `json:"diseases"`
	Dir                 string             `json:"dir"`
}

type CropsService struct {
	catalog *catalog.Catalog
}

func NewCropsService(c *catalog.Catalog) *CropsService {
	return &CropsService{catalog: c}
}

// Crops lists the catalogue in document order.
func (s *CropsService) Crops(l i18n.Locale) []CropView {
	profiles := s.catalog.List()
	out := make([]CropView, 0, len(profiles))
	for _, p := range profiles {
		v := CropView{
			Key:                 p.Key,
			Label:               p.Label.Resolve(l),
			BaseDemandLPerM2:    p.BaseDemandLPerM2,
			BaseDemandLPerPlant: p.BaseDemandLPerPlant,
			Fertilization:       p.Fertilization,
			Prices:              p.Prices,
			KgPerBox:            p.KgPerBox,
			Tip:                 p.Tip.Resolve(l),
			Zones:               p.Zones,
			Dir:                 l.Direction(),
		}
		for _, d := range p.Diseases {
			v.Diseases = append(v.Diseases, diseaseView(d, l))
		}
		out = append(out, v)
	}
	return out
}

func diseaseView(d advisory.Disease, l i18n.Locale) DiseaseView {
	return DiseaseView{
		ID:      d.ID,
		Name:    d.Name.Resolve(l),
		Causes:  d.Causes.Resolve(l),
		Actions: d.Actions.Resolve(l),
	}
}

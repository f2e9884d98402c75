package i18n

// Message keys used by the advisory and boundary layers.
const (
	KeyDecisionPostpone  = "irrigation.decision.postpone"
	KeyDecisionLight     = "irrigation.decision.light"
	KeyDecisionNormal    = "irrigation.decision.normal"
	KeyDecisionHeavy     = "irrigation.decision.heavy"
	KeyReasonPostpone    = "irrigation.reason.postpone"
	KeyReasonLight       = "irrigation.reason.light"
	KeyReasonNoGeometry  = "irrigation.reason.no_geometry"
	KeyReasonNormal      = "irrigation.reason.normal"
	KeyReasonHeavy       = "irrigation.reason.heavy"
	KeyTierLow           = "risk.low"
	KeyTierMedium        = "risk.medium"
	KeyTierHigh          = "risk.high"
	KeyWarnNoAPIKey      = "weather.warn.no_api_key"
	KeyWarnNetwork       = "weather.warn.network"
	KeyWarnStatus        = "weather.warn.status"
	KeyWarnEmpty         = "weather.warn.empty"
	KeyWarnDecode        = "weather.warn.decode"
	KeyWarnPlaceNotFound = "weather.warn.place_not_found"
	KeyShareIrrigation   = "share.irrigation.title"
	KeyShareCrop         = "share.crop"
	KeyShareZone         = "share.zone"
	KeySharePlace        = "share.place"
	KeySharePlaceUnknown = "share.place.unknown"
	KeyShareWeather      = "share.weather"
	KeyShareQuantity     = "share.quantity"
	KeyShareDuration     = "share.duration"
	KeySharePrices       = "share.prices.title"
	KeySharePricePerKg   = "share.price_per_kg"
	KeyShareSellable     = "share.sellable"
	KeyShareNet          = "share.net"
	KeyShareBreakEven    = "share.breakeven"
	KeyScenarioMin       = "sc.min"
	KeyScenarioAvg       = "sc.avg"
	KeyScenarioMax       = "sc.max"
	KeyUnitLiters        = "units.l"
	KeyUnitMinutes       = "units.min"
	KeyUnitKmh           = "units.kmh"
)

var dict = map[Locale]map[string]string{
	Arabic: {
		KeyDecisionPostpone:  "ماتسقيش اليوم",
		KeyDecisionLight:     "سقي خفيف",
		KeyDecisionNormal:    "سقي عادي",
		KeyDecisionHeavy:     "سقي قوي",
		KeyReasonPostpone:    "غداً متوقع الشتا، أجّل إلا ما كاينش عطش واضح.",
		KeyReasonLight:       "الرطوبة/الجو كافي نسبياً اليوم.",
		KeyReasonNoGeometry:  "ما كايناش مساحة ولا نباتات للسقي.",
		KeyReasonNormal:      "ظروف متوسطة.",
		KeyReasonHeavy:       "طلب مرتفع على الماء اليوم، قسّم السقي على دفعات.",
		KeyTierLow:           "منخفض",
		KeyTierMedium:        "متوسط",
		KeyTierHigh:          "مرتفع",
		KeyWarnNoAPIKey:      "مفتاح الطقس غير مضاف",
		KeyWarnNetwork:       "تعذّر الاتصال بخدمة الطقس",
		KeyWarnStatus:        "تعذّر جلب الطقس",
		KeyWarnEmpty:         "ما وصلات حتى معطيات ديال الطقس",
		KeyWarnDecode:        "معطيات الطقس غير مفهومة",
		KeyWarnPlaceNotFound: "ما لقيناش هاد المكان",
		KeyShareIrrigation:   "💧 توصية السقي (Agrimoga)",
		KeyShareCrop:         "المحصول",
		KeyShareZone:         "الزون",
		KeySharePlace:        "المكان",
		KeySharePlaceUnknown: "غير محدد",
		KeyShareWeather:      "الطقس",
		KeyShareQuantity:     "الكمية",
		KeyShareDuration:     "المدة",
		KeySharePrices:       "الأثمنة - AGRIMOGA",
		KeySharePricePerKg:   "الثمن للكيلو",
		KeyShareSellable:     "الكمية القابلة للبيع",
		KeyShareNet:          "الربح الصافي",
		KeyShareBreakEven:    "ثمن التعادل",
		KeyScenarioMin:       "سوق ضعيف",
		KeyScenarioAvg:       "سوق متوسط",
		KeyScenarioMax:       "سوق مرتفع",
		KeyUnitLiters:        "لتر",
		KeyUnitMinutes:       "د",
		KeyUnitKmh:           "كم/س",
	},
	French: {
		KeyDecisionPostpone:  "Pas d'irrigation aujourd'hui",
		KeyDecisionLight:     "Irrigation légère",
		KeyDecisionNormal:    "Irrigation normale",
		KeyDecisionHeavy:     "Irrigation forte",
		KeyReasonPostpone:    "Pluie prévue demain : reporter sauf stress hydrique visible.",
		KeyReasonLight:       "Humidité/météo relativement suffisante aujourd'hui.",
		KeyReasonNoGeometry:  "Aucune surface ni plante à irriguer.",
		KeyReasonNormal:      "Conditions moyennes.",
		KeyReasonHeavy:       "Forte demande en eau aujourd'hui, fractionner l'irrigation.",
		KeyTierLow:           "faible",
		KeyTierMedium:        "moyen",
		KeyTierHigh:          "élevé",
		KeyWarnNoAPIKey:      "Clé météo non configurée",
		KeyWarnNetwork:       "Service météo injoignable",
		KeyWarnStatus:        "Impossible de récupérer la météo",
		KeyWarnEmpty:         "Aucune donnée météo reçue",
		KeyWarnDecode:        "Données météo illisibles",
		KeyWarnPlaceNotFound: "Lieu introuvable",
		KeyShareIrrigation:   "💧 Conseil d'irrigation (Agrimoga)",
		KeyShareCrop:         "Culture",
		KeyShareZone:         "Zone",
		KeySharePlace:        "Lieu",
		KeySharePlaceUnknown: "non précisé",
		KeyShareWeather:      "Météo",
		KeyShareQuantity:     "Quantité",
		KeyShareDuration:     "Durée",
		KeySharePrices:       "PRIX - AGRIMOGA",
		KeySharePricePerKg:   "Prix au kg",
		KeyShareSellable:     "Quantité vendable",
		KeyShareNet:          "Bénéfice net",
		KeyShareBreakEven:    "Prix d'équilibre",
		KeyScenarioMin:       "Marché bas",
		KeyScenarioAvg:       "Marché moyen",
		KeyScenarioMax:       "Marché haut",
		KeyUnitLiters:        "L",
		KeyUnitMinutes:       "min",
		KeyUnitKmh:           "km/h",
	},
	English: {
		KeyDecisionPostpone:  "Skip watering today",
		KeyDecisionLight:     "Light watering",
		KeyDecisionNormal:    "Normal watering",
		KeyDecisionHeavy:     "Heavy watering",
		KeyReasonPostpone:    "Rain expected tomorrow; postpone unless plants show clear stress.",
		KeyReasonLight:       "Humidity/weather is fairly sufficient today.",
		KeyReasonNoGeometry:  "No area or plants to water.",
		KeyReasonNormal:      "Average conditions.",
		KeyReasonHeavy:       "High water demand today, split the watering into several runs.",
		KeyTierLow:           "low",
		KeyTierMedium:        "medium",
		KeyTierHigh:          "high",
		KeyWarnNoAPIKey:      "Weather API key not configured",
		KeyWarnNetwork:       "Weather service unreachable",
		KeyWarnStatus:        "Could not fetch the weather",
		KeyWarnEmpty:         "No weather data received",
		KeyWarnDecode:        "Unreadable weather data",
		KeyWarnPlaceNotFound: "Place not found",
		KeyShareIrrigation:   "💧 Irrigation advice (Agrimoga)",
		KeyShareCrop:         "Crop",
		KeyShareZone:         "Zone",
		KeySharePlace:        "Place",
		KeySharePlaceUnknown: "not set",
		KeyShareWeather:      "Weather",
		KeyShareQuantity:     "Quantity",
		KeyShareDuration:     "Duration",
		KeySharePrices:       "PRICES - AGRIMOGA",
		KeySharePricePerKg:   "Price per kg",
		KeyShareSellable:     "Sellable",
		KeyShareNet:          "Net",
		KeyShareBreakEven:    "Break-even",
		KeyScenarioMin:       "Low market",
		KeyScenarioAvg:       "Average market",
		KeyScenarioMax:       "High market",
		KeyUnitLiters:        "L",
		KeyUnitMinutes:       "min",
		KeyUnitKmh:           "km/h",
	},
}

// T looks key up in the locale's dictionary, then in Arabic, then returns the key.
func (l Locale) T(key string) string {
	if s, ok := dict[l][key]; ok {
		return s
	}
	if s, ok := dict[DefaultLocale][key]; ok {
		return s
	}
	return key
}

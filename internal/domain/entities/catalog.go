package entities

// Language identifies one of the two supported display languages
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageBangla  Language = "bn"
)

// ParseLanguage returns the matching Language, falling back to English.
func ParseLanguage(s string) Language {
	if Language(s) == LanguageBangla {
		return LanguageBangla
	}
	return LanguageEnglish
}

// LocalizedText is a display string in both supported languages
type LocalizedText struct {
	EN string `json:"en"`
	BN string `json:"bn"`
}

// In returns the text for lang. An empty Bangla entry falls back to English.
func (t LocalizedText) In(lang Language) string {
	if lang == LanguageBangla && t.BN != "" {
		return t.BN
	}
	return t.EN
}

// ServiceLineItem is a priced sub-service a customer can select.
// Price is in the smallest currency unit (taka).
type ServiceLineItem struct {
	ID    string        `json:"id"`
	Name  LocalizedText `json:"name"`
	Price int64         `json:"price"`
}

// ServiceCategory groups line items under a browsable heading
type ServiceCategory struct {
	ID       string            `json:"id"`
	Name     LocalizedText     `json:"name"`
	Icon     string            `json:"icon"`
	HasPromo bool              `json:"has_promo,omitempty"`
	Details  []ServiceLineItem `json:"details,omitempty"`
}

// LineItem returns the line item with the given id.
func (c *ServiceCategory) LineItem(id string) (ServiceLineItem, bool) {
	for _, item := range c.Details {
		if item.ID == id {
			return item, true
		}
	}
	return ServiceLineItem{}, false
}

// NurseRecord describes a nurse as listed to customers
type NurseRecord struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	DistanceKm float64  `json:"distance_km"`
	Rating     float64  `json:"rating"`
	HourlyRate int64    `json:"hourly_rate"`
	Available  bool     `json:"available"`
	ImageURL   string   `json:"image_url"`
	Languages  []string `json:"languages"`
}

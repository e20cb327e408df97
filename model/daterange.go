package model

type Preset string

const (
	PresetLast30Days  Preset = "last-30-days"
	PresetThisMonth   Preset = "this-month"
	PresetLastMonth   Preset = "last-month"
	PresetThisQuarter Preset = "this-quarter"
	PresetLastQuarter Preset = "last-quarter"
	PresetLast3Months Preset = "last-3-months"
	PresetLast6Months Preset = "last-6-months"
	PresetThisYear    Preset = "this-year"
	PresetLastYear    Preset = "last-year"
	PresetCustom      Preset = "custom"
)

// AllPresets lists every named preset in the order the date filter shows them.
func AllPresets() []Preset {
	return []Preset{
		PresetLast30Days,
		PresetThisMonth,
		PresetLastMonth,
		PresetThisQuarter,
		PresetLastQuarter,
		PresetLast3Months,
		PresetLast6Months,
		PresetThisYear,
		PresetLastYear,
		PresetCustom,
	}
}

func (p Preset) Valid() bool {
	for _, known := range AllPresets() {
		if p == known {
			return true
		}
	}
	return false
}

// DateRange is a concrete reporting window. Dates are local-calendar
// YYYY-MM-DD strings with StartDate <= EndDate.
type DateRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

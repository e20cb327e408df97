package dto

import (
	"time"

	"main/model"
	"main/usecase"
)

// PresetResponse is one entry of the date filter dropdown, resolved against
// the reference date so the dashboard can render ranges without re-deriving
// them client-side.
type PresetResponse struct {
	Preset model.Preset     `json:"preset"`
	Label  string           `json:"label"`
	Range  *model.DateRange `json:"range,omitempty"`
}

var presetLabels = map[model.Preset]string{
	model.PresetLast30Days:  "Last 30 days",
	model.PresetThisMonth:   "This month",
	model.PresetLastMonth:   "Last month",
	model.PresetThisQuarter: "This quarter",
	model.PresetLastQuarter: "Last quarter",
	model.PresetLast3Months: "Last 3 months",
	model.PresetLast6Months: "Last 6 months",
	model.PresetThisYear:    "This year",
	model.PresetLastYear:    "Last year",
	model.PresetCustom:      "Custom range",
}

func PresetLabel(preset model.Preset) string {
	if label, ok := presetLabels[preset]; ok {
		return label
	}
	return string(preset)
}

func ToPresetResponses(today time.Time) []PresetResponse {
	responses := make([]PresetResponse, 0, len(model.AllPresets()))
	for _, preset := range model.AllPresets() {
		entry := PresetResponse{Preset: preset, Label: PresetLabel(preset)}
		if preset != model.PresetCustom {
			rng := usecase.ResolvePreset(preset, today)
			entry.Range = &rng
		}
		responses = append(responses, entry)
	}
	return responses
}

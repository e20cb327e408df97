package model

type FrequencyType string
type BiweeklyWeek string
type CalculationType string

const (
	FrequencyWeekly   FrequencyType = "weekly"
	FrequencyBiweekly FrequencyType = "biweekly"
	FrequencyMonthly  FrequencyType = "monthly"

	// Biweekly rules fire on alternating weeks; A and B denote week parity.
	BiweeklyWeekA BiweeklyWeek = "A"
	BiweeklyWeekB BiweeklyWeek = "B"

	CalculationCheckout CalculationType = "checkout"
	CalculationCalendar CalculationType = "calendar"
)

// ScheduleRule is the normalized recurrence rule the dashboard sends to the
// core "save schedule" endpoint. Field names follow the core API contract.
// Exactly one of DayOfWeek/DayOfMonth is populated, determined by
// FrequencyType; BiweeklyWeek is present only for biweekly rules.
type ScheduleRule struct {
	TagName         string          `json:"tagName" binding:"required"`
	IsEnabled       bool            `json:"isEnabled"`
	FrequencyType   FrequencyType   `json:"frequencyType"`
	DayOfWeek       *int            `json:"dayOfWeek,omitempty"`  // 0-6, 0 = Sunday
	DayOfMonth      *int            `json:"dayOfMonth,omitempty"` // 1-28
	TimeOfDay       string          `json:"timeOfDay"`            // "HH:MM" 24-hour local
	BiweeklyWeek    BiweeklyWeek    `json:"biweeklyWeek,omitempty"`
	CalculationType CalculationType `json:"calculationType"`
}

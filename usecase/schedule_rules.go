package usecase

import (
	"fmt"
	"main/model"
	"time"
)

// ScheduleRuleForm is the raw state of the schedule modal as submitted by the
// dashboard. Day fields are plain ints here; BuildRule decides which of them
// survive into the normalized rule.
type ScheduleRuleForm struct {
	TagName         string                `json:"tagName"`
	IsEnabled       bool                  `json:"isEnabled"`
	FrequencyType   model.FrequencyType   `json:"frequencyType" binding:"required,oneof=weekly biweekly monthly"`
	DayOfWeek       int                   `json:"dayOfWeek" binding:"min=0,max=6"`
	DayOfMonth      int                   `json:"dayOfMonth" binding:"min=0,max=28"`
	TimeOfDay       string                `json:"timeOfDay" binding:"required,timeofday"`
	BiweeklyWeek    model.BiweeklyWeek    `json:"biweeklyWeek" binding:"omitempty,oneof=A B"`
	CalculationType model.CalculationType `json:"calculationType" binding:"required,oneof=checkout calendar"`
}

// BuildRule normalizes form state into a ScheduleRule. It enforces the
// frequency-dependent field invariant: DayOfMonth only for monthly rules,
// DayOfWeek otherwise, BiweeklyWeek only for biweekly rules. Values outside
// the documented ranges are the caller's problem; the HTTP boundary rejects
// them before this runs.
func BuildRule(form ScheduleRuleForm) model.ScheduleRule {
	rule := model.ScheduleRule{
		TagName:         form.TagName,
		IsEnabled:       form.IsEnabled,
		FrequencyType:   form.FrequencyType,
		TimeOfDay:       form.TimeOfDay,
		CalculationType: form.CalculationType,
	}

	switch form.FrequencyType {
	case model.FrequencyMonthly:
		dom := form.DayOfMonth
		rule.DayOfMonth = &dom
	case model.FrequencyBiweekly:
		dow := form.DayOfWeek
		rule.DayOfWeek = &dow
		rule.BiweeklyWeek = form.BiweeklyWeek
	default:
		dow := form.DayOfWeek
		rule.DayOfWeek = &dow
	}

	return rule
}

// Summarize renders a rule the way the schedule modal displays it:
// weekly    -> "Every Tuesday at 9:00 AM"
// biweekly  -> "Every other Tuesday at 9:00 AM"
// monthly   -> "15th of each month at 9:00 AM"
func Summarize(rule model.ScheduleRule) string {
	clock := formatTime12h(rule.TimeOfDay)

	switch rule.FrequencyType {
	case model.FrequencyMonthly:
		day := 1
		if rule.DayOfMonth != nil {
			day = *rule.DayOfMonth
		}
		return fmt.Sprintf("%s of each month at %s", Ordinal(day), clock)
	case model.FrequencyBiweekly:
		return fmt.Sprintf("Every other %s at %s", weekdayName(rule.DayOfWeek), clock)
	default:
		return fmt.Sprintf("Every %s at %s", weekdayName(rule.DayOfWeek), clock)
	}
}

// Ordinal returns n with its English ordinal suffix: 1st, 2nd, 3rd, 4th...
// The 11-13 band always takes "th" regardless of last digit.
func Ordinal(n int) string {
	if rem := n % 100; rem >= 11 && rem <= 13 {
		return fmt.Sprintf("%dth", n)
	}
	switch n % 10 {
	case 1:
		return fmt.Sprintf("%dst", n)
	case 2:
		return fmt.Sprintf("%dnd", n)
	case 3:
		return fmt.Sprintf("%drd", n)
	default:
		return fmt.Sprintf("%dth", n)
	}
}

func weekdayName(day *int) string {
	if day == nil {
		return time.Sunday.String()
	}
	return time.Weekday(*day).String()
}

// formatTime12h converts "HH:MM" 24-hour input to 12-hour AM/PM display,
// e.g. "17:05" -> "5:05 PM", "00:30" -> "12:30 AM". Malformed input is a
// contract violation and passes through unchanged.
func formatTime12h(hhmm string) string {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return hhmm
	}
	return t.Format("3:04 PM")
}

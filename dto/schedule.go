package dto

import (
	"main/model"
	"main/usecase"
)

// ScheduleRuleResponse pairs a normalized rule with the human-readable
// description the modal shows ("Every Tuesday at 9:00 AM").
type ScheduleRuleResponse struct {
	model.ScheduleRule
	Summary string `json:"summary"`
}

func ToScheduleRuleResponse(rule model.ScheduleRule) ScheduleRuleResponse {
	return ScheduleRuleResponse{
		ScheduleRule: rule,
		Summary:      usecase.Summarize(rule),
	}
}

func ToScheduleRuleResponses(rules []model.ScheduleRule) []ScheduleRuleResponse {
	responses := make([]ScheduleRuleResponse, 0, len(rules))
	for _, rule := range rules {
		responses = append(responses, ToScheduleRuleResponse(rule))
	}
	return responses
}

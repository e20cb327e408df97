package usecase

import (
	"context"
	"errors"
	"strings"

	"main/middleware"
	"main/model"
	"main/services"
	"main/utils"
)

type SchedulesService struct {
	Core  *services.CoreClient
	Cache *services.ReportCache
}

// validateForm re-checks the modal's form state at the service boundary.
// Binding tags catch most of this already; repeating it here keeps the
// invariants intact for non-HTTP callers.
func (s *SchedulesService) validateForm(form *ScheduleRuleForm) error {
	form.TagName = strings.TrimSpace(form.TagName)
	if form.TagName == "" {
		return errors.New("tag name is required")
	}
	if len(form.TagName) > 100 {
		return errors.New("tag name exceeds maximum length")
	}

	switch form.FrequencyType {
	case model.FrequencyWeekly:
		if form.DayOfWeek < 0 || form.DayOfWeek > 6 {
			return errors.New("day of week must be between 0 and 6")
		}
	case model.FrequencyBiweekly:
		if form.DayOfWeek < 0 || form.DayOfWeek > 6 {
			return errors.New("day of week must be between 0 and 6")
		}
		if form.BiweeklyWeek != model.BiweeklyWeekA && form.BiweeklyWeek != model.BiweeklyWeekB {
			return errors.New("biweekly rules require week A or B")
		}
	case model.FrequencyMonthly:
		// Capped at 28 so the rule is valid in every month
		if form.DayOfMonth < 1 || form.DayOfMonth > 28 {
			return errors.New("day of month must be between 1 and 28")
		}
	default:
		return errors.New("frequency must be weekly, biweekly or monthly")
	}

	if !utils.ValidTimeOfDay(form.TimeOfDay) {
		return errors.New("time of day must be in HH:MM 24-hour format")
	}

	if form.CalculationType != model.CalculationCheckout && form.CalculationType != model.CalculationCalendar {
		return errors.New("calculation type must be checkout or calendar")
	}

	return nil
}

// Preview builds and summarizes a rule without saving it. The modal calls
// this on every form change to refresh its description line.
func (s *SchedulesService) Preview(form ScheduleRuleForm) (model.ScheduleRule, string, error) {
	if err := s.validateForm(&form); err != nil {
		return model.ScheduleRule{}, "", err
	}

	middleware.TrackScheduleOperation("preview")
	rule := BuildRule(form)
	return rule, Summarize(rule), nil
}

// Save builds the normalized rule and hands it to the core's save-schedule
// endpoint. The core owns persistence and next-fire evaluation.
func (s *SchedulesService) Save(ctx context.Context, token, userID string, form ScheduleRuleForm) (model.ScheduleRule, error) {
	if err := s.validateForm(&form); err != nil {
		return model.ScheduleRule{}, err
	}

	rule := BuildRule(form)
	if err := s.Core.SaveScheduleRule(ctx, token, rule); err != nil {
		middleware.TrackError("core_api")
		return model.ScheduleRule{}, err
	}

	middleware.TrackScheduleOperation("save")

	if s.Cache != nil {
		if err := s.Cache.InvalidateResource(userID, "schedules"); err != nil {
			// Stale for one TTL at worst
			middleware.TrackError("cache")
		}
	}

	return rule, nil
}

// List fetches every saved rule, read-through cached per user.
func (s *SchedulesService) List(ctx context.Context, token, userID string) ([]model.ScheduleRule, error) {
	middleware.TrackScheduleOperation("list")

	var rules []model.ScheduleRule
	var cacheKey string
	if s.Cache != nil {
		cacheKey = s.Cache.Key(userID, "schedules")
		if hit, err := s.Cache.Get(cacheKey, &rules); err == nil && hit {
			return rules, nil
		}
	}

	rules, err := s.Core.ListScheduleRules(ctx, token)
	if err != nil {
		middleware.TrackError("core_api")
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.Set(cacheKey, rules); err != nil {
			middleware.TrackError("cache")
		}
	}
	return rules, nil
}

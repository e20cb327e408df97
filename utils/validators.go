package utils

import (
	"time"

	"main/model"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = validator.New()
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("timeofday", ValidateTimeOfDayRule)
		v.RegisterValidation("datepreset", ValidatePresetRule)
		v.RegisterValidation("calendardate", ValidateCalendarDateRule)
	}
}

func ValidateTimeOfDayRule(fl validator.FieldLevel) bool {
	return ValidTimeOfDay(fl.Field().String())
}

func ValidatePresetRule(fl validator.FieldLevel) bool {
	return model.Preset(fl.Field().String()).Valid()
}

func ValidateCalendarDateRule(fl validator.FieldLevel) bool {
	return ValidCalendarDate(fl.Field().String())
}

// ValidTimeOfDay checks the "HH:MM" 24-hour local time format schedule rules
// carry. time.Parse accepts "9:05" for "15:04", so the length check keeps the
// zero-padded form the core API expects.
func ValidTimeOfDay(value string) bool {
	if len(value) != 5 {
		return false
	}
	_, err := time.Parse("15:04", value)
	return err == nil
}

// ValidCalendarDate checks the YYYY-MM-DD form used by date ranges.
func ValidCalendarDate(value string) bool {
	if len(value) != 10 {
		return false
	}
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}

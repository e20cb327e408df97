package usecase

import (
	"main/model"
	"time"
)

const dateLayout = "2006-01-02"

// ResolvePreset maps a named preset to a concrete date range relative to the
// given reference date, using local-calendar arithmetic (never UTC-shifted,
// so midnight-adjacent calls don't slip a day). Custom ranges are supplied
// by the caller and resolve to the reference date itself here; feeding an
// unknown preset is a caller contract violation and gets the same treatment.
func ResolvePreset(preset model.Preset, today time.Time) model.DateRange {
	year, month, _ := today.Date()
	loc := today.Location()

	switch preset {
	case model.PresetLast30Days:
		return rangeOf(today.AddDate(0, 0, -30), today)
	case model.PresetThisMonth:
		return monthsRange(year, month, month, loc)
	case model.PresetLastMonth:
		return monthsRange(year, month-1, month-1, loc)
	case model.PresetThisQuarter:
		start := quarterStart(month)
		return monthsRange(year, start, start+2, loc)
	case model.PresetLastQuarter:
		// Q1 wraps to Q4 of the previous year; time.Date normalizes the
		// negative month for us.
		start := quarterStart(month)
		return monthsRange(year, start-3, start-1, loc)
	case model.PresetLast3Months:
		// Includes the current partial month, per product behavior.
		return monthsRange(year, month-2, month, loc)
	case model.PresetLast6Months:
		return monthsRange(year, month-5, month, loc)
	case model.PresetThisYear:
		return monthsRange(year, time.January, time.December, loc)
	case model.PresetLastYear:
		return monthsRange(year-1, time.January, time.December, loc)
	default: // custom
		return rangeOf(today, today)
	}
}

// quarterStart returns the first month of the calendar quarter containing m.
func quarterStart(m time.Month) time.Month {
	return time.Month((int(m)-1)/3*3 + 1)
}

// monthsRange spans the first day of month `from` through the last day of
// month `to`. Out-of-range months (0, -2, 14...) normalize across year
// boundaries, which is what makes the January and Q1 wrap cases fall out.
func monthsRange(year int, from, to time.Month, loc *time.Location) model.DateRange {
	start := time.Date(year, from, 1, 0, 0, 0, 0, loc)
	end := time.Date(year, to+1, 0, 0, 0, 0, 0, loc)
	return rangeOf(start, end)
}

func rangeOf(start, end time.Time) model.DateRange {
	return model.DateRange{
		StartDate: start.Format(dateLayout),
		EndDate:   end.Format(dateLayout),
	}
}

package usecase

import (
	"main/model"
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 10, 30, 0, 0, time.Local)
}

func TestResolvePreset(t *testing.T) {
	tests := []struct {
		name      string
		preset    model.Preset
		today     time.Time
		wantStart string
		wantEnd   string
	}{
		{
			name:      "last 30 days",
			preset:    model.PresetLast30Days,
			today:     date(2024, time.March, 15),
			wantStart: "2024-02-14",
			wantEnd:   "2024-03-15",
		},
		{
			name:      "this month",
			preset:    model.PresetThisMonth,
			today:     date(2024, time.March, 15),
			wantStart: "2024-03-01",
			wantEnd:   "2024-03-31",
		},
		{
			name:      "last month in a leap year",
			preset:    model.PresetLastMonth,
			today:     date(2024, time.March, 15),
			wantStart: "2024-02-01",
			wantEnd:   "2024-02-29",
		},
		{
			name:      "last month wraps into previous year",
			preset:    model.PresetLastMonth,
			today:     date(2024, time.January, 10),
			wantStart: "2023-12-01",
			wantEnd:   "2023-12-31",
		},
		{
			name:      "this quarter",
			preset:    model.PresetThisQuarter,
			today:     date(2024, time.May, 20),
			wantStart: "2024-04-01",
			wantEnd:   "2024-06-30",
		},
		{
			name:      "last quarter",
			preset:    model.PresetLastQuarter,
			today:     date(2024, time.May, 20),
			wantStart: "2024-01-01",
			wantEnd:   "2024-03-31",
		},
		{
			name:      "last quarter from Q1 lands in prior-year Q4",
			preset:    model.PresetLastQuarter,
			today:     date(2024, time.February, 5),
			wantStart: "2023-10-01",
			wantEnd:   "2023-12-31",
		},
		{
			name:      "last 3 months includes current partial month",
			preset:    model.PresetLast3Months,
			today:     date(2024, time.March, 15),
			wantStart: "2024-01-01",
			wantEnd:   "2024-03-31",
		},
		{
			name:      "last 6 months wraps into previous year",
			preset:    model.PresetLast6Months,
			today:     date(2024, time.March, 15),
			wantStart: "2023-10-01",
			wantEnd:   "2024-03-31",
		},
		{
			name:      "this year",
			preset:    model.PresetThisYear,
			today:     date(2024, time.July, 4),
			wantStart: "2024-01-01",
			wantEnd:   "2024-12-31",
		},
		{
			name:      "last year",
			preset:    model.PresetLastYear,
			today:     date(2024, time.July, 4),
			wantStart: "2023-01-01",
			wantEnd:   "2023-12-31",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolvePreset(tt.preset, tt.today)
			if got.StartDate != tt.wantStart || got.EndDate != tt.wantEnd {
				t.Errorf("ResolvePreset(%s, %s) = [%s, %s], want [%s, %s]",
					tt.preset, tt.today.Format("2006-01-02"),
					got.StartDate, got.EndDate, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestResolvePresetOrderingHolds(t *testing.T) {
	// Every preset, over reference dates spanning month/quarter/year edges
	references := []time.Time{
		date(2024, time.January, 1),
		date(2024, time.February, 29),
		date(2024, time.March, 31),
		date(2024, time.December, 31),
		date(2025, time.January, 1),
		date(2023, time.June, 15),
	}

	for _, preset := range model.AllPresets() {
		for _, today := range references {
			got := ResolvePreset(preset, today)
			if got.StartDate > got.EndDate {
				t.Errorf("ResolvePreset(%s, %s): startDate %s > endDate %s",
					preset, today.Format("2006-01-02"), got.StartDate, got.EndDate)
			}
		}
	}
}

func TestResolvePresetThisMonthContained(t *testing.T) {
	references := []time.Time{
		date(2024, time.January, 1),
		date(2024, time.February, 14),
		date(2024, time.December, 31),
	}

	for _, today := range references {
		got := ResolvePreset(model.PresetThisMonth, today)
		monthPrefix := today.Format("2006-01")
		if got.StartDate[:7] != monthPrefix || got.EndDate[:7] != monthPrefix {
			t.Errorf("ResolvePreset(this-month, %s) = [%s, %s], escaped the month",
				today.Format("2006-01-02"), got.StartDate, got.EndDate)
		}
	}
}

func TestQuarterStart(t *testing.T) {
	tests := []struct {
		month time.Month
		want  time.Month
	}{
		{time.January, time.January},
		{time.March, time.January},
		{time.April, time.April},
		{time.June, time.April},
		{time.July, time.July},
		{time.October, time.October},
		{time.December, time.October},
	}

	for _, tt := range tests {
		if got := quarterStart(tt.month); got != tt.want {
			t.Errorf("quarterStart(%s) = %s, want %s", tt.month, got, tt.want)
		}
	}
}

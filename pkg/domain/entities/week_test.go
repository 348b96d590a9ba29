package entities

import (
	"testing"
	"time"
)

func TestWeekOf_NormalizesToMonday(t *testing.T) {
	tests := []struct {
		name   string
		input  time.Time
		monday time.Time
	}{
		{
			name:   "monday stays put",
			input:  time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
			monday: time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "wednesday rolls back",
			input:  time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
			monday: time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "sunday belongs to the preceding monday",
			input:  time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
			monday: time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			name:   "time of day is stripped",
			input:  time.Date(2026, 3, 10, 17, 45, 3, 0, time.UTC),
			monday: time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			week := WeekOf(tt.input)
			if !week.Start.Equal(tt.monday) {
				t.Errorf("WeekOf(%v).Start = %v, want %v", tt.input, week.Start, tt.monday)
			}
		})
	}
}

func TestWeek_End(t *testing.T) {
	week := WeekOf(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC))
	want := time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)
	if !week.End().Equal(want) {
		t.Errorf("End() = %v, want %v", week.End(), want)
	}
}

func TestWeek_DayLabel(t *testing.T) {
	week := WeekOf(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		index int
		want  string
	}{
		{0, "03/09 (Mon)"},
		{1, "03/10 (Tue)"},
		{4, "03/13 (Fri)"},
	}

	for _, tt := range tests {
		if got := week.DayLabel(tt.index); got != tt.want {
			t.Errorf("DayLabel(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}

func TestWeek_SalesWindow(t *testing.T) {
	week := WeekOf(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC))
	from, to := week.SalesWindow()

	wantTo := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	wantFrom := time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC)

	if !to.Equal(wantTo) {
		t.Errorf("SalesWindow() to = %v, want %v", to, wantTo)
	}
	if !from.Equal(wantFrom) {
		t.Errorf("SalesWindow() from = %v, want %v", from, wantFrom)
	}
	if to.Before(week.Start.AddDate(0, 0, -1)) || to.After(week.Start.AddDate(0, 0, -1)) {
		t.Error("sales window must end the day before the week starts")
	}
}

func TestWeekdayIndex(t *testing.T) {
	tests := []struct {
		date time.Time
		want int
	}{
		{time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), 0},  // Monday
		{time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC), 4}, // Friday
		{time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), 5}, // Saturday
		{time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), 6}, // Sunday
	}

	for _, tt := range tests {
		if got := WeekdayIndex(tt.date); got != tt.want {
			t.Errorf("WeekdayIndex(%v) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestExtendedDayName(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{0, "Mon"},
		{4, "Fri"},
		{5, "next Mon"},
		{6, "next Tue"},
	}

	for _, tt := range tests {
		if got := ExtendedDayName(tt.index); got != tt.want {
			t.Errorf("ExtendedDayName(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}

func TestDemandProfile_Extended(t *testing.T) {
	profile := DemandProfile{10, 20, 30, 40, 50, 0, 0}
	extended := profile.Extended()

	want := [7]Quantity{10, 20, 30, 40, 50, 10, 20}
	if extended != want {
		t.Errorf("Extended() = %v, want %v", extended, want)
	}
}

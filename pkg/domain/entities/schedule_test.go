package entities

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestNewScheduleEntry(t *testing.T) {
	week := WeekOf(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC))

	entry, err := NewScheduleEntry(week, 2, NightShift, "F0000012", "Sourdough Loaf", 120, 3.0, "Wed shortfall", 60)
	if err != nil {
		t.Fatalf("NewScheduleEntry failed: %v", err)
	}

	if entry.DayLabel != "03/11 (Wed)" {
		t.Errorf("DayLabel = %q, want %q", entry.DayLabel, "03/11 (Wed)")
	}
	if !entry.WeekStart.Equal(week.Start) {
		t.Errorf("WeekStart = %v, want %v", entry.WeekStart, week.Start)
	}
	if !entry.WeekEnd.Equal(week.End()) {
		t.Errorf("WeekEnd = %v, want %v", entry.WeekEnd, week.End())
	}
	if entry.Shift != NightShift {
		t.Errorf("Shift = %v, want %v", entry.Shift, NightShift)
	}
}

func TestScheduleEntry_JSONShiftLabel(t *testing.T) {
	week := WeekOf(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC))
	entry, err := NewScheduleEntry(week, 0, NightShift, "F0000012", "Sourdough Loaf", 120, 3.0, "Mon shortfall", 60)
	if err != nil {
		t.Fatalf("NewScheduleEntry failed: %v", err)
	}

	data, err := json.Marshal(entry)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), `"shift":"night"`) {
		t.Errorf("payload should carry the shift label, got %s", data)
	}

	var decoded ScheduleEntry
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded.Shift != NightShift {
		t.Errorf("round-tripped shift = %v, want NightShift", decoded.Shift)
	}
}

func TestNewScheduleEntry_Validation(t *testing.T) {
	week := WeekOf(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		name     string
		dayIndex int
		code     ProductCode
		product  string
		quantity Quantity
	}{
		{"empty code", 0, "", "Bread", 10},
		{"empty name", 0, "F0000012", "", 10},
		{"zero quantity", 0, "F0000012", "Bread", 0},
		{"negative quantity", 0, "F0000012", "Bread", -5},
		{"day index too high", 5, "F0000012", "Bread", 10},
		{"negative day index", -1, "F0000012", "Bread", 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewScheduleEntry(week, tt.dayIndex, DayShift, tt.code, tt.product, tt.quantity, 1.0, "", 0)
			if err == nil {
				t.Error("expected validation error but got none")
			}
		})
	}
}

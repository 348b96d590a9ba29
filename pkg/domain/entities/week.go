package entities

import (
	"fmt"
	"time"
)

// ProductionDays is the number of production days in a week (Monday–Friday)
const ProductionDays = 5

var dayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// WeekdayIndex returns the weekday of t with Monday=0 … Sunday=6
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// DayName returns the short name for a weekday index (Monday=0 … Sunday=6)
func DayName(index int) string {
	return dayNames[index]
}

// ExtendedDayName returns the display name for a slot in the 7-slot planning
// sequence: Mon–Fri for 0–4, then "next Mon" and "next Tue"
func ExtendedDayName(index int) string {
	if index < ProductionDays {
		return dayNames[index]
	}
	return "next " + dayNames[index-ProductionDays]
}

// Week represents a Monday-anchored production week
type Week struct {
	Start time.Time
}

// WeekOf normalizes any calendar date to its week, anchored on that date's
// Monday at midnight UTC.
func WeekOf(t time.Time) Week {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return Week{Start: day.AddDate(0, 0, -WeekdayIndex(day))}
}

// End returns the last production day of the week (Friday)
func (w Week) End() time.Time {
	return w.Start.AddDate(0, 0, ProductionDays-1)
}

// Day returns the calendar date of production day index 0–4
func (w Week) Day(index int) time.Time {
	return w.Start.AddDate(0, 0, index)
}

// DayLabel returns the human-readable label for a production day,
// e.g. "01/02 (Mon)"
func (w Week) DayLabel(index int) string {
	return fmt.Sprintf("%s (%s)", w.Day(index).Format("01/02"), dayNames[index])
}

// SalesWindow returns the trailing sales window used for demand aggregation:
// 4 weeks of history ending the day before the week starts.
func (w Week) SalesWindow() (from, to time.Time) {
	to = w.Start.AddDate(0, 0, -1)
	from = to.AddDate(0, 0, -28)
	return from, to
}

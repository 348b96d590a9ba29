package entities

import (
	"fmt"
	"time"
)

// ScheduleEntry represents one persisted line of a weekly production schedule
type ScheduleEntry struct {
	WeekStart   time.Time   `json:"week_start"`
	WeekEnd     time.Time   `json:"week_end"`
	DayLabel    string      `json:"day_of_week"`
	Shift       Shift       `json:"shift"`
	ProductCode ProductCode `json:"product_code"`
	ProductName string      `json:"product"`
	Quantity    Quantity    `json:"quantity"`
	Hours       float64     `json:"production_time"`
	Reason      string      `json:"reason"`
	Urgency     int         `json:"urgency"`
}

// NewScheduleEntry creates a validated ScheduleEntry
func NewScheduleEntry(
	week Week,
	dayIndex int,
	shift Shift,
	code ProductCode,
	name string,
	quantity Quantity,
	hours float64,
	reason string,
	urgency int,
) (*ScheduleEntry, error) {
	if code == "" {
		return nil, fmt.Errorf("product code cannot be empty")
	}
	if name == "" {
		return nil, fmt.Errorf("product name cannot be empty")
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive, got %d", quantity)
	}
	if dayIndex < 0 || dayIndex >= ProductionDays {
		return nil, fmt.Errorf("day index out of range: %d", dayIndex)
	}

	return &ScheduleEntry{
		WeekStart:   week.Start,
		WeekEnd:     week.End(),
		DayLabel:    week.DayLabel(dayIndex),
		Shift:       shift,
		ProductCode: code,
		ProductName: name,
		Quantity:    quantity,
		Hours:       hours,
		Reason:      reason,
		Urgency:     urgency,
	}, nil
}

// WeekRange identifies one stored schedule week
type WeekRange struct {
	Start time.Time `json:"week_start"`
	End   time.Time `json:"week_end"`
}

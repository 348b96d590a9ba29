package dto

import (
	"time"

	"github.com/foodops/weekplan/pkg/domain/entities"
)

// UnplacedRemainder represents the part of a production event that could not
// be seated in any eligible slot by Friday. Surfaced, never silently dropped.
type UnplacedRemainder struct {
	Code      entities.ProductCode `json:"product_code"`
	Name      string               `json:"product"`
	TargetDay int                  `json:"target_day"`
	Quantity  entities.Quantity    `json:"quantity"`
	Reason    string               `json:"reason"`
}

// SlotUsage reports how much of a slot's capacity ceiling a run consumed.
// Capacity-exempt placements are excluded from Placed, matching the ceiling
// check itself.
type SlotUsage struct {
	Day      int               `json:"day"`
	Shift    entities.Shift    `json:"shift"`
	Placed   entities.Quantity `json:"placed"`
	Capacity entities.Quantity `json:"capacity"`
	Seconds  int64             `json:"seconds"`
}

// ScheduleResult contains the complete output of one scheduling run
type ScheduleResult struct {
	RunID     string                    `json:"run_id"`
	WeekStart time.Time                 `json:"week_start"`
	WeekEnd   time.Time                 `json:"week_end"`
	Entries   []*entities.ScheduleEntry `json:"entries"`
	Unmatched []string                  `json:"unmatched_products,omitempty"`
	Unplaced  []UnplacedRemainder       `json:"unplaced,omitempty"`
	Usage     []SlotUsage               `json:"slot_usage"`
	Elapsed   time.Duration             `json:"elapsed_ns"`
}

// TotalUnits returns the total scheduled quantity across all entries
func (r *ScheduleResult) TotalUnits() entities.Quantity {
	var total entities.Quantity
	for _, e := range r.Entries {
		total += e.Quantity
	}
	return total
}

// TotalHours returns the total derived production hours across all entries
func (r *ScheduleResult) TotalHours() float64 {
	var total float64
	for _, e := range r.Entries {
		total += e.Hours
	}
	return total
}

// UnplacedUnits returns the total quantity that could not be placed
func (r *ScheduleResult) UnplacedUnits() entities.Quantity {
	var total entities.Quantity
	for _, u := range r.Unplaced {
		total += u.Quantity
	}
	return total
}

package scheduling

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/foodops/weekplan/pkg/application/dto"
	"github.com/foodops/weekplan/pkg/domain/entities"
)

var shifts = [2]entities.Shift{entities.DayShift, entities.NightShift}

// AssembleSchedule projects the allocation state into persistable schedule
// entries, one per non-empty (day, shift, product) combination. Pure
// projection: quantity, derived hours, and joined justification text.
func AssembleSchedule(week entities.Week, state *AllocationState) ([]*entities.ScheduleEntry, error) {
	var entries []*entities.ScheduleEntry

	for day := 0; day < entities.ProductionDays; day++ {
		for _, shift := range shifts {
			for _, slot := range state.Entries(day, shift) {
				entry, err := entities.NewScheduleEntry(
					week,
					day,
					shift,
					slot.Code,
					slot.Name,
					slot.Quantity,
					ProductionHours(slot.Quantity, slot.UnitSeconds),
					strings.Join(slot.Reasons, ", "),
					slot.Urgency,
				)
				if err != nil {
					return nil, fmt.Errorf("assemble %s %s: %w", week.DayLabel(day), shift, err)
				}
				entries = append(entries, entry)
			}
		}
	}

	return entries, nil
}

// ProductionHours converts a quantity at per-unit seconds into production
// hours rounded to one decimal place
func ProductionHours(qty entities.Quantity, unitSeconds int) float64 {
	hours := decimal.NewFromInt(int64(qty) * int64(unitSeconds)).
		Div(decimal.NewFromInt(3600)).
		Round(1)
	f, _ := hours.Float64()
	return f
}

// SlotUsageReport summarizes per-slot consumption against the configured
// ceilings after allocation
func SlotUsageReport(cfg FacilityConfig, state *AllocationState) []dto.SlotUsage {
	usage := make([]dto.SlotUsage, 0, entities.ProductionDays*len(shifts))
	for day := 0; day < entities.ProductionDays; day++ {
		for _, shift := range shifts {
			usage = append(usage, dto.SlotUsage{
				Day:      day,
				Shift:    shift,
				Placed:   state.Placed(day, shift),
				Capacity: cfg.Capacity(day, shift),
				Seconds:  state.Seconds(day, shift),
			})
		}
	}
	return usage
}

package scheduling

import (
	"fmt"

	"github.com/foodops/weekplan/pkg/domain/entities"
)

// DefaultLookahead is how many days (including the current one) the shortfall
// simulation inspects ahead of each production day.
const DefaultLookahead = 3

// SlotKey identifies a (day, shift) production slot
type SlotKey struct {
	Day   int
	Shift entities.Shift
}

// FacilityConfig carries the static scheduling configuration for one facility.
// It is passed into the engine at construction time so multiple facilities can
// be scheduled with independent configurations.
type FacilityConfig struct {
	// DefaultCapacity is the baseline per-shift capacity ceiling in units
	DefaultCapacity entities.Quantity

	// CapacityOverrides replaces the baseline ceiling for specific slots,
	// e.g. reduced Monday day-shift staffing compensated on the night shift
	CapacityOverrides map[SlotKey]entities.Quantity

	// ExclusiveProducts may never co-occur in production on the same calendar
	// day, and on Monday may only run on the night shift
	ExclusiveProducts map[entities.ProductCode]bool

	// ExemptProducts do not count against a slot's capacity ceiling
	ExemptProducts map[entities.ProductCode]bool

	// SafetyStocks is the minimum inventory floor per product code (default 0)
	SafetyStocks map[entities.ProductCode]entities.Quantity

	// Lookahead overrides DefaultLookahead when > 0
	Lookahead int
}

// DefaultFacilityConfig returns the configuration for the primary facility:
// a uniform 200-unit ceiling per shift with reduced Monday day-shift staffing
// compensated on the Monday night shift.
func DefaultFacilityConfig() FacilityConfig {
	return FacilityConfig{
		DefaultCapacity: 200,
		CapacityOverrides: map[SlotKey]entities.Quantity{
			{Day: 0, Shift: entities.DayShift}:   100,
			{Day: 0, Shift: entities.NightShift}: 150,
		},
		ExclusiveProducts: map[entities.ProductCode]bool{
			"F0000047": true,
			"F0000048": true,
			"F0000050": true,
			"F0000078": true,
		},
		ExemptProducts: map[entities.ProductCode]bool{
			"E0000072": true,
			"E0000073": true,
		},
		SafetyStocks: map[entities.ProductCode]entities.Quantity{
			"F0000047": 300,
			"F0000048": 200,
			"F0000050": 200,
			"F0000078": 200,
		},
	}
}

// Capacity returns the ceiling for a (day, shift) slot
func (c FacilityConfig) Capacity(day int, shift entities.Shift) entities.Quantity {
	if override, ok := c.CapacityOverrides[SlotKey{Day: day, Shift: shift}]; ok {
		return override
	}
	return c.DefaultCapacity
}

// SafetyFloor returns the safety-stock floor for a product code (0 if unset)
func (c FacilityConfig) SafetyFloor(code entities.ProductCode) entities.Quantity {
	return c.SafetyStocks[code]
}

// LookaheadDays returns the effective lookahead window length
func (c FacilityConfig) LookaheadDays() int {
	if c.Lookahead > 0 {
		return c.Lookahead
	}
	return DefaultLookahead
}

// Validate checks the configuration for internal consistency. A product in
// both the exclusive and exempt sets would bypass the one-per-day bookkeeping,
// so the overlap is rejected outright.
func (c FacilityConfig) Validate() error {
	if c.DefaultCapacity <= 0 {
		return fmt.Errorf("default capacity must be positive, got %d", c.DefaultCapacity)
	}
	for slot, capacity := range c.CapacityOverrides {
		if slot.Day < 0 || slot.Day >= entities.ProductionDays {
			return fmt.Errorf("capacity override day out of range: %d", slot.Day)
		}
		if capacity < 0 {
			return fmt.Errorf("capacity override for day %d %s shift cannot be negative", slot.Day, slot.Shift)
		}
	}
	for code := range c.ExclusiveProducts {
		if c.ExemptProducts[code] {
			return fmt.Errorf("product %s cannot be both exclusive and capacity-exempt", code)
		}
	}
	for code, floor := range c.SafetyStocks {
		if floor < 0 {
			return fmt.Errorf("safety stock for %s cannot be negative, got %d", code, floor)
		}
	}
	if c.Lookahead < 0 {
		return fmt.Errorf("lookahead cannot be negative, got %d", c.Lookahead)
	}
	return nil
}

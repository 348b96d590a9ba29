package entities

import "time"

// SalesRecord represents one historical sale of a product on a calendar date.
// Records are append-only input; the engine never mutates them.
type SalesRecord struct {
	Code     ProductCode
	Date     time.Time
	Quantity Quantity
}

// DemandProfile holds the expected sale quantity per weekday (Monday=0 … Sunday=6)
type DemandProfile [7]Quantity

// Extended returns the 7-slot planning sequence for one week: Monday through
// Friday, then next Monday and next Tuesday reusing the same weekday profile,
// since no concrete next-week sales exist yet.
func (p DemandProfile) Extended() [7]Quantity {
	return [7]Quantity{p[0], p[1], p[2], p[3], p[4], p[0], p[1]}
}

package entities

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ProductCode represents a unique product identifier in the catalog
type ProductCode string

// Quantity represents an integer quantity value for discrete production units
type Quantity int64

// Shift represents a production shift within a day
type Shift int

const (
	DayShift Shift = iota
	NightShift
)

// String method for Shift enum
func (s Shift) String() string {
	switch s {
	case DayShift:
		return "day"
	case NightShift:
		return "night"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the shift as its label, matching the stored and
// exported representations
func (s Shift) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a shift label
func (s *Shift) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return err
	}
	parsed, ok := ParseShift(label)
	if !ok {
		return fmt.Errorf("unknown shift: %q", label)
	}
	*s = parsed
	return nil
}

// ParseShift converts a stored shift label back to a Shift
func ParseShift(label string) (Shift, bool) {
	switch strings.TrimSpace(strings.ToLower(label)) {
	case "day":
		return DayShift, true
	case "night":
		return NightShift, true
	default:
		return DayShift, false
	}
}

// ShiftEligibility represents when a product may be produced
type ShiftEligibility int

const (
	EitherShift ShiftEligibility = iota
	DayOnly
	NightOnly
)

// String method for ShiftEligibility enum
func (e ShiftEligibility) String() string {
	switch e {
	case DayOnly:
		return "day"
	case NightOnly:
		return "night"
	case EitherShift:
		return "either"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the eligibility as its timing label
func (e ShiftEligibility) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.String())
}

// UnmarshalJSON decodes a timing label; unrecognized labels mean either shift
func (e *ShiftEligibility) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return err
	}
	*e = ParseShiftEligibility(label)
	return nil
}

// ParseShiftEligibility maps a free-form catalog timing tag to an eligibility.
// Unrecognized or empty tags mean the product can run on either shift.
func ParseShiftEligibility(tag string) ShiftEligibility {
	switch strings.TrimSpace(strings.ToLower(tag)) {
	case "day":
		return DayOnly
	case "night":
		return NightOnly
	default:
		return EitherShift
	}
}

// Shifts returns the candidate shifts for this eligibility, day shift first
func (e ShiftEligibility) Shifts() []Shift {
	switch e {
	case DayOnly:
		return []Shift{DayShift}
	case NightOnly:
		return []Shift{NightShift}
	default:
		return []Shift{DayShift, NightShift}
	}
}

// Product represents a catalog product with its production properties
type Product struct {
	Code        ProductCode      `json:"product_code"`
	Name        string           `json:"product_name"`
	OnHand      Quantity         `json:"current_stock"`
	UnitSeconds int              `json:"unit_seconds"`
	Eligibility ShiftEligibility `json:"production_timing"`
	MinBatch    Quantity         `json:"min_batch"`
}

// Schedulable reports whether the product is a scheduling target.
// Products without a minimum production batch are never scheduled.
func (p Product) Schedulable() bool {
	return p.MinBatch > 0
}

package scheduling

import (
	"github.com/foodops/weekplan/pkg/application/dto"
	"github.com/foodops/weekplan/pkg/domain/entities"
)

// SlotEntry accumulates one product's placement within a (day, shift) slot.
// A product placed twice in the same slot merges quantities and reasons
// instead of creating a second entry.
type SlotEntry struct {
	Code        entities.ProductCode
	Name        string
	Quantity    entities.Quantity
	UnitSeconds int
	Reasons     []string
	Urgency     int
}

// AllocationState tracks per-slot placements and capacity bookkeeping for one
// scheduling run. It is the only mutable state threaded through allocation;
// the allocator itself stays pure with respect to its configuration.
type AllocationState struct {
	entries   map[SlotKey]map[entities.ProductCode]*SlotEntry
	order     map[SlotKey][]entities.ProductCode
	counted   map[SlotKey]entities.Quantity
	seconds   map[SlotKey]int64
	exclusive [entities.ProductionDays]entities.ProductCode
}

// NewAllocationState creates an empty allocation state
func NewAllocationState() *AllocationState {
	return &AllocationState{
		entries: make(map[SlotKey]map[entities.ProductCode]*SlotEntry),
		order:   make(map[SlotKey][]entities.ProductCode),
		counted: make(map[SlotKey]entities.Quantity),
		seconds: make(map[SlotKey]int64),
	}
}

// Placed returns the running total used for the slot's ceiling check.
// Capacity-exempt placements are not included.
func (s *AllocationState) Placed(day int, shift entities.Shift) entities.Quantity {
	return s.counted[SlotKey{Day: day, Shift: shift}]
}

// Seconds returns the total production seconds placed in a slot,
// exempt placements included
func (s *AllocationState) Seconds(day int, shift entities.Shift) int64 {
	return s.seconds[SlotKey{Day: day, Shift: shift}]
}

// Entries returns a slot's entries in insertion order
func (s *AllocationState) Entries(day int, shift entities.Shift) []*SlotEntry {
	key := SlotKey{Day: day, Shift: shift}
	codes := s.order[key]
	out := make([]*SlotEntry, 0, len(codes))
	for _, code := range codes {
		out = append(out, s.entries[key][code])
	}
	return out
}

// ExclusivePlaced returns the exclusive-set product placed on a day, if any
func (s *AllocationState) ExclusivePlaced(day int) (entities.ProductCode, bool) {
	code := s.exclusive[day]
	return code, code != ""
}

func (s *AllocationState) add(day int, shift entities.Shift, ev *entities.ProductionEvent, qty entities.Quantity, counted bool) {
	key := SlotKey{Day: day, Shift: shift}
	slot := s.entries[key]
	if slot == nil {
		slot = make(map[entities.ProductCode]*SlotEntry)
		s.entries[key] = slot
	}

	entry := slot[ev.Code]
	if entry == nil {
		entry = &SlotEntry{
			Code:        ev.Code,
			Name:        ev.Name,
			UnitSeconds: ev.UnitSeconds,
		}
		slot[ev.Code] = entry
		s.order[key] = append(s.order[key], ev.Code)
	}

	entry.Quantity += qty
	entry.Reasons = mergeTags(entry.Reasons, ev.Reasons)
	if u := deriveUrgency(ev, day); u > entry.Urgency {
		entry.Urgency = u
	}

	if counted {
		s.counted[key] += qty
	}
	s.seconds[key] += int64(qty) * int64(ev.UnitSeconds)
}

// mergeTags unions two ordered tag lists, preserving first-seen order
func mergeTags(existing, incoming []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, tag := range existing {
		seen[tag] = true
	}
	for _, tag := range incoming {
		if !seen[tag] {
			seen[tag] = true
			existing = append(existing, tag)
		}
	}
	return existing
}

// Allocator greedily seats production events into day/shift slots subject to
// the facility's capacity ceilings and special-case product rules.
type Allocator struct {
	cfg FacilityConfig
}

// NewAllocator creates an allocator for one facility configuration
func NewAllocator(cfg FacilityConfig) *Allocator {
	return &Allocator{cfg: cfg}
}

// Allocate places each event starting at its target day and scanning forward
// through Friday. Whatever cannot be seated by Friday is returned as an
// unplaced remainder.
func (a *Allocator) Allocate(events []*entities.ProductionEvent, state *AllocationState) []dto.UnplacedRemainder {
	var unplaced []dto.UnplacedRemainder

	for _, ev := range events {
		remaining := a.allocateEvent(ev, state)
		if remaining > 0 {
			unplaced = append(unplaced, dto.UnplacedRemainder{
				Code:      ev.Code,
				Name:      ev.Name,
				TargetDay: ev.TargetDay,
				Quantity:  remaining,
				Reason:    "all eligible slots at capacity through Friday",
			})
		}
	}

	return unplaced
}

func (a *Allocator) allocateEvent(ev *entities.ProductionEvent, state *AllocationState) entities.Quantity {
	remaining := ev.Quantity
	exclusive := a.cfg.ExclusiveProducts[ev.Code]

	for day := ev.TargetDay; day < entities.ProductionDays && remaining > 0; day++ {
		if a.cfg.ExemptProducts[ev.Code] {
			a.placeExempt(ev, day, remaining, state)
			remaining = 0
			break
		}

		if exclusive {
			if placed, ok := state.ExclusivePlaced(day); ok && placed != ev.Code {
				continue
			}
		}

		shifts := a.shiftsFor(ev, day)
		if len(shifts) == 2 {
			remaining = a.placeBothShifts(ev, day, remaining, shifts, exclusive, state)
		} else {
			remaining = a.placeSingleShift(ev, day, remaining, shifts, exclusive, state)
		}
	}

	return remaining
}

// placeExempt seats the entire remaining quantity at once, ignoring capacity
// ceilings: split evenly when both shifts are eligible, otherwise all on the
// single eligible shift. Exempt quantities never enter the counted totals.
func (a *Allocator) placeExempt(ev *entities.ProductionEvent, day int, remaining entities.Quantity, state *AllocationState) {
	shifts := a.shiftsFor(ev, day)
	if len(shifts) == 2 {
		first := (remaining + 1) / 2
		second := remaining - first
		state.add(day, shifts[0], ev, first, false)
		if second > 0 {
			state.add(day, shifts[1], ev, second, false)
		}
		return
	}
	state.add(day, shifts[0], ev, remaining, false)
}

// placeBothShifts handles a day where both shifts are eligible. If the
// remaining quantity covers two minimum batches it is split into halves each
// at least one batch, summing exactly to the remainder; otherwise everything
// targets whichever shift has more free capacity. Any leftover a shift cannot
// absorb is retried against the sibling shift before giving the day up.
func (a *Allocator) placeBothShifts(ev *entities.ProductionEvent, day int, remaining entities.Quantity, shifts []entities.Shift, exclusive bool, state *AllocationState) entities.Quantity {
	want := make(map[entities.Shift]entities.Quantity, 2)

	if remaining >= 2*ev.MinBatch {
		first := (remaining + 1) / 2
		if first < ev.MinBatch {
			first = ev.MinBatch
		}
		second := remaining - first
		if second < ev.MinBatch {
			second = ev.MinBatch
		}
		if first+second > remaining {
			first = remaining - second
		}
		want[shifts[0]] = first
		want[shifts[1]] = second
	} else {
		if a.free(day, shifts[0], state) >= a.free(day, shifts[1], state) {
			want[shifts[0]] = remaining
		} else {
			want[shifts[1]] = remaining
		}
	}

	for _, shift := range shifts {
		if remaining <= 0 {
			break
		}
		target := want[shift]
		if target <= 0 {
			continue
		}
		if target > remaining {
			target = remaining
		}
		remaining -= a.placeUpTo(ev, day, shift, target, exclusive, state)
	}

	// leftover from an over-full shift retries the sibling shift
	for _, shift := range shifts {
		if remaining <= 0 {
			break
		}
		remaining -= a.placeUpTo(ev, day, shift, remaining, exclusive, state)
	}

	return remaining
}

func (a *Allocator) placeSingleShift(ev *entities.ProductionEvent, day int, remaining entities.Quantity, shifts []entities.Shift, exclusive bool, state *AllocationState) entities.Quantity {
	for _, shift := range shifts {
		if remaining <= 0 {
			break
		}
		remaining -= a.placeUpTo(ev, day, shift, remaining, exclusive, state)
	}
	return remaining
}

// placeUpTo places min(desired, free capacity) into the slot and returns the
// quantity actually placed
func (a *Allocator) placeUpTo(ev *entities.ProductionEvent, day int, shift entities.Shift, desired entities.Quantity, exclusive bool, state *AllocationState) entities.Quantity {
	available := a.free(day, shift, state)
	if available <= 0 {
		return 0
	}
	qty := desired
	if qty > available {
		qty = available
	}
	state.add(day, shift, ev, qty, true)
	if exclusive {
		state.exclusive[day] = ev.Code
	}
	return qty
}

// shiftsFor resolves the candidate shifts for an event on a given day.
// Exclusive-set products may only run on the night shift on Monday,
// overriding their normal eligibility.
func (a *Allocator) shiftsFor(ev *entities.ProductionEvent, day int) []entities.Shift {
	if day == 0 && a.cfg.ExclusiveProducts[ev.Code] {
		return []entities.Shift{entities.NightShift}
	}
	return ev.Eligibility.Shifts()
}

func (a *Allocator) free(day int, shift entities.Shift, state *AllocationState) entities.Quantity {
	return a.cfg.Capacity(day, shift) - state.Placed(day, shift)
}

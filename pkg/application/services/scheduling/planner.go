package scheduling

import (
	"sort"

	"github.com/foodops/weekplan/pkg/domain/entities"
)

// PlanEvents flattens per-product simulation output into discrete production
// events, one per (product, day) with a positive quantity. Events are ordered
// by target day ascending, then quantity descending; the sort is stable so
// ties keep insertion order. This ordering governs allocation priority:
// earlier-needed, larger jobs claim capacity first.
func PlanEvents(plans []ProductPlan) []*entities.ProductionEvent {
	var events []*entities.ProductionEvent

	for _, plan := range plans {
		p := plan.Product
		for day := 0; day < entities.ProductionDays; day++ {
			qty := plan.Quantity[day]
			if qty <= 0 {
				continue
			}
			events = append(events, &entities.ProductionEvent{
				Code:        p.Code,
				Name:        p.Name,
				TargetDay:   day,
				Quantity:    qty,
				UnitSeconds: p.UnitSeconds,
				Eligibility: p.Eligibility,
				MinBatch:    p.MinBatch,
				Reasons:     plan.Reasons[day],
			})
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		if events[i].TargetDay != events[j].TargetDay {
			return events[i].TargetDay < events[j].TargetDay
		}
		return events[i].Quantity > events[j].Quantity
	})

	return events
}

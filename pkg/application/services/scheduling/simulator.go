package scheduling

import (
	"fmt"

	"github.com/foodops/weekplan/pkg/domain/entities"
)

// ProductPlan is the per-product output of the shortfall simulation: a
// production quantity and justification tags for each production day.
type ProductPlan struct {
	Product  *entities.Product
	Quantity [entities.ProductionDays]entities.Quantity
	Reasons  [entities.ProductionDays][]string
}

// Simulate walks the product's projected inventory day by day across the
// planning week. For each production day it looks ahead over a fixed window
// of projected sales; if stock would drop below the safety floor anywhere in
// that window, production is scheduled for the current day sized at
// max(largest shortfall, minimum batch). The produced quantity replenishes
// the simulated stock immediately, so later days see it.
func Simulate(product *entities.Product, profile entities.DemandProfile, floor entities.Quantity, lookahead int) ProductPlan {
	plan := ProductPlan{Product: product}
	sales := profile.Extended()
	stock := product.OnHand

	for day := 0; day < entities.ProductionDays; day++ {
		stock += plan.Quantity[day]

		lookStock := stock
		var maxShortfall entities.Quantity
		var shortDays []string
		need := false

		end := day + lookahead
		if end > len(sales) {
			end = len(sales)
		}
		for look := day; look < end; look++ {
			lookStock -= sales[look]
			if lookStock < floor {
				need = true
				if shortfall := floor - lookStock; shortfall > maxShortfall {
					maxShortfall = shortfall
				}
				shortDays = append(shortDays, entities.ExtendedDayName(look))
			}
		}

		if need && plan.Quantity[day] == 0 {
			qty := maxShortfall
			if qty < product.MinBatch {
				qty = product.MinBatch
			}
			plan.Quantity[day] = qty
			plan.Reasons[day] = shortfallTags(shortDays, floor)
			stock += qty
		}

		stock -= sales[day]
	}

	return plan
}

// shortfallTags builds the justification tag list for a production event: one
// tag per distinct day that would go short, plus the safety-stock floor when
// one is configured.
func shortfallTags(shortDays []string, floor entities.Quantity) []string {
	tags := make([]string, 0, len(shortDays)+1)
	seen := make(map[string]bool, len(shortDays))
	for _, name := range shortDays {
		tag := name + " shortfall"
		if seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	if floor > 0 {
		tags = append(tags, fmt.Sprintf("safety stock %d", floor))
	}
	return tags
}

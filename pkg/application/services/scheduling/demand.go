package scheduling

import (
	"github.com/foodops/weekplan/pkg/domain/entities"
)

// AggregateDemand turns raw sales history into a weekday demand profile per
// product code: the ceiling of (total quantity sold on that weekday) divided
// by (distinct calendar dates observed for that weekday in the window).
//
// Dates are counted across the whole window, not per product, so a product
// that sold nothing on a particular Monday still averages over that Monday.
func AggregateDemand(sales []*entities.SalesRecord) map[entities.ProductCode]entities.DemandProfile {
	profiles := make(map[entities.ProductCode]entities.DemandProfile)
	if len(sales) == 0 {
		return profiles
	}

	var dateCounts [7]int
	seen := make(map[string]bool, len(sales))
	totals := make(map[entities.ProductCode]*[7]int64)

	for _, rec := range sales {
		weekday := entities.WeekdayIndex(rec.Date)
		key := rec.Date.Format(dateKeyLayout)
		if !seen[key] {
			seen[key] = true
			dateCounts[weekday]++
		}

		t := totals[rec.Code]
		if t == nil {
			t = &[7]int64{}
			totals[rec.Code] = t
		}
		t[weekday] += int64(rec.Quantity)
	}

	for code, t := range totals {
		var profile entities.DemandProfile
		for weekday := 0; weekday < 7; weekday++ {
			if t[weekday] == 0 {
				continue
			}
			days := int64(dateCounts[weekday])
			if days < 1 {
				days = 1
			}
			profile[weekday] = entities.Quantity(ceilDiv(t[weekday], days))
		}
		profiles[code] = profile
	}

	return profiles
}

const dateKeyLayout = "2006-01-02"

func ceilDiv(total, parts int64) int64 {
	return (total + parts - 1) / parts
}

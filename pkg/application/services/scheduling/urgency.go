package scheduling

import (
	"strings"

	"github.com/foodops/weekplan/pkg/domain/entities"
)

// deriveUrgency scores an entry for display: broad shortfalls, safety-stock
// involvement, and placement slipping past the target day raise it; demand
// that only materializes next week lowers it. The score is informational and
// never participates in allocation ordering.
func deriveUrgency(ev *entities.ProductionEvent, placedDay int) int {
	urgency := 0

	shortDays := 0
	nextWeek := false
	safety := false
	for _, tag := range ev.Reasons {
		switch {
		case strings.HasSuffix(tag, "shortfall"):
			shortDays++
			if strings.HasPrefix(tag, "next ") {
				nextWeek = true
			}
		case strings.HasPrefix(tag, "safety stock"):
			safety = true
		}
	}

	if shortDays >= 2 {
		urgency += 80
	}
	if nextWeek {
		urgency -= 30
	}
	if safety && shortDays < 2 {
		urgency += 20
	}

	slip := placedDay - ev.TargetDay
	switch {
	case slip <= 0:
		urgency += 60
	case slip == 1:
		urgency += 30
	}

	return urgency
}

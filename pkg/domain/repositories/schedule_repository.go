package repositories

import (
	"time"

	"github.com/foodops/weekplan/pkg/domain/entities"
)

// ScheduleRepository persists weekly production schedules. SaveEntries is the
// single bulk write of a scheduling run; the engine performs no incremental
// writes during computation.
type ScheduleRepository interface {
	SaveEntries(entries []*entities.ScheduleEntry) error
	GetWeek(weekStart time.Time) ([]*entities.ScheduleEntry, error)
	ExistsForWeek(weekStart time.Time) (bool, error)
	DeleteWeek(weekStart time.Time) error
	ListWeeks() ([]entities.WeekRange, error)
}

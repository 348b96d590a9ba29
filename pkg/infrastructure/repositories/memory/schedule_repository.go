package memory

import (
	"sort"
	"time"

	"github.com/foodops/weekplan/pkg/domain/entities"
	"github.com/foodops/weekplan/pkg/domain/repositories"
)

// ScheduleRepository provides in-memory schedule storage keyed by week start
type ScheduleRepository struct {
	weeks map[time.Time][]*entities.ScheduleEntry
}

// NewScheduleRepository creates a new in-memory schedule repository
func NewScheduleRepository() *ScheduleRepository {
	return &ScheduleRepository{
		weeks: make(map[time.Time][]*entities.ScheduleEntry),
	}
}

// Verify interface compliance
var _ repositories.ScheduleRepository = (*ScheduleRepository)(nil)

// SaveEntries stores all entries of one run under their week start
func (r *ScheduleRepository) SaveEntries(entries []*entities.ScheduleEntry) error {
	for _, entry := range entries {
		key := entry.WeekStart
		stored := *entry
		r.weeks[key] = append(r.weeks[key], &stored)
	}
	return nil
}

// GetWeek returns the stored entries for a week
func (r *ScheduleRepository) GetWeek(weekStart time.Time) ([]*entities.ScheduleEntry, error) {
	entries := r.weeks[weekStart]
	out := make([]*entities.ScheduleEntry, len(entries))
	copy(out, entries)
	return out, nil
}

// ExistsForWeek reports whether any entries are stored for a week
func (r *ScheduleRepository) ExistsForWeek(weekStart time.Time) (bool, error) {
	return len(r.weeks[weekStart]) > 0, nil
}

// DeleteWeek removes all entries for a week
func (r *ScheduleRepository) DeleteWeek(weekStart time.Time) error {
	delete(r.weeks, weekStart)
	return nil
}

// ListWeeks returns the distinct stored week ranges, newest first
func (r *ScheduleRepository) ListWeeks() ([]entities.WeekRange, error) {
	weeks := make([]entities.WeekRange, 0, len(r.weeks))
	for start, entries := range r.weeks {
		if len(entries) == 0 {
			continue
		}
		weeks = append(weeks, entities.WeekRange{Start: start, End: entries[0].WeekEnd})
	}
	sort.Slice(weeks, func(i, j int) bool {
		return weeks[i].Start.After(weeks[j].Start)
	})
	return weeks, nil
}

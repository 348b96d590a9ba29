package gormstore

import (
	"fmt"
	"time"

	"github.com/foodops/weekplan/pkg/domain/entities"
	"github.com/foodops/weekplan/pkg/domain/repositories"
)

type scheduleRepository struct {
	store *Store
}

// Verify interface compliance
var _ repositories.ScheduleRepository = (*scheduleRepository)(nil)

// SaveEntries writes all entries of one run in a single transaction so a
// failed run commits nothing
func (r *scheduleRepository) SaveEntries(entries []*entities.ScheduleEntry) error {
	if len(entries) == 0 {
		return nil
	}
	tx := r.store.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("begin transaction: %w", tx.Error)
	}
	for _, entry := range entries {
		row := scheduleRow{
			WeekStart:   entry.WeekStart,
			WeekEnd:     entry.WeekEnd,
			DayLabel:    entry.DayLabel,
			Shift:       entry.Shift.String(),
			ProductCode: string(entry.ProductCode),
			ProductName: entry.ProductName,
			Quantity:    int64(entry.Quantity),
			Hours:       entry.Hours,
			Reason:      entry.Reason,
			Urgency:     entry.Urgency,
		}
		if err := tx.Create(&row).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("insert schedule entry %s %s: %w", entry.DayLabel, entry.ProductName, err)
		}
	}
	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("commit schedule: %w", err)
	}
	r.store.log.Info().
		Int("entries", len(entries)).
		Str("week_start", entries[0].WeekStart.Format("2006-01-02")).
		Msg("schedule saved")
	return nil
}

// GetWeek returns the stored entries for a week, in insertion order
func (r *scheduleRepository) GetWeek(weekStart time.Time) ([]*entities.ScheduleEntry, error) {
	var rows []scheduleRow
	if err := r.store.db.Where("week_start = ?", weekStart).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query schedule week %s: %w", weekStart.Format("2006-01-02"), err)
	}
	entries := make([]*entities.ScheduleEntry, 0, len(rows))
	for _, row := range rows {
		shift, _ := entities.ParseShift(row.Shift)
		entries = append(entries, &entities.ScheduleEntry{
			WeekStart:   row.WeekStart,
			WeekEnd:     row.WeekEnd,
			DayLabel:    row.DayLabel,
			Shift:       shift,
			ProductCode: entities.ProductCode(row.ProductCode),
			ProductName: row.ProductName,
			Quantity:    entities.Quantity(row.Quantity),
			Hours:       row.Hours,
			Reason:      row.Reason,
			Urgency:     row.Urgency,
		})
	}
	return entries, nil
}

// ExistsForWeek reports whether a schedule exists for the week
func (r *scheduleRepository) ExistsForWeek(weekStart time.Time) (bool, error) {
	var count int
	err := r.store.db.Model(&scheduleRow{}).Where("week_start = ?", weekStart).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("count schedule week %s: %w", weekStart.Format("2006-01-02"), err)
	}
	return count > 0, nil
}

// DeleteWeek removes all entries for a week
func (r *scheduleRepository) DeleteWeek(weekStart time.Time) error {
	err := r.store.db.Where("week_start = ?", weekStart).Delete(&scheduleRow{}).Error
	if err != nil {
		return fmt.Errorf("delete schedule week %s: %w", weekStart.Format("2006-01-02"), err)
	}
	return nil
}

// ListWeeks returns the distinct stored week ranges, newest first
func (r *scheduleRepository) ListWeeks() ([]entities.WeekRange, error) {
	rows, err := r.store.db.
		Model(&scheduleRow{}).
		Select("DISTINCT week_start, week_end").
		Order("week_start DESC").
		Rows()
	if err != nil {
		return nil, fmt.Errorf("query schedule weeks: %w", err)
	}
	defer rows.Close()

	var weeks []entities.WeekRange
	for rows.Next() {
		var week entities.WeekRange
		if err := rows.Scan(&week.Start, &week.End); err != nil {
			return nil, fmt.Errorf("scan schedule week: %w", err)
		}
		weeks = append(weeks, week)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate schedule weeks: %w", err)
	}
	return weeks, nil
}

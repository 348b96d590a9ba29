package gormstore

import (
	"fmt"
	"strings"
	"time"

	"github.com/foodops/weekplan/pkg/domain/entities"
	"github.com/foodops/weekplan/pkg/domain/repositories"
)

type salesRepository struct {
	store *Store
}

// Verify interface compliance
var _ repositories.SalesRepository = (*salesRepository)(nil)

// GetRange returns all sales with from <= date <= to, ordered by date.
// Rows without a product code are skipped and counted.
func (r *salesRepository) GetRange(from, to time.Time) ([]*entities.SalesRecord, error) {
	var rows []salesRow
	err := r.store.db.
		Where("sale_date >= ? AND sale_date <= ?", from, to).
		Order("sale_date").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query sales %s..%s: %w",
			from.Format("2006-01-02"), to.Format("2006-01-02"), err)
	}

	records := make([]*entities.SalesRecord, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		code := strings.TrimSpace(row.ProductCode)
		if code == "" {
			skipped++
			continue
		}
		records = append(records, &entities.SalesRecord{
			Code:     entities.ProductCode(code),
			Date:     row.SaleDate,
			Quantity: entities.Quantity(row.Quantity),
		})
	}
	if skipped > 0 {
		r.store.log.Warn().Int("rows", skipped).Msg("skipped malformed sales rows")
	}
	return records, nil
}

// LoadSales appends sales records in one transaction
func (r *salesRepository) LoadSales(records []*entities.SalesRecord) error {
	tx := r.store.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("begin transaction: %w", tx.Error)
	}
	for _, record := range records {
		row := salesRow{
			ProductCode: string(record.Code),
			SaleDate:    record.Date,
			Quantity:    int64(record.Quantity),
		}
		if err := tx.Create(&row).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("insert sale %s %s: %w",
				record.Code, record.Date.Format("2006-01-02"), err)
		}
	}
	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("commit sales: %w", err)
	}
	return nil
}

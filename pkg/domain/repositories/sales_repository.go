package repositories

import (
	"time"

	"github.com/foodops/weekplan/pkg/domain/entities"
)

// SalesRepository provides access to historical sales records
type SalesRepository interface {
	// GetRange returns all sales with from <= date <= to, ordered by date
	GetRange(from, to time.Time) ([]*entities.SalesRecord, error)
	LoadSales(records []*entities.SalesRecord) error
}

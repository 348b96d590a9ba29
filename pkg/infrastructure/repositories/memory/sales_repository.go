package memory

import (
	"sort"
	"time"

	"github.com/foodops/weekplan/pkg/domain/entities"
	"github.com/foodops/weekplan/pkg/domain/repositories"
)

// SalesRepository provides in-memory sales history storage
type SalesRepository struct {
	records []entities.SalesRecord
}

// NewSalesRepository creates a new in-memory sales repository
func NewSalesRepository(expectedRecords int) *SalesRepository {
	return &SalesRepository{
		records: make([]entities.SalesRecord, 0, expectedRecords),
	}
}

// Verify interface compliance
var _ repositories.SalesRepository = (*SalesRepository)(nil)

// LoadSales appends sales records to the repository
func (r *SalesRepository) LoadSales(records []*entities.SalesRecord) error {
	for _, record := range records {
		r.AddSale(*record)
	}
	return nil
}

// AddSale appends one sales record
func (r *SalesRepository) AddSale(record entities.SalesRecord) {
	r.records = append(r.records, record)
}

// GetRange returns all sales with from <= date <= to, ordered by date
func (r *SalesRepository) GetRange(from, to time.Time) ([]*entities.SalesRecord, error) {
	var out []*entities.SalesRecord
	for i := range r.records {
		date := r.records[i].Date
		if date.Before(from) || date.After(to) {
			continue
		}
		out = append(out, &r.records[i])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}

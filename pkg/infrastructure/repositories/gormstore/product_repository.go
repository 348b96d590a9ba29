package gormstore

import (
	"fmt"
	"strings"

	"github.com/jinzhu/gorm"

	"github.com/foodops/weekplan/pkg/domain/entities"
	"github.com/foodops/weekplan/pkg/domain/repositories"
)

type productRepository struct {
	store *Store
}

// Verify interface compliance
var _ repositories.ProductRepository = (*productRepository)(nil)

// GetAll returns the product catalog. Rows missing a product code or name are
// malformed input: they are skipped and counted, not fatal.
func (r *productRepository) GetAll() ([]*entities.Product, error) {
	var rows []productRow
	if err := r.store.db.Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}

	products := make([]*entities.Product, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		product, ok := rowToProduct(row)
		if !ok {
			skipped++
			continue
		}
		products = append(products, product)
	}
	if skipped > 0 {
		r.store.log.Warn().Int("rows", skipped).Msg("skipped malformed product rows")
	}
	return products, nil
}

// GetByCode returns the product with the given code
func (r *productRepository) GetByCode(code entities.ProductCode) (*entities.Product, error) {
	var row productRow
	err := r.store.db.Where("product_code = ?", string(code)).First(&row).Error
	if gorm.IsRecordNotFoundError(err) {
		return nil, fmt.Errorf("product not found: %s", code)
	}
	if err != nil {
		return nil, fmt.Errorf("query product %s: %w", code, err)
	}
	product, ok := rowToProduct(row)
	if !ok {
		return nil, fmt.Errorf("product %s: malformed row", code)
	}
	return product, nil
}

// LoadProducts upserts products into the catalog
func (r *productRepository) LoadProducts(products []*entities.Product) error {
	tx := r.store.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("begin transaction: %w", tx.Error)
	}
	for _, product := range products {
		row := productRow{
			ProductCode:  string(product.Code),
			ProductName:  product.Name,
			CurrentStock: int64(product.OnHand),
			UnitSeconds:  product.UnitSeconds,
			Timing:       product.Eligibility.String(),
			MinBatch:     int64(product.MinBatch),
		}
		var existing productRow
		err := tx.Where("product_code = ?", row.ProductCode).First(&existing).Error
		switch {
		case gorm.IsRecordNotFoundError(err):
			if err := tx.Create(&row).Error; err != nil {
				tx.Rollback()
				return fmt.Errorf("insert product %s: %w", product.Code, err)
			}
		case err != nil:
			tx.Rollback()
			return fmt.Errorf("lookup product %s: %w", product.Code, err)
		default:
			row.ID = existing.ID
			if err := tx.Save(&row).Error; err != nil {
				tx.Rollback()
				return fmt.Errorf("update product %s: %w", product.Code, err)
			}
		}
	}
	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("commit products: %w", err)
	}
	return nil
}

func rowToProduct(row productRow) (*entities.Product, bool) {
	code := strings.TrimSpace(row.ProductCode)
	name := strings.TrimSpace(row.ProductName)
	if code == "" || name == "" {
		return nil, false
	}
	return &entities.Product{
		Code:        entities.ProductCode(code),
		Name:        name,
		OnHand:      entities.Quantity(row.CurrentStock),
		UnitSeconds: row.UnitSeconds,
		Eligibility: entities.ParseShiftEligibility(row.Timing),
		MinBatch:    entities.Quantity(row.MinBatch),
	}, true
}

package repositories

import "github.com/foodops/weekplan/pkg/domain/entities"

// ProductRepository provides access to the product catalog
type ProductRepository interface {
	GetAll() ([]*entities.Product, error)
	GetByCode(code entities.ProductCode) (*entities.Product, error)
	LoadProducts(products []*entities.Product) error
}

package memory

import (
	"fmt"

	"github.com/foodops/weekplan/pkg/domain/entities"
	"github.com/foodops/weekplan/pkg/domain/repositories"
)

// ProductRepository provides in-memory product catalog storage
type ProductRepository struct {
	products map[entities.ProductCode]int
	ordered  []entities.Product
}

// NewProductRepository creates a new in-memory product repository
func NewProductRepository(expectedProducts int) *ProductRepository {
	return &ProductRepository{
		products: make(map[entities.ProductCode]int, expectedProducts),
		ordered:  make([]entities.Product, 0, expectedProducts),
	}
}

// Verify interface compliance
var _ repositories.ProductRepository = (*ProductRepository)(nil)

// LoadProducts loads products into the repository
func (r *ProductRepository) LoadProducts(products []*entities.Product) error {
	for _, product := range products {
		r.AddProduct(*product)
	}
	return nil
}

// AddProduct adds a product to the repository, replacing any previous entry
// with the same code
func (r *ProductRepository) AddProduct(product entities.Product) {
	if index, exists := r.products[product.Code]; exists {
		r.ordered[index] = product
		return
	}
	r.products[product.Code] = len(r.ordered)
	r.ordered = append(r.ordered, product)
}

// GetByCode returns the product with the given code
func (r *ProductRepository) GetByCode(code entities.ProductCode) (*entities.Product, error) {
	index, exists := r.products[code]
	if !exists {
		return nil, fmt.Errorf("product not found: %s", code)
	}
	return &r.ordered[index], nil
}

// GetAll returns all products in insertion order
func (r *ProductRepository) GetAll() ([]*entities.Product, error) {
	products := make([]*entities.Product, 0, len(r.ordered))
	for i := range r.ordered {
		products = append(products, &r.ordered[i])
	}
	return products, nil
}

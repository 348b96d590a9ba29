package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/foodops/weekplan/pkg/domain/entities"
)

// Loader handles loading catalog and sales data from CSV files. Malformed
// rows (missing code or name, non-numeric quantities) are skipped and counted
// rather than aborting the load.
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadProducts loads the product catalog from a CSV file. Returns the
// products and the number of malformed rows skipped.
func (l *Loader) LoadProducts(filename string) ([]*entities.Product, int, error) {
	records, err := readCSV(filename)
	if err != nil {
		return nil, 0, fmt.Errorf("products CSV: %w", err)
	}

	expectedHeader := []string{"product_code", "product_name", "current_stock", "unit_seconds", "production_timing", "min_batch"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, 0, fmt.Errorf("products CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var products []*entities.Product
	skipped := 0
	for _, record := range records[1:] {
		product, ok := parseProduct(record)
		if !ok {
			skipped++
			continue
		}
		products = append(products, product)
	}
	return products, skipped, nil
}

// LoadSales loads sales history from a CSV file. Returns the records and the
// number of malformed rows skipped.
func (l *Loader) LoadSales(filename string) ([]*entities.SalesRecord, int, error) {
	records, err := readCSV(filename)
	if err != nil {
		return nil, 0, fmt.Errorf("sales CSV: %w", err)
	}

	expectedHeader := []string{"product_code", "sale_date", "quantity"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, 0, fmt.Errorf("sales CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var sales []*entities.SalesRecord
	skipped := 0
	for _, record := range records[1:] {
		sale, ok := parseSale(record)
		if !ok {
			skipped++
			continue
		}
		sales = append(sales, sale)
	}
	return sales, skipped, nil
}

func readCSV(filename string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%s must have header and at least one data row", filename)
	}
	return records, nil
}

func validateHeader(header, expected []string) bool {
	if len(header) != len(expected) {
		return false
	}
	for i, column := range expected {
		if strings.TrimSpace(strings.ToLower(header[i])) != column {
			return false
		}
	}
	return true
}

func parseProduct(record []string) (*entities.Product, bool) {
	if len(record) != 6 {
		return nil, false
	}
	code := strings.TrimSpace(record[0])
	name := strings.TrimSpace(record[1])
	if code == "" || name == "" {
		return nil, false
	}

	stock, err := strconv.ParseInt(strings.TrimSpace(record[2]), 10, 64)
	if err != nil {
		return nil, false
	}
	unitSeconds, err := strconv.Atoi(strings.TrimSpace(record[3]))
	if err != nil {
		return nil, false
	}
	minBatch, err := strconv.ParseInt(strings.TrimSpace(record[5]), 10, 64)
	if err != nil {
		return nil, false
	}

	return &entities.Product{
		Code:        entities.ProductCode(code),
		Name:        name,
		OnHand:      entities.Quantity(stock),
		UnitSeconds: unitSeconds,
		Eligibility: entities.ParseShiftEligibility(record[4]),
		MinBatch:    entities.Quantity(minBatch),
	}, true
}

func parseSale(record []string) (*entities.SalesRecord, bool) {
	if len(record) != 3 {
		return nil, false
	}
	code := strings.TrimSpace(record[0])
	if code == "" {
		return nil, false
	}
	date, err := time.Parse("2006-01-02", strings.TrimSpace(record[1]))
	if err != nil {
		return nil, false
	}
	quantity, err := strconv.ParseInt(strings.TrimSpace(record[2]), 10, 64)
	if err != nil {
		return nil, false
	}
	return &entities.SalesRecord{
		Code:     entities.ProductCode(code),
		Date:     date.UTC(),
		Quantity: entities.Quantity(quantity),
	}, true
}

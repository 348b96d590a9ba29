package csv

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/foodops/weekplan/pkg/domain/entities"
)

func writeTempCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp CSV: %v", err)
	}
	return path
}

func TestLoadProducts(t *testing.T) {
	path := writeTempCSV(t, "products.csv", `product_code,product_name,current_stock,unit_seconds,production_timing,min_batch
F0000012,Sourdough Loaf,40,90,,30
F0000019,Baguette,15,45,day,50
F0000031,Croissant,10,30,night,60
`)

	products, skipped, err := NewLoader().LoadProducts(path)
	if err != nil {
		t.Fatalf("LoadProducts failed: %v", err)
	}
	if skipped != 0 {
		t.Errorf("skipped = %d, want 0", skipped)
	}
	if len(products) != 3 {
		t.Fatalf("got %d products, want 3", len(products))
	}

	first := products[0]
	if first.Code != "F0000012" || first.Name != "Sourdough Loaf" {
		t.Errorf("first product = (%s, %s)", first.Code, first.Name)
	}
	if first.OnHand != 40 || first.UnitSeconds != 90 || first.MinBatch != 30 {
		t.Errorf("first product values = %+v", first)
	}
	if first.Eligibility != entities.EitherShift {
		t.Errorf("empty timing should mean either shift, got %v", first.Eligibility)
	}
	if products[1].Eligibility != entities.DayOnly {
		t.Errorf("day timing parsed as %v", products[1].Eligibility)
	}
	if products[2].Eligibility != entities.NightOnly {
		t.Errorf("night timing parsed as %v", products[2].Eligibility)
	}
}

func TestLoadProducts_SkipsMalformedRows(t *testing.T) {
	path := writeTempCSV(t, "products.csv", `product_code,product_name,current_stock,unit_seconds,production_timing,min_batch
F0000012,Sourdough Loaf,40,90,,30
,Missing Code,10,30,,20
F0000025,Rye Bread,not-a-number,80,,20
F0000031,Croissant,10,30,night
F0000047,Wedding Cake Base,120,200,,40
`)

	products, skipped, err := NewLoader().LoadProducts(path)
	if err != nil {
		t.Fatalf("LoadProducts failed: %v", err)
	}
	if len(products) != 2 {
		t.Errorf("got %d products, want 2 valid rows", len(products))
	}
	if skipped != 3 {
		t.Errorf("skipped = %d, want 3", skipped)
	}
}

func TestLoadProducts_RejectsWrongHeader(t *testing.T) {
	path := writeTempCSV(t, "products.csv", `code,name,stock
F0000012,Sourdough Loaf,40
`)

	_, _, err := NewLoader().LoadProducts(path)
	if err == nil {
		t.Error("expected a header mismatch error")
	}
}

func TestLoadSales(t *testing.T) {
	path := writeTempCSV(t, "sales.csv", `product_code,sale_date,quantity
F0000012,2026-03-02,25
F0000012,2026-03-03,30
F0000019,2026-03-02,18
`)

	sales, skipped, err := NewLoader().LoadSales(path)
	if err != nil {
		t.Fatalf("LoadSales failed: %v", err)
	}
	if skipped != 0 {
		t.Errorf("skipped = %d, want 0", skipped)
	}
	if len(sales) != 3 {
		t.Fatalf("got %d records, want 3", len(sales))
	}

	first := sales[0]
	wantDate := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	if first.Code != "F0000012" || !first.Date.Equal(wantDate) || first.Quantity != 25 {
		t.Errorf("first record = %+v", first)
	}
}

func TestLoadSales_SkipsMalformedRows(t *testing.T) {
	path := writeTempCSV(t, "sales.csv", `product_code,sale_date,quantity
F0000012,2026-03-02,25
F0000012,03/02/2026,10
,2026-03-02,5
F0000012,2026-03-03,not-a-number
`)

	sales, skipped, err := NewLoader().LoadSales(path)
	if err != nil {
		t.Fatalf("LoadSales failed: %v", err)
	}
	if len(sales) != 1 {
		t.Errorf("got %d records, want 1 valid row", len(sales))
	}
	if skipped != 3 {
		t.Errorf("skipped = %d, want 3", skipped)
	}
}

func TestLoadSales_MissingFile(t *testing.T) {
	_, _, err := NewLoader().LoadSales(filepath.Join(t.TempDir(), "absent.csv"))
	if err == nil {
		t.Error("expected an error for a missing file")
	}
}

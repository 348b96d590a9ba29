package scheduling

import (
	"testing"
	"time"

	"github.com/foodops/weekplan/pkg/domain/entities"
)

func saleOn(code entities.ProductCode, date time.Time, qty entities.Quantity) *entities.SalesRecord {
	return &entities.SalesRecord{Code: code, Date: date, Quantity: qty}
}

func TestAggregateDemand_CeilingAverage(t *testing.T) {
	// Three Mondays with 10, 10, and 11 units sold: 31/3 rounds up to 11
	mon1 := time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC)
	mon2 := time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC)
	mon3 := time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC)

	sales := []*entities.SalesRecord{
		saleOn("F0000012", mon1, 10),
		saleOn("F0000012", mon2, 10),
		saleOn("F0000012", mon3, 11),
	}

	profiles := AggregateDemand(sales)
	profile, ok := profiles["F0000012"]
	if !ok {
		t.Fatal("expected a profile for F0000012")
	}

	if profile[0] != 11 {
		t.Errorf("Monday demand = %d, want 11 (ceil of 31/3)", profile[0])
	}
	for day := 1; day < 7; day++ {
		if profile[day] != 0 {
			t.Errorf("day %d demand = %d, want 0", day, profile[day])
		}
	}
}

func TestAggregateDemand_DatesCountedGlobally(t *testing.T) {
	// Two Mondays observed in the window, but product B only sold on one of
	// them. Its average still divides by both Mondays: ceil(10/2) = 5.
	mon1 := time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC)
	mon2 := time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC)

	sales := []*entities.SalesRecord{
		saleOn("A", mon1, 20),
		saleOn("A", mon2, 20),
		saleOn("B", mon1, 10),
	}

	profiles := AggregateDemand(sales)

	if got := profiles["A"][0]; got != 20 {
		t.Errorf("product A Monday demand = %d, want 20", got)
	}
	if got := profiles["B"][0]; got != 5 {
		t.Errorf("product B Monday demand = %d, want 5", got)
	}
}

func TestAggregateDemand_MultipleRecordsSameDate(t *testing.T) {
	// Two sales rows on the same Monday count as one observed date
	mon := time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC)

	sales := []*entities.SalesRecord{
		saleOn("A", mon, 7),
		saleOn("A", mon, 8),
	}

	profiles := AggregateDemand(sales)
	if got := profiles["A"][0]; got != 15 {
		t.Errorf("Monday demand = %d, want 15", got)
	}
}

func TestAggregateDemand_ZeroTotalsSkipped(t *testing.T) {
	mon := time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC)
	tue := mon.AddDate(0, 0, 1)

	sales := []*entities.SalesRecord{
		saleOn("A", mon, 12),
		saleOn("B", tue, 4),
	}

	profiles := AggregateDemand(sales)

	// A never sold on Tuesday even though a Tuesday was observed
	if got := profiles["A"][1]; got != 0 {
		t.Errorf("product A Tuesday demand = %d, want 0", got)
	}
	if got := profiles["B"][1]; got != 4 {
		t.Errorf("product B Tuesday demand = %d, want 4", got)
	}
}

func TestAggregateDemand_EmptyInput(t *testing.T) {
	profiles := AggregateDemand(nil)
	if len(profiles) != 0 {
		t.Errorf("expected empty profile map, got %d entries", len(profiles))
	}
}

func TestAggregateDemand_Deterministic(t *testing.T) {
	mon := time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC)
	sales := []*entities.SalesRecord{
		saleOn("A", mon, 9),
		saleOn("A", mon.AddDate(0, 0, -7), 5),
		saleOn("B", mon.AddDate(0, 0, 2), 3),
	}

	first := AggregateDemand(sales)
	second := AggregateDemand(sales)

	if len(first) != len(second) {
		t.Fatalf("profile counts differ: %d vs %d", len(first), len(second))
	}
	for code, profile := range first {
		if second[code] != profile {
			t.Errorf("profile for %s differs between runs: %v vs %v", code, profile, second[code])
		}
	}
}

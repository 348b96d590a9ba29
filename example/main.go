package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/foodops/weekplan/pkg/application/services/scheduling"
	"github.com/foodops/weekplan/pkg/domain/entities"
	"github.com/foodops/weekplan/pkg/infrastructure/repositories/memory"
)

func main() {
	ctx := context.Background()

	// Create repositories
	products := memory.NewProductRepository(8)
	sales := memory.NewSalesRepository(256)
	schedules := memory.NewScheduleRepository()

	// Set up a small bakery catalog with four weeks of sales history
	anchor := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC) // a Monday
	setupCatalog(products)
	setupSalesHistory(sales, anchor)

	service, err := scheduling.NewService(
		scheduling.DefaultFacilityConfig(),
		products, sales, schedules,
		zerolog.Nop(),
	)
	if err != nil {
		fmt.Printf("setup failed: %v\n", err)
		return
	}

	fmt.Println("📅 Planning the week of", anchor.Format("2006-01-02"))
	fmt.Println()

	result, err := service.Run(ctx, scheduling.RunOptions{Anchor: anchor})
	if err != nil {
		fmt.Printf("scheduling failed: %v\n", err)
		return
	}

	fmt.Printf("Run %s: %d entries, %d units, %.1f hours\n\n",
		result.RunID, len(result.Entries), result.TotalUnits(), result.TotalHours())

	for _, entry := range result.Entries {
		fmt.Printf("  %-12s %-6s %-10s %-22s %5d units  %4.1fh  (%s)\n",
			entry.DayLabel, entry.Shift, entry.ProductCode, entry.ProductName,
			entry.Quantity, entry.Hours, entry.Reason)
	}

	if len(result.Unmatched) > 0 {
		fmt.Println("\nNot scheduled (no sales history in window):")
		for _, code := range result.Unmatched {
			fmt.Printf("  %s\n", code)
		}
	}

	if len(result.Unplaced) > 0 {
		fmt.Println("\nUnplaced remainders:")
		for _, rem := range result.Unplaced {
			fmt.Printf("  %s %s: %d units (%s)\n",
				rem.Code, rem.Name, rem.Quantity, rem.Reason)
		}
	}

	fmt.Println("\nSlot usage:")
	for _, slot := range result.Usage {
		fmt.Printf("  %-4s %-6s %4d/%4d units\n",
			entities.DayName(slot.Day), slot.Shift, slot.Placed, slot.Capacity)
	}
}

func setupCatalog(products *memory.ProductRepository) {
	catalog := []entities.Product{
		{Code: "F0000012", Name: "Sourdough Loaf", OnHand: 40, UnitSeconds: 90, Eligibility: entities.EitherShift, MinBatch: 30},
		{Code: "F0000019", Name: "Baguette", OnHand: 15, UnitSeconds: 45, Eligibility: entities.DayOnly, MinBatch: 50},
		{Code: "F0000025", Name: "Rye Bread", OnHand: 60, UnitSeconds: 80, Eligibility: entities.EitherShift, MinBatch: 20},
		{Code: "F0000031", Name: "Croissant", OnHand: 10, UnitSeconds: 30, Eligibility: entities.NightOnly, MinBatch: 60},
		{Code: "F0000047", Name: "Wedding Cake Base", OnHand: 120, UnitSeconds: 200, Eligibility: entities.EitherShift, MinBatch: 40},
		{Code: "E0000072", Name: "Packaging Insert", OnHand: 0, UnitSeconds: 5, Eligibility: entities.EitherShift, MinBatch: 100},
		{Code: "X0000001", Name: "Seasonal Special", OnHand: 0, UnitSeconds: 60, Eligibility: entities.EitherShift, MinBatch: 0},
	}
	for _, p := range catalog {
		products.AddProduct(p)
	}
}

// setupSalesHistory generates four trailing weeks of weekday sales so every
// product has a demand profile. Weekend sales are lighter on purpose.
func setupSalesHistory(sales *memory.SalesRepository, weekStart time.Time) {
	daily := map[entities.ProductCode]entities.Quantity{
		"F0000012": 25,
		"F0000019": 18,
		"F0000025": 12,
		"F0000031": 40,
		"F0000047": 55,
		"E0000072": 80,
	}

	for back := 1; back <= 28; back++ {
		date := weekStart.AddDate(0, 0, -back)
		weekend := date.Weekday() == time.Saturday || date.Weekday() == time.Sunday
		for code, qty := range daily {
			if weekend {
				qty = qty / 2
			}
			sales.AddSale(entities.SalesRecord{Code: code, Date: date, Quantity: qty})
		}
	}
}

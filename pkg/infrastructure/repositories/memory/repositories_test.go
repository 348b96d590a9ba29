package memory

import (
	"testing"
	"time"

	"github.com/foodops/weekplan/pkg/domain/entities"
)

func TestProductRepository(t *testing.T) {
	repo := NewProductRepository(4)

	repo.AddProduct(entities.Product{Code: "A", Name: "First", MinBatch: 10})
	repo.AddProduct(entities.Product{Code: "B", Name: "Second", MinBatch: 20})

	product, err := repo.GetByCode("A")
	if err != nil {
		t.Fatalf("GetByCode failed: %v", err)
	}
	if product.Name != "First" {
		t.Errorf("GetByCode(A).Name = %q, want %q", product.Name, "First")
	}

	if _, err := repo.GetByCode("MISSING"); err == nil {
		t.Error("expected an error for an unknown code")
	}

	all, err := repo.GetAll()
	if err != nil {
		t.Fatalf("GetAll failed: %v", err)
	}
	if len(all) != 2 || all[0].Code != "A" || all[1].Code != "B" {
		t.Errorf("GetAll should preserve insertion order, got %v", all)
	}
}

func TestProductRepository_AddReplacesExisting(t *testing.T) {
	repo := NewProductRepository(2)

	repo.AddProduct(entities.Product{Code: "A", Name: "Old", MinBatch: 10})
	repo.AddProduct(entities.Product{Code: "A", Name: "New", MinBatch: 15})

	all, _ := repo.GetAll()
	if len(all) != 1 {
		t.Fatalf("got %d products after replacement, want 1", len(all))
	}
	if all[0].Name != "New" || all[0].MinBatch != 15 {
		t.Errorf("replacement did not take: %+v", all[0])
	}
}

func TestSalesRepository_GetRange(t *testing.T) {
	repo := NewSalesRepository(8)
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	// Inserted out of order on purpose
	repo.AddSale(entities.SalesRecord{Code: "A", Date: base.AddDate(0, 0, 5), Quantity: 3})
	repo.AddSale(entities.SalesRecord{Code: "A", Date: base, Quantity: 1})
	repo.AddSale(entities.SalesRecord{Code: "A", Date: base.AddDate(0, 0, 2), Quantity: 2})
	repo.AddSale(entities.SalesRecord{Code: "A", Date: base.AddDate(0, 0, 10), Quantity: 9})

	records, err := repo.GetRange(base, base.AddDate(0, 0, 5))
	if err != nil {
		t.Fatalf("GetRange failed: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("got %d records, want 3 (bounds inclusive)", len(records))
	}
	for i := 1; i < len(records); i++ {
		if records[i].Date.Before(records[i-1].Date) {
			t.Error("records should be ordered by date")
		}
	}
}

func TestScheduleRepository_Lifecycle(t *testing.T) {
	repo := NewScheduleRepository()
	week := entities.WeekOf(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC))

	exists, err := repo.ExistsForWeek(week.Start)
	if err != nil {
		t.Fatalf("ExistsForWeek failed: %v", err)
	}
	if exists {
		t.Fatal("empty repository should report no stored week")
	}

	entry, err := entities.NewScheduleEntry(week, 0, entities.DayShift, "A", "Bread", 50, 1.0, "Mon shortfall", 60)
	if err != nil {
		t.Fatalf("NewScheduleEntry failed: %v", err)
	}
	if err := repo.SaveEntries([]*entities.ScheduleEntry{entry}); err != nil {
		t.Fatalf("SaveEntries failed: %v", err)
	}

	exists, _ = repo.ExistsForWeek(week.Start)
	if !exists {
		t.Error("week should exist after save")
	}

	stored, err := repo.GetWeek(week.Start)
	if err != nil {
		t.Fatalf("GetWeek failed: %v", err)
	}
	if len(stored) != 1 || stored[0].ProductCode != "A" {
		t.Errorf("GetWeek = %v, want the saved entry", stored)
	}

	// Saved entries are copies; mutating the original must not leak through
	entry.Quantity = 999
	stored, _ = repo.GetWeek(week.Start)
	if stored[0].Quantity != 50 {
		t.Errorf("stored quantity = %d, want 50 (isolated copy)", stored[0].Quantity)
	}

	if err := repo.DeleteWeek(week.Start); err != nil {
		t.Fatalf("DeleteWeek failed: %v", err)
	}
	exists, _ = repo.ExistsForWeek(week.Start)
	if exists {
		t.Error("week should be gone after delete")
	}
}

func TestScheduleRepository_ListWeeksNewestFirst(t *testing.T) {
	repo := NewScheduleRepository()

	week1 := entities.WeekOf(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))
	week2 := entities.WeekOf(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC))

	for _, week := range []entities.Week{week1, week2} {
		entry, err := entities.NewScheduleEntry(week, 0, entities.DayShift, "A", "Bread", 50, 1.0, "", 0)
		if err != nil {
			t.Fatalf("NewScheduleEntry failed: %v", err)
		}
		if err := repo.SaveEntries([]*entities.ScheduleEntry{entry}); err != nil {
			t.Fatalf("SaveEntries failed: %v", err)
		}
	}

	weeks, err := repo.ListWeeks()
	if err != nil {
		t.Fatalf("ListWeeks failed: %v", err)
	}
	if len(weeks) != 2 {
		t.Fatalf("got %d weeks, want 2", len(weeks))
	}
	if !weeks[0].Start.Equal(week2.Start) || !weeks[1].Start.Equal(week1.Start) {
		t.Errorf("weeks not ordered newest first: %v", weeks)
	}
	if !weeks[0].End.Equal(week2.End()) {
		t.Errorf("week end = %v, want %v", weeks[0].End, week2.End())
	}
}

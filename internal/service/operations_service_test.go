package service

import (
	"errors"
	"testing"

	"go-dairy-ops/internal/model"
	"go-dairy-ops/pkg/apperr"
)

func TestSaveFeedCreateAndUpdate(t *testing.T) {
	env := newTestEnv(t)
	manager := env.newManager(t, "mgr")
	today := model.Today()

	record, err := env.operations.SaveFeed(manager.ID, nil, today, "hay", dec("100"), dec("1200"))
	if err != nil {
		t.Fatalf("SaveFeed: %v", err)
	}

	// Update in place by id
	updated, err := env.operations.SaveFeed(manager.ID, &record.ID, today, "silage", dec("80"), dec("900"))
	if err != nil {
		t.Fatalf("SaveFeed update: %v", err)
	}
	if updated.ID != record.ID {
		t.Errorf("update created a new record")
	}

	data, err := env.operations.GetDailyData(manager.ID, today)
	if err != nil {
		t.Fatalf("GetDailyData: %v", err)
	}
	if len(data.FeedRecords) != 1 {
		t.Fatalf("feed records = %d, want 1", len(data.FeedRecords))
	}
	if data.FeedRecords[0].FeedType != "silage" {
		t.Errorf("feed type = %s, want silage", data.FeedRecords[0].FeedType)
	}
}

func TestSaveExpenseAggregates(t *testing.T) {
	env := newTestEnv(t)
	manager := env.newManager(t, "mgr")
	today := model.Today()

	if _, err := env.operations.SaveExpense(manager.ID, nil, today, "fuel", dec("120")); err != nil {
		t.Fatalf("SaveExpense: %v", err)
	}
	if _, err := env.operations.SaveExpense(manager.ID, nil, today, "repairs", dec("80")); err != nil {
		t.Fatalf("SaveExpense: %v", err)
	}

	data, err := env.operations.GetDailyData(manager.ID, today)
	if err != nil {
		t.Fatalf("GetDailyData: %v", err)
	}
	if len(data.ExpenseRecords) != 2 {
		t.Fatalf("expense records = %d, want 2", len(data.ExpenseRecords))
	}
	assertDecimal(t, "total expenses", data.TotalExpenses, "200")
}

func TestOperationsValidation(t *testing.T) {
	env := newTestEnv(t)
	manager := env.newManager(t, "mgr")
	today := model.Today()

	if _, err := env.operations.SaveFeed(manager.ID, nil, today, "", dec("10"), dec("100")); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("empty feed type: err = %v, want validation error", err)
	}
	if _, err := env.operations.SaveExpense(manager.ID, nil, today, "fuel", dec("0")); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("zero amount: err = %v, want validation error", err)
	}
	if _, err := env.operations.SaveMedicine(manager.ID, nil, today, "penicillin", dec("-5")); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("negative cost: err = %v, want validation error", err)
	}
	if _, err := env.operations.UpdateLeftover(manager.ID, today, dec("-1"), dec("0")); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("negative leftover: err = %v, want validation error", err)
	}
}

func TestUpdateLeftoverKeepsComputedTotal(t *testing.T) {
	env := newTestEnv(t)
	location := env.newLocation(t, "North")
	seller := env.newSeller(t, "alice", location.ID)
	manager := env.newManager(t, "mgr")
	today := model.Today()

	// Distribution refreshes the day's computed milk total
	receipt, err := env.distributions.RecordDistribution(manager.ID, seller.ID, dec("40"), today)
	if err != nil {
		t.Fatalf("RecordDistribution: %v", err)
	}
	if _, err := env.distributions.UpdateStatus(receipt.ID, model.ReceiptReceived, seller.ID); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	day, err := env.operations.UpdateLeftover(manager.ID, today, dec("3"), dec("90"))
	if err != nil {
		t.Fatalf("UpdateLeftover: %v", err)
	}
	assertDecimal(t, "leftover milk", day.LeftoverMilk, "3")
	assertDecimal(t, "leftover sales", day.LeftoverSales, "90")
	// Manager-entered leftovers must not clobber the receipt-derived total
	assertDecimal(t, "total milk", day.TotalMilk, "40")
}

func TestGetDailyDataEmptyDay(t *testing.T) {
	env := newTestEnv(t)
	manager := env.newManager(t, "mgr")

	data, err := env.operations.GetDailyData(manager.ID, model.Today())
	if err != nil {
		t.Fatalf("GetDailyData: %v", err)
	}
	if len(data.FeedRecords) != 0 || len(data.ExpenseRecords) != 0 || len(data.MedicineRecords) != 0 {
		t.Errorf("expected empty day sheet, got %+v", data)
	}
}

package service

import (
	"errors"
	"testing"

	"go-dairy-ops/internal/model"
	"go-dairy-ops/pkg/apperr"

	"github.com/google/uuid"
)

func TestRecordDistributionStaysPending(t *testing.T) {
	env := newTestEnv(t)
	location := env.newLocation(t, "North")
	seller := env.newSeller(t, "alice", location.ID)
	manager := env.newManager(t, "mgr")

	receipt, err := env.distributions.RecordDistribution(manager.ID, seller.ID, dec("50"), model.Today())
	if err != nil {
		t.Fatalf("RecordDistribution: %v", err)
	}
	if receipt.Status != model.ReceiptPending {
		t.Errorf("status = %s, want pending", receipt.Status)
	}
	if receipt.Source != model.SourceFarm {
		t.Errorf("source = %s, want farm", receipt.Source)
	}

	// Pending deliveries do not count toward the seller's day
	summary, err := env.summaries.GetDailySummary(seller.ID, model.Today())
	if err != nil {
		t.Fatalf("GetDailySummary: %v", err)
	}
	assertDecimal(t, "total_milk_received while pending", summary.TotalMilkReceived, "0")

	// Seller gets notified
	feed, _ := env.notifications.List(seller.UserID)
	if len(feed) != 1 {
		t.Errorf("seller notifications = %d, want 1", len(feed))
	}
}

func TestAcknowledgeReceivedCountsOnce(t *testing.T) {
	env := newTestEnv(t)
	location := env.newLocation(t, "North")
	seller := env.newSeller(t, "alice", location.ID)
	manager := env.newManager(t, "mgr")

	receipt, err := env.distributions.RecordDistribution(manager.ID, seller.ID, dec("50"), model.Today())
	if err != nil {
		t.Fatalf("RecordDistribution: %v", err)
	}

	updated, err := env.distributions.UpdateStatus(receipt.ID, model.ReceiptReceived, seller.ID)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != model.ReceiptReceived {
		t.Errorf("status = %s, want received", updated.Status)
	}

	summary, _ := env.summaries.GetDailySummary(seller.ID, model.Today())
	assertDecimal(t, "total_milk_received", summary.TotalMilkReceived, "50")
	assertDecimal(t, "farm_milk", summary.FarmMilk, "50")

	// Received is terminal
	if _, err := env.distributions.UpdateStatus(receipt.ID, model.ReceiptNotReceived, seller.ID); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("UpdateStatus after received: err = %v, want conflict", err)
	}
	if _, err := env.distributions.UpdateStatus(receipt.ID, model.ReceiptReceived, seller.ID); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("repeat received: err = %v, want conflict", err)
	}
	summary, _ = env.summaries.GetDailySummary(seller.ID, model.Today())
	assertDecimal(t, "total_milk_received after retries", summary.TotalMilkReceived, "50")
}

func TestNotReceivedIsRetryable(t *testing.T) {
	env := newTestEnv(t)
	location := env.newLocation(t, "North")
	seller := env.newSeller(t, "alice", location.ID)
	manager := env.newManager(t, "mgr")

	receipt, _ := env.distributions.RecordDistribution(manager.ID, seller.ID, dec("20"), model.Today())

	if _, err := env.distributions.UpdateStatus(receipt.ID, model.ReceiptNotReceived, seller.ID); err != nil {
		t.Fatalf("mark not_received: %v", err)
	}

	summary, _ := env.summaries.GetDailySummary(seller.ID, model.Today())
	assertDecimal(t, "total after dispute", summary.TotalMilkReceived, "0")

	// Dispute resolved, seller confirms after all
	if _, err := env.distributions.UpdateStatus(receipt.ID, model.ReceiptReceived, seller.ID); err != nil {
		t.Fatalf("received after dispute: %v", err)
	}
	summary, _ = env.summaries.GetDailySummary(seller.ID, model.Today())
	assertDecimal(t, "total after resolution", summary.TotalMilkReceived, "20")
}

func TestUpdateStatusOwnershipAndValidation(t *testing.T) {
	env := newTestEnv(t)
	location := env.newLocation(t, "North")
	seller := env.newSeller(t, "alice", location.ID)
	other := env.newSeller(t, "bob", location.ID)
	manager := env.newManager(t, "mgr")

	receipt, _ := env.distributions.RecordDistribution(manager.ID, seller.ID, dec("20"), model.Today())

	if _, err := env.distributions.UpdateStatus(receipt.ID, model.ReceiptReceived, other.ID); !errors.Is(err, apperr.ErrAuthorization) {
		t.Errorf("UpdateStatus by other seller: err = %v, want authorization error", err)
	}
	if _, err := env.distributions.UpdateStatus(receipt.ID, model.ReceiptStatus("pending"), seller.ID); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("UpdateStatus to pending: err = %v, want validation error", err)
	}
	if _, err := env.distributions.UpdateStatus(uuid.New(), model.ReceiptReceived, seller.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("UpdateStatus unknown id: err = %v, want not found", err)
	}
}

func TestDistributeToLocationSplitsEvenly(t *testing.T) {
	env := newTestEnv(t)
	location := env.newLocation(t, "North")
	a := env.newSeller(t, "alice", location.ID)
	b := env.newSeller(t, "bob", location.ID)
	manager := env.newManager(t, "mgr")

	receipts, err := env.distributions.DistributeToLocation(manager.ID, location.ID, dec("50"), model.Today())
	if err != nil {
		t.Fatalf("DistributeToLocation: %v", err)
	}
	if len(receipts) != 2 {
		t.Fatalf("receipts = %d, want 2", len(receipts))
	}
	for _, r := range receipts {
		assertDecimal(t, "per-seller quantity", r.Quantity, "25")
		if r.Status != model.ReceiptPending {
			t.Errorf("status = %s, want pending", r.Status)
		}
	}

	// Both sellers acknowledge; each day gains its share
	for _, r := range receipts {
		if _, err := env.distributions.UpdateStatus(r.ID, model.ReceiptReceived, r.SellerID); err != nil {
			t.Fatalf("UpdateStatus: %v", err)
		}
	}
	for _, seller := range []uuid.UUID{a.ID, b.ID} {
		summary, err := env.summaries.GetDailySummary(seller, model.Today())
		if err != nil {
			t.Fatalf("GetDailySummary: %v", err)
		}
		assertDecimal(t, "seller share", summary.TotalMilkReceived, "25")
	}
}

func TestDistributeToLocationWithoutSellers(t *testing.T) {
	env := newTestEnv(t)
	location := env.newLocation(t, "Empty")
	manager := env.newManager(t, "mgr")

	if _, err := env.distributions.DistributeToLocation(manager.ID, location.ID, dec("50"), model.Today()); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("DistributeToLocation on empty location: err = %v, want validation error", err)
	}
}

func TestListOutstandingAndManagerPending(t *testing.T) {
	env := newTestEnv(t)
	location := env.newLocation(t, "North")
	seller := env.newSeller(t, "alice", location.ID)
	manager := env.newManager(t, "mgr")

	first, _ := env.distributions.RecordDistribution(manager.ID, seller.ID, dec("10"), model.Today())
	second, _ := env.distributions.RecordDistribution(manager.ID, seller.ID, dec("15"), model.Today())

	outstanding, err := env.distributions.ListOutstanding(seller.ID)
	if err != nil {
		t.Fatalf("ListOutstanding: %v", err)
	}
	if len(outstanding) != 2 {
		t.Fatalf("outstanding = %d, want 2", len(outstanding))
	}

	if _, err := env.distributions.UpdateStatus(first.ID, model.ReceiptReceived, seller.ID); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	outstanding, _ = env.distributions.ListOutstanding(seller.ID)
	if len(outstanding) != 1 || outstanding[0].ID != second.ID {
		t.Errorf("outstanding after acknowledge = %d, want just the second receipt", len(outstanding))
	}

	pending, err := env.distributions.ListManagerPending(manager.ID)
	if err != nil {
		t.Fatalf("ListManagerPending: %v", err)
	}
	if len(pending) != 1 {
		t.Errorf("manager pending = %d, want 1", len(pending))
	}
}

package service

import (
	"errors"
	"testing"

	"go-dairy-ops/internal/model"
	"go-dairy-ops/pkg/apperr"

	"github.com/google/uuid"
)

func TestRecordSaleValidation(t *testing.T) {
	env := newTestEnv(t)
	location := env.newLocation(t, "North")
	seller := env.newSeller(t, "alice", location.ID)

	if _, err := env.sales.RecordSale(seller.ID, dec("0"), dec("100"), model.Today()); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("zero quantity: err = %v, want validation error", err)
	}
	if _, err := env.sales.RecordSale(seller.ID, dec("5"), dec("-1"), model.Today()); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("negative amount: err = %v, want validation error", err)
	}
	if _, err := env.sales.RecordSale(uuid.New(), dec("5"), dec("100"), model.Today()); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("unknown seller: err = %v, want not found", err)
	}

	// Zero-amount sales are legal (giveaways, spoilage write-offs)
	if _, err := env.sales.RecordSale(seller.ID, dec("2"), dec("0"), model.Today()); err != nil {
		t.Errorf("zero amount sale: %v", err)
	}
}

func TestRecordDailyTotalsOverwrites(t *testing.T) {
	env := newTestEnv(t)
	location := env.newLocation(t, "North")
	seller := env.newSeller(t, "alice", location.ID)
	today := model.Today()

	first, err := env.sales.RecordDailyTotals(seller.ID, dec("300"), dec("200"), today)
	if err != nil {
		t.Fatalf("RecordDailyTotals: %v", err)
	}
	assertDecimal(t, "revenue", first.Revenue, "500")

	// Second write for the same day replaces, it does not accumulate
	second, err := env.sales.RecordDailyTotals(seller.ID, dec("350"), dec("250"), today)
	if err != nil {
		t.Fatalf("RecordDailyTotals overwrite: %v", err)
	}
	if second.ID != first.ID {
		t.Error("overwrite created a second row for the day")
	}
	assertDecimal(t, "revenue after overwrite", second.Revenue, "600")

	if _, err := env.sales.RecordDailyTotals(seller.ID, dec("-1"), dec("0"), today); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("negative cash: err = %v, want validation error", err)
	}
}

func TestNotificationMarkRead(t *testing.T) {
	env := newTestEnv(t)
	location := env.newLocation(t, "North")
	seller := env.newSeller(t, "alice", location.ID)
	other := env.newSeller(t, "bob", location.ID)

	if err := env.notifications.Notify(nil, seller.UserID, "hello"); err != nil {
		t.Fatalf("Notify: %v", err)
	}

	feed, err := env.notifications.List(seller.UserID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(feed) != 1 || feed[0].IsRead {
		t.Fatalf("feed = %+v, want one unread notification", feed)
	}

	// Another user cannot mark it read
	if err := env.notifications.MarkRead(feed[0].ID, other.UserID); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("foreign MarkRead: err = %v, want not found", err)
	}

	if err := env.notifications.MarkRead(feed[0].ID, seller.UserID); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	feed, _ = env.notifications.List(seller.UserID)
	if !feed[0].IsRead {
		t.Error("notification still unread")
	}
}

package service

import (
	"errors"
	"fmt"

	"go-dairy-ops/internal/model"
	"go-dairy-ops/internal/repository"
	"go-dairy-ops/pkg/apperr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransferService governs the inter-seller milk request lifecycle:
// pending -> on_hold -> received, with pending -> rejected as the bail-out.
// Every transition is a conditional update on the status column so concurrent
// callers cannot both win the same transition.
type TransferService interface {
	Create(fromSellerID uuid.UUID, quantity decimal.Decimal) (*model.MilkRequest, error)
	Accept(requestID, acceptorID uuid.UUID) (*model.MilkRequest, error)
	MarkReceived(requestID, callerID uuid.UUID) (*model.MilkRequest, error)
	Reject(requestID, callerID uuid.UUID, isAdmin bool) (*model.MilkRequest, error)
	ListIncoming(sellerID uuid.UUID) ([]model.MilkRequest, error)
	ListMine(sellerID uuid.UUID) ([]model.MilkRequest, error)
	BorrowLendHistory(sellerID uuid.UUID) ([]model.BorrowLendEntry, error)
}

type transferService struct {
	db             *gorm.DB
	requestRepo    repository.MilkRequestRepository
	receiptRepo    repository.MilkReceiptRepository
	borrowLendRepo repository.BorrowLendRepository
	sellerRepo     repository.SellerRepository
	notifications  NotificationService
}

func NewTransferService(
	db *gorm.DB,
	requestRepo repository.MilkRequestRepository,
	receiptRepo repository.MilkReceiptRepository,
	borrowLendRepo repository.BorrowLendRepository,
	sellerRepo repository.SellerRepository,
	notifications NotificationService,
) TransferService {
	return &transferService{
		db:             db,
		requestRepo:    requestRepo,
		receiptRepo:    receiptRepo,
		borrowLendRepo: borrowLendRepo,
		sellerRepo:     sellerRepo,
		notifications:  notifications,
	}
}

func (s *transferService) Create(fromSellerID uuid.UUID, quantity decimal.Decimal) (*model.MilkRequest, error) {
	if !quantity.IsPositive() {
		return nil, apperr.Validation("quantity must be greater than zero")
	}

	requester, err := s.sellerRepo.FindByID(fromSellerID)
	if err != nil {
		return nil, apperr.NotFound("seller not found")
	}

	request := &model.MilkRequest{
		FromSellerID: fromSellerID,
		Quantity:     quantity,
		Status:       model.RequestPending,
	}
	if err := s.requestRepo.Create(request); err != nil {
		return nil, err
	}
	request.FromSeller = requester

	// Fan out to every other active seller so someone can pick it up
	sellers, err := s.sellerRepo.FindActive()
	if err == nil {
		message := fmt.Sprintf("New milk request from %s (%s). Quantity: %sL",
			requester.Name, locationName(requester), quantity.StringFixed(2))
		for _, seller := range sellers {
			if seller.ID == fromSellerID {
				continue
			}
			if nerr := s.notifications.Notify(nil, seller.UserID, message); nerr != nil {
				break
			}
		}
	}

	return request, nil
}

func (s *transferService) Accept(requestID, acceptorID uuid.UUID) (*model.MilkRequest, error) {
	acceptor, err := s.sellerRepo.FindByID(acceptorID)
	if err != nil {
		return nil, apperr.NotFound("seller not found")
	}

	var updated *model.MilkRequest
	err = s.db.Transaction(func(tx *gorm.DB) error {
		request, err := s.requestRepo.FindByIDTx(tx, requestID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("milk request not found")
		} else if err != nil {
			return err
		}

		next, ok := model.NextRequestStatus(request.Status, model.ActionAccept)
		if !ok {
			return apperr.Conflict("request already accepted or resolved")
		}

		// Compare-and-set: exactly one concurrent acceptor wins
		rows, err := s.requestRepo.TransitionStatus(tx, requestID, request.Status, next, map[string]interface{}{
			"to_seller_id": acceptorID,
		})
		if err != nil {
			return err
		}
		if rows == 0 {
			return apperr.Conflict("request already accepted or resolved")
		}

		// Accepting reserves intent; milk only moves on mark-received
		record := &model.BorrowLendRecord{
			BorrowerSellerID: request.FromSellerID,
			LenderSellerID:   acceptorID,
			Quantity:         request.Quantity,
			BorrowDate:       model.Today(),
			RequestID:        request.ID,
		}
		if err := s.borrowLendRepo.Create(tx, record); err != nil {
			return err
		}

		if request.FromSeller != nil {
			message := fmt.Sprintf(
				"Your milk request for %sL has been accepted by %s (%s). Please confirm receipt when you physically receive the milk.",
				request.Quantity.StringFixed(2), acceptor.Name, locationName(acceptor))
			if err := s.notifications.Notify(tx, request.FromSeller.UserID, message); err != nil {
				return err
			}
		}

		request.Status = next
		request.ToSellerID = &acceptorID
		request.ToSeller = acceptor
		updated = request
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *transferService) MarkReceived(requestID, callerID uuid.UUID) (*model.MilkRequest, error) {
	var updated *model.MilkRequest
	err := s.db.Transaction(func(tx *gorm.DB) error {
		request, err := s.requestRepo.FindByIDTx(tx, requestID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("milk request not found")
		} else if err != nil {
			return err
		}

		if request.FromSellerID != callerID {
			return apperr.Authorization("only the requesting seller can confirm receipt")
		}

		next, ok := model.NextRequestStatus(request.Status, model.ActionMarkReceived)
		if !ok {
			return apperr.Conflict("request is not awaiting receipt")
		}

		rows, err := s.requestRepo.TransitionStatus(tx, requestID, request.Status, next, nil)
		if err != nil {
			return err
		}
		if rows == 0 {
			return apperr.Conflict("request is not awaiting receipt")
		}

		// The only point the quantity is applied to the requester's daily
		// totals: one received inter-seller receipt for today.
		receipt := &model.MilkReceipt{
			SellerID: request.FromSellerID,
			Quantity: request.Quantity,
			Date:     model.Today(),
			Source:   model.SourceInterSeller,
			Status:   model.ReceiptReceived,
		}
		if err := s.receiptRepo.Create(tx, receipt); err != nil {
			return err
		}

		if err := s.borrowLendRepo.SettleByRequest(tx, request.ID); err != nil {
			return err
		}

		if request.ToSeller != nil && request.FromSeller != nil {
			message := fmt.Sprintf(
				"The milk you provided (%sL) has been received by %s (%s). Transaction completed.",
				request.Quantity.StringFixed(2), request.FromSeller.Name, locationName(request.FromSeller))
			if err := s.notifications.Notify(tx, request.ToSeller.UserID, message); err != nil {
				return err
			}
		}

		request.Status = next
		updated = request
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *transferService) Reject(requestID, callerID uuid.UUID, isAdmin bool) (*model.MilkRequest, error) {
	var updated *model.MilkRequest
	err := s.db.Transaction(func(tx *gorm.DB) error {
		request, err := s.requestRepo.FindByIDTx(tx, requestID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("milk request not found")
		} else if err != nil {
			return err
		}

		if !isAdmin && request.FromSellerID != callerID {
			return apperr.Authorization("only the requesting seller can withdraw a request")
		}

		next, ok := model.NextRequestStatus(request.Status, model.ActionReject)
		if !ok {
			return apperr.Conflict("request already accepted or resolved")
		}

		rows, err := s.requestRepo.TransitionStatus(tx, requestID, request.Status, next, nil)
		if err != nil {
			return err
		}
		if rows == 0 {
			return apperr.Conflict("request already accepted or resolved")
		}

		request.Status = next
		updated = request
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *transferService) ListIncoming(sellerID uuid.UUID) ([]model.MilkRequest, error) {
	return s.requestRepo.ListPendingExcluding(sellerID)
}

func (s *transferService) ListMine(sellerID uuid.UUID) ([]model.MilkRequest, error) {
	return s.requestRepo.ListByRequester(sellerID)
}

// BorrowLendHistory resolves each record's direction from the seller's point
// of view for display.
func (s *transferService) BorrowLendHistory(sellerID uuid.UUID) ([]model.BorrowLendEntry, error) {
	records, err := s.borrowLendRepo.ListBySeller(sellerID)
	if err != nil {
		return nil, err
	}

	entries := make([]model.BorrowLendEntry, 0, len(records))
	for _, record := range records {
		entry := model.BorrowLendEntry{
			Date:     model.FormatDate(record.BorrowDate),
			Quantity: record.Quantity,
			Status:   "Pending",
		}
		if record.Settled {
			entry.Status = "Settled"
		}
		if record.BorrowerSellerID == sellerID {
			entry.Type = "Borrowed"
			if record.LenderSeller != nil {
				entry.OtherParty = record.LenderSeller.Name
			}
		} else {
			entry.Type = "Lent"
			if record.BorrowerSeller != nil {
				entry.OtherParty = record.BorrowerSeller.Name
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func locationName(seller *model.Seller) string {
	if seller.Location != nil {
		return seller.Location.Name
	}
	return ""
}

package service

import (
	"errors"
	"fmt"
	"time"

	"go-dairy-ops/internal/model"
	"go-dairy-ops/internal/repository"
	"go-dairy-ops/pkg/apperr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DistributionService governs manager-to-seller milk deliveries and the
// seller's acknowledgement of them. A receipt is terminal once received;
// not_received stays retryable so the manager can resolve disputes.
type DistributionService interface {
	RecordDistribution(managerID, sellerID uuid.UUID, quantity decimal.Decimal, date time.Time) (*model.MilkReceipt, error)
	DistributeToLocation(managerID, locationID uuid.UUID, quantity decimal.Decimal, date time.Time) ([]model.MilkReceipt, error)
	UpdateStatus(receiptID uuid.UUID, newStatus model.ReceiptStatus, callerSellerID uuid.UUID) (*model.MilkReceipt, error)
	ListOutstanding(sellerID uuid.UUID) ([]model.MilkReceipt, error)
	ListManagerPending(managerID uuid.UUID) ([]model.MilkReceipt, error)
}

type distributionService struct {
	db            *gorm.DB
	receiptRepo   repository.MilkReceiptRepository
	sellerRepo    repository.SellerRepository
	managerRepo   repository.ManagerRepository
	opsRepo       repository.OperationsRepository
	notifications NotificationService
}

func NewDistributionService(
	db *gorm.DB,
	receiptRepo repository.MilkReceiptRepository,
	sellerRepo repository.SellerRepository,
	managerRepo repository.ManagerRepository,
	opsRepo repository.OperationsRepository,
	notifications NotificationService,
) DistributionService {
	return &distributionService{
		db:            db,
		receiptRepo:   receiptRepo,
		sellerRepo:    sellerRepo,
		managerRepo:   managerRepo,
		opsRepo:       opsRepo,
		notifications: notifications,
	}
}

func (s *distributionService) RecordDistribution(managerID, sellerID uuid.UUID, quantity decimal.Decimal, date time.Time) (*model.MilkReceipt, error) {
	if !quantity.IsPositive() {
		return nil, apperr.Validation("quantity must be greater than zero")
	}

	manager, err := s.managerRepo.FindByID(managerID)
	if err != nil {
		return nil, apperr.NotFound("manager not found")
	}
	seller, err := s.sellerRepo.FindByID(sellerID)
	if err != nil {
		return nil, apperr.NotFound("seller not found")
	}

	receipt := &model.MilkReceipt{
		SellerID:  sellerID,
		ManagerID: &managerID,
		Quantity:  quantity,
		Date:      date,
		Source:    model.SourceFarm,
		Status:    model.ReceiptPending,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.receiptRepo.Create(tx, receipt); err != nil {
			return err
		}
		message := fmt.Sprintf("You have a pending milk delivery of %sL from your manager for %s.",
			quantity.StringFixed(2), model.FormatDate(date))
		return s.notifications.Notify(tx, seller.UserID, message)
	})
	if err != nil {
		return nil, err
	}

	s.refreshDistributionTotals(manager.ID, date)
	receipt.Seller = seller
	receipt.Manager = manager
	return receipt, nil
}

// DistributeToLocation splits a quantity evenly over the location's active
// sellers, one pending receipt each.
func (s *distributionService) DistributeToLocation(managerID, locationID uuid.UUID, quantity decimal.Decimal, date time.Time) ([]model.MilkReceipt, error) {
	if !quantity.IsPositive() {
		return nil, apperr.Validation("quantity must be greater than zero")
	}

	manager, err := s.managerRepo.FindByID(managerID)
	if err != nil {
		return nil, apperr.NotFound("manager not found")
	}

	sellers, err := s.sellerRepo.FindActiveByLocation(locationID)
	if err != nil {
		return nil, err
	}
	if len(sellers) == 0 {
		return nil, apperr.Validation("no active sellers in this location")
	}

	perSeller := quantity.Div(decimal.NewFromInt(int64(len(sellers)))).Round(2)
	message := fmt.Sprintf("You have a pending milk delivery of %sL from your manager for %s.",
		perSeller.StringFixed(2), model.FormatDate(date))

	receipts := make([]model.MilkReceipt, 0, len(sellers))
	err = s.db.Transaction(func(tx *gorm.DB) error {
		for _, seller := range sellers {
			receipt := model.MilkReceipt{
				SellerID:  seller.ID,
				ManagerID: &managerID,
				Quantity:  perSeller,
				Date:      date,
				Source:    model.SourceFarm,
				Status:    model.ReceiptPending,
			}
			if err := s.receiptRepo.Create(tx, &receipt); err != nil {
				return err
			}
			if err := s.notifications.Notify(tx, seller.UserID, message); err != nil {
				return err
			}
			receipts = append(receipts, receipt)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.refreshDistributionTotals(manager.ID, date)
	return receipts, nil
}

func (s *distributionService) UpdateStatus(receiptID uuid.UUID, newStatus model.ReceiptStatus, callerSellerID uuid.UUID) (*model.MilkReceipt, error) {
	if newStatus != model.ReceiptReceived && newStatus != model.ReceiptNotReceived {
		return nil, apperr.Validation("status must be received or not_received")
	}

	receipt, err := s.receiptRepo.FindByID(receiptID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("milk receipt not found")
	} else if err != nil {
		return nil, err
	}

	if receipt.SellerID != callerSellerID {
		return nil, apperr.Authorization("only the receiving seller can update this receipt")
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		// Terminal once received; guards against double-crediting the day
		rows, err := s.receiptRepo.Acknowledge(tx, receiptID, newStatus)
		if err != nil {
			return err
		}
		if rows == 0 {
			return apperr.Conflict("receipt already confirmed as received")
		}

		if receipt.Manager != nil {
			var message string
			if newStatus == model.ReceiptReceived {
				message = fmt.Sprintf("Seller %s has confirmed receipt of %sL for %s.",
					sellerName(receipt), receipt.Quantity.StringFixed(2), model.FormatDate(receipt.Date))
			} else {
				message = fmt.Sprintf("Seller %s has marked the distribution of %sL for %s as 'Not Received'.",
					sellerName(receipt), receipt.Quantity.StringFixed(2), model.FormatDate(receipt.Date))
			}
			if err := s.notifications.Notify(tx, receipt.Manager.UserID, message); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if newStatus == model.ReceiptReceived && receipt.ManagerID != nil {
		s.refreshDistributionTotals(*receipt.ManagerID, receipt.Date)
	}

	receipt.Status = newStatus
	return receipt, nil
}

func (s *distributionService) ListOutstanding(sellerID uuid.UUID) ([]model.MilkReceipt, error) {
	return s.receiptRepo.ListOutstanding(sellerID)
}

func (s *distributionService) ListManagerPending(managerID uuid.UUID) ([]model.MilkReceipt, error) {
	return s.receiptRepo.ListPendingByManager(managerID)
}

// refreshDistributionTotals recomputes the manager's day sheet total from the
// receipt ledger. Best effort: the receipt itself is already committed.
func (s *distributionService) refreshDistributionTotals(managerID uuid.UUID, date time.Time) {
	ops, err := s.opsRepo.GetOrCreate(managerID, date)
	if err != nil {
		return
	}
	day, err := s.opsRepo.GetOrCreateDistributionDay(ops.ID, date)
	if err != nil {
		return
	}
	total, err := s.receiptRepo.SumForDate(date)
	if err != nil {
		return
	}
	day.TotalMilk = total
	_ = s.opsRepo.SaveDistributionDay(day)
}

func sellerName(receipt *model.MilkReceipt) string {
	if receipt.Seller != nil {
		return receipt.Seller.Name
	}
	return receipt.SellerID.String()
}

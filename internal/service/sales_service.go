package service

import (
	"time"

	"go-dairy-ops/internal/model"
	"go-dairy-ops/internal/repository"
	"go-dairy-ops/pkg/apperr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SalesService interface {
	RecordSale(sellerID uuid.UUID, quantity, totalAmount decimal.Decimal, date time.Time) (*model.Sale, error)
	RecordDailyTotals(sellerID uuid.UUID, cash, online decimal.Decimal, date time.Time) (*model.DailyTotal, error)
}

type salesService struct {
	saleRepo       repository.SaleRepository
	dailyTotalRepo repository.DailyTotalRepository
	sellerRepo     repository.SellerRepository
}

func NewSalesService(
	saleRepo repository.SaleRepository,
	dailyTotalRepo repository.DailyTotalRepository,
	sellerRepo repository.SellerRepository,
) SalesService {
	return &salesService{
		saleRepo:       saleRepo,
		dailyTotalRepo: dailyTotalRepo,
		sellerRepo:     sellerRepo,
	}
}

func (s *salesService) RecordSale(sellerID uuid.UUID, quantity, totalAmount decimal.Decimal, date time.Time) (*model.Sale, error) {
	if !quantity.IsPositive() {
		return nil, apperr.Validation("quantity must be greater than zero")
	}
	if totalAmount.IsNegative() {
		return nil, apperr.Validation("total amount cannot be negative")
	}
	if _, err := s.sellerRepo.FindByID(sellerID); err != nil {
		return nil, apperr.NotFound("seller not found")
	}

	sale := &model.Sale{
		SellerID:    sellerID,
		Date:        date,
		Quantity:    quantity,
		TotalAmount: totalAmount,
	}
	if err := s.saleRepo.Create(sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// RecordDailyTotals overwrites the day's cash and online figures. The two
// payment buckets are independent of the per-sale lines; revenue is derived.
func (s *salesService) RecordDailyTotals(sellerID uuid.UUID, cash, online decimal.Decimal, date time.Time) (*model.DailyTotal, error) {
	if cash.IsNegative() || online.IsNegative() {
		return nil, apperr.Validation("sales figures cannot be negative")
	}
	if _, err := s.sellerRepo.FindByID(sellerID); err != nil {
		return nil, apperr.NotFound("seller not found")
	}
	return s.dailyTotalRepo.Upsert(sellerID, date, cash, online)
}

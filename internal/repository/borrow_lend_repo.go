package repository

import (
	"time"

	"go-dairy-ops/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BorrowLendRepository interface {
	Create(tx *gorm.DB, record *model.BorrowLendRecord) error
	SettleByRequest(tx *gorm.DB, requestID uuid.UUID) error
	ListBySeller(sellerID uuid.UUID) ([]model.BorrowLendRecord, error)
	SumUnsettledLent(lenderID uuid.UUID, date *time.Time) (decimal.Decimal, error)
}

type borrowLendRepo struct {
	db *gorm.DB
}

func NewBorrowLendRepo(db *gorm.DB) BorrowLendRepository {
	return &borrowLendRepo{db}
}

func (r *borrowLendRepo) Create(tx *gorm.DB, record *model.BorrowLendRecord) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(record).Error
}

func (r *borrowLendRepo) SettleByRequest(tx *gorm.DB, requestID uuid.UUID) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Model(&model.BorrowLendRecord{}).
		Where("request_id = ? AND settled = ?", requestID, false).
		Update("settled", true).Error
}

func (r *borrowLendRepo) ListBySeller(sellerID uuid.UUID) ([]model.BorrowLendRecord, error) {
	var records []model.BorrowLendRecord
	err := r.db.Preload("BorrowerSeller").Preload("LenderSeller").
		Where("borrower_seller_id = ? OR lender_seller_id = ?", sellerID, sellerID).
		Order("borrow_date DESC").
		Find(&records).Error
	return records, err
}

func (r *borrowLendRepo) SumUnsettledLent(lenderID uuid.UUID, date *time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	q := r.db.Model(&model.BorrowLendRecord{}).
		Where("lender_seller_id = ? AND settled = ?", lenderID, false)
	if date != nil {
		q = q.Where("borrow_date = ?", *date)
	}
	err := q.Select("COALESCE(SUM(quantity), 0)").Scan(&total).Error
	return total, err
}

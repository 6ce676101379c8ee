package repository

import (
	"time"

	"go-dairy-ops/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SaleRepository interface {
	Create(sale *model.Sale) error
	ListBySellerDate(sellerID uuid.UUID, date time.Time) ([]model.Sale, error)
	SumQuantity(sellerID uuid.UUID, date time.Time) (decimal.Decimal, error)
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db}
}

func (r *saleRepo) Create(sale *model.Sale) error {
	return r.db.Create(sale).Error
}

// ListBySellerDate returns the day's sale lines oldest first, for audit display
func (r *saleRepo) ListBySellerDate(sellerID uuid.UUID, date time.Time) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.Where("seller_id = ? AND date = ?", sellerID, date).
		Order("created_at ASC").
		Find(&sales).Error
	return sales, err
}

func (r *saleRepo) SumQuantity(sellerID uuid.UUID, date time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.Model(&model.Sale{}).
		Where("seller_id = ? AND date = ?", sellerID, date).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	return total, err
}

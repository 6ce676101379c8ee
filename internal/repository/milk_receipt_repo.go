package repository

import (
	"time"

	"go-dairy-ops/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MilkReceiptRepository interface {
	Create(tx *gorm.DB, receipt *model.MilkReceipt) error
	FindByID(id uuid.UUID) (*model.MilkReceipt, error)
	// Acknowledge conditionally moves a receipt to newStatus unless it has
	// already reached the terminal received state. Zero rows affected means
	// the receipt was already settled (or missing).
	Acknowledge(tx *gorm.DB, id uuid.UUID, newStatus model.ReceiptStatus) (int64, error)
	ListOutstanding(sellerID uuid.UUID) ([]model.MilkReceipt, error)
	ListPendingByManager(managerID uuid.UUID) ([]model.MilkReceipt, error)
	SumReceived(sellerID uuid.UUID, date time.Time) (decimal.Decimal, error)
	SumReceivedBySource(sellerID uuid.UUID, date time.Time, source model.MilkSource) (decimal.Decimal, error)
	SumForDate(date time.Time) (decimal.Decimal, error)
	SumByLocation(locationID uuid.UUID, date time.Time, source *model.MilkSource) (decimal.Decimal, error)
	DailySeries(startDate, endDate time.Time) ([]DailySeriesPoint, error)
}

// DailySeriesPoint is one bucket of a date-grouped aggregate for chart data
type DailySeriesPoint struct {
	Date  string          `json:"date"`
	Value decimal.Decimal `json:"value"`
}

type milkReceiptRepo struct {
	db *gorm.DB
}

func NewMilkReceiptRepo(db *gorm.DB) MilkReceiptRepository {
	return &milkReceiptRepo{db}
}

func (r *milkReceiptRepo) Create(tx *gorm.DB, receipt *model.MilkReceipt) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(receipt).Error
}

func (r *milkReceiptRepo) FindByID(id uuid.UUID) (*model.MilkReceipt, error) {
	var receipt model.MilkReceipt
	err := r.db.Preload("Seller").Preload("Manager").First(&receipt, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

func (r *milkReceiptRepo) Acknowledge(tx *gorm.DB, id uuid.UUID, newStatus model.ReceiptStatus) (int64, error) {
	if tx == nil {
		tx = r.db
	}
	res := tx.Model(&model.MilkReceipt{}).
		Where("id = ? AND status <> ?", id, model.ReceiptReceived).
		Update("status", newStatus)
	return res.RowsAffected, res.Error
}

func (r *milkReceiptRepo) ListOutstanding(sellerID uuid.UUID) ([]model.MilkReceipt, error) {
	var receipts []model.MilkReceipt
	err := r.db.Preload("Manager").
		Where("seller_id = ? AND status IN ?", sellerID, []model.ReceiptStatus{model.ReceiptPending, model.ReceiptNotReceived}).
		Order("date DESC").
		Find(&receipts).Error
	return receipts, err
}

func (r *milkReceiptRepo) ListPendingByManager(managerID uuid.UUID) ([]model.MilkReceipt, error) {
	var receipts []model.MilkReceipt
	err := r.db.Preload("Seller").Preload("Seller.Location").
		Where("manager_id = ? AND status = ?", managerID, model.ReceiptPending).
		Order("date DESC").
		Find(&receipts).Error
	return receipts, err
}

func (r *milkReceiptRepo) SumReceived(sellerID uuid.UUID, date time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.Model(&model.MilkReceipt{}).
		Where("seller_id = ? AND date = ? AND status = ?", sellerID, date, model.ReceiptReceived).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	return total, err
}

func (r *milkReceiptRepo) SumReceivedBySource(sellerID uuid.UUID, date time.Time, source model.MilkSource) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.Model(&model.MilkReceipt{}).
		Where("seller_id = ? AND date = ? AND status = ? AND source = ?", sellerID, date, model.ReceiptReceived, source).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	return total, err
}

func (r *milkReceiptRepo) SumForDate(date time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.Model(&model.MilkReceipt{}).
		Where("date = ?", date).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	return total, err
}

func (r *milkReceiptRepo) SumByLocation(locationID uuid.UUID, date time.Time, source *model.MilkSource) (decimal.Decimal, error) {
	var total decimal.Decimal
	q := r.db.Model(&model.MilkReceipt{}).
		Joins("JOIN sellers ON sellers.id = milk_receipts.seller_id").
		Where("sellers.location_id = ? AND milk_receipts.date = ?", locationID, date)
	if source != nil {
		q = q.Where("milk_receipts.source = ?", *source)
	}
	err := q.Select("COALESCE(SUM(milk_receipts.quantity), 0)").Scan(&total).Error
	return total, err
}

func (r *milkReceiptRepo) DailySeries(startDate, endDate time.Time) ([]DailySeriesPoint, error) {
	rows, err := r.db.Model(&model.MilkReceipt{}).
		Select("DATE(date) as date, COALESCE(SUM(quantity), 0) as value").
		Where("date BETWEEN ? AND ?", startDate, endDate).
		Group("DATE(date)").
		Order("date ASC").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSeries(rows)
}

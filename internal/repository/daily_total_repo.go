package repository

import (
	"errors"
	"time"

	"go-dairy-ops/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DailyTotalRepository interface {
	Upsert(sellerID uuid.UUID, date time.Time, cash, online decimal.Decimal) (*model.DailyTotal, error)
	Find(sellerID uuid.UUID, date time.Time) (*model.DailyTotal, error)
	RevenueSeries(startDate, endDate time.Time) ([]DailySeriesPoint, error)
}

type dailyTotalRepo struct {
	db *gorm.DB
}

func NewDailyTotalRepo(db *gorm.DB) DailyTotalRepository {
	return &dailyTotalRepo{db}
}

// Upsert writes the day's cash/online figures. Revenue is always recomputed as
// cash + online, never taken from the caller.
func (r *dailyTotalRepo) Upsert(sellerID uuid.UUID, date time.Time, cash, online decimal.Decimal) (*model.DailyTotal, error) {
	var total model.DailyTotal
	err := r.db.Where("seller_id = ? AND date = ?", sellerID, date).First(&total).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		total = model.DailyTotal{SellerID: sellerID, Date: date}
	} else if err != nil {
		return nil, err
	}

	total.CashSales = cash
	total.OnlineSales = online
	total.Revenue = cash.Add(online)

	if err := r.db.Save(&total).Error; err != nil {
		return nil, err
	}
	return &total, nil
}

func (r *dailyTotalRepo) Find(sellerID uuid.UUID, date time.Time) (*model.DailyTotal, error) {
	var total model.DailyTotal
	err := r.db.Where("seller_id = ? AND date = ?", sellerID, date).First(&total).Error
	if err != nil {
		return nil, err
	}
	return &total, nil
}

func (r *dailyTotalRepo) RevenueSeries(startDate, endDate time.Time) ([]DailySeriesPoint, error) {
	rows, err := r.db.Model(&model.DailyTotal{}).
		Select("DATE(date) as date, COALESCE(SUM(revenue), 0) as value").
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

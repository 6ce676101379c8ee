package repository

import (
	"errors"
	"time"

	"go-dairy-ops/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OperationsRepository interface {
	GetOrCreate(managerID uuid.UUID, date time.Time) (*model.DailyOperation, error)
	FindWithRecords(managerID uuid.UUID, date time.Time) (*model.DailyOperation, error)

	SaveFeed(record *model.FeedRecord) error
	FindFeed(id, operationID uuid.UUID) (*model.FeedRecord, error)
	SaveExpense(record *model.ExpenseRecord) error
	FindExpense(id, operationID uuid.UUID) (*model.ExpenseRecord, error)
	SaveMedicine(record *model.MedicineRecord) error
	FindMedicine(id, operationID uuid.UUID) (*model.MedicineRecord, error)

	GetOrCreateDistributionDay(operationID uuid.UUID, date time.Time) (*model.MilkDistributionDay, error)
	SaveDistributionDay(day *model.MilkDistributionDay) error

	ExpenseSeries(managerID uuid.UUID, startDate, endDate time.Time) ([]DailySeriesPoint, error)
	LeftoverSalesSeries(managerID uuid.UUID, startDate, endDate time.Time) ([]DailySeriesPoint, error)
	SumExpenses(managerID uuid.UUID, date time.Time) (decimal.Decimal, error)
}

type operationsRepo struct {
	db *gorm.DB
}

func NewOperationsRepo(db *gorm.DB) OperationsRepository {
	return &operationsRepo{db}
}

func (r *operationsRepo) GetOrCreate(managerID uuid.UUID, date time.Time) (*model.DailyOperation, error) {
	var ops model.DailyOperation
	err := r.db.Where("manager_id = ? AND date = ?", managerID, date).First(&ops).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		ops = model.DailyOperation{ManagerID: managerID, Date: date}
		if err := r.db.Create(&ops).Error; err != nil {
			return nil, err
		}
		return &ops, nil
	}
	if err != nil {
		return nil, err
	}
	return &ops, nil
}

func (r *operationsRepo) FindWithRecords(managerID uuid.UUID, date time.Time) (*model.DailyOperation, error) {
	var ops model.DailyOperation
	err := r.db.Preload("FeedRecords").Preload("ExpenseRecords").Preload("MedicineRecords").
		Where("manager_id = ? AND date = ?", managerID, date).First(&ops).Error
	if err != nil {
		return nil, err
	}
	return &ops, nil
}

func (r *operationsRepo) SaveFeed(record *model.FeedRecord) error {
	return r.db.Save(record).Error
}

func (r *operationsRepo) FindFeed(id, operationID uuid.UUID) (*model.FeedRecord, error) {
	var record model.FeedRecord
	err := r.db.First(&record, "id = ? AND operation_id = ?", id, operationID).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *operationsRepo) SaveExpense(record *model.ExpenseRecord) error {
	return r.db.Save(record).Error
}

func (r *operationsRepo) FindExpense(id, operationID uuid.UUID) (*model.ExpenseRecord, error) {
	var record model.ExpenseRecord
	err := r.db.First(&record, "id = ? AND operation_id = ?", id, operationID).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *operationsRepo) SaveMedicine(record *model.MedicineRecord) error {
	return r.db.Save(record).Error
}

func (r *operationsRepo) FindMedicine(id, operationID uuid.UUID) (*model.MedicineRecord, error) {
	var record model.MedicineRecord
	err := r.db.First(&record, "id = ? AND operation_id = ?", id, operationID).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *operationsRepo) GetOrCreateDistributionDay(operationID uuid.UUID, date time.Time) (*model.MilkDistributionDay, error) {
	var day model.MilkDistributionDay
	err := r.db.Where("operation_id = ?", operationID).First(&day).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		day = model.MilkDistributionDay{OperationID: operationID, Date: date}
		if err := r.db.Create(&day).Error; err != nil {
			return nil, err
		}
		return &day, nil
	}
	if err != nil {
		return nil, err
	}
	return &day, nil
}

func (r *operationsRepo) SaveDistributionDay(day *model.MilkDistributionDay) error {
	return r.db.Save(day).Error
}

func (r *operationsRepo) ExpenseSeries(managerID uuid.UUID, startDate, endDate time.Time) ([]DailySeriesPoint, error) {
	rows, err := r.db.Model(&model.ExpenseRecord{}).
		Select("DATE(expense_records.date) as date, COALESCE(SUM(expense_records.amount), 0) as value").
		Joins("JOIN daily_operations ON daily_operations.id = expense_records.operation_id").
		Where("daily_operations.manager_id = ? AND expense_records.date BETWEEN ? AND ?", managerID, startDate, endDate).
		Group("DATE(expense_records.date)").
		Order("date ASC").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSeries(rows)
}

func (r *operationsRepo) LeftoverSalesSeries(managerID uuid.UUID, startDate, endDate time.Time) ([]DailySeriesPoint, error) {
	rows, err := r.db.Model(&model.MilkDistributionDay{}).
		Select("DATE(milk_distribution_days.date) as date, COALESCE(SUM(milk_distribution_days.leftover_sales), 0) as value").
		Joins("JOIN daily_operations ON daily_operations.id = milk_distribution_days.operation_id").
		Where("daily_operations.manager_id = ? AND milk_distribution_days.date BETWEEN ? AND ?", managerID, startDate, endDate).
		Group("DATE(milk_distribution_days.date)").
		Order("date ASC").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSeries(rows)
}

func (r *operationsRepo) SumExpenses(managerID uuid.UUID, date time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.Model(&model.ExpenseRecord{}).
		Joins("JOIN daily_operations ON daily_operations.id = expense_records.operation_id").
		Where("daily_operations.manager_id = ? AND expense_records.date = ?", managerID, date).
		Select("COALESCE(SUM(expense_records.amount), 0)").
		Scan(&total).Error
	return total, err
}

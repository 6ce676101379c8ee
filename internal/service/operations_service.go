package service

import (
	"errors"
	"time"

	"go-dairy-ops/internal/model"
	"go-dairy-ops/internal/repository"
	"go-dairy-ops/pkg/apperr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OperationsService maintains a manager's day sheet: feed, expense and
// medicine records plus the milk leftover figures. Each record type is
// created fresh or updated in place when an id is supplied.
type OperationsService interface {
	SaveFeed(managerID uuid.UUID, recordID *uuid.UUID, date time.Time, feedType string, quantity, cost decimal.Decimal) (*model.FeedRecord, error)
	SaveExpense(managerID uuid.UUID, recordID *uuid.UUID, date time.Time, category string, amount decimal.Decimal) (*model.ExpenseRecord, error)
	SaveMedicine(managerID uuid.UUID, recordID *uuid.UUID, date time.Time, medicineName string, cost decimal.Decimal) (*model.MedicineRecord, error)
	UpdateLeftover(managerID uuid.UUID, date time.Time, leftoverMilk, leftoverSales decimal.Decimal) (*model.MilkDistributionDay, error)
	GetDailyData(managerID uuid.UUID, date time.Time) (*DailyOperationData, error)
}

// DailyOperationData is the manager's full day sheet in one payload
type DailyOperationData struct {
	Date            string                     `json:"date"`
	FeedRecords     []model.FeedRecord         `json:"feed_records"`
	ExpenseRecords  []model.ExpenseRecord      `json:"expense_records"`
	MedicineRecords []model.MedicineRecord     `json:"medicine_records"`
	Distribution    *model.MilkDistributionDay `json:"distribution"`
	TotalExpenses   decimal.Decimal            `json:"total_expenses"`
}

type operationsService struct {
	opsRepo     repository.OperationsRepository
	managerRepo repository.ManagerRepository
}

func NewOperationsService(opsRepo repository.OperationsRepository, managerRepo repository.ManagerRepository) OperationsService {
	return &operationsService{opsRepo: opsRepo, managerRepo: managerRepo}
}

func (s *operationsService) dayFor(managerID uuid.UUID, date time.Time) (*model.DailyOperation, error) {
	if _, err := s.managerRepo.FindByID(managerID); err != nil {
		return nil, apperr.NotFound("manager not found")
	}
	return s.opsRepo.GetOrCreate(managerID, date)
}

func (s *operationsService) SaveFeed(managerID uuid.UUID, recordID *uuid.UUID, date time.Time, feedType string, quantity, cost decimal.Decimal) (*model.FeedRecord, error) {
	if feedType == "" {
		return nil, apperr.Validation("feed type is required")
	}
	if !quantity.IsPositive() {
		return nil, apperr.Validation("quantity must be greater than zero")
	}

	ops, err := s.dayFor(managerID, date)
	if err != nil {
		return nil, err
	}

	record := &model.FeedRecord{}
	if recordID != nil {
		record, err = s.opsRepo.FindFeed(*recordID, ops.ID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("feed record not found")
		} else if err != nil {
			return nil, err
		}
	}

	record.Date = date
	record.FeedType = feedType
	record.Quantity = quantity
	record.Cost = cost
	record.OperationID = ops.ID
	if err := s.opsRepo.SaveFeed(record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *operationsService) SaveExpense(managerID uuid.UUID, recordID *uuid.UUID, date time.Time, category string, amount decimal.Decimal) (*model.ExpenseRecord, error) {
	if category == "" {
		return nil, apperr.Validation("category is required")
	}
	if !amount.IsPositive() {
		return nil, apperr.Validation("amount must be greater than zero")
	}

	ops, err := s.dayFor(managerID, date)
	if err != nil {
		return nil, err
	}

	record := &model.ExpenseRecord{}
	if recordID != nil {
		record, err = s.opsRepo.FindExpense(*recordID, ops.ID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("expense record not found")
		} else if err != nil {
			return nil, err
		}
	}

	record.Date = date
	record.Category = category
	record.Amount = amount
	record.OperationID = ops.ID
	if err := s.opsRepo.SaveExpense(record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *operationsService) SaveMedicine(managerID uuid.UUID, recordID *uuid.UUID, date time.Time, medicineName string, cost decimal.Decimal) (*model.MedicineRecord, error) {
	if medicineName == "" {
		return nil, apperr.Validation("medicine name is required")
	}
	if !cost.IsPositive() {
		return nil, apperr.Validation("cost must be greater than zero")
	}

	ops, err := s.dayFor(managerID, date)
	if err != nil {
		return nil, err
	}

	record := &model.MedicineRecord{}
	if recordID != nil {
		record, err = s.opsRepo.FindMedicine(*recordID, ops.ID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("medicine record not found")
		} else if err != nil {
			return nil, err
		}
	}

	record.Date = date
	record.MedicineName = medicineName
	record.Cost = cost
	record.OperationID = ops.ID
	if err := s.opsRepo.SaveMedicine(record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *operationsService) UpdateLeftover(managerID uuid.UUID, date time.Time, leftoverMilk, leftoverSales decimal.Decimal) (*model.MilkDistributionDay, error) {
	if leftoverMilk.IsNegative() || leftoverSales.IsNegative() {
		return nil, apperr.Validation("leftover figures cannot be negative")
	}

	ops, err := s.dayFor(managerID, date)
	if err != nil {
		return nil, err
	}
	day, err := s.opsRepo.GetOrCreateDistributionDay(ops.ID, date)
	if err != nil {
		return nil, err
	}

	day.LeftoverMilk = leftoverMilk
	day.LeftoverSales = leftoverSales
	if err := s.opsRepo.SaveDistributionDay(day); err != nil {
		return nil, err
	}
	return day, nil
}

func (s *operationsService) GetDailyData(managerID uuid.UUID, date time.Time) (*DailyOperationData, error) {
	if _, err := s.managerRepo.FindByID(managerID); err != nil {
		return nil, apperr.NotFound("manager not found")
	}

	data := &DailyOperationData{
		Date:            model.FormatDate(date),
		FeedRecords:     []model.FeedRecord{},
		ExpenseRecords:  []model.ExpenseRecord{},
		MedicineRecords: []model.MedicineRecord{},
	}

	ops, err := s.opsRepo.FindWithRecords(managerID, date)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// No day sheet yet; an empty payload is the answer
		return data, nil
	} else if err != nil {
		return nil, err
	}

	data.FeedRecords = ops.FeedRecords
	data.ExpenseRecords = ops.ExpenseRecords
	data.MedicineRecords = ops.MedicineRecords

	day, err := s.opsRepo.GetOrCreateDistributionDay(ops.ID, date)
	if err != nil {
		return nil, err
	}
	data.Distribution = day

	total, err := s.opsRepo.SumExpenses(managerID, date)
	if err != nil {
		return nil, err
	}
	data.TotalExpenses = total

	return data, nil
}

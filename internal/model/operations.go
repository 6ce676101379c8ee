package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DailyOperation is the header row a manager's production and expense records
// hang off, one per manager per date.
type DailyOperation struct {
	BaseModel
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:idx_ops_manager_date" json:"date"`
	ManagerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ops_manager_date" json:"manager_id"`
	Manager   *Manager  `gorm:"foreignKey:ManagerID" json:"manager,omitempty"`

	FeedRecords     []FeedRecord     `gorm:"foreignKey:OperationID" json:"feed_records,omitempty"`
	ExpenseRecords  []ExpenseRecord  `gorm:"foreignKey:OperationID" json:"expense_records,omitempty"`
	MedicineRecords []MedicineRecord `gorm:"foreignKey:OperationID" json:"medicine_records,omitempty"`
}

func (DailyOperation) TableName() string {
	return "daily_operations"
}

// FeedRecord is one cattle feed purchase for the day
type FeedRecord struct {
	BaseModel
	Date        time.Time       `gorm:"type:date;not null" json:"date"`
	FeedType    string          `gorm:"type:varchar(255);not null" json:"feed_type" validate:"required"`
	Quantity    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"quantity" validate:"dgt0"`
	Cost        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"cost"`
	OperationID uuid.UUID       `gorm:"type:uuid;not null;index" json:"operation_id"`
}

func (FeedRecord) TableName() string {
	return "feed_records"
}

// ExpenseRecord is one categorized expense for the day
type ExpenseRecord struct {
	BaseModel
	Date        time.Time       `gorm:"type:date;not null;index" json:"date"`
	Category    string          `gorm:"type:varchar(255);not null" json:"category" validate:"required"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount" validate:"dgt0"`
	OperationID uuid.UUID       `gorm:"type:uuid;not null;index" json:"operation_id"`
}

func (ExpenseRecord) TableName() string {
	return "expense_records"
}

// MedicineRecord is one veterinary medicine purchase for the day
type MedicineRecord struct {
	BaseModel
	Date         time.Time       `gorm:"type:date;not null" json:"date"`
	MedicineName string          `gorm:"type:varchar(255);not null" json:"medicine_name" validate:"required"`
	Cost         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"cost" validate:"dgt0"`
	OperationID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"operation_id"`
}

func (MedicineRecord) TableName() string {
	return "medicine_records"
}

// MilkDistributionDay summarizes a manager's milk movement for one day.
// TotalMilk is recomputed from receipts whenever a distribution lands or is
// acknowledged; leftover figures are entered by the manager.
type MilkDistributionDay struct {
	BaseModel
	Date          time.Time       `gorm:"type:date;not null;index" json:"date"`
	TotalMilk     decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"total_milk"`
	LeftoverMilk  decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"leftover_milk"`
	LeftoverSales decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"leftover_sales"`
	OperationID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex" json:"operation_id"`
}

func (MilkDistributionDay) TableName() string {
	return "milk_distribution_days"
}

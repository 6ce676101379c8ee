package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BorrowLendRecord tracks an accepted inter-seller transfer until the borrower
// confirms receipt. Settled flips exactly once, when the request is settled.
type BorrowLendRecord struct {
	BaseModel
	BorrowerSellerID uuid.UUID       `gorm:"type:uuid;not null;index" json:"borrower_seller_id"`
	BorrowerSeller   *Seller         `gorm:"foreignKey:BorrowerSellerID" json:"borrower_seller,omitempty"`
	LenderSellerID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"lender_seller_id"`
	LenderSeller     *Seller         `gorm:"foreignKey:LenderSellerID" json:"lender_seller,omitempty"`
	Quantity         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"quantity"`
	BorrowDate       time.Time       `gorm:"type:date;not null;index" json:"borrow_date"`
	Settled          bool            `gorm:"default:false" json:"settled"`
	RequestID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"request_id"`
	Request          *MilkRequest    `gorm:"foreignKey:RequestID" json:"request,omitempty"`
}

func (BorrowLendRecord) TableName() string {
	return "borrow_lend_records"
}

// BorrowLendEntry is the history row shown to a seller, with the direction
// resolved from their point of view.
type BorrowLendEntry struct {
	Date       string          `json:"date"`
	Type       string          `json:"type"` // Borrowed or Lent
	OtherParty string          `json:"other_party"`
	Quantity   decimal.Decimal `json:"quantity"`
	Status     string          `json:"status"` // Settled or Pending
}

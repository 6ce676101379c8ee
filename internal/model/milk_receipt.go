package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReceiptStatus string

const (
	ReceiptPending     ReceiptStatus = "pending"      // Delivered on paper, awaiting seller acknowledgement
	ReceiptReceived    ReceiptStatus = "received"     // Seller confirmed. Terminal, counts toward daily totals
	ReceiptNotReceived ReceiptStatus = "not_received" // Seller disputed, retryable back to received
)

type MilkSource string

const (
	SourceFarm        MilkSource = "farm"
	SourceInterSeller MilkSource = "inter_seller"
)

// MilkReceipt records a manager-to-seller or inter-seller milk delivery.
// Multiple receipts per seller and day are legal and additive.
type MilkReceipt struct {
	BaseModel
	SellerID  uuid.UUID       `gorm:"type:uuid;not null;index:idx_receipt_seller_date" json:"seller_id" validate:"uuid_required"`
	Seller    *Seller         `gorm:"foreignKey:SellerID" json:"seller,omitempty"`
	ManagerID *uuid.UUID      `gorm:"type:uuid;index" json:"manager_id,omitempty"` // Unset for inter-seller credits
	Manager   *Manager        `gorm:"foreignKey:ManagerID" json:"manager,omitempty"`
	Quantity  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"quantity" validate:"dgt0"`
	Date      time.Time       `gorm:"type:date;not null;index:idx_receipt_seller_date" json:"date"`
	Source    MilkSource      `gorm:"type:varchar(20);not null;default:'farm'" json:"source"`
	Status    ReceiptStatus   `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
}

func (MilkReceipt) TableName() string {
	return "milk_receipts"
}

// MilkReceiptResponse for API responses
type MilkReceiptResponse struct {
	ID          uuid.UUID       `json:"id"`
	SellerID    uuid.UUID       `json:"seller_id"`
	SellerName  string          `json:"seller_name,omitempty"`
	ManagerName string          `json:"manager_name,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	Date        string          `json:"date"`
	Source      MilkSource      `json:"source"`
	Status      ReceiptStatus   `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ToResponse converts MilkReceipt to MilkReceiptResponse
func (r *MilkReceipt) ToResponse() MilkReceiptResponse {
	resp := MilkReceiptResponse{
		ID:        r.ID,
		SellerID:  r.SellerID,
		Quantity:  r.Quantity,
		Date:      FormatDate(r.Date),
		Source:    r.Source,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
	}
	if r.Seller != nil {
		resp.SellerName = r.Seller.Name
	}
	if r.Manager != nil {
		resp.ManagerName = r.Manager.Name
	}
	return resp
}

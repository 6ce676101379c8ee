package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale is one customer sale line item, kept for audit display
type Sale struct {
	BaseModel
	SellerID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_sale_seller_date" json:"seller_id" validate:"uuid_required"`
	Seller      *Seller         `gorm:"foreignKey:SellerID" json:"seller,omitempty"`
	Date        time.Time       `gorm:"type:date;not null;index:idx_sale_seller_date" json:"date"`
	Quantity    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"quantity" validate:"dgt0"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
}

func (Sale) TableName() string {
	return "sales"
}

// SaleResponse for API responses
type SaleResponse struct {
	ID          uuid.UUID       `json:"id"`
	Date        string          `json:"date"`
	Quantity    decimal.Decimal `json:"quantity"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (s *Sale) ToResponse() SaleResponse {
	return SaleResponse{
		ID:          s.ID,
		Date:        FormatDate(s.Date),
		Quantity:    s.Quantity,
		TotalAmount: s.TotalAmount,
		CreatedAt:   s.CreatedAt,
	}
}

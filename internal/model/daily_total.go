package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DailyTotal holds a seller's cash/online takings for one day. Revenue is never
// entered independently; it is recomputed as cash + online on every write.
type DailyTotal struct {
	BaseModel
	SellerID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_total_seller_date" json:"seller_id"`
	Seller      *Seller         `gorm:"foreignKey:SellerID" json:"seller,omitempty"`
	Date        time.Time       `gorm:"type:date;not null;uniqueIndex:idx_total_seller_date" json:"date"`
	CashSales   decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"cash_sales"`
	OnlineSales decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"online_sales"`
	Revenue     decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"revenue"`
}

func (DailyTotal) TableName() string {
	return "daily_totals"
}

package model

import "github.com/shopspring/decimal"

// DailySummary is a seller's per-day milk and money picture. It is derived on
// every query from ledger rows and never persisted, so a late correction is
// reflected the next time it is read.
type DailySummary struct {
	Date              string          `json:"date"`
	TotalMilkReceived decimal.Decimal `json:"total_milk_received"`
	FarmMilk          decimal.Decimal `json:"farm_milk"`
	InterSellerMilk   decimal.Decimal `json:"inter_seller_milk"`
	TotalMilkSold     decimal.Decimal `json:"total_milk_sold"`
	TotalMilkLent     decimal.Decimal `json:"total_milk_lent"`
	RemainingMilk     decimal.Decimal `json:"remaining_milk"` // May go negative; data-entry warning, not an error
	Revenue           decimal.Decimal `json:"revenue"`
	CashSales         decimal.Decimal `json:"cash_sales"`
	OnlineSales       decimal.Decimal `json:"online_sales"`
	IndividualSales   []SaleResponse  `json:"individual_sales"` // Oldest first, audit display
}

// LocationStats is the per-location roll-up shown on the admin dashboard
type LocationStats struct {
	LocationID        string          `json:"location_id"`
	LocationName      string          `json:"location_name"`
	Address           string          `json:"address"`
	SellerCount       int64           `json:"seller_count"`
	MilkReceivedToday decimal.Decimal `json:"milk_received_today"`
	FarmMilkToday     decimal.Decimal `json:"farm_milk_today"`
	InterSellerToday  decimal.Decimal `json:"inter_seller_milk_today"`
}

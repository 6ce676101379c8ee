package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"  // Created, waiting for any seller to accept
	RequestOnHold   RequestStatus = "on_hold"  // Accepted, milk not yet handed over
	RequestReceived RequestStatus = "received" // Requester confirmed physical receipt. Terminal
	RequestRejected RequestStatus = "rejected" // Terminal
)

type RequestAction string

const (
	ActionAccept       RequestAction = "accept"
	ActionMarkReceived RequestAction = "mark_received"
	ActionReject       RequestAction = "reject"
)

// requestTransitions is the closed transition table for MilkRequest. Anything
// not listed here is an illegal transition; on_hold never reverts to pending.
var requestTransitions = map[RequestStatus]map[RequestAction]RequestStatus{
	RequestPending: {
		ActionAccept: RequestOnHold,
		ActionReject: RequestRejected,
	},
	RequestOnHold: {
		ActionMarkReceived: RequestReceived,
	},
}

// NextRequestStatus resolves (current, action) against the transition table.
func NextRequestStatus(current RequestStatus, action RequestAction) (RequestStatus, bool) {
	next, ok := requestTransitions[current][action]
	return next, ok
}

// MilkRequest is a transfer of milk from one seller to another. The requester
// (FromSeller) originates it; the acceptor (ToSeller) claims it. Quantity never
// changes after creation, and ToSeller stays unset while the request is pending.
type MilkRequest struct {
	BaseModel
	FromSellerID uuid.UUID       `gorm:"type:uuid;not null;index" json:"from_seller_id" validate:"uuid_required"`
	FromSeller   *Seller         `gorm:"foreignKey:FromSellerID" json:"from_seller,omitempty"`
	ToSellerID   *uuid.UUID      `gorm:"type:uuid;index" json:"to_seller_id,omitempty"`
	ToSeller     *Seller         `gorm:"foreignKey:ToSellerID" json:"to_seller,omitempty"`
	Quantity     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"quantity" validate:"dgt0"` // Liters
	Status       RequestStatus   `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
}

func (MilkRequest) TableName() string {
	return "milk_requests"
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus enumerates the stages of the order lifecycle.
type OrderStatus string

const (
	StatusPending         OrderStatus = "PENDING"
	StatusApproved        OrderStatus = "APPROVED"
	StatusRejected        OrderStatus = "REJECTED"
	StatusPaid            OrderStatus = "PAID"
	StatusProcessing      OrderStatus = "PROCESSING"
	StatusReadyToDelivery OrderStatus = "READY_TO_DELIVERY"
	StatusOnTheWay        OrderStatus = "ON_THE_WAY"
	StatusDelivered       OrderStatus = "DELIVERED"
)

// LineItem is a product snapshot embedded in an order, plus quantity and
// the operator's approval mark. Once embedded, everything except
// IsApproved is immutable. A nil IsApproved counts as approved.
type LineItem struct {
	ProductID  string          `json:"product_id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"` // Price at the time of order
	Quantity   int             `json:"quantity"`
	Category   string          `json:"category,omitempty"`
	IsApproved *bool           `json:"is_approved,omitempty"`
}

// Approved reports whether the item counts toward the payable total.
// Only an explicit false excludes it.
func (li LineItem) Approved() bool {
	return li.IsApproved == nil || *li.IsApproved
}

// Order represents a customer order moving through the approval and
// delivery lifecycle. The contact fields are a snapshot taken at
// submission time and do not track the user's profile afterwards.
type Order struct {
	ID              string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID          string          `json:"user_id" gorm:"index;type:varchar(64)"`
	CustomerName    string          `json:"customer_name"`
	CustomerEmail   string          `json:"customer_email,omitempty"`
	CustomerPhone   string          `json:"customer_phone,omitempty"`
	Address         string          `json:"address,omitempty"`
	Items           []LineItem      `json:"items" gorm:"serializer:json"`
	Total           decimal.Decimal `json:"total" gorm:"type:decimal(12,2)"`
	Status          OrderStatus     `json:"status" gorm:"type:varchar(20);index"`
	AdminNote       string          `json:"admin_note,omitempty"`
	PaymentLinkSent bool            `json:"payment_link_sent,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

package models

import "gorm.io/gorm"

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusPaid    OrderStatus = "paid"
	OrderStatusFailed  OrderStatus = "failed"
)

// Terminal reports whether no further status transition is allowed.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusPaid || s == OrderStatusFailed
}

type Order struct {
	gorm.Model
	UserID         string           `json:"userId" gorm:"size:64;index"`
	Products       []OrderedProduct `json:"products" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Amount         float64          `json:"amount"`
	Status         OrderStatus      `json:"status" gorm:"size:16;default:pending"`
	PaymentLinkID  string           `json:"paymentLinkId"`
	PaymentID      string           `json:"paymentId"`
	IdempotencyKey string           `json:"idempotencyKey,omitempty" gorm:"size:64;index"`
}

// OrderedProduct is a snapshot of name and price at order time. It is
// intentionally decoupled from the live Product row so historical orders
// stay stable when catalogue prices change.
type OrderedProduct struct {
	gorm.Model
	OrderID  int     `json:"orderId"`
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
}

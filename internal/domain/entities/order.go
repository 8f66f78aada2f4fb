package entities

import "time"

// OrderStatus represents the lifecycle of a storefront order.
//
// Domain notes:
//   - The checkout service is the source of truth for order/payment state.
//   - An order is confirmed only through successful payment verification.

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is the cart/appointment order persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - Total is the checkout total the payment amount must match.
type Order struct {
	ID            string      `json:"id"`
	Total         float64     `json:"total"`
	CustomerEmail string      `json:"customer_email,omitempty"`
	Status        OrderStatus `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

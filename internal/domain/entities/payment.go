package entities

import (
	"encoding/json"
	"time"
)

// PaymentMethod discriminates the two supported gateway flows.
//
// Wire compatibility:
//   - "card" correlates through a Stripe session/intent id (session_id).
//   - "wallet" correlates through a PayPal order id (order_id).

type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodWallet PaymentMethod = "wallet"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentMethodCard || m == PaymentMethodWallet
}

// PaymentStatus is the lifecycle of a Payment record.
//
// A payment starts pending, reaches exactly one terminal status and is never
// mutated again by this service (the DynamoDB repository enforces the
// pending -> terminal transition with a condition expression).

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusVerified PaymentStatus = "verified"
	PaymentStatusFailed   PaymentStatus = "failed"
)

func (s PaymentStatus) Terminal() bool {
	return s == PaymentStatusVerified || s == PaymentStatusFailed
}

// Payment is the payment record persisted by the checkout service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_ref-index): order_ref
//
// Correlation:
//   - SessionID is set once at intent creation for card payments.
//   - OrderID is set once at intent creation for wallet payments.
//     Exactly one of the two is non-empty for a well-formed record.
//
// OrderContext keeps the raw cart/appointment snapshot (JSON) for
// traceability/audit; the service forwards it and never interprets it.

type Payment struct {
	ID        string        `json:"id"`
	Amount    float64       `json:"amount"`
	Method    PaymentMethod `json:"method"`
	SessionID string        `json:"session_id,omitempty"`
	OrderID   string        `json:"order_id,omitempty"`
	Status    PaymentStatus `json:"status"`

	OrderRef      string          `json:"order_ref,omitempty"`
	OrderContext  json.RawMessage `json:"order_context,omitempty"`
	FailureReason string          `json:"failure_reason,omitempty"`

	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	VerifiedAt *time.Time `json:"verified_at,omitempty"`
}

// CorrelationID returns the gateway correlation id for the payment's method.
func (p Payment) CorrelationID() string {
	switch p.Method {
	case PaymentMethodCard:
		return p.SessionID
	case PaymentMethodWallet:
		return p.OrderID
	}
	return ""
}

// HasCorrelation reports whether the record carries the correlation field
// required by its method. Records missing it cannot be verified.
func (p Payment) HasCorrelation() bool {
	return p.CorrelationID() != ""
}

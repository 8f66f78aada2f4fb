package request

import (
	"encoding/json"
	"strings"

	"tirestore_checkout/internal/domain/entities"
	"tirestore_checkout/internal/usecase"
)

// CreateIntentRequest is the payload for POST /payments/intent.
//
// `method` discriminates the gateway flow:
//   - "card" requires cardToken (the widget's payment-method token).
//   - "wallet" requires orderId (the id issued by the hosted wallet button).
//
// `orderContext` is stored as-is (raw JSON) so the storefront can evolve its
// cart/appointment shape without a service change.

type CreateIntentRequest struct {
	Amount       float64         `json:"amount" binding:"required,gt=0"`
	Method       string          `json:"method" binding:"required,oneof=card wallet"`
	CardToken    string          `json:"cardToken"`
	OrderID      string          `json:"orderId"`
	OrderRef     string          `json:"orderRef"`
	OrderContext json.RawMessage `json:"orderContext"`
}

// ToCommand translates the wire payload into the usecase command.
func (r CreateIntentRequest) ToCommand() usecase.CreateIntentCommand {
	return usecase.CreateIntentCommand{
		Amount:        r.Amount,
		Method:        entities.PaymentMethod(strings.TrimSpace(r.Method)),
		CardToken:     strings.TrimSpace(r.CardToken),
		WalletOrderID: strings.TrimSpace(r.OrderID),
		OrderRef:      strings.TrimSpace(r.OrderRef),
		OrderContext:  r.OrderContext,
	}
}

// VerifyStripeRequest is the payload for POST /payments/verify-stripe.

type VerifyStripeRequest struct {
	PaymentID string `json:"paymentId" binding:"required"`
	SessionID string `json:"sessionId" binding:"required"`
}

// VerifyPaypalRequest is the payload for POST /payments/verify-paypal.

type VerifyPaypalRequest struct {
	PaymentID string `json:"paymentId" binding:"required"`
	OrderID   string `json:"orderId" binding:"required"`
}

// CreateOrderRequest is the payload for POST /orders.

type CreateOrderRequest struct {
	Total         float64 `json:"total" binding:"required,gt=0"`
	CustomerEmail string  `json:"customerEmail" binding:"omitempty,email"`
}

package response

import (
	"time"

	"tirestore_checkout/internal/domain/entities"
	"tirestore_checkout/internal/usecase"
)

// IntentResponse answers intent creation with the method-specific correlation
// id: sessionId for card payments, orderId for wallet payments.

type IntentResponse struct {
	PaymentID string `json:"paymentId"`
	SessionID string `json:"sessionId,omitempty"`
	OrderID   string `json:"orderId,omitempty"`
	Status    string `json:"status"`
}

func FromIntent(p entities.Payment) IntentResponse {
	return IntentResponse{
		PaymentID: p.ID,
		SessionID: p.SessionID,
		OrderID:   p.OrderID,
		Status:    string(p.Status),
	}
}

// VerifyResponse is the uniform verification outcome for both gateways.

type VerifyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

func FromVerifyResult(res usecase.VerifyResult) VerifyResponse {
	message := res.Detail
	if message == "" {
		if res.Captured {
			message = "payment verified"
		} else {
			message = "payment not captured"
		}
	}
	return VerifyResponse{
		Success: res.Captured,
		Message: message,
		Status:  string(res.Payment.Status),
	}
}

// PaymentDetails carries the method-specific correlation field for the
// deferred-verification entry point.

type PaymentDetails struct {
	SessionID string `json:"sessionId,omitempty"`
	OrderID   string `json:"orderId,omitempty"`
}

type PaymentResponse struct {
	PaymentID      string         `json:"paymentId"`
	PaymentMethod  string         `json:"paymentMethod"`
	Amount         float64        `json:"amount"`
	Status         string         `json:"status"`
	OrderRef       string         `json:"orderRef,omitempty"`
	PaymentDetails PaymentDetails `json:"paymentDetails"`
	CreatedAt      time.Time      `json:"createdAt"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:     p.ID,
		PaymentMethod: string(p.Method),
		Amount:        p.Amount,
		Status:        string(p.Status),
		OrderRef:      p.OrderRef,
		PaymentDetails: PaymentDetails{
			SessionID: p.SessionID,
			OrderID:   p.OrderID,
		},
		CreatedAt: p.CreatedAt,
	}
}

// OrderResponse mirrors the Order record for storefront pages.

type OrderResponse struct {
	OrderID       string    `json:"orderId"`
	Total         float64   `json:"total"`
	CustomerEmail string    `json:"customerEmail,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		OrderID:       o.ID,
		Total:         o.Total,
		CustomerEmail: o.CustomerEmail,
		Status:        string(o.Status),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

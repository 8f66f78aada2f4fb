package interfaces

import (
	"context"
	"tirestore_checkout/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	// UpdateStatus moves a payment from pending to a terminal status.
	// Implementations must reject the write when the stored status is no
	// longer pending so a payment reaches exactly one terminal status.
	UpdateStatus(ctx context.Context, id string, to entities.PaymentStatus, failureReason string) (entities.Payment, error)
	ListByOrderRef(ctx context.Context, orderRef string) ([]entities.Payment, error)
}

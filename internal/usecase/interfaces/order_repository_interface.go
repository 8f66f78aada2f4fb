package interfaces

import (
	"context"
	"tirestore_checkout/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// The checkout service must be able to:
//   - create an order when the storefront starts checkout
//   - confirm the order after payment verification succeeds
//   - cancel the order from the cancellation page

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
}

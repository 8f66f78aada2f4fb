package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"tirestore_checkout/internal/domain/entities"
	"tirestore_checkout/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrInvalidOrderID  = errors.New("invalid order id")
	ErrInvalidOrderVal = errors.New("invalid order total")
)

// IOrderUseCase exposes the order operations used around the payment workflow:
//   - checkout page creates the order before collecting payment
//   - verification success confirms it (driven by PaymentVerifyUseCase)
//   - the cancellation page may cancel it explicitly

type IOrderUseCase interface {
	CreateOrder(ctx context.Context, total float64, customerEmail string) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	CancelByID(ctx context.Context, id string) (entities.Order, error)
}

type OrderUseCase struct {
	repo interfaces.IOrderRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

func (u *OrderUseCase) CreateOrder(ctx context.Context, total float64, customerEmail string) (entities.Order, error) {
	if total <= 0 {
		return entities.Order{}, ErrInvalidOrderVal
	}

	now := time.Now().UTC()
	o := entities.Order{
		ID:            uuid.NewString(),
		Total:         total,
		CustomerEmail: strings.TrimSpace(customerEmail),
		Status:        entities.OrderStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return u.repo.Create(ctx, o)
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) CancelByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, entities.OrderStatusCancelled)
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return updated, nil
}

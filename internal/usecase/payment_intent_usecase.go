package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"tirestore_checkout/internal/domain/entities"
	"tirestore_checkout/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrInvalidPaymentID     = errors.New("invalid payment id")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrInvalidMethod        = errors.New("invalid payment method")
	ErrMissingCardToken     = errors.New("missing card token")
	ErrMissingWalletOrderID = errors.New("missing wallet order id")
	ErrInvalidOrderContext  = errors.New("invalid order context")
	ErrIntentCreation       = errors.New("payment intent creation failed")
)

// CreateIntentCommand is the discriminated intent-creation input.
//
// Method selects which correlation field is produced:
//   - card: CardToken is exchanged for a gateway session id.
//   - wallet: WalletOrderID was already issued by the hosted wallet flow and
//     is recorded as the correlation id.
type CreateIntentCommand struct {
	Amount        float64
	Method        entities.PaymentMethod
	CardToken     string
	WalletOrderID string
	OrderRef      string
	OrderContext  json.RawMessage
}

// IPaymentIntentUseCase creates pending Payment records correlated with a
// gateway-side transaction.

type IPaymentIntentUseCase interface {
	CreateIntent(ctx context.Context, cmd CreateIntentCommand) (entities.Payment, error)
}

type PaymentIntentUseCase struct {
	repo        interfaces.IPaymentRepository
	cardGateway interfaces.ICardGateway
}

var _ IPaymentIntentUseCase = (*PaymentIntentUseCase)(nil)

func NewPaymentIntentUseCase(repo interfaces.IPaymentRepository, cardGateway interfaces.ICardGateway) *PaymentIntentUseCase {
	return &PaymentIntentUseCase{repo: repo, cardGateway: cardGateway}
}

func (u *PaymentIntentUseCase) CreateIntent(ctx context.Context, cmd CreateIntentCommand) (entities.Payment, error) {
	log.Printf("[payment][usecase] create-intent start method=%s amount=%.2f order_ref=%q", cmd.Method, cmd.Amount, cmd.OrderRef)

	if cmd.Amount <= 0 {
		log.Printf("[payment][usecase] invalid amount amount=%.2f", cmd.Amount)
		return entities.Payment{}, ErrInvalidAmount
	}
	if !cmd.Method.Valid() {
		log.Printf("[payment][usecase] invalid method method=%q", cmd.Method)
		return entities.Payment{}, ErrInvalidMethod
	}
	if len(cmd.OrderContext) > 0 && !json.Valid(cmd.OrderContext) {
		log.Printf("[payment][usecase] invalid order context method=%s", cmd.Method)
		return entities.Payment{}, ErrInvalidOrderContext
	}
	if u.repo == nil {
		return entities.Payment{}, errors.New("payment repository not configured")
	}

	now := time.Now().UTC()
	p := entities.Payment{
		ID:           uuid.NewString(),
		Amount:       cmd.Amount,
		Method:       cmd.Method,
		Status:       entities.PaymentStatusPending,
		OrderRef:     strings.TrimSpace(cmd.OrderRef),
		OrderContext: cmd.OrderContext,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	switch cmd.Method {
	case entities.PaymentMethodCard:
		token := strings.TrimSpace(cmd.CardToken)
		if token == "" {
			log.Printf("[payment][usecase] missing card token")
			return entities.Payment{}, ErrMissingCardToken
		}
		if u.cardGateway == nil {
			return entities.Payment{}, errors.New("card gateway not configured")
		}
		sessionID, err := u.cardGateway.CreateSession(ctx, token, cmd.Amount, p.ID)
		if err != nil {
			log.Printf("[payment][usecase] card gateway create-session failed payment_id=%s err=%v", p.ID, err)
			return entities.Payment{}, fmt.Errorf("%w: %v", ErrIntentCreation, err)
		}
		p.SessionID = sessionID
	case entities.PaymentMethodWallet:
		orderID := strings.TrimSpace(cmd.WalletOrderID)
		if orderID == "" {
			log.Printf("[payment][usecase] missing wallet order id")
			return entities.Payment{}, ErrMissingWalletOrderID
		}
		p.OrderID = orderID
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed payment_id=%s err=%v", p.ID, err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] create-intent success payment_id=%s method=%s correlation_id=%s", created.ID, created.Method, created.CorrelationID())
	return created, nil
}

package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"tirestore_checkout/internal/domain/entities"
	"tirestore_checkout/internal/usecase/interfaces"
)

var (
	ErrMissingCorrelationID     = errors.New("missing gateway correlation id")
	ErrMethodMismatch           = errors.New("payment method mismatch")
	ErrCorrelationMismatch      = errors.New("gateway correlation id mismatch")
	ErrVerificationInProgress   = errors.New("verification already in progress")
	errVerifyRepoNotConfigured  = errors.New("payment repository not configured")
	errVerifyGatewayUnavailable = errors.New("gateway not configured for payment method")
)

// VerifyResult carries the verification outcome back to the handler.
//
// Captured=false with a nil error is a regular outcome (gateway says the funds
// were not captured); the handler answers 200 {success:false} and the client
// routes to the cancellation page.
type VerifyResult struct {
	Payment  entities.Payment
	Captured bool
	Detail   string
}

// IPaymentVerifyUseCase confirms gateway capture and drives the Payment record
// to its terminal status. Re-verifying an already terminal payment is a safe
// no-op that replays the stored outcome without a gateway call.

type IPaymentVerifyUseCase interface {
	VerifyCard(ctx context.Context, paymentID, sessionID string) (VerifyResult, error)
	VerifyWallet(ctx context.Context, paymentID, orderID string) (VerifyResult, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
}

type PaymentVerifyUseCase struct {
	repo          interfaces.IPaymentRepository
	orderRepo     interfaces.IOrderRepository
	cardGateway   interfaces.ICardGateway
	walletGateway interfaces.IWalletGateway
	guard         interfaces.IVerificationGuard
}

var _ IPaymentVerifyUseCase = (*PaymentVerifyUseCase)(nil)

func NewPaymentVerifyUseCase(
	repo interfaces.IPaymentRepository,
	orderRepo interfaces.IOrderRepository,
	cardGateway interfaces.ICardGateway,
	walletGateway interfaces.IWalletGateway,
	guard interfaces.IVerificationGuard,
) *PaymentVerifyUseCase {
	return &PaymentVerifyUseCase{
		repo:          repo,
		orderRepo:     orderRepo,
		cardGateway:   cardGateway,
		walletGateway: walletGateway,
		guard:         guard,
	}
}

func (u *PaymentVerifyUseCase) VerifyCard(ctx context.Context, paymentID, sessionID string) (VerifyResult, error) {
	return u.verify(ctx, entities.PaymentMethodCard, paymentID, sessionID)
}

func (u *PaymentVerifyUseCase) VerifyWallet(ctx context.Context, paymentID, orderID string) (VerifyResult, error) {
	return u.verify(ctx, entities.PaymentMethodWallet, paymentID, orderID)
}

func (u *PaymentVerifyUseCase) verify(ctx context.Context, method entities.PaymentMethod, paymentID, correlationID string) (VerifyResult, error) {
	paymentID = strings.TrimSpace(paymentID)
	correlationID = strings.TrimSpace(correlationID)
	log.Printf("[payment][usecase] verify start method=%s payment_id=%s correlation_id=%s", method, paymentID, correlationID)

	if paymentID == "" {
		return VerifyResult{}, ErrInvalidPaymentID
	}
	if correlationID == "" {
		return VerifyResult{}, ErrMissingCorrelationID
	}
	if u.repo == nil {
		return VerifyResult{}, errVerifyRepoNotConfigured
	}

	p, err := u.repo.GetByID(ctx, paymentID)
	if err != nil {
		log.Printf("[payment][usecase] verify load failed payment_id=%s err=%v", paymentID, err)
		return VerifyResult{}, err
	}
	if p.ID == "" {
		log.Printf("[payment][usecase] verify payment not found payment_id=%s", paymentID)
		return VerifyResult{}, ErrPaymentNotFound
	}
	if p.Method != method {
		log.Printf("[payment][usecase] verify method mismatch payment_id=%s stored=%s requested=%s", paymentID, p.Method, method)
		return VerifyResult{}, ErrMethodMismatch
	}
	if p.CorrelationID() != correlationID {
		log.Printf("[payment][usecase] verify correlation mismatch payment_id=%s", paymentID)
		return VerifyResult{}, ErrCorrelationMismatch
	}

	// Terminal payments replay their outcome; the deferred entry point may
	// re-verify after the user revisits the success URL.
	if p.Status.Terminal() {
		log.Printf("[payment][usecase] verify no-op on terminal payment payment_id=%s status=%s", paymentID, p.Status)
		return VerifyResult{
			Payment:  p,
			Captured: p.Status == entities.PaymentStatusVerified,
			Detail:   terminalDetail(p),
		}, nil
	}

	if u.guard != nil {
		claimed, err := u.guard.Claim(ctx, correlationID)
		if err != nil {
			log.Printf("[payment][usecase] verification guard unavailable payment_id=%s err=%v", paymentID, err)
		} else if !claimed {
			log.Printf("[payment][usecase] verify already in flight payment_id=%s", paymentID)
			return VerifyResult{}, ErrVerificationInProgress
		}
	}

	captured, detail, gwErr := u.askGateway(ctx, p, correlationID)
	if gwErr != nil {
		log.Printf("[payment][usecase] gateway verification errored payment_id=%s err=%v", paymentID, gwErr)
		captured = false
		if detail == "" {
			detail = "gateway verification failed"
		}
	}

	if captured {
		updated, err := u.repo.UpdateStatus(ctx, p.ID, entities.PaymentStatusVerified, "")
		if err != nil {
			u.releaseGuard(ctx, correlationID)
			log.Printf("[payment][usecase] verified transition failed payment_id=%s err=%v", paymentID, err)
			return VerifyResult{}, err
		}
		if updated.ID == "" {
			return u.replayTerminal(ctx, paymentID)
		}
		u.confirmOrder(ctx, updated)
		log.Printf("[payment][usecase] verify success payment_id=%s", paymentID)
		return VerifyResult{Payment: updated, Captured: true, Detail: detail}, nil
	}

	updated, err := u.repo.UpdateStatus(ctx, p.ID, entities.PaymentStatusFailed, detail)
	if err != nil {
		u.releaseGuard(ctx, correlationID)
		log.Printf("[payment][usecase] failed transition failed payment_id=%s err=%v", paymentID, err)
		return VerifyResult{}, err
	}
	if updated.ID == "" {
		return u.replayTerminal(ctx, paymentID)
	}
	log.Printf("[payment][usecase] verify not captured payment_id=%s detail=%q", paymentID, detail)
	return VerifyResult{Payment: updated, Captured: false, Detail: detail}, nil
}

// replayTerminal handles a conditional-write loss: another request moved the
// payment to its terminal status first, so this request replays that outcome.
func (u *PaymentVerifyUseCase) replayTerminal(ctx context.Context, paymentID string) (VerifyResult, error) {
	p, err := u.repo.GetByID(ctx, paymentID)
	if err != nil {
		return VerifyResult{}, err
	}
	if p.ID == "" || !p.Status.Terminal() {
		return VerifyResult{}, ErrVerificationInProgress
	}
	log.Printf("[payment][usecase] verify lost transition race; replaying payment_id=%s status=%s", paymentID, p.Status)
	return VerifyResult{
		Payment:  p,
		Captured: p.Status == entities.PaymentStatusVerified,
		Detail:   terminalDetail(p),
	}, nil
}

func (u *PaymentVerifyUseCase) askGateway(ctx context.Context, p entities.Payment, correlationID string) (bool, string, error) {
	switch p.Method {
	case entities.PaymentMethodCard:
		if u.cardGateway == nil {
			return false, "", errVerifyGatewayUnavailable
		}
		return u.cardGateway.VerifySession(ctx, correlationID)
	case entities.PaymentMethodWallet:
		if u.walletGateway == nil {
			return false, "", errVerifyGatewayUnavailable
		}
		return u.walletGateway.VerifyOrder(ctx, correlationID)
	}
	return false, "", ErrInvalidMethod
}

// confirmOrder is best effort: the payment is already verified and the order
// confirmation can be reconciled later if this write fails.
func (u *PaymentVerifyUseCase) confirmOrder(ctx context.Context, p entities.Payment) {
	if u.orderRepo == nil || p.OrderRef == "" {
		return
	}
	if _, err := u.orderRepo.UpdateStatusByID(ctx, p.OrderRef, entities.OrderStatusConfirmed); err != nil {
		log.Printf("[payment][usecase] order confirmation failed payment_id=%s order_ref=%s err=%v", p.ID, p.OrderRef, err)
	}
}

func (u *PaymentVerifyUseCase) releaseGuard(ctx context.Context, correlationID string) {
	if u.guard == nil {
		return
	}
	if err := u.guard.Release(ctx, correlationID); err != nil {
		log.Printf("[payment][usecase] guard release failed correlation_id=%s err=%v", correlationID, err)
	}
}

func terminalDetail(p entities.Payment) string {
	if p.Status == entities.PaymentStatusVerified {
		return "payment already verified"
	}
	if p.FailureReason != "" {
		return p.FailureReason
	}
	return "payment already failed"
}

func (u *PaymentVerifyUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}
	if u.repo == nil {
		return entities.Payment{}, errVerifyRepoNotConfigured
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

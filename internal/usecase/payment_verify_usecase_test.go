package usecase

import (
	"context"
	"errors"
	"testing"

	"tirestore_checkout/internal/domain/entities"
	mock_interfaces "tirestore_checkout/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func pendingCardPayment() entities.Payment {
	return entities.Payment{
		ID:        "p1",
		Amount:    150.0,
		Method:    entities.PaymentMethodCard,
		SessionID: "s1",
		Status:    entities.PaymentStatusPending,
	}
}

func pendingWalletPayment() entities.Payment {
	return entities.Payment{
		ID:      "p2",
		Amount:  80.0,
		Method:  entities.PaymentMethodWallet,
		OrderID: "po-1",
		Status:  entities.PaymentStatusPending,
	}
}

func TestPaymentVerifyUseCase_Validations(t *testing.T) {
	t.Run("empty payment id", func(t *testing.T) {
		uc := NewPaymentVerifyUseCase(nil, nil, nil, nil, nil)
		_, err := uc.VerifyCard(context.Background(), " ", "s1")
		if !errors.Is(err, ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}
	})

	t.Run("empty correlation id", func(t *testing.T) {
		uc := NewPaymentVerifyUseCase(nil, nil, nil, nil, nil)
		_, err := uc.VerifyWallet(context.Background(), "p1", "")
		if !errors.Is(err, ErrMissingCorrelationID) {
			t.Fatalf("expected ErrMissingCorrelationID, got %v", err)
		}
	})

	t.Run("payment not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentVerifyUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Payment{}, nil)

		_, err := uc.VerifyCard(context.Background(), "missing", "s1")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("method mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentVerifyUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p2").Return(pendingWalletPayment(), nil)

		_, err := uc.VerifyCard(context.Background(), "p2", "po-1")
		if !errors.Is(err, ErrMethodMismatch) {
			t.Fatalf("expected ErrMethodMismatch, got %v", err)
		}
	})

	t.Run("correlation mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentVerifyUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(pendingCardPayment(), nil)

		_, err := uc.VerifyCard(context.Background(), "p1", "someone-elses-session")
		if !errors.Is(err, ErrCorrelationMismatch) {
			t.Fatalf("expected ErrCorrelationMismatch, got %v", err)
		}
	})
}

func TestPaymentVerifyUseCase_TerminalReplay(t *testing.T) {
	t.Run("verified payment replays success without a gateway call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockICardGateway(ctrl)
		uc := NewPaymentVerifyUseCase(repo, nil, gateway, nil, nil)

		p := pendingCardPayment()
		p.Status = entities.PaymentStatusVerified
		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(p, nil)

		res, err := uc.VerifyCard(context.Background(), "p1", "s1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Captured {
			t.Fatalf("expected captured outcome, got %+v", res)
		}
	})

	t.Run("failed payment replays failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentVerifyUseCase(repo, nil, nil, nil, nil)

		p := pendingCardPayment()
		p.Status = entities.PaymentStatusFailed
		p.FailureReason = "stripe status: canceled"
		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(p, nil)

		res, err := uc.VerifyCard(context.Background(), "p1", "s1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Captured {
			t.Fatalf("expected failed outcome, got %+v", res)
		}
		if res.Detail != "stripe status: canceled" {
			t.Fatalf("expected stored failure reason, got %q", res.Detail)
		}
	})
}

func TestPaymentVerifyUseCase_Guard(t *testing.T) {
	t.Run("denied claim stops the verification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		guard := mock_interfaces.NewMockIVerificationGuard(ctrl)
		uc := NewPaymentVerifyUseCase(repo, nil, nil, nil, guard)

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(pendingCardPayment(), nil)
		guard.EXPECT().Claim(gomock.Any(), "s1").Return(false, nil)

		_, err := uc.VerifyCard(context.Background(), "p1", "s1")
		if !errors.Is(err, ErrVerificationInProgress) {
			t.Fatalf("expected ErrVerificationInProgress, got %v", err)
		}
	})

	t.Run("guard outage does not block verification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockICardGateway(ctrl)
		guard := mock_interfaces.NewMockIVerificationGuard(ctrl)
		uc := NewPaymentVerifyUseCase(repo, nil, gateway, nil, guard)

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(pendingCardPayment(), nil)
		guard.EXPECT().Claim(gomock.Any(), "s1").Return(false, errors.New("redis down"))
		gateway.EXPECT().VerifySession(gomock.Any(), "s1").Return(true, "stripe status: succeeded", nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "p1", entities.PaymentStatusVerified, "").DoAndReturn(
			func(_ context.Context, _ string, to entities.PaymentStatus, _ string) (entities.Payment, error) {
				p := pendingCardPayment()
				p.Status = to
				return p, nil
			},
		)

		res, err := uc.VerifyCard(context.Background(), "p1", "s1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Captured {
			t.Fatalf("expected captured outcome, got %+v", res)
		}
	})
}

func TestPaymentVerifyUseCase_CardOutcomes(t *testing.T) {
	t.Run("captured transitions to verified and confirms the order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockICardGateway(ctrl)
		uc := NewPaymentVerifyUseCase(repo, orderRepo, gateway, nil, nil)

		p := pendingCardPayment()
		p.OrderRef = "ord-1"
		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(p, nil)
		gateway.EXPECT().VerifySession(gomock.Any(), "s1").Return(true, "stripe status: succeeded", nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "p1", entities.PaymentStatusVerified, "").DoAndReturn(
			func(_ context.Context, _ string, to entities.PaymentStatus, _ string) (entities.Payment, error) {
				updated := p
				updated.Status = to
				return updated, nil
			},
		)
		orderRepo.EXPECT().UpdateStatusByID(gomock.Any(), "ord-1", entities.OrderStatusConfirmed).Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusConfirmed}, nil)

		res, err := uc.VerifyCard(context.Background(), "p1", "s1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Captured || res.Payment.Status != entities.PaymentStatusVerified {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("not captured transitions to failed without error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockICardGateway(ctrl)
		uc := NewPaymentVerifyUseCase(repo, nil, gateway, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(pendingCardPayment(), nil)
		gateway.EXPECT().VerifySession(gomock.Any(), "s1").Return(false, "stripe status: requires_payment_method", nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "p1", entities.PaymentStatusFailed, "stripe status: requires_payment_method").DoAndReturn(
			func(_ context.Context, _ string, to entities.PaymentStatus, reason string) (entities.Payment, error) {
				p := pendingCardPayment()
				p.Status = to
				p.FailureReason = reason
				return p, nil
			},
		)

		res, err := uc.VerifyCard(context.Background(), "p1", "s1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Captured {
			t.Fatalf("expected failed outcome, got %+v", res)
		}
	})

	t.Run("gateway transport error still fails the payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockICardGateway(ctrl)
		uc := NewPaymentVerifyUseCase(repo, nil, gateway, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(pendingCardPayment(), nil)
		gateway.EXPECT().VerifySession(gomock.Any(), "s1").Return(false, "", errors.New("timeout"))
		repo.EXPECT().UpdateStatus(gomock.Any(), "p1", entities.PaymentStatusFailed, "gateway verification failed").DoAndReturn(
			func(_ context.Context, _ string, to entities.PaymentStatus, reason string) (entities.Payment, error) {
				p := pendingCardPayment()
				p.Status = to
				p.FailureReason = reason
				return p, nil
			},
		)

		res, err := uc.VerifyCard(context.Background(), "p1", "s1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Captured {
			t.Fatalf("expected failed outcome, got %+v", res)
		}
	})
}

func TestPaymentVerifyUseCase_WalletOutcomes(t *testing.T) {
	t.Run("captured order verifies the payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		gateway := mock_interfaces.NewMockIWalletGateway(ctrl)
		uc := NewPaymentVerifyUseCase(repo, nil, nil, gateway, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p2").Return(pendingWalletPayment(), nil)
		gateway.EXPECT().VerifyOrder(gomock.Any(), "po-1").Return(true, "paypal status: COMPLETED", nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "p2", entities.PaymentStatusVerified, "").DoAndReturn(
			func(_ context.Context, _ string, to entities.PaymentStatus, _ string) (entities.Payment, error) {
				p := pendingWalletPayment()
				p.Status = to
				return p, nil
			},
		)

		res, err := uc.VerifyWallet(context.Background(), "p2", "po-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Captured {
			t.Fatalf("expected captured outcome, got %+v", res)
		}
	})
}

func TestPaymentVerifyUseCase_LostTransitionRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
	gateway := mock_interfaces.NewMockICardGateway(ctrl)
	uc := NewPaymentVerifyUseCase(repo, nil, gateway, nil, nil)

	repo.EXPECT().GetByID(gomock.Any(), "p1").Return(pendingCardPayment(), nil)
	gateway.EXPECT().VerifySession(gomock.Any(), "s1").Return(true, "stripe status: succeeded", nil)
	// Conditional write lost: another request already moved the payment.
	repo.EXPECT().UpdateStatus(gomock.Any(), "p1", entities.PaymentStatusVerified, "").Return(entities.Payment{}, nil)
	terminal := pendingCardPayment()
	terminal.Status = entities.PaymentStatusVerified
	repo.EXPECT().GetByID(gomock.Any(), "p1").Return(terminal, nil)

	res, err := uc.VerifyCard(context.Background(), "p1", "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Captured {
		t.Fatalf("expected replayed success, got %+v", res)
	}
}

func TestPaymentVerifyUseCase_GetByID(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewPaymentVerifyUseCase(nil, nil, nil, nil, nil)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentVerifyUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Payment{}, nil)

		_, err := uc.GetByID(context.Background(), "missing")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})
}

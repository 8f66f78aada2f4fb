package checkout

import (
	"context"
	"fmt"
	"log"
)

// State is the confirmation router's workflow position. The router is scoped
// to a single page instance; a fresh page load builds a fresh router.

type State string

const (
	StateAwaitingInput       State = "awaiting-input"
	StateCreatingIntent      State = "creating-intent"
	StateRedirectedToGateway State = "redirected-to-gateway"
	StateVerifying           State = "verifying"
	StateDoneSuccess         State = "done-success"
	StateDoneFailure         State = "done-failure"
)

// legalTransitions encodes the workflow edges:
//   - card submit: awaiting-input -> creating-intent -> verifying
//   - wallet: awaiting-input -> redirected-to-gateway (hosted UI) ->
//     creating-intent -> verifying
//   - deferred page load: awaiting-input -> verifying
//   - verifying ends in exactly one terminal state
var legalTransitions = map[State][]State{
	StateAwaitingInput:       {StateCreatingIntent, StateRedirectedToGateway, StateVerifying, StateDoneFailure},
	StateRedirectedToGateway: {StateCreatingIntent, StateDoneFailure},
	StateCreatingIntent:      {StateVerifying, StateDoneFailure},
	StateVerifying:           {StateDoneSuccess, StateDoneFailure},
}

// Router sequences intent creation and verification for one checkout attempt
// and redirects the user based on the outcome. It does not support
// retry-in-place: a failed attempt restarts from the cart page.

type Router struct {
	api      PaymentsAPI
	notifier Notifier
	nav      Navigator
	widget   CardWidget
	wallet   WalletSDK

	order OrderContext

	state     State
	paymentID string
}

func NewRouter(api PaymentsAPI, notifier Notifier, nav Navigator, widget CardWidget, wallet WalletSDK, order OrderContext) *Router {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &Router{
		api:      api,
		notifier: notifier,
		nav:      nav,
		widget:   widget,
		wallet:   wallet,
		order:    order,
		state:    StateAwaitingInput,
	}
}

func (r *Router) State() State { return r.state }

// PaymentID returns the payment in flight, if any.
func (r *Router) PaymentID() string { return r.paymentID }

func (r *Router) transition(to State) error {
	for _, allowed := range legalTransitions[r.state] {
		if allowed == to {
			log.Printf("[checkout][router] %s -> %s payment_id=%s", r.state, to, r.paymentID)
			r.state = to
			return nil
		}
	}
	return fmt.Errorf("illegal transition %s -> %s", r.state, to)
}

// SubmitCard runs the card flow: tokenize in the widget, create the intent,
// then verify the session. Tokenization problems never reach the API.
func (r *Router) SubmitCard(ctx context.Context) error {
	token, err := tokenizeCard(ctx, r.widget)
	if err != nil {
		// Inline surface; the attempt halts with no API call either way.
		r.notifier.Notify(NoticeError, err.Error())
		return err
	}

	if err := r.transition(StateCreatingIntent); err != nil {
		return err
	}

	res, err := r.api.CreateIntent(ctx, IntentRequest{
		Amount:       r.order.Total,
		Method:       "card",
		CardToken:    token,
		OrderRef:     r.order.OrderRef,
		OrderContext: r.order.Context,
	})
	if err != nil {
		return r.haltOnIntentFailure(err)
	}
	r.paymentID = res.PaymentID

	if err := r.transition(StateVerifying); err != nil {
		return err
	}
	return r.finishVerification(ctx, "card", res.PaymentID, res.SessionID)
}

// WalletCreateOrder is the wallet SDK's createOrder callback. It answers
// synchronously with the order payload; the gateway is the order of record
// until capture, so no intent is created here.
func (r *Router) WalletCreateOrder() (WalletOrder, error) {
	if err := r.transition(StateRedirectedToGateway); err != nil {
		return WalletOrder{}, err
	}
	return r.order.walletOrder(), nil
}

// WalletOnApprove is the wallet SDK's onApprove callback, invoked only after
// the user approved payment in the hosted UI. Capture failure halts the
// workflow before any payment record exists.
func (r *Router) WalletOnApprove(ctx context.Context, orderID string) error {
	if r.wallet == nil {
		r.notifier.Notify(NoticeError, ErrGatewayNotReady.Error())
		return ErrGatewayNotReady
	}
	if err := r.wallet.CaptureOrder(ctx, orderID); err != nil {
		wrapped := fmt.Errorf("%w: %v", ErrWalletCapture, err)
		r.notifier.Notify(NoticeError, wrapped.Error())
		if terr := r.transition(StateDoneFailure); terr != nil {
			return terr
		}
		return wrapped
	}

	if err := r.transition(StateCreatingIntent); err != nil {
		return err
	}

	res, err := r.api.CreateIntent(ctx, IntentRequest{
		Amount:       r.order.Total,
		Method:       "wallet",
		OrderID:      orderID,
		OrderRef:     r.order.OrderRef,
		OrderContext: r.order.Context,
	})
	if err != nil {
		return r.haltOnIntentFailure(err)
	}
	r.paymentID = res.PaymentID

	if err := r.transition(StateVerifying); err != nil {
		return err
	}
	return r.finishVerification(ctx, "wallet", res.PaymentID, res.OrderID)
}

// Resume is the deferred entry point for /payment/success?paymentId=...; it
// reconstructs method and correlation id from the stored record before
// verifying. A record missing its correlation field fails immediately with no
// verification call.
func (r *Router) Resume(ctx context.Context, paymentID string) error {
	rec, err := r.api.GetPayment(ctx, paymentID)
	if err != nil {
		r.notifier.Notify(NoticeError, err.Error())
		if terr := r.transition(StateDoneFailure); terr != nil {
			return terr
		}
		r.nav.Navigate(PathPaymentCancel)
		return err
	}
	r.paymentID = rec.PaymentID

	var correlationID string
	switch rec.PaymentMethod {
	case "card":
		correlationID = rec.PaymentDetails.SessionID
	case "wallet":
		correlationID = rec.PaymentDetails.OrderID
	}
	if correlationID == "" {
		// Silent routing: the user revisited a success URL for a record this
		// workflow cannot verify.
		if terr := r.transition(StateDoneFailure); terr != nil {
			return terr
		}
		r.nav.Navigate(PathPaymentCancel)
		return ErrMissingCorrelationData
	}

	if err := r.transition(StateVerifying); err != nil {
		return err
	}
	return r.finishVerification(ctx, rec.PaymentMethod, rec.PaymentID, correlationID)
}

// finishVerification issues the single verification call for the attempt and
// routes to the terminal page.
func (r *Router) finishVerification(ctx context.Context, method, paymentID, correlationID string) error {
	var (
		out VerifyOutcome
		err error
	)
	switch method {
	case "card":
		out, err = r.api.VerifyStripe(ctx, paymentID, correlationID)
	case "wallet":
		out, err = r.api.VerifyPaypal(ctx, paymentID, correlationID)
	default:
		err = fmt.Errorf("%w: unknown method %q", ErrVerification, method)
	}
	if err != nil {
		r.notifier.Notify(NoticeError, err.Error())
		if terr := r.transition(StateDoneFailure); terr != nil {
			return terr
		}
		r.nav.Navigate(PathPaymentCancel)
		return err
	}

	if !out.Success {
		wrapped := fmt.Errorf("%w: %s", ErrVerification, out.Message)
		r.notifier.Notify(NoticeError, wrapped.Error())
		if terr := r.transition(StateDoneFailure); terr != nil {
			return terr
		}
		r.nav.Navigate(PathPaymentCancel)
		return wrapped
	}

	if terr := r.transition(StateDoneSuccess); terr != nil {
		return terr
	}
	r.nav.Navigate(PathOrderConfirmation)
	return nil
}

// haltOnIntentFailure surfaces the toast and halts without navigation; no
// verification is ever issued for a failed intent.
func (r *Router) haltOnIntentFailure(err error) error {
	r.notifier.Notify(NoticeError, err.Error())
	if terr := r.transition(StateDoneFailure); terr != nil {
		return terr
	}
	return err
}

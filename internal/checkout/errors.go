package checkout

import "errors"

// Workflow error taxonomy. Every error is terminal for the current attempt;
// nothing is retried automatically and a failed attempt restarts from the
// cart/checkout page.
var (
	// ErrGatewayNotReady: the hosted widget or its client library is not
	// initialized; the user must reload the page.
	ErrGatewayNotReady = errors.New("payment gateway not ready")
	// ErrTokenization: the card was rejected by the gateway's client library;
	// shown inline, no intent call is made.
	ErrTokenization = errors.New("card tokenization failed")
	// ErrIntentCreation: creating the pending payment failed; surfaced as a
	// toast, the workflow halts before any verification.
	ErrIntentCreation = errors.New("payment intent creation failed")
	// ErrVerification: the gateway did not confirm capture; the user is routed
	// to the cancellation page.
	ErrVerification = errors.New("payment verification failed")
	// ErrWalletCapture: the wallet SDK failed to capture the approved order;
	// no payment record is created.
	ErrWalletCapture = errors.New("wallet capture failed")
	// ErrMissingCorrelationData: the deferred entry point fetched a payment
	// that lacks the correlation field its method requires.
	ErrMissingCorrelationData = errors.New("payment record missing gateway correlation data")
)

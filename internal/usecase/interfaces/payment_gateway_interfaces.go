package interfaces

import "context"

// ICardGateway abstracts the card-network provider (Stripe).
//
// The checkout service creates the server-side payment from a client-obtained
// payment-method token and later asks the provider whether funds were captured.
type ICardGateway interface {
	// CreateSession confirms a payment for the tokenized card and returns the
	// provider correlation id (exposed as sessionId on the wire).
	CreateSession(ctx context.Context, token string, amount float64, reference string) (sessionID string, err error)
	// VerifySession reports whether the session's funds were captured.
	VerifySession(ctx context.Context, sessionID string) (captured bool, detail string, err error)
}

// IWalletGateway abstracts the wallet-redirect provider (PayPal).
//
// The hosted button creates and captures the wallet order client-side; the
// service only confirms capture server-side through the order id.
type IWalletGateway interface {
	VerifyOrder(ctx context.Context, orderID string) (captured bool, detail string, err error)
}

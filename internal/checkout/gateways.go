package checkout

import (
	"context"
	"fmt"
	"strconv"
)

// CardWidget is the hosted card-input widget and its client library. The
// widget owns the raw card data; the workflow only ever sees the issued
// payment-method token.
type CardWidget interface {
	Ready() bool
	CreateToken(ctx context.Context) (string, error)
}

// WalletSDK is the hosted wallet button's client library. Order creation and
// approval happen inside the hosted UI; the workflow is only called back with
// an order id to capture.
type WalletSDK interface {
	CaptureOrder(ctx context.Context, orderID string) error
}

// WalletOrder is the synchronous order-creation payload handed to the wallet
// SDK's createOrder callback.

type WalletOrder struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// OrderContext is the ephemeral checkout context: the total plus identifying
// metadata, forwarded unchanged from intent creation through verification.

type OrderContext struct {
	Total    float64
	Currency string
	OrderRef string
	Context  []byte
}

func (o OrderContext) walletOrder() WalletOrder {
	currency := o.Currency
	if currency == "" {
		currency = "USD"
	}
	return WalletOrder{
		Amount:   strconv.FormatFloat(o.Total, 'f', 2, 64),
		Currency: currency,
	}
}

// tokenizeCard runs the card adapter's submit preconditions: widget readiness
// first, then the token exchange. Neither step touches the payments API.
func tokenizeCard(ctx context.Context, widget CardWidget) (string, error) {
	if widget == nil || !widget.Ready() {
		return "", ErrGatewayNotReady
	}
	token, err := widget.CreateToken(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTokenization, err)
	}
	return token, nil
}

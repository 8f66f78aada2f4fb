package payments

import (
	"context"
	"errors"
	"log"
	"strings"

	"tirestore_checkout/internal/usecase/interfaces"

	"github.com/plutov/paypal/v4"
)

var ErrMissingPayPalCredentials = errors.New("missing PAYPAL_CLIENT_ID/PAYPAL_CLIENT_SECRET")
var ErrPayPalGatewayNotConfigured = errors.New("paypal gateway not configured")

const paypalOrderStatusCompleted = "COMPLETED"

// PayPalGateway confirms wallet payments server-side. The hosted button owns
// order creation and capture; this adapter only reads the order back and
// checks that capture completed.

type PayPalGateway struct {
	client   *paypal.Client
	mockMode bool
}

var _ interfaces.IWalletGateway = (*PayPalGateway)(nil)

func NewPayPalGateway(ctx context.Context, clientID, clientSecret string, live bool) (*PayPalGateway, error) {
	if isPaymentGatewayMockEnabled("PAYPAL_MOCK") {
		log.Printf("[payment][gateway][paypal] mock mode enabled")
		return &PayPalGateway{mockMode: true}, nil
	}

	if clientID == "" || clientSecret == "" {
		log.Printf("[payment][gateway][paypal] missing credentials")
		return nil, ErrMissingPayPalCredentials
	}

	apiBase := paypal.APIBaseSandBox
	if live {
		apiBase = paypal.APIBaseLive
	}

	c, err := paypal.NewClient(clientID, clientSecret, apiBase)
	if err != nil {
		log.Printf("[payment][gateway][paypal] failed creating sdk client err=%v", err)
		return nil, err
	}
	if _, err := c.GetAccessToken(ctx); err != nil {
		log.Printf("[payment][gateway][paypal] failed fetching access token err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway][paypal] client initialized live=%t", live)

	return &PayPalGateway{client: c}, nil
}

func (g *PayPalGateway) VerifyOrder(ctx context.Context, orderID string) (bool, string, error) {
	if g != nil && g.mockMode {
		log.Printf("[payment][gateway][paypal] mock verify order_id=%s", orderID)
		return true, "mock order captured", nil
	}
	if g == nil || g.client == nil {
		return false, "", ErrPayPalGatewayNotConfigured
	}
	orderID = strings.TrimSpace(orderID)
	log.Printf("[payment][gateway][paypal] verify start order_id=%s", orderID)

	order, err := g.client.GetOrder(ctx, orderID)
	if err != nil {
		log.Printf("[payment][gateway][paypal] verify failed order_id=%s err=%v", orderID, err)
		return false, "", err
	}

	captured := order.Status == paypalOrderStatusCompleted
	log.Printf("[payment][gateway][paypal] verify done order_id=%s status=%s captured=%t", orderID, order.Status, captured)
	return captured, "paypal status: " + order.Status, nil
}

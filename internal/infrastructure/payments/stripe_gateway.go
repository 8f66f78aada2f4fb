package payments

import (
	"context"
	"errors"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"tirestore_checkout/internal/usecase/interfaces"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

var ErrMissingStripeSecretKey = errors.New("missing STRIPE_SECRET_KEY")
var ErrStripeGatewayNotConfigured = errors.New("stripe gateway not configured")

// StripeGateway confirms card payments server-side from the widget token and
// checks capture during verification.
//
// The PaymentIntent id doubles as the card flow's correlation id (the
// storefront API calls it sessionId).

type StripeGateway struct {
	sc       *client.API
	currency string
	mockMode bool
}

var _ interfaces.ICardGateway = (*StripeGateway)(nil)

func NewStripeGateway(secretKey string) (*StripeGateway, error) {
	if isPaymentGatewayMockEnabled("STRIPE_MOCK") {
		log.Printf("[payment][gateway][stripe] mock mode enabled")
		return &StripeGateway{mockMode: true}, nil
	}

	if secretKey == "" {
		log.Printf("[payment][gateway][stripe] missing STRIPE_SECRET_KEY")
		return nil, ErrMissingStripeSecretKey
	}

	sc := &client.API{}
	sc.Init(secretKey, nil)
	log.Printf("[payment][gateway][stripe] client initialized")

	return &StripeGateway{sc: sc, currency: "usd"}, nil
}

func (g *StripeGateway) CreateSession(ctx context.Context, token string, amount float64, reference string) (string, error) {
	if g != nil && g.mockMode {
		id := "pi_mock_" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[payment][gateway][stripe] mock create-session session_id=%s amount=%.2f", id, amount)
		return id, nil
	}
	if g == nil || g.sc == nil {
		return "", ErrStripeGatewayNotConfigured
	}
	log.Printf("[payment][gateway][stripe] create-session start amount=%.2f reference=%s", amount, reference)

	params := &stripe.PaymentIntentParams{
		Params:        stripe.Params{Context: ctx},
		Amount:        stripe.Int64(toMinorUnits(amount)),
		Currency:      stripe.String(g.currency),
		PaymentMethod: stripe.String(token),
		Confirm:       stripe.Bool(true),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}
	if reference != "" {
		params.AddMetadata("payment_id", reference)
	}

	pi, err := g.sc.PaymentIntents.New(params)
	if err != nil {
		log.Printf("[payment][gateway][stripe] create-session failed err=%v", err)
		return "", err
	}
	log.Printf("[payment][gateway][stripe] create-session success session_id=%s status=%s", pi.ID, pi.Status)
	return pi.ID, nil
}

func (g *StripeGateway) VerifySession(ctx context.Context, sessionID string) (bool, string, error) {
	if g != nil && g.mockMode {
		log.Printf("[payment][gateway][stripe] mock verify session_id=%s", sessionID)
		return true, "mock session captured", nil
	}
	if g == nil || g.sc == nil {
		return false, "", ErrStripeGatewayNotConfigured
	}
	log.Printf("[payment][gateway][stripe] verify start session_id=%s", sessionID)

	pi, err := g.sc.PaymentIntents.Get(sessionID, &stripe.PaymentIntentParams{Params: stripe.Params{Context: ctx}})
	if err != nil {
		log.Printf("[payment][gateway][stripe] verify failed session_id=%s err=%v", sessionID, err)
		return false, "", err
	}

	captured := pi.Status == stripe.PaymentIntentStatusSucceeded
	log.Printf("[payment][gateway][stripe] verify done session_id=%s status=%s captured=%t", sessionID, pi.Status, captured)
	return captured, "stripe status: " + string(pi.Status), nil
}

// toMinorUnits converts a decimal amount to the cent representation Stripe expects.
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func isPaymentGatewayMockEnabled(providerKey string) bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", providerKey} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
